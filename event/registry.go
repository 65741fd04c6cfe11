package event

import "strings"

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

// RegisterType maps a string name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	if et, ok := nameToType[name]; ok {
		return et, true
	}
	for n, et := range nameToType {
		if strings.EqualFold(n, name) {
			return et, true
		}
	}
	return 0, false
}

func init() {
	// Commands
	RegisterType("EventSpawnAt", EventSpawnAt)
	RegisterType("EventDragStart", EventDragStart)
	RegisterType("EventDragMove", EventDragMove)
	RegisterType("EventDragRelease", EventDragRelease)
	RegisterType("EventToggleAttractor", EventToggleAttractor)
	RegisterType("EventMoveAttractor", EventMoveAttractor)
	RegisterType("EventReset", EventReset)
	RegisterType("EventClear", EventClear)
	RegisterType("EventBurst", EventBurst)
	RegisterType("EventResize", EventResize)
	RegisterType("EventSetTexture", EventSetTexture)
	RegisterType("EventMute", EventMute)
	RegisterType("EventUnmute", EventUnmute)
	RegisterType("EventToggleMute", EventToggleMute)

	// Notifications
	RegisterType("EventMerged", EventMerged)
	RegisterType("EventSplit", EventSplit)
	RegisterType("EventExploded", EventExploded)
	RegisterType("EventCulled", EventCulled)
	RegisterType("EventFrameSkipped", EventFrameSkipped)
}
