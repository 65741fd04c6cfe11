package event

// EventType represents the type of simulation event
type EventType int

const (
	// === Inbound Commands ===
	// Produced by input surfaces, drained by the simulation at the start of a tick

	// EventSpawnAt spawns one body at a point with a given velocity
	// Trigger: click on empty arena | Payload: *SpawnPayload
	EventSpawnAt EventType = iota + 1

	// EventDragStart grabs the body under the point, zeroing its velocity
	// Trigger: button press | Payload: *PointPayload
	EventDragStart

	// EventDragMove moves the grabbed body
	// Trigger: pointer motion while pressed | Payload: *PointPayload
	EventDragMove

	// EventDragRelease throws the grabbed body with the gesture delta
	// Trigger: button release | Payload: *PointPayload
	EventDragRelease

	// EventToggleAttractor flips the attractor on or off | Payload: nil
	EventToggleAttractor

	// EventMoveAttractor places the attractor | Payload: *PointPayload
	EventMoveAttractor

	// EventReset clears all bodies and reseeds the initial population | Payload: nil
	EventReset

	// EventClear removes all bodies | Payload: nil
	EventClear

	// EventBurst spawns Count random bodies | Payload: *BurstPayload
	EventBurst

	// EventResize changes arena dimensions | Payload: *ResizePayload
	EventResize

	// EventSetTexture changes the draw texture, cosmetic only
	// Consumer: renderers | Payload: *TexturePayload
	EventSetTexture

	// EventMute silences sound | Consumer: SoundManager | Payload: nil
	EventMute

	// EventUnmute restores sound | Consumer: SoundManager | Payload: nil
	EventUnmute

	// EventToggleMute flips mute state | Consumer: SoundManager | Payload: nil
	EventToggleMute

	// === Outbound Notifications ===
	// Emitted by the simulation during a step, dispatched once per frame

	// EventMerged signals a pair merged into one survivor
	// Consumer: SoundManager, metrics | Payload: *MergedPayload
	EventMerged EventType = iota + 100

	// EventSplit signals an oversized body split into children
	// Consumer: SoundManager, metrics | Payload: *SplitPayload
	EventSplit

	// EventExploded signals a body fragmented by speed or fuse
	// Consumer: SoundManager, metrics | Payload: *ExplodedPayload
	EventExploded

	// EventCulled signals population control removed bodies
	// Consumer: metrics | Payload: *CulledPayload
	EventCulled

	// EventFrameSkipped signals a stalled frame was dropped
	// Consumer: metrics | Payload: *FrameSkippedPayload
	EventFrameSkipped
)

// IsCommand reports whether the type is consumed by the simulation
func (t EventType) IsCommand() bool {
	return t >= EventSpawnAt && t < EventMerged
}

// String returns the registered name of the event type
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "EventUnknown"
}

// Event is a single entry of the event queue
type Event struct {
	Type    EventType
	Payload any
	Tick    uint64 // simulation tick at emission, 0 for inbound commands
}
