package input

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":             IntentQuit,
	"toggle_attractor": IntentToggleAttractor,
	"reset":            IntentReset,
	"clear":            IntentClear,
	"burst":            IntentBurst,
	"cycle_texture":    IntentCycleTexture,
	"toggle_mute":      IntentToggleMute,
}

// ActionName returns the canonical name of a bindable intent, "" if not bindable
func ActionName(it IntentType) string {
	for name, t := range actionRegistry {
		if t == it && name != "none" {
			return name
		}
	}
	return ""
}
