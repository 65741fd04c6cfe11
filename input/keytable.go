package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Printable rune bindings
	Runes map[rune]IntentType

	// Special keys (Ctrl+*, Esc, function keys)
	Keys map[tcell.Key]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'g': IntentToggleAttractor,
			'r': IntentReset,
			'c': IntentClear,
			' ': IntentBurst,
			't': IntentCycleTexture,
			'm': IntentToggleMute,
		},
		Keys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
	}
}

// Merge applies a sparse override table on top of kt
// IntentNone entries unbind the key
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for r, it := range override.Runes {
		if it == IntentNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = it
	}
	for k, it := range override.Keys {
		if it == IntentNone {
			delete(kt.Keys, k)
			continue
		}
		kt.Keys[k] = it
	}
}

// Lookup resolves a key event to its bound intent
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}
