package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyFile is the on-disk keymap layout
//
//	[keys]
//	a = "toggle_attractor"
//	space = "burst"
//
//	[special]
//	"Ctrl-Q" = "quit"
type keyFile struct {
	Keys    map[string]string `toml:"keys"`
	Special map[string]string `toml:"special"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only keys present in TOML are populated
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var kf keyFile
	md, err := toml.Decode(string(data), &kf)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown key %q", undecoded[0].String())
	}

	kt := &KeyTable{
		Runes: make(map[rune]IntentType, len(kf.Keys)),
		Keys:  make(map[tcell.Key]IntentType, len(kf.Special)),
	}
	for name, action := range kf.Keys {
		r, err := parseRune(name)
		if err != nil {
			return nil, fmt.Errorf("section [keys]: %w", err)
		}
		it, err := parseAction(action)
		if err != nil {
			return nil, fmt.Errorf("section [keys] %q: %w", name, err)
		}
		kt.Runes[r] = it
	}
	for name, action := range kf.Special {
		k, err := parseSpecialKey(name)
		if err != nil {
			return nil, fmt.Errorf("section [special]: %w", err)
		}
		it, err := parseAction(action)
		if err != nil {
			return nil, fmt.Errorf("section [special] %q: %w", name, err)
		}
		kt.Keys[k] = it
	}
	return kt, nil
}

func parseRune(name string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(name) != 1 {
		return 0, fmt.Errorf("invalid key %q", name)
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r, nil
}

// parseSpecialKey resolves names as tcell writes them, e.g. "Esc", "Ctrl-Q", "F1"
func parseSpecialKey(name string) (tcell.Key, error) {
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("invalid special key %q", name)
}

func parseAction(action string) (IntentType, error) {
	it, ok := actionRegistry[strings.ToLower(action)]
	if !ok {
		return IntentNone, fmt.Errorf("unknown action %q", action)
	}
	return it, nil
}
