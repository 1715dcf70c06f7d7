package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-factory/toml"
)

// Rune aliases for keys that are awkward as TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeyNames resolves lower-cased tcell key names ("esc", "ctrl-s", "up")
var specialKeyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses a TOML key map into a sparse override KeyTable.
// Rune bindings live under [keys], named special keys under [special_keys].
// Returns an error on unknown action names, invalid key names, or parse failure.
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	raw, err := toml.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}

	if section, ok := raw["keys"]; ok {
		m, ok := section.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("section [keys]: expected table, got %T", section)
		}
		kt.Runes = make(map[rune]KeyEntry, len(m))
		for keyStr, val := range m {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			entry, err := resolveValue(val)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = entry
		}
	}

	if section, ok := raw["special_keys"]; ok {
		m, ok := section.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("section [special_keys]: expected table, got %T", section)
		}
		kt.SpecialKeys = make(map[tcell.Key]KeyEntry, len(m))
		for keyStr, val := range m {
			k, ok := specialKeyNames[strings.ToLower(keyStr)]
			if !ok {
				return nil, fmt.Errorf("[special_keys] unknown key name: %q", keyStr)
			}
			entry, err := resolveValue(val)
			if err != nil {
				return nil, fmt.Errorf("[special_keys] key %q: %w", keyStr, err)
			}
			kt.SpecialKeys[k] = entry
		}
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

func resolveValue(val any) (KeyEntry, error) {
	name, ok := val.(string)
	if !ok {
		return KeyEntry{}, fmt.Errorf("value must be string, got %T", val)
	}
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override.
// Entries bound to "none" delete the key from the result.
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	for k, v := range override.Runes {
		if v.Behavior == BehaviorNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.SpecialKeys {
		if v.Behavior == BehaviorNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = v
		}
	}
	return result
}
