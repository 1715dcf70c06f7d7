package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-factory/world"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone   KeyBehavior = iota
	BehaviorSystem             // handled in any state
	BehaviorAction             // completes immediately
	BehaviorMotion             // carries a direction; also completes a device prefix
	BehaviorPrefix             // arms a two-key device placement
	BehaviorCancel             // clears a pending prefix
)

// KeyEntry describes a key's behavior
type KeyEntry struct {
	Behavior   KeyBehavior
	IntentType IntentType
	Dir        world.Facing
	Device     Device
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  actionRegistry["quit"],
			tcell.KeyCtrlC:  actionRegistry["quit"],
			tcell.KeyCtrlS:  actionRegistry["toggle_sound"],
			tcell.KeyEscape: actionRegistry["cancel"],
			tcell.KeyLeft:   actionRegistry["move_left"],
			tcell.KeyDown:   actionRegistry["move_down"],
			tcell.KeyUp:     actionRegistry["move_up"],
			tcell.KeyRight:  actionRegistry["move_right"],
		},
		Runes: map[rune]KeyEntry{
			'h': actionRegistry["move_left"],
			'j': actionRegistry["move_down"],
			'k': actionRegistry["move_up"],
			'l': actionRegistry["move_right"],
			'q': actionRegistry["spawn_item"],
			'd': actionRegistry["pickup"],
			't': actionRegistry["rotate"],
			'w': actionRegistry["place_transport"],
			'p': actionRegistry["place_piston"],
			'r': actionRegistry["place_robohand"],
			'.': actionRegistry["wait"],
			' ': actionRegistry["wait"],
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry, len(kt.SpecialKeys)),
		Runes:       make(map[rune]KeyEntry, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		out.Runes[k] = v
	}
	return out
}
