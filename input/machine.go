package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine is the input state machine.
// It turns tcell events into Intents and holds a pending device prefix
// between the two keys of a placement command.
type Machine struct {
	keyTable *KeyTable
	pending  *KeyEntry
	prefix   rune
}

// NewMachine creates a machine with the default bindings
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// SetKeyTable replaces the bindings and clears pending state
func (m *Machine) SetKeyTable(kt *KeyTable) {
	m.keyTable = kt
	m.Reset()
}

// Reset clears any pending prefix
func (m *Machine) Reset() {
	m.pending = nil
	m.prefix = 0
}

// Pending returns the armed prefix key for display, empty when idle
func (m *Machine) Pending() string {
	if m.pending == nil {
		return ""
	}
	return string(m.prefix)
}

// Process parses one event. It returns nil when the input is incomplete,
// unbound, or an aborted two-key sequence.
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	}
	return nil
}

func (m *Machine) lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := m.keyTable.Runes[ev.Rune()]
		return e, ok
	}
	e, ok := m.keyTable.SpecialKeys[ev.Key()]
	return e, ok
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	entry, ok := m.lookup(ev)

	// System keys work regardless of pending state
	if ok && entry.Behavior == BehaviorSystem {
		m.Reset()
		return &Intent{Type: entry.IntentType}
	}

	if m.pending != nil {
		device := m.pending.Device
		m.Reset()
		if !ok || entry.Behavior != BehaviorMotion {
			return nil
		}
		return &Intent{Type: IntentPlaceDevice, Dir: entry.Dir, Device: device}
	}

	if !ok {
		return nil
	}

	switch entry.Behavior {
	case BehaviorMotion, BehaviorAction:
		return &Intent{Type: entry.IntentType, Dir: entry.Dir}
	case BehaviorPrefix:
		e := entry
		m.pending = &e
		m.prefix = ev.Rune()
		if ev.Key() != tcell.KeyRune {
			m.prefix = '*'
		}
		return nil
	}
	return nil
}
