package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-factory/world"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMovementKeys(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want world.Facing
	}{
		{runeKey('h'), world.Left},
		{runeKey('j'), world.Down},
		{runeKey('k'), world.Up},
		{runeKey('l'), world.Right},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), world.Left},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), world.Up},
	}

	m := NewMachine()
	for _, tt := range tests {
		intent := m.Process(tt.ev)
		if intent == nil || intent.Type != IntentMove {
			t.Fatalf("%v: expected move intent, got %+v", tt.ev.Name(), intent)
		}
		if intent.Dir != tt.want {
			t.Errorf("%v: dir %s, want %s", tt.ev.Name(), intent.Dir, tt.want)
		}
	}
}

func TestActionKeys(t *testing.T) {
	tests := []struct {
		r    rune
		want IntentType
	}{
		{'q', IntentSpawnItem},
		{'d', IntentPickup},
		{'t', IntentRotate},
		{'.', IntentWait},
		{' ', IntentWait},
	}

	m := NewMachine()
	for _, tt := range tests {
		intent := m.Process(runeKey(tt.r))
		if intent == nil || intent.Type != tt.want {
			t.Errorf("key %q: got %+v, want type %d", tt.r, intent, tt.want)
		}
	}
}

func TestTwoKeyPlacement(t *testing.T) {
	tests := []struct {
		prefix rune
		dir    rune
		device Device
		facing world.Facing
	}{
		{'w', 'l', DeviceTransport, world.Right},
		{'w', 'k', DeviceTransport, world.Up},
		{'p', 'j', DevicePiston, world.Down},
		{'r', 'h', DeviceRobohand, world.Left},
	}

	for _, tt := range tests {
		m := NewMachine()
		if intent := m.Process(runeKey(tt.prefix)); intent != nil {
			t.Fatalf("prefix %q should not complete, got %+v", tt.prefix, intent)
		}
		if m.Pending() != string(tt.prefix) {
			t.Errorf("Pending = %q, want %q", m.Pending(), string(tt.prefix))
		}

		intent := m.Process(runeKey(tt.dir))
		if intent == nil || intent.Type != IntentPlaceDevice {
			t.Fatalf("%c%c: expected placement, got %+v", tt.prefix, tt.dir, intent)
		}
		if intent.Device != tt.device || intent.Dir != tt.facing {
			t.Errorf("%c%c: got %s facing %s", tt.prefix, tt.dir, intent.Device, intent.Dir)
		}
		if m.Pending() != "" {
			t.Error("machine should be idle after a completed placement")
		}
	}
}

func TestIncompleteSequenceIsNoop(t *testing.T) {
	m := NewMachine()

	m.Process(runeKey('w'))
	if intent := m.Process(runeKey('q')); intent != nil {
		t.Errorf("non-direction after prefix should be a no-op, got %+v", intent)
	}
	if m.Pending() != "" {
		t.Error("aborted sequence should reset the machine")
	}

	// Following keys behave normally again
	if intent := m.Process(runeKey('q')); intent == nil || intent.Type != IntentSpawnItem {
		t.Errorf("expected spawn after reset, got %+v", intent)
	}

	m.Process(runeKey('p'))
	if intent := m.Process(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); intent != nil {
		t.Errorf("Esc should cancel silently, got %+v", intent)
	}
	if m.Pending() != "" {
		t.Error("Esc should clear the prefix")
	}

	m.Process(runeKey('r'))
	if intent := m.Process(runeKey('Z')); intent != nil {
		t.Errorf("unbound key after prefix should be a no-op, got %+v", intent)
	}
}

func TestSystemKeysIgnorePending(t *testing.T) {
	m := NewMachine()
	m.Process(runeKey('w'))

	intent := m.Process(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if intent == nil || intent.Type != IntentQuit {
		t.Fatalf("Ctrl+C should quit while a prefix is pending, got %+v", intent)
	}
	if m.Pending() != "" {
		t.Error("system key should clear the prefix")
	}

	intent = m.Process(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	if intent == nil || intent.Type != IntentToggleSound {
		t.Errorf("Ctrl+S: got %+v", intent)
	}
}

func TestUnboundAndResize(t *testing.T) {
	m := NewMachine()
	if intent := m.Process(runeKey('Z')); intent != nil {
		t.Errorf("unbound key: got %+v", intent)
	}
	if intent := m.Process(tcell.NewEventResize(80, 24)); intent == nil || intent.Type != IntentResize {
		t.Errorf("resize: got %+v", intent)
	}
}
