package world

import "testing"

// pistonRig builds a piston facing east at (1,1) with one item two cells ahead
func pistonRig(t *testing.T, width int) (*World, *Piston, *Item, *[]EventType) {
	t.Helper()
	w := newTestWorld(t, width, 3)
	events := &[]EventType{}
	w.SetListener(ListenerFunc(func(ev Event) {
		if ev.Type != EventMove && ev.Type != EventSpawn {
			*events = append(*events, ev.Type)
		}
	}))

	p := NewPiston(Right)
	item := NewTestItem()
	mustAdd(t, w, p, 1, 1)
	mustAdd(t, w, item, 3, 1)
	return w, p, item, events
}

func TestPistonCycle(t *testing.T) {
	w, p, item, events := pistonRig(t, 8)

	// Turn 1: part placed one cell ahead, nothing pushed
	mustStep(t, w)
	part := p.Part()
	if part == nil {
		t.Fatal("piston should place its part on the first turn")
	}
	assertAt(t, part, 2, 1)
	assertAt(t, item, 3, 1)

	// Turn 2: item ahead, extend
	mustStep(t, w)
	assertAt(t, item, 4, 1)
	assertAt(t, part, 3, 1)
	if part.MovedOn() != 2 {
		t.Errorf("MovedOn = %d, want 2", part.MovedOn())
	}

	// Turn 3: slam back next to the piston
	mustStep(t, w)
	assertAt(t, part, 2, 1)
	assertAt(t, item, 4, 1)

	// Turns 4-5: nothing ahead, nothing to retract
	mustStep(t, w)
	assertAt(t, part, 2, 1)
	mustStep(t, w)
	assertAt(t, part, 2, 1)
	assertAt(t, item, 4, 1)

	want := []EventType{EventPartPlaced, EventPistonExtend, EventPistonRetract}
	if len(*events) != len(want) {
		t.Fatalf("events = %v, want %v", *events, want)
	}
	for i := range want {
		if (*events)[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, (*events)[i], want[i])
		}
	}
}

func TestPistonPlacesPartOnce(t *testing.T) {
	w, p, _, _ := pistonRig(t, 8)
	mustStep(t, w)
	first := p.Part()
	before := w.Len()

	for i := 0; i < 5; i++ {
		mustStep(t, w)
	}
	if p.Part() != first {
		t.Error("piston replaced its part")
	}
	if w.Len() != before {
		t.Errorf("entity count changed from %d to %d", before, w.Len())
	}
}

func TestPistonExtendsAgainAfterRetract(t *testing.T) {
	w, p, item, _ := pistonRig(t, 8)
	mustStep(t, w) // place
	mustStep(t, w) // extend
	mustStep(t, w) // retract

	second := NewTestItem()
	mustAdd(t, w, second, 3, 1)

	mustStep(t, w)
	assertAt(t, second, 4, 1)
	assertAt(t, p.Part(), 3, 1)
	if w.TopAt(4, 1) != second {
		t.Error("pushed item should land on top of the destination")
	}
	assertAt(t, item, 4, 1)

	mustStep(t, w)
	assertAt(t, p.Part(), 2, 1)
}

func TestPistonPushesWholeStack(t *testing.T) {
	w, p, item, _ := pistonRig(t, 8)
	extra := NewTestItem()
	conveyor := NewTransport(Up)
	mustAdd(t, w, extra, 3, 1)
	mustAdd(t, w, conveyor, 3, 1)

	mustStep(t, w)
	mustStep(t, w)

	for _, e := range []Entity{item, extra, conveyor} {
		assertAt(t, e, 4, 1)
	}
	assertAt(t, p.Part(), 3, 1)
}

func TestPistonDoesNotExtendIntoEmptyTile(t *testing.T) {
	w := newTestWorld(t, 6, 3)
	p := NewPiston(Right)
	mustAdd(t, w, p, 1, 1)

	for i := 0; i < 4; i++ {
		mustStep(t, w)
	}
	assertAt(t, p.Part(), 2, 1)
}

func TestPistonBlockedAtEdge(t *testing.T) {
	w, p, item, _ := pistonRig(t, 4)

	mustStep(t, w)
	mustStep(t, w)
	assertAt(t, item, 3, 1)
	assertAt(t, p.Part(), 2, 1)
}

func TestPistonFacingOutOfWorld(t *testing.T) {
	w := newTestWorld(t, 3, 3)
	p := NewPiston(Left)
	mustAdd(t, w, p, 0, 1)

	mustStep(t, w)
	if p.Part() != nil {
		t.Error("piston facing off the grid should not place a part")
	}
}

func TestPistonIsSolid(t *testing.T) {
	w, _, _, _ := pistonRig(t, 8)
	mustStep(t, w)
	if w.IsTileFree(1, 1) {
		t.Error("piston tile should not be free")
	}
	if w.IsTileFree(2, 1) {
		t.Error("moving part tile should not be free")
	}
}
