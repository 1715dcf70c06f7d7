package world

import "testing"

func TestMovePlayer(t *testing.T) {
	w := newTestWorld(t, 5, 5)
	player := NewPlayer()
	mustAdd(t, w, player, 2, 2)

	moves := []struct {
		dir        Facing
		wantX      int
		wantY      int
		wantResult bool
	}{
		{Right, 3, 2, true},
		{Down, 3, 3, true},
		{Left, 2, 3, true},
		{Up, 2, 2, true},
	}
	for _, m := range moves {
		ok, err := w.MovePlayer(player, m.dir)
		if err != nil {
			t.Fatalf("MovePlayer(%s): %v", m.dir, err)
		}
		if ok != m.wantResult {
			t.Errorf("MovePlayer(%s) = %v, want %v", m.dir, ok, m.wantResult)
		}
		assertAt(t, player, m.wantX, m.wantY)
	}
}

func TestMovePlayerBlockedBySolid(t *testing.T) {
	w := newTestWorld(t, 5, 5)
	player := NewPlayer()
	mustAdd(t, w, player, 2, 2)
	mustAdd(t, w, NewPiston(Up), 3, 2)
	mustAdd(t, w, NewTestItem(), 1, 2)

	ok, err := w.MovePlayer(player, Right)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("move into a solid tile should be rejected")
	}
	assertAt(t, player, 2, 2)

	ok, _ = w.MovePlayer(player, Left)
	if !ok {
		t.Error("move into a non-solid tile should succeed")
	}
	assertAt(t, player, 1, 2)
	if w.TopAt(1, 2) != player {
		t.Error("player should land on top of the item")
	}
}

func TestMovePlayerAtEdge(t *testing.T) {
	w := newTestWorld(t, 3, 3)
	player := NewPlayer()
	mustAdd(t, w, player, 0, 0)

	for _, dir := range []Facing{Up, Left} {
		ok, err := w.MovePlayer(player, dir)
		if err != nil || ok {
			t.Errorf("MovePlayer(%s) off the grid = %v, %v; want false, nil", dir, ok, err)
		}
	}
	assertAt(t, player, 0, 0)
}

func TestPickup(t *testing.T) {
	w := newTestWorld(t, 3, 3)
	player := NewPlayer()
	mustAdd(t, w, player, 1, 1)

	before := w.Len()
	got, err := w.Pickup(player)
	if err != nil || got != nil {
		t.Fatalf("pickup over floor = %v, %v; want nil, nil", got, err)
	}
	if w.Len() != before {
		t.Error("pickup over floor must not remove anything")
	}

	item := NewTestItem()
	if err := w.AddEntityUnder(item, player); err != nil {
		t.Fatal(err)
	}
	got, err = w.Pickup(player)
	if err != nil {
		t.Fatal(err)
	}
	if got != item {
		t.Fatalf("picked %v, want the item", got)
	}
	if _, _, ok := item.Position(); ok {
		t.Error("picked item should no longer be in the world")
	}
	for _, e := range w.Entities() {
		if e == item {
			t.Fatal("picked item still enumerated by the world")
		}
	}
	if err := w.CheckInvariants(); err != nil {
		t.Fatal(err)
	}
}

func TestPickupTakesOnlyDirectlyBeneath(t *testing.T) {
	w := newTestWorld(t, 3, 3)
	player := NewPlayer()
	low, high := NewTestItem(), NewTestItem()
	mustAdd(t, w, low, 1, 1)
	mustAdd(t, w, high, 1, 1)
	mustAdd(t, w, player, 1, 1)

	got, _ := w.Pickup(player)
	if got != high {
		t.Error("pickup should take the entity directly beneath the player")
	}
	assertAt(t, low, 1, 1)
}
