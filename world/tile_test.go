package world

import (
	"errors"
	"testing"
)

func stackOf(es ...Entity) *Tile {
	t := &Tile{}
	for _, e := range es {
		t.Append(e)
	}
	return t
}

func TestTileAppendAndTop(t *testing.T) {
	floor, a, b := NewFloor(), NewTestItem(), NewTestItem()
	tile := stackOf(floor, a, b)

	if tile.Len() != 3 {
		t.Fatalf("Len = %d, want 3", tile.Len())
	}
	if tile.Top() != b {
		t.Error("Top should be the last appended entity")
	}
	if tile.Bottom() != floor {
		t.Error("Bottom should be the first appended entity")
	}
}

func TestTileInsertBefore(t *testing.T) {
	floor, player, item := NewFloor(), NewPlayer(), NewTestItem()
	tile := stackOf(floor, player)

	if err := tile.InsertBefore(item, player); err != nil {
		t.Fatalf("InsertBefore: %v", err)
	}

	got := tile.Entities()
	want := []Entity{floor, item, player}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stack[%d] = %s, want %s", i, got[i].Kind(), want[i].Kind())
		}
	}

	if err := tile.InsertBefore(NewTestItem(), NewTestItem()); !errors.Is(err, ErrNotFound) {
		t.Errorf("InsertBefore missing reference: got %v, want ErrNotFound", err)
	}
}

func TestTileRemovePreservesOrder(t *testing.T) {
	floor, a, b, c := NewFloor(), NewTestItem(), NewTestItem(), NewTestItem()
	tile := stackOf(floor, a, b, c)

	if err := tile.Remove(b); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	got := tile.Entities()
	if len(got) != 3 || got[0] != floor || got[1] != a || got[2] != c {
		t.Errorf("unexpected order after remove: %v", got)
	}

	if err := tile.Remove(b); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove: got %v, want ErrNotFound", err)
	}
}

func TestTileAboveBelow(t *testing.T) {
	floor, a, b := NewFloor(), NewTestItem(), NewTestItem()
	tile := stackOf(floor, a, b)

	tests := []struct {
		name      string
		of        Entity
		wantAbove int
		wantBelow int
	}{
		{"bottom", floor, 2, 0},
		{"middle", a, 1, 1},
		{"top", b, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			above, err := tile.Above(tt.of)
			if err != nil {
				t.Fatalf("Above: %v", err)
			}
			below, err := tile.Below(tt.of)
			if err != nil {
				t.Fatalf("Below: %v", err)
			}
			if len(above) != tt.wantAbove {
				t.Errorf("len(Above) = %d, want %d", len(above), tt.wantAbove)
			}
			if len(below) != tt.wantBelow {
				t.Errorf("len(Below) = %d, want %d", len(below), tt.wantBelow)
			}
		})
	}

	if _, err := tile.Above(NewTestItem()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Above on absent entity: got %v, want ErrNotFound", err)
	}
}

func TestTileAboveReturnsCopy(t *testing.T) {
	floor, a := NewFloor(), NewTestItem()
	tile := stackOf(floor, a)

	above, _ := tile.Above(floor)
	above[0] = nil

	if tile.Top() != a {
		t.Error("mutating the Above result must not change the tile")
	}
}
