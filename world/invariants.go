package world

import "fmt"

// CheckInvariants verifies the structural invariants of the grid:
// every tile holds a Floor at position 0, and every entity's recorded
// position names the tile that holds it, exactly once.
func (w *World) CheckInvariants() error {
	seen := make(map[Entity]struct{}, w.count)
	total := 0

	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			t := w.tileAt(x, y)
			if t.Len() == 0 {
				return fmt.Errorf("tile (%d,%d) is empty", x, y)
			}
			if t.Bottom().Kind() != KindFloor {
				return fmt.Errorf("tile (%d,%d) has %s at the bottom", x, y, t.Bottom().Kind())
			}
			for i, e := range t.stack {
				if i > 0 && e.Kind() == KindFloor {
					return fmt.Errorf("tile (%d,%d) has a floor at position %d", x, y, i)
				}
				if _, dup := seen[e]; dup {
					return fmt.Errorf("entity %d (%s) appears more than once", e.ID(), e.Kind())
				}
				seen[e] = struct{}{}

				ex, ey, ok := e.Position()
				if !ok || ex != x || ey != y {
					return fmt.Errorf("entity %d (%s) in tile (%d,%d) records (%d,%d) placed=%v",
						e.ID(), e.Kind(), x, y, ex, ey, ok)
				}
				total++
			}
		}
	}

	if total != w.count {
		return fmt.Errorf("entity count %d does not match tiles %d", w.count, total)
	}
	return nil
}
