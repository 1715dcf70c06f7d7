package world

import "fmt"

// Step advances the simulation one turn: increment the counter, run every
// entity's Act in tile-major, bottom-to-top order, then clear moved flags.
//
// The act order is fixed by a snapshot taken before the first Act. An entity
// moved by an earlier device still acts this turn from its new cell; parts
// inserted during the act-phase first act next turn.
// An error from Act aborts the turn and is returned unchanged.
func (w *World) Step() error {
	w.turns++

	for _, e := range w.Entities() {
		if !e.base().placed {
			continue
		}
		if err := e.Act(w); err != nil {
			return fmt.Errorf("turn %d: %s %d: %w", w.turns, e.Kind(), e.ID(), err)
		}
	}

	w.clearMoved()
	return nil
}

func (w *World) clearMoved() {
	for i := range w.tiles {
		for _, e := range w.tiles[i].stack {
			e.base().moved = false
		}
	}
}

// push moves e by (dx, dy) and marks it moved for the rest of the turn.
// Returns false when the destination is outside the grid.
func (w *World) push(e Entity, dx, dy int) (bool, error) {
	if err := w.MoveRelative(e, dx, dy); err != nil {
		if isOutOfBounds(err) {
			return false, nil
		}
		return false, err
	}
	e.base().moved = true
	return true, nil
}
