package world

import "github.com/lixenwraith/vi-factory/constants"

// Transport is a conveyor. Each turn it pushes every moveable entity stacked
// above it one cell in its facing direction.
type Transport struct {
	Base
	facing Facing
}

// NewTransport creates a conveyor with the given facing
func NewTransport(f Facing) *Transport {
	return &Transport{Base: newBase(0, PairTransport), facing: f & 3}
}

func (*Transport) Kind() Kind { return KindTransport }

func (t *Transport) Glyph() rune { return constants.TransportChars[t.facing] }

// Facing returns the push direction
func (t *Transport) Facing() Facing { return t.facing }

// SetFacing sets the push direction
func (t *Transport) SetFacing(f Facing) { t.facing = f & 3 }

// Rotate turns the conveyor 90 degrees clockwise
func (t *Transport) Rotate() { t.facing = t.facing.Rotate() }

// Act shifts the entities above, bottom first, each at most once per turn
func (t *Transport) Act(w *World) error {
	above, err := w.Above(t)
	if err != nil {
		return err
	}

	dx, dy := t.facing.Offset()
	for _, e := range above {
		if !e.Moveable() || e.Moved() {
			continue
		}
		if _, err := w.push(e, dx, dy); err != nil {
			return err
		}
	}
	return nil
}
