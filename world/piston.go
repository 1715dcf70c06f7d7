package world

import "github.com/lixenwraith/vi-factory/constants"

// partNeverMoved puts a fresh part's last move far enough in the past that
// neither the retract nor the extend delay applies
const partNeverMoved = -2

// Piston owns one MovingPart, placed in front of it on its first turn
type Piston struct {
	Base
	facing Facing
	part   *MovingPart
}

// NewPiston creates a solid piston with the given facing
func NewPiston(f Facing) *Piston {
	p := &Piston{Base: newBase(0, PairPiston), facing: f & 3}
	p.solid = true
	return p
}

func (*Piston) Kind() Kind { return KindPiston }

func (p *Piston) Glyph() rune { return constants.PistonChars[p.facing] }

// Facing returns the extension direction
func (p *Piston) Facing() Facing { return p.facing }

// Part returns the moving part, nil until the piston has acted once
func (p *Piston) Part() *MovingPart { return p.part }

// Act inserts the moving part on the first turn it can
func (p *Piston) Act(w *World) error {
	if p.part != nil {
		return nil
	}

	x, y, _ := p.Position()
	dx, dy := p.facing.Offset()
	tx, ty := x+dx*constants.PistonReach, y+dy*constants.PistonReach
	if !w.InBounds(tx, ty) {
		return nil
	}

	part := &MovingPart{
		Base:    newBase(0, PairPiston),
		piston:  p,
		movedOn: partNeverMoved,
	}
	part.solid = true
	if err := w.AddEntity(part, tx, ty); err != nil {
		return err
	}
	p.part = part
	w.emit(EventPartPlaced, part, tx, ty)
	return nil
}

// MovingPart is the piston head. It extends when material is in front of it
// and snaps back the turn after each extension.
type MovingPart struct {
	Base
	piston  *Piston
	movedOn int
}

func (*MovingPart) Kind() Kind { return KindMovingPart }

func (m *MovingPart) Glyph() rune {
	if m.piston.facing.Horizontal() {
		return constants.PartHorizontalChar
	}
	return constants.PartVerticalChar
}

// Piston returns the owning piston
func (m *MovingPart) Piston() *Piston { return m.piston }

// MovedOn returns the turn of the last extension
func (m *MovingPart) MovedOn() int { return m.movedOn }

func (m *MovingPart) Act(w *World) error {
	turns := w.Turns()
	mx, my, _ := m.Position()

	if turns-m.movedOn == 1 {
		px, py, ok := m.piston.Position()
		if !ok {
			return nil
		}
		// Integer half of the vector back to the piston; exact only at distance 2
		if err := w.MoveRelative(m, (px-mx)/2, (py-my)/2); err != nil {
			return err
		}
		m.moved = true
		x, y, _ := m.Position()
		w.emit(EventPistonRetract, m, x, y)
		return nil
	}

	dx, dy := m.piston.facing.Offset()
	ax, ay := mx+dx, my+dy
	if !w.InBounds(ax, ay) || turns-m.movedOn <= 1 {
		return nil
	}

	ahead := w.tileAt(ax, ay)
	if ahead.Len() < 2 {
		return nil
	}
	load := ahead.Entities()[1:]
	if !w.InBounds(ax+dx, ay+dy) {
		return nil
	}

	for _, e := range load {
		if _, err := w.push(e, dx, dy); err != nil {
			return err
		}
	}
	if _, err := w.push(m, dx, dy); err != nil {
		return err
	}
	m.movedOn = turns
	w.emit(EventPistonExtend, m, ax, ay)
	return nil
}
