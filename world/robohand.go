package world

import "github.com/lixenwraith/vi-factory/constants"

// Robohand is a solid robotic arm. It places its Hand in front of it once and
// has no further behavior.
type Robohand struct {
	Base
	facing Facing
	hand   *Hand
}

// NewRobohand creates a robotic arm with the given facing
func NewRobohand(f Facing) *Robohand {
	r := &Robohand{Base: newBase(0, PairRobohand), facing: f & 3}
	r.solid = true
	return r
}

func (*Robohand) Kind() Kind { return KindRobohand }

func (r *Robohand) Glyph() rune { return constants.RobohandChars[r.facing] }

// Facing returns the direction the arm reaches in
func (r *Robohand) Facing() Facing { return r.facing }

// Hand returns the hand, nil until the arm has acted once
func (r *Robohand) Hand() *Hand { return r.hand }

func (r *Robohand) Act(w *World) error {
	if r.hand != nil {
		return nil
	}

	x, y, _ := r.Position()
	dx, dy := r.facing.Offset()
	tx, ty := x+dx*constants.RobohandReach, y+dy*constants.RobohandReach
	if !w.InBounds(tx, ty) {
		return nil
	}

	hand := &Hand{Base: newBase(0, PairRobohand), arm: r}
	if err := w.AddEntity(hand, tx, ty); err != nil {
		return err
	}
	r.hand = hand
	w.emit(EventPartPlaced, hand, tx, ty)
	return nil
}

// Hand is the end of a robotic arm. It has no behavior yet.
type Hand struct {
	Base
	arm *Robohand
}

func (*Hand) Kind() Kind { return KindHand }

// Glyph faces back toward the arm
func (h *Hand) Glyph() rune { return constants.RobohandChars[h.arm.facing.Opposite()] }

// Arm returns the owning robotic arm
func (h *Hand) Arm() *Robohand { return h.arm }
