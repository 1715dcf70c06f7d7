package world

import "github.com/lixenwraith/vi-factory/constants"

// Player is the user-controlled entity. It has no autonomous behavior.
type Player struct {
	Base
}

// NewPlayer creates the player entity
func NewPlayer() *Player {
	return &Player{Base: newBase(constants.PlayerChar, PairPlayer)}
}

func (*Player) Kind() Kind { return KindPlayer }

// MovePlayer moves p one cell toward dir when the destination holds no solid
// entity. A blocked move is a silent no-op; the result reports whether p moved.
func (w *World) MovePlayer(p *Player, dir Facing) (bool, error) {
	x, y, ok := p.Position()
	if !ok {
		return false, ErrNotFound
	}
	dx, dy := dir.Offset()
	if !w.IsTileFree(x+dx, y+dy) {
		return false, nil
	}
	if err := w.MoveRelative(p, dx, dy); err != nil {
		return false, err
	}
	return true, nil
}

// Pickup removes the entity directly beneath p unless it is the Floor.
// The removed entity is returned to the caller; nil when nothing was taken.
func (w *World) Pickup(p *Player) (Entity, error) {
	under, err := w.Under(p)
	if err != nil {
		return nil, err
	}
	if under == nil || under.Kind() == KindFloor {
		return nil, nil
	}
	if err := w.RemoveEntity(under); err != nil {
		return nil, err
	}
	return under, nil
}
