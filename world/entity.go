package world

import "github.com/lixenwraith/vi-factory/constants"

// EntityID is assigned by the World when an entity is first inserted
type EntityID uint64

// Kind tags the closed set of entity variants
type Kind uint8

const (
	KindFloor Kind = iota
	KindItem
	KindTransport
	KindPiston
	KindMovingPart
	KindRobohand
	KindHand
	KindPlayer
)

var kindNames = [...]string{
	KindFloor:      "floor",
	KindItem:       "item",
	KindTransport:  "transport",
	KindPiston:     "piston",
	KindMovingPart: "moving-part",
	KindRobohand:   "robohand",
	KindHand:       "hand",
	KindPlayer:     "player",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ColorPair identifies a foreground/background combination resolved by the renderer
type ColorPair uint8

const (
	PairBackground ColorPair = iota
	PairPlayer
	PairError
	PairTransport
	PairPiston
	PairRobohand
	PairItem
)

// Entity is a grid occupant. The set of implementations is closed to this package.
type Entity interface {
	ID() EntityID
	Kind() Kind
	Glyph() rune
	ColorPair() ColorPair
	Moveable() bool
	Solid() bool
	Moved() bool
	Position() (x, y int, ok bool)

	// Act runs the entity's per-turn behavior
	Act(w *World) error

	base() *Base
}

// Base holds the state shared by every variant.
// Location fields are written only by World mutation operations.
type Base struct {
	id       EntityID
	moveable bool
	solid    bool
	moved    bool

	x, y   int
	placed bool

	glyph rune
	pair  ColorPair
}

func newBase(glyph rune, pair ColorPair) Base {
	return Base{glyph: glyph, pair: pair}
}

func (b *Base) base() *Base { return b }

func (b *Base) ID() EntityID         { return b.id }
func (b *Base) Glyph() rune          { return b.glyph }
func (b *Base) ColorPair() ColorPair { return b.pair }
func (b *Base) Moveable() bool       { return b.moveable }
func (b *Base) Solid() bool          { return b.solid }
func (b *Base) Moved() bool          { return b.moved }

// Position returns the entity's cell; ok is false while it is outside any world
func (b *Base) Position() (x, y int, ok bool) {
	return b.x, b.y, b.placed
}

// Act is the passive default
func (b *Base) Act(*World) error { return nil }

// Floor fills every cell at world creation and is never removed
type Floor struct {
	Base
}

// NewFloor creates a floor tile base
func NewFloor() *Floor {
	return &Floor{Base: newBase(constants.FloorChar, PairBackground)}
}

func (*Floor) Kind() Kind { return KindFloor }

// Item is a moveable object that can be picked up
type Item struct {
	Base
}

// NewItem creates a moveable item with the given glyph
func NewItem(glyph rune) *Item {
	it := &Item{Base: newBase(glyph, PairItem)}
	it.moveable = true
	return it
}

// NewTestItem creates the plain spawnable item
func NewTestItem() *Item {
	return NewItem(constants.ItemChar)
}

func (*Item) Kind() Kind { return KindItem }
