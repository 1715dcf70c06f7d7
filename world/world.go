package world

import (
	"fmt"
)

// Point is a grid coordinate
type Point struct {
	X, Y int
}

// Placement selects where Add inserts an entity. Exactly one field must be set.
type Placement struct {
	At    *Point
	Under Entity
}

// At places on top of the tile at (x, y)
func At(x, y int) Placement {
	return Placement{At: &Point{X: x, Y: y}}
}

// Under places directly beneath ref, in ref's tile
func Under(ref Entity) Placement {
	return Placement{Under: ref}
}

// World is a fixed-size grid of tile stacks plus the turn counter.
// All placement, removal and movement goes through its methods so an entity's
// recorded position always names the tile that holds it.
type World struct {
	width, height int
	tiles         []Tile // index = y*width + x
	turns         int

	nextID   EntityID
	count    int
	listener Listener
}

// New creates a world with a Floor in every cell
func New(width, height int) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("world size %dx%d: %w", width, height, ErrInvalidArgument)
	}

	w := &World{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
		nextID: 1,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f := NewFloor()
			w.register(f, x, y)
			w.tileAt(x, y).Append(f)
		}
	}
	return w, nil
}

func (w *World) Width() int  { return w.width }
func (w *World) Height() int { return w.height }

// Turns returns the number of steps taken
func (w *World) Turns() int { return w.turns }

// Len returns the number of entities in the world, floors included
func (w *World) Len() int { return w.count }

// SetListener installs the event observer, nil to remove
func (w *World) SetListener(l Listener) {
	w.listener = l
}

// InBounds reports whether (x, y) is a cell of the grid
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

func (w *World) tileAt(x, y int) *Tile {
	return &w.tiles[y*w.width+x]
}

// TileAt returns the tile at (x, y), nil outside the grid.
// The tile is for reading; mutate through World methods.
func (w *World) TileAt(x, y int) *Tile {
	if !w.InBounds(x, y) {
		return nil
	}
	return w.tileAt(x, y)
}

// TopAt returns the topmost entity at (x, y), nil outside the grid
func (w *World) TopAt(x, y int) Entity {
	t := w.TileAt(x, y)
	if t == nil {
		return nil
	}
	return t.Top()
}

func (w *World) register(e Entity, x, y int) {
	b := e.base()
	b.id = w.nextID
	w.nextID++
	b.x, b.y, b.placed = x, y, true
	w.count++
}

func (w *World) emit(typ EventType, e Entity, x, y int) {
	if w.listener == nil {
		return
	}
	w.listener.OnWorldEvent(Event{Type: typ, Entity: e, X: x, Y: y, Turn: w.turns})
}

// locate resolves e's recorded position to its tile and stack index
func (w *World) locate(e Entity) (*Tile, int, error) {
	if e == nil {
		return nil, -1, fmt.Errorf("nil entity: %w", ErrNotFound)
	}
	b := e.base()
	if !b.placed || !w.InBounds(b.x, b.y) {
		return nil, -1, fmt.Errorf("entity %d (%s) not in world: %w", b.id, e.Kind(), ErrNotFound)
	}
	t := w.tileAt(b.x, b.y)
	i := t.Index(e)
	if i < 0 {
		return nil, -1, fmt.Errorf("entity %d (%s) missing from tile (%d,%d): %w", b.id, e.Kind(), b.x, b.y, ErrNotFound)
	}
	return t, i, nil
}

// Add inserts e according to p
func (w *World) Add(e Entity, p Placement) error {
	if e == nil {
		return fmt.Errorf("add nil entity: %w", ErrInvalidArgument)
	}
	if (p.At == nil) == (p.Under == nil) {
		return fmt.Errorf("add entity: exactly one of coordinates or reference required: %w", ErrInvalidArgument)
	}
	if e.base().placed {
		return fmt.Errorf("add entity %d: already placed: %w", e.ID(), ErrInvalidArgument)
	}

	if p.At != nil {
		x, y := p.At.X, p.At.Y
		if !w.InBounds(x, y) {
			return fmt.Errorf("add entity at (%d,%d): %w", x, y, ErrInvalidArgument)
		}
		w.register(e, x, y)
		w.tileAt(x, y).Append(e)
		w.emit(EventSpawn, e, x, y)
		return nil
	}

	t, _, err := w.locate(p.Under)
	if err != nil {
		return fmt.Errorf("add entity under reference: %w", err)
	}
	if p.Under.Kind() == KindFloor {
		return fmt.Errorf("add entity under floor %d: %w", p.Under.ID(), ErrInvalidArgument)
	}
	rb := p.Under.base()
	if err := t.InsertBefore(e, p.Under); err != nil {
		return err
	}
	w.register(e, rb.x, rb.y)
	w.emit(EventSpawn, e, rb.x, rb.y)
	return nil
}

// AddEntity places e on top of the tile at (x, y)
func (w *World) AddEntity(e Entity, x, y int) error {
	return w.Add(e, At(x, y))
}

// AddEntityUnder places e directly beneath ref
func (w *World) AddEntityUnder(e, ref Entity) error {
	return w.Add(e, Under(ref))
}

// RemoveEntity takes e out of its tile. Floors cannot be removed.
func (w *World) RemoveEntity(e Entity) error {
	t, _, err := w.locate(e)
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	if e.Kind() == KindFloor {
		return fmt.Errorf("remove floor %d: %w", e.ID(), ErrInvalidArgument)
	}
	if err := t.Remove(e); err != nil {
		return err
	}
	b := e.base()
	b.placed = false
	b.moved = false
	w.count--
	w.emit(EventRemove, e, b.x, b.y)
	return nil
}

// MoveAbsolute moves e to the top of the tile at (x, y). Floors never move.
func (w *World) MoveAbsolute(e Entity, x, y int) error {
	t, _, err := w.locate(e)
	if err != nil {
		return fmt.Errorf("move: %w", err)
	}
	if e.Kind() == KindFloor {
		return fmt.Errorf("move floor %d: %w", e.ID(), ErrInvalidArgument)
	}
	if !w.InBounds(x, y) {
		return fmt.Errorf("move entity %d to (%d,%d): %w", e.ID(), x, y, ErrOutOfBounds)
	}
	if err := t.Remove(e); err != nil {
		return err
	}
	w.tileAt(x, y).Append(e)
	b := e.base()
	b.x, b.y = x, y
	w.emit(EventMove, e, x, y)
	return nil
}

// MoveRelative moves e by (dx, dy)
func (w *World) MoveRelative(e Entity, dx, dy int) error {
	x, y, ok := e.Position()
	if !ok {
		return fmt.Errorf("move entity %d: %w", e.ID(), ErrNotFound)
	}
	return w.MoveAbsolute(e, x+dx, y+dy)
}

// IsTileFree reports whether no solid entity occupies (x, y).
// Cells outside the grid are never free.
func (w *World) IsTileFree(x, y int) bool {
	if !w.InBounds(x, y) {
		return false
	}
	for _, e := range w.tileAt(x, y).stack {
		if e.Solid() {
			return false
		}
	}
	return true
}

// Below returns the entities strictly below e in its tile
func (w *World) Below(e Entity) ([]Entity, error) {
	t, _, err := w.locate(e)
	if err != nil {
		return nil, err
	}
	return t.Below(e)
}

// Above returns the entities strictly above e in its tile
func (w *World) Above(e Entity) ([]Entity, error) {
	t, _, err := w.locate(e)
	if err != nil {
		return nil, err
	}
	return t.Above(e)
}

// Under returns the entity directly beneath e, nil when e is at the bottom
func (w *World) Under(e Entity) (Entity, error) {
	t, i, err := w.locate(e)
	if err != nil {
		return nil, err
	}
	if i == 0 {
		return nil, nil
	}
	return t.stack[i-1], nil
}

// Entities returns every entity, tile-major (row by row), bottom to top
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, w.count)
	for i := range w.tiles {
		out = append(out, w.tiles[i].stack...)
	}
	return out
}
