package world

import "fmt"

// Tile is the ordered entity stack of one cell, bottom to top
type Tile struct {
	stack []Entity
}

// Len returns the number of entities in the tile
func (t *Tile) Len() int { return len(t.stack) }

// Index returns the stack position of e, or -1
func (t *Tile) Index(e Entity) int {
	for i, s := range t.stack {
		if s == e {
			return i
		}
	}
	return -1
}

// Contains reports whether e is in the tile
func (t *Tile) Contains(e Entity) bool {
	return t.Index(e) >= 0
}

// Top returns the topmost entity, nil for an empty tile
func (t *Tile) Top() Entity {
	if len(t.stack) == 0 {
		return nil
	}
	return t.stack[len(t.stack)-1]
}

// Bottom returns the lowest entity, nil for an empty tile
func (t *Tile) Bottom() Entity {
	if len(t.stack) == 0 {
		return nil
	}
	return t.stack[0]
}

// Entities returns a copy of the stack
func (t *Tile) Entities() []Entity {
	out := make([]Entity, len(t.stack))
	copy(out, t.stack)
	return out
}

// Append pushes e on top
func (t *Tile) Append(e Entity) {
	t.stack = append(t.stack, e)
}

// InsertBefore places e immediately below ref
func (t *Tile) InsertBefore(e, ref Entity) error {
	i := t.Index(ref)
	if i < 0 {
		return fmt.Errorf("insert below entity %d: %w", ref.ID(), ErrNotFound)
	}
	t.stack = append(t.stack, nil)
	copy(t.stack[i+1:], t.stack[i:])
	t.stack[i] = e
	return nil
}

// Remove deletes e, preserving the order of the rest
func (t *Tile) Remove(e Entity) error {
	i := t.Index(e)
	if i < 0 {
		return fmt.Errorf("remove entity %d: %w", e.ID(), ErrNotFound)
	}
	copy(t.stack[i:], t.stack[i+1:])
	t.stack[len(t.stack)-1] = nil
	t.stack = t.stack[:len(t.stack)-1]
	return nil
}

// Below returns a copy of the entities strictly below e
func (t *Tile) Below(e Entity) ([]Entity, error) {
	i := t.Index(e)
	if i < 0 {
		return nil, fmt.Errorf("entities below %d: %w", e.ID(), ErrNotFound)
	}
	out := make([]Entity, i)
	copy(out, t.stack[:i])
	return out, nil
}

// Above returns a copy of the entities strictly above e
func (t *Tile) Above(e Entity) ([]Entity, error) {
	i := t.Index(e)
	if i < 0 {
		return nil, fmt.Errorf("entities above %d: %w", e.ID(), ErrNotFound)
	}
	out := make([]Entity, len(t.stack)-i-1)
	copy(out, t.stack[i+1:])
	return out, nil
}
