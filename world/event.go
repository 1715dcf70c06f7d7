package world

// EventType discriminates world notifications
type EventType uint8

const (
	EventSpawn EventType = iota
	EventRemove
	EventMove
	EventPartPlaced
	EventPistonExtend
	EventPistonRetract
)

func (t EventType) String() string {
	switch t {
	case EventSpawn:
		return "spawn"
	case EventRemove:
		return "remove"
	case EventMove:
		return "move"
	case EventPartPlaced:
		return "part-placed"
	case EventPistonExtend:
		return "piston-extend"
	case EventPistonRetract:
		return "piston-retract"
	}
	return "unknown"
}

// Event describes a completed world mutation.
// X, Y is the entity's cell after the mutation (before it, for EventRemove).
type Event struct {
	Type   EventType
	Entity Entity
	X, Y   int
	Turn   int
}

// Listener observes world events. Implementations must not mutate the world.
type Listener interface {
	OnWorldEvent(ev Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(ev Event)

func (f ListenerFunc) OnWorldEvent(ev Event) { f(ev) }
