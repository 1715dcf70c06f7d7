package audio

import "github.com/lixenwraith/vi-factory/world"

// Cue is a short sound tied to a world event
type Cue int

const (
	CueNone Cue = iota
	CueSlam     // piston extends
	CueRetract  // piston pulls back
	CuePickup   // player takes an item
	CuePlace    // player builds a device
)

func (c Cue) String() string {
	switch c {
	case CueSlam:
		return "slam"
	case CueRetract:
		return "retract"
	case CuePickup:
		return "pickup"
	case CuePlace:
		return "place"
	default:
		return "none"
	}
}

// CueFor maps a world event to its cue, CueNone when the event is silent
func CueFor(ev world.Event) Cue {
	switch ev.Type {
	case world.EventPistonExtend:
		return CueSlam
	case world.EventPistonRetract:
		return CueRetract
	case world.EventRemove:
		return CuePickup
	case world.EventSpawn:
		if ev.Entity == nil {
			return CueNone
		}
		switch ev.Entity.Kind() {
		case world.KindTransport, world.KindPiston, world.KindRobohand:
			return CuePlace
		}
	}
	return CueNone
}
