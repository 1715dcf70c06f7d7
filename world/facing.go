package world

// Facing is one of the four cardinal directions
type Facing uint8

const (
	Up Facing = iota
	Right
	Down
	Left
)

// offsets indexed by Facing, screen coordinates (y grows downward)
var offsets = [4][2]int{
	Up:    {0, -1},
	Right: {1, 0},
	Down:  {0, 1},
	Left:  {-1, 0},
}

// Offset returns the unit step for the facing
func (f Facing) Offset() (dx, dy int) {
	o := offsets[f&3]
	return o[0], o[1]
}

// Angle returns the facing in degrees, 0 being up and increasing clockwise
func (f Facing) Angle() int {
	return int(f&3) * 90
}

// Rotate returns the facing turned 90 degrees clockwise
func (f Facing) Rotate() Facing {
	return (f + 1) & 3
}

// Opposite returns the reverse facing
func (f Facing) Opposite() Facing {
	return (f + 2) & 3
}

// Horizontal reports whether the facing lies on the x axis
func (f Facing) Horizontal() bool {
	return f&3 == Right || f&3 == Left
}

func (f Facing) String() string {
	switch f & 3 {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "left"
	}
}

// FacingFromAngle converts 0/90/180/270 to a Facing
func FacingFromAngle(angle int) (Facing, bool) {
	switch angle {
	case 0:
		return Up, true
	case 90:
		return Right, true
	case 180:
		return Down, true
	case 270:
		return Left, true
	}
	return Up, false
}
