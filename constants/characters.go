package constants

// Entity glyphs
const (
	FloorChar  = '#'
	ItemChar   = '$'
	PlayerChar = '@'
	ErrorChar  = '?'
)

// Direction-indexed glyphs, ordered Up, Right, Down, Left
var (
	TransportChars = [4]rune{'^', '>', 'v', '<'}
	PistonChars    = [4]rune{'┴', '├', '┬', '┤'}
	RobohandChars  = [4]rune{'╩', '╠', '╦', '╣'}
)

// Moving part glyphs by axis
const (
	PartHorizontalChar = '━'
	PartVerticalChar   = '┃'
)
