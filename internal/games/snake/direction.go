package snake

// Direction represents the head's movement direction.
type Direction int

const (
	// DirNone is the pre-game state: the snake does not move until the
	// first directional input arrives.
	DirNone Direction = iota
	DirLeft
	DirUp
	DirRight
	DirDown
)

// Delta returns the unit displacement for the direction.
func (d Direction) Delta() Position {
	switch d {
	case DirLeft:
		return Position{X: -1}
	case DirRight:
		return Position{X: 1}
	case DirUp:
		return Position{Y: 1}
	case DirDown:
		return Position{Y: -1}
	default:
		return Position{}
	}
}

// Opposite returns the reverse direction. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a single letter (L, U, R, D, case-insensitive) to a
// direction. Any other rune yields DirNone.
func ParseDirection(r rune) Direction {
	switch r {
	case 'L', 'l':
		return DirLeft
	case 'U', 'u':
		return DirUp
	case 'R', 'r':
		return DirRight
	case 'D', 'd':
		return DirDown
	default:
		return DirNone
	}
}
