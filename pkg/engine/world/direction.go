package world

// Direction represents one of the four orthogonal map directions
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns the directions in traversal order: North, East, South, West
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four orthogonal directions
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction facing the other way.
// Invalid directions are returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x and y offsets of one step in this direction.
// Y grows southwards, so North is (0, -1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Side returns the single-side mask for this direction
func (d Direction) Side() Sides {
	if !d.IsValid() {
		return NoSides
	}
	return Sides(1 << uint(d))
}
