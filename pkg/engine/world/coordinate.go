package world

import "fmt"

// MapCoordinate identifies a tile by its column (X) and row (Y).
// It is a comparable value and can be used as a map or set key.
type MapCoordinate struct {
	X int
	Y int
}

// At is shorthand for MapCoordinate{X: x, Y: y}
func At(x, y int) MapCoordinate {
	return MapCoordinate{X: x, Y: y}
}

// Translate returns the coordinate one step away in the given direction
func (c MapCoordinate) Translate(dir Direction) MapCoordinate {
	dx, dy := dir.Delta()
	return MapCoordinate{X: c.X + dx, Y: c.Y + dy}
}

// ManhattanDistance returns the number of orthogonal steps between two coordinates
func (c MapCoordinate) ManhattanDistance(o MapCoordinate) int {
	dx := c.X - o.X
	dy := c.Y - o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func (c MapCoordinate) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// ParseCoordinate parses "x,y" into a MapCoordinate
func ParseCoordinate(s string) (MapCoordinate, error) {
	var c MapCoordinate
	if _, err := fmt.Sscanf(s, "%d,%d", &c.X, &c.Y); err != nil {
		return MapCoordinate{}, fmt.Errorf("invalid coordinate %q, want x,y: %w", s, err)
	}
	return c, nil
}
