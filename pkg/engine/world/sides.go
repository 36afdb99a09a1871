package world

import "strings"

// Sides is a set of tile sides through which something can connect
type Sides uint8

// Side masks
const (
	NoSides   Sides = 0
	SideNorth Sides = 1 << North
	SideEast  Sides = 1 << East
	SideSouth Sides = 1 << South
	SideWest  Sides = 1 << West

	AllSides Sides = SideNorth | SideEast | SideSouth | SideWest
)

// SidesOf builds a mask from the given directions
func SidesOf(dirs ...Direction) Sides {
	var s Sides
	for _, d := range dirs {
		s |= d.Side()
	}
	return s
}

// Has returns true if the side facing dir is open
func (s Sides) Has(dir Direction) bool {
	side := dir.Side()
	return side != NoSides && s&side != 0
}

// Directions returns the open sides in traversal order
func (s Sides) Directions() []Direction {
	var dirs []Direction
	for _, d := range AllDirections() {
		if s.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (s Sides) String() string {
	if s == NoSides {
		return "None"
	}
	names := make([]string, 0, 4)
	for _, d := range s.Directions() {
		names = append(names, d.String())
	}
	return strings.Join(names, "|")
}
