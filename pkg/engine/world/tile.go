// Package world provides the tile map primitives of the colony map.
// These are engine-level constructs; the game layer decides what occupies a tile.
package world

// Connector is implemented by anything that can occupy a tile and join a network.
// Openings reports which sides of the tile the occupant connects through.
type Connector interface {
	Openings() Sides
}

// Tile represents a single map tile.
type Tile struct {
	Position MapCoordinate

	// Terrain state
	Excavated bool
	Mine      bool // Ore mine; a mine never joins the tube network

	// Occupant is the structure standing on this tile, nil when empty
	Occupant Connector

	// Connected is set by the colony's connectedness check
	Connected bool
}

// NewTile creates an excavated, empty tile at the given position
func NewTile(pos MapCoordinate) *Tile {
	return &Tile{
		Position:  pos,
		Excavated: true,
	}
}

// Empty returns true if nothing occupies the tile
func (t *Tile) Empty() bool {
	return t.Occupant == nil
}

// Buildable returns true if a structure may be placed on this tile
func (t *Tile) Buildable() bool {
	return t.Excavated && !t.Mine && t.Empty()
}

// Openings returns the sides the tile connects through.
// Unexcavated tiles, mines and empty tiles have no openings.
func (t *Tile) Openings() Sides {
	if t == nil || !t.Excavated || t.Mine || t.Occupant == nil {
		return NoSides
	}
	return t.Occupant.Openings()
}

// CanEnterFrom returns true if traversal may enter this tile through the given side
func (t *Tile) CanEnterFrom(side Direction) bool {
	return t.Openings().Has(side)
}

// IsConnective returns true if the tile connects through at least one side
func (t *Tile) IsConnective() bool {
	return t.Openings() != NoSides
}
