package colony

import (
	"fmt"

	"outpost/pkg/engine/world"
	"outpost/pkg/game/entities"
)

// PlaceStructure puts s on the tile at pos and re-runs the connectedness check.
// Only one command center may exist.
func (c *Colony) PlaceStructure(pos world.MapCoordinate, s *entities.Structure) error {
	tile := c.Map.GetTile(pos)
	switch {
	case tile == nil:
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	case !tile.Excavated:
		return fmt.Errorf("%w: %v", ErrNotExcavated, pos)
	case tile.Mine:
		return fmt.Errorf("%w: %v", ErrMineTile, pos)
	case !tile.Empty():
		return fmt.Errorf("%w: %v", ErrOccupied, pos)
	case s.IsCommandCenter() && c.commandCenter != nil:
		return fmt.Errorf("%w at %v", ErrCommandCenterExists, c.commandCenter.Position)
	}

	s.Position = pos
	tile.Occupant = s
	c.structures.Put(s)
	if s.IsCommandCenter() {
		c.commandCenter = s
	}

	c.CheckConnectedness()
	return nil
}

// PlaceTube places a tube that must join the connected network
func (c *Colony) PlaceTube(pos world.MapCoordinate, dir entities.ConnectorDir) (*entities.Structure, error) {
	if c.commandCenter == nil {
		return nil, ErrNoCommandCenter
	}
	if !c.CanPlaceTube(pos, dir) {
		return nil, fmt.Errorf("%w: %v %v", ErrNoTubeConnection, pos, dir)
	}
	tube := entities.NewTube(dir)
	if err := c.PlaceStructure(pos, tube); err != nil {
		return nil, err
	}
	return tube, nil
}

// Bulldoze removes the structure on the tile at pos and re-runs the connectedness check
func (c *Colony) Bulldoze(pos world.MapCoordinate) (*entities.Structure, error) {
	tile := c.Map.GetTile(pos)
	if tile == nil {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	s := c.StructureAt(pos)
	if s == nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyTile, pos)
	}

	tile.Occupant = nil
	c.structures.Remove(s)
	if s == c.commandCenter {
		c.commandCenter = nil
	}
	s.SetConnected(false)

	c.CheckConnectedness()
	return s, nil
}
