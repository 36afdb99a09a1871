package colony

import (
	"outpost/pkg/engine/world"
	"outpost/pkg/game/connectivity"
	"outpost/pkg/game/entities"
)

// CheckConnectedness clears every tile's Connected flag, walks the tube network
// from the command center and marks every reached tile and structure connected.
// Structures that need a connection and were not reached are disabled; ones that
// were reached again are re-enabled. Returns the reached coordinates, or nil when
// the colony has no command center.
func (c *Colony) CheckConnectedness() *connectivity.ReachableSet {
	c.Map.ClearConnected()

	var reached *connectivity.ReachableSet
	if cc := c.commandCenter; cc != nil {
		var err error
		reached, err = connectivity.Reachable(cc.Position, c.Map)
		if err != nil {
			// command center tile must stay excavated and mine-free
			panic(err)
		}
		reached.Each(func(pos world.MapCoordinate) {
			c.Map.GetTile(pos).Connected = true
		})
	}

	c.structures.Each(func(s *entities.Structure) {
		s.SetConnected(reached != nil && reached.Has(s.Position))
	})

	return reached
}

// ConnectedStructures returns the structures reached by the last check, in map order
func (c *Colony) ConnectedStructures() []*entities.Structure {
	var out []*entities.Structure
	for _, s := range c.Structures() {
		if s.Connected() {
			out = append(out, s)
		}
	}
	return out
}

// DisconnectedStructures returns the structures not reached by the last check, in map order
func (c *Colony) DisconnectedStructures() []*entities.Structure {
	var out []*entities.Structure
	for _, s := range c.Structures() {
		if !s.Connected() {
			out = append(out, s)
		}
	}
	return out
}

// IsConnected returns true if the tile at pos was reached by the last check
func (c *Colony) IsConnected(pos world.MapCoordinate) bool {
	tile := c.Map.GetTile(pos)
	return tile != nil && tile.Connected
}

// CanPlaceTube returns true if a tube with the given connector at pos would join
// the connected network: some neighbor must be connected and both tiles must be
// open on the shared edge.
func (c *Colony) CanPlaceTube(pos world.MapCoordinate, dir entities.ConnectorDir) bool {
	tile := c.Map.GetTile(pos)
	if tile == nil || !tile.Buildable() {
		return false
	}
	sides := dir.Sides()
	for _, d := range world.AllDirections() {
		if !sides.Has(d) {
			continue
		}
		neighbor := c.Map.GetTileRelative(pos, d)
		if neighbor != nil && neighbor.Connected && neighbor.CanEnterFrom(d.Opposite()) {
			return true
		}
	}
	return false
}
