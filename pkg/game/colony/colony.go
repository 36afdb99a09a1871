// Package colony holds the colony state and the rules that decide which
// structures are joined to the command center by the tube network.
package colony

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"outpost/pkg/engine/world"
	"outpost/pkg/game/entities"
)

const maxMessages = 5

var (
	// ErrOutOfBounds indicates a position outside the colony map.
	ErrOutOfBounds = errors.New("colony: position is outside the map")
	// ErrNotExcavated indicates a structure was placed on unexcavated ground.
	ErrNotExcavated = errors.New("colony: tile is not excavated")
	// ErrMineTile indicates a structure was placed on a mine.
	ErrMineTile = errors.New("colony: tile holds a mine")
	// ErrOccupied indicates a structure was placed on an occupied tile.
	ErrOccupied = errors.New("colony: tile is occupied")
	// ErrEmptyTile indicates a bulldoze on a tile with no structure.
	ErrEmptyTile = errors.New("colony: tile has no structure")
	// ErrCommandCenterExists indicates a second command center was placed.
	ErrCommandCenterExists = errors.New("colony: colony already has a command center")
	// ErrNoCommandCenter indicates the colony has no command center yet.
	ErrNoCommandCenter = errors.New("colony: colony has no command center")
	// ErrNoTubeConnection indicates a tube would not join the connected network.
	ErrNoTubeConnection = errors.New("colony: tube does not connect to the network")
)

// Colony represents the state of a colony map
type Colony struct {
	Name string
	Map  *world.TileMap

	structures    mapset.Set[*entities.Structure]
	commandCenter *entities.Structure

	Messages []string

	Turn int
}

// New creates a colony on the given map
func New(name string, m *world.TileMap) *Colony {
	return &Colony{
		Name:       name,
		Map:        m,
		structures: mapset.New[*entities.Structure](),
		Messages:   make([]string, 0),
	}
}

// AddMessage adds a message to the colony's message log
func (c *Colony) AddMessage(msg string, a ...any) {
	c.Messages = append(c.Messages, fmt.Sprintf(msg, a...))

	// Keep only the last maxMessages
	if len(c.Messages) > maxMessages {
		c.Messages = c.Messages[len(c.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (c *Colony) ClearMessages() {
	c.Messages = make([]string, 0)
}

// CommandCenter returns the colony's command center, or nil if none is placed
func (c *Colony) CommandCenter() *entities.Structure {
	return c.commandCenter
}

// StructureAt returns the structure on the tile at pos, or nil
func (c *Colony) StructureAt(pos world.MapCoordinate) *entities.Structure {
	tile := c.Map.GetTile(pos)
	if tile == nil || tile.Occupant == nil {
		return nil
	}
	s, _ := tile.Occupant.(*entities.Structure)
	return s
}

// StructureCount returns the number of placed structures
func (c *Colony) StructureCount() int {
	return c.structures.Size()
}

// Structures returns all placed structures ordered by map position, row by row
func (c *Colony) Structures() []*entities.Structure {
	out := make([]*entities.Structure, 0, c.structures.Size())
	c.Map.ForEachTile(func(pos world.MapCoordinate, tile *world.Tile) {
		if s := c.StructureAt(pos); s != nil && c.structures.Has(s) {
			out = append(out, s)
		}
	})
	return out
}

// AdvanceTurn increments the turn counter and re-runs the connectedness check
func (c *Colony) AdvanceTurn() {
	c.Turn++
	c.CheckConnectedness()
}
