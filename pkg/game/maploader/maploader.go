// Package maploader reads colony maps from YAML files.
//
// A map file names the colony and draws the surface one string per row:
//
//	name: Landing Site
//	rows:
//	  - "#....."
//	  - "#C-+S."
//	  - "#..|.m"
//
// Symbols: '#' unexcavated rock, '.' excavated ground, 'm' ore mine,
// '+' '-' '|' intersection, east-west and north-south tubes, and the
// structure symbols from entities.StructureTypes ('C' command center, ...).
package maploader

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"outpost/pkg/engine/world"
	"outpost/pkg/game/colony"
	"outpost/pkg/game/entities"
)

var (
	// ErrEmptyMap indicates a map file with no rows or an empty row.
	ErrEmptyMap = errors.New("maploader: map must have at least one row and one column")
	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("maploader: all rows must have the same length")
	// ErrUnknownSymbol indicates a character with no meaning on the map.
	ErrUnknownSymbol = errors.New("maploader: unknown map symbol")
	// ErrPlacement indicates a structure the colony rules rejected.
	ErrPlacement = errors.New("maploader: invalid structure placement")
)

// Symbols for terrain and tubes
const (
	SymbolRock   = '#'
	SymbolGround = '.'
	SymbolMine   = 'm'
	SymbolTube   = '+'
	SymbolTubeEW = '-'
	SymbolTubeNS = '|'
)

const defaultColonyName = "Colony"

// MapFile is the YAML document layout
type MapFile struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Load reads and parses the map file at path
func Load(path string) (*colony.Colony, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse builds a colony from a YAML map document
func Parse(data []byte) (*colony.Colony, error) {
	var mf MapFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, err
	}
	return mf.Build()
}

// Build lays out the rows on a new tile map and places their structures
func (mf MapFile) Build() (*colony.Colony, error) {
	if len(mf.Rows) == 0 {
		return nil, ErrEmptyMap
	}
	grid := make([][]rune, len(mf.Rows))
	for y, row := range mf.Rows {
		grid[y] = []rune(row)
		if len(grid[y]) == 0 {
			return nil, ErrEmptyMap
		}
		if len(grid[y]) != len(grid[0]) {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedRows, y, len(grid[y]), len(grid[0]))
		}
	}

	name := mf.Name
	if name == "" {
		name = defaultColonyName
	}
	c := colony.New(name, world.NewTileMap(len(grid[0]), len(grid)))

	// Command center first so tubes and structures are checked against it.
	var pending []placement
	for y, row := range grid {
		for x, ch := range row {
			pos := world.At(x, y)
			s, err := applySymbol(c.Map.GetTile(pos), ch)
			if err != nil {
				return nil, fmt.Errorf("%w %q at %v", err, ch, pos)
			}
			if s == nil {
				continue
			}
			if s.IsCommandCenter() {
				pending = append([]placement{{pos, s}}, pending...)
			} else {
				pending = append(pending, placement{pos, s})
			}
		}
	}

	for _, p := range pending {
		if err := c.PlaceStructure(p.pos, p.structure); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPlacement, err)
		}
	}
	return c, nil
}

type placement struct {
	pos       world.MapCoordinate
	structure *entities.Structure
}

// applySymbol sets the terrain of tile and returns the structure the symbol stands for, if any
func applySymbol(tile *world.Tile, ch rune) (*entities.Structure, error) {
	switch ch {
	case SymbolRock:
		tile.Excavated = false
		return nil, nil
	case SymbolGround:
		return nil, nil
	case SymbolMine:
		tile.Mine = true
		return nil, nil
	case SymbolTube:
		return entities.NewTube(entities.ConnectorIntersection), nil
	case SymbolTubeEW:
		return entities.NewTube(entities.ConnectorEastWest), nil
	case SymbolTubeNS:
		return entities.NewTube(entities.ConnectorNorthSouth), nil
	}
	kind, ok := entities.KindBySymbol(ch)
	if !ok {
		return nil, ErrUnknownSymbol
	}
	return entities.NewStructure(kind), nil
}
