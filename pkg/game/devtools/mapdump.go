// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"outpost/pkg/engine/world"
	"outpost/pkg/game/colony"
	"outpost/pkg/game/entities"
	"outpost/pkg/game/maploader"
)

// DefaultDumpFilename is used when no dump path is given
const DefaultDumpFilename = "map.txt"

// tileSymbol returns the map file symbol for a tile, so a dump's map section
// can be pasted back into a map file.
func tileSymbol(c *colony.Colony, pos world.MapCoordinate) rune {
	tile := c.Map.GetTile(pos)
	switch {
	case tile == nil || !tile.Excavated:
		return maploader.SymbolRock
	case tile.Mine:
		return maploader.SymbolMine
	}
	s := c.StructureAt(pos)
	if s == nil {
		return maploader.SymbolGround
	}
	if s.IsTube() {
		switch s.Connector {
		case entities.ConnectorEastWest:
			return maploader.SymbolTubeEW
		case entities.ConnectorNorthSouth:
			return maploader.SymbolTubeNS
		default:
			return maploader.SymbolTube
		}
	}
	return s.Info().Symbol
}

// writeMapGrid writes the map, optionally marking connected tiles with '*'.
func writeMapGrid(w io.Writer, c *colony.Colony, connectedOnly bool) {
	for y := 0; y < c.Map.Height(); y++ {
		for x := 0; x < c.Map.Width(); x++ {
			pos := world.At(x, y)
			if connectedOnly {
				if c.IsConnected(pos) {
					fmt.Fprint(w, "*")
				} else {
					fmt.Fprint(w, " ")
				}
				continue
			}
			fmt.Fprintf(w, "%c", tileSymbol(c, pos))
		}
		fmt.Fprintln(w)
	}
}

// WriteConnectivityDump writes a plain-text dump of the colony: metadata,
// legend, the map in map-file symbols, the connected tiles and a structure list.
func WriteConnectivityDump(w io.Writer, c *colony.Colony) {
	cc := c.CommandCenter()
	ccPos := "none"
	if cc != nil {
		ccPos = cc.Position.String()
	}

	fmt.Fprintln(w, "=== COLONY DUMP (layout, tube network, structures) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "colony: %q\n", c.Name)
	fmt.Fprintf(w, "turn: %d\n", c.Turn)
	fmt.Fprintf(w, "map_width: %d\n", c.Map.Width())
	fmt.Fprintf(w, "map_height: %d\n", c.Map.Height())
	fmt.Fprintln(w, "coordinate_system: x,y (0-based, x=column, y=row, north is y-1)")
	fmt.Fprintf(w, "command_center: %s\n", ccPos)
	fmt.Fprintf(w, "structures: %d\n", c.StructureCount())
	fmt.Fprintf(w, "connected: %d\n", len(c.ConnectedStructures()))
	fmt.Fprintf(w, "disconnected: %d\n", len(c.DisconnectedStructures()))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (map file symbols) ---")
	fmt.Fprintln(w, "# = rock  . = ground  m = mine  + = tube (all sides)  - = tube (east-west)  | = tube (north-south)")
	for _, kind := range []entities.StructureKind{
		entities.KindCommandCenter, entities.KindSolarPanelArray, entities.KindSeedFactory,
		entities.KindSurfaceFactory, entities.KindAgridome, entities.KindResidence,
		entities.KindStorageTanks, entities.KindSmelter,
	} {
		info := entities.StructureTypes[kind]
		fmt.Fprintf(w, "%c = %s\n", info.Symbol, info.Name)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, c, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Connected tiles (*) ---")
	writeMapGrid(w, c, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Structures ---")
	for _, s := range c.Structures() {
		fmt.Fprintf(w, "  x: %d y: %d kind: %s id: %s openings: %v connected: %v disabled: %v\n",
			s.Position.X, s.Position.Y, s.Name(), s.ID, s.Openings(), s.Connected(), s.Disabled())
	}
}

// DumpConnectivityToFile writes WriteConnectivityDump output to path
// (DefaultDumpFilename when empty) and returns the absolute path written.
func DumpConnectivityToFile(c *colony.Colony, path string) (string, error) {
	if c == nil || c.Map == nil {
		return "", fmt.Errorf("no colony map")
	}
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteConnectivityDump(f, c)
	return absPath, nil
}
