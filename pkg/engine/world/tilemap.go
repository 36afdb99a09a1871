package world

// TileMap represents the colony surface with encapsulated tile storage
type TileMap struct {
	tiles  []*Tile
	width  int
	height int
}

// NewTileMap creates a map of excavated, empty tiles with the given dimensions
func NewTileMap(width, height int) *TileMap {
	m := &TileMap{}
	m.Build(width, height)
	return m
}

// Build initializes the map with the given dimensions
func (m *TileMap) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("TileMap dimensions must be positive")
	}

	m.width = width
	m.height = height
	m.tiles = make([]*Tile, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.tiles[y*width+x] = NewTile(At(x, y))
		}
	}
}

// Width returns the number of columns
func (m *TileMap) Width() int {
	return m.width
}

// Height returns the number of rows
func (m *TileMap) Height() int {
	return m.height
}

// IsValidPosition checks if a coordinate is within map bounds
func (m *TileMap) IsValidPosition(pos MapCoordinate) bool {
	return pos.X >= 0 && pos.X < m.width && pos.Y >= 0 && pos.Y < m.height
}

// GetTile returns the tile at the given position, or nil if out of bounds
func (m *TileMap) GetTile(pos MapCoordinate) *Tile {
	if !m.IsValidPosition(pos) {
		return nil
	}
	return m.tiles[pos.Y*m.width+pos.X]
}

// GetTileRelative returns the tile adjacent to pos in the specified direction
func (m *TileMap) GetTileRelative(pos MapCoordinate, dir Direction) *Tile {
	if !dir.IsValid() {
		return nil
	}
	return m.GetTile(pos.Translate(dir))
}

// CanEnterFrom reports whether the tile at pos accepts traffic through side.
// Out-of-bounds positions never accept traffic.
func (m *TileMap) CanEnterFrom(pos MapCoordinate, side Direction) bool {
	return m.GetTile(pos).CanEnterFrom(side)
}

// CanExitTo reports whether traffic may leave the tile at pos through side.
// Connector openings are symmetric, so this is the same test as entering.
func (m *TileMap) CanExitTo(pos MapCoordinate, side Direction) bool {
	return m.GetTile(pos).CanEnterFrom(side)
}

// ForEachTile iterates over all tiles row by row
func (m *TileMap) ForEachTile(fn func(pos MapCoordinate, tile *Tile)) {
	for _, t := range m.tiles {
		fn(t.Position, t)
	}
}

// ClearConnected resets the Connected flag on every tile
func (m *TileMap) ClearConnected() {
	for _, t := range m.tiles {
		t.Connected = false
	}
}

// Validate checks the map for common issues and returns an error description or empty string if valid
func (m *TileMap) Validate() string {
	if m.width <= 0 || m.height <= 0 {
		return "TileMap has invalid dimensions"
	}
	if len(m.tiles) != m.width*m.height {
		return "TileMap storage does not match its dimensions"
	}
	return ""
}
