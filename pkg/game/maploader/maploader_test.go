package maploader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outpost/pkg/engine/world"
	"outpost/pkg/game/entities"
)

func TestParse_BuildsTerrainAndStructures(t *testing.T) {
	doc := []byte(`
name: Ridge
rows:
  - "#C-S"
  - "m.|."
`)
	c, err := Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, "Ridge", c.Name)
	assert.Equal(t, 4, c.Map.Width())
	assert.Equal(t, 2, c.Map.Height())
	assert.False(t, c.Map.GetTile(world.At(0, 0)).Excavated)
	assert.True(t, c.Map.GetTile(world.At(0, 1)).Mine)

	require.NotNil(t, c.CommandCenter())
	assert.Equal(t, world.At(1, 0), c.CommandCenter().Position)

	tube := c.StructureAt(world.At(2, 0))
	require.NotNil(t, tube)
	assert.Equal(t, entities.ConnectorEastWest, tube.Connector)

	solar := c.StructureAt(world.At(3, 0))
	require.NotNil(t, solar)
	assert.Equal(t, entities.KindSolarPanelArray, solar.Kind)
	assert.True(t, solar.Connected())

	// North-south tube below an east-west tube is not joined to it.
	assert.False(t, c.StructureAt(world.At(2, 1)).Connected())
}

func TestParse_CommandCenterPlacedFirst(t *testing.T) {
	// Structures left of the command center are still connected after loading.
	c, err := Parse([]byte("rows: [\"R+C\"]"))
	require.NoError(t, err)

	assert.Equal(t, defaultColonyName, c.Name)
	assert.True(t, c.StructureAt(world.At(0, 0)).Connected())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no rows", "name: Nothing", ErrEmptyMap},
		{"empty row", "rows: [\"\"]", ErrEmptyMap},
		{"ragged", "rows: [\"..\", \".\"]", ErrRaggedRows},
		{"unknown symbol", "rows: [\".?\"]", ErrUnknownSymbol},
		{"two command centers", "rows: [\"C.C\"]", ErrPlacement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("rows: [unterminated"))
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Site\nrows:\n  - \"C+.\"\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.StructureCount())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_LandingSite(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "..", "maps", "landing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Landing Site", c.Name)
	assert.Len(t, c.ConnectedStructures(), 12)
	assert.Len(t, c.DisconnectedStructures(), 6)
}
