package colony

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outpost/pkg/engine/world"
	"outpost/pkg/game/entities"
)

// newTestColony creates a width x height colony with a command center at cc.
func newTestColony(t *testing.T, width, height int, cc world.MapCoordinate) *Colony {
	t.Helper()
	c := New("Test", world.NewTileMap(width, height))
	require.NoError(t, c.PlaceStructure(cc, entities.NewStructure(entities.KindCommandCenter)))
	return c
}

func TestCheckConnectedness_NoCommandCenter(t *testing.T) {
	c := New("Empty", world.NewTileMap(3, 3))
	require.NoError(t, c.PlaceStructure(world.At(1, 1), entities.NewStructure(entities.KindResidence)))

	assert.Nil(t, c.CheckConnectedness())

	r := c.StructureAt(world.At(1, 1))
	require.NotNil(t, r)
	assert.False(t, r.Connected())
	assert.True(t, r.Disabled())
}

func TestCheckConnectedness_TubeRunConnectsStructure(t *testing.T) {
	c := newTestColony(t, 5, 1, world.At(0, 0))

	_, err := c.PlaceTube(world.At(1, 0), entities.ConnectorEastWest)
	require.NoError(t, err)
	_, err = c.PlaceTube(world.At(2, 0), entities.ConnectorEastWest)
	require.NoError(t, err)

	solar := entities.NewStructure(entities.KindSolarPanelArray)
	require.NoError(t, c.PlaceStructure(world.At(3, 0), solar))

	assert.True(t, solar.Connected())
	assert.True(t, solar.Operational())
	assert.True(t, c.IsConnected(world.At(3, 0)))
	assert.False(t, c.IsConnected(world.At(4, 0)))
	assert.Len(t, c.ConnectedStructures(), 4)
	assert.Empty(t, c.DisconnectedStructures())
}

func TestCheckConnectedness_TubeDoesNotLeakSideways(t *testing.T) {
	// CC at (0,1); east-west tube at (1,1); residence north of the tube at (1,0).
	c := newTestColony(t, 3, 2, world.At(0, 1))
	_, err := c.PlaceTube(world.At(1, 1), entities.ConnectorEastWest)
	require.NoError(t, err)

	residence := entities.NewStructure(entities.KindResidence)
	require.NoError(t, c.PlaceStructure(world.At(1, 0), residence))

	// The residence touches the command center's tile only diagonally and the
	// tube is closed to the North.
	assert.False(t, residence.Connected())
	assert.Equal(t, entities.DisabledDisconnected, residence.DisabledReason())
	assert.Equal(t, []*entities.Structure{residence}, c.DisconnectedStructures())
}

func TestCheckConnectedness_BulldozeDisconnectsAndReconnects(t *testing.T) {
	c := newTestColony(t, 3, 1, world.At(0, 0))
	_, err := c.PlaceTube(world.At(1, 0), entities.ConnectorIntersection)
	require.NoError(t, err)
	factory := entities.NewStructure(entities.KindSurfaceFactory)
	require.NoError(t, c.PlaceStructure(world.At(2, 0), factory))
	require.True(t, factory.Operational())

	_, err = c.Bulldoze(world.At(1, 0))
	require.NoError(t, err)
	assert.False(t, factory.Connected())
	assert.True(t, factory.Disabled())

	_, err = c.PlaceTube(world.At(1, 0), entities.ConnectorEastWest)
	require.NoError(t, err)
	assert.True(t, factory.Connected())
	assert.False(t, factory.Disabled())
}

func TestCheckConnectedness_MineBlocksNetwork(t *testing.T) {
	c := New("Mine", world.NewTileMap(3, 1))
	require.NoError(t, c.PlaceStructure(world.At(0, 0), entities.NewStructure(entities.KindCommandCenter)))
	c.Map.GetTile(world.At(1, 0)).Mine = true

	smelter := entities.NewStructure(entities.KindSmelter)
	require.NoError(t, c.PlaceStructure(world.At(2, 0), smelter))

	assert.False(t, smelter.Connected())
}

func TestPlaceStructure_Errors(t *testing.T) {
	c := newTestColony(t, 3, 1, world.At(0, 0))
	c.Map.GetTile(world.At(1, 0)).Excavated = false
	c.Map.GetTile(world.At(2, 0)).Mine = true

	tests := []struct {
		name string
		pos  world.MapCoordinate
		kind entities.StructureKind
		want error
	}{
		{"out of bounds", world.At(5, 0), entities.KindResidence, ErrOutOfBounds},
		{"unexcavated", world.At(1, 0), entities.KindResidence, ErrNotExcavated},
		{"mine", world.At(2, 0), entities.KindResidence, ErrMineTile},
		{"occupied", world.At(0, 0), entities.KindResidence, ErrOccupied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.PlaceStructure(tt.pos, entities.NewStructure(tt.kind))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPlaceStructure_SecondCommandCenter(t *testing.T) {
	c := newTestColony(t, 3, 1, world.At(0, 0))
	err := c.PlaceStructure(world.At(2, 0), entities.NewStructure(entities.KindCommandCenter))
	assert.ErrorIs(t, err, ErrCommandCenterExists)
	assert.Equal(t, 1, c.StructureCount())
}

func TestPlaceTube_RequiresConnection(t *testing.T) {
	c := New("NoCC", world.NewTileMap(3, 3))
	_, err := c.PlaceTube(world.At(1, 1), entities.ConnectorIntersection)
	assert.ErrorIs(t, err, ErrNoCommandCenter)

	c = newTestColony(t, 3, 3, world.At(0, 0))
	// North-south tube east of the command center shares no open edge with it.
	_, err = c.PlaceTube(world.At(1, 0), entities.ConnectorNorthSouth)
	assert.ErrorIs(t, err, ErrNoTubeConnection)
	// Not adjacent at all.
	_, err = c.PlaceTube(world.At(2, 2), entities.ConnectorIntersection)
	assert.ErrorIs(t, err, ErrNoTubeConnection)
	// South of the command center a north-south tube fits.
	_, err = c.PlaceTube(world.At(0, 1), entities.ConnectorNorthSouth)
	assert.NoError(t, err)
}

func TestBulldoze_Errors(t *testing.T) {
	c := newTestColony(t, 2, 1, world.At(0, 0))

	_, err := c.Bulldoze(world.At(1, 0))
	assert.ErrorIs(t, err, ErrEmptyTile)
	_, err = c.Bulldoze(world.At(-1, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	cc, err := c.Bulldoze(world.At(0, 0))
	require.NoError(t, err)
	assert.True(t, cc.IsCommandCenter())
	assert.Nil(t, c.CommandCenter())
	assert.Equal(t, 0, c.StructureCount())
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	c := New("Log", world.NewTileMap(1, 1))
	for i := 0; i < 7; i++ {
		c.AddMessage("message %d", i)
	}
	assert.Equal(t, []string{"message 2", "message 3", "message 4", "message 5", "message 6"}, c.Messages)

	c.ClearMessages()
	assert.Empty(t, c.Messages)
}

func TestAdvanceTurn(t *testing.T) {
	c := newTestColony(t, 1, 1, world.At(0, 0))
	c.AdvanceTurn()
	assert.Equal(t, 1, c.Turn)
	assert.True(t, c.CommandCenter().Connected())
}
