package entities

import (
	"github.com/google/uuid"

	"outpost/pkg/engine/world"
)

// StructureKind represents the different buildings a colony can place
type StructureKind int

const (
	KindCommandCenter   StructureKind = iota // Root of the tube network
	KindTube                                 // Connector; see ConnectorDir
	KindSolarPanelArray                      // Surface power generation
	KindSeedFactory                          // Lander factory
	KindSurfaceFactory                       // Produces robots
	KindAgridome                             // Food production
	KindResidence                            // Colonist housing
	KindStorageTanks                         // Resource storage
	KindSmelter                              // Ore processing
)

// ConnectorDir describes which sides a tube opens onto
type ConnectorDir int

const (
	ConnectorIntersection ConnectorDir = iota // Open on all four sides
	ConnectorEastWest                         // Open East and West only
	ConnectorNorthSouth                       // Open North and South only
)

// Sides returns the tile sides this connector opens onto
func (c ConnectorDir) Sides() world.Sides {
	switch c {
	case ConnectorEastWest:
		return world.SidesOf(world.East, world.West)
	case ConnectorNorthSouth:
		return world.SidesOf(world.North, world.South)
	default:
		return world.AllSides
	}
}

// String returns the gettext key of the connector direction
func (c ConnectorDir) String() string {
	switch c {
	case ConnectorEastWest:
		return "CONNECTOR_EAST_WEST"
	case ConnectorNorthSouth:
		return "CONNECTOR_NORTH_SOUTH"
	default:
		return "CONNECTOR_INTERSECTION"
	}
}

// StructureInfo contains display and rule information for each structure kind
type StructureInfo struct {
	Name               string // gettext key
	Symbol             rune   // Map file and map dump symbol
	Icon               string // Terminal map icon
	RequiresConnection bool   // Disabled when cut off from the command center
}

// StructureTypes maps structure kinds to their information
var StructureTypes = map[StructureKind]StructureInfo{
	KindCommandCenter:   {Name: "STRUCTURE_COMMAND_CENTER", Symbol: 'C', Icon: "▣"},
	KindTube:            {Name: "STRUCTURE_TUBE", Symbol: '+', Icon: "┼"},
	KindSolarPanelArray: {Name: "STRUCTURE_SOLAR_PANEL_ARRAY", Symbol: 'S', Icon: "☼", RequiresConnection: true},
	KindSeedFactory:     {Name: "STRUCTURE_SEED_FACTORY", Symbol: 'L', Icon: "◘", RequiresConnection: true},
	KindSurfaceFactory:  {Name: "STRUCTURE_SURFACE_FACTORY", Symbol: 'F', Icon: "⚙", RequiresConnection: true},
	KindAgridome:        {Name: "STRUCTURE_AGRIDOME", Symbol: 'A', Icon: "♣", RequiresConnection: true},
	KindResidence:       {Name: "STRUCTURE_RESIDENCE", Symbol: 'R', Icon: "⌂", RequiresConnection: true},
	KindStorageTanks:    {Name: "STRUCTURE_STORAGE_TANKS", Symbol: 'T', Icon: "◙", RequiresConnection: true},
	KindSmelter:         {Name: "STRUCTURE_SMELTER", Symbol: 'M', Icon: "♨", RequiresConnection: true},
}

// DisabledReason explains why a structure is not operating
type DisabledReason int

const (
	DisabledNone         DisabledReason = iota
	DisabledDisconnected                // Not connected to the command center
)

// Structure represents a building standing on a tile
type Structure struct {
	ID        uuid.UUID
	Kind      StructureKind
	Connector ConnectorDir // Only meaningful for tubes
	Position  world.MapCoordinate

	connected      bool
	disabledReason DisabledReason
}

// NewStructure creates a new structure of the given kind.
// Everything except a tube is an intersection.
func NewStructure(kind StructureKind) *Structure {
	return &Structure{
		ID:        uuid.New(),
		Kind:      kind,
		Connector: ConnectorIntersection,
	}
}

// NewTube creates a tube opening onto the given connector sides
func NewTube(dir ConnectorDir) *Structure {
	s := NewStructure(KindTube)
	s.Connector = dir
	return s
}

// Info returns the structure's kind information
func (s *Structure) Info() StructureInfo {
	return StructureTypes[s.Kind]
}

// Name returns the gettext key of the structure's display name
func (s *Structure) Name() string {
	return s.Info().Name
}

// IsTube returns true if the structure is a tube
func (s *Structure) IsTube() bool {
	return s.Kind == KindTube
}

// IsCommandCenter returns true if the structure is the colony's command center
func (s *Structure) IsCommandCenter() bool {
	return s.Kind == KindCommandCenter
}

// Openings implements world.Connector
func (s *Structure) Openings() world.Sides {
	if !s.IsTube() {
		return world.AllSides
	}
	return s.Connector.Sides()
}

// Connected returns whether the last connectedness check reached this structure
func (s *Structure) Connected() bool {
	return s.connected
}

// SetConnected records the connectedness result and disables or re-enables
// structures that need a connection to operate.
func (s *Structure) SetConnected(connected bool) {
	s.connected = connected
	if !s.Info().RequiresConnection {
		return
	}
	switch {
	case !connected:
		s.disabledReason = DisabledDisconnected
	case s.disabledReason == DisabledDisconnected:
		s.disabledReason = DisabledNone
	}
}

// Disabled returns whether the structure is currently disabled
func (s *Structure) Disabled() bool {
	return s.disabledReason != DisabledNone
}

// DisabledReason returns why the structure is disabled
func (s *Structure) DisabledReason() DisabledReason {
	return s.disabledReason
}

// Operational returns true if the structure is connected where required and not disabled
func (s *Structure) Operational() bool {
	return !s.Disabled()
}

// KindBySymbol returns the structure kind for a map symbol
func KindBySymbol(symbol rune) (StructureKind, bool) {
	for kind, info := range StructureTypes {
		if info.Symbol == symbol {
			return kind, true
		}
	}
	return 0, false
}
