package entities

import (
	"testing"

	"outpost/pkg/engine/world"
)

func TestConnectorDir_Sides(t *testing.T) {
	tests := []struct {
		dir  ConnectorDir
		want world.Sides
	}{
		{ConnectorIntersection, world.AllSides},
		{ConnectorEastWest, world.SideEast | world.SideWest},
		{ConnectorNorthSouth, world.SideNorth | world.SideSouth},
	}
	for _, tt := range tests {
		if got := tt.dir.Sides(); got != tt.want {
			t.Errorf("%v.Sides() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestStructure_NonTubeOpensAllSides(t *testing.T) {
	s := NewStructure(KindSolarPanelArray)
	s.Connector = ConnectorNorthSouth // ignored for non-tubes
	if got := s.Openings(); got != world.AllSides {
		t.Errorf("solar panel array Openings() = %v, want %v", got, world.AllSides)
	}
}

func TestStructure_TubeUsesConnector(t *testing.T) {
	s := NewTube(ConnectorEastWest)
	if !s.IsTube() {
		t.Fatal("NewTube().IsTube() = false, want true")
	}
	if s.Openings().Has(world.North) {
		t.Error("east-west tube is open to the North")
	}
	if !s.Openings().Has(world.West) {
		t.Error("east-west tube is closed to the West")
	}
}

func TestStructure_UniqueIDs(t *testing.T) {
	a := NewStructure(KindResidence)
	b := NewStructure(KindResidence)
	if a.ID == b.ID {
		t.Errorf("two structures share ID %v", a.ID)
	}
}

func TestStructure_SetConnectedDisablesAndRestores(t *testing.T) {
	s := NewStructure(KindSurfaceFactory)

	s.SetConnected(false)
	if !s.Disabled() || s.DisabledReason() != DisabledDisconnected {
		t.Errorf("disconnected factory: Disabled() = %v, reason = %v, want disabled by disconnection", s.Disabled(), s.DisabledReason())
	}

	s.SetConnected(true)
	if s.Disabled() {
		t.Error("reconnected factory still disabled")
	}
	if !s.Operational() {
		t.Error("reconnected factory not operational")
	}
}

func TestStructure_TubeNeverDisabled(t *testing.T) {
	s := NewTube(ConnectorIntersection)
	s.SetConnected(false)
	if s.Disabled() {
		t.Error("disconnected tube is disabled, want tubes to stay enabled")
	}
	if s.Connected() {
		t.Error("Connected() = true after SetConnected(false)")
	}
}

func TestKindBySymbol(t *testing.T) {
	for kind, info := range StructureTypes {
		got, ok := KindBySymbol(info.Symbol)
		if !ok || got != kind {
			t.Errorf("KindBySymbol(%q) = %v, %v, want %v, true", info.Symbol, got, ok, kind)
		}
	}
	if _, ok := KindBySymbol('?'); ok {
		t.Error("KindBySymbol('?') found a kind")
	}
}
