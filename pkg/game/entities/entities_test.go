// Package entities defines the structures, placed objects and jobs of the habitat grid.
package entities

import (
	"testing"

	"habitat/pkg/engine/world"
)

func TestStructure_Blocks(t *testing.T) {
	tests := []struct {
		kind     StructureKind
		complete bool
		want     bool
	}{
		{StructureWall, false, true},
		{StructureWall, true, true},
		{StructureDoor, false, true},
		{StructureDoor, true, false},
		{StructureAirlock, false, true},
		{StructureAirlock, true, false},
	}
	for _, tt := range tests {
		s := &Structure{Kind: tt.kind, Cell: world.Cell{X: 5, Z: 5}, Complete: tt.complete}
		if got := s.Blocks(); got != tt.want {
			t.Errorf("%v(complete=%v).Blocks() = %v, want %v", tt.kind, tt.complete, got, tt.want)
		}
	}
}

func TestStructure_Seals(t *testing.T) {
	tests := []struct {
		kind     StructureKind
		complete bool
		want     bool
	}{
		{StructureWall, false, false},
		{StructureWall, true, true},
		{StructureDoor, true, false},
		{StructureAirlock, false, false},
		{StructureAirlock, true, true},
	}
	for _, tt := range tests {
		s := &Structure{Kind: tt.kind, Complete: tt.complete}
		if got := s.Seals(); got != tt.want {
			t.Errorf("%v(complete=%v).Seals() = %v, want %v", tt.kind, tt.complete, got, tt.want)
		}
	}
}

func TestNilStructure(t *testing.T) {
	var s *Structure
	if s.Blocks() || s.Seals() {
		t.Error("nil structure should neither block nor seal")
	}
}

func TestNewObject_AsteroidMatter(t *testing.T) {
	a := NewObject(ObjectAsteroid, world.Cell{X: 5, Z: 5})
	if a.Matter != AsteroidMatter {
		t.Errorf("NewObject(asteroid).Matter = %d, want %d", a.Matter, AsteroidMatter)
	}
	if a.Depleted() {
		t.Error("fresh asteroid reported depleted")
	}
	bed := NewObject(ObjectBed, world.Cell{X: 5, Z: 5})
	if bed.Matter != 0 || bed.Depleted() {
		t.Errorf("NewObject(bed) = %+v, want no matter and not depleted", bed)
	}
}

func TestObjectTypes_Complete(t *testing.T) {
	for k := ObjectFood; k <= ObjectAsteroid; k++ {
		if _, ok := ObjectTypes[k]; !ok {
			t.Errorf("ObjectTypes missing %d", k)
		}
	}
	if ObjectTypes[ObjectAsteroid].Deconstructable {
		t.Error("asteroids must not be deconstructable")
	}
}
