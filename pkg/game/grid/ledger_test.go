package grid

import (
	"testing"

	"habitat/pkg/engine/world"
	"habitat/pkg/game/entities"
)

func newLedger(t *testing.T) *Ledger {
	t.Helper()
	return New(DefaultParams())
}

func TestPlaceRemove_RoundTrip(t *testing.T) {
	c := world.Cell{X: 5, Z: 5}
	placements := map[string]func(l *Ledger) bool{
		"wall": func(l *Ledger) bool {
			_, ok := l.PlaceStructure(c, entities.StructureWall)
			return ok
		},
		"door": func(l *Ledger) bool {
			_, ok := l.PlaceStructure(c, entities.StructureDoor)
			return ok
		},
		"floor": func(l *Ledger) bool { return l.PlaceFloor(c) },
		"o2": func(l *Ledger) bool {
			_, ok := l.PlaceObject(c, entities.ObjectO2)
			return ok
		},
		"asteroid": func(l *Ledger) bool {
			_, ok := l.PlaceObject(c, entities.ObjectAsteroid)
			return ok
		},
	}
	for name, place := range placements {
		l := newLedger(t)
		if !place(l) {
			t.Errorf("%s: placement failed on empty cell", name)
			continue
		}
		if !l.IsOccupied(c) {
			t.Errorf("%s: IsOccupied(%v) = false after placement, want true", name, c)
		}
		l.MarkDeconstruct(c)
		l.RemoveAt(c)
		if l.IsOccupied(c) {
			t.Errorf("%s: IsOccupied(%v) = true after RemoveAt, want false", name, c)
		}
		if n := len(l.PendingJobs()); n != 0 {
			t.Errorf("%s: %d jobs left after RemoveAt, want 0", name, n)
		}
	}
}

func TestPlaceStructure_CreatesJob(t *testing.T) {
	l := newLedger(t)
	c := world.Cell{X: 15, Z: 5}
	job, ok := l.PlaceStructure(c, entities.StructureWall)
	if !ok || job == nil {
		t.Fatal("PlaceStructure(wall) failed")
	}
	if job.Kind != entities.JobConstruct || job.Cell != c || job.Structure == nil {
		t.Errorf("PlaceStructure job = %+v, want construct job at %v", job, c)
	}
	if got := l.ConstructionJobs(); len(got) != 1 || got[0] != job {
		t.Errorf("ConstructionJobs() = %v, want [job]", got)
	}
	if !l.IsBlocked(c) {
		t.Error("IsBlocked(unfinished wall) = false, want true")
	}
}

func TestPlacement_Conflicts(t *testing.T) {
	c := world.Cell{X: 5, Z: 5}
	l := newLedger(t)
	if _, ok := l.PlaceStructure(c, entities.StructureWall); !ok {
		t.Fatal("first wall failed")
	}
	if _, ok := l.PlaceStructure(c, entities.StructureDoor); ok {
		t.Error("PlaceStructure on a structure cell = true, want false")
	}
	if _, ok := l.PlaceObject(c, entities.ObjectBed); ok {
		t.Error("PlaceObject on a structure cell = true, want false")
	}
	if !l.PlaceFloor(c) {
		t.Error("PlaceFloor under a wall = false, want true")
	}
	if l.PlaceFloor(c) {
		t.Error("second PlaceFloor = true, want false")
	}

	d := world.Cell{X: 15, Z: 5}
	l.PlaceFloor(d)
	if _, ok := l.PlaceObject(d, entities.ObjectFood); !ok {
		t.Fatal("PlaceObject on floor failed")
	}
	if _, ok := l.PlaceObject(d, entities.ObjectWater); ok {
		t.Error("PlaceObject on an object cell = true, want false")
	}
	if _, ok := l.PlaceStructure(d, entities.StructureWall); ok {
		t.Error("PlaceStructure on an object cell = true, want false")
	}
}

func TestIsBlocked(t *testing.T) {
	tests := []struct {
		kind     entities.StructureKind
		complete bool
		want     bool
	}{
		{entities.StructureWall, false, true},
		{entities.StructureWall, true, true},
		{entities.StructureDoor, false, true},
		{entities.StructureDoor, true, false},
		{entities.StructureAirlock, false, true},
		{entities.StructureAirlock, true, false},
	}
	for _, tt := range tests {
		l := newLedger(t)
		c := world.Cell{X: 5, Z: 5}
		job, _ := l.PlaceStructure(c, tt.kind)
		if tt.complete {
			l.CompleteJob(job)
		}
		if got := l.IsBlocked(c); got != tt.want {
			t.Errorf("IsBlocked(%v complete=%v) = %v, want %v", tt.kind, tt.complete, got, tt.want)
		}
	}
	l := newLedger(t)
	if l.IsBlocked(world.Cell{X: 5, Z: 5}) {
		t.Error("IsBlocked(empty) = true, want false")
	}
}

func TestCompleteJob_Construction(t *testing.T) {
	l := newLedger(t)
	c := world.Cell{X: 5, Z: 5}
	job, _ := l.PlaceStructure(c, entities.StructureWall)
	if !l.CompleteJob(job) {
		t.Fatal("CompleteJob(construct) = false, want true")
	}
	if !job.Complete || !l.StructureAt(c).Complete {
		t.Error("construction job did not mark the wall complete")
	}
	if n := len(l.ConstructionJobs()); n != 0 {
		t.Errorf("len(ConstructionJobs()) = %d, want 0", n)
	}
	if l.CompleteJob(job) {
		t.Error("CompleteJob on a finished job = true, want false")
	}
}

func TestCompleteJob_Deconstruction(t *testing.T) {
	l := newLedger(t)
	c := world.Cell{X: 5, Z: 5}
	l.PlaceFloor(c)
	l.PlaceObject(c, entities.ObjectBed)
	job, ok := l.MarkDeconstruct(c)
	if !ok {
		t.Fatal("MarkDeconstruct(bed) failed")
	}
	if !l.CompleteJob(job) {
		t.Fatal("CompleteJob(deconstruct) = false, want true")
	}
	if l.IsOccupied(c) {
		t.Error("cell still occupied after deconstruction")
	}
	if n := len(l.DeconstructionJobs()); n != 0 {
		t.Errorf("len(DeconstructionJobs()) = %d, want 0", n)
	}
	if n := l.CountObjects(entities.ObjectBed); n != 0 {
		t.Errorf("CountObjects(bed) = %d, want 0", n)
	}
}

func TestMarkDeconstruct(t *testing.T) {
	l := newLedger(t)
	c := world.Cell{X: 5, Z: 5}
	if _, ok := l.MarkDeconstruct(c); ok {
		t.Error("MarkDeconstruct(empty) = true, want false")
	}
	l.PlaceStructure(c, entities.StructureWall)
	if _, ok := l.MarkDeconstruct(c); !ok {
		t.Fatal("MarkDeconstruct(wall) failed")
	}
	if _, ok := l.MarkDeconstruct(c); ok {
		t.Error("second MarkDeconstruct = true, want false")
	}
	if !l.DeconstructMarked(c) {
		t.Error("DeconstructMarked = false, want true")
	}

	a := world.Cell{X: 25, Z: 5}
	l.PlaceObject(a, entities.ObjectAsteroid)
	if _, ok := l.MarkDeconstruct(a); ok {
		t.Error("MarkDeconstruct(asteroid) = true, want false")
	}
}

func TestRemoveAt_ClearsConstructionJob(t *testing.T) {
	l := newLedger(t)
	c := world.Cell{X: 5, Z: 5}
	job, _ := l.PlaceStructure(c, entities.StructureWall)
	l.RemoveAt(c)
	if l.IsPending(job) {
		t.Error("construction job still pending after RemoveAt")
	}
	if l.CompleteJob(job) {
		t.Error("CompleteJob on a dropped job = true, want false")
	}
	if l.StructureAt(c) != nil {
		t.Error("structure survived RemoveAt")
	}
}

func TestExtract(t *testing.T) {
	l := New(Params{AsteroidMatter: 15})
	c := world.Cell{X: 5, Z: 5}
	l.PlaceObject(c, entities.ObjectAsteroid)
	if got := l.Extract(c, 10); got != 10 {
		t.Errorf("Extract = %d, want 10", got)
	}
	if got := l.ObjectAt(c).Matter; got != 5 {
		t.Errorf("remaining matter = %d, want 5", got)
	}
	if got := l.Extract(c, 10); got != 5 {
		t.Errorf("Extract on nearly empty asteroid = %d, want 5", got)
	}
	if l.ObjectAt(c) != nil {
		t.Error("depleted asteroid not removed")
	}
	if got := l.Extract(c, 10); got != 0 {
		t.Errorf("Extract on empty cell = %d, want 0", got)
	}
}

func TestExtract_DepletionKeepsFloor(t *testing.T) {
	l := New(Params{AsteroidMatter: 10})
	c := world.Cell{X: 5, Z: 5}
	l.PlaceFloor(c)
	l.PlaceObject(c, entities.ObjectAsteroid)
	l.DrainDirty()

	if got := l.Extract(c, 10); got != 10 {
		t.Fatalf("Extract = %d, want 10", got)
	}
	if l.ObjectAt(c) != nil {
		t.Error("depleted asteroid not removed")
	}
	if l.CountObjects(entities.ObjectAsteroid) != 0 {
		t.Error("depleted asteroid still counted")
	}
	if !l.HasFloor(c) {
		t.Error("floor under the depleted asteroid was removed")
	}
	if len(l.DrainDirty()) == 0 {
		t.Error("depletion did not mark the cell dirty")
	}
}

func TestDrainDirty(t *testing.T) {
	l := newLedger(t)
	l.PlaceFloor(world.Cell{X: 5, Z: 5})
	got := l.DrainDirty()
	if len(got) != 5 {
		t.Fatalf("DrainDirty() returned %d cells, want 5 (cell + 4 neighbours)", len(got))
	}
	if len(l.DrainDirty()) != 0 {
		t.Error("second DrainDirty() not empty")
	}
}

func TestConnections(t *testing.T) {
	l := newLedger(t)
	c := world.Cell{X: 15, Z: 15}
	l.PlaceStructure(c.Step(world.North), entities.StructureWall)
	l.PlaceStructure(c.Step(world.East), entities.StructureDoor)
	mask := l.Connections(c)
	if !mask.Has(world.North) || !mask.Has(world.East) || mask.Has(world.South) || mask.Has(world.West) {
		t.Errorf("Connections(%v) = %04b, want North|East", c, mask)
	}
}

func TestObjects_PlacementOrder(t *testing.T) {
	l := newLedger(t)
	cells := []world.Cell{{X: 25, Z: 5}, {X: 5, Z: 5}, {X: 15, Z: 5}}
	for _, c := range cells {
		l.PlaceObject(c, entities.ObjectFood)
	}
	got := l.Objects(entities.ObjectFood)
	for i, o := range got {
		if o.Cell != cells[i] {
			t.Errorf("Objects(food)[%d] = %v, want %v", i, o.Cell, cells[i])
		}
	}
}
