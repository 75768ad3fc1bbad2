package atmosphere

import (
	"testing"

	"go.uber.org/zap"

	"habitat/pkg/engine/world"
	"habitat/pkg/game/entities"
	"habitat/pkg/game/grid"
	"habitat/pkg/game/resources"
)

// buildRoom floors a w x h block of cells whose top-left cell is origin and
// surrounds it with finished walls. It returns the interior cells.
func buildRoom(t *testing.T, l *grid.Ledger, origin world.Cell, w, h int) []world.Cell {
	t.Helper()
	var interior []world.Cell
	for dz := -1; dz <= h; dz++ {
		for dx := -1; dx <= w; dx++ {
			c := world.Cell{X: origin.X + dx*world.Pitch, Z: origin.Z + dz*world.Pitch}
			if dx == -1 || dz == -1 || dx == w || dz == h {
				job, ok := l.PlaceStructure(c, entities.StructureWall)
				if !ok {
					t.Fatalf("PlaceStructure(%v) failed", c)
				}
				l.CompleteJob(job)
				continue
			}
			l.PlaceFloor(c)
			interior = append(interior, c)
		}
	}
	return interior
}

func run(a *Analyzer, seconds, dt float64) {
	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		a.Tick(dt)
	}
}

func TestSealedRoom_ConvergesToFull(t *testing.T) {
	l := grid.New(grid.DefaultParams())
	interior := buildRoom(t, l, world.Cell{X: 5, Z: 5}, 3, 3)
	l.PlaceObject(world.Cell{X: 15, Z: 15}, entities.ObjectO2)
	res := resources.New(resources.DefaultParams())
	a := New(DefaultParams(), l, res, zap.NewNop())

	run(a, 20, 0.1)

	if !a.Powered() {
		t.Fatal("Powered() = false, want true")
	}
	for _, c := range interior {
		if !a.IsSealed(c) {
			t.Errorf("IsSealed(%v) = false, want true", c)
		}
		if got := a.O2At(c); got != 100 {
			t.Errorf("O2At(%v) = %v, want 100", c, got)
		}
	}
	if a.IsSealed(world.Cell{X: -5, Z: -5}) {
		t.Error("wall cell reported sealed")
	}
}

func TestSealedRoom_BreachDecays(t *testing.T) {
	l := grid.New(grid.DefaultParams())
	interior := buildRoom(t, l, world.Cell{X: 5, Z: 5}, 3, 3)
	l.PlaceObject(world.Cell{X: 15, Z: 15}, entities.ObjectO2)
	a := New(DefaultParams(), l, resources.New(resources.DefaultParams()), nil)
	run(a, 20, 0.1)

	l.RemoveAt(world.Cell{X: 35, Z: 15})
	run(a, 0.6, 0.1)
	for _, c := range interior {
		if a.IsSealed(c) {
			t.Errorf("IsSealed(%v) = true after breach, want false", c)
		}
	}

	run(a, 10, 0.1)
	for _, c := range interior {
		got := a.O2At(c)
		if got >= 100 || got < 90 {
			t.Errorf("O2At(%v) = %v after 10s breached, want in [90,100)", c, got)
		}
	}
}

func TestSealing_DoorLeaksAirlockSeals(t *testing.T) {
	tests := []struct {
		name string
		kind entities.StructureKind
		want bool
	}{
		{"door", entities.StructureDoor, false},
		{"airlock", entities.StructureAirlock, true},
	}
	for _, tt := range tests {
		l := grid.New(grid.DefaultParams())
		buildRoom(t, l, world.Cell{X: 5, Z: 5}, 3, 3)
		gap := world.Cell{X: 35, Z: 15}
		l.RemoveAt(gap)
		job, _ := l.PlaceStructure(gap, tt.kind)
		l.CompleteJob(job)
		l.PlaceObject(world.Cell{X: 15, Z: 15}, entities.ObjectO2)
		a := New(DefaultParams(), l, resources.New(resources.DefaultParams()), nil)

		run(a, 0.6, 0.1)
		if got := a.IsSealed(world.Cell{X: 15, Z: 15}); got != tt.want {
			t.Errorf("%s: IsSealed(generator cell) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSealing_UnfinishedWallLeaks(t *testing.T) {
	l := grid.New(grid.DefaultParams())
	buildRoom(t, l, world.Cell{X: 5, Z: 5}, 3, 3)
	gap := world.Cell{X: 35, Z: 15}
	l.RemoveAt(gap)
	l.PlaceStructure(gap, entities.StructureWall)
	l.PlaceObject(world.Cell{X: 15, Z: 15}, entities.ObjectO2)
	a := New(DefaultParams(), l, resources.New(resources.DefaultParams()), nil)

	run(a, 0.6, 0.1)
	if a.IsSealed(world.Cell{X: 15, Z: 15}) {
		t.Error("room with an unfinished wall reported sealed")
	}
}

func TestSealing_RoomSizeCap(t *testing.T) {
	l := grid.New(grid.DefaultParams())
	// 21 x 20 = 420 cells, more than the 400 cell cap
	buildRoom(t, l, world.Cell{X: 5, Z: 5}, 21, 20)
	l.PlaceObject(world.Cell{X: 105, Z: 105}, entities.ObjectO2)
	a := New(DefaultParams(), l, resources.New(resources.DefaultParams()), nil)

	run(a, 0.6, 0.1)
	if a.IsSealed(world.Cell{X: 105, Z: 105}) {
		t.Error("room above the size cap reported sealed")
	}

	p := DefaultParams()
	p.MaxRoomCells = 500
	a = New(p, l, resources.New(resources.DefaultParams()), nil)
	run(a, 0.6, 0.1)
	if !a.IsSealed(world.Cell{X: 105, Z: 105}) {
		t.Error("room below a raised cap reported unsealed")
	}
}

func TestGeneratorWithoutFloor_Ignored(t *testing.T) {
	l := grid.New(grid.DefaultParams())
	l.PlaceObject(world.Cell{X: 5, Z: 5}, entities.ObjectO2)
	a := New(DefaultParams(), l, resources.New(resources.DefaultParams()), nil)
	run(a, 0.6, 0.1)
	if len(a.SealedCells()) != 0 {
		t.Errorf("SealedCells() = %v, want none", a.SealedCells())
	}
}

func TestPower_UnpoweredHolds(t *testing.T) {
	l := grid.New(grid.DefaultParams())
	interior := buildRoom(t, l, world.Cell{X: 5, Z: 5}, 3, 3)
	l.PlaceObject(world.Cell{X: 15, Z: 15}, entities.ObjectO2)
	p := resources.DefaultParams()
	p.Energy = 0
	a := New(DefaultParams(), l, resources.New(p), nil)

	run(a, 5, 0.1)
	if a.Powered() {
		t.Error("Powered() = true with no energy, want false")
	}
	for _, c := range interior {
		if !a.IsSealed(c) {
			t.Errorf("IsSealed(%v) = false, want true", c)
		}
		if got := a.O2At(c); got != 0 {
			t.Errorf("O2At(%v) = %v unpowered, want 0", c, got)
		}
	}
}

func TestPower_DrawCharged(t *testing.T) {
	l := grid.New(grid.DefaultParams())
	l.PlaceObject(world.Cell{X: 5, Z: 5}, entities.ObjectO2)
	l.PlaceObject(world.Cell{X: 15, Z: 5}, entities.ObjectO2)
	res := resources.New(resources.DefaultParams())
	a := New(DefaultParams(), l, res, nil)

	a.Tick(0.5)
	// 2 generators x 2 x 0.5s
	if got := res.Energy(); got != 98 {
		t.Errorf("Energy() after one interval = %v, want 98", got)
	}
	a.Tick(0.2)
	if got := res.Energy(); got != 98 {
		t.Errorf("Energy() between intervals = %v, want 98", got)
	}
}

func TestO2At_LazyInit(t *testing.T) {
	a := New(DefaultParams(), grid.New(grid.DefaultParams()), resources.New(resources.DefaultParams()), nil)
	c := world.Cell{X: 45, Z: 45}
	if got := a.O2At(c); got != 0 {
		t.Errorf("O2At(unknown) = %v, want 0", got)
	}
	if _, ok := a.Levels()[c]; !ok {
		t.Error("O2At did not start tracking the cell")
	}
}
