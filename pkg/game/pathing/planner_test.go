package pathing

import (
	"testing"

	"habitat/pkg/engine/world"
)

// blockedSet is a walkability map for tests
type blockedSet map[world.Cell]bool

func (b blockedSet) IsBlocked(c world.Cell) bool { return b[c] }

func cellPos(x, z int) world.Vec {
	return world.Cell{X: x, Z: z}.Center()
}

func TestFindPath_Straight(t *testing.T) {
	p := New(DefaultParams(), blockedSet{})
	path, ok := p.FindPath(cellPos(5, 5), cellPos(35, 5))
	if !ok {
		t.Fatal("FindPath on open ground = not ok, want ok")
	}
	want := Path{{X: 15, Z: 5}, {X: 25, Z: 5}, {X: 35, Z: 5}}
	if len(path) != len(want) {
		t.Fatalf("FindPath = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("FindPath[%d] = %v, want %v", i, path[i], want[i])
		}
	}
}

func TestFindPath_SnapsEndpoints(t *testing.T) {
	p := New(DefaultParams(), blockedSet{})
	path, ok := p.FindPath(world.Vec{X: 1.2, Z: 8.9}, world.Vec{X: 19.9, Z: 0.1})
	if !ok || len(path) != 1 || path[0] != (world.Cell{X: 15, Z: 5}) {
		t.Errorf("FindPath(off-center) = %v, %v, want [15,5], true", path, ok)
	}
}

func TestFindPath_BlockedDestination(t *testing.T) {
	goal := world.Cell{X: 25, Z: 5}
	p := New(DefaultParams(), blockedSet{goal: true})
	path, ok := p.FindPath(cellPos(5, 5), goal.Center())
	if ok || len(path) != 0 {
		t.Errorf("FindPath(to blocked) = %v, %v, want empty, false", path, ok)
	}
}

func TestFindPath_AlreadyThere(t *testing.T) {
	p := New(DefaultParams(), blockedSet{})
	path, ok := p.FindPath(world.Vec{X: 6, Z: 4}, cellPos(5, 5))
	if !ok || len(path) != 0 {
		t.Errorf("FindPath(same cell) = %v, %v, want empty, true", path, ok)
	}
}

func TestFindPath_AroundWall(t *testing.T) {
	// Wall from z=-15 to z=25 at x=15, leaving a gap at z=35
	blocked := blockedSet{}
	for z := -15; z <= 25; z += world.Pitch {
		blocked[world.Cell{X: 15, Z: z}] = true
	}
	p := New(DefaultParams(), blocked)
	path, ok := p.FindPath(cellPos(5, 5), cellPos(25, 5))
	if !ok {
		t.Fatal("FindPath around wall = not ok, want ok")
	}
	for _, c := range path {
		if blocked[c] {
			t.Errorf("path crosses blocked cell %v", c)
		}
	}
	if path[len(path)-1] != (world.Cell{X: 25, Z: 5}) {
		t.Errorf("path ends at %v, want 25,5", path[len(path)-1])
	}
	// Down to z=35, across two cells, back up: 3 + 2 + 3
	if len(path) != 8 {
		t.Errorf("len(path) = %d, want 8", len(path))
	}
}

func TestFindPath_Enclosed(t *testing.T) {
	goal := world.Cell{X: 55, Z: 55}
	blocked := blockedSet{}
	for _, n := range goal.Neighbors() {
		blocked[n] = true
	}
	p := New(DefaultParams(), blocked)
	if path, ok := p.FindPath(cellPos(5, 5), goal.Center()); ok {
		t.Errorf("FindPath(enclosed goal) = %v, true, want unreachable", path)
	}
}

func TestFindPath_ExpansionCap(t *testing.T) {
	p := New(DefaultParams(), blockedSet{})
	// 40 cells away on open ground needs far more than 300 expansions
	if _, ok := p.FindPath(cellPos(5, 5), cellPos(205, 205)); ok {
		t.Error("FindPath beyond the expansion cap = ok, want unreachable")
	}
	wide := New(Params{MaxExpansions: 5000, GoalTolerance: 2}, blockedSet{})
	path, ok := wide.FindPath(cellPos(5, 5), cellPos(205, 205))
	if !ok || len(path) != 40 {
		t.Errorf("FindPath with raised cap = len %d, %v, want 40, true", len(path), ok)
	}
}

func TestFindPath_TieBreakPrefersX(t *testing.T) {
	p := New(DefaultParams(), blockedSet{})
	path, ok := p.FindPath(cellPos(5, 5), cellPos(15, 15))
	if !ok || len(path) != 2 {
		t.Fatalf("FindPath diagonal = %v, %v", path, ok)
	}
	if path[0] != (world.Cell{X: 15, Z: 5}) {
		t.Errorf("first step = %v, want +X neighbour 15,5", path[0])
	}
}
