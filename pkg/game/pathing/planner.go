// Package pathing finds routes across the habitat lattice.
//
// The search is a breadth-first expansion over the 4-connected walkable cells.
// All steps cost the same, so the first path discovered is a shortest path in
// cell count. Neighbour order is fixed (+X, -X, +Z, -Z) and decides ties.
package pathing

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"habitat/pkg/engine/world"
)

// Params are the search tunables
type Params struct {
	// MaxExpansions caps the number of dequeued nodes per search
	MaxExpansions int `yaml:"max_expansions"`
	// GoalTolerance is how close (per axis) a cell center must be to the goal center
	GoalTolerance float64 `yaml:"goal_tolerance"`
}

// DefaultParams returns the stock search tunables
func DefaultParams() Params {
	return Params{MaxExpansions: 300, GoalTolerance: 2}
}

// Walkability reports which cells agents cannot stand on
type Walkability interface {
	IsBlocked(cell world.Cell) bool
}

// Path is an ordered list of waypoint cells, start excluded
type Path []world.Cell

// Planner searches paths over a walkability map
type Planner struct {
	params Params
	grid   Walkability
}

// New creates a planner over grid
func New(p Params, grid Walkability) *Planner {
	if p.MaxExpansions <= 0 {
		p.MaxExpansions = DefaultParams().MaxExpansions
	}
	return &Planner{params: p, grid: grid}
}

// FindPath returns the waypoints from the cell under from to the cell under to.
// ok is false when the goal is blocked or not reached within the expansion cap.
// An empty path with ok true means from already lies on the goal cell.
func (p *Planner) FindPath(from, to world.Vec) (Path, bool) {
	start := world.Snap(from)
	goal := world.Snap(to)
	if p.grid.IsBlocked(goal) {
		return nil, false
	}

	cameFrom := make(map[world.Cell]world.Cell)
	gScore := map[world.Cell]int{start: 0}
	queued := mapset.New[world.Cell]()
	queued.Put(start)
	queue := []world.Cell{start}

	for expanded := 0; len(queue) > 0; expanded++ {
		if expanded >= p.params.MaxExpansions {
			return nil, false
		}
		current := queue[0]
		queue = queue[1:]
		queued.Remove(current)

		if p.atGoal(current, goal) {
			return reconstruct(cameFrom, start, current), true
		}

		for _, n := range current.Neighbors() {
			if p.grid.IsBlocked(n) {
				continue
			}
			g := gScore[current] + 1
			if best, seen := gScore[n]; seen && g >= best {
				continue
			}
			cameFrom[n] = current
			gScore[n] = g
			if !queued.Has(n) {
				queued.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return nil, false
}

func (p *Planner) atGoal(c, goal world.Cell) bool {
	return math.Abs(float64(c.X-goal.X)) < p.params.GoalTolerance &&
		math.Abs(float64(c.Z-goal.Z)) < p.params.GoalTolerance
}

func reconstruct(cameFrom map[world.Cell]world.Cell, start, end world.Cell) Path {
	var path Path
	for c := end; c != start; {
		path = append(path, c)
		prev, ok := cameFrom[c]
		if !ok {
			break
		}
		c = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
