package behavior

import (
	"sort"

	"habitat/pkg/engine/world"
	"habitat/pkg/game/colonist"
	"habitat/pkg/game/entities"
	"habitat/pkg/game/pathing"
)

// decide runs the decision tree for an idle or wandering colonist
func (c *Controller) decide(nearby []Peer) {
	needs := c.Colonist.Needs
	th := c.params.Thresholds

	if needs.Value(colonist.NeedHunger) < th.Hunger && c.seekObject(entities.ObjectFood, StateEating) {
		return
	}
	if needs.Value(colonist.NeedThirst) < th.Thirst && c.seekObject(entities.ObjectWater, StateDrinking) {
		return
	}
	if needs.Value(colonist.NeedEnergy) < th.Energy && c.seekObject(entities.ObjectBed, StateSleeping) {
		return
	}
	if needs.Value(colonist.NeedSocial) < th.Social && !c.Colonist.Trait.Info().Solitary && c.seekFriend(nearby) {
		return
	}
	stress := needs.Value(colonist.NeedStress)
	bored := needs.Value(colonist.NeedFun) < th.Fun
	if (bored || (stress > th.StressLow && stress < th.StressMax)) && c.seekObject(entities.ObjectLounge, StateRelaxing) {
		return
	}

	if needs.WorkSpeed > 0 {
		c.findWork()
		return
	}
	c.wander()
}

// seekObject walks to the nearest reachable object of kind to perform action there
func (c *Controller) seekObject(kind entities.ObjectKind, action State) bool {
	objs := c.env.Grid.Objects(kind)
	cells := make([]world.Cell, 0, len(objs))
	for _, o := range objs {
		cells = append(cells, o.Cell)
	}
	c.byDistance(cells)
	for _, cell := range cells {
		if path, ok := c.env.Planner.FindPath(c.pos, cell.Center()); ok {
			c.walk(path, action)
			return true
		}
	}
	return false
}

// seekFriend starts an interaction with the first peer that was idle at the start of the tick
func (c *Controller) seekFriend(nearby []Peer) bool {
	for _, p := range nearby {
		if p.State != StateIdle {
			continue
		}
		return c.interact(p.Agent)
	}
	return false
}

// interact walks toward other, or socializes with them when close enough
func (c *Controller) interact(other *Controller) bool {
	if c.pos.DistanceTo(other.pos) > c.params.InteractDistance {
		path, ok := c.env.Planner.FindPath(c.pos, other.pos)
		if !ok || len(path) == 0 {
			return false
		}
		c.friend = other
		c.walk(path, StateMovingToFriend)
		return true
	}
	return c.socialize(other)
}

func (c *Controller) findWork() {
	switch c.Colonist.Role {
	case colonist.RoleEngineer:
		if !c.findJob() {
			c.wander()
		}
	case colonist.RoleMiner:
		if c.cargo > 0 {
			c.seekObject(entities.ObjectStorage, StateDepositing)
			return
		}
		if !c.findAsteroid() {
			c.wander()
		}
	default:
		c.wander()
	}
}

// findJob claims the nearest pending job with a reachable open neighbor
func (c *Controller) findJob() bool {
	jobs := c.env.Grid.PendingJobs()
	sort.SliceStable(jobs, func(i, j int) bool {
		return c.distance(jobs[i].Cell) < c.distance(jobs[j].Cell)
	})
	for _, job := range jobs {
		var approaches []world.Cell
		for _, n := range job.Cell.Neighbors() {
			if !c.env.Grid.IsBlocked(n) {
				approaches = append(approaches, n)
			}
		}
		c.byDistance(approaches)
		for _, a := range approaches {
			path, ok := c.env.Planner.FindPath(c.pos, a.Center())
			if !ok {
				continue
			}
			c.job = job
			if job.Kind == entities.JobDeconstruct {
				c.walk(path, StateMovingToDemo)
			} else {
				c.walk(path, StateMovingToWork)
			}
			return true
		}
	}
	return false
}

func (c *Controller) findAsteroid() bool {
	var cells []world.Cell
	for _, o := range c.env.Grid.Objects(entities.ObjectAsteroid) {
		if o.Matter > 0 {
			cells = append(cells, o.Cell)
		}
	}
	c.byDistance(cells)
	for _, cell := range cells {
		if path, ok := c.env.Planner.FindPath(c.pos, cell.Center()); ok {
			c.mineCell = cell
			c.walk(path, StateMovingToMine)
			return true
		}
	}
	return false
}

// seekSafety heads for the nearest reachable cell with breathable air
func (c *Controller) seekSafety() bool {
	cells := c.env.Atmosphere.CellsAbove(c.params.SafeO2)
	c.byDistance(cells)
	for _, cell := range cells {
		if path, ok := c.env.Planner.FindPath(c.pos, cell.Center()); ok {
			c.walk(path, StateMovingToSafety)
			return true
		}
	}
	return false
}

func (c *Controller) wander() {
	rng := c.env.Rand
	if rng.Float64() >= c.params.WanderChance {
		return
	}
	r := c.params.WanderRadius
	target := c.pos.Add(world.Vec{X: (rng.Float64() - 0.5) * r, Z: (rng.Float64() - 0.5) * r})
	path, ok := c.env.Planner.FindPath(c.pos, target)
	if !ok || len(path) == 0 {
		return
	}
	c.walk(path, StateWandering)
}

// walk starts following path in state s. An empty path means the colonist
// is already there.
func (c *Controller) walk(path pathing.Path, s State) {
	c.setState(s)
	c.timer = 0
	c.enRoute = true
	c.path = path
	if len(path) == 0 {
		c.arrive()
	}
}

func (c *Controller) distance(cell world.Cell) float64 {
	d := cell.Center().Sub(c.pos)
	return d.X*d.X + d.Z*d.Z
}

func (c *Controller) byDistance(cells []world.Cell) {
	sort.SliceStable(cells, func(i, j int) bool {
		return c.distance(cells[i]) < c.distance(cells[j])
	})
}
