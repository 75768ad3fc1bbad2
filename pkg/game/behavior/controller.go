// Package behavior drives colonists: a per-agent state machine that reads the
// needs model, picks the next activity, walks planned paths and completes
// timed actions against the grid and resource ledgers.
package behavior

import (
	"math/rand"

	"go.uber.org/zap"

	"habitat/pkg/engine/world"
	"habitat/pkg/game/colonist"
	"habitat/pkg/game/entities"
	"habitat/pkg/game/pathing"
)

// Grid is the part of the grid ledger a controller reads and mutates
type Grid interface {
	IsBlocked(cell world.Cell) bool
	Objects(kind entities.ObjectKind) []*entities.Object
	ObjectAt(cell world.Cell) *entities.Object
	PendingJobs() []*entities.Job
	IsPending(job *entities.Job) bool
	CompleteJob(job *entities.Job) bool
	Extract(cell world.Cell, amount int) int
}

// Atmosphere answers oxygen queries
type Atmosphere interface {
	O2At(cell world.Cell) float64
	CellsAbove(threshold float64) []world.Cell
}

// Planner finds walkable cell paths
type Planner interface {
	FindPath(from, to world.Vec) (pathing.Path, bool)
}

// Bank receives deposited matter
type Bank interface {
	AddMatter(amount float64)
}

// Env is the shared world every controller acts on
type Env struct {
	Grid       Grid
	Atmosphere Atmosphere
	Planner    Planner
	Bank       Bank
	Rand       *rand.Rand
	Log        *zap.Logger
}

// Controller is the state machine of one colonist
type Controller struct {
	Colonist *colonist.Colonist

	params Params
	env    *Env
	log    *zap.Logger

	pos     world.Vec
	state   State
	enRoute bool
	timer   float64
	path    pathing.Path

	job      *entities.Job
	mineCell world.Cell
	friend   *Controller
	cargo    int
}

// New places a controller for col at pos, idle
func New(col *colonist.Colonist, pos world.Vec, env *Env, p Params) *Controller {
	log := env.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		Colonist: col,
		params:   p,
		env:      env,
		log:      log.With(zap.String("colonist", col.Name), zap.String("id", col.ShortID())),
		pos:      pos,
		state:    StateIdle,
	}
}

// Position returns the continuous position
func (c *Controller) Position() world.Vec { return c.pos }

// Cell returns the cell the colonist stands in
func (c *Controller) Cell() world.Cell { return world.Snap(c.pos) }

// State returns the current state
func (c *Controller) State() State { return c.state }

// EnRoute returns true while walking toward the target of a need action
func (c *Controller) EnRoute() bool { return c.enRoute }

// Timer returns the seconds left on the current timed action
func (c *Controller) Timer() float64 { return c.timer }

// Cargo returns the matter a miner is carrying
func (c *Controller) Cargo() int { return c.cargo }

// Job returns the job an engineer is assigned to, or nil
func (c *Controller) Job() *entities.Job { return c.job }

// Path returns a copy of the remaining waypoints
func (c *Controller) Path() pathing.Path {
	out := make(pathing.Path, len(c.path))
	copy(out, c.path)
	return out
}

// Alive returns true until the colonist dies
func (c *Controller) Alive() bool {
	return c.state != StateDead
}

// Tick advances the colonist by dt seconds. peers is the roster as it stood at
// the start of the tick.
func (c *Controller) Tick(dt float64, peers Roster) {
	if c.state == StateDead {
		return
	}
	needs := c.Colonist.Needs
	nearby := peers.Nearby(c.pos, c.params.PeerRange, c)
	ambient := c.env.Atmosphere.O2At(c.Cell())

	needs.Update(dt, colonist.Context{
		Sleeping:    c.performing(StateSleeping),
		Socializing: c.state == StateSocializing,
		Relaxing:    c.performing(StateRelaxing),
		Working:     c.state.IsWork(),
		Crowded:     len(nearby)+1 > c.params.CrowdLimit,
		AmbientO2:   ambient,
	})
	if needs.Dead {
		c.die()
		return
	}

	c.think(dt, nearby, ambient)
	c.move(dt)
}

// performing is true once the colonist is actually doing s, not walking to it
func (c *Controller) performing(s State) bool {
	return c.state == s && !c.enRoute
}

func (c *Controller) think(dt float64, nearby []Peer, ambient float64) {
	needs := c.Colonist.Needs
	p := c.params

	if needs.SuitOxygen < p.PanicSuitOxygen && c.state != StateMovingToSafety && c.state != StateSleeping {
		if c.seekSafety() {
			return
		}
	} else if ambient < p.UnsafeO2 && c.state.IsIdle() {
		if c.seekSafety() {
			return
		}
	}

	if needs.Emotion == colonist.EmotionAngry && c.state != StateTantrum && c.state != StateSleeping {
		c.enter(StateTantrum)
		return
	}
	if needs.Value(colonist.NeedEnergy) <= 0 && c.state != StateSleeping {
		c.enter(StateSleeping)
		return
	}

	if c.state == StateTantrum {
		needs.Adjust(colonist.NeedStress, -p.TantrumRelief*dt)
		if needs.Value(colonist.NeedStress) < p.TantrumExit {
			c.enter(StateIdle)
		}
		return
	}
	if c.state == StateMovingToSafety {
		return
	}

	if c.timer > 0 {
		c.timer -= dt
		if c.timer <= 0 {
			c.complete()
		}
		return
	}
	if len(c.path) > 0 {
		return
	}
	if c.state.IsIdle() {
		c.decide(nearby)
	}
}

func (c *Controller) die() {
	c.setState(StateDead)
	c.path = nil
	c.timer = 0
	c.enRoute = false
	c.job = nil
	c.friend = nil
	c.log.Info("colonist died", zap.Stringer("cell", c.Cell()))
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	c.log.Debug("state change", zap.Stringer("from", c.state), zap.Stringer("to", s))
	c.state = s
}
