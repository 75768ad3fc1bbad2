// Package state holds the colony: every ledger and colonist, the order they
// tick in, and the placement tools the player drives them with.
package state

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"habitat/pkg/engine/world"
	"habitat/pkg/game/atmosphere"
	"habitat/pkg/game/behavior"
	"habitat/pkg/game/colonist"
	"habitat/pkg/game/entities"
	"habitat/pkg/game/grid"
	"habitat/pkg/game/pathing"
	"habitat/pkg/game/resources"
)

const maxMessages = 5

// Params gathers the tunables of every subsystem
type Params struct {
	Grid       grid.Params
	Economy    resources.Params
	Atmosphere atmosphere.Params
	Pathing    pathing.Params
	Needs      colonist.Params
	Behavior   behavior.Params
	Costs      Costs

	// SolarRate is the energy each solar panel adds per second
	SolarRate float64
}

// DefaultParams returns the stock tunables
func DefaultParams() Params {
	return Params{
		Grid:       grid.DefaultParams(),
		Economy:    resources.DefaultParams(),
		Atmosphere: atmosphere.DefaultParams(),
		Pathing:    pathing.DefaultParams(),
		Needs:      colonist.DefaultParams(),
		Behavior:   behavior.DefaultParams(),
		Costs:      DefaultCosts(),
		SolarRate:  5,
	}
}

// Colony is the whole simulation
type Colony struct {
	Grid       *grid.Ledger
	Bank       *resources.Ledger
	Atmosphere *atmosphere.Analyzer
	Planner    *pathing.Planner
	Agents     []*behavior.Controller

	Messages []string
	Selected *behavior.Controller
	Elapsed  float64

	params Params
	env    *behavior.Env
	rng    *rand.Rand
	log    *zap.Logger
}

// New creates an empty colony. rng drives every random choice.
func New(p Params, rng *rand.Rand, log *zap.Logger) *Colony {
	if log == nil {
		log = zap.NewNop()
	}
	if p.Costs == nil {
		p.Costs = DefaultCosts()
	}
	g := grid.New(p.Grid)
	bank := resources.New(p.Economy)
	air := atmosphere.New(p.Atmosphere, g, bank, log.Named("atmosphere"))
	planner := pathing.New(p.Pathing, g)

	return &Colony{
		Grid:       g,
		Bank:       bank,
		Atmosphere: air,
		Planner:    planner,
		Messages:   make([]string, 0),
		params:     p,
		rng:        rng,
		log:        log,
		env: &behavior.Env{
			Grid:       g,
			Atmosphere: air,
			Planner:    planner,
			Bank:       bank,
			Rand:       rng,
			Log:        log.Named("behavior"),
		},
	}
}

// Tick advances the colony by dt seconds: economy, solar, atmosphere, then
// each colonist in spawn order against the roster from before the step.
func (c *Colony) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	c.Bank.Tick(dt)
	if n := c.Grid.CountObjects(entities.ObjectSolar); n > 0 {
		c.Bank.GenerateEnergy(c.params.SolarRate * dt * float64(n))
	}
	c.Atmosphere.Tick(dt)

	roster := behavior.Snapshot(c.Agents)
	for _, a := range c.Agents {
		wasAlive := a.Alive()
		a.Tick(dt, roster)
		if wasAlive && !a.Alive() {
			c.AddMessage(gotext.Get("%s has died.", a.Colonist.Name))
		}
	}
	c.Elapsed += dt
}

// Apply uses tool on cell. Placement is charged only when it succeeds; the
// none tool selects the colonist standing on the cell.
func (c *Colony) Apply(cell world.Cell, tool Tool) bool {
	if tool == ToolNone {
		c.Selected = c.ColonistAt(cell)
		return c.Selected != nil
	}

	cost := c.params.Costs[tool]
	if !c.Bank.HasMatter(cost) {
		c.log.Info("placement refused", zap.Stringer("tool", tool), zap.Stringer("cell", cell), zap.String("reason", "matter"))
		c.AddMessage(gotext.Get("Not enough matter for %s.", tool))
		return false
	}

	ok := false
	switch {
	case tool == ToolFloor:
		ok = c.Grid.PlaceFloor(cell)
	case tool == ToolDelete:
		_, ok = c.Grid.MarkDeconstruct(cell)
	case tool == ToolNPC:
		c.Spawn(colonist.RoleEngineer, colonist.RandomTrait(c.rng), cell.Center())
		ok = true
	default:
		if kind, found := structureTools[tool]; found {
			_, ok = c.Grid.PlaceStructure(cell, kind)
		} else if kind, found := objectTools[tool]; found {
			_, ok = c.Grid.PlaceObject(cell, kind)
		}
	}

	if !ok {
		c.log.Info("placement refused", zap.Stringer("tool", tool), zap.Stringer("cell", cell), zap.String("reason", "occupied"))
		return false
	}
	c.Bank.DeductMatter(cost)
	return true
}

// ApplyAt snaps pos to its cell and applies tool there
func (c *Colony) ApplyAt(pos world.Vec, tool Tool) bool {
	return c.Apply(world.Snap(pos), tool)
}

// Spawn adds a colonist with the given role and trait at pos
func (c *Colony) Spawn(role colonist.Role, trait colonist.Trait, pos world.Vec) *behavior.Controller {
	col := colonist.New(c.rng, role, trait, c.params.Needs)
	a := behavior.New(col, pos, c.env, c.params.Behavior)
	c.Agents = append(c.Agents, a)
	c.log.Info("colonist spawned",
		zap.String("id", col.ID.String()),
		zap.String("name", col.Name),
		zap.Stringer("role", role),
		zap.Stringer("trait", trait))
	c.AddMessage(gotext.Get("%s the %s arrived.", col.Name, trait))
	return a
}

// SpawnRandom adds a colonist with a random role and trait at pos
func (c *Colony) SpawnRandom(pos world.Vec) *behavior.Controller {
	return c.Spawn(colonist.RandomRole(c.rng), colonist.RandomTrait(c.rng), pos)
}

// ColonistAt returns the first colonist standing on the cell, or nil
func (c *Colony) ColonistAt(cell world.Cell) *behavior.Controller {
	for _, a := range c.Agents {
		if a.Cell() == cell {
			return a
		}
	}
	return nil
}

// Alive returns how many colonists are still alive
func (c *Colony) Alive() int {
	n := 0
	for _, a := range c.Agents {
		if a.Alive() {
			n++
		}
	}
	return n
}

// Resources returns the current balances
func (c *Colony) Resources() resources.Levels {
	return c.Bank.Levels()
}

// DrainDirty returns the cells whose structures or jobs changed since the last call
func (c *Colony) DrainDirty() []world.Cell {
	return c.Grid.DrainDirty()
}

// AddMessage adds a message to the colony's message log
func (c *Colony) AddMessage(msg string) {
	c.Messages = append(c.Messages, msg)

	if len(c.Messages) > maxMessages {
		c.Messages = c.Messages[len(c.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (c *Colony) ClearMessages() {
	c.Messages = make([]string, 0)
}
