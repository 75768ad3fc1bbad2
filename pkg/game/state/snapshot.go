package state

import (
	"github.com/google/uuid"

	"habitat/pkg/engine/world"
	"habitat/pkg/game/behavior"
	"habitat/pkg/game/colonist"
	"habitat/pkg/game/entities"
	"habitat/pkg/game/resources"
)

// AgentView is a copy of one colonist's visible state
type AgentView struct {
	ID       uuid.UUID
	Name     string
	Role     colonist.Role
	Trait    colonist.Trait
	Position world.Vec
	Cell     world.Cell
	State    behavior.State
	EnRoute  bool
	Emotion  colonist.Emotion
	Needs    map[colonist.Need]float64

	SuitOxygen  float64
	WearingSuit bool
	Happiness   float64
	Cargo       int
	Selected    bool
	Grace       bool // new arrival, not yet stressed by unmet needs
}

// JobView is a pending job
type JobView struct {
	Kind entities.JobKind
	Cell world.Cell
}

// StructureView is a placed structure with its wall connections
type StructureView struct {
	Kind        entities.StructureKind
	Cell        world.Cell
	Complete    bool
	Connections world.Connections
}

// ObjectView is a placed object
type ObjectView struct {
	Kind   entities.ObjectKind
	Cell   world.Cell
	Matter int
}

// Snapshot is a read-only copy of everything a renderer needs
type Snapshot struct {
	Elapsed    float64
	Agents     []AgentView
	Jobs       []JobView
	Structures []StructureView
	Floors     []world.Cell
	Objects    []ObjectView
	Sealed     []world.Cell
	O2         map[world.Cell]float64
	Powered    bool
	Resources  resources.Levels
	Messages   []string
}

// Snapshot copies the colony for display. Nothing in the result aliases live state.
func (c *Colony) Snapshot() Snapshot {
	snap := Snapshot{
		Elapsed:   c.Elapsed,
		Floors:    c.Grid.Floors(),
		Sealed:    c.Atmosphere.SealedCells(),
		O2:        c.Atmosphere.Levels(),
		Powered:   c.Atmosphere.Powered(),
		Resources: c.Bank.Levels(),
		Messages:  append([]string(nil), c.Messages...),
	}

	for _, a := range c.Agents {
		snap.Agents = append(snap.Agents, agentView(a, a == c.Selected))
	}
	for _, j := range c.Grid.PendingJobs() {
		snap.Jobs = append(snap.Jobs, JobView{Kind: j.Kind, Cell: j.Cell})
	}
	for _, s := range c.Grid.Structures() {
		snap.Structures = append(snap.Structures, StructureView{
			Kind:        s.Kind,
			Cell:        s.Cell,
			Complete:    s.Complete,
			Connections: c.Grid.Connections(s.Cell),
		})
	}
	for _, o := range c.Grid.AllObjects() {
		snap.Objects = append(snap.Objects, ObjectView{Kind: o.Kind, Cell: o.Cell, Matter: o.Matter})
	}
	return snap
}

func agentView(a *behavior.Controller, selected bool) AgentView {
	col := a.Colonist
	needs := make(map[colonist.Need]float64, len(colonist.AllNeeds()))
	for _, k := range colonist.AllNeeds() {
		needs[k] = col.Needs.Value(k)
	}
	return AgentView{
		ID:          col.ID,
		Name:        col.Name,
		Role:        col.Role,
		Trait:       col.Trait,
		Position:    a.Position(),
		Cell:        a.Cell(),
		State:       a.State(),
		EnRoute:     a.EnRoute(),
		Emotion:     col.Needs.Emotion,
		Needs:       needs,
		SuitOxygen:  col.Needs.SuitOxygen,
		WearingSuit: col.Needs.WearingSuit,
		Happiness:   col.Needs.Happiness,
		Cargo:       a.Cargo(),
		Selected:    selected,
		Grace:       col.Needs.InGrace(),
	}
}

// AgentAt returns the view of the first colonist on cell
func (s Snapshot) AgentAt(cell world.Cell) (AgentView, bool) {
	for _, a := range s.Agents {
		if a.Cell == cell {
			return a, true
		}
	}
	return AgentView{}, false
}

// Bounds returns the smallest and largest cells holding anything, or false
// for an empty colony
func (s Snapshot) Bounds() (lo, hi world.Cell, ok bool) {
	grow := func(cell world.Cell) {
		if !ok {
			lo, hi, ok = cell, cell, true
			return
		}
		lo.X, lo.Z = min(lo.X, cell.X), min(lo.Z, cell.Z)
		hi.X, hi.Z = max(hi.X, cell.X), max(hi.Z, cell.Z)
	}
	for _, f := range s.Floors {
		grow(f)
	}
	for _, st := range s.Structures {
		grow(st.Cell)
	}
	for _, o := range s.Objects {
		grow(o.Cell)
	}
	for _, a := range s.Agents {
		grow(a.Cell)
	}
	return lo, hi, ok
}
