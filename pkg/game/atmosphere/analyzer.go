// Package atmosphere decides which cells hold breathable air. On a fixed
// interval it flood-fills outward from every floored O2 generator to find sealed
// rooms and charges the generators' power draw; every tick it moves each cell's
// O2 level toward full (sealed and powered) or empty (unsealed).
package atmosphere

import (
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"habitat/pkg/engine/world"
	"habitat/pkg/game/entities"
)

// Params are the analyzer tunables
type Params struct {
	Interval         float64 `yaml:"interval"`
	MaxRoomCells     int     `yaml:"max_room_cells"`
	FillRate         float64 `yaml:"fill_rate"`
	DecayRate        float64 `yaml:"decay_rate"`
	DrawPerGenerator float64 `yaml:"draw_per_generator"`
	MaxLevel         float64 `yaml:"max_level"`
}

// DefaultParams returns the stock tunables
func DefaultParams() Params {
	return Params{
		Interval:         0.5,
		MaxRoomCells:     400,
		FillRate:         15,
		DecayRate:        0.5,
		DrawPerGenerator: 2,
		MaxLevel:         100,
	}
}

// Grid is the part of the grid ledger the analyzer reads
type Grid interface {
	Objects(kind entities.ObjectKind) []*entities.Object
	HasFloor(cell world.Cell) bool
	IsSeal(cell world.Cell) bool
}

// Power is the energy source the generators draw from
type Power interface {
	ConsumeEnergy(amount float64) bool
}

// Analyzer owns the sealed set and the O2 level field
type Analyzer struct {
	params Params
	grid   Grid
	power  Power
	log    *zap.Logger

	timer   float64
	powered bool
	sealed  mapset.Set[world.Cell]
	levels  map[world.Cell]float64
}

// New creates an analyzer over the given grid and power source
func New(p Params, grid Grid, power Power, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{
		params: p,
		grid:   grid,
		power:  power,
		log:    log,
		sealed: mapset.New[world.Cell](),
		levels: make(map[world.Cell]float64),
	}
}

// Tick advances the analysis timer and diffuses O2 for dt seconds
func (a *Analyzer) Tick(dt float64) {
	a.timer += dt
	if a.timer >= a.params.Interval {
		a.timer = 0
		a.checkSealing()
		a.checkPower()
	}
	a.diffuse(dt)
}

// checkSealing rebuilds the sealed set from scratch
func (a *Analyzer) checkSealing() {
	sealed := mapset.New[world.Cell]()
	for _, gen := range a.grid.Objects(entities.ObjectO2) {
		if !a.grid.HasFloor(gen.Cell) || sealed.Has(gen.Cell) {
			continue
		}
		room, ok := a.fillRoom(gen.Cell)
		if !ok {
			continue
		}
		for _, c := range room {
			sealed.Put(c)
		}
	}
	if sealed.Size() != a.sealed.Size() {
		a.log.Debug("sealed area changed",
			zap.Int("from", a.sealed.Size()),
			zap.Int("to", sealed.Size()))
	}
	a.sealed = sealed
	a.sealed.Each(func(c world.Cell) {
		if _, ok := a.levels[c]; !ok {
			a.levels[c] = 0
		}
	})
}

// fillRoom floods from start through floored cells, stopping at seals.
// It returns false if the room touches an unfloored cell or grows too large.
func (a *Analyzer) fillRoom(start world.Cell) ([]world.Cell, bool) {
	visited := mapset.New[world.Cell]()
	visited.Put(start)
	queue := []world.Cell{start}
	var room []world.Cell

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		room = append(room, current)
		if len(room) > a.params.MaxRoomCells {
			return nil, false
		}

		for _, n := range current.Neighbors() {
			if visited.Has(n) || a.grid.IsSeal(n) {
				continue
			}
			if !a.grid.HasFloor(n) {
				return nil, false
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return room, true
}

// checkPower charges the generators for one interval, all or nothing
func (a *Analyzer) checkPower() {
	gens := len(a.grid.Objects(entities.ObjectO2))
	draw := float64(gens) * a.params.DrawPerGenerator * a.params.Interval
	powered := gens > 0 && a.power.ConsumeEnergy(draw)
	if powered != a.powered && gens > 0 {
		if powered {
			a.log.Info("life support powered", zap.Int("generators", gens))
		} else {
			a.log.Warn("life support unpowered", zap.Int("generators", gens), zap.Float64("draw", draw))
		}
	}
	a.powered = powered
}

func (a *Analyzer) diffuse(dt float64) {
	for c, level := range a.levels {
		switch {
		case a.sealed.Has(c) && a.powered:
			level = min(a.params.MaxLevel, level+a.params.FillRate*dt)
		case a.sealed.Has(c):
		default:
			level = max(0, level-a.params.DecayRate*dt)
		}
		a.levels[c] = level
	}
}

// O2At returns the O2 level of a cell, starting to track it at 0 if unknown
func (a *Analyzer) O2At(cell world.Cell) float64 {
	level, ok := a.levels[cell]
	if !ok {
		a.levels[cell] = 0
	}
	return level
}

// IsSealed returns true if the cell was in a sealed room at the last analysis
func (a *Analyzer) IsSealed(cell world.Cell) bool {
	return a.sealed.Has(cell)
}

// Powered returns the result of the last power check
func (a *Analyzer) Powered() bool {
	return a.powered
}

// Levels returns a copy of the O2 field
func (a *Analyzer) Levels() map[world.Cell]float64 {
	out := make(map[world.Cell]float64, len(a.levels))
	for c, l := range a.levels {
		out[c] = l
	}
	return out
}

// SealedCells returns the sealed set, sorted by Z then X
func (a *Analyzer) SealedCells() []world.Cell {
	out := make([]world.Cell, 0, a.sealed.Size())
	a.sealed.Each(func(c world.Cell) {
		out = append(out, c)
	})
	world.SortCells(out)
	return out
}

// CellsAbove returns tracked cells whose level exceeds threshold, sorted by Z then X
func (a *Analyzer) CellsAbove(threshold float64) []world.Cell {
	var out []world.Cell
	for c, l := range a.levels {
		if l > threshold {
			out = append(out, c)
		}
	}
	world.SortCells(out)
	return out
}
