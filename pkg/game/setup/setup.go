// Package setup builds the starting colony: a sealed room with life support,
// solar panels outside, an asteroid field and the first colonists.
package setup

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"habitat/pkg/engine/world"
	"habitat/pkg/game/colonist"
	"habitat/pkg/game/entities"
	"habitat/pkg/game/state"
)

// Params controls the size of the starting colony. Roles fixes the role of
// the first colonists in order; the rest get random roles.
type Params struct {
	Colonists int      `yaml:"colonists"`
	Asteroids int      `yaml:"asteroids"`
	Roles     []string `yaml:"roles"`
}

// DefaultParams returns the stock starting colony, led by an engineer and a
// miner so every colony can build and mine
func DefaultParams() Params {
	return Params{Colonists: 4, Asteroids: 6, Roles: []string{"engineer", "miner"}}
}

// Validate reports role names that are not colonist roles
func (p Params) Validate() error {
	var unknown []string
	for _, name := range p.Roles {
		if _, ok := colonist.ParseRole(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown roles in setup.roles: %v", unknown)
	}
	return nil
}

// Layout records where the starting pieces went
type Layout struct {
	Room      []world.Cell // interior cells
	Airlock   world.Cell
	Asteroids []world.Cell
}

// room is the 3x3 interior, origin top-left
var (
	roomOrigin  = world.Cell{X: 5, Z: 5}
	roomSize    = 3
	airlockCell = world.Cell{X: 35, Z: 15}
)

// interior object placement, all other interior cells stay bare floor
var furniture = map[world.Cell]entities.ObjectKind{
	{X: 5, Z: 5}:   entities.ObjectFood,
	{X: 15, Z: 5}:  entities.ObjectWater,
	{X: 25, Z: 5}:  entities.ObjectBed,
	{X: 15, Z: 15}: entities.ObjectO2,
	{X: 5, Z: 25}:  entities.ObjectLounge,
	{X: 25, Z: 25}: entities.ObjectStorage,
}

var solarCells = []world.Cell{{X: 45, Z: -25}, {X: 55, Z: -25}}

// asteroid field bounds, in cell centers
const (
	fieldMinX = 55
	fieldMaxX = 95
	fieldMinZ = -5
	fieldMaxZ = 35
)

// Build lays out the starter habitat on an empty colony. Nothing is charged.
func Build(c *state.Colony, rng *rand.Rand, p Params) Layout {
	avoid := mapset.New[world.Cell]()
	layout := Layout{Airlock: airlockCell}

	layout.Room = buildRoom(c, &avoid)
	for _, cell := range layout.Room {
		if kind, ok := furniture[cell]; ok {
			c.Grid.PlaceObject(cell, kind)
		}
	}
	for _, cell := range solarCells {
		c.Grid.PlaceObject(cell, entities.ObjectSolar)
		avoid.Put(cell)
	}
	// keep the path out of the airlock clear
	avoid.Put(airlockCell.Step(world.East))

	layout.Asteroids = placeAsteroids(c, rng, p.Asteroids, &avoid)
	spawnColonists(c, rng, p, layout.Room)
	return layout
}

// buildRoom floors the interior and rings it with finished walls, with one
// finished airlock on the east side. Returns the interior cells.
func buildRoom(c *state.Colony, avoid *mapset.Set[world.Cell]) []world.Cell {
	var interior []world.Cell
	for dz := -1; dz <= roomSize; dz++ {
		for dx := -1; dx <= roomSize; dx++ {
			cell := world.Cell{X: roomOrigin.X + dx*world.Pitch, Z: roomOrigin.Z + dz*world.Pitch}
			avoid.Put(cell)
			if dx == -1 || dz == -1 || dx == roomSize || dz == roomSize {
				kind := entities.StructureWall
				if cell == airlockCell {
					kind = entities.StructureAirlock
				}
				if job, ok := c.Grid.PlaceStructure(cell, kind); ok {
					c.Grid.CompleteJob(job)
				}
				continue
			}
			c.Grid.PlaceFloor(cell)
			interior = append(interior, cell)
		}
	}
	return interior
}

func placeAsteroids(c *state.Colony, rng *rand.Rand, n int, avoid *mapset.Set[world.Cell]) []world.Cell {
	var out []world.Cell
	cols := (fieldMaxX-fieldMinX)/world.Pitch + 1
	rows := (fieldMaxZ-fieldMinZ)/world.Pitch + 1
	for tries := 0; len(out) < n && tries < n*20; tries++ {
		cell := world.Cell{
			X: fieldMinX + rng.Intn(cols)*world.Pitch,
			Z: fieldMinZ + rng.Intn(rows)*world.Pitch,
		}
		if avoid.Has(cell) {
			continue
		}
		if _, ok := c.Grid.PlaceObject(cell, entities.ObjectAsteroid); ok {
			avoid.Put(cell)
			out = append(out, cell)
		}
	}
	return out
}

// spawnColonists fills the free interior cells. Unknown role names fall back
// to a random role.
func spawnColonists(c *state.Colony, rng *rand.Rand, p Params, room []world.Cell) {
	var free []world.Cell
	for _, cell := range room {
		if c.Grid.ObjectAt(cell) == nil {
			free = append(free, cell)
		}
	}
	if len(free) == 0 {
		free = room
	}
	for i := 0; i < p.Colonists; i++ {
		pos := free[i%len(free)].Center()
		if i < len(p.Roles) {
			if role, ok := colonist.ParseRole(p.Roles[i]); ok {
				c.Spawn(role, colonist.RandomTrait(rng), pos)
				continue
			}
		}
		c.SpawnRandom(pos)
	}
}
