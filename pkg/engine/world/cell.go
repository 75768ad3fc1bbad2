// Package world provides lattice primitives for a grid-based habitat.
// Positions are continuous on the ground plane; cells are the fixed lattice
// those positions snap to. These are engine-level constructs with no game rules.
package world

import (
	"fmt"
	"math"
	"sort"
)

// Lattice geometry. Cell centers sit at Pitch*k + Offset on both axes.
const (
	Pitch  = 10
	Offset = 5
)

// Cell is a lattice-aligned grid coordinate, stored as the cell center.
// It is comparable and used directly as a map key.
type Cell struct {
	X int
	Z int
}

// Vec is a continuous position on the ground plane.
type Vec struct {
	X float64
	Z float64
}

func snapAxis(v float64) int {
	return int(math.Floor(v/Pitch))*Pitch + Offset
}

// Snap returns the cell containing the position.
func Snap(v Vec) Cell {
	return Cell{X: snapAxis(v.X), Z: snapAxis(v.Z)}
}

// SnapXZ is Snap for raw coordinates, e.g. pick positions from a camera ray.
func SnapXZ(x, z float64) Cell {
	return Snap(Vec{X: x, Z: z})
}

// Center returns the position of the cell center.
func (c Cell) Center() Vec {
	return Vec{X: float64(c.X), Z: float64(c.Z)}
}

// Aligned returns true if the cell lies on the lattice.
func (c Cell) Aligned() bool {
	return floorMod(c.X-Offset, Pitch) == 0 && floorMod(c.Z-Offset, Pitch) == 0
}

// Step returns the adjacent cell in the given direction.
func (c Cell) Step(d Direction) Cell {
	dx, dz := d.Delta()
	return Cell{X: c.X + dx*Pitch, Z: c.Z + dz*Pitch}
}

// Neighbors returns the 4-neighbourhood in search order (+X, -X, +Z, -Z).
func (c Cell) Neighbors() [4]Cell {
	var out [4]Cell
	for i, d := range SearchOrder {
		out[i] = c.Step(d)
	}
	return out
}

// DistanceTo returns the euclidean distance between two cell centers.
func (c Cell) DistanceTo(o Cell) float64 {
	return c.Center().DistanceTo(o.Center())
}

func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Z)
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Z: v.Z + o.Z}
}

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Z: v.Z - o.Z}
}

// Scale returns v*s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Z: v.Z * s}
}

// Len returns the length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Z)
}

// DistanceTo returns the euclidean distance between two positions.
func (v Vec) DistanceTo(o Vec) float64 {
	return v.Sub(o).Len()
}

func (v Vec) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", v.X, v.Z)
}

// Less orders cells by Z then X, i.e. row-major from the top of the map.
func (c Cell) Less(o Cell) bool {
	if c.Z != o.Z {
		return c.Z < o.Z
	}
	return c.X < o.X
}

// SortCells sorts cells in place using Less
func SortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
