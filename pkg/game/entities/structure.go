package entities

import "habitat/pkg/engine/world"

// StructureKind is the kind of a cell-filling structure.
type StructureKind int

const (
	StructureWall    StructureKind = iota // Impassable, seals atmosphere once built
	StructureDoor                         // Passable, never seals
	StructureAirlock                      // Passable once built, seals atmosphere
)

// StructureInfo contains the fixed properties of each structure kind
type StructureInfo struct {
	Name string
	Icon string

	// ImpassableBuilt is true if the finished structure blocks movement.
	// Unfinished structures always block.
	ImpassableBuilt bool

	// Seal is true if the finished structure stops atmosphere flood fill.
	Seal bool
}

// StructureTypes maps structure kinds to their properties
var StructureTypes = map[StructureKind]StructureInfo{
	StructureWall: {
		Name:            "Wall",
		Icon:            "█",
		ImpassableBuilt: true,
		Seal:            true,
	},
	StructureDoor: {
		Name: "Door",
		Icon: "□",
	},
	StructureAirlock: {
		Name: "Airlock",
		Icon: "╳",
		Seal: true,
	},
}

func (k StructureKind) String() string {
	if info, ok := StructureTypes[k]; ok {
		return info.Name
	}
	return "Unknown"
}

// Structure is a wall, door or airlock occupying exactly one cell
type Structure struct {
	Kind     StructureKind
	Cell     world.Cell
	Complete bool
}

// NewStructure creates an unfinished structure at the given cell
func NewStructure(kind StructureKind, cell world.Cell) *Structure {
	return &Structure{Kind: kind, Cell: cell}
}

// Blocks returns true if agents cannot walk through the structure
func (s *Structure) Blocks() bool {
	if s == nil {
		return false
	}
	return !s.Complete || StructureTypes[s.Kind].ImpassableBuilt
}

// Seals returns true if the structure stops atmosphere flow across its cell
func (s *Structure) Seals() bool {
	if s == nil {
		return false
	}
	return s.Complete && StructureTypes[s.Kind].Seal
}
