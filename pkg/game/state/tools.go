package state

import (
	"sort"
	"strings"

	"habitat/pkg/game/entities"
)

// Tool is a placement action the player can apply to a cell
type Tool int

const (
	ToolNone Tool = iota // Select a colonist
	ToolBuild
	ToolDoor
	ToolAirlock
	ToolFloor
	ToolFood
	ToolWater
	ToolO2
	ToolSolar
	ToolStorage
	ToolBed
	ToolLounge
	ToolAsteroid
	ToolDelete
	ToolNPC
)

var toolNames = map[Tool]string{
	ToolNone:     "none",
	ToolBuild:    "build",
	ToolDoor:     "door",
	ToolAirlock:  "airlock",
	ToolFloor:    "floor",
	ToolFood:     "food",
	ToolWater:    "water",
	ToolO2:       "o2",
	ToolSolar:    "solar",
	ToolStorage:  "storage",
	ToolBed:      "bed",
	ToolLounge:   "lounge",
	ToolAsteroid: "asteroid",
	ToolDelete:   "delete",
	ToolNPC:      "npc",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseTool returns the tool with the given name, ignoring case
func ParseTool(name string) (Tool, bool) {
	for t, n := range toolNames {
		if strings.EqualFold(name, n) {
			return t, true
		}
	}
	return ToolNone, false
}

// ToolNames returns every tool name except none, sorted
func ToolNames() []string {
	out := make([]string, 0, len(toolNames))
	for t, n := range toolNames {
		if t != ToolNone {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

var structureTools = map[Tool]entities.StructureKind{
	ToolBuild:   entities.StructureWall,
	ToolDoor:    entities.StructureDoor,
	ToolAirlock: entities.StructureAirlock,
}

var objectTools = map[Tool]entities.ObjectKind{
	ToolFood:     entities.ObjectFood,
	ToolWater:    entities.ObjectWater,
	ToolO2:       entities.ObjectO2,
	ToolSolar:    entities.ObjectSolar,
	ToolStorage:  entities.ObjectStorage,
	ToolBed:      entities.ObjectBed,
	ToolLounge:   entities.ObjectLounge,
	ToolAsteroid: entities.ObjectAsteroid,
}

// Costs is the matter charged per successful placement. Missing tools are free.
type Costs map[Tool]float64

// DefaultCosts returns the stock price list
func DefaultCosts() Costs {
	return Costs{
		ToolBuild:    5,
		ToolDoor:     5,
		ToolAirlock:  15,
		ToolFloor:    2,
		ToolSolar:    25,
		ToolStorage:  10,
		ToolO2:       15,
		ToolFood:     10,
		ToolWater:    10,
		ToolAsteroid: 0,
		ToolBed:      8,
		ToolLounge:   8,
	}
}
