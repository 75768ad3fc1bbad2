package renderer

import (
	"habitat/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleDoor
	StyleAirlock
	StyleBlueprint // Unfinished structure
	StyleMarked    // Marked for deconstruction
	StyleFloor
	StyleObject
	StyleAsteroid
	StyleColonist
	StyleSelected
	StyleDead
	StyleDenied
	StyleSubtle
	StyleAirLow
	StyleAirMid
	StyleAirHigh
)

// View is the player-side state drawn alongside the colony
type View struct {
	Tool   string
	Scale  float64
	Paused bool
	Prompt bool
}

// Renderer defines the interface for colony rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame draws a complete frame: header, resources, map, roster and messages
	RenderFrame(snap state.Snapshot, view View)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete frame
func RenderFrame(snap state.Snapshot, view View) {
	if Current != nil {
		Current.RenderFrame(snap, view)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
