// Package gameplay applies player intents to a running colony.
package gameplay

import (
	"go.uber.org/zap"

	"habitat/pkg/engine/clock"
	"habitat/pkg/game/renderer"
	"habitat/pkg/game/state"
)

// Session is the player's side of a running colony: the selected tool and
// the clock the colony runs on.
type Session struct {
	Colony   *state.Colony
	Clock    *clock.Clock
	Tool     state.Tool
	DumpPath string
	Quit     bool

	log *zap.Logger
}

// NewSession binds a colony to its clock
func NewSession(c *state.Colony, clk *clock.Clock, log *zap.Logger) *Session {
	return &Session{Colony: c, Clock: clk, log: log}
}

// View returns the player-side state for the renderer
func (s *Session) View(prompt bool) renderer.View {
	tool := ""
	if s.Tool != state.ToolNone {
		tool = s.Tool.String()
	}
	return renderer.View{
		Tool:   tool,
		Scale:  s.Clock.Scale(),
		Paused: s.Clock.Paused(),
		Prompt: prompt,
	}
}

// Tick advances the colony. It makes the session usable as a clock target.
func (s *Session) Tick(dt float64) {
	s.Colony.Tick(dt)
}
