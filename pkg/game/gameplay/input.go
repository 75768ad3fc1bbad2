package gameplay

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"habitat/pkg/engine/clock"
	engineinput "habitat/pkg/engine/input"
	"habitat/pkg/engine/world"
	"habitat/pkg/game/devtools"
	"habitat/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// It must run on the goroutine that ticks the colony.
func ProcessIntent(s *Session, intent engineinput.Intent) {
	if intent.Action == engineinput.ActionNone {
		return
	}
	s.log.Debug("intent", zap.String("action", engineinput.ActionName(intent.Action)))

	switch intent.Action {
	case engineinput.ActionQuit:
		s.Quit = true
		return

	case engineinput.ActionSelectTool:
		tool, ok := state.ParseTool(intent.Tool)
		if !ok {
			s.Colony.AddMessage(gotext.Get("Unknown tool %s.", intent.Tool))
			return
		}
		// selecting the active tool again puts it down
		if tool == s.Tool {
			tool = state.ToolNone
		}
		s.Tool = tool
		s.log.Debug("tool selected", zap.Stringer("tool", tool))
		return

	case engineinput.ActionClick:
		s.Colony.ApplyAt(world.Vec{X: intent.X, Z: intent.Z}, s.Tool)
		return

	case engineinput.ActionSpeed:
		s.Clock.Send(clock.Command{Kind: clock.CmdSetScale, Scale: intent.Value})
		return

	case engineinput.ActionPause:
		s.Clock.Send(clock.Command{Kind: clock.CmdTogglePause})
		return

	case engineinput.ActionStep:
		Step(s.Colony, intent.Value, s.Clock.MaxStep())
		return

	case engineinput.ActionDump:
		path, err := devtools.DumpToFile(s.DumpPath, s.Colony.Snapshot())
		if err != nil {
			s.log.Warn("map dump failed", zap.Error(err))
			s.Colony.AddMessage(gotext.Get("Map dump failed: %v", err))
		} else {
			s.Colony.AddMessage(gotext.Get("Map dumped to %s", path))
		}
		return

	case engineinput.ActionClear:
		s.Colony.ClearMessages()
		return

	case engineinput.ActionHelp:
		s.Colony.AddMessage(helpText())
		return
	}
}

// Step advances the colony by seconds of simulated time in frames no longer
// than frame, regardless of the clock scale. It returns the number of ticks.
func Step(c *state.Colony, seconds, frame float64) int {
	if seconds <= 0 {
		return 0
	}
	if frame <= 0 {
		frame = seconds
	}
	n := 0
	for left := seconds; left > 1e-9; left -= frame {
		c.Tick(min(frame, left))
		n++
	}
	return n
}

// helpText lists the tool keys on one line
func helpText() string {
	var parts []string
	for tool, keys := range engineinput.GetBindingsByTool() {
		parts = append(parts, fmt.Sprintf("%s=%s", strings.Join(keys, "/"), tool))
	}
	sort.Strings(parts)
	return gotext.Get("Keys: %s", strings.Join(parts, " "))
}
