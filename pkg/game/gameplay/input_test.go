package gameplay

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"habitat/pkg/engine/clock"
	engineinput "habitat/pkg/engine/input"
	"habitat/pkg/engine/world"
	"habitat/pkg/game/state"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	c := state.New(state.DefaultParams(), rand.New(rand.NewSource(5)), zap.NewNop())
	return NewSession(c, clock.New(clock.DefaultParams(), zap.NewNop()), zap.NewNop())
}

func TestProcessIntent_ToolToggles(t *testing.T) {
	s := newSession(t)

	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionSelectTool, Tool: "build"})
	if s.Tool != state.ToolBuild {
		t.Fatalf("Tool = %s, want build", s.Tool)
	}
	if got := s.View(false).Tool; got != "build" {
		t.Errorf("View().Tool = %q, want build", got)
	}

	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionSelectTool, Tool: "build"})
	if s.Tool != state.ToolNone {
		t.Errorf("Tool after reselect = %s, want none", s.Tool)
	}
	if got := s.View(false).Tool; got != "" {
		t.Errorf("View().Tool with no tool = %q, want empty", got)
	}
}

func TestProcessIntent_ClickPlaces(t *testing.T) {
	s := newSession(t)
	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionSelectTool, Tool: "floor"})
	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionClick, X: 14, Z: 7})

	if !s.Colony.Grid.HasFloor(world.Cell{X: 15, Z: 5}) {
		t.Error("click at (14,7) with floor tool did not floor cell (15,5)")
	}
}

func TestProcessIntent_PauseAppliesOnNextAdvance(t *testing.T) {
	s := newSession(t)
	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionPause})
	if s.Clock.Paused() {
		t.Fatal("clock paused before the next Advance")
	}
	if dt := s.Clock.Advance(100 * time.Millisecond); dt != 0 {
		t.Errorf("Advance() after pause = %v, want 0", dt)
	}
	if !s.View(false).Paused {
		t.Error("View().Paused = false after pause")
	}
}

func TestProcessIntent_SpeedBurstInOneFrame(t *testing.T) {
	s := newSession(t)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 1; i <= 20; i++ {
			ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionSpeed, Value: float64(i)})
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("20 speed intents without an Advance did not return")
	}
	s.Clock.Advance(0)
	if got := s.Clock.Scale(); got != 20 {
		t.Errorf("Scale() after burst = %v, want 20", got)
	}
}

func TestProcessIntent_QuitAndHelp(t *testing.T) {
	s := newSession(t)
	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionHelp})
	if n := len(s.Colony.Messages); n != 1 || !strings.Contains(s.Colony.Messages[0], "b=build") {
		t.Errorf("help messages = %v, want one line naming b=build", s.Colony.Messages)
	}
	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionQuit})
	if !s.Quit {
		t.Error("Quit = false after quit intent")
	}
}

func TestProcessIntent_Clear(t *testing.T) {
	s := newSession(t)
	s.Colony.AddMessage("one")
	s.Colony.AddMessage("two")
	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionClear})
	if n := len(s.Colony.Messages); n != 0 {
		t.Errorf("len(Messages) after clear = %d, want 0", n)
	}
}

func TestProcessIntent_Dump(t *testing.T) {
	s := newSession(t)
	s.DumpPath = filepath.Join(t.TempDir(), "dump.txt")
	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionDump})
	if len(s.Colony.Messages) != 1 || !strings.Contains(s.Colony.Messages[0], s.DumpPath) {
		t.Errorf("dump messages = %v, want the dump path", s.Colony.Messages)
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		seconds, frame float64
		ticks          int
	}{
		{1, 0.5, 2},
		{1.2, 0.5, 3},
		{0, 0.5, 0},
		{2, 0, 1},
	}
	for _, tt := range tests {
		s := newSession(t)
		if got := Step(s.Colony, tt.seconds, tt.frame); got != tt.ticks {
			t.Errorf("Step(%v, %v) = %d ticks, want %d", tt.seconds, tt.frame, got, tt.ticks)
		}
		if got := s.Colony.Elapsed; got < tt.seconds-1e-9 || got > tt.seconds+1e-9 {
			t.Errorf("Step(%v, %v) elapsed = %v", tt.seconds, tt.frame, got)
		}
	}
}
