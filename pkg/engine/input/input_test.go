package input

import (
	"context"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want Intent
	}{
		{"", Intent{Action: ActionNone}},
		{"b", Intent{Action: ActionSelectTool, Tool: "build"}},
		{"  J ", Intent{Action: ActionSelectTool, Tool: "airlock"}},
		{"tool lounge", Intent{Action: ActionSelectTool, Tool: "lounge"}},
		{"tool k", Intent{Action: ActionSelectTool, Tool: "storage"}},
		{"click 15 -25.5", Intent{Action: ActionClick, X: 15, Z: -25.5}},
		{"speed 2", Intent{Action: ActionSpeed, Value: 2}},
		{"step 10", Intent{Action: ActionStep, Value: 10}},
		{"p", Intent{Action: ActionPause}},
		{"pause", Intent{Action: ActionPause}},
		{"q", Intent{Action: ActionQuit}},
		{"dump", Intent{Action: ActionDump}},
		{"clear", Intent{Action: ActionClear}},
	}
	for _, tt := range tests {
		got, err := ParseLine(tt.line)
		if err != nil {
			t.Errorf("ParseLine(%q) error = %v", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestParseLine_Errors(t *testing.T) {
	for _, line := range []string{"fly", "click 1", "click a b", "speed", "speed -1", "step 0", "tool"} {
		if _, err := ParseLine(line); err == nil {
			t.Errorf("ParseLine(%q) error = nil, want an error", line)
		}
	}
}

func TestActionName(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionClick, "Click"},
		{ActionClear, "Clear Messages"},
		{ActionQuit, "Quit"},
	}
	for _, tt := range tests {
		if got := ActionName(tt.a); got != tt.want {
			t.Errorf("ActionName(%d) = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestBindings_EveryToolHasOneKey(t *testing.T) {
	got := GetBindingsByTool()
	if len(got) != 14 {
		t.Errorf("GetBindingsByTool() has %d tools, want 14", len(got))
	}
	for tool, keys := range got {
		if len(keys) != 1 {
			t.Errorf("tool %s bound to %v, want one key", tool, keys)
		}
	}
}

func TestSetSingleBinding(t *testing.T) {
	if SetSingleBinding("build", "q") {
		t.Error("SetSingleBinding(build, q) = true, want false for a reserved key")
	}
	if !SetSingleBinding("build", "w") {
		t.Fatal("SetSingleBinding(build, w) = false")
	}
	defer SetSingleBinding("build", "b")

	if got, _ := ParseLine("w"); got.Tool != "build" {
		t.Errorf("ParseLine(w) = %+v, want build", got)
	}
	if _, err := ParseLine("b"); err == nil {
		t.Error("old key b still bound")
	}
}

func TestReadLines(t *testing.T) {
	ch := ReadLines(context.Background(), strings.NewReader("b\nclick 5 5\n"), DeviceScript)
	var codes []string
	for raw := range ch {
		codes = append(codes, NewDebouncedInput(raw).Code)
	}
	if len(codes) != 2 || codes[0] != "b" || codes[1] != "click 5 5" {
		t.Errorf("ReadLines() = %v, want [b, click 5 5]", codes)
	}
}
