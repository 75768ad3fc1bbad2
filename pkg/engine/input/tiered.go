package input

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
	DeviceScript
)

// Action represents a high-level intent.
type Action int

const (
	ActionNone Action = iota

	ActionSelectTool // Choose (or toggle off) a placement tool
	ActionClick      // Apply the current tool at a position
	ActionSpeed      // Set the time scale
	ActionPause      // Toggle pause
	ActionStep       // Advance a fixed number of seconds
	ActionDump       // Write a map dump
	ActionClear      // Clear the message log
	ActionHelp
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
	Tool   string  // ActionSelectTool
	X, Z   float64 // ActionClick
	Value  float64 // ActionSpeed scale, ActionStep seconds
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a whole command line or a single key.
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after trimming and case folding.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(strings.TrimSpace(raw.Code)),
	}
}

// bindings maps single keys to tool names (3rd-layer bindings).
var bindings = map[string]string{
	"b": "build",
	"v": "delete",
	"n": "npc",
	"1": "water",
	"2": "food",
	"3": "o2",
	"x": "door",
	"g": "floor",
	"j": "airlock",
	"h": "bed",
	"m": "asteroid",
	"s": "solar",
	"k": "storage",
	"l": "lounge",
}

// keyActions are single keys that map straight to an action
var keyActions = map[string]Action{
	"p":      ActionPause,
	"space":  ActionPause,
	"q":      ActionQuit,
	"quit":   ActionQuit,
	"escape": ActionQuit,
	"?":      ActionHelp,
	"help":   ActionHelp,
	"dump":   ActionDump,
	"clear":  ActionClear,
	"pause":  ActionPause,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) (Intent, error) {
	return ParseLine(ev.Code)
}

// ParseLine parses a key or a command line such as "tool build",
// "click 15 25", "speed 2" or "step 10".
func ParseLine(line string) (Intent, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Intent{Action: ActionNone}, nil
	}
	cmd, args := fields[0], fields[1:]

	if len(args) == 0 {
		if tool, ok := bindings[cmd]; ok {
			return Intent{Action: ActionSelectTool, Tool: tool}, nil
		}
		if act, ok := keyActions[cmd]; ok {
			return Intent{Action: act}, nil
		}
	}

	switch cmd {
	case "tool":
		if len(args) != 1 {
			return Intent{}, fmt.Errorf("usage: tool <name|key>")
		}
		name := args[0]
		if tool, ok := bindings[name]; ok {
			name = tool
		}
		return Intent{Action: ActionSelectTool, Tool: name}, nil
	case "click", "c":
		if len(args) != 2 {
			return Intent{}, fmt.Errorf("usage: click <x> <z>")
		}
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return Intent{}, fmt.Errorf("click x: %w", err)
		}
		z, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return Intent{}, fmt.Errorf("click z: %w", err)
		}
		return Intent{Action: ActionClick, X: x, Z: z}, nil
	case "speed":
		v, err := oneNumber(cmd, args)
		if err != nil {
			return Intent{}, err
		}
		if v < 0 {
			return Intent{}, fmt.Errorf("speed must not be negative")
		}
		return Intent{Action: ActionSpeed, Value: v}, nil
	case "step":
		v, err := oneNumber(cmd, args)
		if err != nil {
			return Intent{}, err
		}
		if v <= 0 {
			return Intent{}, fmt.Errorf("step must be positive")
		}
		return Intent{Action: ActionStep, Value: v}, nil
	}
	return Intent{}, fmt.Errorf("unknown command %q", cmd)
}

func oneNumber(cmd string, args []string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s <number>", cmd)
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", cmd, err)
	}
	return v, nil
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionSelectTool:
		return "Select Tool"
	case ActionClick:
		return "Click"
	case ActionSpeed:
		return "Speed"
	case ActionPause:
		return "Pause"
	case ActionStep:
		return "Step"
	case ActionDump:
		return "Dump Map"
	case ActionClear:
		return "Clear Messages"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByTool returns the current key for each tool, keys sorted.
func GetBindingsByTool() map[string][]string {
	result := make(map[string][]string)
	for key, tool := range bindings {
		result[tool] = append(result[tool], key)
	}
	for tool, keys := range result {
		sort.Strings(keys)
		result[tool] = keys
	}
	return result
}

// SetSingleBinding replaces all keys for the given tool with a single key.
// Keys bound to actions cannot be taken.
func SetSingleBinding(tool, key string) bool {
	if _, reserved := keyActions[key]; reserved {
		return false
	}
	for k, t := range bindings {
		if t == tool {
			delete(bindings, k)
		}
	}
	bindings[key] = tool
	return true
}
