// Package config loads the colony tuning file. Every value has a default, and
// a file only needs to name what it changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"habitat/pkg/engine/clock"
	"habitat/pkg/game/atmosphere"
	"habitat/pkg/game/behavior"
	"habitat/pkg/game/colonist"
	"habitat/pkg/game/grid"
	"habitat/pkg/game/pathing"
	"habitat/pkg/game/resources"
	"habitat/pkg/game/setup"
	"habitat/pkg/game/state"
)

// Tuning is the full set of tunables
type Tuning struct {
	Economy    resources.Params   `yaml:"economy"`
	Costs      map[string]float64 `yaml:"costs"`
	SolarRate  float64            `yaml:"solar_rate"`
	Grid       grid.Params        `yaml:"grid"`
	Atmosphere atmosphere.Params  `yaml:"atmosphere"`
	Pathing    pathing.Params     `yaml:"pathing"`
	Needs      colonist.Params    `yaml:"needs"`
	Behavior   behavior.Params    `yaml:"behavior"`
	Clock      clock.Params       `yaml:"clock"`
	Setup      setup.Params       `yaml:"setup"`
}

// Default returns the stock tuning
func Default() Tuning {
	colony := state.DefaultParams()
	costs := make(map[string]float64, len(colony.Costs))
	for tool, cost := range colony.Costs {
		costs[tool.String()] = cost
	}
	return Tuning{
		Economy:    colony.Economy,
		Costs:      costs,
		SolarRate:  colony.SolarRate,
		Grid:       colony.Grid,
		Atmosphere: colony.Atmosphere,
		Pathing:    colony.Pathing,
		Needs:      colony.Needs,
		Behavior:   colony.Behavior,
		Clock:      clock.DefaultParams(),
		Setup:      setup.DefaultParams(),
	}
}

// Load reads a YAML tuning file over the defaults
func Load(path string) (Tuning, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("reading tuning: %w", err)
	}
	t, err := Parse(raw)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(raw []byte) (Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Tuning{}, fmt.Errorf("decoding tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate reports values the simulation cannot run with
func (t Tuning) Validate() error {
	var errs []error
	if _, err := t.costs(); err != nil {
		errs = append(errs, err)
	}
	if t.Atmosphere.Interval <= 0 {
		errs = append(errs, errors.New("atmosphere.interval must be positive"))
	}
	if t.Atmosphere.MaxRoomCells <= 0 {
		errs = append(errs, errors.New("atmosphere.max_room_cells must be positive"))
	}
	if t.Pathing.MaxExpansions <= 0 {
		errs = append(errs, errors.New("pathing.max_expansions must be positive"))
	}
	if t.Clock.MaxStep <= 0 {
		errs = append(errs, errors.New("clock.max_step must be positive"))
	}
	if t.Clock.Scale < 0 {
		errs = append(errs, errors.New("clock.scale must not be negative"))
	}
	if t.Behavior.BaseSpeed <= 0 {
		errs = append(errs, errors.New("behavior.base_speed must be positive"))
	}
	if err := t.Setup.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (t Tuning) costs() (state.Costs, error) {
	out := make(state.Costs, len(t.Costs))
	var unknown []string
	for name, cost := range t.Costs {
		tool, ok := state.ParseTool(name)
		if !ok || tool == state.ToolNone {
			unknown = append(unknown, name)
			continue
		}
		if cost < 0 {
			return nil, fmt.Errorf("costs.%s must not be negative", name)
		}
		out[tool] = cost
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown tools in costs: %v", unknown)
	}
	return out, nil
}

// Colony returns the colony parameters
func (t Tuning) Colony() (state.Params, error) {
	costs, err := t.costs()
	if err != nil {
		return state.Params{}, err
	}
	return state.Params{
		Grid:       t.Grid,
		Economy:    t.Economy,
		Atmosphere: t.Atmosphere,
		Pathing:    t.Pathing,
		Needs:      t.Needs,
		Behavior:   t.Behavior,
		Costs:      costs,
		SolarRate:  t.SolarRate,
	}, nil
}
