// Package clock turns wall time into simulation steps. Time-scale changes are
// sent over a command channel and take effect at the start of the next step.
package clock

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Presets are the selectable time scales
var Presets = []float64{0, 1, 2, 3}

// CommandKind selects what a Command does
type CommandKind int

const (
	CmdSetScale CommandKind = iota
	CmdTogglePause
)

// Command changes the clock between steps
type Command struct {
	Kind  CommandKind
	Scale float64
}

// Tickable is anything that advances by a simulated duration in seconds
type Tickable interface {
	Tick(dt float64)
}

// Params are the clock tunables
type Params struct {
	Scale   float64 `yaml:"scale"`
	MaxStep float64 `yaml:"max_step"` // seconds
	FrameMS int     `yaml:"frame_ms"`
}

// DefaultParams returns the stock clock tunables
func DefaultParams() Params {
	return Params{Scale: 1, MaxStep: 0.5, FrameMS: 100}
}

// Frame returns the real-time interval between steps
func (p Params) Frame() time.Duration {
	if p.FrameMS <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(p.FrameMS) * time.Millisecond
}

// Clock scales real time into bounded simulation steps
type Clock struct {
	scale    float64
	resume   float64
	maxStep  float64
	commands chan Command
	log      *zap.Logger

	elapsed float64
	steps   uint64
}

// New creates a clock at the given scale
func New(p Params, log *zap.Logger) *Clock {
	if log == nil {
		log = zap.NewNop()
	}
	resume := p.Scale
	if resume <= 0 {
		resume = 1
	}
	return &Clock{
		scale:    max(0, p.Scale),
		resume:   resume,
		maxStep:  p.MaxStep,
		commands: make(chan Command, 16),
		log:      log,
	}
}

// Commands returns the channel for scale changes
func (c *Clock) Commands() chan<- Command {
	return c.commands
}

// Send queues cmd for the next Advance without blocking. A full queue is
// applied first to make room, so Send must run on the goroutine that calls
// Advance.
func (c *Clock) Send(cmd Command) {
	select {
	case c.commands <- cmd:
	default:
		c.drain()
		c.commands <- cmd
	}
}

// Scale returns the current time scale
func (c *Clock) Scale() float64 { return c.scale }

// Paused returns true when the scale is 0
func (c *Clock) Paused() bool { return c.scale == 0 }

// Elapsed returns the total simulated seconds
func (c *Clock) Elapsed() float64 { return c.elapsed }

// MaxStep returns the largest step Advance will produce, in seconds
func (c *Clock) MaxStep() float64 { return c.maxStep }

// Steps returns how many steps have been produced
func (c *Clock) Steps() uint64 { return c.steps }

// Advance applies pending commands and converts real into a simulation step,
// capped at MaxStep. A paused clock returns 0.
func (c *Clock) Advance(real time.Duration) float64 {
	c.drain()
	dt := real.Seconds() * c.scale
	if c.maxStep > 0 && dt > c.maxStep {
		dt = c.maxStep
	}
	if dt < 0 {
		dt = 0
	}
	c.elapsed += dt
	c.steps++
	return dt
}

func (c *Clock) drain() {
	for {
		select {
		case cmd := <-c.commands:
			c.apply(cmd)
		default:
			return
		}
	}
}

func (c *Clock) apply(cmd Command) {
	switch cmd.Kind {
	case CmdSetScale:
		if cmd.Scale < 0 {
			c.log.Warn("ignoring negative time scale", zap.Float64("scale", cmd.Scale))
			return
		}
		if cmd.Scale > 0 {
			c.resume = cmd.Scale
		}
		c.setScale(cmd.Scale)
	case CmdTogglePause:
		if c.scale == 0 {
			c.setScale(c.resume)
		} else {
			c.setScale(0)
		}
	}
}

func (c *Clock) setScale(s float64) {
	if s == c.scale {
		return
	}
	c.log.Info("time scale changed", zap.Float64("from", c.scale), zap.Float64("to", s))
	c.scale = s
}

// Run steps target every interval until ctx is done. onFrame, if set, is
// called after each step.
func (c *Clock) Run(ctx context.Context, interval time.Duration, target Tickable, onFrame func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := c.Advance(now.Sub(last))
			last = now
			if dt > 0 {
				target.Tick(dt)
			}
			if onFrame != nil {
				onFrame()
			}
		}
	}
}
