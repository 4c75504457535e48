package app

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"lifecast/internal/core"
	"lifecast/internal/publish"
	pcore "lifecast/pkg/core"
	"lifecast/pkg/life"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Supported front ends.
const (
	UITerm = "term"
	UIText = "text"
	UIGUI  = "gui"
)

// HUDWidth is the width in pixels of the status panel right of the grid.
const HUDWidth = 180

// Config represents the command-line parameters for the application.
type Config struct {
	Width       int
	Height      int
	Probability float64
	Seed        int64
	Pattern     string
	Mode        string
	UI          string
	PollTPS     int
	Interval    time.Duration
	Generations uint64
	Frames      int
	Scale       int
	Verbose     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:       200,
		Height:      200,
		Probability: 0.333,
		Pattern:     "random",
		Mode:        publish.Rendezvous.String(),
		UI:          UITerm,
		PollTPS:     25,
		Scale:       4,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.Probability, "p", c.Probability, "alive probability for the random pattern")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern (0 picks one from the clock)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: "+strings.Join(life.PatternNames(), ", "))
	fs.StringVar(&c.Mode, "mode", c.Mode, "handoff mode: rendezvous or latest-only")
	fs.StringVar(&c.UI, "ui", c.UI, "front end: term, text or gui")
	fs.IntVar(&c.PollTPS, "poll", c.PollTPS, "how often the display polls for a new generation, per second")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "minimum time between generations (0 runs free)")
	fs.Uint64Var(&c.Generations, "generations", c.Generations, "stop after this many generations (0 runs forever)")
	fs.IntVar(&c.Frames, "frames", c.Frames, "text front end: stop after printing this many frames (0 runs forever)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "gui pixel scale multiplier")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log publisher lifecycle to stderr")
}

// FromMap populates a Config from a string map using the flag names as keys.
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) *Config {
	c := NewConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["p"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Probability = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["mode"]; ok {
		c.Mode = v
	}
	if v, ok := cfg["ui"]; ok {
		c.UI = v
	}
	if v, ok := cfg["poll"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.PollTPS = parsed
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Interval = parsed
		}
	}
	if v, ok := cfg["generations"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Generations = parsed
		}
	}
	if v, ok := cfg["frames"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Frames = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["v"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Verbose = parsed
		}
	}
	return c
}

// Validate reports the first problem with the configuration.
func (c *Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: negative grid size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case math.IsNaN(c.Probability) || c.Probability < 0 || c.Probability > 1:
		return fmt.Errorf("%w: alive probability %v outside [0, 1]", ErrInvalidConfig, c.Probability)
	case c.PollTPS <= 0:
		return fmt.Errorf("%w: poll rate must be positive, got %d", ErrInvalidConfig, c.PollTPS)
	case c.Interval < 0:
		return fmt.Errorf("%w: negative interval %v", ErrInvalidConfig, c.Interval)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %d", ErrInvalidConfig, c.Scale)
	}
	if _, ok := life.Patterns()[c.Pattern]; !ok {
		return fmt.Errorf("%w: unknown pattern %q", ErrInvalidConfig, c.Pattern)
	}
	if _, err := publish.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.UI {
	case UITerm, UIText, UIGUI:
	default:
		return fmt.Errorf("%w: unknown ui %q", ErrInvalidConfig, c.UI)
	}
	return nil
}

// HandoffMode returns the parsed handoff mode.
func (c *Config) HandoffMode() (publish.Mode, error) {
	return publish.ParseMode(c.Mode)
}

// NewEngine seeds an engine with the configured pattern.
func (c *Config) NewEngine() (*life.Engine, error) {
	pattern, ok := life.Patterns()[c.Pattern]
	if !ok {
		return nil, fmt.Errorf("%w: unknown pattern %q", ErrInvalidConfig, c.Pattern)
	}
	g := pcore.NewGrid(c.Width, c.Height)
	pattern(g, pcore.NewRNG(c.Seed).Source(), c.Probability)
	return life.NewFromGrid(g), nil
}

// Parameters describes the run and the snapshot s for status displays.
func (c *Config) Parameters(s publish.Snapshot) core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Generation",
			Params: []core.Parameter{
				core.Uint64Param("gen", "Gen", s.Generation),
				core.IntParam("alive", "Alive", len(s.Alive)),
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				core.StringParam("size", "Size", fmt.Sprintf("%dx%d", c.Width, c.Height)),
				core.StringParam("pattern", "Pattern", c.Pattern),
				core.StringParam("mode", "Mode", c.Mode),
			},
		},
	}}
}
