package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/shapemix/internal/shape"
)

const (
	DefaultStepDegrees = shape.DefaultStepDegrees
	DefaultFill        = 0.75
	DefaultWidth       = 40
	DefaultHeight      = 20
)

// ErrNoShapes indicates a mix file without any shape.
var ErrNoShapes = errors.New("config: no shapes defined")

// Config is a mix file: a list of shapes and how to combine and draw them.
type Config struct {
	Average     bool          `yaml:"average"`
	StepDegrees float64       `yaml:"step_degrees"`
	Center      bool          `yaml:"center"`
	Shapes      []ShapeConfig `yaml:"shapes"`
	Render      RenderConfig  `yaml:"render"`
}

// ShapeConfig is one shape made of one or more modes.
type ShapeConfig struct {
	Name  string       `yaml:"name,omitempty"`
	Modes []ModeConfig `yaml:"modes"`
}

// ModeConfig holds a mode with its phase in degrees.
type ModeConfig struct {
	Symmetry  int     `yaml:"symmetry"`
	Period    int     `yaml:"period"`
	Amplitude float64 `yaml:"amplitude"`
	PhaseDeg  float64 `yaml:"phase_deg"`
}

// RenderConfig sizes the terminal canvas.
type RenderConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Fill   float64 `yaml:"fill"`
	Theme  string  `yaml:"theme"`
}

// DefaultConfig returns the two-shape mix the interactive mixer starts with.
func DefaultConfig() *Config {
	return &Config{
		Average:     true,
		StepDegrees: DefaultStepDegrees,
		Center:      true,
		Shapes: []ShapeConfig{
			{Name: "shape 1", Modes: []ModeConfig{{Symmetry: 5, Period: 1, Amplitude: 2, PhaseDeg: 0}}},
			{Name: "shape 2", Modes: []ModeConfig{{Symmetry: 5, Period: 6, Amplitude: 1.1, PhaseDeg: 0}}},
		},
		Render: RenderConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Fill:   DefaultFill,
			Theme:  "cyberpunk",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Shapes = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that every shape can be built.
func (c *Config) Validate() error {
	if len(c.Shapes) == 0 {
		return ErrNoShapes
	}
	if c.StepDegrees != 0 && !shape.ValidStep(c.StepDegrees) {
		return fmt.Errorf("config: step_degrees %v below %v or not finite: %w",
			c.StepDegrees, shape.MinStepDegrees, shape.ErrInvalidShapeParameters)
	}
	_, err := c.BuildShapes()
	return err
}

// BuildShapes converts each ShapeConfig into a shape.
func (c *Config) BuildShapes() ([]*shape.Shape, error) {
	if len(c.Shapes) == 0 {
		return nil, ErrNoShapes
	}
	out := make([]*shape.Shape, len(c.Shapes))
	for i, sc := range c.Shapes {
		s, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// Mix builds all shapes and adds them.
func (c *Config) Mix() (*shape.Shape, error) {
	shapes, err := c.BuildShapes()
	if err != nil {
		return nil, err
	}
	return shape.Add(shapes, c.Average)
}

// Step returns the sampling step, falling back to the default.
func (c *Config) Step() float64 {
	if !shape.ValidStep(c.StepDegrees) {
		return DefaultStepDegrees
	}
	return c.StepDegrees
}

// Build converts the shape config into a shape.
func (sc ShapeConfig) Build() (*shape.Shape, error) {
	modes := make([]shape.Mode, len(sc.Modes))
	for i, mc := range sc.Modes {
		modes[i] = mc.Mode()
	}
	return shape.FromModes(modes...)
}

// Mode converts the phase from degrees to radians.
func (mc ModeConfig) Mode() shape.Mode {
	return shape.Mode{
		Symmetry:    mc.Symmetry,
		Period:      mc.Period,
		Amplitude:   mc.Amplitude,
		PhaseOffset: mc.PhaseDeg / 180 * math.Pi,
	}
}

// FromShape converts a shape back to its config form.
func FromShape(name string, s *shape.Shape) ShapeConfig {
	modes := s.Modes()
	sc := ShapeConfig{Name: name, Modes: make([]ModeConfig, len(modes))}
	for i, md := range modes {
		sc.Modes[i] = ModeConfig{
			Symmetry:  md.Symmetry,
			Period:    md.Period,
			Amplitude: md.Amplitude,
			PhaseDeg:  md.PhaseOffset * 180 / math.Pi,
		}
	}
	return sc
}
