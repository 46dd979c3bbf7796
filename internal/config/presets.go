package config

import "sort"

func single(name string, m, n int, eps, phaseDeg float64) ShapeConfig {
	return ShapeConfig{Name: name, Modes: []ModeConfig{{Symmetry: m, Period: n, Amplitude: eps, PhaseDeg: phaseDeg}}}
}

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"ellipse": {
		Average: true, StepDegrees: DefaultStepDegrees, Center: true,
		Shapes: []ShapeConfig{single("ellipse", 2, 1, 0.8, 0)},
	},
	"triangle": {
		Average: true, StepDegrees: DefaultStepDegrees, Center: true,
		Shapes: []ShapeConfig{single("triangle", 3, 1, 1.2, 0)},
	},
	"looped": {
		Average: true, StepDegrees: DefaultStepDegrees, Center: true,
		Shapes: []ShapeConfig{single("looped", 3, 2, 1, 0)},
	},
	"petals": {
		Average: false, StepDegrees: DefaultStepDegrees, Center: true,
		Shapes: []ShapeConfig{
			single("base", 5, 1, 1, 0),
			single("detail", 7, 2, 0.4, 30),
		},
	},
	"blend": {
		Average: true, StepDegrees: DefaultStepDegrees, Center: true,
		Shapes: []ShapeConfig{
			single("square", 4, 1, 1.5, 0),
			single("pentagon", 5, 2, 1, -45),
			single("ellipse", 2, 1, 0.5, 90),
		},
	},
}

// GetPreset returns a deep copy of the named preset, or nil. Changing the
// result never affects Presets.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Shapes = make([]ShapeConfig, len(cfg.Shapes))
	for i, sc := range cfg.Shapes {
		sc.Modes = append([]ModeConfig(nil), sc.Modes...)
		c.Shapes[i] = sc
	}
	if c.Render.Width == 0 {
		c.Render = DefaultConfig().Render
	}
	return &c
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
