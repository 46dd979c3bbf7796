package shape

import (
	"math"
	"strings"
)

// maxPeriodMultiplier caps the fundamental period search at 50 turns.
const maxPeriodMultiplier = 50

// Shape is an immutable, ordered collection of modes.
type Shape struct {
	modes  []Mode
	nu     []float64
	phase  []float64
	period float64
}

// Option configures a single-mode shape built by New.
type Option func(*Mode)

// WithAmplitude sets the mode amplitude (default 1).
func WithAmplitude(eps float64) Option {
	return func(md *Mode) { md.Amplitude = eps }
}

// WithPhaseOffset sets the phase offset in radians (default 0).
func WithPhaseOffset(p float64) Option {
	return func(md *Mode) { md.PhaseOffset = p }
}

// New returns a single-mode shape with symmetry m and period n.
func New(m, n int, opts ...Option) (*Shape, error) {
	md := Mode{Symmetry: m, Period: n, Amplitude: 1}
	for _, opt := range opts {
		opt(&md)
	}
	return FromModes(md)
}

// FromArrays builds a shape from parallel parameter arrays. All four arrays
// must be non-empty and of equal length.
func FromArrays(m, n []int, eps, p []float64) (*Shape, error) {
	if len(n) == 0 {
		return nil, invalid("period", -1, "no modes given")
	}
	if len(m) != len(n) || len(eps) != len(n) || len(p) != len(n) {
		return nil, invalid("arrays", -1, "length mismatch (symmetry=%d period=%d amplitude=%d phase=%d)",
			len(m), len(n), len(eps), len(p))
	}
	modes := make([]Mode, len(n))
	for i := range n {
		modes[i] = Mode{Symmetry: m[i], Period: n[i], Amplitude: eps[i], PhaseOffset: p[i]}
	}
	return fromOwnedModes(modes)
}

// FromModes builds a shape from mode values. The slice is copied.
func FromModes(modes ...Mode) (*Shape, error) {
	if len(modes) == 0 {
		return nil, invalid("modes", -1, "no modes given")
	}
	owned := make([]Mode, len(modes))
	copy(owned, modes)
	return fromOwnedModes(owned)
}

func fromOwnedModes(modes []Mode) (*Shape, error) {
	for i, md := range modes {
		if md.Period < 1 {
			return nil, invalid("period", i, "must be >= 1, got %d", md.Period)
		}
	}
	return build(modes), nil
}

// build computes derived values for validated modes. It takes ownership of
// the slice.
func build(modes []Mode) *Shape {
	s := &Shape{
		modes: modes,
		nu:    make([]float64, len(modes)),
		phase: make([]float64, len(modes)),
	}
	for i, md := range modes {
		s.nu[i] = md.FrequencyRatio()
		s.phase[i] = md.EffectivePhase()
	}
	s.period = 2 * math.Pi * float64(periodMultiplier(modes))
	return s
}

// periodMultiplier returns the first k in [max(n), min(prod(n), 50)] that
// every period divides, or min(prod(n), 50) if there is none. This is a
// bounded search, not a true least common multiple.
func periodMultiplier(modes []Mode) int {
	upper := 1
	lower := 0
	for _, md := range modes {
		switch {
		case upper >= maxPeriodMultiplier:
		case md.Period >= maxPeriodMultiplier:
			upper = maxPeriodMultiplier
		default:
			upper *= md.Period
		}
		lower = max(lower, md.Period)
	}
	upper = min(upper, maxPeriodMultiplier)

	for k := lower; k <= upper; k++ {
		common := true
		for _, md := range modes {
			if k%md.Period != 0 {
				common = false
				break
			}
		}
		if common {
			return k
		}
	}
	return upper
}

// Len returns the number of modes.
func (s *Shape) Len() int {
	return len(s.modes)
}

// Modes returns a copy of the shape's modes in order.
func (s *Shape) Modes() []Mode {
	out := make([]Mode, len(s.modes))
	copy(out, s.modes)
	return out
}

// FrequencyRatios returns ν per mode.
func (s *Shape) FrequencyRatios() []float64 {
	out := make([]float64, len(s.nu))
	copy(out, s.nu)
	return out
}

// EffectivePhases returns the effective phase per mode, in radians.
func (s *Shape) EffectivePhases() []float64 {
	out := make([]float64, len(s.phase))
	copy(out, s.phase)
	return out
}

// FundamentalPeriod returns the angular span, a multiple of 2π, over which
// the profile is sampled.
func (s *Shape) FundamentalPeriod() float64 {
	return s.period
}

// PredictedExponents returns β for each mode.
func (s *Shape) PredictedExponents() []float64 {
	out := make([]float64, len(s.nu))
	for i, nu := range s.nu {
		out[i] = predictedExponent(nu)
	}
	return out
}

// Degenerate returns the indices of modes with non-positive symmetry. Such
// modes are valid but have no native phase.
func (s *Shape) Degenerate() []int {
	var idx []int
	for i, md := range s.modes {
		if md.Symmetry <= 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

// Coprime reports AreCoprime(n, m) for each mode.
func (s *Shape) Coprime() []bool {
	out := make([]bool, len(s.modes))
	for i, md := range s.modes {
		out[i] = AreCoprime(md.Period, md.Symmetry)
	}
	return out
}

func (s *Shape) String() string {
	parts := make([]string, len(s.modes))
	for i, md := range s.modes {
		parts[i] = md.String()
	}
	return "Shape{" + strings.Join(parts, " | ") + "}"
}
