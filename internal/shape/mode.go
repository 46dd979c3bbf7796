package shape

import (
	"fmt"
	"math"
)

// Mode is one additive term of a shape's log-radius profile.
type Mode struct {
	// Symmetry is the number of curvature extrema (m).
	Symmetry int `json:"m" yaml:"symmetry"`
	// Period is the denominator controlling periodicity (n).
	Period int `json:"n" yaml:"period"`
	// Amplitude is the log-radius oscillation amplitude (eps).
	Amplitude float64 `json:"eps" yaml:"amplitude"`
	// PhaseOffset shifts the mode relative to its native phase, in radians.
	PhaseOffset float64 `json:"p" yaml:"phase_offset"`
}

// FrequencyRatio returns ν = m/n.
func (md Mode) FrequencyRatio() float64 {
	return float64(md.Symmetry) / float64(md.Period)
}

// NativePhase returns (π/2)/ν − π/m, or 0 when the symmetry is not positive.
func (md Mode) NativePhase() float64 {
	if md.Symmetry <= 0 {
		return 0
	}
	return 0.5*math.Pi/md.FrequencyRatio() - (1/float64(md.Symmetry))*math.Pi
}

// EffectivePhase returns the native phase minus the user offset.
func (md Mode) EffectivePhase() float64 {
	return md.NativePhase() - md.PhaseOffset
}

// PredictedExponent returns β = (2/3)(1 + ν²/2) / (1 + ν² + ν⁴/15).
func (md Mode) PredictedExponent() float64 {
	return predictedExponent(md.FrequencyRatio())
}

func (md Mode) String() string {
	return fmt.Sprintf("m=%d n=%d eps=%g p=%g", md.Symmetry, md.Period, md.Amplitude, md.PhaseOffset)
}

func predictedExponent(nu float64) float64 {
	nu2 := nu * nu
	return (2.0 / 3.0) * (1 + 0.5*nu2) / (1 + nu2 + nu2*nu2/15)
}
