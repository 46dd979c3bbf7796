package analysis

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/shapemix/internal/shape"
)

// DefaultSamples is the profile length used by the spectrum command.
const DefaultSamples = 1024

// Peak is one spectral line of a log-radius profile.
type Peak struct {
	Bin       int     `json:"bin"`
	Ratio     float64 `json:"ratio"`
	Amplitude float64 `json:"amplitude"`
}

// PowerSpectrum returns |X_k| for k in [0, n/2).
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// Profile samples the log-radius at n evenly spaced angles covering one
// fundamental period, endpoint excluded.
func Profile(s *shape.Shape, n int) []float64 {
	period := s.FundamentalPeriod()
	out := make([]float64, n)
	for i := range out {
		out[i] = s.LogRadiusAt(period * float64(i) / float64(n))
	}
	return out
}

// Peaks returns the k strongest non-DC spectral lines of s, strongest first.
// Amplitude is rescaled so a pure mode reports its own amplitude.
func Peaks(s *shape.Shape, n, k int) []Peak {
	if n < 4 {
		n = DefaultSamples
	}
	ps := PowerSpectrum(Profile(s, n))
	turns := s.FundamentalPeriod() / (2 * math.Pi)

	peaks := make([]Peak, 0, len(ps))
	for bin := 1; bin < len(ps); bin++ {
		peaks = append(peaks, Peak{
			Bin:       bin,
			Ratio:     float64(bin) / turns,
			Amplitude: 2 * ps[bin] / float64(n),
		})
	}
	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Amplitude > peaks[j].Amplitude
	})
	if k >= 0 && k < len(peaks) {
		peaks = peaks[:k]
	}
	return peaks
}
