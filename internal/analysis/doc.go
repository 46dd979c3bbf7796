// Package analysis inspects sampled log-radius profiles.
//
//   - [PowerSpectrum]: FFT magnitudes of a real sequence
//   - [Profile]: one fundamental period sampled uniformly
//   - [Peaks]: strongest spectral bins converted back to frequency ratios
//
// A mode with frequency ratio ν sampled over a fundamental period of K turns
// completes ν·K cycles, so it appears at FFT bin ν·K:
//
//	peaks := analysis.Peaks(s, 512, 2)
//	for _, p := range peaks {
//	    fmt.Println(p.Ratio, p.Amplitude)
//	}
package analysis
