// Package shape implements the log-radius profile representation of closed
// convex curves.
//
// A curve is described by one or more additive modes. Each mode contributes a
// sinusoid to the log of the local radius of curvature:
//
//	log R(θ) = Σ eps_j · sin(ν_j · (θ − φ_j))
//
// where ν_j = m_j / n_j is the frequency ratio of symmetry m over period n and
// φ_j is the mode's effective phase. Because shapes add in log-radius space,
// mixing two shapes is the concatenation of their mode lists:
//
//   - [New] and [FromArrays]: construct a [Shape]
//   - [Shape.Combine] and [Shape.ScaleAmplitude]: shape algebra
//   - [Add]: weighted sum (or average) of many shapes
//   - [Shape.LogRadius]: sampled profile
//   - [Shape.BoundaryPoints]: reconstructed boundary in the plane
//   - [Shape.PredictedExponents]: power-law exponent β per mode
//
// # Example
//
//	a, _ := shape.New(5, 1, shape.WithAmplitude(2))
//	b, _ := shape.New(5, 6, shape.WithAmplitude(1.1))
//	mix, _ := shape.Add([]*shape.Shape{a, b}, true)
//	pts := mix.BoundaryPoints(true)
//
// References:
//
//	Huh, D. (2015). The vector space of convex curves: How to mix shapes.
//	arXiv:1506.07515.
//
//	Huh, D., & Sejnowski, T. J. (2015). Spectrum of power laws for curved
//	hand movements. PNAS 112(29), E3950-E3958.
//
// Shapes are immutable and can be shared between goroutines read-only.
package shape
