package shape

import (
	"iter"
	"math"
)

const (
	// DefaultStepDegrees is the default angular sampling step.
	DefaultStepDegrees = 0.5
	// MinStepDegrees is the smallest accepted sampling step. At the
	// longest fundamental period it yields about 18 million samples.
	MinStepDegrees = 1e-3
)

// Point is a position in the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// ValidStep reports whether stepDegrees is a finite step no smaller than
// MinStepDegrees.
func ValidStep(stepDegrees float64) bool {
	return stepDegrees >= MinStepDegrees && !math.IsInf(stepDegrees, 0)
}

// Trace is one sampling pass over a shape: the angles, the log-radius at
// each angle, and the reconstructed boundary.
type Trace struct {
	Angles    []float64 `json:"theta"`
	LogRadius []float64 `json:"log_r"`
	Points    []Point   `json:"points"`
}

// stepRadians converts a sampling step, replacing invalid steps with
// DefaultStepDegrees.
func stepRadians(stepDegrees float64) float64 {
	if !ValidStep(stepDegrees) {
		stepDegrees = DefaultStepDegrees
	}
	return stepDegrees * math.Pi / 180
}

// SampleAngles yields angles from 0 through one step past the fundamental
// period. Steps that fail ValidStep fall back to DefaultStepDegrees. The
// sequence can be ranged over any number of times.
func (s *Shape) SampleAngles(stepDegrees float64) iter.Seq[float64] {
	dtheta := stepRadians(stepDegrees)
	limit := dtheta + s.period
	return func(yield func(float64) bool) {
		for theta := 0.0; theta <= limit; theta += dtheta {
			if !yield(theta) {
				return
			}
		}
	}
}

// Angles collects SampleAngles into a slice.
func (s *Shape) Angles(stepDegrees float64) []float64 {
	n := int(s.period/stepRadians(stepDegrees)) + 2
	out := make([]float64, 0, n)
	for theta := range s.SampleAngles(stepDegrees) {
		out = append(out, theta)
	}
	return out
}

// LogRadiusAt returns Σ eps_j · sin(ν_j · (θ − φ_j)).
func (s *Shape) LogRadiusAt(theta float64) float64 {
	var sum float64
	for j, md := range s.modes {
		sum += md.Amplitude * math.Sin(s.nu[j]*(theta-s.phase[j]))
	}
	return sum
}

// LogRadius evaluates the profile at each angle. A nil slice samples one
// full period at DefaultStepDegrees.
func (s *Shape) LogRadius(angles []float64) []float64 {
	if angles == nil {
		angles = s.Angles(DefaultStepDegrees)
	}
	out := make([]float64, len(angles))
	for i, theta := range angles {
		out[i] = s.LogRadiusAt(theta)
	}
	return out
}

// BoundaryPoints reconstructs the boundary at DefaultStepDegrees. With
// center set the points are shifted so their mean is the origin.
func (s *Shape) BoundaryPoints(center bool) []Point {
	return s.Trace(DefaultStepDegrees, center).Points
}

// Trace samples the shape once and reconstructs its boundary.
func (s *Shape) Trace(stepDegrees float64, center bool) Trace {
	angles := s.Angles(stepDegrees)
	logR := s.LogRadius(angles)
	return Trace{
		Angles:    angles,
		LogRadius: logR,
		Points:    Reconstruct(angles, logR, center),
	}
}

// Reconstruct integrates a log-radius profile into boundary points. Each
// step advances by the chord ρ_i = 2·sin(Δθ_i/2)·exp(−logR_i) in direction
// θ_i, where Δθ_i is the increment to the next angle. The last sample reuses
// the previous increment. angles and logR must have equal length.
func Reconstruct(angles, logR []float64, center bool) []Point {
	points := make([]Point, len(angles))
	var x, y, dtheta, sumX, sumY float64
	for i, theta := range angles {
		if i < len(angles)-1 {
			dtheta = angles[i+1] - theta
		}
		rho := 2 * math.Sin(0.5*dtheta) * math.Exp(-logR[i])
		x += rho * math.Cos(theta)
		y += rho * math.Sin(theta)
		points[i] = Pt(x, y)
		sumX += x
		sumY += y
	}

	if center && len(points) > 0 {
		n := float64(len(points))
		cx, cy := sumX/n, sumY/n
		for i := range points {
			points[i].X -= cx
			points[i].Y -= cy
		}
	}
	return points
}
