package viz

import (
	"math"

	"github.com/san-kum/shapemix/internal/shape"
)

// DefaultFill is the fraction of the smaller canvas side a fitted curve
// spans.
const DefaultFill = 0.75

// Transform maps curve coordinates to canvas dots.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Apply maps p to integer dot coordinates.
func (t Transform) Apply(p shape.Point) (int, int) {
	x := t.Scale*p.X + t.OffsetX
	y := t.Scale*p.Y + t.OffsetY
	return int(math.Round(x)), int(math.Round(y))
}

// Fit returns the transform that centers points in a w×h area and scales
// them so the largest absolute coordinate reaches fill·min(w, h)/2. The
// scale is returned rather than cached so callers decide whether to reuse
// it across frames.
func Fit(points []shape.Point, w, h int, fill float64) Transform {
	if fill <= 0 {
		fill = DefaultFill
	}
	var extent float64
	for _, p := range points {
		extent = math.Max(extent, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	scale := 1.0
	if extent > 0 && !math.IsInf(extent, 0) {
		scale = fill * 0.5 * float64(min(w, h)) / extent
	}
	return Transform{
		Scale:   scale,
		OffsetX: float64(w) / 2,
		OffsetY: float64(h) / 2,
	}
}

// DrawCurve fits points to the canvas and draws consecutive segments.
// Segment i is shaded with the normalized coloring[i]; coloring may be nil.
func DrawCurve(c *Canvas, points []shape.Point, coloring []float64, fill float64) Transform {
	tr := Fit(points, c.SubWidth(), c.SubHeight(), fill)
	DrawWith(c, tr, points, coloring)
	return tr
}

// DrawWith draws points with a fixed transform.
func DrawWith(c *Canvas, tr Transform, points []shape.Point, coloring []float64) {
	shade := Normalize(coloring)
	for i := 0; i+1 < len(points); i++ {
		v := -1.0
		if i < len(shade) {
			v = shade[i]
		}
		x0, y0 := tr.Apply(points[i])
		x1, y1 := tr.Apply(points[i+1])
		c.DrawLine(x0, y0, x1, y1, v)
	}
	if len(points) == 1 {
		x, y := tr.Apply(points[0])
		c.Set(x, y)
	}
}

// RenderShape samples s and draws its centered boundary, shaded by the
// log-radius profile, into a new w×h cell canvas.
func RenderShape(s *shape.Shape, w, h int, fill, stepDegrees float64) *Canvas {
	c := NewCanvas(w, h)
	tr := s.Trace(stepDegrees, true)
	DrawCurve(c, tr.Points, tr.LogRadius, fill)
	return c
}
