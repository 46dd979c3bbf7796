package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/shapemix/internal/shape"
	"github.com/san-kum/shapemix/internal/viz"
)

// SVGOptions controls the boundary drawing.
type SVGOptions struct {
	Size        int
	Fill        float64
	StrokeWidth float64
	Background  string
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Size:        350,
		Fill:        viz.DefaultFill,
		StrokeWidth: 5,
		Background:  "#ffffff",
	}
}

// CurveToSVG draws points as line segments, segment i colored by the
// blue-red colormap of the normalized coloring[i].
func CurveToSVG(points []shape.Point, coloring []float64, opts SVGOptions) string {
	if len(points) < 2 {
		return ""
	}
	if opts.Size <= 0 {
		opts.Size = DefaultSVGOptions().Size
	}

	tr := viz.Fit(points, opts.Size, opts.Size, opts.Fill)
	shade := viz.Normalize(coloring)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="none" stroke-width="%.1f" stroke-linecap="round">
`, opts.Size, opts.Size, opts.Size, opts.Size, opts.Background, opts.StrokeWidth))

	for i := 0; i+1 < len(points); i++ {
		color := "#000000"
		if i < len(shade) {
			color = viz.RGB(shade[i])
		}
		x0 := tr.Scale*points[i].X + tr.OffsetX
		y0 := tr.Scale*points[i].Y + tr.OffsetY
		x1 := tr.Scale*points[i+1].X + tr.OffsetX
		y1 := tr.Scale*points[i+1].Y + tr.OffsetY
		sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"/>
`, x0, y0, x1, y1, color))
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// WriteSVG renders a centered trace of s to w.
func WriteSVG(w io.Writer, s *shape.Shape, stepDegrees float64, opts SVGOptions) error {
	tr := s.Trace(stepDegrees, true)
	_, err := io.WriteString(w, CurveToSVG(tr.Points, tr.LogRadius, opts))
	return err
}
