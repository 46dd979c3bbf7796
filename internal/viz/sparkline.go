package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline characters from low to high
var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// SparklineRunes downsamples values to at most width cells and maps each to a
// bar height. Constant input gives the lowest bar everywhere.
func SparklineRunes(values []float64, width int) ([]rune, []float64) {
	if len(values) == 0 || width <= 0 {
		return nil, nil
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}
	picked := make([]float64, 0, width)
	for i := 0; i < width && i*step < len(values); i++ {
		picked = append(picked, values[i*step])
	}

	norm := Normalize(picked)
	out := make([]rune, len(norm))
	for i, v := range norm {
		idx := int(v * float64(len(sparkChars)-1))
		out[i] = sparkChars[max(0, min(idx, len(sparkChars)-1))]
	}
	return out, norm
}

// Sparkline renders values as a one-line bar chart shaded with ColormapBR.
func Sparkline(values []float64, width int) string {
	bars, norm := SparklineRunes(values, width)
	if bars == nil {
		return strings.Repeat("─", max(width, 0))
	}

	var sb strings.Builder
	for i, c := range bars {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(norm[i])))
		sb.WriteString(style.Render(string(c)))
	}
	return sb.String()
}
