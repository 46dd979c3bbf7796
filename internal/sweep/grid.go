// Package sweep tabulates predicted exponents over a grid of symmetry and
// period values.
package sweep

import (
	"fmt"
	"math"

	"github.com/san-kum/shapemix/internal/shape"
)

// Row is one (m, n) grid point.
type Row struct {
	Symmetry int     `json:"m"`
	Period   int     `json:"n"`
	Ratio    float64 `json:"nu"`
	Beta     float64 `json:"beta"`
	Coprime  bool    `json:"coprime"`
	Turns    int     `json:"turns"`
}

// Range is an inclusive integer interval.
type Range struct {
	Min, Max int
}

func (r Range) valid() bool { return r.Min >= 1 && r.Max >= r.Min }

// Grid evaluates every (m, n) pair in order, m outer. Periods below 1 are
// rejected.
func Grid(m, n Range) ([]Row, error) {
	if !m.valid() || !n.valid() {
		return nil, fmt.Errorf("sweep: invalid range m=%v n=%v: %w", m, n, shape.ErrInvalidShapeParameters)
	}

	rows := make([]Row, 0, (m.Max-m.Min+1)*(n.Max-n.Min+1))
	for sym := m.Min; sym <= m.Max; sym++ {
		for per := n.Min; per <= n.Max; per++ {
			s, err := shape.New(sym, per)
			if err != nil {
				return nil, err
			}
			rows = append(rows, Row{
				Symmetry: sym,
				Period:   per,
				Ratio:    s.FrequencyRatios()[0],
				Beta:     s.PredictedExponents()[0],
				Coprime:  s.Coprime()[0],
				Turns:    int(math.Round(s.FundamentalPeriod() / (2 * math.Pi))),
			})
		}
	}
	return rows, nil
}

// Coprime keeps only rows whose symmetry and period are coprime.
func Coprime(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Coprime {
			out = append(out, r)
		}
	}
	return out
}

// Closest returns the row whose beta is nearest to target.
func Closest(rows []Row, target float64) (Row, bool) {
	best := math.Inf(1)
	var bestRow Row
	for _, r := range rows {
		if d := math.Abs(r.Beta - target); d < best {
			best = d
			bestRow = r
		}
	}
	return bestRow, !math.IsInf(best, 1)
}
