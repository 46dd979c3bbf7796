package sweep

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/shapemix/internal/shape"
)

func TestGrid(t *testing.T) {
	rows, err := Grid(Range{2, 4}, Range{1, 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 9 {
		t.Fatalf("expected 9 rows, got %d", len(rows))
	}
	if rows[0].Symmetry != 2 || rows[0].Period != 1 || rows[8].Symmetry != 4 || rows[8].Period != 3 {
		t.Errorf("unexpected order: first %+v last %+v", rows[0], rows[8])
	}

	for _, r := range rows {
		if want := shape.AreCoprime(r.Period, r.Symmetry); r.Coprime != want {
			t.Errorf("%d/%d coprime = %v, want %v", r.Symmetry, r.Period, r.Coprime, want)
		}
		if r.Turns != r.Period {
			t.Errorf("%d/%d turns = %d, want %d", r.Symmetry, r.Period, r.Turns, r.Period)
		}
		nu := float64(r.Symmetry) / float64(r.Period)
		want := (2.0 / 3.0) * (1 + 0.5*nu*nu) / (1 + nu*nu + nu*nu*nu*nu/15)
		if math.Abs(r.Beta-want) > 1e-12 {
			t.Errorf("%d/%d beta = %v, want %v", r.Symmetry, r.Period, r.Beta, want)
		}
	}
}

func TestGridInvalid(t *testing.T) {
	tests := []struct{ m, n Range }{
		{Range{0, 3}, Range{1, 2}},
		{Range{2, 3}, Range{0, 2}},
		{Range{5, 3}, Range{1, 2}},
	}
	for _, tt := range tests {
		if _, err := Grid(tt.m, tt.n); !errors.Is(err, shape.ErrInvalidShapeParameters) {
			t.Errorf("Grid(%v, %v) err = %v", tt.m, tt.n, err)
		}
	}
}

func TestCoprimeAndClosest(t *testing.T) {
	rows, _ := Grid(Range{2, 6}, Range{1, 6})
	co := Coprime(rows)
	for _, r := range co {
		if r.Symmetry == r.Period || (r.Symmetry%2 == 0 && r.Period%2 == 0) {
			t.Errorf("row %+v should not be coprime", r)
		}
	}
	if len(co) == 0 || len(co) >= len(rows) {
		t.Errorf("unexpected filter size %d of %d", len(co), len(rows))
	}

	r, ok := Closest(rows, 2.0/3.0)
	if !ok {
		t.Fatal("expected a row")
	}
	if r.Symmetry != 2 || r.Period != 6 {
		t.Errorf("closest to 2/3 = %+v, want smallest ratio 2/6", r)
	}

	if _, ok := Closest(nil, 1); ok {
		t.Error("expected no row for empty input")
	}
}
