package shape

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustNew(t *testing.T, m, n int, opts ...Option) *Shape {
	t.Helper()
	s, err := New(m, n, opts...)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", m, n, err)
	}
	return s
}

func TestNewDefaults(t *testing.T) {
	s := mustNew(t, 5, 1)

	want := []Mode{{Symmetry: 5, Period: 1, Amplitude: 1, PhaseOffset: 0}}
	diff(t, want, s.Modes())

	if got := s.FrequencyRatios()[0]; got != 5 {
		t.Errorf("frequency ratio = %v, want 5", got)
	}
	if got := s.Modes()[0].NativePhase(); math.Abs(got+math.Pi/10) > 1e-12 {
		t.Errorf("native phase = %v, want %v", got, -math.Pi/10)
	}
	if got := s.FundamentalPeriod(); got != 2*math.Pi {
		t.Errorf("period = %v, want 2π", got)
	}
}

func TestEffectivePhase(t *testing.T) {
	s := mustNew(t, 5, 6, WithAmplitude(1.1), WithPhaseOffset(0.25))
	md := s.Modes()[0]

	native := 0.5*math.Pi/(5.0/6.0) - math.Pi/5
	if got := md.NativePhase(); math.Abs(got-native) > 1e-12 {
		t.Errorf("native phase = %v, want %v", got, native)
	}
	if got := s.EffectivePhases()[0]; math.Abs(got-(native-0.25)) > 1e-12 {
		t.Errorf("effective phase = %v, want %v", got, native-0.25)
	}
}

func TestDegenerateSymmetry(t *testing.T) {
	s, err := FromArrays([]int{0, 3}, []int{1, 1}, []float64{1, 1}, []float64{0.5, 0})
	if err != nil {
		t.Fatalf("degenerate symmetry should be accepted: %v", err)
	}
	if got := s.EffectivePhases()[0]; got != -0.5 {
		t.Errorf("effective phase = %v, want -0.5", got)
	}
	diff(t, []int{0}, s.Degenerate())
}

func TestPredictedExponents(t *testing.T) {
	tests := []struct {
		m, n int
		want float64
	}{
		{5, 1, (2.0 / 3.0) * (1 + 0.5*25) / (1 + 25 + 625.0/15)},
		{2, 1, (2.0 / 3.0) * (1 + 0.5*4) / (1 + 4 + 16.0/15)},
		{1, 1, (2.0 / 3.0) * 1.5 / (2 + 1.0/15)},
	}

	for _, tt := range tests {
		s := mustNew(t, tt.m, tt.n)
		got := s.PredictedExponents()
		if len(got) != 1 || math.Abs(got[0]-tt.want) > 1e-12 {
			t.Errorf("β(%d/%d) = %v, want %v", tt.m, tt.n, got, tt.want)
		}
	}

	if got := mustNew(t, 5, 1).PredictedExponents()[0]; math.Abs(got-0.1330) > 1e-4 {
		t.Errorf("β(5) = %v, want ≈0.1330", got)
	}
}

func TestFundamentalPeriod(t *testing.T) {
	tests := []struct {
		name    string
		periods []int
		turns   int
	}{
		{"single", []int{1}, 1},
		{"single six", []int{6}, 6},
		{"one and six", []int{1, 6}, 6},
		{"four and six", []int{4, 6}, 12},
		{"equal", []int{3, 3}, 3},
		{"lcm above cap", []int{7, 11}, 50},
		{"period above cap", []int{60}, 50},
		{"many", []int{2, 3, 5}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := make([]int, len(tt.periods))
			z := make([]float64, len(tt.periods))
			for i := range m {
				m[i] = 5
			}
			s, err := FromArrays(m, tt.periods, z, z)
			if err != nil {
				t.Fatal(err)
			}
			want := 2 * math.Pi * float64(tt.turns)
			if got := s.FundamentalPeriod(); got != want {
				t.Errorf("period = %v, want %v", got, want)
			}
		})
	}
}

func TestFromArraysErrors(t *testing.T) {
	tests := []struct {
		name string
		m, n []int
		eps  []float64
		p    []float64
	}{
		{"empty", nil, nil, nil, nil},
		{"short symmetry", []int{5}, []int{1, 2}, []float64{1, 1}, []float64{0, 0}},
		{"short amplitude", []int{5, 3}, []int{1, 2}, []float64{1}, []float64{0, 0}},
		{"short phase", []int{5, 3}, []int{1, 2}, []float64{1, 1}, nil},
		{"zero period", []int{5}, []int{0}, []float64{1}, []float64{0}},
		{"negative period", []int{5}, []int{-2}, []float64{1}, []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromArrays(tt.m, tt.n, tt.eps, tt.p)
			if s != nil {
				t.Error("expected nil shape on error")
			}
			if !errors.Is(err, ErrInvalidShapeParameters) {
				t.Fatalf("err = %v, want ErrInvalidShapeParameters", err)
			}
			var pe *ParamError
			if !errors.As(err, &pe) {
				t.Errorf("expected *ParamError, got %T", err)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	if _, err := Add(nil, true); !errors.Is(err, ErrInvalidShapeParameters) {
		t.Errorf("Add(nil) err = %v", err)
	}
	if _, err := Add([]*Shape{mustNew(t, 3, 1), nil}, true); !errors.Is(err, ErrInvalidShapeParameters) {
		t.Errorf("Add with nil shape err = %v", err)
	}
}

func TestCombineOrderAndImmutability(t *testing.T) {
	a := mustNew(t, 5, 1, WithAmplitude(2))
	b := mustNew(t, 5, 6, WithAmplitude(1.1))
	c := mustNew(t, 3, 2, WithPhaseOffset(0.3))

	ab := a.Combine(b)
	if a.Len() != 1 || b.Len() != 1 {
		t.Fatal("Combine mutated an operand")
	}

	want := append(a.Modes(), b.Modes()...)
	diff(t, want, ab.Modes())

	left := ab.Combine(c)
	right := a.Combine(b.Combine(c))
	diff(t, left.Modes(), right.Modes())
	if left.FundamentalPeriod() != right.FundamentalPeriod() {
		t.Errorf("periods differ: %v vs %v", left.FundamentalPeriod(), right.FundamentalPeriod())
	}
}

func TestScaleAmplitude(t *testing.T) {
	s := mustNew(t, 5, 6, WithAmplitude(1.1), WithPhaseOffset(0.2))
	scaled := s.ScaleAmplitude(-2.5)

	if s.Modes()[0].Amplitude != 1.1 {
		t.Error("ScaleAmplitude mutated the operand")
	}
	md := scaled.Modes()[0]
	if md.Symmetry != 5 || md.Period != 6 || md.PhaseOffset != 0.2 {
		t.Errorf("unexpected mode %v", md)
	}

	for _, theta := range []float64{0, 0.7, 3.1, 20} {
		want := -2.5 * s.LogRadiusAt(theta)
		if got := scaled.LogRadiusAt(theta); math.Abs(got-want) > 1e-12 {
			t.Errorf("θ=%v: got %v, want %v", theta, got, want)
		}
	}
}

func TestSampleAngles(t *testing.T) {
	s := mustNew(t, 5, 1)

	first := s.Angles(DefaultStepDegrees)
	second := s.Angles(DefaultStepDegrees)
	diff(t, first, second)

	step := 0.5 * math.Pi / 180
	if len(first) < 721 || len(first) > 722 {
		t.Errorf("expected 721 or 722 samples, got %d", len(first))
	}
	if first[0] != 0 {
		t.Errorf("first angle = %v, want 0", first[0])
	}
	last := first[len(first)-1]
	if last < s.FundamentalPeriod()-1e-9 || last > s.FundamentalPeriod()+step {
		t.Errorf("last angle %v outside [period, period+step]", last)
	}

	n := 0
	for range s.SampleAngles(DefaultStepDegrees) {
		n++
		if n == 10 {
			break
		}
	}
	if n != 10 {
		t.Errorf("early break yielded %d angles", n)
	}

	for _, bad := range []float64{-1, 0, math.NaN(), math.Inf(1), 1e-300, math.SmallestNonzeroFloat64, MinStepDegrees / 2} {
		if got := len(s.Angles(bad)); got != len(first) {
			t.Errorf("step %v should fall back to default: %d vs %d", bad, got, len(first))
		}
	}
}

func TestValidStep(t *testing.T) {
	tests := []struct {
		step float64
		want bool
	}{
		{DefaultStepDegrees, true},
		{MinStepDegrees, true},
		{90, true},
		{MinStepDegrees / 2, false},
		{1e-300, false},
		{0, false},
		{-0.5, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}
	for _, tt := range tests {
		if got := ValidStep(tt.step); got != tt.want {
			t.Errorf("ValidStep(%v) = %v, want %v", tt.step, got, tt.want)
		}
	}
}

func TestLogRadiusDefaultSampling(t *testing.T) {
	s := mustNew(t, 3, 1)
	got := s.LogRadius(nil)
	want := s.LogRadius(s.Angles(DefaultStepDegrees))
	diff(t, want, got)
}

func TestPeriodicity(t *testing.T) {
	tests := []struct{ m, n int }{{5, 1}, {5, 6}, {3, 2}, {7, 3}, {2, 9}}

	for _, tt := range tests {
		s := mustNew(t, tt.m, tt.n, WithAmplitude(0.8), WithPhaseOffset(0.1))
		T := s.FundamentalPeriod()
		for _, theta := range []float64{0, 0.3, 1.7, 4} {
			a, b := s.LogRadiusAt(theta), s.LogRadiusAt(theta+T)
			if math.Abs(a-b) > 1e-9 {
				t.Errorf("%d/%d θ=%v: %v != %v", tt.m, tt.n, theta, a, b)
			}
		}
	}
}

func TestBoundaryCircle(t *testing.T) {
	s := mustNew(t, 3, 1, WithAmplitude(0))
	angles := s.Angles(DefaultStepDegrees)
	pts := s.BoundaryPoints(false)

	if len(pts) != len(angles) {
		t.Fatalf("got %d points for %d angles", len(pts), len(angles))
	}

	prev := Point{}
	dtheta := 0.0
	for i, p := range pts {
		if i < len(angles)-1 {
			dtheta = angles[i+1] - angles[i]
		}
		want := 2 * math.Sin(dtheta/2)
		got := math.Hypot(p.X-prev.X, p.Y-prev.Y)
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("step %d: ρ = %v, want %v", i, got, want)
		}
		prev = p
	}

	for i, p := range s.BoundaryPoints(true) {
		if r := math.Hypot(p.X, p.Y); math.Abs(r-1) > 1e-2 {
			t.Fatalf("point %d at radius %v, want ≈1", i, r)
		}
	}
}

func TestBoundaryCentered(t *testing.T) {
	a := mustNew(t, 5, 1, WithAmplitude(2))
	b := mustNew(t, 5, 6, WithAmplitude(1.1))
	mix, err := Add([]*Shape{a, b}, true)
	if err != nil {
		t.Fatal(err)
	}

	pts := mix.BoundaryPoints(true)
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	if math.Abs(sx/n) > 1e-9 || math.Abs(sy/n) > 1e-9 {
		t.Errorf("mean = (%g, %g), want origin", sx/n, sy/n)
	}

	raw := mix.BoundaryPoints(false)
	shift := raw[0].X - pts[0].X
	for i := range pts {
		if math.Abs(raw[i].X-pts[i].X-shift) > 1e-9 {
			t.Fatalf("point %d not translated uniformly", i)
		}
	}
}

func TestReconstructSingleSample(t *testing.T) {
	got := Reconstruct([]float64{1.2}, []float64{0.4}, false)
	diff(t, []Point{{0, 0}}, got)

	if got := Reconstruct(nil, nil, true); len(got) != 0 {
		t.Errorf("expected no points, got %v", got)
	}
}

func TestTrace(t *testing.T) {
	s := mustNew(t, 4, 3, WithAmplitude(0.5))
	tr := s.Trace(1, true)
	if len(tr.Angles) != len(tr.LogRadius) || len(tr.Angles) != len(tr.Points) {
		t.Fatalf("trace lengths differ: %d %d %d", len(tr.Angles), len(tr.LogRadius), len(tr.Points))
	}
	diff(t, s.LogRadius(tr.Angles), tr.LogRadius)
}

func TestAreCoprime(t *testing.T) {
	tests := []struct {
		a, b int
		want bool
	}{
		{5, 3, true},
		{3, 5, true},
		{6, 4, false},
		{7, 7, false},
		{1, 1, false},
		{1, 6, true},
		{9, 6, false},
		{5, 1, true},
	}

	for _, tt := range tests {
		if got := AreCoprime(tt.a, tt.b); got != tt.want {
			t.Errorf("AreCoprime(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	s, _ := FromArrays([]int{5, 6}, []int{6, 4}, []float64{1, 1}, []float64{0, 0})
	diff(t, []bool{true, false}, s.Coprime())
}

func TestParamsRoundTrip(t *testing.T) {
	a := mustNew(t, 5, 1, WithAmplitude(2), WithPhaseOffset(0.1234567891234))
	b := mustNew(t, 5, 6, WithAmplitude(1.1), WithPhaseOffset(-math.Pi/7))
	mix, _ := Add([]*Shape{a, b}, true)

	data, err := json.Marshal(mix.Params())
	if err != nil {
		t.Fatal(err)
	}
	var p Params
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatal(err)
	}
	back, err := FromParams(p)
	if err != nil {
		t.Fatal(err)
	}

	angles := []float64{0, 0.001, 1, math.Pi, 17.5, 37.7}
	diff(t, mix.LogRadius(angles), back.LogRadius(angles))
	diff(t, mix.BoundaryPoints(true), back.BoundaryPoints(true))
}

func TestAddApprox(t *testing.T) {
	a := mustNew(t, 5, 1, WithAmplitude(2))
	b := mustNew(t, 5, 6, WithAmplitude(1.1))

	sum, _ := Add([]*Shape{a, b}, false)
	angles := a.Angles(2)
	want := make([]float64, len(angles))
	for i, theta := range angles {
		want[i] = a.LogRadiusAt(theta) + b.LogRadiusAt(theta)
	}
	diff(t, want, sum.LogRadius(angles), cmpopts.EquateApprox(0, 1e-12))
}
