package shape

// Combine returns a shape holding the modes of s followed by those of other.
// Its log-radius profile is the pointwise sum of both profiles.
func (s *Shape) Combine(other *Shape) *Shape {
	modes := make([]Mode, 0, len(s.modes)+len(other.modes))
	modes = append(modes, s.modes...)
	modes = append(modes, other.modes...)
	return build(modes)
}

// ScaleAmplitude returns a shape with every mode amplitude multiplied by k.
func (s *Shape) ScaleAmplitude(k float64) *Shape {
	modes := s.Modes()
	for i := range modes {
		modes[i].Amplitude *= k
	}
	return build(modes)
}

// Add sums shapes in log-radius space, left to right. When average is set
// every amplitude is weighted by 1/len(shapes).
func Add(shapes []*Shape, average bool) (*Shape, error) {
	if len(shapes) == 0 {
		return nil, invalid("shapes", -1, "nothing to add")
	}
	for i, s := range shapes {
		if s == nil {
			return nil, invalid("shapes", i, "nil shape")
		}
	}
	w := 1.0
	if average {
		w = 1 / float64(len(shapes))
	}

	sum := shapes[0].ScaleAmplitude(w)
	for _, s := range shapes[1:] {
		sum = sum.Combine(s.ScaleAmplitude(w))
	}
	return sum, nil
}
