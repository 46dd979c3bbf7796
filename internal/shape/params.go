package shape

// Params is the serializable form of a shape.
type Params struct {
	Modes []Mode `json:"modes" yaml:"modes"`
}

// Params returns the shape's mode parameters.
func (s *Shape) Params() Params {
	return Params{Modes: s.Modes()}
}

// FromParams rebuilds a shape from its parameters. The result produces the
// same profile, bit for bit, as the shape the parameters came from.
func FromParams(p Params) (*Shape, error) {
	return FromModes(p.Modes...)
}
