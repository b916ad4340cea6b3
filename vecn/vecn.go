package vecn

// Vec is a fixed-length vector of real numbers.
//
// The zero value of a Vec is an empty vector; use New or Full to construct
// one of a given dimension. All methods treat the receiver as immutable.
type Vec []float64

// New returns a zero-filled vector of dimension n.
// New(0) is legal and returns an empty vector.
func New(n int) Vec {
	return make(Vec, n)
}

// Full returns a vector of dimension n with every component set to v.
func Full(n int, v float64) Vec {
	out := make(Vec, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Of copies the given components into a fresh Vec.
func Of(vs ...float64) Vec {
	out := make(Vec, len(vs))
	copy(out, vs)
	return out
}

// Clone returns an independent copy of v.
func (v Vec) Clone() Vec {
	out := make(Vec, len(v))
	copy(out, v)
	return out
}

// Dim returns the dimension of v.
func (v Vec) Dim() int { return len(v) }
