// Copyright (c) 2026 boxset authors
//
// MIT License

package interval

// Bound enumerates the possible bound types for an interval endpoint.
// CLOSED sorts before OPEN so that, at equal endpoint values, comparing
// Bound as a plain integer already implements the "CLOSED first" tie-break
// SimpleInterval.Less uses; intersection and merging handle ties at a
// shared endpoint explicitly.
type Bound int

const (
	// BoundClosed means the endpoint is included in the interval.
	BoundClosed Bound = iota
	// BoundOpen means the endpoint is excluded from the interval.
	BoundOpen
)

// String renders the bound as CLOSED or OPEN.
func (b Bound) String() string {
	if b == BoundClosed {
		return "CLOSED"
	}
	return "OPEN"
}

// flip returns the opposite bound type, used when constructing the
// complement of an interval endpoint.
func flip(b Bound) Bound {
	if b == BoundClosed {
		return BoundOpen
	}
	return BoundClosed
}
