// Copyright (c) 2026 boxset authors
//
// MIT License

package interval

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
)

// SimpleInterval is the convex hull of two points: the atom of the interval
// algebra. The zero value is not meaningful on its own; use the package
// constructors (Closed, Open, ...) or NewSimpleInterval.
type SimpleInterval struct {
	lower, upper float64
	left, right  Bound
}

// emptySimpleInterval is the canonical empty sentinel: every degenerate or
// inverted construction normalizes to this exact value so Equal and Hash
// agree regardless of how the empty set was produced.
var emptySimpleInterval = SimpleInterval{lower: 0, upper: 0, left: BoundOpen, right: BoundOpen}

// EmptySimpleInterval returns the canonical empty interval atom.
func EmptySimpleInterval() SimpleInterval { return emptySimpleInterval }

// NewSimpleInterval constructs a simple interval, normalizing any degenerate
// or inverted input (lower > upper, or lower == upper without both bounds
// CLOSED) to the canonical empty sentinel rather than failing — see
// DESIGN.md's Open Question resolution for DegenerateInterval. Use
// MustSimpleInterval to opt into an error instead.
func NewSimpleInterval(lower, upper float64, left, right Bound) SimpleInterval {
	if lower > upper {
		return emptySimpleInterval
	}
	if lower == upper && (left == BoundOpen || right == BoundOpen) {
		return emptySimpleInterval
	}
	return SimpleInterval{lower: lower, upper: upper, left: left, right: right}
}

// MustSimpleInterval is NewSimpleInterval but reports boxerr.ErrDegenerateInterval
// instead of silently collapsing to the empty set, for callers that want
// strict validation of a caller-controlled range.
func MustSimpleInterval(lower, upper float64, left, right Bound) (SimpleInterval, error) {
	if lower > upper || (lower == upper && (left == BoundOpen || right == BoundOpen)) {
		return emptySimpleInterval, newDegenerateError(lower, upper, left, right)
	}
	return SimpleInterval{lower: lower, upper: upper, left: left, right: right}, nil
}

// Lower returns the lower bound's value.
func (s SimpleInterval) Lower() float64 { return s.lower }

// Upper returns the upper bound's value.
func (s SimpleInterval) Upper() float64 { return s.upper }

// LeftBound returns the bound type of the lower endpoint.
func (s SimpleInterval) LeftBound() Bound { return s.left }

// RightBound returns the bound type of the upper endpoint.
func (s SimpleInterval) RightBound() Bound { return s.right }

// IsEmpty reports whether this atom denotes the empty set.
func (s SimpleInterval) IsEmpty() bool {
	return s.lower > s.upper || (s.lower == s.upper && (s.left == BoundOpen || s.right == BoundOpen))
}

// IsSingleton reports whether this interval contains exactly one point.
func (s SimpleInterval) IsSingleton() bool {
	return s.lower == s.upper && s.left == BoundClosed && s.right == BoundClosed
}

// Contains reports whether x lies within this interval, respecting bound
// types.
func (s SimpleInterval) Contains(x float64) bool {
	if s.lower < x && x < s.upper {
		return true
	}
	if x == s.lower && s.left == BoundClosed {
		return true
	}
	if x == s.upper && s.right == BoundClosed {
		return true
	}
	return false
}

// Center returns the midpoint of the interval.
func (s SimpleInterval) Center() float64 {
	return (s.lower + s.upper) / 2
}

// ContainedIntegers returns the integers contained in this interval, in
// ascending order.
func (s SimpleInterval) ContainedIntegers() []int {
	if s.IsEmpty() {
		return nil
	}
	lo := math.Ceil(s.lower)
	if lo == s.lower && s.left == BoundOpen {
		lo++
	}
	hi := math.Floor(s.upper)
	if hi == s.upper && s.right == BoundOpen {
		hi--
	}
	if math.IsInf(lo, -1) || math.IsInf(hi, 1) {
		panic("interval: ContainedIntegers called on an unbounded interval")
	}
	if lo > hi {
		return nil
	}
	result := make([]int, 0, int(hi-lo)+1)
	for v := int(lo); v <= int(hi); v++ {
		result = append(result, v)
	}
	return result
}

// IntersectionWith returns the intersection of two simple intervals: the
// tighter (more restrictive) bound wins at each endpoint, with OPEN winning
// ties over CLOSED.
func (s SimpleInterval) IntersectionWith(other SimpleInterval) SimpleInterval {
	lower, left := s.lower, s.left
	if other.lower > lower || (other.lower == lower && other.left == BoundOpen) {
		lower, left = other.lower, other.left
	}
	upper, right := s.upper, s.right
	if other.upper < upper || (other.upper == upper && other.right == BoundOpen) {
		upper, right = other.upper, other.right
	}
	return NewSimpleInterval(lower, upper, left, right)
}

// Complement returns up to two simple intervals whose union is the
// complement of this interval over the whole real line: the unbounded
// interval below the lower endpoint, and the unbounded interval above the
// upper endpoint. Either side is dropped when it would be empty (i.e. the
// endpoint is already infinite).
func (s SimpleInterval) Complement() []SimpleInterval {
	if s.IsEmpty() {
		return []SimpleInterval{reals()}
	}
	var result []SimpleInterval
	below := NewSimpleInterval(math.Inf(-1), s.lower, BoundOpen, flip(s.left))
	if !below.IsEmpty() {
		result = append(result, below)
	}
	above := NewSimpleInterval(s.upper, math.Inf(1), flip(s.right), BoundOpen)
	if !above.IsEmpty() {
		result = append(result, above)
	}
	return result
}

// TryMerge merges this interval with other into a single interval when they
// touch or overlap and the shared endpoint is included by at least one
// side; see spec.md S3 for the policy this implements. The receiver is
// assumed to sort at or before other (Less(other) or Equal(other)).
func (s SimpleInterval) TryMerge(other SimpleInterval) (SimpleInterval, bool) {
	if s.IsEmpty() {
		return other, true
	}
	if other.IsEmpty() {
		return s, true
	}
	if s.Equal(other) {
		return s, true
	}
	// s.upper must reach at least other.lower for the atoms to touch or
	// overlap; if there is a genuine gap, no single interval can merge them.
	if s.upper < other.lower {
		return SimpleInterval{}, false
	}
	if s.upper == other.lower && s.right == BoundOpen && other.left == BoundOpen {
		return SimpleInterval{}, false
	}
	upper, right := s.upper, s.right
	if other.upper > upper || (other.upper == upper && other.right == BoundClosed) {
		upper, right = other.upper, other.right
	}
	return NewSimpleInterval(s.lower, upper, s.left, right), true
}

// Equal reports structural equality.
func (s SimpleInterval) Equal(other SimpleInterval) bool {
	if s.IsEmpty() && other.IsEmpty() {
		return true
	}
	return s.lower == other.lower && s.upper == other.upper && s.left == other.left && s.right == other.right
}

// Less orders intervals by lower bound, then by bound type (CLOSED before
// OPEN at a shared lower endpoint so the wider interval sorts first), then
// by upper bound and its bound type for a fully deterministic order.
func (s SimpleInterval) Less(other SimpleInterval) bool {
	if s.lower != other.lower {
		return s.lower < other.lower
	}
	if s.left != other.left {
		return s.left < other.left
	}
	if s.upper != other.upper {
		return s.upper < other.upper
	}
	return s.right < other.right
}

// Hash returns a value consistent with Equal.
func (s SimpleInterval) Hash() uint64 {
	h := fnv.New64a()
	if s.IsEmpty() {
		h.Write([]byte("empty"))
		return h.Sum64()
	}
	var buf [34]byte
	binaryPutFloat(buf[0:8], s.lower)
	binaryPutFloat(buf[8:16], s.upper)
	buf[16] = byte(s.left)
	buf[17] = byte(s.right)
	h.Write(buf[:18])
	return h.Sum64()
}

func binaryPutFloat(dst []byte, v float64) {
	bits := math.Float64bits(v)
	for i := 0; i < 8; i++ {
		dst[i] = byte(bits >> (8 * i))
	}
}

// String renders the interval in bracket notation, or the empty-set symbol.
func (s SimpleInterval) String() string {
	if s.IsEmpty() {
		return emptySetSymbol
	}
	leftBracket, rightBracket := "(", ")"
	if s.left == BoundClosed {
		leftBracket = "["
	}
	if s.right == BoundClosed {
		rightBracket = "]"
	}
	return fmt.Sprintf("%s%v, %v%s", leftBracket, s.lower, s.upper, rightBracket)
}

type simpleIntervalJSON struct {
	Kind  string `json:"kind"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Left  string  `json:"left"`
	Right string  `json:"right"`
}

// MarshalJSON implements json.Marshaler with the documented
// {"kind": "simple_interval", ...} shape.
func (s SimpleInterval) MarshalJSON() ([]byte, error) {
	return json.Marshal(simpleIntervalJSON{
		Kind:  "simple_interval",
		Lower: s.lower,
		Upper: s.upper,
		Left:  s.left.String(),
		Right: s.right.String(),
	})
}

// UnmarshalJSON implements json.Unmarshaler, the inverse of MarshalJSON.
func (s *SimpleInterval) UnmarshalJSON(data []byte) error {
	var raw simpleIntervalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	left, err := boundFromString(raw.Left)
	if err != nil {
		return err
	}
	right, err := boundFromString(raw.Right)
	if err != nil {
		return err
	}
	*s = NewSimpleInterval(raw.Lower, raw.Upper, left, right)
	return nil
}

func boundFromString(s string) (Bound, error) {
	switch s {
	case "CLOSED":
		return BoundClosed, nil
	case "OPEN":
		return BoundOpen, nil
	default:
		return 0, fmt.Errorf("interval: unknown bound %q", s)
	}
}

func reals() SimpleInterval {
	return SimpleInterval{lower: math.Inf(-1), upper: math.Inf(1), left: BoundOpen, right: BoundOpen}
}
