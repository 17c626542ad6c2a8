// Copyright (c) 2026 boxset authors
//
// MIT License

package interval

import (
	"encoding/json"
	"strings"

	"github.com/axisbox/boxset/setalgebra"
)

// Interval is a composite set: a finite, sorted, pairwise-disjoint,
// simplified union of SimpleIntervals. The zero value is the empty
// interval.
type Interval struct {
	simples []SimpleInterval
}

// NewInterval builds a canonical Interval from any collection of simple
// intervals, disjointifying, simplifying and sorting them regardless of
// whether the input already satisfies those invariants.
func NewInterval(simples ...SimpleInterval) Interval {
	atoms := setalgebra.MakeDisjoint(simples)
	atoms = setalgebra.Simplify(atoms)
	return Interval{simples: atoms}
}

func fullSpace() []SimpleInterval { return []SimpleInterval{reals()} }

// Open returns the open interval (left, right).
func Open(left, right float64) Interval {
	return NewInterval(NewSimpleInterval(left, right, BoundOpen, BoundOpen))
}

// Closed returns the closed interval [left, right].
func Closed(left, right float64) Interval {
	return NewInterval(NewSimpleInterval(left, right, BoundClosed, BoundClosed))
}

// OpenClosed returns the interval (left, right].
func OpenClosed(left, right float64) Interval {
	return NewInterval(NewSimpleInterval(left, right, BoundOpen, BoundClosed))
}

// ClosedOpen returns the interval [left, right).
func ClosedOpen(left, right float64) Interval {
	return NewInterval(NewSimpleInterval(left, right, BoundClosed, BoundOpen))
}

// Singleton returns the degenerate interval containing exactly value.
func Singleton(value float64) Interval {
	return NewInterval(NewSimpleInterval(value, value, BoundClosed, BoundClosed))
}

// Reals returns the set of all real numbers.
func Reals() Interval {
	return NewInterval(reals())
}

// Empty returns the empty interval.
func Empty() Interval {
	return Interval{}
}

// SimpleSets returns the canonical, sorted, disjoint simple intervals that
// make up this interval. Callers must not mutate the returned slice.
func (iv Interval) SimpleSets() []SimpleInterval { return iv.simples }

// IsEmpty reports whether this interval denotes the empty set.
func (iv Interval) IsEmpty() bool { return len(iv.simples) == 0 }

// IsSingleton reports whether this interval contains exactly one point.
func (iv Interval) IsSingleton() bool {
	return len(iv.simples) == 1 && iv.simples[0].IsSingleton()
}

// IsDisjoint reports whether the simple intervals making up this interval
// are pairwise disjoint — always true for a value built through this
// package's constructors, but exposed per the public contract.
func (iv Interval) IsDisjoint() bool { return setalgebra.IsDisjoint(iv.simples) }

// Contains reports whether x belongs to this interval.
func (iv Interval) Contains(x float64) bool {
	for _, s := range iv.simples {
		if s.Contains(x) {
			return true
		}
	}
	return false
}

// ContainedIntegers yields, in ascending order, every integer contained in
// this interval.
func (iv Interval) ContainedIntegers() []int {
	var result []int
	for _, s := range iv.simples {
		result = append(result, s.ContainedIntegers()...)
	}
	return result
}

// UnionWith returns the union of iv and other.
func (iv Interval) UnionWith(other Interval) Interval {
	combined := append(append([]SimpleInterval(nil), iv.simples...), other.simples...)
	return NewInterval(combined...)
}

// IntersectionWith returns the intersection of iv and other.
func (iv Interval) IntersectionWith(other Interval) Interval {
	return NewInterval(setalgebra.IntersectAtoms(iv.simples, other.simples)...)
}

// DifferenceWith returns iv minus other.
func (iv Interval) DifferenceWith(other Interval) Interval {
	return NewInterval(setalgebra.DifferenceAtoms(iv.simples, other.simples)...)
}

// Complement returns the complement of iv over the whole real line.
func (iv Interval) Complement() Interval {
	return NewInterval(setalgebra.Complement(iv.simples, fullSpace)...)
}

// Equal reports canonical equality.
func (iv Interval) Equal(other Interval) bool {
	return setalgebra.Equal(iv.simples, other.simples)
}

// Less imposes the partial order from spec.md's AbstractCompositeSet.__lt__:
// compare simples pairwise; the shorter slice sorts first if every compared
// pair is equal.
func (iv Interval) Less(other Interval) bool {
	return setalgebra.Less(iv.simples, other.simples)
}

// Hash returns a value consistent with Equal.
func (iv Interval) Hash() uint64 { return setalgebra.Hash(iv.simples) }

// String renders the interval as the union of its simple intervals.
func (iv Interval) String() string {
	if iv.IsEmpty() {
		return emptySetSymbol
	}
	parts := make([]string, len(iv.simples))
	for i, s := range iv.simples {
		parts[i] = s.String()
	}
	return strings.Join(parts, " u ")
}

type intervalJSON struct {
	Kind       string           `json:"kind"`
	SimpleSets []SimpleInterval `json:"simple_sets"`
}

// MarshalJSON implements json.Marshaler.
func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(intervalJSON{Kind: "interval", SimpleSets: iv.simples})
}

// UnmarshalJSON implements json.Unmarshaler, the inverse of MarshalJSON.
func (iv *Interval) UnmarshalJSON(data []byte) error {
	var raw intervalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*iv = NewInterval(raw.SimpleSets...)
	return nil
}
