// Copyright (c) 2026 boxset authors
//
// MIT License

package symbolic

import (
	"encoding/json"
	"strings"

	"github.com/axisbox/boxset/boxerr"
	"github.com/axisbox/boxset/setalgebra"
)

// Set is a composite set: a finite, sorted union of distinct SetElements
// drawn from one common Universe. The zero value is the empty set over a
// nil universe and should not be combined with a non-empty Set; use
// EmptySet(universe) instead when an explicit empty value is needed.
type Set struct {
	universe *Universe
	simples  []SetElement
}

// NewSet looks every symbol up in universe and returns the set containing
// them.
func NewSet(universe *Universe, symbols ...string) (Set, error) {
	elems := make([]SetElement, 0, len(symbols))
	for _, s := range symbols {
		e, err := NewSetElement(universe, s)
		if err != nil {
			return Set{}, err
		}
		elems = append(elems, e)
	}
	return newSet(universe, elems...), nil
}

// FromIterable builds a fresh Universe from the given symbols (order
// preserved, duplicates dropped) and returns the Set spanning every symbol
// in it — i.e. the full domain over that universe, the idiom used when
// declaring a symbolic variable's domain from a literal list of values.
func FromIterable(symbols ...string) (*Universe, Set) {
	universe := NewUniverse(symbols...)
	return universe, newSet(universe, universe.all()...)
}

// EmptySet returns the empty set over universe.
func EmptySet(universe *Universe) Set {
	return Set{universe: universe}
}

func newSet(universe *Universe, elems ...SetElement) Set {
	atoms := setalgebra.MakeDisjoint(elems)
	atoms = setalgebra.Simplify(atoms)
	return Set{universe: universe, simples: atoms}
}

func (s Set) fullSpace() []SetElement { return s.universe.all() }

// Universe returns the universe this set's elements are drawn from.
func (s Set) Universe() *Universe { return s.universe }

// SimpleSets returns the canonical, sorted, distinct elements making up
// this set. Callers must not mutate the returned slice.
func (s Set) SimpleSets() []SetElement { return s.simples }

// IsEmpty reports whether this set denotes the empty set.
func (s Set) IsEmpty() bool { return len(s.simples) == 0 }

// IsDisjoint always holds for a Set built through this package, but is
// exposed per the public composite contract.
func (s Set) IsDisjoint() bool { return setalgebra.IsDisjoint(s.simples) }

// Contains reports whether symbol belongs to this set.
func (s Set) Contains(symbol string) bool {
	for _, e := range s.simples {
		if e.Contains(symbol) {
			return true
		}
	}
	return false
}

func sameUniverse(a, b *Universe) error {
	if !a.Equal(b) {
		return newUniverseMismatchError(a, b)
	}
	return nil
}

// UnionWith returns the union of s and other, failing with
// boxerr.ErrUniverseMismatch if they are drawn from different universes.
func (s Set) UnionWith(other Set) (Set, error) {
	if err := sameUniverse(s.universe, other.universe); err != nil {
		return Set{}, err
	}
	combined := append(append([]SetElement(nil), s.simples...), other.simples...)
	return newSet(s.universe, combined...), nil
}

// IntersectionWith returns the intersection of s and other.
func (s Set) IntersectionWith(other Set) (Set, error) {
	if err := sameUniverse(s.universe, other.universe); err != nil {
		return Set{}, err
	}
	return newSet(s.universe, setalgebra.IntersectAtoms(s.simples, other.simples)...), nil
}

// DifferenceWith returns s minus other.
func (s Set) DifferenceWith(other Set) (Set, error) {
	if err := sameUniverse(s.universe, other.universe); err != nil {
		return Set{}, err
	}
	return newSet(s.universe, setalgebra.DifferenceAtoms(s.simples, other.simples)...), nil
}

// Complement returns the complement of s within its universe. It fails with
// boxerr.ErrEmptyUniverse if s carries no universe (the zero Set).
func (s Set) Complement() (Set, error) {
	if s.universe == nil {
		return Set{}, boxerr.New(boxerr.ErrEmptyUniverse, "set has no universe")
	}
	return newSet(s.universe, setalgebra.Complement(s.simples, s.fullSpace)...), nil
}

// Equal reports canonical equality.
func (s Set) Equal(other Set) bool {
	return setalgebra.Equal(s.simples, other.simples)
}

// Less imposes the composite partial order from spec.md.
func (s Set) Less(other Set) bool {
	return setalgebra.Less(s.simples, other.simples)
}

// Hash returns a value consistent with Equal.
func (s Set) Hash() uint64 { return setalgebra.Hash(s.simples) }

func (s Set) String() string {
	if s.IsEmpty() {
		return emptySetSymbol
	}
	parts := make([]string, len(s.simples))
	for i, e := range s.simples {
		parts[i] = e.String()
	}
	return strings.Join(parts, " u ")
}

type setJSON struct {
	Kind       string       `json:"kind"`
	SimpleSets []SetElement `json:"simple_sets"`
}

// MarshalJSON implements json.Marshaler.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(setJSON{Kind: "set", SimpleSets: s.simples})
}

// UnmarshalJSON implements json.Unmarshaler, the inverse of MarshalJSON. The
// set's universe is recovered from its elements' serialized content.
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw setJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.SimpleSets) == 0 {
		*s = Set{}
		return nil
	}
	universe := raw.SimpleSets[0].universe
	*s = newSet(universe, raw.SimpleSets...)
	return nil
}
