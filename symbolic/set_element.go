// Copyright (c) 2026 boxset authors
//
// MIT License

package symbolic

import (
	"encoding/json"
	"hash/fnv"
)

// emptyIndex is the reserved index marking the EMPTY_SET sentinel.
const emptyIndex = -1

// SetElement is a single symbol from a fixed Universe: the atom of the
// symbolic-set algebra.
type SetElement struct {
	universe *Universe
	index    int
}

// NewSetElement looks symbol up in universe and returns the corresponding
// atom.
func NewSetElement(universe *Universe, symbol string) (SetElement, error) {
	i, ok := universe.IndexOf(symbol)
	if !ok {
		return SetElement{}, &errUnknownSymbol{symbol: symbol, universe: universe}
	}
	return SetElement{universe: universe, index: i}, nil
}

// EmptySetElement returns the canonical empty atom over universe.
func EmptySetElement(universe *Universe) SetElement {
	return SetElement{universe: universe, index: emptyIndex}
}

// Universe returns the universe this element was drawn from.
func (e SetElement) Universe() *Universe { return e.universe }

// Symbol returns the element's symbol. Calling it on the empty sentinel
// panics, mirroring that EMPTY_SET has no symbol by construction.
func (e SetElement) Symbol() string {
	if e.IsEmpty() {
		panic("symbolic: Symbol called on the empty set element")
	}
	return e.universe.Symbol(e.index)
}

// IsEmpty reports whether this atom is the empty sentinel.
func (e SetElement) IsEmpty() bool { return e.index == emptyIndex }

// Contains reports whether this atom denotes symbol.
func (e SetElement) Contains(symbol string) bool {
	if e.IsEmpty() {
		return false
	}
	return e.universe.Symbol(e.index) == symbol
}

// IntersectionWith returns e if e and other denote the same symbol, the
// empty atom otherwise.
func (e SetElement) IntersectionWith(other SetElement) SetElement {
	if e.Equal(other) {
		return e
	}
	return EmptySetElement(e.universeOrElse(other))
}

// Complement returns one atom per symbol of the universe other than this
// one; the complement of the empty atom is every symbol of the universe.
func (e SetElement) Complement() []SetElement {
	all := e.universe.all()
	if e.IsEmpty() {
		return all
	}
	result := make([]SetElement, 0, len(all)-1)
	for _, a := range all {
		if a.index != e.index {
			result = append(result, a)
		}
	}
	return result
}

// TryMerge never merges two distinct symbols into a single atom — a
// symbolic composite's "simplification" is just deduplication, which
// MakeDisjoint already performs.
func (e SetElement) TryMerge(other SetElement) (SetElement, bool) {
	if e.IsEmpty() {
		return other, true
	}
	if other.IsEmpty() {
		return e, true
	}
	if e.Equal(other) {
		return e, true
	}
	return SetElement{}, false
}

// Equal reports structural equality: both empty, or the same index within
// equal universes.
func (e SetElement) Equal(other SetElement) bool {
	if e.IsEmpty() || other.IsEmpty() {
		return e.IsEmpty() && other.IsEmpty()
	}
	return e.universe.Equal(other.universe) && e.index == other.index
}

// Less orders elements by index, with the empty atom sorting first.
func (e SetElement) Less(other SetElement) bool {
	if e.IsEmpty() != other.IsEmpty() {
		return e.IsEmpty()
	}
	return e.index < other.index
}

// Hash returns a value consistent with Equal.
func (e SetElement) Hash() uint64 {
	h := fnv.New64a()
	if e.IsEmpty() {
		h.Write([]byte("empty-set-element"))
		return h.Sum64()
	}
	for _, s := range e.universe.symbols {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	h.Write([]byte{byte(e.index)})
	return h.Sum64()
}

func (e SetElement) universeOrElse(other SetElement) *Universe {
	if e.universe != nil {
		return e.universe
	}
	return other.universe
}

func (e SetElement) String() string {
	if e.IsEmpty() {
		return emptySetSymbol
	}
	return e.Symbol()
}

type setElementJSON struct {
	Kind    string   `json:"kind"`
	Value   *string  `json:"value"`
	Content []string `json:"content"`
}

// MarshalJSON implements json.Marshaler.
func (e SetElement) MarshalJSON() ([]byte, error) {
	raw := setElementJSON{Kind: "set_element", Content: e.universe.Symbols()}
	if !e.IsEmpty() {
		symbol := e.Symbol()
		raw.Value = &symbol
	}
	return json.Marshal(raw)
}

// UnmarshalJSON implements json.Unmarshaler, the inverse of MarshalJSON.
func (e *SetElement) UnmarshalJSON(data []byte) error {
	var raw setElementJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	universe := NewUniverse(raw.Content...)
	if raw.Value == nil {
		*e = EmptySetElement(universe)
		return nil
	}
	elem, err := NewSetElement(universe, *raw.Value)
	if err != nil {
		return err
	}
	*e = elem
	return nil
}
