// Copyright (c) 2026 boxset authors
//
// MIT License

package symbolic

import "strings"

// Universe is the fixed, ordered set of symbols a family of SetElements and
// Sets is drawn from. Universes compare by content, not by identity, so two
// independently constructed Universes with the same symbols in the same
// order are interchangeable — this lets two processes reconstruct
// structurally-equal values, matching spec.md's determinism note.
type Universe struct {
	symbols []string
	index   map[string]int
}

// NewUniverse constructs a Universe from an ordered, deduplicated list of
// symbols. Symbols must be unique; duplicates after the first are dropped.
func NewUniverse(symbols ...string) *Universe {
	u := &Universe{index: make(map[string]int, len(symbols))}
	for _, s := range symbols {
		if _, ok := u.index[s]; ok {
			continue
		}
		u.index[s] = len(u.symbols)
		u.symbols = append(u.symbols, s)
	}
	return u
}

// Len returns the number of symbols in the universe.
func (u *Universe) Len() int { return len(u.symbols) }

// Symbol returns the symbol at the given index.
func (u *Universe) Symbol(i int) string { return u.symbols[i] }

// IndexOf returns the index of symbol within the universe.
func (u *Universe) IndexOf(symbol string) (int, bool) {
	i, ok := u.index[symbol]
	return i, ok
}

// Symbols returns a copy of the universe's symbols in order.
func (u *Universe) Symbols() []string {
	out := make([]string, len(u.symbols))
	copy(out, u.symbols)
	return out
}

// Equal reports whether two universes contain the same symbols in the same
// order.
func (u *Universe) Equal(other *Universe) bool {
	if u == other {
		return true
	}
	if u == nil || other == nil {
		return false
	}
	if len(u.symbols) != len(other.symbols) {
		return false
	}
	for i, s := range u.symbols {
		if other.symbols[i] != s {
			return false
		}
	}
	return true
}

func (u *Universe) String() string {
	return "{" + strings.Join(u.symbols, ", ") + "}"
}

// all returns one SetElement per symbol in the universe, the atom-level
// representation of the full universe used as the ambient space for
// complement.
func (u *Universe) all() []SetElement {
	out := make([]SetElement, u.Len())
	for i := range u.symbols {
		out[i] = SetElement{universe: u, index: i}
	}
	return out
}
