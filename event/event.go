// Copyright (c) 2026 boxset authors
//
// MIT License

package event

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/axisbox/boxset/boxerr"
	"github.com/axisbox/boxset/setalgebra"
	"github.com/axisbox/boxset/variable"
)

// Event is a composite set: a finite, sorted, pairwise-disjoint union of
// SimpleEvents. Every SimpleEvent making up an Event is filled to the same
// variable set — the union of every variable mentioned by any of them — at
// construction.
type Event struct {
	simples []SimpleEvent
}

// NewEvent builds a canonical Event from any collection of simple events,
// aligning them to a common variable set, then disjointifying and
// simplifying regardless of whether the input already satisfies those
// invariants.
func NewEvent(simples ...SimpleEvent) Event {
	return newEvent(simples...)
}

func newEvent(simples ...SimpleEvent) Event {
	vars := unionVariables(simples...)
	filled := make([]SimpleEvent, 0, len(simples))
	for _, s := range simples {
		if s.IsEmpty() {
			continue
		}
		filled = append(filled, s.FillMissingVariables(vars))
	}
	atoms := setalgebra.MakeDisjoint(filled)
	atoms = setalgebra.Simplify(atoms)
	return Event{simples: atoms}
}

func unionVariables(simples ...SimpleEvent) []*variable.Variable {
	byName := make(map[string]*variable.Variable)
	for _, s := range simples {
		for _, v := range s.Variables() {
			byName[v.Name()] = v
		}
	}
	result := make([]*variable.Variable, 0, len(byName))
	for _, v := range byName {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result
}

// Empty returns the empty Event.
func Empty() Event { return Event{} }

// SimpleSets returns the canonical, sorted, disjoint simple events making
// up this Event. Callers must not mutate the returned slice.
func (e Event) SimpleSets() []SimpleEvent { return e.simples }

// Variables returns every variable mentioned by any of this Event's simple
// events, sorted by name.
func (e Event) Variables() []*variable.Variable { return unionVariables(e.simples...) }

// IsEmpty reports whether this Event denotes the empty set.
func (e Event) IsEmpty() bool { return len(e.simples) == 0 }

// IsDisjoint reports whether this Event's simple events are pairwise
// disjoint — always true for an Event built through this package, but
// exposed per the public composite contract.
func (e Event) IsDisjoint() bool { return setalgebra.IsDisjoint(e.simples) }

// Contains reports whether point satisfies any one of this Event's simple
// events.
func (e Event) Contains(point map[*variable.Variable]any) bool {
	for _, s := range e.simples {
		if s.Contains(point) {
			return true
		}
	}
	return false
}

// ContainsWithIndex reports whether point satisfies any one of this
// Event's simple events and, if so, the index of the first one that does —
// the dispatch surface probabilistic-model consumers use to resolve which
// region of the event a point falls in. It returns (false, -1) if none
// does.
func (e Event) ContainsWithIndex(point map[*variable.Variable]any) (bool, int) {
	for i, s := range e.simples {
		if s.Contains(point) {
			return true, i
		}
	}
	return false, -1
}

// UnionWith returns the union of e and other.
func (e Event) UnionWith(other Event) Event {
	combined := append(append([]SimpleEvent(nil), e.simples...), other.simples...)
	return newEvent(combined...)
}

// IntersectionWith returns the intersection of e and other.
func (e Event) IntersectionWith(other Event) Event {
	return newEvent(setalgebra.IntersectAtoms(e.simples, other.simples)...)
}

// DifferenceWith returns e minus other: per 4.5.4, `a − b = a ∩ bᶜ` using
// the linear complement.
func (e Event) DifferenceWith(other Event) Event {
	return newEvent(setalgebra.DifferenceAtoms(e.simples, other.simples)...)
}

// MakeDisjoint returns e re-canonicalised: its simple events made pairwise
// disjoint, sorted and simplified. An Event built through this package is
// already in that form, so the result equals e.
func (e Event) MakeDisjoint() Event { return newEvent(e.simples...) }

// Complement returns the complement of e within the product of the full
// domains of every variable e mentions.
func (e Event) Complement() Event {
	vars := e.Variables()
	full := func() []SimpleEvent {
		if len(vars) == 0 {
			return []SimpleEvent{{}}
		}
		entries := make([]simpleEventEntry, len(vars))
		for i, v := range vars {
			entries[i] = simpleEventEntry{variable: v, value: v.Domain()}
		}
		return []SimpleEvent{{entries: entries}}
	}
	atoms := setalgebra.Complement(e.simples, full)
	setalgebra.Sort(atoms)
	atoms = setalgebra.Simplify(atoms)
	return Event{simples: atoms}
}

// alignedSimples fills every simple event of e to vars and re-canonicalises
// the result, for cross-Event comparison (4.5.6).
func (e Event) alignedSimples(vars []*variable.Variable) []SimpleEvent {
	filled := make([]SimpleEvent, len(e.simples))
	for i, s := range e.simples {
		filled[i] = s.FillMissingVariables(vars)
	}
	filled = setalgebra.MakeDisjoint(filled)
	return setalgebra.Simplify(filled)
}

// Equal reports whether e and other, both aligned to the union of their
// variable sets, have identical canonical simple events.
func (e Event) Equal(other Event) bool {
	vars := unionVariables(append(append([]SimpleEvent(nil), e.simples...), other.simples...)...)
	return setalgebra.Equal(e.alignedSimples(vars), other.alignedSimples(vars))
}

// Less imposes the composite partial order from spec.md, after aligning e
// and other to their union variable set.
func (e Event) Less(other Event) bool {
	vars := unionVariables(append(append([]SimpleEvent(nil), e.simples...), other.simples...)...)
	return setalgebra.Less(e.alignedSimples(vars), other.alignedSimples(vars))
}

// Hash returns a value consistent with Equal for Events sharing the same
// variable set — the common case, since every Event built through this
// package fills all of its own simple events to one shared variable set.
func (e Event) Hash() uint64 { return setalgebra.Hash(e.simples) }

// Marginal returns the Event containing only the given variables.
func (e Event) Marginal(variables []*variable.Variable) Event {
	simples := make([]SimpleEvent, len(e.simples))
	for i, s := range e.simples {
		simples[i] = s.Marginal(variables)
	}
	return newEvent(simples...)
}

// BoundingBox returns the smallest SimpleEvent containing e: the
// variable-wise union, across every simple event in e, of each variable's
// assignment.
func (e Event) BoundingBox() SimpleEvent {
	if len(e.simples) == 0 {
		return SimpleEvent{}
	}
	vars := e.Variables()
	entries := make([]simpleEventEntry, 0, len(vars))
	for _, v := range vars {
		var acc variable.Value
		for i, s := range e.simples {
			value := s.lookupOrDomain(v)
			if i == 0 {
				acc = value
				continue
			}
			merged, err := acc.UnionWith(value)
			if err != nil {
				panic(boxerr.New(boxerr.ErrTypeMismatch, "variable %q: %v", v.Name(), err))
			}
			acc = merged
		}
		entries = append(entries, simpleEventEntry{variable: v, value: acc})
	}
	return normalizeSimpleEvent(entries)
}

// FillMissingVariables returns e with every simple event extended to also
// cover every variable in variables, mapped to that variable's full
// domain.
func (e Event) FillMissingVariables(variables []*variable.Variable) Event {
	vars := unionVariables(e.simples...)
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		seen[v.Name()] = true
	}
	for _, v := range variables {
		if !seen[v.Name()] {
			vars = append(vars, v)
			seen[v.Name()] = true
		}
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name() < vars[j].Name() })
	simples := make([]SimpleEvent, len(e.simples))
	for i, s := range e.simples {
		simples[i] = s.FillMissingVariables(vars)
	}
	return Event{simples: simples}
}

// FillMissingVariablesPure is an alias of FillMissingVariables: every Event
// in this package is an immutable value, so there is no separate in-place
// variant to distinguish it from.
func (e Event) FillMissingVariablesPure(variables []*variable.Variable) Event {
	return e.FillMissingVariables(variables)
}

func (e Event) String() string {
	if e.IsEmpty() {
		return emptySetSymbol
	}
	parts := make([]string, len(e.simples))
	for i, s := range e.simples {
		parts[i] = s.String()
	}
	return strings.Join(parts, " u ")
}

type eventJSON struct {
	Kind        string               `json:"kind"`
	Variables   []*variable.Variable `json:"variables"`
	SimpleSets  []json.RawMessage    `json:"simple_sets"`
}

// MarshalJSON implements json.Marshaler.
func (e Event) MarshalJSON() ([]byte, error) {
	raw := eventJSON{Kind: "event", Variables: e.Variables(), SimpleSets: make([]json.RawMessage, len(e.simples))}
	for i, s := range e.simples {
		data, err := s.MarshalJSON()
		if err != nil {
			return nil, err
		}
		raw.SimpleSets[i] = data
	}
	return json.Marshal(raw)
}

// UnmarshalJSON implements json.Unmarshaler, the inverse of MarshalJSON.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw eventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	simples := make([]SimpleEvent, len(raw.SimpleSets))
	for i, s := range raw.SimpleSets {
		if err := json.Unmarshal(s, &simples[i]); err != nil {
			return err
		}
	}
	*e = newEvent(simples...)
	return nil
}
