// Copyright (c) 2026 boxset authors
//
// MIT License

package event

import (
	"encoding/json"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/axisbox/boxset/boxerr"
	"github.com/axisbox/boxset/variable"
)

type simpleEventEntry struct {
	variable *variable.Variable
	value    variable.Value
}

// SimpleEvent is a map from Variable to the atom of that variable's domain
// algebra it is constrained to — the atom of the product event algebra.
// Logically, a SimpleEvent denotes the Cartesian product of its listed
// constraints, intersected with the full domain of every variable it does
// not mention. The zero value is the "universal" SimpleEvent: no
// constraints at all, equivalent to the whole ambient space. Use
// EmptySimpleEvent for the empty set instead.
type SimpleEvent struct {
	entries []simpleEventEntry
	empty   bool
}

// NewSimpleEvent builds a SimpleEvent from a map of variable assignments.
func NewSimpleEvent(assignments map[*variable.Variable]variable.Value) SimpleEvent {
	entries := make([]simpleEventEntry, 0, len(assignments))
	for v, val := range assignments {
		entries = append(entries, simpleEventEntry{variable: v, value: val})
	}
	return normalizeSimpleEvent(entries)
}

// NewSimpleEventFromRaw builds a SimpleEvent the way NewSimpleEvent does,
// except each assignment is a raw value — a float64, a string, a
// `[2]float64` pair, and so on — parsed through that variable's own
// MakeValue instead of a pre-built interval.Interval/symbolic.Set. It fails
// with the first variable's MakeValue error, if any.
func NewSimpleEventFromRaw(assignments map[*variable.Variable]any) (SimpleEvent, error) {
	entries := make([]simpleEventEntry, 0, len(assignments))
	for v, raw := range assignments {
		value, err := v.MakeValue(raw)
		if err != nil {
			return SimpleEvent{}, err
		}
		entries = append(entries, simpleEventEntry{variable: v, value: value})
	}
	return normalizeSimpleEvent(entries), nil
}

// EmptySimpleEvent returns the empty SimpleEvent.
func EmptySimpleEvent() SimpleEvent { return SimpleEvent{empty: true} }

func normalizeSimpleEvent(entries []simpleEventEntry) SimpleEvent {
	sort.Slice(entries, func(i, j int) bool { return entries[i].variable.Name() < entries[j].variable.Name() })
	for _, e := range entries {
		if e.value.IsEmpty() {
			return EmptySimpleEvent()
		}
	}
	return SimpleEvent{entries: entries}
}

// Variables returns the variables this SimpleEvent constrains, sorted by
// name. Callers must not mutate the returned slice.
func (se SimpleEvent) Variables() []*variable.Variable {
	result := make([]*variable.Variable, len(se.entries))
	for i, e := range se.entries {
		result[i] = e.variable
	}
	return result
}

// Get returns the value assigned to v, and true, or false if se does not
// mention v (in which case v's own full domain applies).
func (se SimpleEvent) Get(v *variable.Variable) (variable.Value, bool) {
	for _, e := range se.entries {
		if e.variable.Name() == v.Name() {
			return e.value, true
		}
	}
	return variable.Value{}, false
}

// AsCompositeSet lifts se to the Event containing exactly se.
func (se SimpleEvent) AsCompositeSet() Event { return NewEvent(se) }

// IsEmpty reports whether se denotes the empty set.
func (se SimpleEvent) IsEmpty() bool { return se.empty }

// Marginal returns se restricted to the given variables, dropping every
// other assignment.
func (se SimpleEvent) Marginal(variables []*variable.Variable) SimpleEvent {
	if se.empty {
		return se
	}
	wanted := make(map[string]bool, len(variables))
	for _, v := range variables {
		wanted[v.Name()] = true
	}
	entries := make([]simpleEventEntry, 0, len(variables))
	for _, e := range se.entries {
		if wanted[e.variable.Name()] {
			entries = append(entries, e)
		}
	}
	return normalizeSimpleEvent(entries)
}

// FillMissingVariables returns se extended with every variable in
// variables that se does not already mention, mapped to that variable's
// full domain.
func (se SimpleEvent) FillMissingVariables(variables []*variable.Variable) SimpleEvent {
	if se.empty {
		return se
	}
	byName := make(map[string]*variable.Variable, len(se.entries)+len(variables))
	for _, e := range se.entries {
		byName[e.variable.Name()] = e.variable
	}
	for _, v := range variables {
		if _, ok := byName[v.Name()]; !ok {
			byName[v.Name()] = v
		}
	}
	entries := make([]simpleEventEntry, 0, len(byName))
	for _, v := range byName {
		entries = append(entries, simpleEventEntry{variable: v, value: se.lookupOrDomain(v)})
	}
	return normalizeSimpleEvent(entries)
}

// FillMissingVariablesPure is an alias of FillMissingVariables: every
// SimpleEvent in this package is an immutable value, so there is no
// separate in-place variant to distinguish it from.
func (se SimpleEvent) FillMissingVariablesPure(variables []*variable.Variable) SimpleEvent {
	return se.FillMissingVariables(variables)
}

func (se SimpleEvent) lookupOrDomain(v *variable.Variable) variable.Value {
	if value, ok := se.Get(v); ok {
		return value
	}
	return v.Domain()
}

// alignPair returns se and other, both extended to the union of their
// variable sets (4.5.1 "fill and align"), with entries in the same
// variable order.
func alignPair(se, other SimpleEvent) (SimpleEvent, SimpleEvent) {
	vars := se.Variables()
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		seen[v.Name()] = true
	}
	for _, v := range other.Variables() {
		if !seen[v.Name()] {
			vars = append(vars, v)
			seen[v.Name()] = true
		}
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name() < vars[j].Name() })

	a := make([]simpleEventEntry, len(vars))
	b := make([]simpleEventEntry, len(vars))
	for i, v := range vars {
		a[i] = simpleEventEntry{variable: v, value: se.lookupOrDomain(v)}
		b[i] = simpleEventEntry{variable: v, value: other.lookupOrDomain(v)}
	}
	return SimpleEvent{entries: a}, SimpleEvent{entries: b}
}

// IntersectionWith returns the pointwise intersection of se and other: for
// every variable in the union of their domains, the intersection of their
// (possibly implicit, full-domain) assignments. The result is empty as
// soon as any one variable's intersection is empty.
func (se SimpleEvent) IntersectionWith(other SimpleEvent) SimpleEvent {
	if se.empty || other.empty {
		return EmptySimpleEvent()
	}
	a, b := alignPair(se, other)
	entries := make([]simpleEventEntry, len(a.entries))
	for i := range a.entries {
		v, err := a.entries[i].value.IntersectionWith(b.entries[i].value)
		if err != nil {
			panic(boxerr.New(boxerr.ErrTypeMismatch, "variable %q disagrees on kind between simple events: %v", a.entries[i].variable.Name(), err))
		}
		entries[i] = simpleEventEntry{variable: a.entries[i].variable, value: v}
	}
	return normalizeSimpleEvent(entries)
}

// Complement implements the linear-term product complement (4.5.3): for a
// SimpleEvent over n variables A₁×…×Aₙ, it returns at most n SimpleEvents —
// the i-th replaces Aᵢ with its complement and leaves every Aⱼ, j<i,
// unchanged and every Aⱼ, j>i, widened to its variable's full domain. Their
// union is the complement of se in the ambient product space; empty terms
// are dropped.
func (se SimpleEvent) Complement() []SimpleEvent {
	if se.empty {
		return []SimpleEvent{{}}
	}
	if len(se.entries) == 0 {
		return nil
	}
	result := make([]SimpleEvent, 0, len(se.entries))
	for i := range se.entries {
		entries := make([]simpleEventEntry, len(se.entries))
		for j, e := range se.entries {
			switch {
			case j < i:
				entries[j] = e
			case j == i:
				complement, err := e.value.Complement()
				if err != nil {
					panic(boxerr.New(boxerr.ErrTypeMismatch, "variable %q: %v", e.variable.Name(), err))
				}
				entries[j] = simpleEventEntry{variable: e.variable, value: complement}
			default:
				entries[j] = simpleEventEntry{variable: e.variable, value: e.variable.Domain()}
			}
		}
		candidate := normalizeSimpleEvent(entries)
		if !candidate.IsEmpty() {
			result = append(result, candidate)
		}
	}
	return result
}

// TryMerge only ever merges two structurally equal SimpleEvents into one:
// the product layer's make_disjoint (4.5.5) only needs deduplication, since
// two axis-aligned boxes touching along a single axis do not in general
// combine into a single box.
func (se SimpleEvent) TryMerge(other SimpleEvent) (SimpleEvent, bool) {
	if se.Equal(other) {
		return se, true
	}
	return SimpleEvent{}, false
}

// Equal reports whether se and other, aligned, assign equal values to
// every variable in their union.
func (se SimpleEvent) Equal(other SimpleEvent) bool {
	if se.empty || other.empty {
		return se.empty == other.empty
	}
	a, b := alignPair(se, other)
	for i := range a.entries {
		if !a.entries[i].value.Equal(b.entries[i].value) {
			return false
		}
	}
	return true
}

// Less imposes a total order: the empty SimpleEvent sorts first; otherwise
// se and other are aligned and compared variable by variable, in name
// order, falling back to fewer variables sorting first.
func (se SimpleEvent) Less(other SimpleEvent) bool {
	if se.empty != other.empty {
		return se.empty
	}
	if se.empty {
		return false
	}
	a, b := alignPair(se, other)
	for i := range a.entries {
		if a.entries[i].value.Equal(b.entries[i].value) {
			continue
		}
		return a.entries[i].value.Less(b.entries[i].value)
	}
	return len(se.entries) < len(other.entries)
}

// Hash returns a value consistent with Equal for SimpleEvents sharing the
// same variable set — the common case, since an Event always fills every
// one of its SimpleEvents to the same variable set at construction.
func (se SimpleEvent) Hash() uint64 {
	h := fnv.New64a()
	if se.empty {
		h.Write([]byte("empty-simple-event"))
		return h.Sum64()
	}
	for _, e := range se.entries {
		h.Write([]byte(e.variable.Name()))
		h.Write([]byte{0})
		var buf [8]byte
		v := e.value.Hash()
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Contains reports whether point — a map from variable to the raw value
// expected by that variable's domain algebra (a float64 or a string) —
// satisfies every assignment se makes. point's keys are matched by
// variable name, not pointer identity, so a point built against a
// different *variable.Variable instance of the same variable (e.g. one
// decoded from JSON) still matches.
func (se SimpleEvent) Contains(point map[*variable.Variable]any) bool {
	if se.empty {
		return false
	}
	for _, e := range se.entries {
		raw, ok := lookupPoint(point, e.variable)
		if !ok || !e.value.Contains(raw) {
			return false
		}
	}
	return true
}

func lookupPoint(point map[*variable.Variable]any, v *variable.Variable) (any, bool) {
	if raw, ok := point[v]; ok {
		return raw, true
	}
	for other, raw := range point {
		if other.Name() == v.Name() {
			return raw, true
		}
	}
	return nil, false
}

func (se SimpleEvent) String() string {
	if se.empty {
		return emptySetSymbol
	}
	if len(se.entries) == 0 {
		return "{}"
	}
	parts := make([]string, len(se.entries))
	for i, e := range se.entries {
		parts[i] = e.variable.Name() + " ∈ " + e.value.String()
	}
	return "{\n    " + strings.Join(parts, ",\n    ") + "\n}"
}

type simpleEventJSON struct {
	Kind        string             `json:"kind"`
	Variables   []*variable.Variable `json:"variables"`
	Assignments []variable.Value   `json:"assignments"`
}

// MarshalJSON implements json.Marshaler.
func (se SimpleEvent) MarshalJSON() ([]byte, error) {
	if se.empty {
		return json.Marshal(simpleEventJSON{Kind: "simple_event"})
	}
	raw := simpleEventJSON{
		Kind:        "simple_event",
		Variables:   make([]*variable.Variable, len(se.entries)),
		Assignments: make([]variable.Value, len(se.entries)),
	}
	for i, e := range se.entries {
		raw.Variables[i] = e.variable
		raw.Assignments[i] = e.value
	}
	return json.Marshal(raw)
}

// UnmarshalJSON implements json.Unmarshaler, the inverse of MarshalJSON.
func (se *SimpleEvent) UnmarshalJSON(data []byte) error {
	var raw simpleEventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	entries := make([]simpleEventEntry, len(raw.Variables))
	for i := range raw.Variables {
		entries[i] = simpleEventEntry{variable: raw.Variables[i], value: raw.Assignments[i]}
	}
	*se = normalizeSimpleEvent(entries)
	return nil
}
