// Copyright (c) 2026 boxset authors
//
// MIT License

package variable

import (
	"encoding/json"

	"github.com/axisbox/boxset/boxerr"
	"github.com/axisbox/boxset/interval"
	"github.com/axisbox/boxset/symbolic"
)

// Variable is a named dimension of a product event, carrying the domain
// algebra its assigned values must belong to. Two Variables are equal, and
// ordered, by Name alone — a Symbolic variable's Universe and a numeric
// variable's bounds play no part in identity, mirroring the original
// implementation's AbstractVariable.__eq__/__lt__.
type Variable struct {
	name   string
	kind   Kind
	domain Value
}

// NewSymbolic returns a Symbolic variable named name, whose domain is
// domain.
func NewSymbolic(name string, domain symbolic.Set) *Variable {
	return &Variable{name: name, kind: Symbolic, domain: SetValue(domain)}
}

// NewInteger returns an Integer variable named name. Its domain is the
// unbounded real line: the catalog carries no finite default range for
// integers, matching the resolved reading of the original implementation's
// IntegerVariable (see DESIGN.md).
func NewInteger(name string) *Variable {
	return &Variable{name: name, kind: Integer, domain: IntervalValue(interval.Reals())}
}

// NewContinuous returns a Continuous variable named name, with the whole
// real line as its domain.
func NewContinuous(name string) *Variable {
	return &Variable{name: name, kind: Continuous, domain: IntervalValue(interval.Reals())}
}

// Name returns the variable's name.
func (v *Variable) Name() string { return v.name }

// Kind returns the variable's kind.
func (v *Variable) Kind() Kind { return v.kind }

// Domain returns the variable's domain as a Value.
func (v *Variable) Domain() Value { return v.domain }

// Equal reports whether v and other share a name.
func (v *Variable) Equal(other *Variable) bool { return v.name == other.name }

// Less orders variables lexicographically by name.
func (v *Variable) Less(other *Variable) bool { return v.name < other.name }

// MakeValue parses an arbitrary Go value into v's native composite type,
// without checking it against v's domain. Accepted shapes:
//
//   - Symbolic: string (singleton), []string, or symbolic.Set directly.
//   - Integer, Continuous: float64 or int (singleton), [2]float64 or
//     []float64 of length 2 (closed interval [lo, hi]), or
//     interval.Interval directly.
//
// Any other shape, or a symbolic.Set/interval.Interval that does not belong
// to v's own domain algebra, fails with boxerr.ErrTypeMismatch.
func (v *Variable) MakeValue(raw any) (Value, error) {
	if v.kind == Symbolic {
		return v.makeSymbolicValue(raw)
	}
	return v.makeNumericValue(raw)
}

func (v *Variable) makeSymbolicValue(raw any) (Value, error) {
	universe, _ := v.domain.AsSet()
	switch x := raw.(type) {
	case symbolic.Set:
		return SetValue(x), nil
	case string:
		s, err := symbolic.NewSet(universe.Universe(), x)
		if err != nil {
			return Value{}, err
		}
		return SetValue(s), nil
	case []string:
		s, err := symbolic.NewSet(universe.Universe(), x...)
		if err != nil {
			return Value{}, err
		}
		return SetValue(s), nil
	default:
		return Value{}, boxerr.New(boxerr.ErrTypeMismatch, "cannot make a symbolic value for variable %q from %T", v.name, raw)
	}
}

func (v *Variable) makeNumericValue(raw any) (Value, error) {
	switch x := raw.(type) {
	case interval.Interval:
		return IntervalValue(x), nil
	case float64:
		return IntervalValue(interval.Singleton(x)), nil
	case int:
		return IntervalValue(interval.Singleton(float64(x))), nil
	case [2]float64:
		return IntervalValue(interval.Closed(x[0], x[1])), nil
	case []float64:
		if len(x) != 2 {
			return Value{}, boxerr.New(boxerr.ErrTypeMismatch, "variable %q: expected a 2-element bound, got %d elements", v.name, len(x))
		}
		return IntervalValue(interval.Closed(x[0], x[1])), nil
	default:
		return Value{}, boxerr.New(boxerr.ErrTypeMismatch, "cannot make a numeric value for variable %q from %T", v.name, raw)
	}
}

// Assign parses raw through MakeValue and checks the result against v's
// domain, failing with boxerr.ErrDomainEscape if the parsed value is not a
// subset of the domain.
func (v *Variable) Assign(raw any) (Value, error) {
	value, err := v.MakeValue(raw)
	if err != nil {
		return Value{}, err
	}
	ok, err := value.IsSubsetOf(v.domain)
	if err != nil {
		return Value{}, err
	}
	if !ok {
		return Value{}, boxerr.New(boxerr.ErrDomainEscape, "value %s escapes the domain of variable %q", value, v.name)
	}
	return value, nil
}

func (v *Variable) String() string { return v.name }

type variableJSON struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Domain Value  `json:"domain"`
}

// MarshalJSON implements json.Marshaler.
func (v *Variable) MarshalJSON() ([]byte, error) {
	return json.Marshal(variableJSON{Name: v.name, Kind: v.kind.String(), Domain: v.domain})
}

// UnmarshalJSON implements json.Unmarshaler, the inverse of MarshalJSON.
func (v *Variable) UnmarshalJSON(data []byte) error {
	var raw variableJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.name = raw.Name
	v.domain = raw.Domain
	switch raw.Kind {
	case Symbolic.String():
		v.kind = Symbolic
	case Integer.String():
		v.kind = Integer
	default:
		v.kind = Continuous
	}
	return nil
}
