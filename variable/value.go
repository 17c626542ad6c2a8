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

// Value is the composite a single variable's domain, or a single variable's
// assignment within a SimpleEvent, is represented as: either an
// interval.Interval (Integer and Continuous variables) or a symbolic.Set
// (Symbolic variables). The zero Value is Symbolic: the empty symbolic.Set
// with no universe.
//
// Two Values interoperate only when they carry the same Kind; every
// operation that combines two Values fails with boxerr.ErrTypeMismatch
// rather than panicking when the kinds disagree, since the mismatch is
// always a caller error one layer up (a SimpleEvent assigning a symbolic
// value to a continuous variable, say) rather than an algebraic one.
type Value struct {
	kind     Kind
	interval interval.Interval
	set      symbolic.Set
}

// IntervalValue wraps iv as a numeric Value.
func IntervalValue(iv interval.Interval) Value {
	return Value{kind: Continuous, interval: iv}
}

// SetValue wraps s as a symbolic Value.
func SetValue(s symbolic.Set) Value {
	return Value{kind: Symbolic, set: s}
}

// Kind reports which domain algebra this Value wraps: Symbolic or
// Continuous. A Value never reports Integer — Integer and Continuous
// variables share one numeric representation, and the distinction only
// matters at the Variable level.
func (v Value) Kind() Kind { return v.kind }

// AsInterval returns the wrapped interval.Interval and true, or the zero
// interval and false if v is not numeric.
func (v Value) AsInterval() (interval.Interval, bool) {
	if v.kind.isNumeric() {
		return v.interval, true
	}
	return interval.Interval{}, false
}

// AsSet returns the wrapped symbolic.Set and true, or the zero Set and
// false if v is not symbolic.
func (v Value) AsSet() (symbolic.Set, bool) {
	if v.kind == Symbolic {
		return v.set, true
	}
	return symbolic.Set{}, false
}

// IsEmpty reports whether v denotes the empty set within its domain
// algebra.
func (v Value) IsEmpty() bool {
	if v.kind == Symbolic {
		return v.set.IsEmpty()
	}
	return v.interval.IsEmpty()
}

func newTypeMismatch(a, b Value) error {
	return boxerr.New(boxerr.ErrTypeMismatch, "value kinds %s and %s differ", a.kind, b.kind)
}

// UnionWith returns the union of v and other.
func (v Value) UnionWith(other Value) (Value, error) {
	if v.kind == Symbolic || other.kind == Symbolic {
		if v.kind != other.kind {
			return Value{}, newTypeMismatch(v, other)
		}
		union, err := v.set.UnionWith(other.set)
		if err != nil {
			return Value{}, err
		}
		return SetValue(union), nil
	}
	return IntervalValue(v.interval.UnionWith(other.interval)), nil
}

// IntersectionWith returns the intersection of v and other.
func (v Value) IntersectionWith(other Value) (Value, error) {
	if v.kind == Symbolic || other.kind == Symbolic {
		if v.kind != other.kind {
			return Value{}, newTypeMismatch(v, other)
		}
		inter, err := v.set.IntersectionWith(other.set)
		if err != nil {
			return Value{}, err
		}
		return SetValue(inter), nil
	}
	return IntervalValue(v.interval.IntersectionWith(other.interval)), nil
}

// DifferenceWith returns v minus other.
func (v Value) DifferenceWith(other Value) (Value, error) {
	if v.kind == Symbolic || other.kind == Symbolic {
		if v.kind != other.kind {
			return Value{}, newTypeMismatch(v, other)
		}
		diff, err := v.set.DifferenceWith(other.set)
		if err != nil {
			return Value{}, err
		}
		return SetValue(diff), nil
	}
	return IntervalValue(v.interval.DifferenceWith(other.interval)), nil
}

// Complement returns the complement of v within its own domain algebra — the
// whole real line for a numeric Value, v's own Universe for a symbolic one.
// It fails with boxerr.ErrEmptyUniverse for a symbolic Value with no
// universe.
func (v Value) Complement() (Value, error) {
	if v.kind == Symbolic {
		complement, err := v.set.Complement()
		if err != nil {
			return Value{}, err
		}
		return SetValue(complement), nil
	}
	return IntervalValue(v.interval.Complement()), nil
}

// IsSubsetOf reports whether v is contained in other: v ∩ other == v. It
// fails with boxerr.ErrTypeMismatch if v and other carry different kinds.
func (v Value) IsSubsetOf(other Value) (bool, error) {
	inter, err := v.IntersectionWith(other)
	if err != nil {
		return false, err
	}
	return inter.Equal(v), nil
}

// Contains reports whether point — a float64 for a numeric Value, a string
// for a symbolic one — belongs to v. A point of the wrong Go type always
// reports false.
func (v Value) Contains(point any) bool {
	switch v.kind {
	case Symbolic:
		symbol, ok := point.(string)
		return ok && v.set.Contains(symbol)
	default:
		x, ok := point.(float64)
		return ok && v.interval.Contains(x)
	}
}

// Equal reports canonical equality. Values of different kinds are never
// equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == Symbolic {
		return v.set.Equal(other.set)
	}
	return v.interval.Equal(other.interval)
}

// Less imposes an arbitrary but total order between Values of the same
// kind; Values of different kinds order by Kind.
func (v Value) Less(other Value) bool {
	if v.kind != other.kind {
		return v.kind < other.kind
	}
	if v.kind == Symbolic {
		return v.set.Less(other.set)
	}
	return v.interval.Less(other.interval)
}

// Hash returns a value consistent with Equal.
func (v Value) Hash() uint64 {
	if v.kind == Symbolic {
		return v.set.Hash()
	}
	return v.interval.Hash()
}

func (v Value) String() string {
	if v.kind == Symbolic {
		return v.set.String()
	}
	return v.interval.String()
}

type valueJSON struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	var inner interface{ MarshalJSON() ([]byte, error) }
	if v.kind == Symbolic {
		inner = v.set
	} else {
		inner = v.interval
	}
	raw, err := inner.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(valueJSON{Kind: v.kind.String(), Value: raw})
}

// UnmarshalJSON implements json.Unmarshaler, the inverse of MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw valueJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Kind == Symbolic.String() {
		var s symbolic.Set
		if err := json.Unmarshal(raw.Value, &s); err != nil {
			return err
		}
		*v = SetValue(s)
		return nil
	}
	var iv interval.Interval
	if err := json.Unmarshal(raw.Value, &iv); err != nil {
		return err
	}
	*v = IntervalValue(iv)
	return nil
}
