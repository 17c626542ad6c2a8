// Copyright (c) 2026 boxset authors
//
// MIT License

package boxset

import (
	"github.com/axisbox/boxset/event"
	"github.com/axisbox/boxset/interval"
	"github.com/axisbox/boxset/symbolic"
	"github.com/axisbox/boxset/variable"
)

// Interval is the composite set of the one-dimensional interval algebra
// over the real line.
type Interval = interval.Interval

// Set is the composite set of the one-dimensional algebra over a fixed
// Universe of symbols.
type Set = symbolic.Set

// Universe is a fixed, finite collection of symbols a Set's elements are
// drawn from.
type Universe = symbolic.Universe

// Variable is a named, typed dimension of a product event.
type Variable = variable.Variable

// Value is the domain/assignment value of a Variable: an Interval for a
// Continuous or Integer variable, a Set for a Symbolic one.
type Value = variable.Value

// SimpleEvent is an assignment of variables to values — a single
// axis-aligned box.
type SimpleEvent = event.SimpleEvent

// Event is a disjoint union of SimpleEvents.
type Event = event.Event

// OpenInterval returns the open interval (left, right).
func OpenInterval(left, right float64) Interval { return interval.Open(left, right) }

// ClosedInterval returns the closed interval [left, right].
func ClosedInterval(left, right float64) Interval { return interval.Closed(left, right) }

// OpenClosedInterval returns the interval (left, right].
func OpenClosedInterval(left, right float64) Interval { return interval.OpenClosed(left, right) }

// ClosedOpenInterval returns the interval [left, right).
func ClosedOpenInterval(left, right float64) Interval { return interval.ClosedOpen(left, right) }

// SingletonInterval returns the degenerate interval containing exactly
// value.
func SingletonInterval(value float64) Interval { return interval.Singleton(value) }

// Reals returns the interval spanning every real number.
func Reals() Interval { return interval.Reals() }

// EmptyInterval returns the empty interval.
func EmptyInterval() Interval { return interval.Empty() }

// NewUniverse returns a Universe containing the given symbols, in order,
// with duplicates dropped.
func NewUniverse(symbols ...string) *Universe { return symbolic.NewUniverse(symbols...) }

// NewSet looks every symbol up in universe and returns the Set containing
// them.
func NewSet(universe *Universe, symbols ...string) (Set, error) {
	return symbolic.NewSet(universe, symbols...)
}

// SetFromIterable builds a fresh Universe from symbols and returns the Set
// spanning every one of them — the idiom for declaring a symbolic
// variable's full domain from a literal list of values.
func SetFromIterable(symbols ...string) (*Universe, Set) { return symbolic.FromIterable(symbols...) }

// EmptySet returns the empty Set over universe.
func EmptySet(universe *Universe) Set { return symbolic.EmptySet(universe) }

// NewSymbolicVariable returns a Symbolic variable named name with the
// given domain.
func NewSymbolicVariable(name string, domain Set) *Variable { return variable.NewSymbolic(name, domain) }

// NewIntegerVariable returns an Integer variable named name, whose domain
// is the unbounded real line.
func NewIntegerVariable(name string) *Variable { return variable.NewInteger(name) }

// NewContinuousVariable returns a Continuous variable named name, whose
// domain is the unbounded real line.
func NewContinuousVariable(name string) *Variable { return variable.NewContinuous(name) }

// IntervalValue wraps iv as a numeric Value.
func IntervalValue(iv Interval) Value { return variable.IntervalValue(iv) }

// SetValue wraps s as a symbolic Value.
func SetValue(s Set) Value { return variable.SetValue(s) }

// NewSimpleEvent builds a SimpleEvent from a map of variable assignments.
func NewSimpleEvent(assignments map[*Variable]Value) SimpleEvent {
	return event.NewSimpleEvent(assignments)
}

// NewSimpleEventFromRaw builds a SimpleEvent from a map of raw values (a
// float64, a string, a [2]float64 pair, and so on), parsed through each
// variable's own MakeValue.
func NewSimpleEventFromRaw(assignments map[*Variable]any) (SimpleEvent, error) {
	return event.NewSimpleEventFromRaw(assignments)
}

// EmptySimpleEvent returns the empty SimpleEvent.
func EmptySimpleEvent() SimpleEvent { return event.EmptySimpleEvent() }

// NewEvent builds a canonical Event from any collection of simple events.
func NewEvent(simples ...SimpleEvent) Event { return event.NewEvent(simples...) }

// EmptyEvent returns the empty Event.
func EmptyEvent() Event { return event.Empty() }
