// Copyright (c) 2026 boxset authors
//
// MIT License

/*
Package variable implements the variable catalog (C4): typed, totally
ordered identifiers for the dimensions of a product event, each owning the
domain algebra (interval.Interval or symbolic.Set) its values are drawn
from.

Value is the tagged union a Variable's domain and a SimpleEvent's
per-variable assignment are both represented as — a Continuous or Integer
variable's Value always wraps an interval.Interval, a Symbolic variable's
always wraps a symbolic.Set. Operating on two Values of different kinds is
a boxerr.ErrTypeMismatch, not a panic. The event package does not check a
SimpleEvent's assignments against their variables' kinds when it is built;
when two SimpleEvents are intersected, it turns such an error into a panic
wrapping boxerr.ErrTypeMismatch.
*/
package variable
