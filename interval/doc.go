// Copyright (c) 2026 boxset authors
//
// MIT License

/*
Package interval implements the one-dimensional algebra over the real line:
SimpleInterval (the atom, C2's SimpleSet) and Interval (the composite, a
sorted, disjoint, simplified union of SimpleIntervals).

Bound arithmetic follows the Design Notes in spec.md: SimpleInterval.Less
compares endpoints as a (value, tie-breaker) pair, with Bound ordered CLOSED
before OPEN. Intersection and simplification compare endpoint values and
decide a tie at a shared value by the bound types (OPEN wins for
intersection, CLOSED for merging); complement flips each bound. The one
non-trivial primitive is
SimpleInterval.Complement: unlike a symbolic atom (whose complement needs no
arithmetic), an interval's complement is the disjoint union of a
left-unbounded and a right-unbounded remainder, computed in constant time
rather than by scanning the ambient space.
*/
package interval
