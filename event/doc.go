// Copyright (c) 2026 boxset authors
//
// MIT License

/*
Package event implements the product event algebra (C5): multivariate
events over a Cartesian product of variable domains, built from
SimpleEvents (an axis-aligned "box" — a map from Variable to the atom of
that variable's own algebra it is constrained to) and Events (a sorted,
disjoint union of SimpleEvents).

SimpleEvent is this package's setalgebra.Atom: the product layer's
MakeDisjoint, Simplify, union/intersection/difference/complement
reductions all run through the same generic algorithms setalgebra's other
two consumers (interval, symbolic) use, parameterised by SimpleEvent's
IntersectionWith/Complement/IsEmpty/Equal/Less/TryMerge/Hash.

The headline feature is SimpleEvent.Complement: where the naive identity
(A₁×…×Aₙ)ᶜ has 2ⁿ−1 disjoint terms, this package materialises at most n —
one per variable, holding that variable's own complement, the original
assignment of every earlier variable and the full domain of every later
one. Terms whose variable's complement is empty are dropped.

Every operation that combines two SimpleEvents first aligns them: any
variable present in one but not the other is inserted with its full
domain, so the Cartesian-product contract ("unlisted variables range over
their whole domain") holds at every step.
*/
package event
