// Copyright (c) 2026 boxset authors
//
// MIT License

/*
Package setalgebra implements the abstract set algebra shared by every
concrete one-dimensional domain in this module (intervals, symbolic sets,
and the product-of-variables events built on top of them).

The package defines a single capability interface, Atom, and a handful of
free functions — Simplify, IntersectAtoms, DifferenceAtoms, Complement,
MakeDisjoint — that implement the generic algorithm exactly once, the same
way legacy's BDD interface separates the capability contract from any one
concrete encoding. Concrete packages (interval, symbolic, event) each define
their own atom type satisfying Atom and their own composite wrapper that
calls into these functions; this package never allocates a composite of its
own, it only operates on plain slices of atoms.

Disjointification

MakeDisjoint implements the split/repeat procedure: each pass partitions the
input into the part of every atom not covered by any other atom in that pass
(A), and the pairwise intersections with strictly later atoms (B, to avoid
counting a pair twice). B is recursively split until it is empty. Each pass
strictly reduces the multiplicity of any remaining overlap, so the process
terminates in at most n-1 passes for n input atoms.
*/
package setalgebra
