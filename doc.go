// Copyright (c) 2026 boxset authors
//
// MIT License

/*
Package boxset provides a computable representation of random events drawn
from a product sigma-algebra: finite disjoint unions of axis-aligned boxes
built from independently-constrained coordinates, closed under union,
intersection, difference, complement and containment.

The package is a thin façade over four lower-level packages that can also
be used directly:

  - interval: one-dimensional interval algebra over the real line.
  - symbolic: one-dimensional algebra over a fixed, finite universe of
    symbols.
  - variable: the catalog of named, typed dimensions (Symbolic, Integer,
    Continuous) a product event is built from.
  - event: the product layer — SimpleEvent and Event — including the
    linear-term complement that avoids the naive 2ⁿ blow-up.

Each of these is itself built on setalgebra, the generic abstract set
algebra (make_disjoint, simplify, and the union/intersection/difference/
complement reductions) parameterised over a single Atom contract.

Every composite value in this module is immutable after construction:
"mutating" operations such as UnionWith always return a freshly built
value, there are no suspension points, and values may be read concurrently
without locking.
*/
package boxset
