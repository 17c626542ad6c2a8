// Copyright (c) 2026 boxset authors
//
// MIT License

/*
Package symbolic implements the one-dimensional algebra over a fixed,
finite, ordered universe of symbols: SetElement (the atom, C3's SimpleSet)
and Set (the composite, a sorted union of distinct SetElements drawn from
one common Universe).

Unlike interval's SimpleInterval, a symbolic atom's algebra needs no
arithmetic: intersection is identity-or-empty, complement of a single
element is every other element, and a sorted list of distinct indices is
already simplified. The one thing a symbolic composite must track that an
interval composite does not is which Universe its elements were drawn from
— combining two Sets over different universes is a programmer error
(boxerr.ErrUniverseMismatch), not a degenerate input to normalize away.
*/
package symbolic
