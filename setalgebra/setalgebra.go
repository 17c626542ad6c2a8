// Copyright (c) 2026 boxset authors
//
// MIT License

package setalgebra

import "sort"

// Atom is the generic capability contract for an irreducible element of a
// one-dimensional algebra: a SimpleInterval, a SetElement, or (at the
// product layer) a SimpleEvent. Every algorithm in this package is written
// once against this interface instead of once per concrete atom type.
type Atom[S any] interface {
	// IntersectionWith returns the set-theoretic intersection with other.
	// The result may be the empty atom.
	IntersectionWith(other S) S

	// Complement returns a small, disjoint collection of atoms whose union
	// is the complement of this atom in its ambient space.
	Complement() []S

	// IsEmpty reports whether this atom denotes the empty set.
	IsEmpty() bool

	// Equal reports structural equality between two atoms.
	Equal(other S) bool

	// Less imposes the total order that keeps composites sorted, chosen so
	// that containment and adjacency are detectable by scanning neighbors.
	Less(other S) bool

	// TryMerge attempts to combine this atom with other into a single atom
	// representing their union without changing the point set (e.g. two
	// touching intervals). ok is false when no single atom can do that.
	TryMerge(other S) (merged S, ok bool)

	// Hash returns a value consistent with Equal: a.Equal(b) implies
	// a.Hash() == b.Hash().
	Hash() uint64
}

// Sort sorts atoms in place using the total order defined by Less.
func Sort[S Atom[S]](atoms []S) {
	sort.Slice(atoms, func(i, j int) bool { return atoms[i].Less(atoms[j]) })
}

// Simplify merges adjacent atoms wherever TryMerge succeeds and drops empty
// atoms. It assumes atoms is already sorted and pairwise disjoint; callers
// normally reach Simplify only through MakeDisjoint.
func Simplify[S Atom[S]](atoms []S) []S {
	if len(atoms) == 0 {
		return atoms[:0]
	}
	result := make([]S, 0, len(atoms))
	current := atoms[0]
	for _, next := range atoms[1:] {
		if merged, ok := current.TryMerge(next); ok {
			current = merged
			continue
		}
		if !current.IsEmpty() {
			result = append(result, current)
		}
		current = next
	}
	if !current.IsEmpty() {
		result = append(result, current)
	}
	return result
}

// IntersectAtoms intersects every atom of a with every atom of b, discarding
// empty results. The output is neither sorted nor guaranteed disjoint.
func IntersectAtoms[S Atom[S]](a, b []S) []S {
	result := make([]S, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			p := x.IntersectionWith(y)
			if !p.IsEmpty() {
				result = append(result, p)
			}
		}
	}
	return result
}

// DifferenceAtoms returns the atoms of a with every atom of b removed. It is
// implemented generically as intersecting each atom of a with the
// complement of each atom of b in turn, per the abstract algebra's
// difference_with contract.
func DifferenceAtoms[S Atom[S]](a, b []S) []S {
	remainder := append([]S(nil), a...)
	for _, y := range b {
		if len(remainder) == 0 {
			break
		}
		var next []S
		for _, x := range remainder {
			next = append(next, IntersectAtoms([]S{x}, y.Complement())...)
		}
		remainder = next
	}
	return remainder
}

// Complement returns the complement of atoms within the ambient space whose
// atom representation is produced by full. It starts from the ambient space
// and repeatedly intersects with each input atom's own complement, so the
// result has a number of atoms linear in len(atoms) rather than exponential.
func Complement[S Atom[S]](atoms []S, full func() []S) []S {
	acc := full()
	for _, s := range atoms {
		acc = IntersectAtoms(acc, s.Complement())
	}
	return acc
}

// MakeDisjoint takes a (possibly overlapping) slice of atoms and returns a
// pairwise-disjoint, sorted slice of atoms whose union equals the input's.
func MakeDisjoint[S Atom[S]](atoms []S) []S {
	current := make([]S, 0, len(atoms))
	for _, a := range atoms {
		if !a.IsEmpty() {
			current = append(current, a)
		}
	}
	var disjoint []S
	for len(current) > 0 {
		// Equal atoms would cover each other completely and all reappear in b.
		var unique []S
		for _, s := range current {
			dup := false
			for _, u := range unique {
				dup = dup || u.Equal(s)
			}
			if !dup {
				unique = append(unique, s)
			}
		}
		a, b := split(unique)
		disjoint = append(disjoint, a...)
		current = b
	}
	Sort(disjoint)
	return disjoint
}

// split implements one pass of MakeDisjoint: for every atom s_i, the part of
// s_i not covered by any other atom in this pass is emitted into a, and the
// pairwise intersections with strictly later atoms (to avoid counting a
// pair of overlapping atoms twice) are emitted into b for the next pass.
func split[S Atom[S]](atoms []S) (a, b []S) {
	for i, s := range atoms {
		remainder := []S{s}
		for j, other := range atoms {
			if i == j {
				continue
			}
			remainder = DifferenceAtoms(remainder, []S{other})
			if len(remainder) == 0 {
				break
			}
		}
		a = append(a, remainder...)

		for j := i + 1; j < len(atoms); j++ {
			inter := atoms[i].IntersectionWith(atoms[j])
			if !inter.IsEmpty() {
				b = append(b, inter)
			}
		}
	}
	return a, b
}

// IsDisjoint reports whether every pair of atoms in the slice is pairwise
// non-overlapping.
func IsDisjoint[S Atom[S]](atoms []S) bool {
	for i := range atoms {
		for j := i + 1; j < len(atoms); j++ {
			if !atoms[i].IntersectionWith(atoms[j]).IsEmpty() {
				return false
			}
		}
	}
	return true
}

// Equal reports whether two canonical (sorted, simplified, disjoint) atom
// slices represent the same composite.
func Equal[S Atom[S]](a, b []S) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Hash combines the hashes of a canonical atom slice into a single value
// consistent with Equal, using the FNV-1a mixing step.
func Hash[S Atom[S]](atoms []S) uint64 {
	var h uint64 = 14695981039346656037
	for _, a := range atoms {
		h ^= a.Hash()
		h *= 1099511628211
	}
	return h
}

// Less imposes the partial order described in spec.md on two canonical atom
// slices: compare pairwise by Atom order; if all compared pairs are equal,
// the slice with fewer atoms sorts first.
func Less[S Atom[S]](a, b []S) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i].Equal(b[i]) {
			continue
		}
		return a[i].Less(b[i])
	}
	return len(a) < len(b)
}
