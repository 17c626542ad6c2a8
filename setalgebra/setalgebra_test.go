// Copyright (c) 2026 boxset authors
//
// MIT License

package setalgebra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/axisbox/boxset/setalgebra"
)

// intRange is a minimal Atom implementation over closed integer ranges
// [lo, hi], used only to exercise the generic algebra independently of the
// interval/symbolic packages.
type intRange struct {
	lo, hi int
	empty  bool
}

func rng(lo, hi int) intRange {
	if lo > hi {
		return intRange{empty: true}
	}
	return intRange{lo: lo, hi: hi}
}

func (r intRange) IntersectionWith(other intRange) intRange {
	if r.IsEmpty() || other.IsEmpty() {
		return intRange{empty: true}
	}
	lo, hi := r.lo, r.hi
	if other.lo > lo {
		lo = other.lo
	}
	if other.hi < hi {
		hi = other.hi
	}
	return rng(lo, hi)
}

func (r intRange) Complement() []intRange {
	if r.IsEmpty() {
		return []intRange{{lo: -1000, hi: 1000}}
	}
	var out []intRange
	if left := rng(-1000, r.lo-1); !left.IsEmpty() {
		out = append(out, left)
	}
	if right := rng(r.hi+1, 1000); !right.IsEmpty() {
		out = append(out, right)
	}
	return out
}

func (r intRange) IsEmpty() bool { return r.empty || r.lo > r.hi }

func (r intRange) Equal(other intRange) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return r.IsEmpty() == other.IsEmpty()
	}
	return r.lo == other.lo && r.hi == other.hi
}

func (r intRange) Less(other intRange) bool {
	if r.lo == other.lo {
		return r.hi < other.hi
	}
	return r.lo < other.lo
}

func (r intRange) TryMerge(other intRange) (intRange, bool) {
	if r.IsEmpty() {
		return other, true
	}
	if other.IsEmpty() {
		return r, true
	}
	if other.lo <= r.hi+1 && r.lo <= other.hi+1 {
		lo, hi := r.lo, r.hi
		if other.lo < lo {
			lo = other.lo
		}
		if other.hi > hi {
			hi = other.hi
		}
		return rng(lo, hi), true
	}
	return intRange{}, false
}

func (r intRange) Hash() uint64 {
	return uint64(r.lo)*31 + uint64(r.hi)
}

func fullSpace() []intRange { return []intRange{{lo: -1000, hi: 1000}} }

func TestMakeDisjointOverlapping(t *testing.T) {
	in := []intRange{rng(0, 5), rng(3, 8), rng(7, 10)}
	out := setalgebra.MakeDisjoint(in)
	require.True(t, setalgebra.IsDisjoint(out))

	// union of output covers [0,10]
	covered := setalgebra.Simplify(out)
	require.Len(t, covered, 1)
	require.Equal(t, 0, covered[0].lo)
	require.Equal(t, 10, covered[0].hi)
}

func TestMakeDisjointDuplicates(t *testing.T) {
	in := []intRange{rng(1, 2), rng(1, 2), rng(1, 2)}
	out := setalgebra.MakeDisjoint(in)
	require.Len(t, out, 1)
	require.True(t, out[0].Equal(rng(1, 2)))
}

func TestSimplifyMergesTouching(t *testing.T) {
	in := []intRange{rng(0, 1), rng(2, 3)}
	setalgebra.Sort(in)
	out := setalgebra.Simplify(in)
	require.Len(t, out, 1)
	require.Equal(t, 0, out[0].lo)
	require.Equal(t, 3, out[0].hi)
}

func TestComplementLinearAndCorrect(t *testing.T) {
	atoms := setalgebra.MakeDisjoint([]intRange{rng(0, 5)})
	comp := setalgebra.Complement(atoms, fullSpace)
	comp = setalgebra.MakeDisjoint(comp)
	require.Len(t, comp, 2)
	require.True(t, comp[0].Equal(rng(-1000, -1)))
	require.True(t, comp[1].Equal(rng(6, 1000)))
}

func TestDeMorganUnionComplement(t *testing.T) {
	a := setalgebra.MakeDisjoint([]intRange{rng(0, 3)})
	b := setalgebra.MakeDisjoint([]intRange{rng(5, 8)})

	union := setalgebra.MakeDisjoint(setalgebra.Simplify(append(append([]intRange{}, a...), b...)))
	unionComplement := setalgebra.MakeDisjoint(setalgebra.Complement(union, fullSpace))

	aComplement := setalgebra.Complement(a, fullSpace)
	bComplement := setalgebra.Complement(b, fullSpace)
	intersectionOfComplements := setalgebra.MakeDisjoint(setalgebra.IntersectAtoms(aComplement, bComplement))

	require.True(t, setalgebra.Equal(unionComplement, intersectionOfComplements))
}

func TestDoubleComplement(t *testing.T) {
	a := setalgebra.MakeDisjoint([]intRange{rng(-10, -5), rng(2, 9)})
	once := setalgebra.MakeDisjoint(setalgebra.Complement(a, fullSpace))
	twice := setalgebra.MakeDisjoint(setalgebra.Complement(once, fullSpace))
	require.True(t, setalgebra.Equal(a, twice))
}

func TestDifferenceAtoms(t *testing.T) {
	a := []intRange{rng(0, 10)}
	b := []intRange{rng(3, 6)}
	diff := setalgebra.MakeDisjoint(setalgebra.DifferenceAtoms(a, b))
	require.Len(t, diff, 2)
	require.True(t, diff[0].Equal(rng(0, 2)))
	require.True(t, diff[1].Equal(rng(7, 10)))
}

func TestEqualAndHashConsistent(t *testing.T) {
	a := setalgebra.MakeDisjoint([]intRange{rng(1, 2), rng(5, 6)})
	b := setalgebra.MakeDisjoint([]intRange{rng(5, 6), rng(1, 2)})
	require.True(t, setalgebra.Equal(a, b))
	require.Equal(t, setalgebra.Hash(a), setalgebra.Hash(b))
}
