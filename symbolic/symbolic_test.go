// Copyright (c) 2026 boxset authors
//
// MIT License

package symbolic_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/axisbox/boxset/symbolic"
)

func universe() *symbolic.Universe {
	return symbolic.NewUniverse("APPLE", "DOG", "RAIN")
}

// S4 — symbolic union and complement.
func TestUnionAndComplementS4(t *testing.T) {
	u := universe()
	apple, err := symbolic.NewSet(u, "APPLE")
	require.NoError(t, err)
	dog, err := symbolic.NewSet(u, "DOG")
	require.NoError(t, err)

	union, err := apple.UnionWith(dog)
	require.NoError(t, err)
	expected, err := symbolic.NewSet(u, "APPLE", "DOG")
	require.NoError(t, err)
	require.True(t, union.Equal(expected))

	complement, err := apple.Complement()
	require.NoError(t, err)
	expectedComplement, err := symbolic.NewSet(u, "DOG", "RAIN")
	require.NoError(t, err)
	require.True(t, complement.Equal(expectedComplement))
}

func TestUniverseMismatch(t *testing.T) {
	a, _ := symbolic.NewSet(symbolic.NewUniverse("A", "B"), "A")
	b, _ := symbolic.NewSet(symbolic.NewUniverse("X", "Y"), "X")
	_, err := a.UnionWith(b)
	require.Error(t, err)
}

func TestUnknownSymbol(t *testing.T) {
	_, err := symbolic.NewSet(universe(), "NOPE")
	require.Error(t, err)
}

func TestIntersectionIdentityOrEmpty(t *testing.T) {
	u := universe()
	apple, _ := symbolic.NewSet(u, "APPLE")
	dog, _ := symbolic.NewSet(u, "DOG")

	same, err := apple.IntersectionWith(apple)
	require.NoError(t, err)
	require.True(t, same.Equal(apple))

	disjoint, err := apple.IntersectionWith(dog)
	require.NoError(t, err)
	require.True(t, disjoint.IsEmpty())
}

func TestDoubleComplement(t *testing.T) {
	u := universe()
	s, _ := symbolic.NewSet(u, "APPLE", "RAIN")
	once, err := s.Complement()
	require.NoError(t, err)
	twice, err := once.Complement()
	require.NoError(t, err)
	require.True(t, twice.Equal(s))
}

func TestDeMorgan(t *testing.T) {
	u := symbolic.NewUniverse("A", "B", "C", "D")
	a, _ := symbolic.NewSet(u, "A", "B")
	b, _ := symbolic.NewSet(u, "B", "C")

	union, _ := a.UnionWith(b)
	lhs, err := union.Complement()
	require.NoError(t, err)

	ac, _ := a.Complement()
	bc, _ := b.Complement()
	rhs, _ := ac.IntersectionWith(bc)

	require.True(t, lhs.Equal(rhs))
}

func TestFromIterableIsFullDomain(t *testing.T) {
	u, full := symbolic.FromIterable("RED", "GREEN", "BLUE")
	require.Equal(t, 3, u.Len())
	require.True(t, full.Contains("RED"))
	require.True(t, full.Contains("GREEN"))
	require.True(t, full.Contains("BLUE"))
	complement, err := full.Complement()
	require.NoError(t, err)
	require.True(t, complement.IsEmpty())
}

func TestJSONRoundTrip(t *testing.T) {
	u := universe()
	original, _ := symbolic.NewSet(u, "APPLE", "RAIN")
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded symbolic.Set
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, decoded.Equal(original))
}

func TestCanonicalFormDropsDuplicates(t *testing.T) {
	u := universe()
	s, err := symbolic.NewSet(u, "APPLE", "APPLE", "DOG")
	require.NoError(t, err)
	require.Len(t, s.SimpleSets(), 2)
}
