// Copyright (c) 2026 boxset authors
//
// MIT License

package interval_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/axisbox/boxset/interval"
)

// S1 — Interval union.
func TestUnionS1(t *testing.T) {
	result := interval.Closed(0, 1).UnionWith(interval.Open(0.5, 2))
	expected := interval.ClosedOpen(0, 2)
	require.True(t, result.Equal(expected), "got %s", result)
}

// S2 — Interval complement.
func TestComplementS2(t *testing.T) {
	result := interval.Closed(0, 1).Complement()
	expected := interval.Open(math.Inf(-1), 0).UnionWith(interval.Open(1, math.Inf(1)))
	require.True(t, result.Equal(expected), "got %s", result)
}

// S3 — merge policy: a CLOSED right endpoint merges with a touching OPEN
// left endpoint into a single half-open interval.
func TestSimplifyS3(t *testing.T) {
	result := interval.Closed(0, 1).UnionWith(interval.Open(1, 2))
	expected := interval.ClosedOpen(0, 2)
	require.True(t, result.Equal(expected), "got %s", result)
	require.Len(t, result.SimpleSets(), 1)
}

func TestTwoOpenBoundsDoNotMerge(t *testing.T) {
	result := interval.Open(0, 1).UnionWith(interval.Open(1, 2))
	require.Len(t, result.SimpleSets(), 2)
	require.True(t, result.Contains(0.5))
	require.False(t, result.Contains(1))
	require.True(t, result.Contains(1.5))
}

func TestIntersection(t *testing.T) {
	a := interval.Closed(0, 2)
	b := interval.OpenClosed(1, 3)
	result := a.IntersectionWith(b)
	expected := interval.OpenClosed(1, 2)
	require.True(t, result.Equal(expected))
}

func TestDifference(t *testing.T) {
	a := interval.Closed(0, 10)
	b := interval.Open(3, 6)
	result := a.DifferenceWith(b)
	expected := interval.Closed(0, 3).UnionWith(interval.Closed(6, 10))
	require.True(t, result.Equal(expected), "got %s", result)
}

func TestSingletonAndDegenerate(t *testing.T) {
	require.True(t, interval.Singleton(3).Contains(3))
	require.False(t, interval.Singleton(3).Contains(3.0001))

	// lower > upper collapses to empty.
	s := interval.NewSimpleInterval(5, 2, interval.BoundClosed, interval.BoundClosed)
	require.True(t, s.IsEmpty())

	// degenerate open/closed single point collapses to empty.
	s2 := interval.NewSimpleInterval(1, 1, interval.BoundOpen, interval.BoundClosed)
	require.True(t, s2.IsEmpty())

	// degenerate closed/closed single point is a singleton, not empty.
	s3 := interval.NewSimpleInterval(1, 1, interval.BoundClosed, interval.BoundClosed)
	require.False(t, s3.IsEmpty())
	require.True(t, s3.IsSingleton())
}

func TestMustSimpleIntervalErrors(t *testing.T) {
	_, err := interval.MustSimpleInterval(5, 2, interval.BoundClosed, interval.BoundClosed)
	require.Error(t, err)
}

func TestDoubleComplement(t *testing.T) {
	a := interval.Closed(-10, -5).UnionWith(interval.OpenClosed(2, 9))
	require.True(t, a.Complement().Complement().Equal(a))
}

func TestDeMorganUnion(t *testing.T) {
	a := interval.Closed(0, 3)
	b := interval.Closed(5, 8)
	lhs := a.UnionWith(b).Complement()
	rhs := a.Complement().IntersectionWith(b.Complement())
	require.True(t, lhs.Equal(rhs))
}

func TestDeMorganIntersection(t *testing.T) {
	a := interval.Closed(0, 10)
	b := interval.Closed(5, 20)
	lhs := a.IntersectionWith(b).Complement()
	rhs := a.Complement().UnionWith(b.Complement())
	require.True(t, lhs.Equal(rhs))
}

func TestContainmentMonotonicity(t *testing.T) {
	a := interval.Closed(1, 2)
	b := interval.Closed(0, 5)
	require.True(t, a.IntersectionWith(b).Equal(a))
	require.True(t, a.UnionWith(b).Equal(b))
}

func TestIdempotence(t *testing.T) {
	a := interval.Closed(1, 2).UnionWith(interval.Closed(5, 6))
	require.True(t, a.UnionWith(a).Equal(a))
	require.True(t, a.IntersectionWith(a).Equal(a))
}

func TestContainedIntegers(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, interval.ClosedOpen(1, 4).ContainedIntegers())
	require.Equal(t, []int{2, 3}, interval.Open(1, 4).ContainedIntegers())
}

func TestJSONRoundTrip(t *testing.T) {
	original := interval.Closed(0, 1).UnionWith(interval.Open(2, 3))
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded interval.Interval
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, decoded.Equal(original))
}

func TestCanonicalFormIsDisjointAndSorted(t *testing.T) {
	result := interval.Closed(5, 6).UnionWith(interval.Closed(0, 1)).UnionWith(interval.Closed(2, 3))
	require.True(t, result.IsDisjoint())
	sets := result.SimpleSets()
	for i := 1; i < len(sets); i++ {
		require.True(t, sets[i-1].Less(sets[i]))
	}
}
