// Copyright (c) 2026 boxset authors
//
// MIT License

package variable_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/axisbox/boxset/interval"
	"github.com/axisbox/boxset/symbolic"
	"github.com/axisbox/boxset/variable"
)

func weatherUniverse() *symbolic.Universe {
	return symbolic.NewUniverse("SUNNY", "RAINY", "CLOUDY")
}

func TestNameIdentity(t *testing.T) {
	a := variable.NewContinuous("x")
	b := variable.NewInteger("x")
	require.True(t, a.Equal(b))

	c := variable.NewContinuous("y")
	require.False(t, a.Equal(c))
	require.True(t, a.Less(c))
}

func TestContinuousDomainIsReals(t *testing.T) {
	x := variable.NewContinuous("x")
	require.Equal(t, variable.Continuous, x.Kind())
	domain, ok := x.Domain().AsInterval()
	require.True(t, ok)
	require.True(t, domain.Equal(interval.Reals()))
}

func TestIntegerDomainIsReals(t *testing.T) {
	n := variable.NewInteger("n")
	domain, ok := n.Domain().AsInterval()
	require.True(t, ok)
	require.True(t, domain.Equal(interval.Reals()))
}

func TestSymbolicMakeValue(t *testing.T) {
	universe := weatherUniverse()
	full, err := symbolic.NewSet(universe, "SUNNY", "RAINY", "CLOUDY")
	require.NoError(t, err)
	weather := variable.NewSymbolic("weather", full)

	value, err := weather.MakeValue("SUNNY")
	require.NoError(t, err)
	set, ok := value.AsSet()
	require.True(t, ok)
	require.True(t, set.Contains("SUNNY"))

	multi, err := weather.MakeValue([]string{"SUNNY", "RAINY"})
	require.NoError(t, err)
	multiSet, _ := multi.AsSet()
	require.Len(t, multiSet.SimpleSets(), 2)
}

func TestSymbolicMakeValueRejectsUnknownSymbol(t *testing.T) {
	universe := weatherUniverse()
	full, _ := symbolic.NewSet(universe, "SUNNY", "RAINY", "CLOUDY")
	weather := variable.NewSymbolic("weather", full)

	_, err := weather.MakeValue("FOGGY")
	require.Error(t, err)
}

func TestNumericMakeValueShapes(t *testing.T) {
	x := variable.NewContinuous("x")

	singleton, err := x.MakeValue(2.5)
	require.NoError(t, err)
	iv, _ := singleton.AsInterval()
	require.True(t, iv.IsSingleton())

	bounded, err := x.MakeValue([2]float64{0, 10})
	require.NoError(t, err)
	boundedIv, _ := bounded.AsInterval()
	require.True(t, boundedIv.Contains(5))
	require.False(t, boundedIv.Contains(11))

	_, err = x.MakeValue("not a number")
	require.Error(t, err)
}

func TestAssignAcceptsValueInsideDomain(t *testing.T) {
	x := variable.NewContinuous("x")

	value, err := x.Assign(3.0)
	require.NoError(t, err)
	require.True(t, value.Contains(3.0))
}

func TestAssignAcrossDifferentVariableDomains(t *testing.T) {
	bounded := variable.NewSymbolic("weather", mustSet(symbolic.NewSet(weatherUniverse(), "SUNNY")))
	_, err := bounded.Assign("RAINY")
	require.Error(t, err)

	value, err := bounded.Assign("SUNNY")
	require.NoError(t, err)
	require.False(t, value.IsEmpty())
}

func TestValueTypeMismatch(t *testing.T) {
	numeric := variable.IntervalValue(interval.Closed(0, 1))
	symbolicValue := variable.SetValue(mustSet(symbolic.NewSet(weatherUniverse(), "SUNNY")))

	_, err := numeric.UnionWith(symbolicValue)
	require.Error(t, err)

	_, err = numeric.IntersectionWith(symbolicValue)
	require.Error(t, err)
}

func TestValueJSONRoundTrip(t *testing.T) {
	original := variable.IntervalValue(interval.Closed(0, 1))
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded variable.Value
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, decoded.Equal(original))
}

func TestVariableJSONRoundTrip(t *testing.T) {
	original := variable.NewContinuous("x")
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded variable.Variable
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, original.Name(), decoded.Name())
	require.Equal(t, original.Kind(), decoded.Kind())
}

func mustSet(s symbolic.Set, err error) symbolic.Set {
	if err != nil {
		panic(err)
	}
	return s
}
