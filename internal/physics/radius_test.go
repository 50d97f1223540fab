package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-sim/internal/units"
)

func TestPlanetRadiusFloor(t *testing.T) {
	m := DefaultRadiusModel()
	r := m.Radius(6e23, 1400, Planet, units.Default)
	assert.GreaterOrEqual(t, float64(r), m.MinPlanetRadius)
}

func TestPlanetRadiusAboveFloor(t *testing.T) {
	m := DefaultRadiusModel()
	r := m.Radius(1.898e27, 1400, Planet, units.Default)
	assert.InEpsilon(t, VolumeRadius(1.898e27, 1400)/1e6, float64(r), 1e-6)
	assert.InDelta(t, 68.7, float64(r), 0.1)
}

func TestStarRadius(t *testing.T) {
	m := DefaultRadiusModel()
	sun := m.Radius(1.989e30, 1400, Star, units.Default)
	assert.InDelta(t, 139.5, float64(sun), 0.5)

	huge := m.Radius(1e33, 1400, Star, units.Default)
	assert.Equal(t, float32(m.MaxStarRadius), huge)
}

func TestMassThresholdUsesStarRegime(t *testing.T) {
	m := DefaultRadiusModel()
	got := m.Radius(2e29, 1400, Planet, units.Default)
	assert.InEpsilon(t, VolumeRadius(2e29, 1400)/m.StarDivisor, float64(got), 1e-6)
}

func TestBlackHoleRadiusUnclamped(t *testing.T) {
	m := DefaultRadiusModel()
	mass := 1.989e30 * 0.5
	got := m.Radius(mass, 1400, BlackHole, units.Default)

	want := units.Default.ToScene(SchwarzschildRadius(mass)) * m.BlackHoleAmplification
	assert.InEpsilon(t, want, float64(got), 1e-6)
	assert.Less(t, float64(got), m.MinPlanetRadius)
	assert.InDelta(t, 1477, SchwarzschildRadius(mass), 1)
}

func TestRadiusMonotonicWithinRegime(t *testing.T) {
	m := DefaultRadiusModel()
	tests := []struct {
		name   string
		kind   Kind
		masses []float64
	}{
		{"planet", Planet, []float64{1e20, 3.285e23, 6e23, 5.972e24, 8.681e25, 5.683e26, 1.898e27, 5e28}},
		{"star", Star, []float64{1e28, 1e29, 1.989e30, 1e31, 1e32, 1e33, 1e34}},
		{"black hole", BlackHole, []float64{1e29, 1e30, 1e31, 1e32}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := float32(0)
			for _, mass := range tt.masses {
				r := m.Radius(mass, DefaultDensity, tt.kind, units.Default)
				require.Greater(t, r, float32(0))
				assert.GreaterOrEqual(t, r, prev, "mass=%g", mass)
				prev = r
			}
		})
	}
}

func TestToyRadiusModel(t *testing.T) {
	m := ToyRadiusModel()
	assert.Equal(t, float32(2), m.Radius(1, 1, Planet, units.Scale(1)))
	big := m.Radius(4000, 1, Planet, units.Scale(1))
	assert.InEpsilon(t, VolumeRadius(4000, 1), float64(big), 1e-6)
}

func TestBodyRadiusDelegates(t *testing.T) {
	b := NewBody("earth", [3]float32{}, [3]float32{}, 5.972e24, Planet, white())
	m := DefaultRadiusModel()
	assert.Equal(t, m.Radius(b.Mass, b.Density, b.Kind, units.Default), b.Radius(m, units.Default))
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Planet, Star, BlackHole} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("comet")
	assert.Error(t, err)
}
