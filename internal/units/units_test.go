package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultScale(t *testing.T) {
	assert.InEpsilon(t, 4.495e12/540.0, float64(Default), 1e-12)
}

func TestRoundTrip(t *testing.T) {
	for _, meters := range []float64{1e-3, 1, 5.79e10, 1.496e11, 4.495e12, 6e12, 1e20} {
		got := Default.ToPhysical(Default.ToScene(meters))
		assert.InEpsilon(t, meters, got, 1e-12, "meters=%g", meters)
	}
}

func TestNeptuneFitsMargin(t *testing.T) {
	s := NewScale(ReferenceDistance, WindowWidth, MarginFraction)
	assert.InDelta(t, WindowWidth*MarginFraction, s.ToScene(ReferenceDistance), 1e-9)
}

func TestAccelerationConversion(t *testing.T) {
	a := 5.93e-3
	assert.InEpsilon(t, a, Default.AccelerationToPhysical(Default.AccelerationToScene(a)), 1e-12)
	assert.InEpsilon(t, a/float64(Default), Default.AccelerationToScene(a), 1e-12)
}

func TestTimesteps(t *testing.T) {
	assert.Equal(t, 31556736.0, Year)
	assert.InEpsilon(t, Year, Month*12, 1e-12)
}
