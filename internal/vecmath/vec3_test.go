package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicOps(t *testing.T) {
	a := [3]float32{1, 2, 3}
	b := [3]float32{4, -5, 6}
	assert.Equal(t, [3]float32{5, -3, 9}, Add(a, b))
	assert.Equal(t, [3]float32{3, -7, 3}, Sub(b, a))
	assert.Equal(t, [3]float32{2, 4, 6}, Scale(a, 2))
	assert.Equal(t, float32(12), Dot(a, b))
	assert.Equal(t, [3]float32{27, 6, -13}, Cross(a, b))
}

func TestLenAndNormalize(t *testing.T) {
	v := [3]float32{3, 4, 0}
	assert.Equal(t, float32(5), Len(v))
	n := Normalize(v)
	assert.InDelta(t, 0.6, n[0], 1e-6)
	assert.InDelta(t, 0.8, n[1], 1e-6)
	assert.InDelta(t, 1.0, Len(n), 1e-6)

	tiny := [3]float32{1e-8, 0, 0}
	assert.Equal(t, tiny, Normalize(tiny))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp[float32](3, 0, 1))
	assert.Equal(t, 0.0, Clamp(-2.0, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}
