// Package vecmath holds small helpers for [3]float32 vectors, the layout used by bodies,
// lighting and the renderer boundary.
package vecmath

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// normalizeEpsilon: vectors shorter than this normalize to zero.
const normalizeEpsilon = 1e-6

func Add(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func Sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func Scale(v [3]float32, s float32) [3]float32 {
	return [3]float32{v[0] * s, v[1] * s, v[2] * s}
}

func Dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func Cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func Len(v [3]float32) float32 {
	return math32.Sqrt(Dot(v, v))
}

// Distance returns |b - a|.
func Distance(a, b [3]float32) float32 {
	return Len(Sub(b, a))
}

// Normalize returns v scaled to unit length, or v unchanged when it is shorter than 1e-6.
func Normalize(v [3]float32) [3]float32 {
	l := Len(v)
	if l <= normalizeEpsilon {
		return v
	}
	return Scale(v, 1/l)
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
