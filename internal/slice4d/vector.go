package slice4d

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Real is the scalar used throughout the engine.
type Real = float64

// Vec4 is a 4D value vector; it stores both positions and directions.
type Vec4[T constraints.Float] struct {
	X, Y, Z, W T
}

// Vector4 is the engine's 4D vector.
type Vector4 = Vec4[Real]

// Vector functions
func (a Vec4[T]) Add(b Vec4[T]) Vec4[T] { return Vec4[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Vec4[T]) Sub(b Vec4[T]) Vec4[T] { return Vec4[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (v Vec4[T]) Mul(s T) Vec4[T]       { return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s} }
func (v Vec4[T]) Div(s T) Vec4[T]       { return Vec4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s} }

// Dot returns the dot product between two 4D vectors.
func (a Vec4[T]) Dot(b Vec4[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the Euclidean length of the vector.
func (v Vec4[T]) Len() T { return T(math.Sqrt(float64(v.Dot(v)))) }

// Norm returns a unit-length version of the vector.
// The zero vector has no direction: the result is NaN in every component,
// callers that can legitimately see a zero vector use MaybeNorm.
func (v Vec4[T]) Norm() Vec4[T] {
	return v.Div(v.Len())
}

// MaybeNorm is Norm, except the zero vector is returned unchanged.
func (v Vec4[T]) MaybeNorm() Vec4[T] {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// ElemMul multiplies componentwise.
func (a Vec4[T]) ElemMul(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}

// WithLength rescales the vector to length l.
func (v Vec4[T]) WithLength(l T) Vec4[T] { return v.Norm().Mul(l) }

// Lerp blends from a (t=0) to b (t=1).
func (a Vec4[T]) Lerp(b Vec4[T], t T) Vec4[T] { return a.Add(b.Sub(a).Mul(t)) }

// Axis returns component i (0=X .. 3=W).
func (v Vec4[T]) Axis(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}
