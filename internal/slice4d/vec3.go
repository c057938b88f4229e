package slice4d

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec3 is the 3D counterpart of Vec4.
type Vec3[T constraints.Float] struct {
	X, Y, Z T
}

type Vector3 = Vec3[Real]

func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vec3[T]) Mul(s T) Vec3[T]       { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3[T]) Div(s T) Vec3[T]       { return Vec3[T]{v.X / s, v.Y / s, v.Z / s} }
func (a Vec3[T]) Dot(b Vec3[T]) T       { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (v Vec3[T]) Len() T                { return T(math.Sqrt(float64(v.Dot(v)))) }
func (v Vec3[T]) Norm() Vec3[T]         { return v.Div(v.Len()) }

func (v Vec3[T]) MaybeNorm() Vec3[T] {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// Lift embeds the vector into 4D with W = 0.
func (v Vec3[T]) Lift() Vec4[T] { return Vec4[T]{v.X, v.Y, v.Z, 0} }
