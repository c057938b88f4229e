package slice4d

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec2 is used for screen-space quantities such as the WY dial.
type Vec2[T constraints.Float] struct {
	X, Y T
}

type Vector2 = Vec2[Real]

func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X + b.X, a.Y + b.Y} }
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X - b.X, a.Y - b.Y} }
func (v Vec2[T]) Mul(s T) Vec2[T]       { return Vec2[T]{v.X * s, v.Y * s} }
func (v Vec2[T]) Div(s T) Vec2[T]       { return Vec2[T]{v.X / s, v.Y / s} }
func (a Vec2[T]) Dot(b Vec2[T]) T       { return a.X*b.X + a.Y*b.Y }
func (v Vec2[T]) Len() T                { return T(math.Sqrt(float64(v.Dot(v)))) }
func (v Vec2[T]) Norm() Vec2[T]         { return v.Div(v.Len()) }

func (v Vec2[T]) MaybeNorm() Vec2[T] {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

func (v Vec2[T]) WithLength(l T) Vec2[T] { return v.Norm().Mul(l) }

// WYDial returns the on-screen needle of the WY indicator: Y points up the
// screen at 0 and the needle turns clockwise towards W.
func WYDial(wy Real, length Real) Vector2 {
	return Vector2{math.Sin(wy), -math.Cos(wy)}.WithLength(length)
}
