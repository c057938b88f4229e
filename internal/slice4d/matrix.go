package slice4d

import "golang.org/x/exp/constraints"

// Mat4 is a row-major 4×4 matrix.
type Mat4[T constraints.Float] struct {
	M [4][4]T
}

type Matrix4 = Mat4[Real]

func I4[T constraints.Float]() Mat4[T] {
	var R Mat4[T]
	for i := 0; i < 4; i++ {
		R.M[i][i] = 1
	}
	return R
}

func (A Mat4[T]) Mul(B Mat4[T]) Mat4[T] {
	var R Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum T
			for k := 0; k < 4; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

func (A Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		A.M[0][0]*v.X + A.M[0][1]*v.Y + A.M[0][2]*v.Z + A.M[0][3]*v.W,
		A.M[1][0]*v.X + A.M[1][1]*v.Y + A.M[1][2]*v.Z + A.M[1][3]*v.W,
		A.M[2][0]*v.X + A.M[2][1]*v.Y + A.M[2][2]*v.Z + A.M[2][3]*v.W,
		A.M[3][0]*v.X + A.M[3][1]*v.Y + A.M[3][2]*v.Z + A.M[3][3]*v.W,
	}
}

func (A Mat4[T]) Transpose() Mat4[T] {
	var R Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

// Col returns column c as a vector.
func (A Mat4[T]) Col(c int) Vec4[T] {
	return Vec4[T]{A.M[0][c], A.M[1][c], A.M[2][c], A.M[3][c]}
}
