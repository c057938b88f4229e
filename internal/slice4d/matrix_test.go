package slice4d

import (
	"math"
	"testing"
)

func TestI4MulVec(t *testing.T) {
	v := Vector4{1, -2, 3, -4}
	if got := I4[Real]().MulVec(v); got != v {
		t.Fatalf("I*v = %+v", got)
	}
}

func TestMatMulAssociatesWithVec(t *testing.T) {
	A := Matrix4{M: [4][4]Real{
		{1, 2, 0, -1},
		{0, 1, 3, 2},
		{4, 0, 1, 0},
		{-2, 1, 1, 5},
	}}
	B := Matrix4{M: [4][4]Real{
		{2, 0, 1, 0},
		{1, -1, 0, 3},
		{0, 2, 2, 1},
		{1, 1, 0, -2},
	}}
	v := Vector4{1, 2, -3, 4}
	lhs := A.Mul(B).MulVec(v)
	rhs := A.MulVec(B.MulVec(v))
	if lhs != rhs {
		t.Fatalf("(A*B)*v=%+v, A*(B*v)=%+v", lhs, rhs)
	}
}

func TestTransposeCol(t *testing.T) {
	A := Matrix4{M: [4][4]Real{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}}
	T := A.Transpose()
	if T.M[0][3] != 13 || T.M[3][0] != 4 || T.M[2][1] != 7 {
		t.Fatalf("Transpose wrong: %+v", T)
	}
	if got := A.Col(2); got != (Vector4{3, 7, 11, 15}) {
		t.Fatalf("Col(2) = %+v", got)
	}
	if T.Transpose() != A {
		t.Fatalf("double transpose")
	}
}

func TestRotationOrthonormal(t *testing.T) {
	R := rotFromAngles(Rot4{XY: .3, XZ: -.7, XW: 1.1, YZ: .2, YW: -.4, ZW: 2.5})
	P := R.Transpose().Mul(R)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(P.M[i][j]-want) > 1e-12 {
				t.Fatalf("R^T R not identity at %d,%d: %v", i, j, P.M[i][j])
			}
		}
	}
}

func TestRotFromZeroAnglesIsIdentity(t *testing.T) {
	if rotFromAngles(Rot4{}) != I4[Real]() {
		t.Fatalf("zero angles should give identity")
	}
}

func TestPlaneRotDirection(t *testing.T) {
	got := planeRot(0, 1, math.Pi/2).MulVec(Vector4{1, 0, 0, 0})
	if !vecNear(got, Vector4{0, 1, 0, 0}, 1e-12) {
		t.Fatalf("XY rotation should turn X towards Y: %+v", got)
	}
}

func TestSliceRotation(t *testing.T) {
	for _, wy := range []Real{0, .3, math.Pi / 2, 2, math.Pi, 5.5} {
		R := sliceRotation(wy)
		wantW := Vector4{0, math.Sin(wy), 0, math.Cos(wy)}
		if !vecNear(R.Col(3), wantW, 1e-12) {
			t.Fatalf("wy=%v: W axis %+v want %+v", wy, R.Col(3), wantW)
		}
		v := Vector3{.3, -1.2, 2}
		if got, want := embedSlice(v, wy), R.MulVec(v.Lift()); !vecNear(got, want, 1e-12) {
			t.Fatalf("wy=%v: embedSlice %+v, matrix %+v", wy, got, want)
		}
	}
}
