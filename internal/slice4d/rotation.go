package slice4d

import "math"

// Angles in radians for rotations in coordinate planes.
type Rot4 struct {
	XY, XZ, XW, YZ, YW, ZW Real
}

// planeRot rotates by a in the plane spanned by axes i and j (i < j),
// turning axis i towards axis j for positive a.
func planeRot(i, j int, a Real) Matrix4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4[Real]()
	M.M[i][i], M.M[i][j] = c, -s
	M.M[j][i], M.M[j][j] = s, c
	return M
}

// Compose rotation from angles: ZW first, XY last.
func rotFromAngles(r Rot4) Matrix4 {
	R := I4[Real]()
	for _, p := range []struct {
		i, j int
		a    Real
	}{
		{2, 3, r.ZW}, {1, 3, r.YW}, {1, 2, r.YZ},
		{0, 3, r.XW}, {0, 2, r.XZ}, {0, 1, r.XY},
	} {
		if p.a == 0 {
			continue
		}
		R = planeRot(p.i, p.j, p.a).Mul(R)
	}
	return R
}

// sliceRotation maps the camera's 3D frame (W=0) into the 4D world for a
// given WY angle. Column 3 is the W movement axis (0, sin wy, 0, cos wy).
func sliceRotation(wy Real) Matrix4 {
	return rotFromAngles(Rot4{YW: -wy})
}

// embedSlice is sliceRotation(wy).MulVec(v.Lift()) written out.
func embedSlice(v Vector3, wy Real) Vector4 {
	return Vector4{v.X, v.Y * math.Cos(wy), v.Z, -v.Y * math.Sin(wy)}
}
