package slice4d

import (
	"fmt"
	"math"
)

// AlignedHyperbox is an axis-aligned 4D box spanned by two opposite corners.
type AlignedHyperbox struct {
	Min, Max    Vector4
	Light, Dark RGBA
}

// NewAlignedHyperbox orders the two corners per axis, so any pair of
// opposite corners is accepted.
func NewAlignedHyperbox(a, b Vector4, light, dark RGBA) (*AlignedHyperbox, error) {
	for i := 0; i < 4; i++ {
		if !isFinite(a.Axis(i)) || !isFinite(b.Axis(i)) {
			return nil, fmt.Errorf("hyperbox corners must be finite, got %+v and %+v", a, b)
		}
	}
	h := &AlignedHyperbox{
		Min:   Vector4{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z), math.Min(a.W, b.W)},
		Max:   Vector4{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z), math.Max(a.W, b.W)},
		Light: light,
		Dark:  dark,
	}
	DebugLog("Created hyperbox: %+v", h)
	return h, nil
}

func (h *AlignedHyperbox) LightColor() RGBA { return h.Light }
func (h *AlignedHyperbox) DarkColor() RGBA  { return h.Dark }

// slab returns the ray parameters at which the ray enters and leaves the slab
// [lo,hi] along one axis. A ray parallel to the slab (d == 0) is inside it
// for every t or never, so the interval is (-Inf,+Inf) or there is no hit.
func slab(o, d, lo, hi Real) (near, far Real, ok bool) {
	if d == 0 {
		if o < lo || o > hi {
			return 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), true
	}
	t0 := (lo - o) / d
	t1 := (hi - o) / d
	if t0 < t1 {
		return t0, t1, true
	}
	return t1, t0, true
}

// FindIntersection is the slab method over the four axes.
// A ray starting inside the box reports no hit (its near t is negative).
func (h *AlignedHyperbox) FindIntersection(ray Ray) (Vector4, bool) {
	tNear, tFar, ok := slab(ray.Origin.X, ray.Dir.X, h.Min.X, h.Max.X)
	if !ok {
		return Vector4{}, false
	}
	for axis := 1; axis < 4; axis++ {
		near, far, ok := slab(ray.Origin.Axis(axis), ray.Dir.Axis(axis), h.Min.Axis(axis), h.Max.Axis(axis))
		if !ok || far < tNear || near > tFar {
			return Vector4{}, false
		}
		tNear = math.Max(tNear, near)
		tFar = math.Min(tFar, far)
	}
	if tNear < 0 {
		return Vector4{}, false
	}
	return ray.At(tNear), true
}
