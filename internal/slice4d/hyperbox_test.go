package slice4d

import (
	"math"
	"testing"
)

func unitBox(t *testing.T) *AlignedHyperbox {
	t.Helper()
	h, err := NewAlignedHyperbox(Vector4{-1, -1, -1, -1}, Vector4{1, 1, 1, 1}, DefaultLight, DefaultDark)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestHyperboxAxisHit(t *testing.T) {
	h := unitBox(t)
	p, ok := h.FindIntersection(Ray{Origin: Vector4{-5, 0, 0, 0}, Dir: Vector4{1, 0, 0, 0}})
	if !ok || p != (Vector4{-1, 0, 0, 0}) {
		t.Fatalf("expected hit at (-1,0,0,0), got %+v ok=%v", p, ok)
	}
	p, ok = h.FindIntersection(Ray{Origin: Vector4{10, 0, 0, 0}, Dir: Vector4{-1, 0, 0, 0}})
	if !ok || p != (Vector4{1, 0, 0, 0}) {
		t.Fatalf("expected hit at (1,0,0,0), got %+v ok=%v", p, ok)
	}
	p, ok = h.FindIntersection(Ray{Origin: Vector4{0, 0, 0, -5}, Dir: Vector4{0, 0, 0, 1}})
	if !ok || p != (Vector4{0, 0, 0, -1}) {
		t.Fatalf("expected hit at (0,0,0,-1), got %+v ok=%v", p, ok)
	}
}

func TestHyperboxMissOffset(t *testing.T) {
	h := unitBox(t)
	if p, ok := h.FindIntersection(Ray{Origin: Vector4{-5, 2, 0, 0}, Dir: Vector4{1, 0, 0, 0}}); ok {
		t.Fatalf("parallel ray outside Y slab should miss, got %+v", p)
	}
	if p, ok := h.FindIntersection(Ray{Origin: Vector4{-5, 0, 0, 1.5}, Dir: Vector4{1, 0, 0, 0}}); ok {
		t.Fatalf("parallel ray outside W slab should miss, got %+v", p)
	}
}

func TestHyperboxParallelOnBoundary(t *testing.T) {
	h := unitBox(t)
	p, ok := h.FindIntersection(Ray{Origin: Vector4{-10, 1, 0, 0}, Dir: Vector4{1, 0, 0, 0}})
	if !ok || p != (Vector4{-1, 1, 0, 0}) {
		t.Fatalf("ray grazing the Y=1 face should hit, got %+v ok=%v", p, ok)
	}
}

func TestHyperboxBehindAndInside(t *testing.T) {
	h := unitBox(t)
	if p, ok := h.FindIntersection(Ray{Origin: Vector4{5, 0, 0, 0}, Dir: Vector4{1, 0, 0, 0}}); ok {
		t.Fatalf("box behind the ray should miss, got %+v", p)
	}
	if p, ok := h.FindIntersection(Ray{Origin: Vector4{}, Dir: Vector4{1, 0, 0, 0}}); ok {
		t.Fatalf("ray starting inside reports no hit, got %+v", p)
	}
}

func TestHyperboxDiagonal(t *testing.T) {
	h := unitBox(t)
	d := Vector4{1, 1, 1, 1}.Norm()
	p, ok := h.FindIntersection(Ray{Origin: Vector4{-10, -10, -10, -10}, Dir: d})
	if !ok || !vecNear(p, Vector4{-1, -1, -1, -1}, 1e-9) {
		t.Fatalf("diagonal ray should hit the corner, got %+v ok=%v", p, ok)
	}
	// skew enough to leave through W before entering X
	d = Vector4{1, 0, 0, 3}.Norm()
	if p, ok := h.FindIntersection(Ray{Origin: Vector4{-5, 0, 0, -2}, Dir: d}); ok {
		t.Fatalf("skew ray should miss, got %+v", p)
	}
}

func TestHyperboxSlabMatchesIEEE(t *testing.T) {
	var zero Real
	o, lo, hi := Real(.5), Real(-1), Real(1)
	near, far, ok := slab(o, zero, lo, hi)
	if !ok {
		t.Fatalf("origin inside the slab must not miss")
	}
	ieeeNear, ieeeFar := (lo-o)/zero, (hi-o)/zero
	if near != ieeeNear || far != ieeeFar {
		t.Fatalf("slab (%v,%v), IEEE (%v,%v)", near, far, ieeeNear, ieeeFar)
	}
	if _, _, ok := slab(2, zero, lo, hi); ok {
		t.Fatalf("origin outside the slab must miss")
	}
}

func TestNewAlignedHyperboxOrdersCorners(t *testing.T) {
	h, err := NewAlignedHyperbox(Vector4{1, -2, 3, -4}, Vector4{-1, 2, -3, 4}, DefaultLight, DefaultDark)
	if err != nil {
		t.Fatal(err)
	}
	if h.Min != (Vector4{-1, -2, -3, -4}) || h.Max != (Vector4{1, 2, 3, 4}) {
		t.Fatalf("corners not ordered: %+v %+v", h.Min, h.Max)
	}
	if _, err := NewAlignedHyperbox(Vector4{math.NaN(), 0, 0, 0}, Vector4{}, DefaultLight, DefaultDark); err == nil {
		t.Fatalf("expected error for NaN corner")
	}
	if _, err := NewAlignedHyperbox(Vector4{}, Vector4{0, math.Inf(1), 0, 0}, DefaultLight, DefaultDark); err == nil {
		t.Fatalf("expected error for infinite corner")
	}
}
