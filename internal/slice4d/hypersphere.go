package slice4d

import (
	"fmt"
	"math"
)

// Hypersphere is the set of points within Radius of Center.
// Center and Radius may be changed between frames.
type Hypersphere struct {
	Center      Vector4
	Radius      Real
	Light, Dark RGBA
}

func NewHypersphere(center Vector4, radius Real, light, dark RGBA) (*Hypersphere, error) {
	if !(radius >= 0) || math.IsInf(radius, 1) {
		return nil, fmt.Errorf("hypersphere radius must be finite and >= 0, got %g", radius)
	}
	hs := &Hypersphere{Center: center, Radius: radius, Light: light, Dark: dark}
	DebugLog("Created hypersphere: %+v", hs)
	return hs, nil
}

func (s *Hypersphere) LightColor() RGBA { return s.Light }
func (s *Hypersphere) DarkColor() RGBA  { return s.Dark }

// FindIntersection solves |o + t d - c|^2 = r^2 for unit d and keeps only the
// near root. If the near root is behind the origin there is no hit, which
// includes every ray starting inside the sphere.
func (s *Hypersphere) FindIntersection(ray Ray) (Vector4, bool) {
	oc := ray.Origin.Sub(s.Center)
	p := ray.Dir.Dot(oc)
	q := oc.Dot(oc) - s.Radius*s.Radius
	disc := p*p - q
	if disc < 0 {
		return Vector4{}, false
	}
	t := -p - math.Sqrt(disc)
	if t < 0 {
		return Vector4{}, false
	}
	return ray.At(t), true
}
