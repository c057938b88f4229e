package slice4d

import "math"

// Scene is an ordered list of primitives. Order never changes the rendered
// result because TraceRay scans all of them.
type Scene struct {
	Objects []Intersectable
}

func NewScene() *Scene { return &Scene{} }

func (s *Scene) Add(o Intersectable) { s.Objects = append(s.Objects, o) }

func (s *Scene) Len() int { return len(s.Objects) }

// AddHyperbox adds a box spanned by two opposite corners.
func (s *Scene) AddHyperbox(a, b Vector4, light, dark RGBA) (*AlignedHyperbox, error) {
	h, err := NewAlignedHyperbox(a, b, light, dark)
	if err != nil {
		return nil, err
	}
	s.Add(h)
	return h, nil
}

// AddHypersphere adds a sphere and returns it so callers may animate it.
func (s *Scene) AddHypersphere(center Vector4, radius Real, light, dark RGBA) (*Hypersphere, error) {
	h, err := NewHypersphere(center, radius, light, dark)
	if err != nil {
		return nil, err
	}
	s.Add(h)
	return h, nil
}

// nearestHit returns the primitive closest to the ray origin and its
// distance. Ties keep the first one found.
func (s *Scene) nearestHit(ray Ray) (Intersectable, Real, bool) {
	var best Intersectable
	bestD := math.MaxFloat64
	for _, o := range s.Objects {
		p, ok := o.FindIntersection(ray)
		if !ok {
			continue
		}
		if d := ray.Origin.Sub(p).Len(); d < bestD {
			bestD, best = d, o
		}
	}
	return best, bestD, best != nil
}

// background blends two fixed colors by the ray's W direction so misses
// still show the 4D orientation.
func background(dir Vector4) RGBA {
	return BackgroundA.Mul(math.Cos(dir.W)).Add(BackgroundB.Mul(math.Sin(dir.W)))
}

// shade fades from the light to the dark color as the hit gets further away.
func shade(light, dark RGBA, distance Real) RGBA {
	brightness := 1.0
	if distance != 0 {
		brightness = 1 / (distance * distance / FalloffScale)
	}
	brightness = clamp(brightness, 0, 1)
	c := light.Mul(brightness).Add(dark.Mul(1 - brightness))
	c.A = 1
	return c
}

// TraceRay returns the color seen along ray. It only reads the scene and is
// safe to call from many goroutines during a pass.
func (s *Scene) TraceRay(ray Ray) RGBA {
	o, d, ok := s.nearestHit(ray)
	if !ok {
		if Debug {
			stats.record(Miss)
		}
		return background(ray.Dir)
	}
	if Debug {
		stats.record(Hit)
	}
	light, dark := FallbackLight, FallbackDark
	if c, ok := o.(Colored); ok {
		light, dark = c.LightColor(), c.DarkColor()
	}
	return shade(light, dark, d)
}
