package slice4d

// Ray starts at Origin and walks along Dir; Dir is expected to be unit.
type Ray struct {
	Origin Vector4
	Dir    Vector4
}

// At returns Origin + Dir*t.
func (r Ray) At(t Real) Vector4 { return r.Origin.Add(r.Dir.Mul(t)) }

// Intersectable is a shape a Ray can hit. FindIntersection returns the first
// forward hit point; ok is false when there is none ("nowhere").
type Intersectable interface {
	FindIntersection(ray Ray) (p Vector4, ok bool)
}
