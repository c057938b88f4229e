package slice4d

import "math"

// projection holds everything a pass needs to turn a pixel into a ray.
// It is built once per pass from a camera snapshot and only read afterwards.
type projection struct {
	origin        Vector4
	forward       Vector4
	right, up     Vector4 // already scaled to the view rectangle
	width, height int
}

func newProjection(c *Camera, width, height int) projection {
	fovX := Real(width) / Real(height) * c.FovY
	viewW := 2 * math.Tan(fovX/2)
	viewH := 2 * math.Tan(c.FovY/2)
	DebugLogOnce("View rectangle: %.4f x %.4f for %dx%d", viewW, viewH, width, height)
	return projection{
		origin:  c.Pos,
		forward: c.Forward(),
		right:   c.Right().Mul(viewW),
		// negated so that +Z is drawn upwards
		up:     c.Up().Mul(-viewH),
		width:  width,
		height: height,
	}
}

// unit maps i in [0,n) to [-0.5, 0.5]; a single pixel sits at the center.
func unit(i, n int) Real {
	if n <= 1 {
		return 0
	}
	return Real(i)/Real(n-1) - 0.5
}

func (p *projection) ray(x, y int) Ray {
	dir := p.forward.Add(p.right.Mul(unit(x, p.width))).Add(p.up.Mul(unit(y, p.height)))
	return Ray{Origin: p.origin, Dir: dir.Norm()}
}

func (p *projection) row(y int, visit func(x, y int, ray Ray)) {
	for x := 0; x < p.width; x++ {
		visit(x, y, p.ray(x, y))
	}
}

// ForEachRay calls visit once for every pixel, row by row, on the calling
// goroutine.
func (c *Camera) ForEachRay(width, height int, visit func(x, y int, ray Ray)) {
	if width <= 0 || height <= 0 {
		return
	}
	p := newProjection(c, width, height)
	for y := 0; y < height; y++ {
		p.row(y, visit)
	}
}

// ForEachRayParallel is ForEachRay with rows spread over pool. visit is
// called concurrently and must only write state owned by (x, y). The rays are
// bit-identical to the sequential ones.
func (c *Camera) ForEachRayParallel(width, height int, pool *RowPool, visit func(x, y int, ray Ray)) {
	if width <= 0 || height <= 0 {
		return
	}
	p := newProjection(c, width, height)
	pool.Run(height, func(y int) { p.row(y, visit) })
}
