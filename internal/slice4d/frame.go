package slice4d

import (
	"image"
	"image/color"
)

// Frame is the RGBA8 surface a pass writes into.
type Frame struct {
	Img *image.NRGBA
}

func NewFrame(width, height int) *Frame {
	return &Frame{Img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

func (f *Frame) Width() int  { return f.Img.Rect.Dx() }
func (f *Frame) Height() int { return f.Img.Rect.Dy() }

// Set writes one pixel, clamping every channel to [0,1] first. Distinct
// pixels never share bytes, so concurrent Sets on different (x, y) are safe.
func (f *Frame) Set(x, y int, c RGBA) {
	n := c.NRGBA()
	p := f.Img.PixOffset(x, y)
	f.Img.Pix[p+0] = n.R
	f.Img.Pix[p+1] = n.G
	f.Img.Pix[p+2] = n.B
	f.Img.Pix[p+3] = n.A
}

func (f *Frame) At(x, y int) color.NRGBA { return f.Img.NRGBAAt(x, y) }

// Renderer ties a scene and a camera to an optional row pool.
type Renderer struct {
	Scene  *Scene
	Camera *Camera
	Pool   *RowPool // nil renders sequentially
}

// Render traces one full frame. The camera is snapshotted first; the scene
// must not be mutated until Render returns.
func (r *Renderer) Render(f *Frame) {
	cam := r.Camera.Snapshot()
	visit := func(x, y int, ray Ray) { f.Set(x, y, r.Scene.TraceRay(ray)) }
	if r.Pool == nil {
		cam.ForEachRay(f.Width(), f.Height(), visit)
	} else {
		cam.ForEachRayParallel(f.Width(), f.Height(), r.Pool, visit)
	}
	if Debug {
		raysStats()
	}
}

// Update advances the camera by dt seconds; call it between Renders.
func (r *Renderer) Update(dt Real) {
	r.Camera.ApplyMovement(dt)
}
