package slice4d

// Palette of the demo world.
var (
	white         = RGBA{1, 1, 1, 1}
	grey          = RGBA{.2, .2, .2, 1}
	grey2         = RGBA{.7, .7, .7, 1}
	red           = RGBA{1, .2, .2, 1}
	darkRed       = RGBA{.4, .1, .1, 1}
	green         = RGBA{.2, 1, .2, 1}
	green2        = RGBA{.4, 1, .2, 1}
	greenishBlue  = RGBA{.3, .5, .4, .3}
	greenishBlue2 = RGBA{.3, .53, .38, .3}
	blue          = RGBA{.1, .1, .8, 1}
	darkBlue      = RGBA{.1, .1, .4, 1}
	black         = RGBA{0, 0, 0, 1}

	darker  = RGBA{-.1, -.1, -.1, 0}
	lighter = RGBA{.1, .1, .1, 0}
)

type boxSpec struct {
	a, b        Vector4
	light, dark RGBA
}

type sphereSpec struct {
	c           Vector4
	r           Real
	light, dark RGBA
}

func demoBoxes() []boxSpec {
	return []boxSpec{
		{Vector4{-1, -10, -1, -1}, Vector4{1, -8, 1, 1}, white, grey},
		{Vector4{-1.5, -10.5, -.5, -2}, Vector4{.5, -8.5, 1.5, -1}, red, darkRed},
		{Vector4{-6, -5, -1, -2}, Vector4{-1, -3, 1, 3}, red, darkRed},
		// clouds
		{Vector4{-10, -10, 50, -10}, Vector4{1, 80, 51, 30}, white, white.Add(darker)},
		{Vector4{-50, -30, 51, -1}, Vector4{-13, 7, 53, 1}, white, white.Add(darker)},
		// ground
		{Vector4{-100, -100, -100, -100}, Vector4{100, 100, -4, 100}, green, greenishBlue},
		{Vector4{-100, -50, -100, -100}, Vector4{100, 5, -3, 100}, green2, greenishBlue2},
		// border fences
		{Vector4{-99, -99, -6, -99}, Vector4{99, -98, 0, 99}, red, darkRed.Add(lighter)},
		{Vector4{-99, 98, -6, -99}, Vector4{99, 99, 0, 99}, red, darkRed.Add(lighter)},
		{Vector4{98, -99, -6, -99}, Vector4{99, 99, 0, 99}, red, darkRed},
		{Vector4{-99, -99, -6, -99}, Vector4{-98, 99, 0, 99}, red, darkRed},
		{Vector4{-99, -99, -6, -99}, Vector4{99, 99, 0, -98}, red, darkRed.Add(darker)},
		{Vector4{-99, -99, -6, 98}, Vector4{99, 99, 0, 99}, red, darkRed.Add(darker)},
		// fenced area
		{Vector4{-30, -30, -3, 10}, Vector4{-20, -29.5, 0, 20}, red, darkRed.Add(lighter)},
		{Vector4{-30, -20.5, -3, 10}, Vector4{-20, -20, 0, 20}, red, darkRed.Add(lighter)},
		{Vector4{-20.5, -30, -3, 10}, Vector4{-20, -20, 0, 20}, red, darkRed},
		{Vector4{-30, -30, -3, 10}, Vector4{-29.5, -20, 0, 20}, red, darkRed},
		{Vector4{-30, -30, -3, 10}, Vector4{-20, -20, 0, 10.5}, red, darkRed.Add(darker)},
		{Vector4{-30, -30, -3, 19.5}, Vector4{-20, -20, 0, 20}, red, darkRed.Add(darker)},
		// house
		{Vector4{30, -30, -3, 30}, Vector4{40, -29.5, 0, 40}, red, darkRed.Add(lighter)},
		{Vector4{30, -20.5, -3, 30}, Vector4{40, -20, 0, 40}, red, darkRed.Add(lighter)},
		{Vector4{39.5, -30, -3, 30}, Vector4{40, -20, 0, 40}, red, darkRed},
		{Vector4{30, -30, -3, 30}, Vector4{40, -20, 0, 30.5}, red, darkRed.Add(darker)},
		{Vector4{30, -30, -3, 39.5}, Vector4{40, -20, 0, 40}, red, darkRed.Add(darker)},
		// wall with a door hole
		{Vector4{30, -30, -3, 30}, Vector4{30.5, -20, 0, 34}, red, darkRed},
		{Vector4{30, -30, -3, 36}, Vector4{30.5, -20, 0, 40}, red, darkRed},
		{Vector4{30, -30, -3, 30}, Vector4{30.5, -25, 0, 40}, red, darkRed.Add(darker)},
		{Vector4{30, -23, -3, 30}, Vector4{30.5, -20, 0, 40}, red, darkRed.Add(darker)},
		// roof and floor
		{Vector4{30, -30, 0, 30}, Vector4{40, -20, .5, 40}, red, red.Add(darker)},
		{Vector4{30, -30, -3, 30}, Vector4{40, -20, -2.99, 40}, white, grey2},
	}
}

func demoSpheres() []sphereSpec {
	return []sphereSpec{
		{Vector4{8, 3, 3, 1}, 4, blue, darkBlue},
		// a big one towards +W
		{Vector4{0, 0, 10, 40}, 20, red, darkRed},
		// corners
		{Vector4{90, -90, 0, 90}, 10, white, grey},
		{Vector4{-90, 90, 0, 90}, 10, white, darkBlue},
		{Vector4{90, -90, 0, -90}, 10, white, darkRed},
		{Vector4{-90, 90, 0, -90}, 10, white, greenishBlue},
		{Vector4{-35, 11, 10, -8}, 2, white, black},
	}
}

// NewDemoWorld builds the stock scene. The returned white hypersphere is
// still owned by the scene; callers may move or resize it between frames.
func NewDemoWorld() (*Scene, *Hypersphere, error) {
	s := NewScene()
	for _, b := range demoBoxes() {
		if _, err := s.AddHyperbox(b.a, b.b, b.light, b.dark); err != nil {
			return nil, nil, err
		}
	}
	for _, sp := range demoSpheres() {
		if _, err := s.AddHypersphere(sp.c, sp.r, sp.light, sp.dark); err != nil {
			return nil, nil, err
		}
	}
	whiteSphere, err := s.AddHypersphere(Vector4{38, -21.3, -1.5, 35}, WhiteSphereRadius, white, white.Add(darker))
	if err != nil {
		return nil, nil, err
	}
	DebugLog("Demo world: %d primitives", s.Len())
	return s, whiteSphere, nil
}
