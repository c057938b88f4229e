package slice4d

import "math"

const (
	Width          = 640
	Height         = 360
	FovYDeg        = 45
	OutPNG         = "slice.png"
	TasksPerWorker = 4 // row ranges submitted per pool worker
	// camera defaults
	CameraSpeed       = 5.0
	CameraSensitivity = 0.005
	PitchLimit        = math.Pi/2 - 0.001
	WYStep            = math.Pi / 8 // one scroll notch in the WY plane
	WYLerpRate        = 4.0
	// lighting falloff: brightness = 1 / (d^2 / FalloffScale)
	FalloffScale = 10.0
	// demo world
	WhiteSphereRadius = 1.0
)
