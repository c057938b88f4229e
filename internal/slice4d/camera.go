package slice4d

import (
	"fmt"
	"math"
)

// Camera is a flying 4D camera. Yaw turns in the XY plane, Pitch lifts
// towards Z and WYRotation picks which 3D slice of the world is visible.
//
// Invariants kept by Rotate and ApplyMovement:
//   - Pitch is inside [-PitchLimit, PitchLimit].
//   - Yaw is inside (-π, π].
//   - WYRotation is inside [0, 2π); TargetWYRotation keeps its offset to it.
type Camera struct {
	Pos              Vector4
	Yaw              Real
	Pitch            Real
	WYRotation       Real
	TargetWYRotation Real
	Velocity         Vector4 // per axis: X right, Y forward, Z up, W along the slice normal
	Speed            Real
	Sensitivity      Real
	FovY             Real
}

func NewCamera() *Camera {
	return &Camera{
		Yaw:         -math.Pi / 2,
		Speed:       CameraSpeed,
		Sensitivity: CameraSensitivity,
		FovY:        FovYDeg * math.Pi / 180,
	}
}

// Snapshot returns a copy that a render pass can read while the original
// keeps being updated.
func (c *Camera) Snapshot() Camera { return *c }

// DirVec returns the unit direction for the given angles:
//
//	x =  cos(yaw)·cos(pitch)
//	y =  sin(yaw)·cos(wy)·cos(pitch)
//	z =  sin(pitch)
//	w = -sin(yaw)·sin(wy)·cos(pitch)
func DirVec(yaw, pitch, wy Real) Vector4 {
	local := Vector3{
		math.Cos(yaw) * math.Cos(pitch),
		math.Sin(yaw) * math.Cos(pitch),
		math.Sin(pitch),
	}
	return embedSlice(local, wy).Norm()
}

// Forward, Right and Up are the camera axes; Right ignores pitch.
func (c *Camera) Forward() Vector4 { return DirVec(c.Yaw, c.Pitch, c.WYRotation) }
func (c *Camera) Right() Vector4   { return DirVec(c.Yaw+math.Pi/2, 0, c.WYRotation) }
func (c *Camera) Up() Vector4      { return DirVec(c.Yaw, c.Pitch+math.Pi/2, c.WYRotation) }

// WUp is the axis orthogonal to the visible slice.
func (c *Camera) WUp() Vector4 { return sliceRotation(c.WYRotation).Col(3) }

// Rotate applies mouse-style deltas scaled by Sensitivity.
// A positive dPitch looks down, matching screen Y.
func (c *Camera) Rotate(dYaw, dPitch, dWY Real) {
	c.Yaw += dYaw * c.Sensitivity
	c.Pitch -= dPitch * c.Sensitivity
	c.WYRotation += dWY * c.Sensitivity

	c.Yaw = math.Remainder(c.Yaw, 2*math.Pi)
	if c.Yaw == -math.Pi {
		c.Yaw = math.Pi
	}
	c.Pitch = clamp(c.Pitch, -PitchLimit, PitchLimit)
}

func (c *Camera) RotateWYClockwise()        { c.TargetWYRotation += WYStep }
func (c *Camera) RotateWYCounterClockwise() { c.TargetWYRotation -= WYStep }

// SetVelocity stores the movement input; no keys held is the zero vector.
func (c *Camera) SetVelocity(v Vector4) { c.Velocity = v.MaybeNorm() }

// ApplyMovement integrates Velocity over dt seconds and eases WYRotation
// towards its target.
func (c *Camera) ApplyMovement(dt Real) {
	step := c.Speed * dt
	c.Pos = c.Pos.
		Add(c.Forward().Mul(step * c.Velocity.Y)).
		Add(c.Right().Mul(step * c.Velocity.X)).
		Add(c.Up().Mul(step * c.Velocity.Z)).
		Add(c.WUp().Mul(step * c.Velocity.W))

	c.WYRotation = lerp(c.WYRotation, c.TargetWYRotation, math.Min(dt*WYLerpRate, 1))

	if c.WYRotation < 0 || c.WYRotation >= 2*math.Pi {
		turns := math.Floor(c.WYRotation/(2*math.Pi)) * 2 * math.Pi
		c.WYRotation -= turns
		c.TargetWYRotation -= turns
	}
}

// Status is the coordinates line shown by the host.
func (c *Camera) Status() string {
	deg := func(a Real) int { return int(math.Round(a * 180 / math.Pi)) }
	r := func(a Real) int { return int(math.Round(a)) }
	return fmt.Sprintf("[X%d Y%d Z%d W%d]   YAW %d°   PITCH %d°   WY %d°",
		r(c.Pos.X), r(c.Pos.Y), r(c.Pos.Z), r(c.Pos.W), deg(c.Yaw), deg(c.Pitch), deg(c.WYRotation))
}
