// Package vrmath holds the small amount of trigonometry needed to move
// between VR tracking space and the game's yaw-relative frame.
//
// Angles are in degrees throughout. Yaw is positive turning left
// (counter-clockwise seen from above), pitch is positive looking down.
package vrmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
)

// Angles is a pitch/yaw/roll triple in degrees.
type Angles struct {
	Pitch, Yaw, Roll float64
}

// Between reports whether min <= v <= max.
func Between(min, v, max float64) bool {
	return v >= min && v <= max
}

// RotateAboutOrigin rotates a 2D vector counter-clockwise by deg degrees.
func RotateAboutOrigin(v mgl64.Vec2, deg float64) mgl64.Vec2 {
	return mgl64.Rotate2D(mgl64.DegToRad(deg)).Mul2x1(v)
}

// RotateYaw rotates a VR-space vector about the vertical axis by deg degrees.
func RotateYaw(v mgl64.Vec3, deg float64) mgl64.Vec3 {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), axisY).Rotate(v)
}

// QuatToYawPitchRoll extracts game angles from a VR orientation. pitchAdjust
// tilts the controller's local frame about its own X axis first, so a
// comfortable wrist angle can map to level aim.
func QuatToYawPitchRoll(q mgl64.Quat, pitchAdjust float64) Angles {
	if pitchAdjust != 0 {
		q = q.Mul(mgl64.QuatRotate(mgl64.DegToRad(pitchAdjust), axisX))
	}
	forward := q.Rotate(mgl64.Vec3{0, 0, -1})
	right := q.Rotate(axisX)
	up := q.Rotate(axisY)

	return Angles{
		Pitch: -mgl64.RadToDeg(math.Asin(mgl64.Clamp(forward.Y(), -1, 1))),
		Yaw:   mgl64.RadToDeg(math.Atan2(-forward.X(), -forward.Z())),
		Roll:  mgl64.RadToDeg(math.Atan2(right.Y(), up.Y())),
	}
}

// Stick filter constants.
const (
	FilterDeadzone = 0.1
	FilterPower    = 2.2
)

// NonLinearFilter maps a stick magnitude onto a curve that suppresses small
// deflections more than proportionally. The sign of in is preserved and its
// magnitude is clamped to 1.
func NonLinearFilter(in float64) float64 {
	mag := math.Abs(in)
	if mag <= FilterDeadzone {
		return 0
	}
	if mag > 1 {
		mag = 1
	}
	val := math.Pow((mag-FilterDeadzone)/(1-FilterDeadzone), FilterPower)
	if in < 0 {
		return -val
	}
	return val
}

// WrapDegrees folds an angle into [-180, 180).
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg+180, 360)
	if deg < 0 {
		deg += 360
	}
	return deg - 180
}
