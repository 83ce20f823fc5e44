package controller

import "github.com/go-gl/mathgl/mgl64"

// Pose is a tracked position and orientation in VR space: metres, x right,
// y up, -z forward.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// IdentityPose returns a pose at the origin looking down -z.
func IdentityPose() Pose {
	return Pose{Orientation: mgl64.QuatIdent()}
}

// Distance returns the straight-line distance between two poses.
func (p Pose) Distance(o Pose) float64 {
	return o.Position.Sub(p.Position).Len()
}
