package mapper

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qzvr/vrinput/controller"
	"github.com/qzvr/vrinput/vrmath"
)

const (
	// stabiliseMaxDistance is how close, in metres, the hands must be when
	// the off-hand grip is pressed for two-handed aiming to engage.
	stabiliseMaxDistance = 0.5
	// offhandPitchAdjust is the fixed pitch bias for off-hand angles.
	offhandPitchAdjust = 15.0
	// movementDeadzone zeroes filtered stick movement with |x|+|y| at or
	// below it.
	movementDeadzone = 0.05
)

// updateStabilisation arms two-handed aiming on an off-hand grip press with
// the hands close together and disarms it on release.
func (m *Mapper) updateStabilisation(st *State, f *Frame) {
	if !m.cfg.TwoHandedWeapons {
		st.WeaponStabilised = false
		return
	}
	oldGrip := f.Off.Old.Pressed(controller.ButtonGripTrigger)
	newGrip := f.Off.New.Pressed(controller.ButtonGripTrigger)
	if oldGrip == newGrip {
		return
	}
	if !newGrip {
		st.WeaponStabilised = false
		m.logger.Debug("weapon stabilisation off")
		return
	}
	distance := f.Off.Pose.Distance(f.Dominant.Pose)
	if distance < stabiliseMaxDistance {
		st.WeaponStabilised = true
		m.logger.Debug("weapon stabilisation on", "distance", distance)
	}
}

// yawDelta is how far the game's facing has drifted from the headset's.
func yawDelta(f *Frame) float64 {
	return f.GameYaw - f.Head.Yaw
}

// handOffset returns a hand position relative to the head, rotated about the
// vertical axis so it stays fixed relative to the view. Axes stay in VR
// convention.
func handOffset(p controller.Pose, f *Frame) mgl64.Vec3 {
	return vrmath.RotateYaw(p.Position.Sub(f.Head.Position), yawDelta(f))
}

func (m *Mapper) updateWeapon(st *State, f *Frame) {
	dom := f.Dominant.Pose
	st.Motion.WeaponOffset = handOffset(dom, f)

	angles := vrmath.QuatToYawPitchRoll(dom.Orientation, m.cfg.WeaponPitchAdjust)
	angles.Yaw += yawDelta(f)
	angles.Roll *= -1

	if st.WeaponStabilised {
		d := f.Off.Pose.Position.Sub(dom.Position)
		x, y, z := d.X(), d.Y(), d.Z()
		zxDist := math.Hypot(x, z)
		if zxDist != 0 && z != 0 {
			angles.Pitch = -mgl64.RadToDeg(math.Atan(y / zxDist))
			angles.Yaw = yawDelta(f) - mgl64.RadToDeg(math.Atan2(x, -z))
		}
	}
	st.Motion.WeaponAngles = angles

	m.trace("dominant controller",
		"position", dom.Position,
		"offset", st.Motion.WeaponOffset,
		"angles", angles)
}

// updateOffhand fills the off-hand offset and angles and returns the heading
// joystick movement should be rotated by.
func (m *Mapper) updateOffhand(st *State, f *Frame) float64 {
	off := f.Off.Pose
	st.Motion.OffhandOffset = handOffset(off, f)

	angles := vrmath.QuatToYawPitchRoll(off.Orientation, offhandPitchAdjust)
	angles.Yaw += yawDelta(f)
	st.Motion.OffhandAngles = angles

	m.trace("off-hand controller", "position", off.Position, "offset", st.Motion.OffhandOffset)

	if m.cfg.MoveUseOffhand {
		return angles.Yaw - f.GameYaw
	}
	return 0
}

// updatePositional turns the headset's physical displacement into movement
// relative to where the head is facing.
func (m *Mapper) updatePositional(st *State, f *Frame) {
	local := vrmath.RotateYaw(f.Head.PositionDelta, -f.Head.Yaw)
	st.Motion.PositionalSideways = local.X()
	st.Motion.PositionalForward = -local.Z()

	m.trace("positional movement",
		"sideways", st.Motion.PositionalSideways,
		"forward", st.Motion.PositionalForward)
}

// updateRemoteMovement filters the move stick and rotates it into heading.
func (m *Mapper) updateRemoteMovement(st *State, move mgl64.Vec2, heading float64) {
	nlf := vrmath.NonLinearFilter(move.Len())
	v := move.Mul(nlf)

	st.Motion.PlayerMoving = math.Abs(v.X())+math.Abs(v.Y()) > movementDeadzone
	if !st.Motion.PlayerMoving {
		st.Motion.RemoteSideways = 0
		st.Motion.RemoteForward = 0
		return
	}

	v = vrmath.RotateAboutOrigin(v, heading)
	st.Motion.RemoteSideways = v.X()
	st.Motion.RemoteForward = v.Y()

	m.trace("remote movement",
		"sideways", st.Motion.RemoteSideways,
		"forward", st.Motion.RemoteForward)
}
