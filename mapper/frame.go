package mapper

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/qzvr/vrinput/controller"
	"github.com/qzvr/vrinput/vrmath"
)

// Hand is one controller's input for a frame.
type Hand struct {
	Old, New controller.Snapshot
	Pose     controller.Pose
}

// Head is the headset state for a frame.
type Head struct {
	Position mgl64.Vec3
	// Yaw is the headset yaw in degrees.
	Yaw float64
	// PositionDelta is the headset displacement since the previous frame.
	PositionDelta mgl64.Vec3
}

// ButtonMapping names the controller buttons that act as the logical face
// buttons of each hand. Old and new snapshots must be read with the same
// mapping for edges to mean anything.
type ButtonMapping struct {
	DomButton1, DomButton2 controller.Buttons
	OffButton1, OffButton2 controller.Buttons
}

// RightHandedMapping is the face-button layout for a right-dominant player.
var RightHandedMapping = ButtonMapping{
	DomButton1: controller.ButtonA,
	DomButton2: controller.ButtonB,
	OffButton1: controller.ButtonX,
	OffButton2: controller.ButtonY,
}

// LeftHandedMapping is the face-button layout for a left-dominant player.
var LeftHandedMapping = ButtonMapping{
	DomButton1: controller.ButtonX,
	DomButton2: controller.ButtonY,
	OffButton1: controller.ButtonA,
	OffButton2: controller.ButtonB,
}

// Frame is everything the mapper reads for one simulation tick.
type Frame struct {
	Dominant Hand
	Off      Hand
	Buttons  ButtonMapping
	Head     Head
	// GameYaw is the player's facing in the game world, in degrees.
	GameYaw float64
}

// GameState is queried once per frame for the mode gates.
type GameState interface {
	// InLevel reports whether a level is being played, as opposed to
	// intermission, title or console screens.
	InLevel() bool
	MenuActive() bool
	CinemaMode() bool
}

// Motion is the per-frame motion and orientation output read by the game
// simulation.
type Motion struct {
	WeaponOffset  mgl64.Vec3
	WeaponAngles  vrmath.Angles
	OffhandOffset mgl64.Vec3
	OffhandAngles vrmath.Angles

	// PositionalSideways and PositionalForward are the headset displacement
	// in the head's own frame: positive is to the right and forward.
	PositionalSideways, PositionalForward float64
	// RemoteSideways and RemoteForward are the filtered stick movement,
	// positive right and forward, rotated by the movement heading.
	RemoteSideways, RemoteForward float64
	PlayerMoving                  bool

	// MouseLook is the cinema-mode look delta (x yaw, y pitch).
	MouseLook mgl64.Vec2
	// Teleport is set for the single frame a teleport is triggered.
	Teleport bool
}
