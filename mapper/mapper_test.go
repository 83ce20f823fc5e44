package mapper_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qzvr/vrinput/controller"
	"github.com/qzvr/vrinput/event"
	"github.com/qzvr/vrinput/keys"
	"github.com/qzvr/vrinput/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGame struct {
	menu, cinema, outOfLevel bool
}

func (g *fakeGame) InLevel() bool    { return !g.outOfLevel }
func (g *fakeGame) MenuActive() bool { return g.menu }
func (g *fakeGame) CinemaMode() bool { return g.cinema }

type harness struct {
	q       *event.Queue
	st      *mapper.State
	m       *mapper.Mapper
	game    *fakeGame
	prevDom controller.Snapshot
	prevOff controller.Snapshot
	domPose controller.Pose
	offPose controller.Pose
}

func newHarness(cfg mapper.Config) *harness {
	h := &harness{
		q:       &event.Queue{},
		st:      mapper.NewState(),
		game:    &fakeGame{},
		domPose: controller.Pose{Position: mgl64.Vec3{0.2, 1.2, -0.3}, Orientation: mgl64.QuatIdent()},
		offPose: controller.Pose{Position: mgl64.Vec3{-0.2, 1.2, -0.3}, Orientation: mgl64.QuatIdent()},
	}
	h.m = mapper.New(cfg, h.game, h.q, nil)
	return h
}

func (h *harness) step(dom, off controller.Snapshot, mods ...func(*mapper.Frame)) []event.Event {
	f := &mapper.Frame{
		Dominant: mapper.Hand{Old: h.prevDom, New: dom, Pose: h.domPose},
		Off:      mapper.Hand{Old: h.prevOff, New: off, Pose: h.offPose},
		Buttons:  mapper.RightHandedMapping,
		Head:     mapper.Head{Position: mgl64.Vec3{0, 1.6, 0}},
	}
	for _, mod := range mods {
		mod(f)
	}
	h.m.Handle(h.st, f)
	h.prevDom, h.prevOff = dom, off
	return h.q.Drain()
}

func buttons(b controller.Buttons) controller.Snapshot {
	return controller.Snapshot{Buttons: b}
}

func stick(x, y float64) controller.Snapshot {
	return controller.Snapshot{Joystick: mgl64.Vec2{x, y}}
}

func press(k keys.Code) event.Event   { return event.Event{Key: k, Down: true} }
func release(k keys.Code) event.Event { return event.Event{Key: k, Down: false} }

func TestFirePressScenario(t *testing.T) {
	h := newHarness(mapper.DefaultConfig())
	evs := h.step(buttons(controller.ButtonTrigger), controller.Snapshot{})
	assert.Equal(t, []event.Event{press(keys.PadRTrigger)}, evs)
	assert.True(t, h.st.FiringPrimary)
}

func TestButtonEdgeProperty(t *testing.T) {
	type testCase struct {
		name     string
		old, new bool
		expected []event.Event
	}

	cases := []testCase{
		{name: "up up", old: false, new: false},
		{name: "down down", old: true, new: true},
		{name: "press", old: false, new: true, expected: []event.Event{press(keys.PadY)}},
		{name: "release", old: true, new: false, expected: []event.Event{release(keys.PadY)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(mapper.DefaultConfig())
			if tc.old {
				h.prevOff = buttons(controller.ButtonY)
			}
			next := controller.Snapshot{}
			if tc.new {
				next = buttons(controller.ButtonY)
			}
			assert.Equal(t, tc.expected, h.step(controller.Snapshot{}, next))
		})
	}
}

func TestGripShiftSwitchesBindingSet(t *testing.T) {
	h := newHarness(mapper.DefaultConfig())

	assert.Equal(t, []event.Event{press(keys.PadRTrigger)},
		h.step(buttons(controller.ButtonTrigger), controller.Snapshot{}))

	// Grip pressed while firing: the primary key must not stay stuck.
	assert.Equal(t, []event.Event{release(keys.PadRTrigger), press(keys.JoyButton(1))},
		h.step(buttons(controller.ButtonTrigger|controller.ButtonGripTrigger), controller.Snapshot{}))
	assert.True(t, h.st.DominantGripPushed)

	assert.Equal(t, []event.Event{release(keys.JoyButton(1))},
		h.step(buttons(controller.ButtonGripTrigger), controller.Snapshot{}))
}

func TestGripIsButtonWithoutSecondaryMappings(t *testing.T) {
	cfg := mapper.DefaultConfig()
	cfg.SecondaryButtonMappings = false
	h := newHarness(cfg)

	assert.Equal(t, []event.Event{press(keys.PadRShoulder)},
		h.step(buttons(controller.ButtonGripTrigger), controller.Snapshot{}))
	assert.Equal(t, []event.Event{press(keys.PadRTrigger)},
		h.step(buttons(controller.ButtonGripTrigger|controller.ButtonTrigger), controller.Snapshot{}))
}

func TestMenuButtonAlwaysEscapes(t *testing.T) {
	h := newHarness(mapper.DefaultConfig())
	assert.Equal(t, []event.Event{press(keys.Escape)}, h.step(controller.Snapshot{}, buttons(controller.ButtonEnter)))

	h.game.menu = true
	assert.Equal(t, []event.Event{release(keys.Escape)}, h.step(controller.Snapshot{}, controller.Snapshot{}))
}

func TestMenuNavigation(t *testing.T) {
	h := newHarness(mapper.DefaultConfig())
	h.game.menu = true

	assert.Equal(t, []event.Event{press(keys.PadDPadRight)}, h.step(controller.Snapshot{}, stick(0.8, 0)))
	assert.Empty(t, h.step(controller.Snapshot{}, stick(0.9, 0)))
	assert.Equal(t, []event.Event{release(keys.PadDPadRight), press(keys.PadDPadUp)}, h.step(controller.Snapshot{}, stick(0, 0.75)))
	assert.Equal(t, []event.Event{press(keys.PadDPadDown), release(keys.PadDPadUp)}, h.step(controller.Snapshot{}, stick(0, -0.75)))
	assert.Equal(t, []event.Event{press(keys.PadDPadLeft), release(keys.PadDPadDown)}, h.step(controller.Snapshot{}, stick(-0.71, 0)))

	assert.Equal(t, []event.Event{release(keys.PadDPadLeft), press(keys.PadA)},
		h.step(buttons(controller.ButtonTrigger), controller.Snapshot{}))
	// Second source for the same key does not press it twice.
	assert.Empty(t, h.step(buttons(controller.ButtonTrigger|controller.ButtonA), controller.Snapshot{}))
	assert.Equal(t, []event.Event{release(keys.PadA), press(keys.PadB)},
		h.step(buttons(controller.ButtonB), controller.Snapshot{}))
}

func TestModeSwitchReleasesHeldKeys(t *testing.T) {
	h := newHarness(mapper.DefaultConfig())
	h.step(buttons(controller.ButtonTrigger), controller.Snapshot{})

	h.game.menu = true
	assert.Equal(t, []event.Event{release(keys.PadRTrigger), press(keys.PadA)},
		h.step(buttons(controller.ButtonTrigger), controller.Snapshot{}))

	h.game.menu = false
	assert.Equal(t, []event.Event{release(keys.PadA), press(keys.PadRTrigger)},
		h.step(buttons(controller.ButtonTrigger), controller.Snapshot{}))
}

func TestMenuReleaseClearsHeldState(t *testing.T) {
	held := buttons(controller.ButtonTrigger | controller.ButtonA)
	grip := buttons(controller.ButtonGripTrigger)

	t.Run("released in menu", func(t *testing.T) {
		h := newHarness(mapper.DefaultConfig())
		h.step(held, grip)
		require.True(t, h.st.WeaponStabilised)
		require.True(t, h.st.FiringPrimary)
		require.Equal(t, mapper.DuckButton, h.st.Duck)

		h.game.menu = true
		h.step(held, grip)
		h.step(controller.Snapshot{}, controller.Snapshot{})

		h.game.menu = false
		assert.Empty(t, h.step(controller.Snapshot{}, controller.Snapshot{}))
		assert.False(t, h.st.WeaponStabilised)
		assert.False(t, h.st.FiringPrimary)
		assert.Equal(t, mapper.DuckNone, h.st.Duck)
		keysHeld := h.q.Held()
		assert.Empty(t, keysHeld.Held())
	})

	t.Run("still held after menu", func(t *testing.T) {
		h := newHarness(mapper.DefaultConfig())
		h.step(held, grip)

		h.game.menu = true
		h.step(held, grip)

		h.game.menu = false
		h.step(held, grip)
		assert.True(t, h.st.WeaponStabilised)
		assert.True(t, h.st.FiringPrimary)
		assert.Equal(t, mapper.DuckButton, h.st.Duck)
		keysHeld := h.q.Held()
		assert.Equal(t, []keys.Code{keys.PadRTrigger, keys.PadA}, keysHeld.Held())
	})
}

func TestFirstFrameInMenuReleasesNothing(t *testing.T) {
	h := newHarness(mapper.DefaultConfig())
	h.game.menu = true
	h.prevDom = buttons(controller.ButtonTrigger)

	assert.Empty(t, h.step(buttons(controller.ButtonTrigger), controller.Snapshot{}))
	keysHeld := h.q.Held()
	assert.Empty(t, keysHeld.Held())
}

func TestSnapTurnOncePerExcursion(t *testing.T) {
	cfg := mapper.DefaultConfig()
	cfg.SnapTurnAngle = 15
	h := newHarness(cfg)

	for i := 0; i < 10; i++ {
		h.step(stick(0.8, 0), controller.Snapshot{})
	}
	assert.InDelta(t, -15, h.st.SnapTurn, 1e-9)

	h.step(stick(0.1, 0), controller.Snapshot{})
	h.step(stick(0.8, 0), controller.Snapshot{})
	assert.InDelta(t, -30, h.st.SnapTurn, 1e-9)
}

func TestSnapTurnRearmThreshold(t *testing.T) {
	type testCase struct {
		name     string
		xs       []float64
		expected float64
	}

	cases := []testCase{
		{name: "no drop below rearm", xs: []float64{0.5, 0.65, 0.5, 0.65}, expected: -15},
		{name: "drop below rearm", xs: []float64{0.5, 0.65, 0.39, 0.65}, expected: -30},
		{name: "left mirror", xs: []float64{-0.65, -0.45, -0.65, -0.3, -0.7}, expected: 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := mapper.DefaultConfig()
			cfg.SnapTurnAngle = 15
			h := newHarness(cfg)
			for _, x := range tc.xs {
				h.step(stick(x, 0), controller.Snapshot{})
			}
			assert.InDelta(t, tc.expected, h.st.SnapTurn, 1e-9)
		})
	}
}

func TestSnapTurnSmallAngleSteps(t *testing.T) {
	cfg := mapper.DefaultConfig()
	cfg.SnapTurnAngle = 5
	h := newHarness(cfg)
	for i := 0; i < 3; i++ {
		h.step(stick(-0.9, 0), controller.Snapshot{})
	}
	assert.InDelta(t, 15, h.st.SnapTurn, 1e-9)
}

func TestSnapTurnWraps(t *testing.T) {
	h := newHarness(mapper.DefaultConfig())
	h.st.SnapTurn = 170
	h.step(stick(-0.9, 0), controller.Snapshot{})
	assert.InDelta(t, -145, h.st.SnapTurn, 1e-9)

	h.st.SnapTurn = -170
	h.step(stick(0, 0), controller.Snapshot{})
	h.step(stick(0.9, 0), controller.Snapshot{})
	assert.InDelta(t, 145, h.st.SnapTurn, 1e-9)
}

func TestMovementDeadzone(t *testing.T) {
	type testCase struct {
		name   string
		x, y   float64
		moving bool
	}

	cases := []testCase{
		{name: "idle", x: 0, y: 0},
		{name: "jitter", x: 0.03, y: 0.02},
		{name: "inside filter deadzone", x: 0.1, y: 0.05},
		{name: "small push", x: 0.2, y: 0},
		{name: "half push", x: 0.5, y: 0, moving: true},
		{name: "full forward", x: 0, y: 1, moving: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(mapper.DefaultConfig())
			h.step(controller.Snapshot{}, stick(tc.x, tc.y))
			assert.Equal(t, tc.moving, h.st.Motion.PlayerMoving)
			if !tc.moving {
				assert.Zero(t, h.st.Motion.RemoteSideways)
				assert.Zero(t, h.st.Motion.RemoteForward)
			}
		})
	}
}

func TestRemoteMovementFollowsOffhandHeading(t *testing.T) {
	h := newHarness(mapper.DefaultConfig())
	h.step(controller.Snapshot{}, stick(0, 1))
	assert.InDelta(t, 0, h.st.Motion.RemoteSideways, 1e-9)
	assert.InDelta(t, 1, h.st.Motion.RemoteForward, 1e-9)

	// Off hand pointing 90 degrees left turns forward into leftward motion.
	h.offPose.Orientation = mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{0, 1, 0})
	h.step(controller.Snapshot{}, stick(0, 1))
	assert.InDelta(t, -1, h.st.Motion.RemoteSideways, 1e-9)
	assert.InDelta(t, 0, h.st.Motion.RemoteForward, 1e-9)

	cfg := mapper.DefaultConfig()
	cfg.MoveUseOffhand = false
	h2 := newHarness(cfg)
	h2.offPose.Orientation = h.offPose.Orientation
	h2.step(controller.Snapshot{}, stick(0, 1))
	assert.InDelta(t, 1, h2.st.Motion.RemoteForward, 1e-9)
}

func TestSwitchSticks(t *testing.T) {
	cfg := mapper.DefaultConfig()
	cfg.SwitchSticks = true
	h := newHarness(cfg)

	h.step(stick(0, 1), stick(0.9, 0))
	assert.True(t, h.st.Motion.PlayerMoving)
	// The off-hand stick now turns.
	assert.InDelta(t, -45, h.st.SnapTurn, 1e-9)
}

func TestStabilisationGate(t *testing.T) {
	grip := buttons(controller.ButtonGripTrigger)

	t.Run("hands close", func(t *testing.T) {
		h := newHarness(mapper.DefaultConfig())
		h.offPose.Position = h.domPose.Position.Add(mgl64.Vec3{0, 0.1, -0.3})
		h.step(controller.Snapshot{}, grip)
		assert.True(t, h.st.WeaponStabilised)

		// Release always disengages, however far apart the hands are.
		h.offPose.Position = h.domPose.Position.Add(mgl64.Vec3{2, 0, 0})
		h.step(controller.Snapshot{}, controller.Snapshot{})
		assert.False(t, h.st.WeaponStabilised)
	})

	t.Run("hands apart", func(t *testing.T) {
		h := newHarness(mapper.DefaultConfig())
		h.offPose.Position = h.domPose.Position.Add(mgl64.Vec3{0.6, 0, 0})
		h.step(controller.Snapshot{}, grip)
		assert.False(t, h.st.WeaponStabilised)

		// Moving closer while held does not engage without a new press.
		h.offPose.Position = h.domPose.Position
		h.step(controller.Snapshot{}, grip)
		assert.False(t, h.st.WeaponStabilised)
	})

	t.Run("two handed disabled", func(t *testing.T) {
		cfg := mapper.DefaultConfig()
		cfg.TwoHandedWeapons = false
		h := newHarness(cfg)
		h.offPose.Position = h.domPose.Position
		evs := h.step(controller.Snapshot{}, grip)
		assert.False(t, h.st.WeaponStabilised)
		assert.Equal(t, []event.Event{press(keys.PadLShoulder)}, evs)
	})
}

func TestStabilisedAimUsesHandVector(t *testing.T) {
	h := newHarness(mapper.DefaultConfig())
	h.domPose.Position = mgl64.Vec3{0, 1, 0}
	h.offPose.Position = mgl64.Vec3{0, 1.1, -0.1}
	h.step(controller.Snapshot{}, buttons(controller.ButtonGripTrigger))

	require.True(t, h.st.WeaponStabilised)
	assert.InDelta(t, -45, h.st.Motion.WeaponAngles.Pitch, 1e-6)
	assert.InDelta(t, 0, h.st.Motion.WeaponAngles.Yaw, 1e-6)
}

func TestWeaponAnglesFromController(t *testing.T) {
	cfg := mapper.DefaultConfig()
	cfg.WeaponPitchAdjust = 0
	h := newHarness(cfg)
	h.domPose.Orientation = mgl64.QuatRotate(mgl64.DegToRad(30), mgl64.Vec3{0, 1, 0})

	h.step(controller.Snapshot{}, controller.Snapshot{}, func(f *mapper.Frame) {
		f.GameYaw = 100
		f.Head.Yaw = 90
	})
	assert.InDelta(t, 40, h.st.Motion.WeaponAngles.Yaw, 1e-6)
	assert.InDelta(t, 0, h.st.Motion.WeaponAngles.Pitch, 1e-6)
}

func TestWeaponOffset(t *testing.T) {
	h := newHarness(mapper.DefaultConfig())
	h.domPose.Position = mgl64.Vec3{0.2, 1.3, -0.4}

	h.step(controller.Snapshot{}, controller.Snapshot{}, func(f *mapper.Frame) {
		f.GameYaw = 37
		f.Head.Yaw = 37
	})
	assert.True(t, h.st.Motion.WeaponOffset.ApproxEqualThreshold(mgl64.Vec3{0.2, -0.3, -0.4}, 1e-9))

	h.domPose.Position = mgl64.Vec3{0, 1.6, -1}
	h.step(controller.Snapshot{}, controller.Snapshot{}, func(f *mapper.Frame) {
		f.GameYaw = 90
	})
	assert.True(t, h.st.Motion.WeaponOffset.ApproxEqualThreshold(mgl64.Vec3{-1, 0, 0}, 1e-9))
}

func TestOffhandOffsetAndAngles(t *testing.T) {
	h := newHarness(mapper.DefaultConfig())
	h.offPose.Orientation = mgl64.QuatRotate(mgl64.DegToRad(20), mgl64.Vec3{0, 1, 0})

	h.step(controller.Snapshot{}, controller.Snapshot{}, func(f *mapper.Frame) {
		f.GameYaw = 90
	})
	assert.True(t, h.st.Motion.OffhandOffset.ApproxEqualThreshold(mgl64.Vec3{-0.3, -0.4, 0.2}, 1e-9),
		"offset %v", h.st.Motion.OffhandOffset)
	// The fixed off-hand pitch bias tilts a level controller upwards.
	assert.InDelta(t, -15, h.st.Motion.OffhandAngles.Pitch, 1e-6)
	assert.InDelta(t, 110, h.st.Motion.OffhandAngles.Yaw, 1e-6)
	assert.InDelta(t, 0, h.st.Motion.OffhandAngles.Roll, 1e-6)
}

func TestPositionalMovement(t *testing.T) {
	h := newHarness(mapper.DefaultConfig())
	h.step(controller.Snapshot{}, controller.Snapshot{}, func(f *mapper.Frame) {
		f.Head.Yaw = 90
		f.Head.PositionDelta = mgl64.Vec3{-1, 0, 0}
	})
	assert.InDelta(t, 0, h.st.Motion.PositionalSideways, 1e-9)
	assert.InDelta(t, 1, h.st.Motion.PositionalForward, 1e-9)
}

func TestWeaponCycle(t *testing.T) {
	h := newHarness(mapper.DefaultConfig())

	assert.Equal(t, []event.Event{press(keys.MWheelUp), release(keys.MWheelUp)}, h.step(stick(0, 0.9), controller.Snapshot{}))
	assert.Empty(t, h.step(stick(0.1, 0.95), controller.Snapshot{}))
	assert.Empty(t, h.step(stick(0, 0), controller.Snapshot{}))
	assert.Equal(t, []event.Event{press(keys.MWheelDown), release(keys.MWheelDown)}, h.step(stick(0, -0.85), controller.Snapshot{}))
	// Outside the cross-axis band nothing fires.
	h.step(stick(0, 0), controller.Snapshot{})
	assert.Empty(t, h.step(stick(0.3, 0.9), controller.Snapshot{}))
}

func TestInventoryCycleWithoutSnapTurn(t *testing.T) {
	cfg := mapper.DefaultConfig()
	cfg.SnapTurnAngle = 0
	h := newHarness(cfg)

	assert.Equal(t, []event.Event{press(keys.InvNext), release(keys.InvNext)}, h.step(stick(0.9, 0), controller.Snapshot{}))
	assert.Empty(t, h.step(stick(0.9, 0), controller.Snapshot{}))
	assert.Empty(t, h.step(stick(0, 0), controller.Snapshot{}))
	assert.Equal(t, []event.Event{press(keys.InvPrev), release(keys.InvPrev)}, h.step(stick(-0.9, 0), controller.Snapshot{}))
	assert.Zero(t, h.st.SnapTurn)
}

func TestTeleport(t *testing.T) {
	cfg := mapper.DefaultConfig()
	cfg.UseTeleport = true
	h := newHarness(cfg)

	assert.Empty(t, h.step(stick(0, -0.9), controller.Snapshot{}))
	assert.True(t, h.st.TeleportArmed)
	assert.False(t, h.st.Motion.Teleport)

	h.step(stick(0, -0.5), controller.Snapshot{})
	assert.True(t, h.st.TeleportArmed)

	h.step(stick(0, 0), controller.Snapshot{})
	assert.False(t, h.st.TeleportArmed)
	assert.True(t, h.st.Motion.Teleport)

	h.step(stick(0, 0), controller.Snapshot{})
	assert.False(t, h.st.Motion.Teleport)
}

func TestCinemaModeMouseLook(t *testing.T) {
	cfg := mapper.DefaultConfig()
	cfg.CinemaLookSpeed = 2
	h := newHarness(cfg)
	h.game.cinema = true

	assert.Empty(t, h.step(stick(0.9, 0.9), controller.Snapshot{}))
	assert.True(t, h.st.Motion.MouseLook.ApproxEqual(mgl64.Vec2{1.8, 1.8}))
	assert.Zero(t, h.st.SnapTurn)
}

func TestDuck(t *testing.T) {
	h := newHarness(mapper.DefaultConfig())
	h.step(buttons(controller.ButtonA), controller.Snapshot{})
	assert.Equal(t, mapper.DuckButton, h.st.Duck)
	h.step(controller.Snapshot{}, controller.Snapshot{})
	assert.Equal(t, mapper.DuckNone, h.st.Duck)

	h.st.Duck = mapper.DuckCrouched
	h.step(buttons(controller.ButtonA), controller.Snapshot{})
	assert.Equal(t, mapper.DuckCrouched, h.st.Duck)
}

func TestLeftHandedMapping(t *testing.T) {
	h := newHarness(mapper.DefaultConfig())
	evs := h.step(buttons(controller.ButtonY), buttons(controller.ButtonB), func(f *mapper.Frame) {
		f.Buttons = mapper.LeftHandedMapping
	})
	assert.Equal(t, []event.Event{press(keys.Space), press(keys.PadY)}, evs)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, mapper.DefaultConfig().Validate())

	cfg := mapper.DefaultConfig()
	cfg.SnapTurnAngle = -5
	assert.ErrorIs(t, cfg.Validate(), mapper.ErrInvalidConfig)

	cfg = mapper.DefaultConfig()
	cfg.CinemaLookSpeed = -1
	assert.ErrorIs(t, cfg.Validate(), mapper.ErrInvalidConfig)
}
