// Package mapper turns two tracked VR controllers into the engine's key
// event stream and the motion state read by the game simulation.
//
// Handle is called once per frame from the main loop. All state that has to
// survive between frames lives in a State owned by the caller.
package mapper

import (
	"context"
	"io"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qzvr/vrinput/controller"
	"github.com/qzvr/vrinput/event"
	"github.com/qzvr/vrinput/internal/log"
	"github.com/qzvr/vrinput/keys"
)

// Mapper applies a Config to frames.
type Mapper struct {
	cfg    Config
	game   GameState
	sink   event.Sink
	logger *slog.Logger
}

// New returns a Mapper posting key events to sink. A nil logger discards logs.
func New(cfg Config, game GameState, sink event.Sink, logger *slog.Logger) *Mapper {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Mapper{
		cfg:    cfg,
		game:   game,
		sink:   sink,
		logger: logger,
	}
}

// Config returns the options the mapper was built with.
func (m *Mapper) Config() Config {
	return m.cfg
}

// Stick slots.
const (
	stickMove = iota
	stickTurn
)

type stick struct {
	old, new mgl64.Vec2
}

// Handle maps one frame. Key transitions go to the sink, motion and latches
// are written to st.
func (m *Mapper) Handle(st *State, f *Frame) {
	// Menu button works in every mode.
	menuOld := (f.Dominant.Old.Buttons | f.Off.Old.Buttons) & controller.ButtonEnter
	menuNew := (f.Dominant.New.Buttons | f.Off.New.Buttons) & controller.ButtonEnter
	event.Button(m.sink, menuOld != 0, menuNew != 0, keys.Escape)

	inMenu := !m.game.InLevel() || m.game.MenuActive()
	if !st.started {
		// Nothing has been pressed yet, so there is nothing to release.
		st.started = true
		st.inMenu = inMenu
	}
	g := *f
	if inMenu != st.inMenu {
		m.logger.Debug("input mode changed", "menu", inMenu)
		if st.inMenu {
			m.releaseMenuKeys(f)
		} else {
			m.releaseGameplayKeys(f)
		}
		// Anything held across the switch is pressed fresh in the new mode.
		g.Dominant.Old = controller.Snapshot{}
		g.Off.Old = controller.Snapshot{}
		st.inMenu = inMenu
		if !inMenu {
			m.resyncHeldState(st, f)
		}
	}

	sticks := m.resolveSticks(&g)
	if inMenu {
		m.handleMenu(st, &g, sticks)
		return
	}
	m.handleGameplay(st, &g, sticks)
}

// resolveSticks picks which hand moves and which hand turns.
func (m *Mapper) resolveSticks(f *Frame) [2]stick {
	s := [2]stick{
		stickMove: {old: f.Off.Old.Joystick, new: f.Off.New.Joystick},
		stickTurn: {old: f.Dominant.Old.Joystick, new: f.Dominant.New.Joystick},
	}
	if m.cfg.SwitchSticks {
		s[stickMove], s[stickTurn] = s[stickTurn], s[stickMove]
	}
	return s
}

func (m *Mapper) handleMenu(st *State, f *Frame, sticks [2]stick) {
	oldKeys := menuKeyStates(f.Dominant.Old, sticks[stickMove].old, f.Buttons)
	newKeys := menuKeyStates(f.Dominant.New, sticks[stickMove].new, f.Buttons)
	for i := range newKeys {
		event.Button(m.sink, oldKeys[i].down, newKeys[i].down, newKeys[i].key)
	}

	st.Motion.RemoteSideways = 0
	st.Motion.RemoteForward = 0
	st.Motion.PlayerMoving = false
	st.Motion.MouseLook = mgl64.Vec2{}
	st.Motion.Teleport = false
}

func (m *Mapper) handleGameplay(st *State, f *Frame, sticks [2]stick) {
	st.DominantGripPushed = f.Dominant.New.Pressed(controller.ButtonGripTrigger)
	m.updateStabilisation(st, f)

	m.handleButtons(f)
	m.updateDuckAndFire(st, f)

	m.updateWeapon(st, f)
	heading := m.updateOffhand(st, f)
	m.updatePositional(st, f)
	m.updateRemoteMovement(st, sticks[stickMove].new, heading)

	st.Motion.MouseLook = mgl64.Vec2{}
	st.Motion.Teleport = false
	turn := sticks[stickTurn].new
	if m.game.CinemaMode() {
		st.Motion.MouseLook = turn.Mul(m.cfg.CinemaLookSpeed)
		return
	}
	m.handleTeleport(st, turn)
	m.handleWeaponCycle(st, turn)
	if m.cfg.SnapTurnAngle == 0 {
		m.handleInventoryCycle(st, turn)
	} else {
		m.handleSnapTurn(st, turn.X())
	}
}

// resyncHeldState drops gameplay state whose button was let go while the
// menu had the controllers.
func (m *Mapper) resyncHeldState(st *State, f *Frame) {
	if !f.Off.New.Pressed(controller.ButtonGripTrigger) {
		st.WeaponStabilised = false
	}
	st.FiringPrimary = f.Dominant.New.Pressed(controller.ButtonTrigger)
	if st.Duck == DuckButton && !f.Dominant.New.Pressed(f.Buttons.DomButton1) {
		st.Duck = DuckNone
	}
}

func (m *Mapper) trace(msg string, args ...any) {
	m.logger.Log(context.Background(), log.LevelTrace, msg, args...)
}
