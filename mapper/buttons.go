package mapper

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/qzvr/vrinput/controller"
	"github.com/qzvr/vrinput/event"
	"github.com/qzvr/vrinput/keys"
)

const (
	handDominant = iota
	handOff
)

// binding ties a controller button to a primary key and, when the dominant
// grip is used as shift, a secondary key. A zero secondary means the
// primary key is used in both sets.
type binding struct {
	hand      int
	mask      controller.Buttons
	primary   keys.Code
	secondary keys.Code
}

func (b binding) key(shift bool) keys.Code {
	if shift && b.secondary != 0 {
		return b.secondary
	}
	return b.primary
}

func (m *Mapper) gameplayBindings(f *Frame) []binding {
	bs := []binding{
		{handDominant, controller.ButtonTrigger, keys.PadRTrigger, keys.JoyButton(1)},
		{handDominant, f.Buttons.DomButton1, keys.PadA, keys.JoyButton(2)},
		{handDominant, f.Buttons.DomButton2, keys.Space, keys.JoyButton(3)},
		{handDominant, controller.ButtonJoystick, keys.PadRThumb, keys.JoyButton(4)},
		{handOff, controller.ButtonTrigger, keys.PadLTrigger, keys.JoyButton(5)},
		{handOff, f.Buttons.OffButton1, keys.PadX, keys.JoyButton(6)},
		{handOff, f.Buttons.OffButton2, keys.PadY, keys.JoyButton(7)},
		{handOff, controller.ButtonJoystick, keys.PadLThumb, keys.JoyButton(8)},
	}
	if !m.cfg.TwoHandedWeapons {
		bs = append(bs, binding{handOff, controller.ButtonGripTrigger, keys.PadLShoulder, keys.JoyButton(9)})
	}
	if !m.cfg.SecondaryButtonMappings {
		bs = append(bs, binding{handDominant, controller.ButtonGripTrigger, keys.PadRShoulder, 0})
	}
	return bs
}

func (m *Mapper) shift(s controller.Snapshot) bool {
	return m.cfg.SecondaryButtonMappings && s.Pressed(controller.ButtonGripTrigger)
}

func hands(f *Frame) [2]*Hand {
	return [2]*Hand{handDominant: &f.Dominant, handOff: &f.Off}
}

// handleButtons edge-detects every gameplay binding. If the binding set
// changes while a button is held, the old set's key is released and the new
// set's key pressed so nothing is left stuck down.
func (m *Mapper) handleButtons(f *Frame) {
	hs := hands(f)
	shiftOld := m.shift(f.Dominant.Old)
	shiftNew := m.shift(f.Dominant.New)
	for _, b := range m.gameplayBindings(f) {
		h := hs[b.hand]
		oldDown := h.Old.Pressed(b.mask)
		newDown := h.New.Pressed(b.mask)
		oldKey := b.key(shiftOld)
		newKey := b.key(shiftNew)
		if oldKey == newKey {
			event.Button(m.sink, oldDown, newDown, newKey)
			continue
		}
		if oldDown {
			m.sink.Post(event.Event{Key: oldKey, Down: false})
		}
		if newDown {
			m.sink.Post(event.Event{Key: newKey, Down: true})
		}
	}
}

func (m *Mapper) releaseGameplayKeys(f *Frame) {
	hs := hands(f)
	shiftOld := m.shift(f.Dominant.Old)
	for _, b := range m.gameplayBindings(f) {
		if hs[b.hand].Old.Pressed(b.mask) {
			m.sink.Post(event.Event{Key: b.key(shiftOld), Down: false})
		}
	}
}

type keyState struct {
	key  keys.Code
	down bool
}

// Menu navigation thresholds.
const menuStickThreshold = 0.7

func menuKeyStates(dom controller.Snapshot, move mgl64.Vec2, b ButtonMapping) [6]keyState {
	return [6]keyState{
		{keys.PadDPadRight, move.X() > menuStickThreshold},
		{keys.PadDPadLeft, move.X() < -menuStickThreshold},
		{keys.PadDPadDown, move.Y() < -menuStickThreshold},
		{keys.PadDPadUp, move.Y() > menuStickThreshold},
		{keys.PadA, dom.Pressed(b.DomButton1) || dom.Pressed(controller.ButtonTrigger)},
		{keys.PadB, dom.Pressed(b.DomButton2)},
	}
}

func (m *Mapper) releaseMenuKeys(f *Frame) {
	sticks := m.resolveSticks(f)
	for _, ks := range menuKeyStates(f.Dominant.Old, sticks[stickMove].old, f.Buttons) {
		if ks.down {
			m.sink.Post(event.Event{Key: ks.key, Down: false})
		}
	}
}

// updateDuckAndFire tracks the crouch button and whether the primary
// trigger is held.
func (m *Mapper) updateDuckAndFire(st *State, f *Frame) {
	dom := f.Dominant
	if dom.Old.Pressed(controller.ButtonTrigger) != dom.New.Pressed(controller.ButtonTrigger) {
		st.FiringPrimary = dom.New.Pressed(controller.ButtonTrigger)
	}

	b1 := f.Buttons.DomButton1
	if dom.Old.Pressed(b1) != dom.New.Pressed(b1) && st.Duck != DuckCrouched {
		if dom.New.Pressed(b1) {
			st.Duck = DuckButton
		} else {
			st.Duck = DuckNone
		}
	}
}
