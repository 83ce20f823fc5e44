package mapper

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qzvr/vrinput/event"
	"github.com/qzvr/vrinput/keys"
	"github.com/qzvr/vrinput/vrmath"
)

const (
	cycleThreshold   = 0.8
	crossAxisBand    = 0.2
	teleportArmBelow = -0.7
)

// handleWeaponCycle sends one wheel pulse per excursion of the turn stick to
// the top or bottom of its travel.
func (m *Mapper) handleWeaponCycle(st *State, turn mgl64.Vec2) {
	up := vrmath.Between(cycleThreshold, turn.Y(), 1)
	down := vrmath.Between(-1, turn.Y(), -cycleThreshold) && !m.cfg.UseTeleport
	if !vrmath.Between(-crossAxisBand, turn.X(), crossAxisBand) || !(up || down) {
		st.setLatch(LatchWeaponCycle, false)
		return
	}
	if st.Latched(LatchWeaponCycle) {
		return
	}
	if up {
		event.Pulse(m.sink, keys.MWheelUp)
	} else {
		event.Pulse(m.sink, keys.MWheelDown)
	}
	st.setLatch(LatchWeaponCycle, true)
}

// handleInventoryCycle uses the turn stick's x axis for inventory selection
// while snap turning is off.
func (m *Mapper) handleInventoryCycle(st *State, turn mgl64.Vec2) {
	next := vrmath.Between(cycleThreshold, turn.X(), 1)
	prev := vrmath.Between(-1, turn.X(), -cycleThreshold)
	if !vrmath.Between(-crossAxisBand, turn.Y(), crossAxisBand) || !(next || prev) {
		st.setLatch(LatchInventoryCycle, false)
		return
	}
	if st.Latched(LatchInventoryCycle) {
		return
	}
	if next {
		event.Pulse(m.sink, keys.InvNext)
	} else {
		event.Pulse(m.sink, keys.InvPrev)
	}
	st.setLatch(LatchInventoryCycle, true)
}

// handleTeleport arms on a pull back of the turn stick and fires once the
// stick is let go.
func (m *Mapper) handleTeleport(st *State, turn mgl64.Vec2) {
	if !m.cfg.UseTeleport {
		st.TeleportArmed = false
		return
	}
	if turn.Y() < teleportArmBelow {
		if !st.TeleportArmed {
			m.logger.Debug("teleport armed")
		}
		st.TeleportArmed = true
		return
	}
	if st.TeleportArmed && math.Abs(turn.Y()) < crossAxisBand {
		st.TeleportArmed = false
		st.Motion.Teleport = true
		m.logger.Debug("teleport triggered")
	}
}
