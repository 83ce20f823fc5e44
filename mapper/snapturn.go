package mapper

import "github.com/qzvr/vrinput/vrmath"

const (
	snapFireThreshold  = 0.6
	snapRearmThreshold = 0.4
	// Angles at or below this step every frame the stick is held instead of
	// once per push.
	snapContinuousMaxAngle = 10.0
)

// handleSnapTurn applies one turn pulse when the stick crosses the fire
// threshold in an armed direction. Pushing right turns right, which lowers
// the accumulated angle.
func (m *Mapper) handleSnapTurn(st *State, x float64) {
	angle := m.cfg.SnapTurnAngle

	if x > snapFireThreshold {
		if !st.snapFired[turnRight] {
			m.snap(st, -angle)
			st.snapFired[turnRight] = angle > snapContinuousMaxAngle
		}
	} else if x < snapRearmThreshold {
		st.snapFired[turnRight] = false
	}

	if x < -snapFireThreshold {
		if !st.snapFired[turnLeft] {
			m.snap(st, angle)
			st.snapFired[turnLeft] = angle > snapContinuousMaxAngle
		}
	} else if x > -snapRearmThreshold {
		st.snapFired[turnLeft] = false
	}
}

func (m *Mapper) snap(st *State, delta float64) {
	st.SnapTurn = vrmath.WrapDegrees(st.SnapTurn + delta)
	m.logger.Debug("snap turn", "delta", delta, "total", st.SnapTurn)
}
