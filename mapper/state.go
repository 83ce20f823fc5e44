package mapper

// Duck is the crouch state.
type Duck int

const (
	DuckNone Duck = iota
	// DuckButton is a crouch held with the dominant face button.
	DuckButton
	// DuckCrouched is a physical crouch detected by the caller. The button
	// never overrides it.
	DuckCrouched
)

func (d Duck) String() string {
	switch d {
	case DuckNone:
		return "none"
	case DuckButton:
		return "button"
	case DuckCrouched:
		return "crouched"
	default:
		return "unknown"
	}
}

// Latch identifies a repeat-suppression latch.
type Latch int

const (
	LatchWeaponCycle Latch = iota
	LatchInventoryCycle
)

// Snap-turn directions.
const (
	turnRight = iota
	turnLeft
)

// State is the input state that outlives a single frame. It belongs to one
// input context and must only be used from one goroutine.
type State struct {
	// SnapTurn is the accumulated snap-turn angle in degrees, in [-180,180).
	SnapTurn         float64
	WeaponStabilised bool
	TeleportArmed    bool
	Duck             Duck
	FiringPrimary    bool
	// DominantGripPushed mirrors the dominant grip, the shift key for
	// secondary bindings.
	DominantGripPushed bool

	Motion Motion

	latches map[Latch]bool
	// snapFired holds per direction whether a pulse has fired and the
	// direction is waiting to re-arm.
	snapFired [2]bool
	// inMenu is the mode the previous frame was mapped in.
	inMenu bool
	// started is set once the first frame has been mapped.
	started bool
}

// NewState returns a zeroed State.
func NewState() *State {
	return &State{latches: make(map[Latch]bool)}
}

// Latched reports whether latch l has fired and not yet been cleared.
func (st *State) Latched(l Latch) bool {
	return st.latches[l]
}

func (st *State) setLatch(l Latch, v bool) {
	if st.latches == nil {
		st.latches = make(map[Latch]bool)
	}
	st.latches[l] = v
}
