package mapper

import (
	"errors"
	"fmt"
	"math"
)

// Config holds the user-facing vr_* options that alter the mapping.
type Config struct {
	// SwitchSticks swaps which hand's stick drives movement/menus and which
	// drives turning.
	SwitchSticks bool
	// SecondaryButtonMappings turns the dominant grip into a shift key that
	// selects the secondary binding set instead of being a button itself.
	SecondaryButtonMappings bool
	// TwoHandedWeapons lets the off-hand grip arm weapon stabilisation.
	// When disabled the off-hand grip is an ordinary button.
	TwoHandedWeapons bool
	// SnapTurnAngle is the turn pulse in degrees. 0 disables snap turning and
	// frees the turn stick's x axis for inventory cycling.
	SnapTurnAngle float64
	// MoveUseOffhand makes the off-hand controller's yaw the movement heading.
	MoveUseOffhand bool
	// WeaponPitchAdjust is a static pitch bias in degrees applied to the
	// dominant controller before aim angles are derived.
	WeaponPitchAdjust float64
	// UseTeleport enables the pull-back-and-release teleport gesture.
	UseTeleport bool
	// CinemaLookSpeed scales the turn stick when it drives mouse-look.
	CinemaLookSpeed float64
}

// DefaultConfig returns the stock option values.
func DefaultConfig() Config {
	return Config{
		SecondaryButtonMappings: true,
		TwoHandedWeapons:        true,
		SnapTurnAngle:           45,
		MoveUseOffhand:          true,
		WeaponPitchAdjust:       -30,
		CinemaLookSpeed:         1,
	}
}

var ErrInvalidConfig = errors.New("invalid vr config")

// Validate rejects values the mapping cannot make sense of.
func (c Config) Validate() error {
	if math.IsNaN(c.SnapTurnAngle) || c.SnapTurnAngle < 0 || c.SnapTurnAngle >= 360 {
		return fmt.Errorf("%w: snap turn angle %v out of range [0,360)", ErrInvalidConfig, c.SnapTurnAngle)
	}
	if math.IsNaN(c.WeaponPitchAdjust) || math.IsInf(c.WeaponPitchAdjust, 0) {
		return fmt.Errorf("%w: weapon pitch adjust must be finite", ErrInvalidConfig)
	}
	if math.IsNaN(c.CinemaLookSpeed) || c.CinemaLookSpeed < 0 {
		return fmt.Errorf("%w: cinema look speed %v must be >= 0", ErrInvalidConfig, c.CinemaLookSpeed)
	}
	return nil
}
