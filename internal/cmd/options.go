package cmd

import "github.com/qzvr/vrinput/mapper"

// VROptions are the vr_* options exposed as flags.
type VROptions struct {
	SwitchSticks            bool    `name:"switchsticks" help:"Swap which hand's stick moves and which turns" env:"VRINPUT_SWITCHSTICKS"`
	SecondaryButtonMappings bool    `name:"secondarybuttonmappings" negatable:"" default:"true" help:"Use the dominant grip as shift for secondary bindings" env:"VRINPUT_SECONDARYBUTTONMAPPINGS"`
	TwoHandedWeapons        bool    `name:"twohandedweapons" negatable:"" default:"true" help:"Let the off-hand grip stabilise two-handed aim" env:"VRINPUT_TWOHANDEDWEAPONS"`
	SnapTurnAngle           float64 `name:"snapturn-angle" default:"45" help:"Snap turn angle in degrees, 0 disables" env:"VRINPUT_SNAPTURN_ANGLE"`
	MoveUseOffhand          bool    `name:"moveuseoffhand" negatable:"" default:"true" help:"Move in the direction the off hand points" env:"VRINPUT_MOVEUSEOFFHAND"`
	WeaponPitchAdjust       float64 `name:"weapon-pitchadjust" default:"-30" help:"Weapon pitch bias in degrees" env:"VRINPUT_WEAPON_PITCHADJUST"`
	UseTeleport             bool    `name:"use-teleport" help:"Enable the pull-back teleport gesture" env:"VRINPUT_USE_TELEPORT"`
	CinemaLookSpeed         float64 `name:"cinema-look-speed" default:"1" help:"Stick look speed in cinema mode" env:"VRINPUT_CINEMA_LOOK_SPEED"`
}

// MapperConfig converts the flags into a mapper configuration.
func (o VROptions) MapperConfig() mapper.Config {
	return mapper.Config{
		SwitchSticks:            o.SwitchSticks,
		SecondaryButtonMappings: o.SecondaryButtonMappings,
		TwoHandedWeapons:        o.TwoHandedWeapons,
		SnapTurnAngle:           o.SnapTurnAngle,
		MoveUseOffhand:          o.MoveUseOffhand,
		WeaponPitchAdjust:       o.WeaponPitchAdjust,
		UseTeleport:             o.UseTeleport,
		CinemaLookSpeed:         o.CinemaLookSpeed,
	}
}
