// Package config defines the command line surface of vrinput.
package config

import (
	"github.com/qzvr/vrinput/internal/cmd"
	"github.com/qzvr/vrinput/internal/log"
)

// CLI is the kong root. Every field can also come from a config file.
type CLI struct {
	ConfigFile string     `name:"config" help:"Path to a config file (json, yaml or toml)" env:"VRINPUT_CONFIG"`
	Log        log.Config `embed:"" prefix:"log."`

	Replay cmd.Replay        `cmd:"" help:"Replay a recorded controller session through the mapper"`
	Config cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
