// Package config defines the command line surface of rosmsgc. Every flag can
// also be set from a json, yaml or toml config file or from ROSMSGC_* env vars.
package config

import (
	"github.com/Alia5/rosmsgc/internal/cmd"
	"github.com/Alia5/rosmsgc/internal/log"

	"github.com/alecthomas/kong"
)

type CLI struct {
	ConfigFile string           `name:"config" help:"Config file to load before the default locations" env:"ROSMSGC_CONFIG"`
	Log        log.Config       `embed:"" prefix:"log."`
	Version    kong.VersionFlag `help:"Print version and exit"`

	Generate cmd.Generate      `cmd:"" default:"withargs" help:"Generate Rust sources from ROS message definition directories"`
	Scan     cmd.Scan          `cmd:"" help:"Print the parsed message tree as JSON"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}

// ReservesStdout reports whether the selected command writes its result to stdout.
func (c *CLI) ReservesStdout(command string) bool {
	switch command {
	case "generate":
		return c.Generate.Stdout
	case "scan":
		return true
	}
	return false
}
