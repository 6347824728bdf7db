package main

import (
	"flag"

	"github.com/lixenwraith/kickball/config"
)

// options are command-line settings; only explicitly given flags override the config
type options struct {
	configPath string
	initConfig bool

	debug  bool
	mute   bool
	listen string
	serial string
	color  string

	set map[string]bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{set: make(map[string]bool)}
	fs.StringVar(&o.configPath, "config", config.DefaultPath, "TOML config file")
	fs.BoolVar(&o.initConfig, "init-config", false, "Write the effective config to -config and exit")
	fs.BoolVar(&o.debug, "debug", false, "Write a debug log to logs/")
	fs.BoolVar(&o.mute, "mute", false, "Disable sound")
	fs.StringVar(&o.listen, "listen", "", "Tracker bridge listen address")
	fs.StringVar(&o.serial, "serial", "", "Tilt knob serial port, or \"auto\"")
	fs.StringVar(&o.color, "color", "", "Color mode: true, basic")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

func (o *options) apply(cfg *config.Config) {
	if o.set["debug"] {
		cfg.Debug = o.debug
	}
	if o.mute {
		cfg.Audio.Enabled = false
	}
	if o.set["listen"] {
		cfg.Listen = o.listen
	}
	if o.set["serial"] {
		cfg.Serial.Port = o.serial
	}
	if o.set["color"] {
		cfg.Color = o.color
	}
}
