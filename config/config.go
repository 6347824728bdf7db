// Package config loads kickball settings from a TOML file, an optional .env file and KICKBALL_* variables
package config

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/lixenwraith/kickball/parameter"
	"github.com/lixenwraith/kickball/tracking"
)

// ErrInvalid wraps every Validate failure
var ErrInvalid = errors.New("invalid config")

// DefaultPath is used when no -config flag is given
const DefaultPath = "kickball.toml"

type SerialConfig struct {
	// Empty disables the tilt knob; "auto" picks the first port found
	Port string `toml:"port"`
	Baud int    `toml:"baud"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type Config struct {
	Debug  bool   `toml:"debug"`
	Listen string `toml:"listen"`
	Joint  string `toml:"joint"`
	Color  string `toml:"color"`

	Serial  SerialConfig     `toml:"serial"`
	Audio   AudioConfig      `toml:"audio"`
	Physics parameter.Tuning `toml:"physics"`
}

func Default() *Config {
	return &Config{
		Listen:  parameter.DefaultListenAddr,
		Joint:   tracking.DefaultForwardFoot.String(),
		Color:   "true",
		Serial:  SerialConfig{Baud: parameter.SerialBaud},
		Audio:   AudioConfig{Enabled: true},
		Physics: parameter.DefaultTuning(),
	}
}

// Load builds a config from defaults, then path, then env files, then the process environment
// A missing config file or env file is not an error
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "config: decode %s", path)
		}
	}

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "config: load env file")
	}
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as TOML, creating parent directories
func Save(path string, cfg *Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "config: create %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "config: create %s", path)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return errors.Wrapf(err, "config: encode %s", path)
	}
	return f.Close()
}

// applyEnv overrides fields from KICKBALL_* variables, ignoring unparsable values
func applyEnv(cfg *Config) {
	if v := os.Getenv("KICKBALL_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("KICKBALL_JOINT"); v != "" {
		cfg.Joint = v
	}
	if v := os.Getenv("KICKBALL_COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv("KICKBALL_SERIAL_PORT"); v != "" {
		cfg.Serial.Port = v
	}
	if v := os.Getenv("KICKBALL_SERIAL_BAUD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Serial.Baud = n
		} else {
			log.Printf("[config] ignoring KICKBALL_SERIAL_BAUD=%q", v)
		}
	}
	if v := os.Getenv("KICKBALL_AUDIO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
		} else {
			log.Printf("[config] ignoring KICKBALL_AUDIO=%q", v)
		}
	}
	if v := os.Getenv("KICKBALL_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		} else {
			log.Printf("[config] ignoring KICKBALL_DEBUG=%q", v)
		}
	}
}

// JointType returns the parsed forward-foot joint
func (c *Config) JointType() (tracking.JointType, error) {
	return tracking.ParseJointType(c.Joint)
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	p := c.Physics
	switch {
	case p.ContactRadius <= 0:
		return errors.Wrapf(ErrInvalid, "physics.contact_radius %v must be positive", p.ContactRadius)
	case p.FrameWidth <= 0:
		return errors.Wrapf(ErrInvalid, "physics.frame_width %v must be positive", p.FrameWidth)
	case p.FloorLine <= 0 || p.FloorLine > parameter.FrameHeight:
		return errors.Wrapf(ErrInvalid, "physics.floor_line %v outside (0, %v]", p.FloorLine, parameter.FrameHeight)
	case p.Gravity < 0:
		return errors.Wrapf(ErrInvalid, "physics.gravity %v must not be negative", p.Gravity)
	case p.WallRestitution < 0 || p.WallRestitution > 1:
		return errors.Wrapf(ErrInvalid, "physics.wall_restitution %v outside [0, 1]", p.WallRestitution)
	case p.KickRestitution <= 0:
		return errors.Wrapf(ErrInvalid, "physics.kick_restitution %v must be positive", p.KickRestitution)
	case p.Spawn.X < 0 || p.Spawn.X > p.FrameWidth || p.Spawn.Y >= p.FloorLine:
		return errors.Wrapf(ErrInvalid, "physics.spawn %v outside the field", p.Spawn)
	case c.Serial.Baud <= 0:
		return errors.Wrapf(ErrInvalid, "serial.baud %d must be positive", c.Serial.Baud)
	case c.Listen == "":
		return errors.Wrap(ErrInvalid, "listen address is empty")
	}
	if _, err := c.JointType(); err != nil {
		return errors.Wrapf(ErrInvalid, "joint: %v", err)
	}
	return nil
}
