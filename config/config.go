package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/platform-fighter/fighter"
	"github.com/lixenwraith/platform-fighter/parameter"
	"github.com/lixenwraith/platform-fighter/stage"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Fighter    FighterConfig    `yaml:"fighter"`
	Stage      StageConfig      `yaml:"stage"`
	Input      InputConfig      `yaml:"input"`
	Render     RenderConfig     `yaml:"render"`
	Audio      AudioConfig      `yaml:"audio"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type SimulationConfig struct {
	FPS               int `yaml:"fps"`
	MaxStepsPerUpdate int `yaml:"max_steps_per_update"`
}

type FighterConfig struct {
	Preset string `yaml:"preset"`
	// Overrides is an optional YAML file of attribute overrides on top of the preset
	Overrides string `yaml:"overrides"`
}

type StageConfig struct {
	// File takes precedence over Builtin when set
	File    string `yaml:"file"`
	Builtin string `yaml:"builtin"`
}

type InputConfig struct {
	InitialHold time.Duration `yaml:"initial_hold"`
	RepeatHold  time.Duration `yaml:"repeat_hold"`
}

type RenderConfig struct {
	Zoom    float64 `yaml:"zoom"`
	CameraY float64 `yaml:"camera_y"`
	ShowHUD bool    `yaml:"show_hud"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

type TelemetryConfig struct {
	// Addr is the websocket listen address, empty disables telemetry
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Debug  bool   `yaml:"debug"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			FPS:               parameter.SimulationFPS,
			MaxStepsPerUpdate: parameter.MaxStepsPerUpdate,
		},
		Fighter: FighterConfig{Preset: parameter.DefaultPreset},
		Stage:   StageConfig{Builtin: "battlefield"},
		Input: InputConfig{
			InitialHold: parameter.KeyInitialHold,
			RepeatHold:  parameter.KeyRepeatHold,
		},
		Render: RenderConfig{
			Zoom:    parameter.DefaultZoom,
			CameraY: parameter.DefaultCameraY,
			ShowHUD: true,
		},
		Audio:   AudioConfig{Enabled: true},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML file over Default, absent keys keep their defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and names
func (c *Config) Validate() error {
	if c.Simulation.FPS < 1 || c.Simulation.FPS > 1000 {
		return fmt.Errorf("%w: simulation.fps %d out of range [1, 1000]", ErrInvalidConfig, c.Simulation.FPS)
	}
	if c.Simulation.MaxStepsPerUpdate < 1 {
		return fmt.Errorf("%w: simulation.max_steps_per_update must be positive", ErrInvalidConfig)
	}
	if _, err := fighter.Preset(c.Fighter.Preset); err != nil {
		return fmt.Errorf("%w: fighter.preset: %v", ErrInvalidConfig, err)
	}
	if c.Stage.File == "" && c.Stage.Builtin == "" {
		return fmt.Errorf("%w: stage needs a file or a builtin name", ErrInvalidConfig)
	}
	if c.Input.InitialHold <= 0 || c.Input.RepeatHold <= 0 {
		return fmt.Errorf("%w: input hold durations must be positive", ErrInvalidConfig)
	}
	if c.Render.Zoom < parameter.MinZoom || c.Render.Zoom > parameter.MaxZoom {
		return fmt.Errorf("%w: render.zoom %v out of range [%v, %v]", ErrInvalidConfig, c.Render.Zoom, parameter.MinZoom, parameter.MaxZoom)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// ResolveStage loads the configured stage file, or the named builtin
func (c *Config) ResolveStage() (*stage.Stage, error) {
	if c.Stage.File != "" {
		return stage.Load(c.Stage.File)
	}
	return stage.Builtin(c.Stage.Builtin)
}

// ResolveAttributes returns the preset with the optional override file applied
func (c *Config) ResolveAttributes() (fighter.Attributes, error) {
	attrs, err := fighter.Preset(c.Fighter.Preset)
	if err != nil {
		return fighter.Attributes{}, err
	}
	if c.Fighter.Overrides == "" {
		return attrs, nil
	}
	return fighter.LoadAttributes(c.Fighter.Overrides, attrs)
}
