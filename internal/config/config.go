package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"
)

const (
	DefaultIntervalMs     = 3000
	DefaultWindowWidth    = 720
	DefaultWindowHeight   = 800
	DefaultFPS            = 60
	DefaultTerminalWidth  = 60
	DefaultTerminalHeight = 30
	DefaultTheme          = "paper"
	DefaultLogLevel       = "info"
)

// ErrInvalid indicates a config value outside its valid range.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Display    string         `yaml:"display"`
	IntervalMs int            `yaml:"interval_ms"`
	Seed       int64          `yaml:"seed"`
	LogLevel   string         `yaml:"log_level"`
	Window     WindowConfig   `yaml:"window"`
	Terminal   TerminalConfig `yaml:"terminal"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// TerminalConfig sizes the braille canvas in character cells.
type TerminalConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Theme  string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Display:    DisplayWindow,
		IntervalMs: DefaultIntervalMs,
		LogLevel:   DefaultLogLevel,
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			FPS:    DefaultFPS,
		},
		Terminal: TerminalConfig{
			Width:  DefaultTerminalWidth,
			Height: DefaultTerminalHeight,
			Theme:  DefaultTheme,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Interval is the time each frame stays on screen.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

func (c *Config) Validate() error {
	switch c.Display {
	case DisplayWindow, DisplayTerminal:
	default:
		return fmt.Errorf("%w: display %q (want %s or %s)", ErrInvalid, c.Display, DisplayWindow, DisplayTerminal)
	}
	if c.IntervalMs <= 0 {
		return fmt.Errorf("%w: interval_ms must be positive, got %d", ErrInvalid, c.IntervalMs)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("%w: window fps must be positive, got %d", ErrInvalid, c.Window.FPS)
	}
	if c.Terminal.Width < 10 || c.Terminal.Height < 5 {
		return fmt.Errorf("%w: terminal size %dx%d is too small", ErrInvalid, c.Terminal.Width, c.Terminal.Height)
	}
	return nil
}
