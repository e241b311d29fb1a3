package config

import "sort"

// Presets are display profiles for common rooms and screens.
var Presets = map[string]*Config{
	"classroom": {
		Display: DisplayWindow, IntervalMs: 3000,
		Window:   WindowConfig{Width: 720, Height: 800, FPS: 60},
		Terminal: TerminalConfig{Width: 60, Height: 30, Theme: "paper"},
	},
	"projector": {
		Display: DisplayWindow, IntervalMs: 5000,
		Window:   WindowConfig{Width: 1080, Height: 1200, FPS: 30},
		Terminal: TerminalConfig{Width: 60, Height: 30, Theme: "paper"},
	},
	"terminal": {
		Display: DisplayTerminal, IntervalMs: 3000,
		Window:   WindowConfig{Width: 720, Height: 800, FPS: 60},
		Terminal: TerminalConfig{Width: 60, Height: 30, Theme: "chalkboard"},
	},
	"compact": {
		Display: DisplayTerminal, IntervalMs: 2000,
		Window:   WindowConfig{Width: 480, Height: 540, FPS: 30},
		Terminal: TerminalConfig{Width: 40, Height: 20, Theme: "paper"},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
