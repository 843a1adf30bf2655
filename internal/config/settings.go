// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Стартовые экраны, которые можно выбрать в настройках.
const (
	StartMenu = "menu"
	StartPlay = "play"
)

// Settings is the run-time configuration read from a TOML file.
type Settings struct {
	Window    WindowSettings    `toml:"window"`
	Log       LogSettings       `toml:"log"`
	Game      GameSettings      `toml:"game"`
	Telemetry TelemetrySettings `toml:"telemetry"`
}

type WindowSettings struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	TPS    int    `toml:"tps"`
}

type LogSettings struct {
	Level string `toml:"level"`
	Path  string `toml:"path"` // пусто — только stdout
}

type GameSettings struct {
	Start        string  `toml:"start"`
	RoundSeconds float64 `toml:"round_seconds"`
	Seed         int64   `toml:"seed"` // 0 — сид от текущего времени
	Locale       string  `toml:"locale"`
}

type TelemetrySettings struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  WindowTitle,
			TPS:    TPS,
		},
		Log: LogSettings{
			Level: "info",
		},
		Game: GameSettings{
			Start:        StartMenu,
			RoundSeconds: RoundSeconds,
			Locale:       "en",
		},
		Telemetry: TelemetrySettings{
			Path: "telemetry.jsonl",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := Decode(string(data), &settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Decode parses TOML data into settings, keeping fields the data omits.
func Decode(data string, settings *Settings) error {
	meta, err := toml.Decode(data, settings)
	if err != nil {
		return fmt.Errorf("failed to decode settings: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown settings key %q", undecoded[0].String())
	}
	return settings.Validate()
}

// Validate checks the values the game cannot start with.
func (s Settings) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height))
	}
	if s.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", s.Window.TPS))
	}
	switch s.Game.Start {
	case StartMenu, StartPlay:
	default:
		errs = append(errs, fmt.Errorf("unknown start screen %q", s.Game.Start))
	}
	if s.Game.RoundSeconds <= 0 {
		errs = append(errs, fmt.Errorf("round_seconds must be positive, got %v", s.Game.RoundSeconds))
	}
	if s.Game.Locale == "" {
		errs = append(errs, errors.New("locale must be set"))
	}
	if s.Telemetry.Enabled && s.Telemetry.Path == "" {
		errs = append(errs, errors.New("telemetry path must be set when telemetry is enabled"))
	}
	return errors.Join(errs...)
}
