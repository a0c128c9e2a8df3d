package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Step modes
const (
	ModeManual = "manual"
	ModeAuto   = "auto"
)

// Renderers
const (
	RendererScreen   = "screen"
	RendererTerminal = "terminal"
)

// Config holds the configuration for the game
type Config struct {
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	FrameRate        time.Duration `json:"frame_rate"`
	Mode             string        `json:"mode"`
	Renderer         string        `json:"renderer"`
	Pattern          string        `json:"pattern"`
	RandomDensity    float64       `json:"random_density"`
	Seed             int64         `json:"seed"`
	NoiseScale       float64       `json:"noise_scale"`
	NoiseThreshold   float64       `json:"noise_threshold"`
	Strategy         string        `json:"strategy"`
	Workers          int           `json:"workers"`
	MaxGenerations   int           `json:"max_generations"`
	HistorySize      int           `json:"history_size"`
	StopOnStagnation bool          `json:"stop_on_stagnation"`
	ShowTitle        bool          `json:"show_title"`
	ClearTerminal    bool          `json:"clear_terminal"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:            20,
		Height:           20,
		FrameRate:        150 * time.Millisecond,
		Mode:             ModeManual,
		Renderer:         RendererScreen,
		Pattern:          "paint",
		RandomDensity:    0.15,
		NoiseScale:       0.1,
		NoiseThreshold:   0.1,
		Strategy:         "sequential",
		Workers:          0, // one per CPU
		MaxGenerations:   0, // run until stopped
		HistorySize:      5,
		StopOnStagnation: false,
		ShowTitle:        true,
		ClearTerminal:    true,
	}
}

// LoadConfig decodes filename over DefaultConfig, so keys missing from the file keep their defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to open %s", filename)
	}
	defer f.Close()

	if err = json.NewDecoder(f).Decode(&config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to decode %s", filename)
	}
	return config, nil
}

// Validate checks the settings that are not tied to a specific pattern or strategy
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("[Config.Validate] grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	case c.Mode != ModeManual && c.Mode != ModeAuto:
		return errors.Errorf("[Config.Validate] unknown mode: %q", c.Mode)
	case c.Renderer != RendererScreen && c.Renderer != RendererTerminal:
		return errors.Errorf("[Config.Validate] unknown renderer: %q", c.Renderer)
	case c.Mode == ModeAuto && c.FrameRate <= 0:
		return errors.Errorf("[Config.Validate] frame rate must be positive in auto mode, got %v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Config.Validate] random density must be within [0, 1], got %v", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Config.Validate] max generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}
