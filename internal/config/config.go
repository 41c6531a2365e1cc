// Package config loads raagnote settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/0xlemi/raagnote/internal/raag"
	"github.com/0xlemi/raagnote/internal/recorder"
	"github.com/0xlemi/raagnote/internal/swara"
)

// ErrInvalidConfig is returned when a loaded file fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Config is the on-disk configuration
type Config struct {
	Tonic     TonicConfig     `toml:"tonic"`
	Detection DetectionConfig `toml:"detection"`
	Recording RecordingConfig `toml:"recording"`
	Matching  MatchingConfig  `toml:"matching"`
	Audio     AudioConfig     `toml:"audio"`
}

// TonicConfig selects Sa and the script swaras are shown in
type TonicConfig struct {
	PitchClass string `toml:"pitch_class"` // Note name, e.g. "C#"
	Octave     int    `toml:"octave"`
	Script     string `toml:"script"` // latin or devanagari
}

// DetectionConfig gates which pitch readings are trusted
type DetectionConfig struct {
	ClarityThreshold float64 `toml:"clarity_threshold"`
	MinFrequency     float64 `toml:"min_frequency"`
	MaxFrequency     float64 `toml:"max_frequency"`
	MinRMS           float64 `toml:"min_rms"`
}

// RecordingConfig controls how swaras are recorded
type RecordingConfig struct {
	DebounceMS         int  `toml:"debounce_ms"`
	StripOctaveMarkers bool `toml:"strip_octave_markers"`
}

// MatchingConfig controls raag matching
type MatchingConfig struct {
	MinConfidence float64 `toml:"min_confidence"`
	Catalog       string  `toml:"catalog,omitempty"` // Optional YAML catalog path
}

// AudioConfig configures the capture device
type AudioConfig struct {
	BufferSize    int     `toml:"buffer_size"`
	SampleRate    int     `toml:"sample_rate"`
	Amplification float32 `toml:"amplification"`
}

// Default returns the built-in settings
func Default() Config {
	f := recorder.DefaultFilter()
	return Config{
		Tonic: TonicConfig{PitchClass: "C", Octave: 4, Script: swara.Latin.String()},
		Detection: DetectionConfig{
			ClarityThreshold: f.ClarityThreshold,
			MinFrequency:     f.MinFrequency,
			MaxFrequency:     f.MaxFrequency,
			MinRMS:           f.MinRMS,
		},
		Recording: RecordingConfig{
			DebounceMS:         int(recorder.DefaultDebounce / time.Millisecond),
			StripOctaveMarkers: true,
		},
		Matching: MatchingConfig{MinConfidence: raag.MinConfidence},
		Audio:    AudioConfig{BufferSize: 4096, SampleRate: 44100, Amplification: 8},
	}
}

// DefaultPath returns ~/.raagnote/config.toml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".raagnote", "config.toml"), nil
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// Validate checks value ranges
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if _, err := c.Tonic.Tonic(); err != nil {
		return invalid("tonic: %v", err)
	}
	if _, err := swara.ParseScript(c.Tonic.Script); err != nil {
		return invalid("tonic.script: %v", err)
	}

	d := c.Detection
	if d.ClarityThreshold < 0 || d.ClarityThreshold >= 1 {
		return invalid("detection.clarity_threshold %v must be in [0, 1)", d.ClarityThreshold)
	}
	if d.MinFrequency <= 0 || d.MaxFrequency <= d.MinFrequency {
		return invalid("detection frequency range %v-%v Hz", d.MinFrequency, d.MaxFrequency)
	}
	if d.MinRMS < 0 {
		return invalid("detection.min_rms %v is negative", d.MinRMS)
	}

	if c.Recording.DebounceMS < 0 {
		return invalid("recording.debounce_ms %d is negative", c.Recording.DebounceMS)
	}
	if m := c.Matching.MinConfidence; m < 0 || m > 1 {
		return invalid("matching.min_confidence %v must be in [0, 1]", m)
	}

	a := c.Audio
	if a.BufferSize < 256 || a.BufferSize&(a.BufferSize-1) != 0 {
		return invalid("audio.buffer_size %d must be a power of two >= 256", a.BufferSize)
	}
	if a.SampleRate < 8000 {
		return invalid("audio.sample_rate %d is too low", a.SampleRate)
	}
	if a.Amplification <= 0 {
		return invalid("audio.amplification %v must be positive", a.Amplification)
	}
	return nil
}

// Tonic parses the configured tonic
func (t TonicConfig) Tonic() (swara.Tonic, error) {
	return swara.NewTonic(t.PitchClass, t.Octave)
}

// Filter returns the recorder filter for these detection settings
func (d DetectionConfig) Filter() recorder.Filter {
	return recorder.Filter{
		ClarityThreshold: d.ClarityThreshold,
		MinFrequency:     d.MinFrequency,
		MaxFrequency:     d.MaxFrequency,
		MinRMS:           d.MinRMS,
	}
}

// Options returns recorder options for these recording settings
func (r RecordingConfig) Options() recorder.Options {
	return recorder.Options{
		Debounce:    time.Duration(r.DebounceMS) * time.Millisecond,
		StripSaptak: r.StripOctaveMarkers,
	}
}
