package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"subtune/internal/linearize"
	"subtune/internal/similarity"
)

//go:embed sample_config.toml
var sampleConfig string

// Log contains logging configuration.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Linearizer contains rolling-caption dedup knobs.
type Linearizer struct {
	MinOverlap    int     `toml:"min_overlap"`
	MaxGapSeconds float64 `toml:"max_gap_seconds"`
}

// Similarity contains transcript similarity sampling and thresholds.
type Similarity struct {
	SampleRatio     float64 `toml:"sample_ratio"`
	MaxSampleChars  int     `toml:"max_sample_chars"`
	MismatchedBelow float64 `toml:"mismatched_below"`
	AcceptableAbove float64 `toml:"acceptable_above"`
}

// Config centralizes every knob the CLI needs.
type Config struct {
	Log        Log        `toml:"log"`
	Linearizer Linearizer `toml:"linearizer"`
	Similarity Similarity `toml:"similarity"`
}

// DefaultConfigPath returns the canonical user config location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "subtune", "config.toml"), nil
}

// Load reads configuration from path. An empty path falls back to the
// SUBTUNE_CONFIG environment variable, then the default location; a missing
// file at the fallback locations yields defaults, while a missing file at
// an explicitly requested path is an error.
func Load(path string) (*Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		if env := strings.TrimSpace(os.Getenv("SUBTUNE_CONFIG")); env != "" {
			path = env
			explicit = true
		} else {
			defaultPath, err := DefaultConfigPath()
			if err != nil {
				return nil, err
			}
			path = defaultPath
		}
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteSample writes the annotated sample configuration to path, creating
// parent directories. It refuses to overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Marshal renders the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// LinearizeOptions converts configuration into linearizer options.
func (c *Config) LinearizeOptions() linearize.Options {
	return linearize.Options{
		MinOverlap:    c.Linearizer.MinOverlap,
		MaxGapSeconds: c.Linearizer.MaxGapSeconds,
	}
}

// SimilarityOptions converts configuration into similarity options.
func (c *Config) SimilarityOptions() similarity.Options {
	return similarity.Options{
		SampleRatio:     c.Similarity.SampleRatio,
		MaxSampleChars:  c.Similarity.MaxSampleChars,
		MismatchedBelow: c.Similarity.MismatchedBelow,
		AcceptableAbove: c.Similarity.AcceptableAbove,
	}
}
