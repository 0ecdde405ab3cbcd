package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLog(); err != nil {
		return err
	}
	if err := c.validateLinearizer(); err != nil {
		return err
	}
	if err := c.validateSimilarity(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLog() error {
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}

func (c *Config) validateLinearizer() error {
	if c.Linearizer.MinOverlap < 0 {
		return errors.New("linearizer.min_overlap must not be negative")
	}
	if c.Linearizer.MaxGapSeconds < 0 {
		return errors.New("linearizer.max_gap_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateSimilarity() error {
	if c.Similarity.SampleRatio <= 0 || c.Similarity.SampleRatio > 1 {
		return errors.New("similarity.sample_ratio must be in (0, 1]")
	}
	if c.Similarity.MaxSampleChars <= 0 {
		return errors.New("similarity.max_sample_chars must be positive")
	}
	if c.Similarity.MismatchedBelow < 0 || c.Similarity.MismatchedBelow > 1 {
		return errors.New("similarity.mismatched_below must be between 0 and 1")
	}
	if c.Similarity.AcceptableAbove < c.Similarity.MismatchedBelow || c.Similarity.AcceptableAbove > 1 {
		return errors.New("similarity.acceptable_above must be between mismatched_below and 1")
	}
	return nil
}
