// SPDX-License-Identifier: MIT

// Package config loads the resolver's JSON configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/cubecolor/lab"
	"github.com/katalvlaran/cubecolor/resolver"
)

// Metric names accepted in the "metric" field.
const (
	MetricCIE2000   = "cie2000"
	MetricEuclidean = "euclidean"
)

// maxFileSize caps the configuration file at 1 MiB.
const maxFileSize = 1 * 1024 * 1024

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ResolverConfig mirrors resolver's options. Omitted fields keep the
// resolver defaults, so partial files are safe.
type ResolverConfig struct {
	Metric           *string `json:"metric,omitempty"`
	RefineMaxIters   *int    `json:"refine_max_iters,omitempty"`
	ValidityCheck    *bool   `json:"validity_check,omitempty"`
	ParityCorrection *bool   `json:"parity_correction,omitempty"`
	Debug            *bool   `json:"debug,omitempty"`
}

// LoadConfig reads and validates a ResolverConfig. The file must carry a
// .json extension and be at most 1 MiB.
func LoadConfig(path string) (*ResolverConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &ResolverConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the fields that are set.
func (c *ResolverConfig) Validate() error {
	if c.Metric != nil {
		switch strings.ToLower(*c.Metric) {
		case MetricCIE2000, MetricEuclidean:
		default:
			return fmt.Errorf("%w: unknown metric %q", ErrInvalidConfig, *c.Metric)
		}
	}
	if c.RefineMaxIters != nil && *c.RefineMaxIters < 0 {
		return fmt.Errorf("%w: refine_max_iters must be non-negative, got %d", ErrInvalidConfig, *c.RefineMaxIters)
	}

	return nil
}

// GetMetric returns the configured distance, CIE2000 by default.
func (c *ResolverConfig) GetMetric() lab.Metric {
	if c.Metric != nil && strings.ToLower(*c.Metric) == MetricEuclidean {
		return lab.Euclidean
	}
	return lab.CIE2000
}

// GetRefineMaxIters returns the 2-opt budget; 0 means unbounded.
func (c *ResolverConfig) GetRefineMaxIters() int {
	if c.RefineMaxIters == nil {
		return 0
	}
	return *c.RefineMaxIters
}

// GetValidityCheck returns validity_check or true.
func (c *ResolverConfig) GetValidityCheck() bool {
	if c.ValidityCheck == nil {
		return true
	}
	return *c.ValidityCheck
}

// GetParityCorrection returns parity_correction or true.
func (c *ResolverConfig) GetParityCorrection() bool {
	if c.ParityCorrection == nil {
		return true
	}
	return *c.ParityCorrection
}

// GetDebug returns debug or false.
func (c *ResolverConfig) GetDebug() bool {
	if c.Debug == nil {
		return false
	}
	return *c.Debug
}

// Options converts the configuration into resolver options.
func (c *ResolverConfig) Options() []resolver.Option {
	return []resolver.Option{
		resolver.WithMetric(c.GetMetric()),
		resolver.WithRefineIters(c.GetRefineMaxIters()),
		resolver.WithValidityCheck(c.GetValidityCheck()),
		resolver.WithParityCorrection(c.GetParityCorrection()),
		resolver.WithDebug(c.GetDebug()),
	}
}
