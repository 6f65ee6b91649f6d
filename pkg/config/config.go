// Package config loads named counter presets from an optional
// countup.yaml file at the project root.
//
//	presets:
//	  revenue:
//	    end: 1250000
//	    prefix: "$"
//	    separator: ","
//	    duration_ms: 2500
//	  uptime:
//	    end: 99.99
//	    decimals: 2
//	    suffix: "%"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/countup/pkg/countup"
)

// FileName is the preset file looked up in the project root.
const FileName = "countup.yaml"

// Config represents the optional countup.yaml configuration.
type Config struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Preset is one named counter configuration as written in YAML.
// End is a pointer so a missing value can be told apart from zero.
type Preset struct {
	End        *float64 `yaml:"end"`
	Start      float64  `yaml:"start,omitempty"`
	DurationMS int      `yaml:"duration_ms,omitempty"`
	Decimals   int      `yaml:"decimals,omitempty"`
	Prefix     string   `yaml:"prefix,omitempty"`
	Suffix     string   `yaml:"suffix,omitempty"`
	Separator  string   `yaml:"separator,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Presets    map[string]countup.Config
}

// CounterConfig validates the preset and converts it to a countup.Config.
func (p Preset) CounterConfig() (countup.Config, error) {
	if p.End == nil {
		return countup.Config{}, fmt.Errorf("preset is missing required field 'end'")
	}
	if p.DurationMS < 0 {
		return countup.Config{}, fmt.Errorf("duration_ms must not be negative (got %d)", p.DurationMS)
	}
	if p.Decimals < 0 {
		return countup.Config{}, fmt.Errorf("decimals must not be negative (got %d)", p.Decimals)
	}

	return countup.Config{
		End:       *p.End,
		Start:     p.Start,
		Duration:  time.Duration(p.DurationMS) * time.Millisecond,
		Decimals:  p.Decimals,
		Prefix:    p.Prefix,
		Suffix:    p.Suffix,
		Separator: p.Separator,
	}, nil
}

// LoadOptional reads countup.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads countup.yaml (if present) and validates every preset.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	presets := make(map[string]countup.Config, len(cfg.Presets))
	for name, preset := range cfg.Presets {
		counter, err := preset.CounterConfig()
		if err != nil {
			return nil, fmt.Errorf("invalid preset %q: %w", name, err)
		}
		presets[name] = counter
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Presets:    presets,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}
