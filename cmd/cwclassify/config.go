package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-cw/cw/morse"
)

// runConfig holds the run defaults; command line flags override it.
type runConfig struct {
	IntervalMs float64 `yaml:"interval_ms"`
	SendWPM    float64 `yaml:"send_wpm"`
	AssumeWPM  float64 `yaml:"assume_wpm"`
	Capacity   int     `yaml:"capacity"`
	Noise      float64 `yaml:"noise"`
	Seed       int64   `yaml:"seed"`
	Top        int     `yaml:"top"`
	Permissive bool    `yaml:"permissive"`
	Block      bool    `yaml:"block"`
	Dictionary string  `yaml:"dictionary"`
}

func defaultRunConfig() runConfig {
	return runConfig{
		IntervalMs: 8,
		SendWPM:    12,
		AssumeWPM:  12.5,
		Capacity:   1024,
		Seed:       1,
		Top:        5,
	}
}

// loadRunConfig reads path over the defaults. A relative dictionary path is
// resolved against the directory of the config file.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Dictionary != "" && !filepath.IsAbs(cfg.Dictionary) {
		cfg.Dictionary = filepath.Join(filepath.Dir(path), cfg.Dictionary)
	}
	return cfg, cfg.validate()
}

func (c runConfig) validate() error {
	switch {
	case c.IntervalMs <= 0:
		return fmt.Errorf("interval_ms must be > 0: %v", c.IntervalMs)
	case c.SendWPM <= 0:
		return fmt.Errorf("send_wpm must be > 0: %v", c.SendWPM)
	case c.AssumeWPM <= 0:
		return fmt.Errorf("assume_wpm must be > 0: %v", c.AssumeWPM)
	case c.Capacity <= 0:
		return fmt.Errorf("capacity must be > 0: %d", c.Capacity)
	case c.Noise < 0 || c.Noise > 1:
		return fmt.Errorf("noise must be in [0, 1]: %v", c.Noise)
	case c.Top <= 0:
		return fmt.Errorf("top must be > 0: %d", c.Top)
	}
	return nil
}

func (c runConfig) dictionary() (*morse.Dictionary, error) {
	if c.Dictionary == "" {
		return morse.Standard(), nil
	}
	return morse.LoadDictionaryFile(c.Dictionary)
}
