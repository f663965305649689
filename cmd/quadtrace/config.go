// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings of one quadtrace run. Zero values in a config
// file keep the defaults.
type Config struct {
	// Input is the ASCII PLY quad mesh to trace.
	Input string `toml:"input"`

	// Step is the integration step size. 0 uses the mesh grid spacing.
	Step float64 `toml:"step"`

	// Steps caps the number of steps in each direction.
	Steps int `toml:"steps"`

	// HeightFactor displaces the mesh by its scalar field before tracing.
	HeightFactor float64 `toml:"height_factor"`

	GeoJSON string `toml:"geojson"`
	PNG     string `toml:"png"`
	PLY     string `toml:"ply"`

	Image ImageConfig `toml:"image"`

	LogLevel string `toml:"log_level"`
}

type ImageConfig struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Margin    float64 `toml:"margin"`
	LineWidth float64 `toml:"line_width"`
}

func DefaultConfig() Config {
	return Config{
		Steps: 100,
		Image: ImageConfig{
			Width:     800,
			Height:    800,
			Margin:    16,
			LineWidth: 1.5,
		},
		LogLevel: "warn",
	}
}

// LoadConfig decodes the TOML file at path over the defaults. Unknown keys
// are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("quadtrace: config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("no input mesh"))
	}
	if c.Step < 0 {
		errs = append(errs, fmt.Errorf("negative step %g", c.Step))
	}
	if c.Steps < 0 {
		errs = append(errs, fmt.Errorf("negative steps %d", c.Steps))
	}
	if c.PNG != "" && (c.Image.Width <= 0 || c.Image.Height <= 0) {
		errs = append(errs, fmt.Errorf("bad image size %dx%d", c.Image.Width, c.Image.Height))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("quadtrace: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn" or "error").
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
