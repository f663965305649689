// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quadtrace traces the vector field of an ASCII PLY quad mesh from
// every face centroid and writes the streamlines as GeoJSON, PNG or PLY.
//
//	quadtrace -in field.ply -steps 200 -png field.png -geojson field.json
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gg"
	quadmesh "github.com/hajimehoshi/go-quadmesh"
	"github.com/hajimehoshi/go-quadmesh/plot"
	"github.com/hajimehoshi/go-quadmesh/ply"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("quadtrace", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath   = fs.String("config", "", "TOML config file")
		input        = fs.String("in", "", "input PLY quad mesh")
		step         = fs.Float64("step", 0, "step size (0: mesh grid spacing)")
		steps        = fs.Int("steps", 0, "maximum steps in each direction")
		heightFactor = fs.Float64("height-factor", 0, "displace the mesh by its scalar field before tracing")
		geojsonOut   = fs.String("geojson", "", "GeoJSON output file")
		pngOut       = fs.String("png", "", "PNG output file")
		plyOut       = fs.String("ply", "", "PLY output file for the streamline mesh")
		width        = fs.Int("width", 0, "image width")
		height       = fs.Int("height", 0, "image height")
		logLevel     = fs.String("log-level", "", "log level (debug, info, warn, error)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.Input = *input
		case "step":
			cfg.Step = *step
		case "steps":
			cfg.Steps = *steps
		case "height-factor":
			cfg.HeightFactor = *heightFactor
		case "geojson":
			cfg.GeoJSON = *geojsonOut
		case "png":
			cfg.PNG = *pngOut
		case "ply":
			cfg.PLY = *plyOut
		case "width":
			cfg.Image.Width = *width
		case "height":
			cfg.Image.Height = *height
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if cfg.Input == "" && fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	quadmesh.SetLogger(logger)
	gg.SetLogger(logger)
	defer quadmesh.SetLogger(nil)
	defer gg.SetLogger(nil)

	return trace(cfg, logger)
}

func trace(cfg Config, logger *slog.Logger) error {
	m, err := ply.Load(cfg.Input)
	if err != nil {
		return err
	}
	if cfg.HeightFactor != 0 {
		m.ApplyHeight(cfg.HeightFactor)
	}

	h := cfg.Step
	if h == 0 {
		h = m.GridSpacing()
	}
	if h <= 0 {
		return fmt.Errorf("quadtrace: %s: cannot derive a step size", cfg.Input)
	}

	start := time.Now()
	lines := m.Streamlines(h, cfg.Steps)
	logger.Info("traced streamlines",
		"input", cfg.Input,
		"streamlines", len(lines),
		"step", h,
		"steps", cfg.Steps,
		"elapsed", time.Since(start))

	if cfg.GeoJSON != "" {
		data, err := quadmesh.StreamlinesGeoJSON(lines).MarshalJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.GeoJSON, data, 0o644); err != nil {
			return err
		}
		logger.Info("wrote GeoJSON", "path", cfg.GeoJSON)
	}

	if cfg.PNG != "" {
		opts := plot.DefaultOptions()
		opts.Width = cfg.Image.Width
		opts.Height = cfg.Image.Height
		opts.Margin = cfg.Image.Margin
		opts.LineWidth = cfg.Image.LineWidth
		if err := writeFile(cfg.PNG, func(w io.Writer) error {
			return plot.WritePNG(w, m, lines, opts)
		}); err != nil {
			return err
		}
		logger.Info("wrote PNG", "path", cfg.PNG)
	}

	if cfg.PLY != "" {
		sm := quadmesh.FromPolylines(lines)
		if err := writeFile(cfg.PLY, func(w io.Writer) error {
			return ply.Write(w, sm)
		}); err != nil {
			return err
		}
		logger.Info("wrote streamline mesh", "path", cfg.PLY, "vertices", sm.NumVertices(), "edges", sm.NumEdges())
	}
	return nil
}

func writeFile(path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = fn(f)
	return errors.Join(err, f.Close())
}
