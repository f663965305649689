// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot rasterizes the XY projection of a quad mesh and its
// streamlines with gg.
package plot

import (
	"errors"
	"io"
	"math"

	"github.com/gogpu/gg"
	quadmesh "github.com/hajimehoshi/go-quadmesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Options controls the output image.
type Options struct {
	Width, Height int

	// Margin is the blank border in pixels.
	Margin float64

	// LineWidth is the stroke width of streamlines. Mesh edges are drawn at
	// half this width.
	LineWidth float64

	// ShadeFaces fills every face with a color ramp over its mean scalar.
	ShadeFaces bool

	// Wireframe draws the mesh edges.
	Wireframe bool
}

// DefaultOptions returns an 800x800 image with shaded faces and wireframe.
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     800,
		Margin:     16,
		LineWidth:  1.5,
		ShadeFaces: true,
		Wireframe:  true,
	}
}

// viewport maps mesh XY coordinates to pixels, keeping the aspect ratio and
// flipping Y so that +Y points up.
type viewport struct {
	minX, minY float64
	scale      float64
	offX, offY float64
	height     float64
}

func newViewport(lo, hi r3.Vec, opts Options) viewport {
	w := float64(opts.Width) - 2*opts.Margin
	h := float64(opts.Height) - 2*opts.Margin
	dx, dy := hi.X-lo.X, hi.Y-lo.Y
	scale := 1.0
	switch {
	case dx > 0 && dy > 0:
		scale = math.Min(w/dx, h/dy)
	case dx > 0:
		scale = w / dx
	case dy > 0:
		scale = h / dy
	}
	return viewport{
		minX:   lo.X,
		minY:   lo.Y,
		scale:  scale,
		offX:   opts.Margin + (w-dx*scale)/2,
		offY:   opts.Margin + (h-dy*scale)/2,
		height: float64(opts.Height),
	}
}

func (vp viewport) point(p r3.Vec) (float64, float64) {
	x := vp.offX + (p.X-vp.minX)*vp.scale
	y := vp.offY + (p.Y-vp.minY)*vp.scale
	return x, vp.height - y
}

// bounds covers the mesh vertices and every streamline point.
func bounds(m *quadmesh.Mesh, lines [][]r3.Vec) (lo, hi r3.Vec) {
	first := true
	add := func(p r3.Vec) {
		if first {
			lo, hi, first = p, p, false
			return
		}
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	if m != nil && m.NumVertices() > 0 {
		mlo, mhi := m.PositionBounds()
		add(mlo)
		add(mhi)
	}
	for _, line := range lines {
		for _, p := range line {
			add(p)
		}
	}
	return lo, hi
}

// ramp maps t in [0, 1] from blue through white to red.
func ramp(t float64) (r, g, b float64) {
	t = math.Max(0, math.Min(1, t))
	if t < 0.5 {
		s := t * 2
		return s, s, 1
	}
	s := (1 - t) * 2
	return 1, s, s
}

// Render draws m and lines into a new context. m may be nil to draw only
// streamlines.
func Render(m *quadmesh.Mesh, lines [][]r3.Vec, opts Options) (*gg.Context, error) {
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.ClearWithColor(gg.White)

	lo, hi := bounds(m, lines)
	vp := newViewport(lo, hi, opts)

	var errs []error
	if m != nil && opts.ShadeFaces && m.NumFaces() > 0 {
		errs = append(errs, shadeFaces(dc, vp, m))
	}
	if m != nil && opts.Wireframe {
		dc.SetRGBA(0.2, 0.2, 0.2, 0.6)
		dc.SetLineWidth(opts.LineWidth / 2)
		for i := 0; i < m.NumEdges(); i++ {
			e := m.Edge(i)
			dc.MoveTo(vp.point(m.Vertex(e.V1()).Pos()))
			dc.LineTo(vp.point(m.Vertex(e.V2()).Pos()))
		}
		errs = append(errs, dc.Stroke())
	}

	dc.SetRGB(0.05, 0.1, 0.1)
	dc.SetLineWidth(opts.LineWidth)
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		dc.MoveTo(vp.point(line[0]))
		for _, p := range line[1:] {
			dc.LineTo(vp.point(p))
		}
		errs = append(errs, dc.Stroke())
	}
	return dc, errors.Join(errs...)
}

func shadeFaces(dc *gg.Context, vp viewport, m *quadmesh.Mesh) error {
	lo, hi := m.ScalarRange()
	var errs []error
	for i := 0; i < m.NumFaces(); i++ {
		verts := m.Face(i).Vertices()
		var mean float64
		for _, v := range verts {
			mean += m.Vertex(v).Scalar()
		}
		mean /= 4
		t := 0.5
		if hi > lo {
			t = (mean - lo) / (hi - lo)
		}
		dc.SetRGB(ramp(t))
		dc.MoveTo(vp.point(m.Vertex(verts[0]).Pos()))
		for _, v := range verts[1:] {
			dc.LineTo(vp.point(m.Vertex(v).Pos()))
		}
		dc.ClosePath()
		errs = append(errs, dc.Fill())
	}
	return errors.Join(errs...)
}

// WritePNG renders m and lines and encodes the image as PNG.
func WritePNG(w io.Writer, m *quadmesh.Mesh, lines [][]r3.Vec, opts Options) error {
	dc, err := Render(m, lines, opts)
	defer dc.Close()
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}
