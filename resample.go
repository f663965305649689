// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadmesh

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// Streamlines traces one streamline per face, seeded at the face centroid,
// with step size h and at most n steps in each direction. Result i belongs to
// face i. Traces run concurrently; m must not be modified meanwhile.
func (m *Mesh) Streamlines(h float64, n int) [][]r3.Vec {
	lines := make([][]r3.Vec, len(m.faces))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for f := range m.faces {
		g.Go(func() error {
			lines[f] = m.Trace(m.Centroid(f), f, h, n)
			return nil
		})
	}
	// Tracing never fails.
	_ = g.Wait()
	return lines
}

// NewStreamlineMesh builds a mesh of vertices and edges from the centroid
// streamlines of src. See Streamlines and FromPolylines.
func NewStreamlineMesh(src *Mesh, h float64, n int) *Mesh {
	return FromPolylines(src.Streamlines(h, n))
}

// FromPolylines builds a mesh without faces. The points of each polyline
// become consecutive vertices, joined by edges in traversal order. Polylines
// with fewer than two points are skipped. Vertex normals point along +Z.
func FromPolylines(lines [][]r3.Vec) *Mesh {
	m := &Mesh{}
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		prev := -1
		for _, p := range line {
			v := m.makeVertex(VertexData{Position: p, Normal: r3.Vec{Z: 1}})
			if prev >= 0 {
				m.makeEdge(prev, v)
			}
			prev = v
		}
	}
	m.computeMidpointAndRadius()
	Logger().Debug("quadmesh: built streamline mesh",
		"polylines", len(lines),
		"vertices", len(m.vertices),
		"edges", len(m.edges))
	return m
}
