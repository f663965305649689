// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadmesh

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// ScalarRange returns the smallest and largest vertex scalar. It returns
// (0, 0) for a mesh without vertices.
func (m *Mesh) ScalarRange() (min, max float64) {
	if len(m.vertices) == 0 {
		return 0, 0
	}
	min = m.vertices[0].scalar
	max = min
	for i := range m.vertices {
		s := m.vertices[i].scalar
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return min, max
}

// PositionBounds returns the per-axis minimum and maximum vertex position.
// Both are zero for a mesh without vertices.
func (m *Mesh) PositionBounds() (min, max r3.Vec) {
	if len(m.vertices) == 0 {
		return r3.Vec{}, r3.Vec{}
	}
	min = m.vertices[0].pos
	max = min
	for i := range m.vertices {
		min = minVec(min, m.vertices[i].pos)
		max = maxVec(max, m.vertices[i].pos)
	}
	return min, max
}

// ApplyHeight displaces every vertex along its normal by factor times its
// scalar normalized to [0, 1]. Offsets accumulate across calls and are undone
// by ResetHeight. A mesh with a constant scalar is left untouched.
func (m *Mesh) ApplyHeight(factor float64) {
	lo, hi := m.ScalarRange()
	if lo == hi {
		return
	}
	for i := range m.vertices {
		v := &m.vertices[i]
		t := (v.scalar - lo) / (hi - lo)
		v.offsetPosition(r3.Scale(factor*t, v.normal))
	}
	m.updateGeometry()
}

// ResetHeight removes the offsets accumulated by ApplyHeight.
func (m *Mesh) ResetHeight() {
	for i := range m.vertices {
		m.vertices[i].resetPosition()
	}
	m.updateGeometry()
}

// GridSpacing returns the length of the first edge, a default step size for
// regular grids, or 0 if the mesh has no edges.
func (m *Mesh) GridSpacing() float64 {
	if len(m.edges) == 0 {
		return 0
	}
	return m.EdgeLength(0)
}

func (v *Vertex) offsetPosition(d r3.Vec) {
	v.offset = r3.Add(v.offset, d)
	v.pos = r3.Add(v.pos, d)
}

func (v *Vertex) resetPosition() {
	v.pos = r3.Sub(v.pos, v.offset)
	v.offset = r3.Vec{}
}
