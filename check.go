// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadmesh

import (
	"fmt"
	"slices"
)

// Check walks every face, edge and vertex and verifies the adjacency
// invariants. It returns an error wrapping ErrInvalidMesh describing the
// first violation found.
func (m *Mesh) Check() error {
	for f := range m.faces {
		if err := m.checkFace(f); err != nil {
			return err
		}
	}
	for e := range m.edges {
		if err := m.checkEdge(e); err != nil {
			return err
		}
	}
	for v := range m.vertices {
		if err := m.checkVertex(v); err != nil {
			return err
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("quadmesh: "+format+": %w", append(args, ErrInvalidMesh)...)
}

func (m *Mesh) checkFace(f int) error {
	face := &m.faces[f]
	if face.id != f {
		return invalid("face %d has id %d", f, face.id)
	}
	for i, e := range face.edges {
		a, b := face.verts[i], face.verts[(i+1)%4]
		if e == noEdge {
			return invalid("face %d slot %d has no edge", f, i)
		}
		if !m.edges[e].joins(a, b) {
			return invalid("face %d slot %d: edge %d does not join %d-%d", f, i, e, a, b)
		}
		if !slices.Contains(m.edges[e].faces, f) {
			return invalid("face %d missing from edge %d", f, e)
		}
		if !slices.Contains(m.vertices[a].faces, f) {
			return invalid("face %d missing from vertex %d", f, a)
		}
	}
	return nil
}

func (m *Mesh) checkEdge(e int) error {
	edge := &m.edges[e]
	if edge.id != e {
		return invalid("edge %d has id %d", e, edge.id)
	}
	if edge.v[0] == edge.v[1] {
		return invalid("edge %d is a loop at vertex %d", e, edge.v[0])
	}
	n := len(edge.faces)
	if len(m.faces) > 0 && (n < 1 || n > 2) {
		return invalid("edge %d has %d faces", e, n)
	}
	for _, v := range edge.v {
		if !slices.Contains(m.vertices[v].edges, e) {
			return invalid("edge %d missing from vertex %d", e, v)
		}
	}
	return nil
}

func (m *Mesh) checkVertex(v int) error {
	vert := &m.vertices[v]
	if vert.id != v {
		return invalid("vertex %d has id %d", v, vert.id)
	}
	for _, e := range vert.edges {
		if m.edges[e].v[0] != v && m.edges[e].v[1] != v {
			return invalid("vertex %d lists edge %d", v, e)
		}
	}
	nf, ne := len(vert.faces), len(vert.edges)
	if nf == 0 {
		return nil
	}
	for _, f := range vert.faces {
		if m.faces[f].slot(v) < 0 {
			return invalid("vertex %d lists face %d", v, f)
		}
	}

	interior := ne == nf
	if !interior && ne != nf+1 {
		return invalid("vertex %d has %d edges and %d faces", v, ne, nf)
	}
	if !interior {
		if len(m.edges[vert.edges[0]].faces) != 1 || len(m.edges[vert.edges[ne-1]].faces) != 1 {
			return invalid("vertex %d: open fan does not end on boundary edges", v)
		}
	}
	for i := 0; i < nf; i++ {
		if i == nf-1 && !interior {
			break
		}
		a, b := vert.faces[i], vert.faces[(i+1)%nf]
		if nf > 1 && !m.shareEdgeAt(a, b, v) {
			return invalid("vertex %d: faces %d and %d are not adjacent in the fan", v, a, b)
		}
	}
	return nil
}

// shareEdgeAt reports whether faces a and b share an edge incident to v.
func (m *Mesh) shareEdgeAt(a, b, v int) bool {
	for _, e := range m.faces[a].edges {
		edge := &m.edges[e]
		if (edge.v[0] == v || edge.v[1] == v) && slices.Contains(edge.faces, b) {
			return true
		}
	}
	return false
}
