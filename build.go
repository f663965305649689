// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadmesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Build links a quad mesh from a vertex payload array and a list of faces,
// each naming four 0-based vertex indices in cyclic order.
//
// Faces that do not have exactly four vertices, that reference a vertex out
// of range or that repeat a vertex are dropped; the remaining faces are still
// processed and the dropped input indices are reported by SkippedFaces.
// Build returns ErrEmptyMesh if nothing is left, and rejects non-manifold
// input with ErrNonManifoldEdge or ErrNonManifoldVertex.
func Build(vertices []VertexData, faces [][]int) (*Mesh, error) {
	m := &Mesh{
		vertices: make([]Vertex, 0, len(vertices)),
		faces:    make([]Face, 0, len(faces)),
	}
	for _, d := range vertices {
		m.makeVertex(d)
	}

	for i, f := range faces {
		verts, err := quad(f, len(vertices))
		if err != nil {
			Logger().Warn("quadmesh: skipping face", "face", i, "err", err)
			m.skipped = append(m.skipped, i)
			continue
		}
		m.makeFace(verts)
	}

	if len(m.vertices) == 0 || len(m.faces) == 0 {
		return nil, ErrEmptyMesh
	}

	m.linkVertexFaces()
	m.setUpEdges()
	for e := range m.edges {
		if n := len(m.edges[e].faces); n > 2 {
			return nil, fmt.Errorf("quadmesh: edge %d (%d-%d) has %d faces: %w",
				e, m.edges[e].v[0], m.edges[e].v[1], n, ErrNonManifoldEdge)
		}
	}
	if err := m.orderFans(); err != nil {
		return nil, err
	}
	m.updateGeometry()

	Logger().Debug("quadmesh: built mesh",
		"vertices", len(m.vertices),
		"edges", len(m.edges),
		"faces", len(m.faces),
		"skipped", len(m.skipped))
	return m, nil
}

// quad validates one input face.
func quad(f []int, numVertices int) ([4]int, error) {
	var verts [4]int
	if len(f) != 4 {
		return verts, fmt.Errorf("quadmesh: face has %d vertices", len(f))
	}
	for i, v := range f {
		if v < 0 || v >= numVertices {
			return verts, fmt.Errorf("quadmesh: vertex index %d out of range", v)
		}
		for _, w := range f[:i] {
			if w == v {
				return verts, fmt.Errorf("quadmesh: vertex %d repeated", v)
			}
		}
		verts[i] = v
	}
	return verts, nil
}

// NewUnitQuad returns a mesh holding the single quad
// (-1,-1), (1,-1), (1,1), (-1,1) in the z = 0 plane.
func NewUnitQuad() *Mesh {
	vs := []VertexData{
		{Position: r3.Vec{X: -1, Y: -1}},
		{Position: r3.Vec{X: 1, Y: -1}},
		{Position: r3.Vec{X: 1, Y: 1}},
		{Position: r3.Vec{X: -1, Y: 1}},
	}
	m, err := Build(vs, [][]int{{0, 1, 2, 3}})
	if err != nil {
		panic(fmt.Sprintf("quadmesh: NewUnitQuad: %v", err))
	}
	return m
}

// linkVertexFaces appends every face to the face list of its vertices in
// face order. This is the raw order; orderFans makes it rotational.
func (m *Mesh) linkVertexFaces() {
	for v := range m.vertices {
		m.vertices[v].faces = m.vertices[v].faces[:0]
	}
	for f := range m.faces {
		for _, v := range m.faces[f].verts {
			m.vertices[v].faces = append(m.vertices[v].faces, f)
		}
	}
}

// setUpEdges fills the four edge slots of every face, reusing the edge of an
// already linked neighbor that has the same vertex pair.
func (m *Mesh) setUpEdges() {
	m.edges = m.edges[:0]
	for v := range m.vertices {
		m.vertices[v].edges = m.vertices[v].edges[:0]
	}

	for f := range m.faces {
		for i := 0; i < 4; i++ {
			if m.faces[f].edges[i] != noEdge {
				continue
			}
			a := m.faces[f].verts[i]
			b := m.faces[f].verts[(i+1)%4]
			e := m.sharedEdge(f, a, b)
			if e == noEdge {
				e = m.makeEdge(a, b)
			}
			m.faces[f].edges[i] = e
			m.edges[e].faces = append(m.edges[e].faces, f)
		}
	}
}

// sharedEdge searches the faces around a for one other than f that already
// has an edge joining a and b.
func (m *Mesh) sharedEdge(f, a, b int) int {
	for _, g := range m.vertices[a].faces {
		if g == f {
			continue
		}
		other := &m.faces[g]
		for k := 0; k < 4; k++ {
			e := other.edges[k]
			if e != noEdge && m.edges[e].joins(a, b) {
				return e
			}
		}
	}
	return noEdge
}
