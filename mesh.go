// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quadmesh links quad meshes carrying per-vertex fields and traces
// streamlines of the vector field across them.
package quadmesh

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// NoFace marks the absence of a face: the far side of a boundary edge, a
// point outside the mesh or a halted streamline step.
const NoFace = -1

const noEdge = -1

var (
	// ErrEmptyMesh is returned when construction produced no vertices or no faces.
	ErrEmptyMesh = errors.New("quadmesh: empty mesh")

	// ErrNonManifoldEdge is returned when an edge borders more than two faces.
	ErrNonManifoldEdge = errors.New("quadmesh: non-manifold edge")

	// ErrNonManifoldVertex is returned when the faces around a vertex do not
	// form a single consistently oriented fan.
	ErrNonManifoldVertex = errors.New("quadmesh: non-manifold vertex")

	// ErrInvalidMesh is returned by Check when an adjacency invariant is broken.
	ErrInvalidMesh = errors.New("quadmesh: invalid mesh")
)

// Tensor is a 2x2 tensor attribute stored row-major.
type Tensor [2][2]float64

// Color is an RGBA color with components in [0, 1].
type Color [4]float64

// White is the default face color.
var White = Color{1, 1, 1, 1}

// VertexData is the per-vertex payload handed to Build.
type VertexData struct {
	Position r3.Vec
	Normal   r3.Vec
	Scalar   float64
	Vector   r3.Vec
	Tensor   Tensor
}

// Vertex is a mesh vertex. After construction its edge and face lists are in
// rotational fan order: consecutive entries share a face.
type Vertex struct {
	id     int
	pos    r3.Vec
	normal r3.Vec
	offset r3.Vec
	scalar float64
	vector r3.Vec
	tensor Tensor

	edges []int
	faces []int
}

func (v *Vertex) ID() int         { return v.id }
func (v *Vertex) Pos() r3.Vec     { return v.pos }
func (v *Vertex) Normal() r3.Vec  { return v.normal }
func (v *Vertex) Offset() r3.Vec  { return v.offset }
func (v *Vertex) Scalar() float64 { return v.scalar }
func (v *Vertex) Vector() r3.Vec  { return v.vector }
func (v *Vertex) Tensor() Tensor  { return v.tensor }

// Edges returns the incident edge ids. The slice must not be modified.
func (v *Vertex) Edges() []int { return v.edges }

// Faces returns the incident face ids. The slice must not be modified.
func (v *Vertex) Faces() []int { return v.faces }

// IsBoundary reports whether the vertex fan is open.
func (v *Vertex) IsBoundary() bool { return len(v.edges) > len(v.faces) }

// Edge joins two vertices and borders one or two faces.
type Edge struct {
	id    int
	v     [2]int
	faces []int
}

func (e *Edge) ID() int          { return e.id }
func (e *Edge) V1() int          { return e.v[0] }
func (e *Edge) V2() int          { return e.v[1] }
func (e *Edge) Vertices() [2]int { return e.v }

// Faces returns the incident face ids. The slice must not be modified.
func (e *Edge) Faces() []int { return e.faces }

// OtherVertex returns the endpoint that is not v.
func (e *Edge) OtherVertex(v int) int {
	if v == e.v[0] {
		return e.v[1]
	}
	return e.v[0]
}

// OtherFace returns the face across the edge from f, or NoFace when the edge
// does not border exactly two faces.
func (e *Edge) OtherFace(f int) int {
	if len(e.faces) != 2 {
		return NoFace
	}
	if f == e.faces[0] {
		return e.faces[1]
	}
	return e.faces[0]
}

func (e *Edge) joins(a, b int) bool {
	return (e.v[0] == a && e.v[1] == b) || (e.v[0] == b && e.v[1] == a)
}

// Face is a quad. edges[i] joins vertices[i] and vertices[(i+1)%4].
type Face struct {
	id     int
	verts  [4]int
	edges  [4]int
	normal r3.Vec
	color  Color
}

func (f *Face) ID() int          { return f.id }
func (f *Face) Vertices() [4]int { return f.verts }
func (f *Face) Edges() [4]int    { return f.edges }
func (f *Face) Normal() r3.Vec   { return f.normal }
func (f *Face) Color() Color     { return f.color }
func (f *Face) SetColor(c Color) { f.color = c }

// slot returns the position of vertex v in the face cycle, or -1.
func (f *Face) slot(v int) int {
	for i, w := range f.verts {
		if w == v {
			return i
		}
	}
	return -1
}

// Mesh owns the vertex, edge and face tables. Entities refer to each other by
// index into these tables.
type Mesh struct {
	vertices []Vertex
	edges    []Edge
	faces    []Face

	midpoint r3.Vec
	radius   float64

	skipped []int
}

func (m *Mesh) NumVertices() int { return len(m.vertices) }
func (m *Mesh) NumEdges() int    { return len(m.edges) }
func (m *Mesh) NumFaces() int    { return len(m.faces) }

func (m *Mesh) Vertex(id int) *Vertex { return &m.vertices[id] }
func (m *Mesh) Edge(id int) *Edge     { return &m.edges[id] }
func (m *Mesh) Face(id int) *Face     { return &m.faces[id] }

// Midpoint returns the center of the axis-aligned bounding box.
func (m *Mesh) Midpoint() r3.Vec { return m.midpoint }

// Radius returns half the diagonal of the axis-aligned bounding box.
func (m *Mesh) Radius() float64 { return m.radius }

// SkippedFaces returns the input indices of the faces Build dropped.
func (m *Mesh) SkippedFaces() []int { return m.skipped }

func (m *Mesh) String() string {
	return fmt.Sprintf("quadmesh: %d vertices, %d edges, %d faces", len(m.vertices), len(m.edges), len(m.faces))
}

func (m *Mesh) makeVertex(d VertexData) int {
	id := len(m.vertices)
	m.vertices = append(m.vertices, Vertex{
		id:     id,
		pos:    d.Position,
		normal: d.Normal,
		scalar: d.Scalar,
		vector: d.Vector,
		tensor: d.Tensor,
	})
	return id
}

// makeEdge creates an edge between a and b and registers it on both vertices.
func (m *Mesh) makeEdge(a, b int) int {
	id := len(m.edges)
	m.edges = append(m.edges, Edge{id: id, v: [2]int{a, b}})
	m.vertices[a].edges = append(m.vertices[a].edges, id)
	m.vertices[b].edges = append(m.vertices[b].edges, id)
	return id
}

func (m *Mesh) makeFace(verts [4]int) int {
	id := len(m.faces)
	m.faces = append(m.faces, Face{
		id:    id,
		verts: verts,
		edges: [4]int{noEdge, noEdge, noEdge, noEdge},
		color: White,
	})
	return id
}

// EdgeLength returns the distance between the endpoints of edge e.
func (m *Mesh) EdgeLength(e int) float64 {
	ed := &m.edges[e]
	return r3.Norm(r3.Sub(m.vertices[ed.v[1]].pos, m.vertices[ed.v[0]].pos))
}

// Centroid returns the mean position of the vertices of face f.
func (m *Mesh) Centroid(f int) r3.Vec {
	var sum r3.Vec
	for _, v := range m.faces[f].verts {
		sum = r3.Add(sum, m.vertices[v].pos)
	}
	return r3.Scale(0.25, sum)
}

// unit normalizes p, leaving the zero vector unchanged.
func unit(p r3.Vec) r3.Vec {
	n := r3.Norm(p)
	if n == 0 {
		return p
	}
	return r3.Scale(1/n, p)
}

// computeFaceNormal assumes the quad is planar and uses its first three vertices.
func (m *Mesh) computeFaceNormal(f int) {
	face := &m.faces[f]
	p0 := m.vertices[face.verts[0]].pos
	p1 := m.vertices[face.verts[1]].pos
	p2 := m.vertices[face.verts[2]].pos
	face.normal = unit(r3.Cross(r3.Sub(p1, p0), r3.Sub(p2, p0)))
}

func (m *Mesh) computeVertexNormal(v int) {
	vert := &m.vertices[v]
	if len(vert.faces) == 0 {
		return
	}
	var sum r3.Vec
	for _, f := range vert.faces {
		sum = r3.Add(sum, m.faces[f].normal)
	}
	vert.normal = unit(r3.Scale(1/float64(len(vert.faces)), sum))
}

func (m *Mesh) computeMidpointAndRadius() {
	if len(m.vertices) == 0 {
		m.midpoint = r3.Vec{}
		m.radius = 0
		return
	}
	lo, hi := m.PositionBounds()
	m.midpoint = r3.Scale(0.5, r3.Add(lo, hi))
	m.radius = 0.5 * r3.Norm(r3.Sub(hi, lo))
}

// updateGeometry recomputes everything derived from vertex positions.
func (m *Mesh) updateGeometry() {
	for f := range m.faces {
		m.computeFaceNormal(f)
	}
	for v := range m.vertices {
		m.computeVertexNormal(v)
	}
	m.computeMidpointAndRadius()
}

func minVec(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func maxVec(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}
