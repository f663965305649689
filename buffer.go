// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadmesh

// AttributeStride is the number of values per vertex in VertexAttributes:
// position (3), normal (3), scalar (1) and vector (3).
const AttributeStride = 10

// VertexAttributes packs the vertex attributes in vertex id order, one
// record of AttributeStride values per vertex, ready for a vertex buffer.
func (m *Mesh) VertexAttributes() []float32 {
	data := make([]float32, 0, len(m.vertices)*AttributeStride)
	for i := range m.vertices {
		v := &m.vertices[i]
		data = append(data,
			float32(v.pos.X), float32(v.pos.Y), float32(v.pos.Z),
			float32(v.normal.X), float32(v.normal.Y), float32(v.normal.Z),
			float32(v.scalar),
			float32(v.vector.X), float32(v.vector.Y), float32(v.vector.Z))
	}
	return data
}

// TriangleIndices splits every quad into the triangles (v0, v1, v2) and
// (v2, v3, v0), in the face's own vertex order.
func (m *Mesh) TriangleIndices() []uint32 {
	idx := make([]uint32, 0, len(m.faces)*6)
	for i := range m.faces {
		v := m.faces[i].verts
		idx = append(idx,
			uint32(v[0]), uint32(v[1]), uint32(v[2]),
			uint32(v[2]), uint32(v[3]), uint32(v[0]))
	}
	return idx
}

// LineIndices lists the endpoints of every edge, for drawing wireframes and
// streamline meshes.
func (m *Mesh) LineIndices() []uint32 {
	idx := make([]uint32, 0, len(m.edges)*2)
	for i := range m.edges {
		idx = append(idx, uint32(m.edges[i].v[0]), uint32(m.edges[i].v[1]))
	}
	return idx
}
