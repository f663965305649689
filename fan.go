// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadmesh

import (
	"fmt"
	"slices"
)

// Offsets from a vertex slot to the edge crossed when rotating around it.
const (
	precedingEdge = 3
	followingEdge = 0
)

// orderFans rewrites the edge and face lists of every vertex into rotational
// fan order.
func (m *Mesh) orderFans() error {
	for v := range m.vertices {
		if err := m.orderFan(v); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mesh) orderFan(v int) error {
	vert := &m.vertices[v]
	if len(vert.faces) == 0 {
		return nil
	}
	start := vert.faces[0]

	fwdFaces, fwdEdges, closed, err := m.walkFan(v, start, precedingEdge)
	if err != nil {
		return err
	}
	faces := append([]int{start}, fwdFaces...)
	edges := fwdEdges

	if !closed {
		bwdFaces, bwdEdges, closed, err := m.walkFan(v, start, followingEdge)
		if err != nil {
			return err
		}
		if closed {
			// The forward walk ran off a boundary the backward walk never met.
			return fmt.Errorf("quadmesh: vertex %d: inconsistent fan: %w", v, ErrNonManifoldVertex)
		}
		slices.Reverse(bwdFaces)
		slices.Reverse(bwdEdges)
		faces = append(bwdFaces, faces...)
		edges = append(bwdEdges, edges...)
	}

	// A fan that misses incident faces or edges, or visits one twice, means
	// the vertex joins more than one fan or the faces disagree on orientation.
	if len(faces) != len(vert.faces) || len(edges) != len(vert.edges) ||
		hasDuplicates(faces) || hasDuplicates(edges) {
		return fmt.Errorf("quadmesh: vertex %d: fan covers %d of %d faces and %d of %d edges: %w",
			v, len(faces), len(vert.faces), len(edges), len(vert.edges), ErrNonManifoldVertex)
	}
	vert.faces = faces
	vert.edges = edges
	return nil
}

// walkFan rotates around vertex v starting at face start. At each face it
// crosses the edge at the given offset from the vertex slot. It returns the
// faces entered (start excluded) and the edges crossed, and reports whether
// the walk came back to start. The walk is bounded by the vertex degree.
func (m *Mesh) walkFan(v, start, offset int) (faces, edges []int, closed bool, err error) {
	limit := len(m.vertices[v].faces)
	face := start
	for step := 0; step <= limit; step++ {
		slot := m.faces[face].slot(v)
		if slot < 0 {
			return nil, nil, false, fmt.Errorf("quadmesh: vertex %d: face %d is not incident: %w", v, face, ErrNonManifoldVertex)
		}
		e := m.faces[face].edges[(slot+offset)%4]
		edges = append(edges, e)
		next := m.edges[e].OtherFace(face)
		switch next {
		case start:
			return faces, edges, true, nil
		case NoFace:
			return faces, edges, false, nil
		}
		faces = append(faces, next)
		face = next
	}
	return nil, nil, false, fmt.Errorf("quadmesh: vertex %d: fan walk does not terminate: %w", v, ErrNonManifoldVertex)
}

func hasDuplicates(ids []int) bool {
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
