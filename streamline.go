// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadmesh

import (
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Direction selects whether a streamline step follows the field or runs
// against it.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

func (m *Mesh) faceXY(f int) [4]r2.Vec {
	var q [4]r2.Vec
	for i, v := range m.faces[f].verts {
		q[i] = xy(m.vertices[v].pos)
	}
	return q
}

// Contains reports whether the XY projection of p lies inside face f.
func (m *Mesh) Contains(f int, p r3.Vec) bool {
	return quadContains(m.faceXY(f), xy(p))
}

// Locate returns the first face whose XY projection contains p, or NoFace.
func (m *Mesh) Locate(p r3.Vec) int {
	for f := range m.faces {
		if m.Contains(f, p) {
			return f
		}
	}
	return NoFace
}

// Sample bilinearly interpolates the vertex vectors of face f at the XY
// position of p. The face is assumed to be axis-aligned in XY; other quads
// give an approximation. The Z component of the result is always zero.
func (m *Mesh) Sample(f int, p r3.Vec) r3.Vec {
	face := &m.faces[f]
	first := m.vertices[face.verts[0]].pos
	x1, x2 := first.X, first.X
	y1, y2 := first.Y, first.Y
	for _, v := range face.verts {
		q := m.vertices[v].pos
		switch {
		case q.X < x1:
			x1 = q.X
		case q.X > x2:
			x2 = q.X
		}
		switch {
		case q.Y < y1:
			y1 = q.Y
		case q.Y > y2:
			y2 = q.Y
		}
	}

	var v11, v12, v21, v22 r3.Vec
	for _, v := range face.verts {
		q := m.vertices[v].pos
		switch {
		case q.X == x1 && q.Y == y1:
			v11 = m.vertices[v].vector
		case q.X == x1 && q.Y == y2:
			v12 = m.vertices[v].vector
		case q.X == x2 && q.Y == y1:
			v21 = m.vertices[v].vector
		case q.X == x2 && q.Y == y2:
			v22 = m.vertices[v].vector
		}
	}

	s := bilinear(x1, x2, y1, y2, p.X, p.Y, v11, v12, v21, v22)
	return r3.Vec{X: s.X, Y: s.Y}
}

// Step advances pos by h along the normalized field of face f in direction
// dir. If the step leaves the face, the position is clipped to the crossed
// edge and next is the face across it, which is NoFace at the mesh boundary.
// ok is false when the step halts in place: the field vanishes at pos, or no
// crossing edge could be found.
//
// When the step crosses more than one edge, the crossing furthest along the
// step is taken rather than the first edge found. A position lying on the
// edge it entered through, or on a face corner, then moves on instead of
// being clipped back across that edge. A step starting on a corner may still
// cross at its start, returning next equal to pos in a neighboring face.
func (m *Mesh) Step(pos r3.Vec, f int, dir Direction, h float64) (next r3.Vec, nextFace int, ok bool) {
	v := m.Sample(f, pos)
	if v.X == 0 && v.Y == 0 {
		return pos, NoFace, false
	}

	cand := r3.Add(pos, r3.Scale(float64(dir)*h, unit(v)))
	if m.Contains(f, cand) {
		return cand, f, true
	}

	// Among the crossed edges take the one furthest along the step, so that
	// a position lying on the edge it just came through is not sent back.
	p0, p1 := xy(pos), xy(cand)
	crossed, crossT := noEdge, -1.0
	for _, e := range m.faces[f].edges {
		a := xy(m.vertices[m.edges[e].v[0]].pos)
		b := xy(m.vertices[m.edges[e].v[1]].pos)
		t, u, ok := segmentIntersect(p0, p1, a, b)
		if !ok || t < 0 || t > 1 || u < 0 || u > 1 {
			continue
		}
		if t > crossT {
			crossed, crossT = e, t
		}
	}
	if crossed == noEdge {
		return pos, NoFace, false
	}
	next = r3.Add(pos, r3.Scale(crossT, r3.Sub(cand, pos)))
	return next, m.edges[crossed].OtherFace(f), true
}

// Trace integrates a streamline through seed with step size h, taking at
// most n steps backward and n steps forward. If seedFace is NoFace the face
// is found with Locate; a seed outside the mesh yields just the seed. The
// result runs from the backward end through seed to the forward end and
// always holds at least the seed. Consecutive points are never equal: a
// zero-length crossing, as happens when a streamline passes exactly through
// a mesh vertex, moves on to the next face without adding a point.
func (m *Mesh) Trace(seed r3.Vec, seedFace int, h float64, n int) []r3.Vec {
	if seedFace == NoFace {
		seedFace = m.Locate(seed)
		if seedFace == NoFace {
			return []r3.Vec{seed}
		}
	}

	line := append([]r3.Vec{seed}, m.integrate(seed, seedFace, Backward, h, n)...)
	slices.Reverse(line)
	return append(line, m.integrate(seed, seedFace, Forward, h, n)...)
}

// integrate collects up to n accepted positions from seed in direction dir.
// Every step counts toward n, including ones that only change face.
func (m *Mesh) integrate(seed r3.Vec, f int, dir Direction, h float64, n int) []r3.Vec {
	var line []r3.Vec
	pos := seed
	for i := 0; i < n; i++ {
		next, nextFace, ok := m.Step(pos, f, dir, h)
		if !ok {
			break
		}
		if next != pos {
			line = append(line, next)
		}
		if nextFace == NoFace {
			break
		}
		pos, f = next, nextFace
	}
	return line
}
