// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadmesh

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// xy projects p onto the XY plane.
func xy(p r3.Vec) r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// orient returns the cross product of (p-a) and (b-a). Its sign tells which
// side of the directed line a->b the point p lies on.
func orient(p, a, b r2.Vec) float64 {
	return r2.Cross(r2.Sub(p, a), r2.Sub(b, a))
}

// segmentIntersect intersects the segments p0->p1 and a->b. t is the
// parameter along p0->p1 and u the parameter along a->b. ok is false when the
// segments are parallel.
func segmentIntersect(p0, p1, a, b r2.Vec) (t, u float64, ok bool) {
	d := r2.Sub(p1, p0)
	g := r2.Sub(b, a)
	denom := r2.Cross(d, g)
	if denom == 0 {
		return 0, 0, false
	}
	w := r2.Sub(p0, a)
	return r2.Cross(g, w) / denom, r2.Cross(d, w) / denom, true
}

// quadContains reports whether p lies inside the quad q by checking that p is
// on the same side of all four directed edges. Points on an edge are not
// reliably inside.
func quadContains(q [4]r2.Vec, p r2.Vec) bool {
	first := orient(p, q[0], q[1]) < 0
	for i := 1; i < 4; i++ {
		if (orient(p, q[i], q[(i+1)%4]) < 0) != first {
			return false
		}
	}
	return true
}

// bilinear blends the corner values of the axis-aligned box [x1,x2]x[y1,y2]
// at (x, y). v11 sits at (x1,y1), v12 at (x1,y2), v21 at (x2,y1) and v22 at
// (x2,y2). A zero-area box is not guarded against.
func bilinear(x1, x2, y1, y2, x, y float64, v11, v12, v21, v22 r3.Vec) r3.Vec {
	sum := r3.Scale((x2-x)*(y2-y), v11)
	sum = r3.Add(sum, r3.Scale((x2-x)*(y-y1), v12))
	sum = r3.Add(sum, r3.Scale((x-x1)*(y2-y), v21))
	sum = r3.Add(sum, r3.Scale((x-x1)*(y-y1), v22))
	return r3.Scale(1/((x2-x1)*(y2-y1)), sum)
}
