// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadmesh

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"gonum.org/v1/gonum/spatial/r3"
)

func lineString(line []r3.Vec) orb.LineString {
	ls := make(orb.LineString, len(line))
	for i, p := range line {
		ls[i] = orb.Point{p.X, p.Y}
	}
	return ls
}

func polylineLength(line []r3.Vec) float64 {
	var l float64
	for i := 1; i < len(line); i++ {
		l += r3.Norm(r3.Sub(line[i], line[i-1]))
	}
	return l
}

// StreamlinesGeoJSON converts streamlines to a feature collection of XY
// line strings. Streamlines with fewer than two points are left out. Each
// feature carries its input index as "id", its point count and its length.
func StreamlinesGeoJSON(lines [][]r3.Vec) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, line := range lines {
		if len(line) < 2 {
			continue
		}
		feature := geojson.NewFeature(lineString(line))
		feature.Properties["id"] = i
		feature.Properties["points"] = len(line)
		feature.Properties["length"] = polylineLength(line)
		fc.Append(feature)
	}
	return fc
}

// EdgesGeoJSON converts every edge of m to an XY line string feature with
// the edge id and the number of faces it borders.
func (m *Mesh) EdgesGeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := range m.edges {
		e := &m.edges[i]
		feature := geojson.NewFeature(lineString([]r3.Vec{
			m.vertices[e.v[0]].pos,
			m.vertices[e.v[1]].pos,
		}))
		feature.Properties["id"] = e.id
		feature.Properties["faces"] = len(e.faces)
		fc.Append(feature)
	}
	return fc
}
