// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"bufio"
	"io"
	"strconv"

	quadmesh "github.com/hajimehoshi/go-quadmesh"
)

var vertexProps = []string{"x", "y", "z", "nx", "ny", "nz", "s", "vx", "vy", "vz", "t00", "t01", "t10", "t11"}

// Write encodes m as ASCII PLY. Vertices are written at their current,
// possibly displaced, positions. A mesh without faces is written with an
// edge element instead.
func Write(w io.Writer, m *quadmesh.Mesh) error {
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}

	ew.line("ply")
	ew.line("format ascii 1.0")
	ew.line("element vertex " + strconv.Itoa(m.NumVertices()))
	for _, p := range vertexProps {
		ew.line("property double " + p)
	}
	if m.NumFaces() > 0 {
		ew.line("element face " + strconv.Itoa(m.NumFaces()))
		ew.line("property list uchar int vertex_indices")
	} else {
		ew.line("element edge " + strconv.Itoa(m.NumEdges()))
		ew.line("property int vertex1")
		ew.line("property int vertex2")
	}
	ew.line("end_header")

	buf := make([]byte, 0, 256)
	for i := 0; i < m.NumVertices(); i++ {
		v := m.Vertex(i)
		p, n, vec, t := v.Pos(), v.Normal(), v.Vector(), v.Tensor()
		buf = buf[:0]
		for j, x := range []float64{
			p.X, p.Y, p.Z, n.X, n.Y, n.Z, v.Scalar(), vec.X, vec.Y, vec.Z,
			t[0][0], t[0][1], t[1][0], t[1][1],
		} {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, x, 'g', -1, 64)
		}
		ew.line(string(buf))
	}

	if m.NumFaces() > 0 {
		for i := 0; i < m.NumFaces(); i++ {
			buf = append(buf[:0], '4')
			for _, v := range m.Face(i).Vertices() {
				buf = append(buf, ' ')
				buf = strconv.AppendInt(buf, int64(v), 10)
			}
			ew.line(string(buf))
		}
	} else {
		for i := 0; i < m.NumEdges(); i++ {
			e := m.Edge(i)
			ew.line(strconv.Itoa(e.V1()) + " " + strconv.Itoa(e.V2()))
		}
	}

	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}

type errWriter struct {
	w   *bufio.Writer
	err error
}

func (ew *errWriter) line(s string) {
	if ew.err != nil {
		return
	}
	if _, err := ew.w.WriteString(s); err != nil {
		ew.err = err
		return
	}
	ew.err = ew.w.WriteByte('\n')
}
