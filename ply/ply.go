// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ply reads and writes quad meshes in the ASCII PLY format.
//
// Vertex elements may carry any of the properties x, y, z, nx, ny, nz, s,
// vx, vy, vz, t00, t01, t10 and t11; other properties are ignored. Face
// elements hold a vertex count followed by that many 0-based indices.
package ply

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	quadmesh "github.com/hajimehoshi/go-quadmesh"
)

// Data is the content of a PLY file in the form Build consumes.
type Data struct {
	Vertices []quadmesh.VertexData
	Faces    [][]int
	Edges    [][2]int
}

type element struct {
	name  string
	count int
	props []string
}

// Read parses an ASCII PLY stream. A stream that ends before all declared
// elements are read returns an error wrapping io.ErrUnexpectedEOF.
func Read(r io.Reader) (*Data, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	elems, err := readHeader(s)
	if err != nil {
		return nil, err
	}

	d := &Data{}
	for _, el := range elems {
		for i := 0; i < el.count; i++ {
			if !s.Scan() {
				if err := s.Err(); err != nil {
					return nil, fmt.Errorf("ply: %w", err)
				}
				return nil, fmt.Errorf("ply: reading %s %d of %d: %w", el.name, i, el.count, io.ErrUnexpectedEOF)
			}
			fields := strings.Fields(s.Text())
			switch el.name {
			case "vertex":
				v, err := parseVertex(el.props, fields)
				if err != nil {
					return nil, fmt.Errorf("ply: vertex %d: %w", i, err)
				}
				d.Vertices = append(d.Vertices, v)
			case "face":
				f, err := parseFace(fields)
				if err != nil {
					return nil, fmt.Errorf("ply: face %d: %w", i, err)
				}
				d.Faces = append(d.Faces, f)
			case "edge":
				e, err := parseEdge(fields)
				if err != nil {
					return nil, fmt.Errorf("ply: edge %d: %w", i, err)
				}
				d.Edges = append(d.Edges, e)
			}
		}
	}
	return d, nil
}

func readHeader(s *bufio.Scanner) ([]element, error) {
	line := func() (string, bool) {
		if !s.Scan() {
			return "", false
		}
		return strings.TrimSpace(s.Text()), true
	}

	if l, ok := line(); !ok || l != "ply" {
		return nil, fmt.Errorf("ply: not a PLY stream")
	}
	if l, ok := line(); !ok || l != "format ascii 1.0" {
		return nil, fmt.Errorf("ply: only ASCII 1.0 is supported, got %q", l)
	}

	var elems []element
	for {
		l, ok := line()
		if !ok {
			if err := s.Err(); err != nil {
				return nil, fmt.Errorf("ply: %w", err)
			}
			return nil, fmt.Errorf("ply: header: %w", io.ErrUnexpectedEOF)
		}
		fields := strings.Fields(l)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "end_header":
			return elems, nil
		case "comment", "obj_info":
		case "element":
			if len(fields) != 3 {
				return nil, fmt.Errorf("ply: malformed element line %q", l)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("ply: bad element count in %q", l)
			}
			elems = append(elems, element{name: fields[1], count: n})
		case "property":
			if len(elems) == 0 || len(fields) < 3 {
				return nil, fmt.Errorf("ply: unexpected property line %q", l)
			}
			el := &elems[len(elems)-1]
			el.props = append(el.props, fields[len(fields)-1])
		default:
			return nil, fmt.Errorf("ply: unknown header line %q", l)
		}
	}
}

func parseVertex(props, fields []string) (quadmesh.VertexData, error) {
	var v quadmesh.VertexData
	if len(fields) < len(props) {
		return v, fmt.Errorf("want %d values, got %d", len(props), len(fields))
	}
	for i, p := range props {
		dst := vertexField(&v, p)
		if dst == nil {
			continue
		}
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return v, fmt.Errorf("property %s: %w", p, err)
		}
		*dst = x
	}
	return v, nil
}

// vertexField maps a property name to its place in v, or nil.
func vertexField(v *quadmesh.VertexData, prop string) *float64 {
	switch prop {
	case "x":
		return &v.Position.X
	case "y":
		return &v.Position.Y
	case "z":
		return &v.Position.Z
	case "nx":
		return &v.Normal.X
	case "ny":
		return &v.Normal.Y
	case "nz":
		return &v.Normal.Z
	case "s":
		return &v.Scalar
	case "vx":
		return &v.Vector.X
	case "vy":
		return &v.Vector.Y
	case "vz":
		return &v.Vector.Z
	case "t00":
		return &v.Tensor[0][0]
	case "t01":
		return &v.Tensor[0][1]
	case "t10":
		return &v.Tensor[1][0]
	case "t11":
		return &v.Tensor[1][1]
	}
	return nil
}

func parseFace(fields []string) ([]int, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty line")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("vertex count: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("negative vertex count %d", n)
	}
	// A line listing fewer indices than announced keeps what it has; Build
	// drops the face as malformed.
	f := make([]int, min(n, len(fields)-1))
	for i := range f {
		if f[i], err = strconv.Atoi(fields[i+1]); err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
	}
	return f, nil
}

func parseEdge(fields []string) ([2]int, error) {
	var e [2]int
	if len(fields) < 2 {
		return e, fmt.Errorf("want 2 indices, got %d", len(fields))
	}
	for i := range e {
		var err error
		if e[i], err = strconv.Atoi(fields[i]); err != nil {
			return e, fmt.Errorf("index %d: %w", i, err)
		}
	}
	return e, nil
}

// Build links the parsed faces into a mesh.
func (d *Data) Build() (*quadmesh.Mesh, error) {
	return quadmesh.Build(d.Vertices, d.Faces)
}

// Load reads the PLY file at path and builds its mesh.
func Load(path string) (*quadmesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m, err := d.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	quadmesh.Logger().Info("ply: loaded mesh", "path", path,
		"vertices", m.NumVertices(), "edges", m.NumEdges(), "faces", m.NumFaces())
	return m, nil
}
