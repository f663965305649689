package quadmesh

import (
	"slices"
	"testing"
)

func TestFanSizes(t *testing.T) {
	m := mustGrid(t, 3, 3, nil)
	for v := 0; v < m.NumVertices(); v++ {
		vert := m.Vertex(v)
		ne, nf := len(vert.Edges()), len(vert.Faces())
		if vert.IsBoundary() {
			if ne != nf+1 {
				t.Errorf("boundary vertex %d: %d edges, %d faces", v, ne, nf)
			}
		} else if ne != nf {
			t.Errorf("interior vertex %d: %d edges, %d faces", v, ne, nf)
		}
	}
	// Only the four inner vertices of a 3x3 grid are interior.
	var interior []int
	for v := 0; v < m.NumVertices(); v++ {
		if !m.Vertex(v).IsBoundary() {
			interior = append(interior, v)
		}
	}
	if want := []int{5, 6, 9, 10}; !slices.Equal(interior, want) {
		t.Errorf("interior vertices = %v, want %v", interior, want)
	}
}

func TestFanOrderInterior(t *testing.T) {
	m := mustGrid(t, 2, 2, nil)
	center := m.Vertex(4)
	if got, want := center.Faces(), []int{0, 1, 3, 2}; !slices.Equal(got, want) {
		t.Errorf("faces around 4 = %v, want %v", got, want)
	}
	var ring []int
	for _, e := range center.Edges() {
		ring = append(ring, m.Edge(e).OtherVertex(4))
	}
	if want := []int{1, 5, 7, 3}; !slices.Equal(ring, want) {
		t.Errorf("vertices around 4 = %v, want %v", ring, want)
	}
}

func TestFanOrderBoundary(t *testing.T) {
	m := mustGrid(t, 2, 2, nil)
	cases := []struct {
		v     int
		faces []int
		ring  []int
	}{
		{v: 0, faces: []int{0}, ring: []int{1, 3}},
		{v: 1, faces: []int{1, 0}, ring: []int{2, 4, 0}},
		{v: 3, faces: []int{0, 2}, ring: []int{0, 4, 6}},
		{v: 8, faces: []int{3}, ring: []int{7, 5}},
	}
	for _, c := range cases {
		vert := m.Vertex(c.v)
		if got := vert.Faces(); !slices.Equal(got, c.faces) {
			t.Errorf("faces around %d = %v, want %v", c.v, got, c.faces)
		}
		var ring []int
		for _, e := range vert.Edges() {
			ring = append(ring, m.Edge(e).OtherVertex(c.v))
		}
		if !slices.Equal(ring, c.ring) {
			t.Errorf("vertices around %d = %v, want %v", c.v, ring, c.ring)
		}
	}
}

// Consecutive fan entries must share a face: edge i of an interior fan lies
// between faces i and i+1, edge i of an open fan between faces i-1 and i.
func TestFanConsecutiveShareFace(t *testing.T) {
	m := mustGrid(t, 4, 3, nil)
	for v := 0; v < m.NumVertices(); v++ {
		vert := m.Vertex(v)
		faces, edges := vert.Faces(), vert.Edges()
		for i, e := range edges {
			var want []int
			if vert.IsBoundary() {
				if i > 0 {
					want = append(want, faces[i-1])
				}
				if i < len(faces) {
					want = append(want, faces[i])
				}
			} else {
				want = []int{faces[i], faces[(i+1)%len(faces)]}
			}
			got := slices.Clone(m.Edge(e).Faces())
			slices.Sort(got)
			slices.Sort(want)
			if !slices.Equal(got, want) {
				t.Errorf("vertex %d edge %d: faces %v, want %v", v, e, got, want)
			}
		}
	}
}

func TestFanIgnoresRawOrder(t *testing.T) {
	vs, fs := grid(2, 2, nil)
	slices.Reverse(fs)
	m, err := Build(vs, fs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := m.Check(); err != nil {
		t.Errorf("Check: %v", err)
	}
	if got := len(m.Vertex(4).Faces()); got != 4 {
		t.Errorf("center vertex has %d faces, want 4", got)
	}
}

func TestHasDuplicates(t *testing.T) {
	cases := []struct {
		in   []int
		want bool
	}{
		{nil, false},
		{[]int{1}, false},
		{[]int{1, 2, 3}, false},
		{[]int{1, 2, 1}, true},
	}
	for _, c := range cases {
		if got := hasDuplicates(c.in); got != c.want {
			t.Errorf("hasDuplicates(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
