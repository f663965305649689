package quadmesh

import (
	"slices"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestVertexAttributes(t *testing.T) {
	m := mustGrid(t, 1, 1, func(x, y float64) (r3.Vec, float64) {
		return r3.Vec{X: y, Y: -x, Z: 0.5}, x + 2*y
	})
	data := m.VertexAttributes()
	if got, want := len(data), 4*AttributeStride; got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}
	// Vertex 3 sits at (0, 1).
	got := data[3*AttributeStride : 4*AttributeStride]
	want := []float32{0, 1, 0, 0, 0, 1, 2, 1, 0, 0.5}
	if !slices.Equal(got, want) {
		t.Errorf("vertex 3 = %v, want %v", got, want)
	}
}

func TestTriangleIndices(t *testing.T) {
	m := mustGrid(t, 2, 1, nil)
	want := []uint32{
		0, 1, 4, 4, 3, 0,
		1, 2, 5, 5, 4, 1,
	}
	if got := m.TriangleIndices(); !slices.Equal(got, want) {
		t.Errorf("TriangleIndices() = %v, want %v", got, want)
	}
}

func TestLineIndices(t *testing.T) {
	m := mustGrid(t, 2, 2, nil)
	idx := m.LineIndices()
	if len(idx) != 2*m.NumEdges() {
		t.Fatalf("len = %d, want %d", len(idx), 2*m.NumEdges())
	}
	for e := 0; e < m.NumEdges(); e++ {
		if got, want := [2]int{int(idx[2*e]), int(idx[2*e+1])}, m.Edge(e).Vertices(); got != want {
			t.Errorf("edge %d = %v, want %v", e, got, want)
		}
	}

	sm := FromPolylines([][]r3.Vec{{{}, {X: 1}, {X: 2}}})
	if got, want := sm.LineIndices(), []uint32{0, 1, 1, 2}; !slices.Equal(got, want) {
		t.Errorf("streamline LineIndices() = %v, want %v", got, want)
	}
	if got := sm.TriangleIndices(); len(got) != 0 {
		t.Errorf("streamline TriangleIndices() = %v, want none", got)
	}
}
