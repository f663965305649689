package quadmesh

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const eps = 1e-9

func near(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < eps
}

func uniform(v r3.Vec) func(x, y float64) (r3.Vec, float64) {
	return func(x, y float64) (r3.Vec, float64) {
		return v, 0
	}
}

func TestContainsAndLocate(t *testing.T) {
	m := mustGrid(t, 2, 2, nil)
	for f := 0; f < m.NumFaces(); f++ {
		c := m.Centroid(f)
		if !m.Contains(f, c) {
			t.Errorf("face %d does not contain its centroid %v", f, c)
		}
		if got := m.Locate(c); got != f {
			t.Errorf("Locate(%v) = %d, want %d", c, got, f)
		}
	}
	for _, p := range []r3.Vec{{X: -0.5, Y: 0.5}, {X: 2.5, Y: 1}, {X: 1, Y: 3}} {
		if got := m.Locate(p); got != NoFace {
			t.Errorf("Locate(%v) = %d, want NoFace", p, got)
		}
	}
	// Z plays no part in point location.
	if got := m.Locate(r3.Vec{X: 1.5, Y: 0.5, Z: 42}); got != 1 {
		t.Errorf("Locate above face 1 = %d, want 1", got)
	}
}

func TestContainsClockwise(t *testing.T) {
	vs, _ := grid(1, 1, nil)
	m, err := Build(vs, [][]int{{3, 2, 1, 0}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !m.Contains(0, r3.Vec{X: 0.5, Y: 0.5}) {
		t.Error("clockwise face does not contain its center")
	}
}

func TestSample(t *testing.T) {
	vectors := map[[2]float64]r3.Vec{
		{0, 0}: {X: 1, Z: 5},
		{1, 0}: {Y: 1},
		{1, 1}: {X: 1, Y: 1},
		{0, 1}: {},
	}
	m := mustGrid(t, 1, 1, func(x, y float64) (r3.Vec, float64) {
		return vectors[[2]float64{x, y}], 0
	})
	cases := []struct {
		p    r3.Vec
		want r3.Vec
	}{
		{r3.Vec{X: 0.5, Y: 0.5}, r3.Vec{X: 0.5, Y: 0.5}},
		{r3.Vec{X: 0.25, Y: 0.75}, r3.Vec{X: 0.375, Y: 0.25}},
		{r3.Vec{X: 0, Y: 0}, r3.Vec{X: 1}},
		{r3.Vec{X: 1, Y: 1, Z: 3}, r3.Vec{X: 1, Y: 1}},
	}
	for _, c := range cases {
		if got := m.Sample(0, c.p); got != c.want {
			t.Errorf("Sample(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestStep(t *testing.T) {
	right := mustGrid(t, 2, 2, uniform(r3.Vec{X: 1}))
	up := mustGrid(t, 2, 2, uniform(r3.Vec{Y: 3}))
	still := mustGrid(t, 2, 2, nil)

	cases := []struct {
		name     string
		m        *Mesh
		pos      r3.Vec
		face     int
		dir      Direction
		wantPos  r3.Vec
		wantFace int
		wantOK   bool
	}{
		{"inside", right, r3.Vec{X: 0.5, Y: 0.5}, 0, Forward, r3.Vec{X: 0.6, Y: 0.5}, 0, true},
		{"backward", right, r3.Vec{X: 0.5, Y: 0.5}, 0, Backward, r3.Vec{X: 0.4, Y: 0.5}, 0, true},
		{"cross right", right, r3.Vec{X: 0.95, Y: 0.5}, 0, Forward, r3.Vec{X: 1, Y: 0.5}, 1, true},
		{"cross left", right, r3.Vec{X: 1.05, Y: 1.5}, 3, Backward, r3.Vec{X: 1, Y: 1.5}, 2, true},
		{"cross up", up, r3.Vec{X: 0.5, Y: 0.95}, 0, Forward, r3.Vec{X: 0.5, Y: 1}, 2, true},
		{"leave mesh", right, r3.Vec{X: 1.95, Y: 0.5}, 1, Forward, r3.Vec{X: 2, Y: 0.5}, NoFace, true},
		{"zero field", still, r3.Vec{X: 0.5, Y: 0.5}, 0, Forward, r3.Vec{X: 0.5, Y: 0.5}, NoFace, false},
	}
	for _, c := range cases {
		pos, f, ok := c.m.Step(c.pos, c.face, c.dir, 0.1)
		if ok != c.wantOK || f != c.wantFace || !near(pos, c.wantPos) {
			t.Errorf("%s: Step = %v, %d, %v, want %v, %d, %v", c.name, pos, f, ok, c.wantPos, c.wantFace, c.wantOK)
		}
	}
}

// A step that starts on the edge it just crossed must move on into the new
// face rather than bounce back across that edge.
func TestStepFromEdge(t *testing.T) {
	m := mustGrid(t, 2, 1, uniform(r3.Vec{X: 1}))
	pos, f, ok := m.Step(r3.Vec{X: 1, Y: 0.5}, 1, Forward, 0.1)
	if !ok || f != 1 || !near(pos, r3.Vec{X: 1.1, Y: 0.5}) {
		t.Errorf("Step = %v, %d, %v, want (1.1, 0.5), 1, true", pos, f, ok)
	}
}

func TestTraceUniform(t *testing.T) {
	m := mustGrid(t, 2, 2, uniform(r3.Vec{X: 1}))
	seed := r3.Vec{X: 0.5, Y: 0.5}
	const h = 0.1
	line := m.Trace(seed, 0, h, 50)
	if len(line) < 3 {
		t.Fatalf("Trace returned %d points", len(line))
	}
	if first := line[0]; math.Abs(first.X) > eps {
		t.Errorf("first point = %v, want x = 0", first)
	}
	if last := line[len(line)-1]; math.Abs(last.X-2) > eps {
		t.Errorf("last point = %v, want x = 2", last)
	}
	seen := false
	for i, p := range line {
		if p.Y != 0.5 {
			t.Errorf("point %d = %v, want y = 0.5", i, p)
		}
		if p == seed {
			seen = true
		}
		if i == 0 {
			continue
		}
		if p.X < line[i-1].X {
			t.Errorf("point %d = %v goes back from %v", i, p, line[i-1])
		}
		// Steps are h long except where the position is clipped onto an
		// edge it has all but reached, at x = 0, 1 and 2.
		d := r3.Norm(r3.Sub(p, line[i-1]))
		if math.Abs(d-h) > eps && d > eps {
			t.Errorf("step %d has length %v, want %v", i, d, h)
		}
	}
	if !seen {
		t.Errorf("seed %v missing from %v", seed, line)
	}
}

// A diagonal field sends streamlines straight through grid vertices, where
// the step clips to the corner and then leaves it at t = 0.
func TestTraceThroughVertex(t *testing.T) {
	m := mustGrid(t, 3, 3, uniform(r3.Vec{X: 1, Y: 1}))
	const h = 1
	for f := 0; f < m.NumFaces(); f++ {
		line := m.Trace(m.Centroid(f), f, h, 10)
		for i := 1; i < len(line); i++ {
			if line[i] == line[i-1] {
				t.Errorf("face %d: points %d and %d are both %v", f, i-1, i, line[i])
			}
			if line[i].X < line[i-1].X-eps || line[i].Y < line[i-1].Y-eps {
				t.Errorf("face %d: point %d = %v goes back from %v", f, i, line[i], line[i-1])
			}
		}
	}

	sm := NewStreamlineMesh(m, h, 10)
	for e := 0; e < sm.NumEdges(); e++ {
		if l := sm.EdgeLength(e); l == 0 {
			t.Errorf("streamline mesh edge %d %v has zero length", e, sm.Edge(e).Vertices())
		}
	}
}

func TestTraceLocatesSeed(t *testing.T) {
	m := mustGrid(t, 2, 2, uniform(r3.Vec{Y: 1}))
	seed := r3.Vec{X: 1.5, Y: 0.5}
	got := m.Trace(seed, NoFace, 0.25, 20)
	want := m.Trace(seed, 1, 0.25, 20)
	if len(got) != len(want) {
		t.Fatalf("Trace with NoFace has %d points, with face 1 %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTraceSeedOnly(t *testing.T) {
	seed := r3.Vec{X: 0.25, Y: 0.5}
	cases := []struct {
		name string
		m    *Mesh
		seed r3.Vec
		n    int
	}{
		{"zero field", NewUnitQuad(), seed, 10},
		{"no steps", mustGrid(t, 1, 1, uniform(r3.Vec{X: 1})), seed, 0},
		{"outside", mustGrid(t, 1, 1, uniform(r3.Vec{X: 1})), r3.Vec{X: 5, Y: 5}, 10},
	}
	for _, c := range cases {
		line := c.m.Trace(c.seed, NoFace, 0.1, c.n)
		if len(line) != 1 || line[0] != c.seed {
			t.Errorf("%s: Trace = %v, want [%v]", c.name, line, c.seed)
		}
	}
}

func TestTraceVortexStaysOnMesh(t *testing.T) {
	m := mustGrid(t, 4, 4, func(x, y float64) (r3.Vec, float64) {
		return r3.Vec{X: -(y - 2), Y: x - 2}, 0
	})
	const (
		h = 0.2
		n = 40
	)
	for f := 0; f < m.NumFaces(); f++ {
		line := m.Trace(m.Centroid(f), f, h, n)
		if len(line) > 2*n+1 {
			t.Errorf("face %d: %d points, want at most %d", f, len(line), 2*n+1)
		}
		for i, p := range line {
			if p.X < -eps || p.X > 4+eps || p.Y < -eps || p.Y > 4+eps {
				t.Errorf("face %d: point %d = %v is off the mesh", f, i, p)
			}
			if i > 0 {
				if d := r3.Norm(r3.Sub(p, line[i-1])); d > h+eps {
					t.Errorf("face %d: step %d has length %v", f, i, d)
				}
			}
		}
	}
}
