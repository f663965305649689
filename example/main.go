//go:build example

package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r3"

	quadmesh "github.com/hajimehoshi/go-quadmesh"
	"github.com/hajimehoshi/go-quadmesh/ply"
)

const screenSize = 800

// vortex builds an n x n grid over [-1, 1]^2 carrying the field (-y, x) and
// a radial scalar.
func vortex(n int) *quadmesh.Mesh {
	var vs []quadmesh.VertexData
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			x := -1 + 2*float64(i)/float64(n)
			y := -1 + 2*float64(j)/float64(n)
			vs = append(vs, quadmesh.VertexData{
				Position: r3.Vec{X: x, Y: y},
				Scalar:   x*x + y*y,
				Vector:   r3.Vec{X: -y, Y: x},
			})
		}
	}
	var fs [][]int
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			v := j*(n+1) + i
			fs = append(fs, []int{v, v + 1, v + n + 2, v + n + 1})
		}
	}
	m, err := quadmesh.Build(vs, fs)
	if err != nil {
		log.Fatal(err)
	}
	return m
}

type viewer struct {
	mesh   *quadmesh.Mesh
	lines  [][]r3.Vec
	step   float64
	steps  int
	height float64
	raised bool
}

func (v *viewer) retrace() {
	v.lines = v.mesh.Streamlines(v.step, v.steps)
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		if v.raised {
			v.mesh.ResetHeight()
		} else {
			v.mesh.ApplyHeight(v.height)
		}
		v.raised = !v.raised
		v.retrace()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		v.steps *= 2
		v.retrace()
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		if v.steps > 1 {
			v.steps /= 2
			v.retrace()
		}
	}
	return nil
}

// screen maps a mesh position so that the bounding sphere fills 90% of the
// window.
func (v *viewer) screen(p r3.Vec) (float32, float32) {
	mid := v.mesh.Midpoint()
	s := 0.9 * screenSize / 2 / v.mesh.Radius()
	x := screenSize/2 + (p.X-mid.X)*s
	y := screenSize/2 - (p.Y-mid.Y)*s
	return float32(x), float32(y)
}

func (v *viewer) line(dst *ebiten.Image, a, b r3.Vec, width float32, clr color.Color) {
	x0, y0 := v.screen(a)
	x1, y1 := v.screen(b)
	vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, true)
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	grey := color.RGBA{0xb0, 0xb0, 0xb0, 0xff}
	for i := 0; i < v.mesh.NumEdges(); i++ {
		e := v.mesh.Edge(i)
		v.line(screen, v.mesh.Vertex(e.V1()).Pos(), v.mesh.Vertex(e.V2()).Pos(), 1, grey)
	}
	blue := color.RGBA{0x20, 0x40, 0xc0, 0xff}
	for _, l := range v.lines {
		for i := 1; i < len(l); i++ {
			v.line(screen, l[i-1], l[i], 1.5, blue)
		}
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	var (
		input  = flag.String("in", "", "PLY quad mesh (default: built-in vortex)")
		steps  = flag.Int("steps", 50, "maximum steps in each direction")
		height = flag.Float64("height", 0.5, "height factor toggled with H")
	)
	flag.Parse()

	var m *quadmesh.Mesh
	if *input != "" {
		var err error
		if m, err = ply.Load(*input); err != nil {
			log.Fatal(err)
		}
	} else {
		m = vortex(16)
	}

	v := &viewer{
		mesh:   m,
		step:   m.GridSpacing() / 2,
		steps:  *steps,
		height: *height,
	}
	v.retrace()

	ebiten.SetWindowTitle("quadmesh - " + m.String())
	ebiten.SetWindowSize(screenSize, screenSize)
	if err := ebiten.RunGame(v); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
