package renderer

import (
	"math"
	"testing"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
	"github.com/rgv/go-whitted-raytracer/pkg/geometry"
	"github.com/rgv/go-whitted-raytracer/pkg/lights"
	"github.com/rgv/go-whitted-raytracer/pkg/world"
)

func testWorld(t *testing.T) *world.World {
	t.Helper()

	s1 := geometry.NewSphere()
	m1 := s1.Material()
	m1.Color = core.NewColor(0.8, 1.0, 0.6)
	m1.Diffuse = 0.7
	m1.Specular = 0.2

	s2 := geometry.NewSphere()
	if err := s2.SetTransform(core.Scaling(0.5, 0.5, 0.5)); err != nil {
		t.Fatal(err)
	}

	w := world.New()
	w.AddShape(s1)
	w.AddShape(s2)
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))
	return w
}

func TestRenderer_Render(t *testing.T) {
	w := testWorld(t)

	c := NewCamera(11, 11, math.Pi/2)
	view := core.ViewTransform(
		core.NewPoint(0, 0, -5),
		core.NewPoint(0, 0, 0),
		core.NewVector(0, 1, 0),
	)
	if err := c.SetTransform(view); err != nil {
		t.Fatal(err)
	}

	canvas, stats := NewRenderer(c, w).Render()

	center := canvas.PixelAt(5, 5)
	expected := core.NewColor(0.38066, 0.47583, 0.2855)
	if math.Abs(center.R-expected.R) > 1e-4 ||
		math.Abs(center.G-expected.G) > 1e-4 ||
		math.Abs(center.B-expected.B) > 1e-4 {
		t.Errorf("Expected center pixel %+v, got %+v", expected, center)
	}

	if stats.Pixels != 121 {
		t.Errorf("Expected 121 pixels, got %d", stats.Pixels)
	}
}

func TestRenderer_Render_DepthZero(t *testing.T) {
	// a zero budget disables reflection entirely but still renders
	w := testWorld(t)
	mirror := geometry.NewPlane()
	mirror.Material().Reflective = 1
	if err := mirror.SetTransform(core.Translation(0, -1, 0)); err != nil {
		t.Fatal(err)
	}
	w.AddShape(mirror)

	c := NewCamera(5, 5, math.Pi/2)
	canvas, _ := NewRenderer(c, w, WithMaxDepth(0)).Render()
	if canvas.Width != 5 || canvas.Height != 5 {
		t.Errorf("Unexpected canvas size: %dx%d", canvas.Width, canvas.Height)
	}
}
