package scene

import (
	"math"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
	"github.com/rgv/go-whitted-raytracer/pkg/geometry"
	"github.com/rgv/go-whitted-raytracer/pkg/lights"
	"github.com/rgv/go-whitted-raytracer/pkg/material"
	"github.com/rgv/go-whitted-raytracer/pkg/renderer"
	"github.com/rgv/go-whitted-raytracer/pkg/world"
)

// NewShapesScene creates the primitive showcase: a cube, a capped
// cylinder, and a cone on a ringed floor.
func NewShapesScene(width, height int) (*Scene, error) {
	floor := geometry.NewPlane()
	floorMat := floor.Material()
	floorMat.Pattern = material.NewRingPattern(
		core.NewColor(0.9, 0.9, 0.85),
		core.NewColor(0.4, 0.45, 0.5),
	)
	floorMat.Specular = 0

	cube := geometry.NewCube()
	cubeTransform := core.Translation(-2.2, 0.7, 0.5).
		Multiply(core.RotationY(math.Pi / 6)).
		Multiply(core.Scaling(0.7, 0.7, 0.7))
	if err := cube.SetTransform(cubeTransform); err != nil {
		return nil, err
	}
	cubeMat := cube.Material()
	cubeMat.Color = core.NewColor(0.9, 0.3, 0.3)
	cubeMat.Diffuse = 0.8
	cubeMat.Specular = 0.2

	cylinder := geometry.NewCylinder()
	cylinder.Minimum = 0
	cylinder.Maximum = 1.5
	cylinder.Closed = true
	if err := cylinder.SetTransform(core.Translation(0, 0, 0.5).Multiply(core.Scaling(0.6, 1, 0.6))); err != nil {
		return nil, err
	}
	cylMat := cylinder.Material()
	cylMat.Color = core.NewColor(0.3, 0.5, 0.9)
	cylMat.Reflective = 0.3

	cone := geometry.NewCone()
	cone.Minimum = -1
	cone.Maximum = 0
	cone.Closed = true
	coneTransform := core.Translation(2.2, 1, 0.5).Multiply(core.Scaling(0.6, 1, 0.6))
	if err := cone.SetTransform(coneTransform); err != nil {
		return nil, err
	}
	coneMat := cone.Material()
	coneMat.Color = core.NewColor(0.95, 0.75, 0.2)
	coneMat.Diffuse = 0.8
	coneMat.Specular = 0.3

	w := world.New()
	w.AddShape(floor)
	w.AddShape(cube)
	w.AddShape(cylinder)
	w.AddShape(cone)
	w.AddLight(lights.NewPointLight(core.NewPoint(-8, 10, -10), core.White))

	camera := renderer.NewCamera(width, height, math.Pi/3)
	view := core.ViewTransform(
		core.NewPoint(0, 2.5, -6),
		core.NewPoint(0, 0.8, 0),
		core.NewVector(0, 1, 0),
	)
	if err := camera.SetTransform(view); err != nil {
		return nil, err
	}

	return &Scene{World: w, Camera: camera, MaxDepth: world.DefaultMaxDepth}, nil
}
