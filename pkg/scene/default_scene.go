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

// NewDefaultScene creates the standard showcase: a checkered floor, a
// striped wall, and three spheres of varying size and gloss.
func NewDefaultScene(width, height int) (*Scene, error) {
	floor := geometry.NewPlane()
	floorMat := floor.Material()
	floorMat.Pattern = material.NewCheckerPattern(
		core.NewColor(0.85, 0.85, 0.85),
		core.NewColor(0.25, 0.25, 0.25),
	)
	floorMat.Specular = 0
	floorMat.Reflective = 0.08

	wall := geometry.NewPlane()
	wallTransform := core.Translation(0, 0, 6).Multiply(core.RotationX(math.Pi / 2))
	if err := wall.SetTransform(wallTransform); err != nil {
		return nil, err
	}
	wallMat := wall.Material()
	wallMat.Pattern = material.NewStripePattern(
		core.NewColor(0.6, 0.6, 0.9),
		core.NewColor(0.3, 0.3, 0.6),
	)
	wallMat.Specular = 0

	middle := geometry.NewSphere()
	if err := middle.SetTransform(core.Translation(-0.5, 1, 0.5)); err != nil {
		return nil, err
	}
	middleMat := middle.Material()
	middleMat.Color = core.NewColor(0.1, 1, 0.5)
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middleMat.Reflective = 0.2

	right := geometry.NewSphere()
	rightTransform := core.Translation(1.5, 0.5, -0.5).Multiply(core.Scaling(0.5, 0.5, 0.5))
	if err := right.SetTransform(rightTransform); err != nil {
		return nil, err
	}
	rightMat := right.Material()
	rightMat.Color = core.NewColor(0.5, 1, 0.1)
	rightMat.Diffuse = 0.7
	rightMat.Specular = 0.3
	rightMat.Pattern = material.NewGradientPattern(
		core.NewColor(0.5, 1, 0.1),
		core.NewColor(1, 0.2, 0.2),
	)

	left := geometry.NewSphere()
	leftTransform := core.Translation(-1.5, 0.33, -0.75).Multiply(core.Scaling(0.33, 0.33, 0.33))
	if err := left.SetTransform(leftTransform); err != nil {
		return nil, err
	}
	leftMat := left.Material()
	leftMat.Color = core.NewColor(1, 0.8, 0.1)
	leftMat.Diffuse = 0.7
	leftMat.Specular = 0.3

	w := world.New()
	w.AddShape(floor)
	w.AddShape(wall)
	w.AddShape(middle)
	w.AddShape(right)
	w.AddShape(left)
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	camera := renderer.NewCamera(width, height, math.Pi/3)
	view := core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)
	if err := camera.SetTransform(view); err != nil {
		return nil, err
	}

	return &Scene{World: w, Camera: camera, MaxDepth: world.DefaultMaxDepth}, nil
}
