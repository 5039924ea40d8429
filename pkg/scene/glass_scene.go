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

// NewGlassScene creates the reflection/refraction showcase: a glass sphere
// with an air bubble inside, hovering over a checkered floor beside a
// mirror sphere.
func NewGlassScene(width, height int) (*Scene, error) {
	floor := geometry.NewPlane()
	floorMat := floor.Material()
	floorMat.Pattern = material.NewCheckerPattern(core.White, core.NewColor(0.1, 0.1, 0.1))
	floorMat.Specular = 0
	floorMat.Reflective = 0.1

	glass := geometry.NewSphere()
	if err := glass.SetTransform(core.Translation(0, 1, 0)); err != nil {
		return nil, err
	}
	glassMat := glass.Material()
	glassMat.Color = core.NewColor(0.05, 0.05, 0.08)
	glassMat.Ambient = 0.05
	glassMat.Diffuse = 0.1
	glassMat.Specular = 1
	glassMat.Shininess = 300
	glassMat.Reflective = 0.9
	glassMat.Transparency = 0.9
	glassMat.RefractiveIndex = 1.52

	// hollow center: air has a lower refractive index than glass
	bubble := geometry.NewSphere()
	bubbleTransform := core.Translation(0, 1, 0).Multiply(core.Scaling(0.5, 0.5, 0.5))
	if err := bubble.SetTransform(bubbleTransform); err != nil {
		return nil, err
	}
	bubbleMat := bubble.Material()
	bubbleMat.Color = core.White
	bubbleMat.Ambient = 0
	bubbleMat.Diffuse = 0
	bubbleMat.Specular = 0
	bubbleMat.Reflective = 0.9
	bubbleMat.Transparency = 0.9
	bubbleMat.RefractiveIndex = 1.0000034

	mirror := geometry.NewSphere()
	mirrorTransform := core.Translation(-2.2, 0.75, 1.5).Multiply(core.Scaling(0.75, 0.75, 0.75))
	if err := mirror.SetTransform(mirrorTransform); err != nil {
		return nil, err
	}
	mirrorMat := mirror.Material()
	mirrorMat.Color = core.NewColor(0.1, 0.1, 0.1)
	mirrorMat.Diffuse = 0.3
	mirrorMat.Specular = 1
	mirrorMat.Shininess = 400
	mirrorMat.Reflective = 0.9

	w := world.New()
	w.AddShape(floor)
	w.AddShape(glass)
	w.AddShape(bubble)
	w.AddShape(mirror)
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))
	w.AddLight(lights.NewPointLight(core.NewPoint(5, 4, -6), core.NewColor(0.3, 0.3, 0.3)))

	camera := renderer.NewCamera(width, height, math.Pi/3)
	view := core.ViewTransform(
		core.NewPoint(0, 1.5, -4.5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)
	if err := camera.SetTransform(view); err != nil {
		return nil, err
	}

	// glass inside glass needs a deeper budget than the default
	return &Scene{World: w, Camera: camera, MaxDepth: 7}, nil
}
