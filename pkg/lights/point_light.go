package lights

import "github.com/rgv/go-whitted-raytracer/pkg/core"

// PointLight is a light source with a position but no geometric extent,
// which is why shadows are hard-edged.
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
