package material

import (
	"math"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
	"github.com/rgv/go-whitted-raytracer/pkg/lights"
)

// Material describes surface appearance for the Phong shading model plus
// the reflection and refraction parameters used by the recursive tracer.
type Material struct {
	Color           core.Color
	Pattern         *Pattern // nil means the base color is used
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// DefaultMaterial returns the standard white Phong material
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// Lighting computes the Phong contribution of a single light at a surface
// point. shapeInverse is the owning shape's cached inverse transform,
// needed to evaluate a pattern in pattern space. When the point is in
// shadow only the ambient term survives.
func (m Material) Lighting(shapeInverse core.Matrix, light lights.PointLight, point, eye, normal core.Tuple, inShadow bool) core.Color {
	color := m.Color
	if m.Pattern != nil {
		color = m.Pattern.AtShape(shapeInverse, point)
	}

	effectiveColor := color.Hadamard(light.Intensity)
	lightDir := light.Position.Subtract(point).Normalize()

	ambient := effectiveColor.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	diffuse := core.Black
	specular := core.Black

	// a non-positive dot product means the light is on the other side
	lightDotNormal := lightDir.Dot(normal)
	if lightDotNormal >= 0 {
		diffuse = effectiveColor.Multiply(m.Diffuse * lightDotNormal)

		reflectDir := lightDir.Negate().Reflect(normal)
		reflectDotEye := reflectDir.Dot(eye)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = light.Intensity.Multiply(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
