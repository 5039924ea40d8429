package geometry

import (
	"math"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
)

// Sphere is the unit sphere centered at the object-space origin. Size and
// position come from the shape's transform.
type Sphere struct {
	shapeBase
}

// NewSphere creates a unit sphere with the identity transform
func NewSphere() *Sphere {
	return &Sphere{shapeBase: newShapeBase()}
}

// NewGlassSphere creates a unit sphere with a fully transparent material
// of refractive index 1.5
func NewGlassSphere() *Sphere {
	s := NewSphere()
	m := s.Material()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	return s
}

// LocalIntersect solves the quadratic from substituting the ray into the
// unit sphere equation. A negative discriminant is a miss, not an error;
// a tangent ray yields two equal t values.
func (s *Sphere) LocalIntersect(ray core.Ray) []Intersection {
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return []Intersection{
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	}
}

// LocalNormalAt returns the normal at an object-space point, which for a
// unit sphere at the origin is the point itself as a vector
func (s *Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(core.NewPoint(0, 0, 0))
}
