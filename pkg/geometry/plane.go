package geometry

import (
	"math"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
)

// Plane is the object-space xz plane through the origin, with the normal
// pointing along +y.
type Plane struct {
	shapeBase
}

// NewPlane creates a plane with the identity transform
func NewPlane() *Plane {
	return &Plane{shapeBase: newShapeBase()}
}

// LocalIntersect returns the single intersection with the plane, or
// nothing when the ray is parallel to it (y direction within epsilon of
// zero), which avoids the division blow-up.
func (p *Plane) LocalIntersect(ray core.Ray) []Intersection {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{NewIntersection(t, p)}
}

// LocalNormalAt returns the constant plane normal
func (p *Plane) LocalNormalAt(core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
