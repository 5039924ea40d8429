package geometry

import (
	"math"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every object-space axis.
type Cube struct {
	shapeBase
}

// NewCube creates a cube with the identity transform
func NewCube() *Cube {
	return &Cube{shapeBase: newShapeBase()}
}

// checkAxis computes the entry and exit t values against the two slab
// planes of one axis. A zero direction component gives ±Inf bounds, which
// the interval intersection handles naturally.
func checkAxis(origin, direction float64) (tMin, tMax float64) {
	tMinNum := -1 - origin
	tMaxNum := 1 - origin

	if math.Abs(direction) >= core.Epsilon {
		tMin = tMinNum / direction
		tMax = tMaxNum / direction
	} else {
		tMin = math.Copysign(math.Inf(1), tMinNum)
		tMax = math.Copysign(math.Inf(1), tMaxNum)
	}

	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// LocalIntersect uses the slab method: the ray's entry/exit interval per
// axis is intersected across all three axes; an empty combined interval
// is a miss.
func (c *Cube) LocalIntersect(ray core.Ray) []Intersection {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}

	return []Intersection{
		NewIntersection(tMin, c),
		NewIntersection(tMax, c),
	}
}

// LocalNormalAt returns the normal of the cube face the point lies on,
// the axis with the largest absolute coordinate
func (c *Cube) LocalNormalAt(point core.Tuple) core.Tuple {
	maxC := math.Max(math.Abs(point.X), math.Max(math.Abs(point.Y), math.Abs(point.Z)))

	switch maxC {
	case math.Abs(point.X):
		return core.NewVector(point.X, 0, 0).Normalize()
	case math.Abs(point.Y):
		return core.NewVector(0, point.Y, 0).Normalize()
	default:
		return core.NewVector(0, 0, point.Z).Normalize()
	}
}
