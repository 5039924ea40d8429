package geometry

import (
	"math"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
)

// Cylinder is the object-space unit cylinder around the y axis, optionally
// truncated to (Minimum, Maximum) and optionally capped.
type Cylinder struct {
	shapeBase
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder
func NewCylinder() *Cylinder {
	return &Cylinder{
		shapeBase: newShapeBase(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// checkCap reports whether the intersection at t lies within the unit
// radius of an end cap
func checkCap(ray core.Ray, t float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= 1
}

func (c *Cylinder) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t) {
		xs = append(xs, NewIntersection(t, c))
	}

	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t) {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

// LocalIntersect intersects the cylinder wall, truncated to the y range,
// plus the end caps when the cylinder is closed
func (c *Cylinder) LocalIntersect(ray core.Ray) []Intersection {
	var xs []Intersection

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if math.Abs(a) >= core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		k := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*k
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := ray.Origin.Y + t0*ray.Direction.Y
		if c.Minimum < y0 && y0 < c.Maximum {
			xs = append(xs, NewIntersection(t0, c))
		}
		y1 := ray.Origin.Y + t1*ray.Direction.Y
		if c.Minimum < y1 && y1 < c.Maximum {
			xs = append(xs, NewIntersection(t1, c))
		}
	}

	return c.intersectCaps(ray, xs)
}

// LocalNormalAt returns the cap normal near the ends and the radial wall
// normal elsewhere
func (c *Cylinder) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	switch {
	case dist < 1 && point.Y >= c.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && point.Y <= c.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		return core.NewVector(point.X, 0, point.Z).Normalize()
	}
}
