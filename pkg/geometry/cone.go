package geometry

import (
	"math"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
)

// Cone is the object-space double-napped cone around the y axis, optionally
// truncated to (Minimum, Maximum) and optionally capped. Cap radius equals
// |y| at the cap plane.
type Cone struct {
	shapeBase
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double cone
func NewCone() *Cone {
	return &Cone{
		shapeBase: newShapeBase(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

func checkConeCap(ray core.Ray, t, y float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= math.Abs(y)
}

func (c *Cone) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkConeCap(ray, t, c.Minimum) {
		xs = append(xs, NewIntersection(t, c))
	}

	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkConeCap(ray, t, c.Maximum) {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

// LocalIntersect intersects the cone walls and, when closed, the end caps.
// When the quadratic degenerates (ray parallel to one half of the cone)
// there is still a single wall intersection.
func (c *Cone) LocalIntersect(ray core.Ray) []Intersection {
	var xs []Intersection

	a := ray.Direction.X*ray.Direction.X - ray.Direction.Y*ray.Direction.Y + ray.Direction.Z*ray.Direction.Z
	b := 2*ray.Origin.X*ray.Direction.X - 2*ray.Origin.Y*ray.Direction.Y + 2*ray.Origin.Z*ray.Direction.Z
	k := ray.Origin.X*ray.Origin.X - ray.Origin.Y*ray.Origin.Y + ray.Origin.Z*ray.Origin.Z

	if math.Abs(a) < core.Epsilon {
		if math.Abs(b) >= core.Epsilon {
			xs = append(xs, NewIntersection(-k/(2*b), c))
		}
	} else {
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

// LocalNormalAt returns the cap normal near the ends and the slanted wall
// normal elsewhere
func (c *Cone) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	// cap radius equals |y| at the cap plane
	switch {
	case dist < c.Maximum*c.Maximum && point.Y >= c.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < c.Minimum*c.Minimum && point.Y <= c.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		y := math.Sqrt(dist)
		if point.Y > 0 {
			y = -y
		}
		return core.NewVector(point.X, y, point.Z).Normalize()
	}
}
