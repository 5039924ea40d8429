package world

import (
	"math"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
	"github.com/rgv/go-whitted-raytracer/pkg/geometry"
)

// Computations is the precomputed state of a single hit: everything the
// shading pipeline needs, derived once from the intersection and the ray.
type Computations struct {
	T          float64
	Object     geometry.Shape
	Point      core.Tuple
	OverPoint  core.Tuple // nudged along the normal, shadow and reflection rays start here
	UnderPoint core.Tuple // nudged against the normal, refraction rays start here
	Eye        core.Tuple
	Normal     core.Tuple
	Reflect    core.Tuple
	Inside     bool
	N1, N2     float64 // refractive indices of the media being exited and entered
}

// PrepareComputations derives the hit state for the intersection at
// hitIndex in xs, the full sorted intersection list for the ray. The list
// drives the containment walk that determines N1 and N2 for refraction
// (handles nested and overlapping transparent solids). The hit is named
// by index, not value, so the two identical entries of a tangent ray
// still resolve to distinct entry and exit media.
func PrepareComputations(hitIndex int, ray core.Ray, xs []geometry.Intersection) Computations {
	hit := xs[hitIndex]
	point := ray.Position(hit.T)
	normal := geometry.NormalAt(hit.Object, point)
	eye := ray.Direction.Negate()

	inside := false
	if normal.Dot(eye) < 0 {
		// the ray struck a back face; flip the normal so shading still
		// sees a surface facing the eye
		inside = true
		normal = normal.Negate()
	}

	offset := normal.Multiply(core.Epsilon)
	n1, n2 := refractiveIndices(hitIndex, xs)

	return Computations{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		OverPoint:  point.Add(offset),
		UnderPoint: point.Subtract(offset),
		Eye:        eye,
		Normal:     normal,
		Reflect:    ray.Direction.Reflect(normal),
		Inside:     inside,
		N1:         n1,
		N2:         n2,
	}
}

// refractiveIndices walks the sorted intersection list maintaining a stack
// of the shapes the ray is currently inside. At the hit, the top of the
// stack before entering/exiting gives the medium being left (N1) and the
// top after gives the medium being entered (N2).
func refractiveIndices(hitIndex int, xs []geometry.Intersection) (n1, n2 float64) {
	n1, n2 = 1, 1

	var containers []geometry.Shape
	for i, x := range xs {
		atHit := i == hitIndex

		if atHit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := indexOf(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if atHit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			return n1, n2
		}
	}
	return n1, n2
}

func indexOf(shapes []geometry.Shape, s geometry.Shape) int {
	for i, candidate := range shapes {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction of
// light that reflects rather than refracts. Returns 1 under total internal
// reflection.
func (c Computations) Schlick() float64 {
	cos := c.Eye.Dot(c.Normal)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1
		}
		// when exiting the denser medium, use cos(theta_t) instead
		cos = math.Sqrt(1 - sin2t)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
