package world

import (
	"math"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
	"github.com/rgv/go-whitted-raytracer/pkg/geometry"
	"github.com/rgv/go-whitted-raytracer/pkg/lights"
)

// DefaultMaxDepth bounds the reflection/refraction recursion. The explicit
// depth parameter is the sole termination mechanism, so rendering a scene
// of two facing mirrors still terminates.
const DefaultMaxDepth = 5

// World is the aggregate scene: an insertion-ordered list of shapes and the
// lights that illuminate them. Shapes are treated as immutable for the
// duration of a render.
type World struct {
	Shapes []geometry.Shape
	Lights []lights.PointLight
}

// New creates an empty world
func New() *World {
	return &World{}
}

// AddShape appends a shape to the world
func (w *World) AddShape(s geometry.Shape) {
	w.Shapes = append(w.Shapes, s)
}

// AddLight appends a light to the world
func (w *World) AddLight(l lights.PointLight) {
	w.Lights = append(w.Lights, l)
}

// Intersect collects the intersections of a ray with every shape in the
// world, sorted ascending by t
func (w *World) Intersect(ray core.Ray) []geometry.Intersection {
	var xs []geometry.Intersection
	for _, shape := range w.Shapes {
		xs = append(xs, geometry.Intersect(shape, ray)...)
	}
	geometry.SortIntersections(xs)
	return xs
}

// IsShadowed reports whether a point is shadowed from the given light: a
// shadow ray is cast toward the light and any intersection strictly closer
// than the light blocks it. The caller passes the acne-offset point.
func (w *World) IsShadowed(point core.Tuple, light lights.PointLight) bool {
	toLight := light.Position.Subtract(point)
	distance := toLight.Magnitude()
	direction := toLight.Normalize()

	xs := w.Intersect(core.NewRay(point, direction))
	if hit, ok := geometry.Hit(xs); ok {
		return hit.T < distance
	}
	return false
}

// ShadeHit resolves the color at a prepared hit: the Phong surface terms
// summed over every light (shadow-tested per light), plus the recursive
// reflection and refraction contributions. When the material is both
// reflective and transparent the two are blended by the Schlick
// reflectance. Sums are not clamped here.
func (w *World) ShadeHit(comps Computations, remaining int) core.Color {
	mat := comps.Object.Material()

	surface := core.Black
	for _, light := range w.Lights {
		inShadow := w.IsShadowed(comps.OverPoint, light)
		contribution := mat.Lighting(
			comps.Object.InverseTransform(), light,
			comps.OverPoint, comps.Eye, comps.Normal, inShadow)
		surface = surface.Add(contribution)
	}

	reflected := w.reflectedColor(comps, remaining)
	refracted := w.refractedColor(comps, remaining)

	if mat.Reflective > 0 && mat.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ColorAt resolves the color seen along a ray: black when the ray hits
// nothing, otherwise the shaded color of the visible surface point.
// remaining is the reflection/refraction budget left.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := geometry.HitIndex(xs)
	if !ok {
		return core.Black
	}
	comps := PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// reflectedColor spawns the reflected ray from the hit and resolves its
// color one recursion level down. Zero at depth exhaustion or on a
// non-reflective material.
func (w *World) reflectedColor(comps Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}
	reflective := comps.Object.Material().Reflective
	if reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.Reflect)
	return w.ColorAt(reflectRay, remaining-1).Multiply(reflective)
}

// refractedColor applies Snell's law at the hit and resolves the refracted
// ray's color one recursion level down. Zero at depth exhaustion, on an
// opaque material, or under total internal reflection.
func (w *World) refractedColor(comps Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}
	transparency := comps.Object.Material().Transparency
	if transparency == 0 {
		return core.Black
	}

	ratio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2t := ratio * ratio * (1 - cosI*cosI)
	if sin2t > 1 {
		// total internal reflection: no real refracted angle exists
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := comps.Normal.Multiply(ratio*cosI - cosT).
		Subtract(comps.Eye.Multiply(ratio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Multiply(transparency)
}
