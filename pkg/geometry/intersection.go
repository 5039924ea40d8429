package geometry

import "sort"

// Intersection pairs a ray parameter t with the shape it was found on.
// Shape identity is by reference; the same shape may appear many times
// in one ray's intersection list.
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// SortIntersections sorts a list of intersections ascending by t. The
// sort is stable so list order breaks ties reproducibly.
func SortIntersections(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// HitIndex returns the index of the intersection with the lowest
// non-negative t, which is the visible surface point. Intersections
// entirely behind the ray origin are ignored; ok is false when every t is
// negative or the list is empty. The index disambiguates duplicate
// entries, such as the two identical intersections of a tangent ray.
func HitIndex(xs []Intersection) (int, bool) {
	hit := -1
	for i, x := range xs {
		if x.T < 0 {
			continue
		}
		if hit < 0 || x.T < xs[hit].T {
			hit = i
		}
	}
	return hit, hit >= 0
}

// Hit returns the intersection with the lowest non-negative t
func Hit(xs []Intersection) (Intersection, bool) {
	if i, ok := HitIndex(xs); ok {
		return xs[i], true
	}
	return Intersection{}, false
}
