package geometry

import (
	"github.com/rgv/go-whitted-raytracer/pkg/core"
	"github.com/rgv/go-whitted-raytracer/pkg/material"
)

// Shape is the interface every primitive implements. LocalIntersect and
// LocalNormalAt work entirely in object space; the world-space conversions
// are shared and live in Intersect and NormalAt below.
type Shape interface {
	LocalIntersect(ray core.Ray) []Intersection
	LocalNormalAt(point core.Tuple) core.Tuple
	Transform() core.Matrix
	InverseTransform() core.Matrix
	InverseTransposeTransform() core.Matrix
	SetTransform(m core.Matrix) error
	Material() *material.Material
	SetMaterial(m material.Material)
}

// shapeBase carries the state shared by every primitive: the world
// transform with its cached inverse and inverse-transpose, and the
// material. The caches are recomputed on write, never on read, so the
// hot intersection loop never inverts a matrix.
type shapeBase struct {
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
}

func newShapeBase() shapeBase {
	return shapeBase{
		transform:        core.IdentityMatrix(),
		inverse:          core.IdentityMatrix(),
		inverseTranspose: core.IdentityMatrix(),
		material:         material.DefaultMaterial(),
	}
}

// Transform returns the shape's world transform
func (s *shapeBase) Transform() core.Matrix {
	return s.transform
}

// InverseTransform returns the cached inverse of the shape's transform
func (s *shapeBase) InverseTransform() core.Matrix {
	return s.inverse
}

// InverseTransposeTransform returns the cached inverse-transpose, used to
// carry local normals back to world space
func (s *shapeBase) InverseTransposeTransform() core.Matrix {
	return s.inverseTranspose
}

// SetTransform sets the world transform and recomputes the cached
// inverse and inverse-transpose. A singular matrix is rejected with
// core.ErrNonInvertibleTransform.
func (s *shapeBase) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	s.transform = m
	s.inverse = inverse
	s.inverseTranspose = inverse.Transpose()
	return nil
}

// Material returns the shape's material
func (s *shapeBase) Material() *material.Material {
	return &s.material
}

// SetMaterial replaces the shape's material
func (s *shapeBase) SetMaterial(m material.Material) {
	s.material = m
}

// Intersect transforms a world-space ray into the shape's object space and
// collects the shape's local intersections. The t values stay valid in
// world space because the ray direction is transformed, not renormalized.
func Intersect(s Shape, ray core.Ray) []Intersection {
	localRay := ray.Transform(s.InverseTransform())
	return s.LocalIntersect(localRay)
}

// NormalAt computes the world-space surface normal at a world-space point
// on the shape. The local normal goes through the inverse-transpose of the
// shape's transform, gets its w component cleared, and is renormalized.
func NormalAt(s Shape, worldPoint core.Tuple) core.Tuple {
	localPoint := s.InverseTransform().MultiplyTuple(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	worldNormal := s.InverseTransposeTransform().MultiplyTuple(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
