package material

import (
	"math"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
)

// patternKind enumerates the closed set of pattern variants.
type patternKind int

const (
	patternSolid patternKind = iota
	patternStripe
	patternGradient
	patternRing
	patternChecker
	patternPointColor
)

// Pattern is a spatial color function with its own transform, applied on
// top of the owning shape's transform. New variants are added as new
// kinds, not new types.
type Pattern struct {
	kind      patternKind
	A, B      core.Color
	transform core.Matrix
	inverse   core.Matrix
}

func newPattern(kind patternKind, a, b core.Color) *Pattern {
	return &Pattern{
		kind:      kind,
		A:         a,
		B:         b,
		transform: core.IdentityMatrix(),
		inverse:   core.IdentityMatrix(),
	}
}

// NewSolidPattern creates a pattern that is the same color everywhere
func NewSolidPattern(c core.Color) *Pattern {
	return newPattern(patternSolid, c, c)
}

// NewStripePattern creates a pattern alternating between a and b along x
func NewStripePattern(a, b core.Color) *Pattern {
	return newPattern(patternStripe, a, b)
}

// NewGradientPattern creates a pattern blending linearly from a to b along x
func NewGradientPattern(a, b core.Color) *Pattern {
	return newPattern(patternGradient, a, b)
}

// NewRingPattern creates a pattern of concentric rings in the xz plane
func NewRingPattern(a, b core.Color) *Pattern {
	return newPattern(patternRing, a, b)
}

// NewCheckerPattern creates a 3D checkerboard pattern
func NewCheckerPattern(a, b core.Color) *Pattern {
	return newPattern(patternChecker, a, b)
}

// NewPointColorPattern creates a pattern returning the pattern-space point
// itself as a color. Used by tests to verify pattern-space mapping and
// refraction through patterned surfaces.
func NewPointColorPattern() *Pattern {
	return newPattern(patternPointColor, core.Black, core.White)
}

// Transform returns the pattern's transform matrix
func (p *Pattern) Transform() core.Matrix {
	return p.transform
}

// SetTransform sets the pattern's transform and recomputes the cached inverse
func (p *Pattern) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	p.transform = m
	p.inverse = inverse
	return nil
}

// At returns the pattern's color at a point in pattern space
func (p *Pattern) At(point core.Tuple) core.Color {
	switch p.kind {
	case patternStripe:
		if int(math.Floor(point.X))%2 == 0 {
			return p.A
		}
		return p.B
	case patternGradient:
		distance := p.B.Subtract(p.A)
		fraction := point.X - math.Floor(point.X)
		return p.A.Add(distance.Multiply(fraction))
	case patternRing:
		if int(math.Floor(math.Sqrt(point.X*point.X+point.Z*point.Z)))%2 == 0 {
			return p.A
		}
		return p.B
	case patternChecker:
		sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
		if int(sum)%2 == 0 {
			return p.A
		}
		return p.B
	case patternPointColor:
		return core.NewColor(point.X, point.Y, point.Z)
	default:
		return p.A
	}
}

// AtShape returns the pattern's color for a world-space point on a shape.
// The point goes world -> object space through the shape's inverse
// transform, then object -> pattern space through the pattern's own.
func (p *Pattern) AtShape(shapeInverse core.Matrix, worldPoint core.Tuple) core.Color {
	objectPoint := shapeInverse.MultiplyTuple(worldPoint)
	patternPoint := p.inverse.MultiplyTuple(objectPoint)
	return p.At(patternPoint)
}
