package core

import "math"

// Color represents an RGB color with unclamped float components.
// Components stay unclamped through the shading pipeline; clamping
// happens only when the canvas is serialized.
type Color struct {
	R, G, B float64
}

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the background color returned for rays that hit nothing.
var Black = Color{0, 0, 0}

// White is full-intensity white.
var White = Color{1, 1, 1}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the component-wise product of two colors
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns the color with components clamped to [0, 1]
func (c Color) Clamp() Color {
	return Color{
		R: math.Max(0, math.Min(1, c.R)),
		G: math.Max(0, math.Min(1, c.G)),
		B: math.Max(0, math.Min(1, c.B)),
	}
}

// Equals reports whether two colors are equal within Epsilon
func (c Color) Equals(other Color) bool {
	return math.Abs(c.R-other.R) < Epsilon &&
		math.Abs(c.G-other.G) < Epsilon &&
		math.Abs(c.B-other.B) < Epsilon
}
