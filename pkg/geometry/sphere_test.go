package geometry

import (
	"math"
	"testing"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
)

func TestSphere_LocalIntersect(t *testing.T) {
	s := NewSphere()

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{
			name:      "ray through the center",
			origin:    core.NewPoint(0, 0, -5),
			direction: core.NewVector(0, 0, 1),
			expected:  []float64{4, 6},
		},
		{
			name:      "tangent ray",
			origin:    core.NewPoint(0, 1, -5),
			direction: core.NewVector(0, 0, 1),
			expected:  []float64{5, 5},
		},
		{
			name:      "ray misses",
			origin:    core.NewPoint(0, 2, -5),
			direction: core.NewVector(0, 0, 1),
			expected:  nil,
		},
		{
			name:      "ray originates inside",
			origin:    core.NewPoint(0, 0, 0),
			direction: core.NewVector(0, 0, 1),
			expected:  []float64{-1, 1},
		},
		{
			name:      "sphere behind the ray",
			origin:    core.NewPoint(0, 0, 5),
			direction: core.NewVector(0, 0, 1),
			expected:  []float64{-6, -4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := s.LocalIntersect(core.NewRay(tt.origin, tt.direction))
			if len(xs) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expected), len(xs))
			}
			for i, expected := range tt.expected {
				if math.Abs(xs[i].T-expected) > core.Epsilon {
					t.Errorf("Intersection %d: expected t=%f, got t=%f", i, expected, xs[i].T)
				}
				if xs[i].Object != s {
					t.Errorf("Intersection %d references the wrong shape", i)
				}
			}
		})
	}
}

func TestSphere_Intersect_Transformed(t *testing.T) {
	r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	scaled := NewSphere()
	if err := scaled.SetTransform(core.Scaling(2, 2, 2)); err != nil {
		t.Fatal(err)
	}
	xs := Intersect(scaled, r)
	if len(xs) != 2 || xs[0].T != 3 || xs[1].T != 7 {
		t.Errorf("Scaled sphere: expected t=3,7, got %v", xs)
	}

	translated := NewSphere()
	if err := translated.SetTransform(core.Translation(5, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if xs := Intersect(translated, r); len(xs) != 0 {
		t.Errorf("Translated sphere: expected miss, got %v", xs)
	}
}

func TestSphere_NormalAt(t *testing.T) {
	s := NewSphere()
	sqrt3over3 := math.Sqrt(3) / 3

	tests := []struct {
		name     string
		point    core.Tuple
		expected core.Tuple
	}{
		{"on the x axis", core.NewPoint(1, 0, 0), core.NewVector(1, 0, 0)},
		{"on the y axis", core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0)},
		{"on the z axis", core.NewPoint(0, 0, 1), core.NewVector(0, 0, 1)},
		{
			"non-axial point",
			core.NewPoint(sqrt3over3, sqrt3over3, sqrt3over3),
			core.NewVector(sqrt3over3, sqrt3over3, sqrt3over3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalAt(s, tt.point)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
			if !got.Equals(got.Normalize()) {
				t.Error("Normal is not a unit vector")
			}
		})
	}
}

func TestSphere_NormalAt_Transformed(t *testing.T) {
	s := NewSphere()
	if err := s.SetTransform(core.Translation(0, 1, 0)); err != nil {
		t.Fatal(err)
	}
	got := NormalAt(s, core.NewPoint(0, 1.70711, -0.70711))
	if !got.Equals(core.NewVector(0, 0.7071068, -0.7071068)) {
		t.Errorf("Translated sphere normal: got %+v", got)
	}

	s = NewSphere()
	transform := core.Scaling(1, 0.5, 1).Multiply(core.RotationZ(math.Pi / 5))
	if err := s.SetTransform(transform); err != nil {
		t.Fatal(err)
	}
	got = NormalAt(s, core.NewPoint(0, math.Sqrt2/2, -math.Sqrt2/2))
	expected := core.NewVector(0, 0.97014, -0.24254)
	if math.Abs(got.X-expected.X) > 1e-5 || math.Abs(got.Y-expected.Y) > 1e-5 || math.Abs(got.Z-expected.Z) > 1e-5 {
		t.Errorf("Transformed sphere normal: expected %+v, got %+v", expected, got)
	}
}

func TestSphere_SetTransform_NonInvertible(t *testing.T) {
	s := NewSphere()
	if err := s.SetTransform(core.Scaling(0, 0, 0)); err == nil {
		t.Error("Expected error for non-invertible transform")
	}
	// the transform must be left unchanged after a rejected set
	if !s.Transform().Equals(core.IdentityMatrix()) {
		t.Error("Transform was mutated by a failed SetTransform")
	}
}

func TestSphere_GlassSphere(t *testing.T) {
	s := NewGlassSphere()
	if s.Material().Transparency != 1.0 || s.Material().RefractiveIndex != 1.5 {
		t.Errorf("Unexpected glass material: %+v", s.Material())
	}
}
