package geometry

import (
	"math"
	"testing"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
)

func TestCone_LocalIntersect(t *testing.T) {
	cone := NewCone()

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{
			name:      "through the apex region",
			origin:    core.NewPoint(0, 0, -5),
			direction: core.NewVector(0, 0, 1),
			expected:  []float64{5, 5},
		},
		{
			name:      "at an angle hitting both halves",
			origin:    core.NewPoint(0, 0, -5),
			direction: core.NewVector(1, 1, 1).Normalize(),
			expected:  []float64{8.66025, 8.66025},
		},
		{
			name:      "skewed hit",
			origin:    core.NewPoint(1, 1, -5),
			direction: core.NewVector(-0.5, -1, 1).Normalize(),
			expected:  []float64{4.55006, 49.44994},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := cone.LocalIntersect(core.NewRay(tt.origin, tt.direction))
			if len(xs) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expected), len(xs))
			}
			for i, expected := range tt.expected {
				if math.Abs(xs[i].T-expected) > 1e-5 {
					t.Errorf("Intersection %d: expected t=%f, got t=%f", i, expected, xs[i].T)
				}
			}
		})
	}
}

func TestCone_LocalIntersect_ParallelToHalf(t *testing.T) {
	cone := NewCone()
	ray := core.NewRay(core.NewPoint(0, 0, -1), core.NewVector(0, 1, 1).Normalize())

	xs := cone.LocalIntersect(ray)
	if len(xs) != 1 {
		t.Fatalf("Expected 1 intersection, got %d", len(xs))
	}
	if math.Abs(xs[0].T-0.35355) > 1e-5 {
		t.Errorf("Expected t=0.35355, got t=%f", xs[0].T)
	}
}

func TestCone_Capped(t *testing.T) {
	cone := NewCone()
	cone.Minimum = -0.5
	cone.Maximum = 0.5
	cone.Closed = true

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{"miss above", core.NewPoint(0, 0, -5), core.NewVector(0, 1, 0), 0},
		{"through wall and cap", core.NewPoint(0, 0, -0.25), core.NewVector(0, 1, 1).Normalize(), 2},
		{"up the axis through both caps", core.NewPoint(0, 0, -0.25), core.NewVector(0, 1, 0), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := cone.LocalIntersect(core.NewRay(tt.origin, tt.direction))
			if len(xs) != tt.count {
				t.Errorf("Expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCone_LocalNormalAt(t *testing.T) {
	cone := NewCone()

	tests := []struct {
		point    core.Tuple
		expected core.Tuple
	}{
		{core.NewPoint(1, 1, 1), core.NewVector(1, -math.Sqrt2, 1).Normalize()},
		{core.NewPoint(-1, -1, 0), core.NewVector(-1, 1, 0).Normalize()},
	}

	for _, tt := range tests {
		if got := cone.LocalNormalAt(tt.point); !got.Equals(tt.expected) {
			t.Errorf("Normal at %+v: expected %+v, got %+v", tt.point, tt.expected, got)
		}
	}
}

func TestCone_CapNormals(t *testing.T) {
	cone := NewCone()
	cone.Minimum = -2
	cone.Maximum = -0.5
	cone.Closed = true

	// the lower cap at y=-2 has radius 2
	if got := cone.LocalNormalAt(core.NewPoint(1.5, -2, 0)); !got.Equals(core.NewVector(0, -1, 0)) {
		t.Errorf("Lower cap normal: expected (0, -1, 0), got %+v", got)
	}
	if got := cone.LocalNormalAt(core.NewPoint(0.25, -0.5, 0)); !got.Equals(core.NewVector(0, 1, 0)) {
		t.Errorf("Upper cap normal: expected (0, 1, 0), got %+v", got)
	}
}
