package geometry

import (
	"testing"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
)

func TestPlane_LocalNormalAt(t *testing.T) {
	p := NewPlane()
	expected := core.NewVector(0, 1, 0)

	for _, point := range []core.Tuple{
		core.NewPoint(0, 0, 0),
		core.NewPoint(10, 0, -10),
		core.NewPoint(-5, 0, 150),
	} {
		if got := p.LocalNormalAt(point); !got.Equals(expected) {
			t.Errorf("Normal at %+v: got %+v", point, got)
		}
	}
}

func TestPlane_LocalIntersect(t *testing.T) {
	p := NewPlane()

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{
			name:      "parallel ray misses",
			origin:    core.NewPoint(0, 10, 0),
			direction: core.NewVector(0, 0, 1),
			expected:  nil,
		},
		{
			name:      "coplanar ray misses",
			origin:    core.NewPoint(0, 0, 0),
			direction: core.NewVector(0, 0, 1),
			expected:  nil,
		},
		{
			name:      "ray from above",
			origin:    core.NewPoint(0, 1, 0),
			direction: core.NewVector(0, -1, 0),
			expected:  []float64{1},
		},
		{
			name:      "ray from below",
			origin:    core.NewPoint(0, -1, 0),
			direction: core.NewVector(0, 1, 0),
			expected:  []float64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := p.LocalIntersect(core.NewRay(tt.origin, tt.direction))
			if len(xs) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expected), len(xs))
			}
			for i, expected := range tt.expected {
				if xs[i].T != expected {
					t.Errorf("Expected t=%f, got t=%f", expected, xs[i].T)
				}
			}
		})
	}
}
