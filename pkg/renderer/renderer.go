package renderer

import (
	"time"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
	"github.com/rgv/go-whitted-raytracer/pkg/world"
)

// RenderStats summarizes a completed render
type RenderStats struct {
	Pixels   int           // Number of pixels rendered
	Duration time.Duration // Wall-clock render time
}

// Renderer drives a camera over a world to fill a canvas. Pixels are
// evaluated one at a time; per-pixel work depends only on the immutable
// world and camera, so order is irrelevant to the result.
type Renderer struct {
	camera   *Camera
	world    *world.World
	maxDepth int
	logger   core.Logger
}

// Option configures a Renderer
type Option func(*Renderer)

// WithMaxDepth overrides the reflection/refraction recursion budget
func WithMaxDepth(depth int) Option {
	return func(r *Renderer) { r.maxDepth = depth }
}

// WithLogger enables progress logging during the render
func WithLogger(logger core.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}

// NewRenderer creates a renderer for the given camera and world
func NewRenderer(camera *Camera, w *world.World, opts ...Option) *Renderer {
	r := &Renderer{
		camera:   camera,
		world:    w,
		maxDepth: world.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render evaluates every pixel and returns the finished canvas with stats
func (r *Renderer) Render() (*Canvas, RenderStats) {
	start := time.Now()
	canvas := NewCanvas(r.camera.HSize, r.camera.VSize)

	for py := 0; py < r.camera.VSize; py++ {
		for px := 0; px < r.camera.HSize; px++ {
			ray := r.camera.RayForPixel(px, py)
			canvas.WritePixel(px, py, r.world.ColorAt(ray, r.maxDepth))
		}
		if r.logger != nil && (py+1)%50 == 0 {
			r.logger.Printf("rendered %d/%d rows", py+1, r.camera.VSize)
		}
	}

	stats := RenderStats{
		Pixels:   r.camera.HSize * r.camera.VSize,
		Duration: time.Since(start),
	}
	return canvas, stats
}
