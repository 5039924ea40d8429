package renderer

import (
	"math"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
)

// Camera maps pixel coordinates to world-space rays. The canvas sits one
// unit in front of the camera; the view transform (with its cached
// inverse) places the camera in the world.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64
	PixelSize   float64

	transform  core.Matrix
	inverse    core.Matrix
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera for the given canvas size and horizontal
// field of view, looking down -z from the origin until a view transform
// is set
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		PixelSize:   (halfWidth * 2) / float64(hsize),
		transform:   core.IdentityMatrix(),
		inverse:     core.IdentityMatrix(),
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
	}
}

// Transform returns the camera's view transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// SetTransform sets the view transform and recomputes the cached inverse
func (c *Camera) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = m
	c.inverse = inverse
	return nil
}

// RayForPixel returns the world-space ray through the center of the given
// pixel
func (c *Camera) RayForPixel(px, py int) core.Ray {
	// offset from the canvas edge to the pixel center
	xOffset := (float64(px) + 0.5) * c.PixelSize
	yOffset := (float64(py) + 0.5) * c.PixelSize

	// the camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
