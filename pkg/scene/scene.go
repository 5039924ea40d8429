package scene

import (
	"fmt"
	"strings"

	"github.com/rgv/go-whitted-raytracer/pkg/renderer"
	"github.com/rgv/go-whitted-raytracer/pkg/world"
)

// Scene bundles everything a render needs: the world, the camera, and the
// recursion budget.
type Scene struct {
	World    *world.World
	Camera   *renderer.Camera
	MaxDepth int
}

// Names returns the built-in scene names in a stable order
func Names() []string {
	return []string{"default", "glass", "shapes"}
}

// ByName constructs a built-in scene by name
func ByName(name string, width, height int) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(width, height)
	case "glass":
		return NewGlassScene(width, height)
	case "shapes":
		return NewShapesScene(width, height)
	default:
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
}
