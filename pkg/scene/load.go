package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
	"github.com/rgv/go-whitted-raytracer/pkg/geometry"
	"github.com/rgv/go-whitted-raytracer/pkg/lights"
	"github.com/rgv/go-whitted-raytracer/pkg/material"
	"github.com/rgv/go-whitted-raytracer/pkg/renderer"
	"github.com/rgv/go-whitted-raytracer/pkg/world"
)

// sceneFile is the on-disk JSON layout of a scene description.
type sceneFile struct {
	Camera   cameraFile  `json:"camera"`
	MaxDepth *int        `json:"max_depth"`
	Lights   []lightFile `json:"lights"`
	Shapes   []shapeFile `json:"shapes"`
}

type cameraFile struct {
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	FieldOfView float64    `json:"field_of_view"`
	From        [3]float64 `json:"from"`
	To          [3]float64 `json:"to"`
	Up          [3]float64 `json:"up"`
}

type lightFile struct {
	Position  [3]float64 `json:"position"`
	Intensity [3]float64 `json:"intensity"`
}

type shapeFile struct {
	Kind       string          `json:"kind"`
	Transforms []transformFile `json:"transforms"`
	Material   *materialFile   `json:"material"`

	// cylinder/cone truncation
	Minimum *float64 `json:"minimum"`
	Maximum *float64 `json:"maximum"`
	Closed  bool     `json:"closed"`
}

type transformFile struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args"`
}

type materialFile struct {
	Color           *[3]float64  `json:"color"`
	Pattern         *patternFile `json:"pattern"`
	Ambient         *float64     `json:"ambient"`
	Diffuse         *float64     `json:"diffuse"`
	Specular        *float64     `json:"specular"`
	Shininess       *float64     `json:"shininess"`
	Reflective      *float64     `json:"reflective"`
	Transparency    *float64     `json:"transparency"`
	RefractiveIndex *float64     `json:"refractive_index"`
}

type patternFile struct {
	Kind       string          `json:"kind"`
	A          [3]float64      `json:"a"`
	B          [3]float64      `json:"b"`
	Transforms []transformFile `json:"transforms"`
}

// LoadScene reads a scene description from a JSON file and constructs the
// world and camera. Any non-invertible transform in the file fails the
// load; nothing renders from a half-built scene.
func LoadScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	var file sceneFile
	if err := json.NewDecoder(f).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return buildScene(&file)
}

func buildScene(file *sceneFile) (*Scene, error) {
	if file.Camera.Width <= 0 || file.Camera.Height <= 0 {
		return nil, fmt.Errorf("camera: size %dx%d is not positive", file.Camera.Width, file.Camera.Height)
	}
	if file.Camera.FieldOfView <= 0 {
		return nil, fmt.Errorf("camera: field of view must be positive")
	}

	camera := renderer.NewCamera(file.Camera.Width, file.Camera.Height, file.Camera.FieldOfView)
	view := core.ViewTransform(
		point(file.Camera.From),
		point(file.Camera.To),
		vector(file.Camera.Up),
	)
	if err := camera.SetTransform(view); err != nil {
		return nil, fmt.Errorf("camera transform: %w", err)
	}

	w := world.New()
	for _, lf := range file.Lights {
		w.AddLight(lights.NewPointLight(point(lf.Position), color(lf.Intensity)))
	}
	if len(w.Lights) == 0 {
		return nil, fmt.Errorf("scene has no lights")
	}

	for i, sf := range file.Shapes {
		shape, err := buildShape(&sf)
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, sf.Kind, err)
		}
		w.AddShape(shape)
	}

	maxDepth := world.DefaultMaxDepth
	if file.MaxDepth != nil {
		maxDepth = *file.MaxDepth
	}

	return &Scene{World: w, Camera: camera, MaxDepth: maxDepth}, nil
}

func buildShape(sf *shapeFile) (geometry.Shape, error) {
	var shape geometry.Shape
	switch sf.Kind {
	case "sphere":
		shape = geometry.NewSphere()
	case "plane":
		shape = geometry.NewPlane()
	case "cube":
		shape = geometry.NewCube()
	case "cylinder":
		c := geometry.NewCylinder()
		if sf.Minimum != nil {
			c.Minimum = *sf.Minimum
		}
		if sf.Maximum != nil {
			c.Maximum = *sf.Maximum
		}
		c.Closed = sf.Closed
		shape = c
	case "cone":
		c := geometry.NewCone()
		if sf.Minimum != nil {
			c.Minimum = *sf.Minimum
		}
		if sf.Maximum != nil {
			c.Maximum = *sf.Maximum
		}
		c.Closed = sf.Closed
		shape = c
	default:
		return nil, fmt.Errorf("unknown shape kind %q", sf.Kind)
	}

	transform, err := composeTransforms(sf.Transforms)
	if err != nil {
		return nil, err
	}
	if err := shape.SetTransform(transform); err != nil {
		return nil, err
	}

	if sf.Material != nil {
		mat, err := buildMaterial(sf.Material)
		if err != nil {
			return nil, err
		}
		shape.SetMaterial(mat)
	}
	return shape, nil
}

func buildMaterial(mf *materialFile) (material.Material, error) {
	mat := material.DefaultMaterial()
	if mf.Color != nil {
		mat.Color = color(*mf.Color)
	}
	if mf.Ambient != nil {
		mat.Ambient = *mf.Ambient
	}
	if mf.Diffuse != nil {
		mat.Diffuse = *mf.Diffuse
	}
	if mf.Specular != nil {
		mat.Specular = *mf.Specular
	}
	if mf.Shininess != nil {
		mat.Shininess = *mf.Shininess
	}
	if mf.Reflective != nil {
		mat.Reflective = *mf.Reflective
	}
	if mf.Transparency != nil {
		mat.Transparency = *mf.Transparency
	}
	if mf.RefractiveIndex != nil {
		mat.RefractiveIndex = *mf.RefractiveIndex
	}

	if mf.Pattern != nil {
		pattern, err := buildPattern(mf.Pattern)
		if err != nil {
			return mat, err
		}
		mat.Pattern = pattern
	}
	return mat, nil
}

func buildPattern(pf *patternFile) (*material.Pattern, error) {
	a, b := color(pf.A), color(pf.B)

	var pattern *material.Pattern
	switch pf.Kind {
	case "stripe":
		pattern = material.NewStripePattern(a, b)
	case "gradient":
		pattern = material.NewGradientPattern(a, b)
	case "ring":
		pattern = material.NewRingPattern(a, b)
	case "checker":
		pattern = material.NewCheckerPattern(a, b)
	default:
		return nil, fmt.Errorf("unknown pattern kind %q", pf.Kind)
	}

	transform, err := composeTransforms(pf.Transforms)
	if err != nil {
		return nil, err
	}
	if err := pattern.SetTransform(transform); err != nil {
		return nil, err
	}
	return pattern, nil
}

// composeTransforms builds a single matrix from a list of operations.
// Operations apply to the shape in the order listed, so each new matrix
// multiplies from the left.
func composeTransforms(ops []transformFile) (core.Matrix, error) {
	result := core.IdentityMatrix()
	for _, op := range ops {
		m, err := transformOp(op)
		if err != nil {
			return core.Matrix{}, err
		}
		result = m.Multiply(result)
	}
	return result, nil
}

func transformOp(op transformFile) (core.Matrix, error) {
	need := func(n int) error {
		if len(op.Args) != n {
			return fmt.Errorf("transform %q needs %d args, got %d", op.Op, n, len(op.Args))
		}
		return nil
	}

	switch op.Op {
	case "translate":
		if err := need(3); err != nil {
			return core.Matrix{}, err
		}
		return core.Translation(op.Args[0], op.Args[1], op.Args[2]), nil
	case "scale":
		if err := need(3); err != nil {
			return core.Matrix{}, err
		}
		return core.Scaling(op.Args[0], op.Args[1], op.Args[2]), nil
	case "rotate_x":
		if err := need(1); err != nil {
			return core.Matrix{}, err
		}
		return core.RotationX(op.Args[0]), nil
	case "rotate_y":
		if err := need(1); err != nil {
			return core.Matrix{}, err
		}
		return core.RotationY(op.Args[0]), nil
	case "rotate_z":
		if err := need(1); err != nil {
			return core.Matrix{}, err
		}
		return core.RotationZ(op.Args[0]), nil
	case "shear":
		if err := need(6); err != nil {
			return core.Matrix{}, err
		}
		return core.Shearing(op.Args[0], op.Args[1], op.Args[2], op.Args[3], op.Args[4], op.Args[5]), nil
	default:
		return core.Matrix{}, fmt.Errorf("unknown transform op %q", op.Op)
	}
}

func point(v [3]float64) core.Tuple {
	return core.NewPoint(v[0], v[1], v[2])
}

func vector(v [3]float64) core.Tuple {
	return core.NewVector(v[0], v[1], v[2])
}

func color(v [3]float64) core.Color {
	return core.NewColor(v[0], v[1], v[2])
}
