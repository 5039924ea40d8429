package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rgv/go-whitted-raytracer/pkg/renderer"
	"github.com/rgv/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Built-in scene: "+strings.Join(scene.Names(), ", "))
	sceneFile := flag.String("file", "", "Load a JSON scene file instead of a built-in scene")
	width := flag.Int("width", 800, "Image width in pixels (ignored with -file; the JSON camera sets the size)")
	height := flag.Int("height", 600, "Image height in pixels (ignored with -file; the JSON camera sets the size)")
	depth := flag.Int("depth", 0, "Reflection/refraction recursion depth (0 uses the scene's value)")
	out := flag.String("out", "render.ppm", "Output file path")
	format := flag.String("format", "", "Output format: 'ppm' or 'png' (default inferred from -out extension)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Checkered floor, striped wall and three spheres")
		fmt.Println("  glass   - Glass sphere with an air bubble over a checkered floor")
		fmt.Println("  shapes  - Cube, capped cylinder and cone on a ring-patterned floor")
		return
	}

	if err := run(*sceneName, *sceneFile, *width, *height, *depth, *out, *format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneName, sceneFile string, width, height, depth int, out, format string) error {
	var s *scene.Scene
	var err error
	if sceneFile != "" {
		s, err = scene.LoadScene(sceneFile)
	} else {
		s, err = scene.ByName(sceneName, width, height)
	}
	if err != nil {
		return err
	}
	if depth > 0 {
		s.MaxDepth = depth
	}

	if format == "" {
		switch {
		case strings.HasSuffix(out, ".png"):
			format = "png"
		default:
			format = "ppm"
		}
	}
	if format != "ppm" && format != "png" {
		return fmt.Errorf("unknown output format %q (use 'ppm' or 'png')", format)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	r := renderer.NewRenderer(s.Camera, s.World,
		renderer.WithMaxDepth(s.MaxDepth),
		renderer.WithLogger(logger),
	)

	fmt.Printf("Rendering %dx%d at depth %d...\n", s.Camera.HSize, s.Camera.VSize, s.MaxDepth)
	canvas, stats := r.Render()
	fmt.Printf("Rendered %d pixels in %v\n", stats.Pixels, stats.Duration)

	if format == "png" {
		if err := canvas.SavePNG(out); err != nil {
			return fmt.Errorf("save PNG: %w", err)
		}
	} else {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		if err := canvas.WritePPM(f); err != nil {
			return fmt.Errorf("write PPM: %w", err)
		}
	}

	fmt.Printf("Render saved as %s\n", out)
	return nil
}
