package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fogleman/gg"

	"github.com/rgv/go-whitted-raytracer/pkg/core"
)

// maxPPMLineWidth is the longest line the PPM spec allows.
const maxPPMLineWidth = 70

// Canvas is a row-major grid of unclamped colors, one per pixel. Clamping
// and quantization happen only when the canvas is serialized.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a black canvas of the given size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// WritePixel stores a color at (x, y)
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	c.pixels[y*c.Width+x] = color
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// WritePPM serializes the canvas as a plain-text PPM (P3) image with a
// maximum component value of 255. Components are clamped to [0,1] and
// scaled; lines stay under 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	var line strings.Builder
	flush := func() error {
		if line.Len() == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, line.String())
		line.Reset()
		return err
	}

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			clamped := c.PixelAt(x, y).Clamp()
			for _, component := range []float64{clamped.R, clamped.G, clamped.B} {
				value := fmt.Sprintf("%d", int(component*255+0.5))
				if line.Len()+1+len(value) > maxPPMLineWidth {
					if err := flush(); err != nil {
						return err
					}
				}
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(value)
			}
		}
		if err := flush(); err != nil {
			return err
		}
	}
	return flush()
}

// SavePNG writes the canvas to a PNG file
func (c *Canvas) SavePNG(path string) error {
	ctx := gg.NewContext(c.Width, c.Height)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			clamped := c.PixelAt(x, y).Clamp()
			ctx.SetRGB(clamped.R, clamped.G, clamped.B)
			ctx.SetPixel(x, y)
		}
	}
	return ctx.SavePNG(path)
}
