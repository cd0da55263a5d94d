// Package render turns display volumes into pixels: a window, terminal
// blocks, or PNG files.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/sheikhrachel/gol-pretty/array"
)

// Renderer is a sink for display volumes
type Renderer interface {
	// Draw shows the display volume for the given frame
	Draw(frame int, v *array.Volume) error
	Close() error
}

// ToRGBA converts a display volume with channels in [0,1] to an image. A single
// channel is drawn as grey; channels past the third are ignored.
func ToRGBA(v *array.Volume) *image.RGBA {
	rows, cols, depth := v.Dims()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for y := range rows {
		for x := range cols {
			var rgb [3]uint8
			for k := range rgb {
				switch {
				case depth == 1:
					rgb[k] = toByte(v.At(y, x, 0))
				case k < depth:
					rgb[k] = toByte(v.At(y, x, k))
				}
			}
			img.SetRGBA(x, y, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF})
		}
	}
	return img
}

func toByte(f float64) uint8 {
	f = math.Max(0, math.Min(1, f))
	return uint8(math.Round(f * 0xFF))
}

// Discard drops every frame
type Discard struct{}

func (Discard) Draw(int, *array.Volume) error { return nil }

func (Discard) Close() error { return nil }
