package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/sheikhrachel/gol-pretty/array"
)

// PNG writes every frame to dir as frame_NNNNN.png, each cell scaled to a
// scale x scale block
type PNG struct {
	dir   string
	scale int
}

// NewPNG creates dir if needed
func NewPNG(dir string, scale int) (*PNG, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "[NewPNG] failed to create output dir: %+v", dir)
	}
	return &PNG{dir: dir, scale: scale}, nil
}

// FramePath returns the file a frame is written to
func (p *PNG) FramePath(frame int) string {
	return filepath.Join(p.dir, fmt.Sprintf("frame_%05d.png", frame))
}

func (p *PNG) Draw(frame int, v *array.Volume) error {
	src := ToRGBA(v)
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*p.scale, b.Dy()*p.scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	f, err := os.Create(p.FramePath(frame))
	if err != nil {
		return errors.Wrapf(err, "[PNG.Draw] failed to create frame %d", frame)
	}
	if err = png.Encode(f, dst); err != nil {
		f.Close()
		return errors.Wrapf(err, "[PNG.Draw] failed to encode frame %d", frame)
	}
	return errors.Wrapf(f.Close(), "[PNG.Draw] failed to close frame %d", frame)
}

func (p *PNG) Close() error { return nil }
