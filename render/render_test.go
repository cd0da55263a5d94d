package render

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/sheikhrachel/gol-pretty/array"
)

// sample is a 1x4 display: yellow, red, green, blue
func sample(t *testing.T) *array.Volume {
	t.Helper()
	v, err := array.Planes(
		mat.NewDense(1, 4, []float64{1, 1, 0, 0}),
		mat.NewDense(1, 4, []float64{1, 0, 1, 0}),
		mat.NewDense(1, 4, []float64{0, 0, 0, 1}),
	)
	require.NoError(t, err)
	return v
}

func TestToRGBA(t *testing.T) {
	img := ToRGBA(sample(t))
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{R: 255, G: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(2, 0))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(3, 0))
}

func TestToRGBASingleChannelIsGrey(t *testing.T) {
	img := ToRGBA(array.Tile(mat.NewDense(1, 2, []float64{1, 2}), 1))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(0, 0))
	// Out of range values clamp.
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(1, 0))
}

func TestTerminalTrueColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminal(&buf, termenv.WithProfile(termenv.TrueColor))
	require.NoError(t, r.Draw(7, sample(t)))
	require.NoError(t, r.Close())

	out := buf.String()
	assert.Contains(t, out, "Frame: 7 | Grid: 4x1")
	assert.Contains(t, out, "38;2;255;255;0")
	assert.Contains(t, out, "38;2;255;0;0")
	assert.Contains(t, out, "38;2;0;255;0")
	assert.Contains(t, out, "38;2;0;0;255")
	assert.Len(t, r.colors, 4)
}

func TestTerminalAscii(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminal(&buf, termenv.WithProfile(termenv.Ascii))
	v := array.Tile(mat.NewDense(2, 2, []float64{1, 0, 0, 1}), 3)
	require.NoError(t, r.Draw(0, v))

	assert.Contains(t, buf.String(), gridPosBlock+gridPosEmpty+"\n"+gridPosEmpty+gridPosBlock+"\n")
}

func TestPNGWritesScaledFrames(t *testing.T) {
	dir := t.TempDir()
	r, err := NewPNG(dir, 3)
	require.NoError(t, err)
	require.NoError(t, r.Draw(12, sample(t)))
	require.NoError(t, r.Close())

	f, err := os.Open(r.FramePath(12))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, r.FramePath(12), "frame_00012.png")

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())

	cr, cg, cb, _ := img.At(10, 2).RGBA()
	assert.Equal(t, []uint32{0, 0, 0xFFFF}, []uint32{cr, cg, cb})
}

func TestDiscard(t *testing.T) {
	var r Renderer = Discard{}
	assert.NoError(t, r.Draw(0, sample(t)))
	assert.NoError(t, r.Close())
}
