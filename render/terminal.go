package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-pretty/array"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// Terminal draws each cell as a coloured block pair
type Terminal struct {
	w      io.Writer
	out    *termenv.Output
	colors map[string]termenv.Color
}

// NewTerminal renders to w; opts select the colour profile
func NewTerminal(w io.Writer, opts ...termenv.OutputOption) *Terminal {
	return &Terminal{
		w:      w,
		out:    termenv.NewOutput(w, opts...),
		colors: make(map[string]termenv.Color),
	}
}

// Draw clears the screen and renders the frame
func (t *Terminal) Draw(frame int, v *array.Volume) error {
	t.out.ClearScreen()

	rows, cols, _ := v.Dims()
	img := ToRGBA(v)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Frame: %d | Grid: %dx%d\n", frame, cols, rows)
	for y := range rows {
		for x := range cols {
			px := img.RGBAAt(x, y)
			if px.R == 0 && px.G == 0 && px.B == 0 {
				sb.WriteString(gridPosEmpty)
				continue
			}
			c, _ := colorful.MakeColor(px)
			sb.WriteString(t.out.String(gridPosBlock).Foreground(t.color(c.Hex())).String())
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(t.w, sb.String()); err != nil {
		return errors.Wrapf(err, "[Terminal.Draw] failed to write frame %d", frame)
	}
	return nil
}

func (t *Terminal) color(hex string) termenv.Color {
	c, ok := t.colors[hex]
	if !ok {
		c = t.out.Color(hex)
		t.colors[hex] = c
	}
	return c
}

// Close resets the terminal colours
func (t *Terminal) Close() error {
	t.out.Reset()
	return nil
}
