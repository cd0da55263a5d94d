// Package window animates a simulation in an ebiten window.
package window

import (
	"context"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-pretty/array"
	"github.com/sheikhrachel/gol-pretty/render"
	"github.com/sheikhrachel/gol-pretty/utils"
)

// Source is the simulation a Window animates
type Source interface {
	Display() *array.Volume
	Advance(ctx context.Context) error
	Done() bool
}

// Window is an ebiten.Game that draws the source's display scaled up, and
// advances the source once per tick after its display has been shown
type Window struct {
	ctx     context.Context
	src     Source
	width   int
	height  int
	scale   int
	texture *ebiten.Image
	shown   bool
}

// Run opens a window sized for config and animates src in it at the configured
// rate until src is done, the window is closed or ctx is cancelled.
// It must be called from the main goroutine.
func Run(ctx context.Context, src Source, config utils.Config) error {
	ebiten.SetWindowSize(config.Width*config.Scale, config.Height*config.Scale)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetTPS(max(1, int(math.Round(config.FPS))))

	win := New(ctx, src, config.Width, config.Height, config.Scale)
	if err := ebiten.RunGame(win); err != nil {
		return errors.Wrap(err, "[window.Run] window closed with error")
	}
	return ctx.Err()
}

// New animates a width x height source at scale screen pixels per cell.
// Cancelling ctx closes the window.
func New(ctx context.Context, src Source, width, height, scale int) *Window {
	return &Window{
		ctx:    ctx,
		src:    src,
		width:  width,
		height: height,
		scale:  scale,
	}
}

func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	if w.shown {
		if err := w.src.Advance(w.ctx); err != nil {
			return err
		}
		w.shown = false
	}
	if w.src.Done() {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.texture == nil {
		w.texture = ebiten.NewImage(w.width, w.height)
	}
	if pix, ok := w.nextPixels(); ok {
		w.texture.WritePixels(pix)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.texture, op)
}

// nextPixels returns the source's display once per advance, marking it shown
func (w *Window) nextPixels() ([]byte, bool) {
	if w.shown {
		return nil, false
	}
	w.shown = true
	return render.ToRGBA(w.src.Display()).Pix, true
}

func (w *Window) Layout(_, _ int) (int, int) {
	return w.width * w.scale, w.height * w.scale
}
