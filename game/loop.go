package game

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-pretty/render"
	"github.com/sheikhrachel/gol-pretty/utils"
)

// Run draws and advances sim until its frame budget is spent or ctx is
// cancelled, pacing each iteration with pacer
func Run(ctx context.Context, sim *Simulation, renderer render.Renderer, pacer *utils.Pacer) error {
	for !sim.Done() {
		pacer.Start()

		if err := renderer.Draw(sim.Frame(), sim.Display()); err != nil {
			return errors.Wrap(err, "[Run] draw failed")
		}
		if err := sim.Advance(ctx); err != nil {
			return errors.Wrap(err, "[Run] advance failed")
		}

		if err := pacer.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}
