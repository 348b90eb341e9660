package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/colorsim/parameter"
	"github.com/lixenwraith/colorsim/population"
)

// Stepper is the engine surface the event loop drives
type Stepper interface {
	AdvanceGeneration()
	State() population.State
}

// Run drives the dashboard until quit or ctx cancellation
// The dashboard must already be registered as an observer of engine.
// On return the poller is woken with an interrupt event and exits; the
// caller still owns the screen and must Fini it
func (d *Dashboard) Run(ctx context.Context, engine Stepper) error {
	if len(d.history) == 0 {
		d.Update(engine.State())
	}

	frame := time.NewTicker(parameter.FrameUpdateInterval)
	defer frame.Stop()
	autoplay := time.NewTicker(parameter.AutoplayInterval)
	defer autoplay.Stop()

	done := make(chan struct{})
	defer func() {
		close(done)
		d.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	eventChan := make(chan tcell.Event, parameter.EventBufferSize)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case <-done:
				return
			default:
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	d.Draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			switch d.HandleEvent(ev) {
			case ActionQuit:
				return nil
			case ActionAdvance:
				engine.AdvanceGeneration()
			}
			d.Draw()

		case <-autoplay.C:
			if d.autoplay && !d.Finished() {
				engine.AdvanceGeneration()
			}

		case <-frame.C:
			d.Draw()
		}
	}
}
