package sdl

import (
	"fmt"

	"uk.ac.bris.cs/lifestep/gol"
	"uk.ac.bris.cs/lifestep/util"
)

// Run drains events until the channel is closed and renders the final board
// carried by FinalTurnComplete.
func Run(w *Window, events <-chan gol.Event) error {
	var final *gol.FinalTurnComplete
	for event := range events {
		if e, ok := event.(gol.FinalTurnComplete); ok {
			final = &e
		}
	}
	if final == nil {
		return nil
	}
	for _, c := range final.Alive {
		if !w.contains(c) {
			return fmt.Errorf("cell %v outside %dx%d window", c, w.Width, w.Height)
		}
	}
	w.ClearPixels()
	for _, c := range final.Alive {
		w.SetAlive(c)
	}
	return w.RenderFrame()
}

func (w *Window) contains(c util.Cell) bool {
	return c.X >= 0 && c.Y >= 0 && int32(c.X) < w.Width && int32(c.Y) < w.Height
}
