//go:build !sdl

package sdl

import (
	"errors"

	"uk.ac.bris.cs/lifestep/util"
)

// Window is unavailable without the sdl build tag.
type Window struct {
	Width, Height int32
}

func NewWindow(width, height, scale int32) (*Window, error) {
	return nil, errors.New("SDL support is not enabled; rebuild with -tags sdl")
}

func (w *Window) ClearPixels() {}

func (w *Window) SetAlive(util.Cell) {}

func (w *Window) RenderFrame() error { return errors.New("SDL window unavailable") }

func (w *Window) WaitForQuit() {}

func (w *Window) Destroy() {}
