// Package render drives the per-frame resize and redraw of a world.
//
// A [Driver] frame resizes the canvas to the current viewport and then asks
// the world to redraw. [Driver.Run] repeats frames for as long as a
// [FrameSource] keeps producing ticks and the context is live.
//
// Panics raised by the world are not recovered; they end Run.
package render

import (
	"context"
	"errors"

	"github.com/san-kum/lander/internal/world"
)

// Canvas is the drawing surface whose buffer follows the viewport.
type Canvas interface {
	Resize(width, height int)
}

// CanvasFunc adapts a function to Canvas.
type CanvasFunc func(width, height int)

func (f CanvasFunc) Resize(width, height int) { f(width, height) }

// Size is a canvas that only remembers its dimensions.
type Size struct {
	Width, Height int
}

func (s *Size) Resize(width, height int) { s.Width, s.Height = width, height }

// Driver resizes the canvas and redraws the world once per frame.
type Driver struct {
	world    world.World
	canvas   Canvas
	viewport func() (int, int)
	frames   uint64
}

// NewDriver binds a world to a canvas. viewport reports the current inner
// size of the host window.
func NewDriver(w world.World, canvas Canvas, viewport func() (int, int)) *Driver {
	return &Driver{world: w, canvas: canvas, viewport: viewport}
}

// Frame runs one frame.
func (d *Driver) Frame() {
	width, height := d.viewport()
	d.canvas.Resize(width, height)
	d.frames++
	d.world.Redraw()
}

// Frames counts frames started, including one whose redraw panicked.
func (d *Driver) Frames() uint64 { return d.frames }

// Run calls Frame on every tick of src until src reports ErrStopped or ctx
// is canceled. A stopped source ends Run with a nil error.
func (d *Driver) Run(ctx context.Context, src FrameSource) error {
	for {
		if err := src.Next(ctx); err != nil {
			if errors.Is(err, ErrStopped) {
				return nil
			}
			return err
		}
		d.Frame()
	}
}
