// Package gui runs the lander input layer in a raylib window.
//
// raylib reports mouse presses as a touch point on desktop, so the window
// accepts the same touch gestures as a phone.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/lander/internal/input"
	"github.com/san-kum/lander/internal/logger"
	"github.com/san-kum/lander/internal/poll"
	"github.com/san-kum/lander/internal/render"
	"github.com/san-kum/lander/internal/throttle"
	"github.com/san-kum/lander/internal/world"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColIdle    = rl.NewColor(60, 60, 60, 255)
	ColActive  = rl.NewColor(255, 200, 40, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColRegion  = rl.NewColor(30, 30, 30, 255)
)

// keyCodes binds the polled key names to raylib keys.
var keyCodes = map[string]int32{
	input.KeyArrowUp:    rl.KeyUp,
	input.KeyArrowDown:  rl.KeyDown,
	input.KeyArrowLeft:  rl.KeyLeft,
	input.KeyArrowRight: rl.KeyRight,
	"w":                 rl.KeyW,
	"a":                 rl.KeyA,
	"d":                 rl.KeyD,
}

type Options struct {
	Width, Height int
	Title         string
	FPS           int
	Input         input.Options
	Log           logger.Logger
	Observers     []input.Observer
}

type windowCanvas struct{}

// Resize is a no-op: raylib resizes the framebuffer with the window.
func (windowCanvas) Resize(width, height int) {}

// Run opens the window and blocks until it is closed.
func Run(panel *world.Panel, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("gui: invalid window size %dx%d", opts.Width, opts.Height)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(rl.KeyEscape)

	layout := opts.Input.Layout
	panel.SetDraw(func(s world.Snapshot) { draw(s, layout) })

	loop := poll.New(panel, render.Canvas(windowCanvas{}), poll.Config{
		Input:     opts.Input,
		Log:       opts.Log,
		Observers: opts.Observers,
	})
	if opts.Log != nil {
		opts.Log.Info("world ready", logger.F("host", "gui"), logger.F("policy", loop.Policy()))
	}

	for !rl.WindowShouldClose() {
		loop.Input(sample())
		rl.BeginDrawing()
		loop.Frame()
		rl.EndDrawing()
	}
	return nil
}

func sample() poll.Sample {
	s := poll.Sample{
		Width:  rl.GetScreenWidth(),
		Height: rl.GetScreenHeight(),
	}
	for _, name := range poll.Keys {
		key := keyCodes[name]
		if rl.IsKeyPressed(key) {
			s.Pressed = append(s.Pressed, name)
		}
		if rl.IsKeyReleased(key) {
			s.Released = append(s.Released, name)
		}
	}
	n := rl.GetTouchPointCount()
	for i := int32(0); i < n; i++ {
		pos := rl.GetTouchPosition(i)
		s.Touches = append(s.Touches, input.TouchPoint{
			ID: int(rl.GetTouchPointId(i)),
			X:  float64(pos.X),
			Y:  float64(pos.Y),
		})
	}
	return s
}

func draw(s world.Snapshot, layout input.Layout) {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	rl.ClearBackground(ColBg)

	band := int32(float64(h) * layout.BottomBand)
	split := int32(float64(w) * layout.SplitX)
	rl.DrawLine(0, band, w, band, ColRegion)
	rl.DrawLine(split, band, split, h, ColRegion)

	engine := func(t throttle.Throttle, x, y int32, label string) {
		col := ColIdle
		if s.Held.Has(t) {
			col = ColActive
		}
		rl.DrawRectangle(x-40, y-20, 80, 40, col)
		rl.DrawText(label, x-rl.MeasureText(label, 20)/2, y+28, 20, ColText)
	}
	engine(throttle.Bottom, w/2, band/2, "bottom")
	engine(throttle.Left, split/2, band+(h-band)/2, "left")
	engine(throttle.Right, split+(w-split)/2, band+(h-band)/2, "right")

	rl.DrawText(fmt.Sprintf("frame %d  held %s", s.Frames, s.Held), 10, h-24, 16, ColTextDim)
}
