// Package web runs the lander input layer on ebiten. Built for js/wasm it
// fills the page canvas and takes touch input from the browser; on desktop
// it opens a resizable window.
package web

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/lander/internal/input"
	"github.com/san-kum/lander/internal/logger"
	"github.com/san-kum/lander/internal/poll"
	"github.com/san-kum/lander/internal/throttle"
	"github.com/san-kum/lander/internal/world"
)

var (
	colBg     = color.RGBA{10, 10, 10, 255}
	colIdle   = color.RGBA{60, 60, 60, 255}
	colActive = color.RGBA{255, 200, 40, 255}
	colRegion = color.RGBA{30, 30, 30, 255}
)

var keyCodes = map[string]ebiten.Key{
	input.KeyArrowUp:    ebiten.KeyArrowUp,
	input.KeyArrowDown:  ebiten.KeyArrowDown,
	input.KeyArrowLeft:  ebiten.KeyArrowLeft,
	input.KeyArrowRight: ebiten.KeyArrowRight,
	"w":                 ebiten.KeyW,
	"a":                 ebiten.KeyA,
	"d":                 ebiten.KeyD,
}

type Options struct {
	Width, Height int
	Title         string
	Input         input.Options
	Log           logger.Logger
	Observers     []input.Observer
}

// game implements ebiten.Game. Layout reports the outside size back, so
// the screen image always matches the viewport.
type game struct {
	loop   *poll.Loop
	layout input.Layout
	width  int
	height int
	screen *ebiten.Image
	touch  []ebiten.TouchID
}

type screenCanvas struct{ g *game }

func (c screenCanvas) Resize(width, height int) {
	c.g.width, c.g.height = width, height
}

func (g *game) Update() error {
	s := poll.Sample{Width: g.width, Height: g.height}
	for _, name := range poll.Keys {
		key := keyCodes[name]
		if inpututil.IsKeyJustPressed(key) {
			s.Pressed = append(s.Pressed, name)
		}
		if inpututil.IsKeyJustReleased(key) {
			s.Released = append(s.Released, name)
		}
	}
	g.touch = ebiten.AppendTouchIDs(g.touch[:0])
	for _, id := range g.touch {
		x, y := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, input.TouchPoint{ID: int(id), X: float64(x), Y: float64(y)})
	}
	g.loop.Input(s)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.screen = screen
	g.loop.Frame()
	g.screen = nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *game) draw(s world.Snapshot) {
	screen := g.screen
	if screen == nil {
		return
	}
	screen.Fill(colBg)

	w, h := float32(g.width), float32(g.height)
	band := h * float32(g.layout.BottomBand)
	split := w * float32(g.layout.SplitX)
	vector.StrokeLine(screen, 0, band, w, band, 1, colRegion, false)
	vector.StrokeLine(screen, split, band, split, h, 1, colRegion, false)

	engine := func(t throttle.Throttle, x, y float32) {
		var col color.Color = colIdle
		if s.Held.Has(t) {
			col = colActive
		}
		vector.DrawFilledRect(screen, x-40, y-20, 80, 40, col, false)
	}
	engine(throttle.Bottom, w/2, band/2)
	engine(throttle.Left, split/2, band+(h-band)/2)
	engine(throttle.Right, split+(w-split)/2, band+(h-band)/2)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %d  held %s", s.Frames, s.Held))
}

// Run starts the ebiten loop and blocks until the window closes.
func Run(panel *world.Panel, opts Options) error {
	g := &game{layout: opts.Input.Layout, width: opts.Width, height: opts.Height}
	g.loop = poll.New(panel, screenCanvas{g: g}, poll.Config{
		Input:     opts.Input,
		Log:       opts.Log,
		Observers: opts.Observers,
	})
	panel.SetDraw(g.draw)

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if opts.Log != nil {
		opts.Log.Info("world ready", logger.F("host", "web"), logger.F("policy", g.loop.Policy()))
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("web: %w", err)
	}
	return nil
}
