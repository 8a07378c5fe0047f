// Package tui runs the lander input layer in a terminal.
//
// Arrow keys and left mouse clicks are the inputs; a click is a one-finger
// touch at the clicked cell and the terminal size is the viewport.
// Terminals report key presses but not releases, so a key counts as held
// until no repeat arrives for the configured hold time.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/lander/internal/input"
	"github.com/san-kum/lander/internal/logger"
	"github.com/san-kum/lander/internal/render"
	"github.com/san-kum/lander/internal/world"
)

type TickMsg time.Time

type Options struct {
	FPS     int
	KeyHold time.Duration
	Input   input.Options
	Log     logger.Logger
	// Observers receive every command the mapper emits.
	Observers []input.Observer
}

// Host is the bubbletea model wiring terminal events to the mapper and
// frame ticks to the render driver.
type Host struct {
	panel  *world.Panel
	mapper *input.Mapper
	driver *render.Driver
	canvas render.Size
	log    logger.Logger

	width, height int
	frameEvery    time.Duration
	hold          time.Duration
	held          map[string]time.Time
	now           func() time.Time

	last  world.Snapshot
	mouse *input.TouchPoint
}

func NewHost(panel *world.Panel, opts Options) *Host {
	if opts.Log == nil {
		opts.Log = logger.NewNop()
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	h := &Host{
		panel:      panel,
		log:        opts.Log,
		width:      80,
		height:     24,
		frameEvery: time.Second / time.Duration(opts.FPS),
		hold:       opts.KeyHold,
		held:       make(map[string]time.Time),
		now:        time.Now,
	}
	h.mapper = input.NewMapper(world.Logged(panel, opts.Log),
		input.WithOptions(opts.Input),
		input.WithViewport(h.viewport),
		input.WithLogger(opts.Log),
	)
	for _, o := range opts.Observers {
		h.mapper.AddObserver(o)
	}
	panel.SetDraw(func(s world.Snapshot) { h.last = s })
	h.driver = render.NewDriver(panel, &h.canvas, func() (int, int) { return h.width, h.height })
	return h
}

func (h *Host) viewport() input.Viewport {
	return input.Viewport{Width: float64(h.width), Height: float64(h.height)}
}

func (h *Host) tick() tea.Cmd {
	return tea.Tick(h.frameEvery, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (h *Host) Init() tea.Cmd {
	h.log.Info("world ready", logger.F("policy", h.mapper.Policy()))
	return h.tick()
}

func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			return h, tea.Quit
		}
		h.keyDown(keyName(msg))
	case tea.MouseMsg:
		h.mouseEvent(msg)
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
	case TickMsg:
		h.releaseExpired(time.Time(msg))
		h.driver.Frame()
		return h, h.tick()
	}
	return h, nil
}

// keyDown presses on the first event for a key and extends the hold on
// repeats.
func (h *Host) keyDown(name string) {
	if _, held := h.held[name]; !held {
		if h.mapper.Press(input.KeyEvent{Key: name}) == 0 {
			return
		}
	}
	h.held[name] = h.now().Add(h.hold)
}

func (h *Host) releaseExpired(now time.Time) {
	for name, deadline := range h.held {
		if now.Before(deadline) {
			continue
		}
		delete(h.held, name)
		h.mapper.Release(input.KeyEvent{Key: name})
	}
}

func (h *Host) mouseEvent(msg tea.MouseMsg) {
	p := input.TouchPoint{X: float64(msg.X), Y: float64(msg.Y)}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || h.mouse != nil {
			return
		}
		h.mouse = &p
		h.mapper.Press(input.TouchEvent{Changed: []input.TouchPoint{p}})
	case tea.MouseActionRelease:
		if h.mouse == nil {
			return
		}
		h.mouse = nil
		h.mapper.Release(input.TouchEvent{Changed: []input.TouchPoint{p}})
	}
}

// Run starts the terminal host and blocks until the user quits.
func Run(panel *world.Panel, opts Options) error {
	p := tea.NewProgram(NewHost(panel, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
