package input

import (
	"github.com/san-kum/lander/internal/logger"
	"github.com/san-kum/lander/internal/throttle"
	"github.com/san-kum/lander/internal/world"
)

// Command is a throttle press or release sent to the world.
type Command struct {
	Throttle throttle.Throttle
	Pressed  bool
}

// Observer is notified of every command after it reaches the world.
type Observer interface {
	OnCommand(Command)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Command)

func (f ObserverFunc) OnCommand(c Command) { f(c) }

// Mapper forwards mapped input to a world. It is meant to be driven from a
// single event loop and holds no locks.
type Mapper struct {
	world     world.Controller
	opts      Options
	viewport  func() Viewport
	log       logger.Logger
	observers []Observer
}

type MapperOption func(*Mapper)

func WithOptions(opts Options) MapperOption {
	return func(m *Mapper) { m.opts = opts }
}

func WithPolicy(p Policy) MapperOption {
	return func(m *Mapper) { m.opts.Policy = p }
}

// WithViewport sets the source of the current viewport size.
func WithViewport(fn func() Viewport) MapperOption {
	return func(m *Mapper) { m.viewport = fn }
}

func WithLogger(l logger.Logger) MapperOption {
	return func(m *Mapper) { m.log = l }
}

func NewMapper(w world.Controller, opts ...MapperOption) *Mapper {
	m := &Mapper{
		world:    w,
		opts:     DefaultOptions(),
		viewport: func() Viewport { return Viewport{} },
		log:      logger.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Mapper) AddObserver(o Observer) { m.observers = append(m.observers, o) }

func (m *Mapper) Policy() Policy { return m.opts.Policy }

// Press handles key-down and touch-start.
func (m *Mapper) Press(ev Event) int { return m.Handle(ev, true) }

// Release handles key-up and touch-end.
func (m *Mapper) Release(ev Event) int { return m.Handle(ev, false) }

// Handle maps ev and calls world.Control once per affected throttle before
// returning. It reports how many commands were emitted.
func (m *Mapper) Handle(ev Event, pressed bool) int {
	vp := m.viewport()
	if tev, ok := ev.(TouchEvent); ok {
		m.logTouches(tev, vp, pressed)
	}
	throttles, err := Map(ev, vp, m.opts)
	if err != nil {
		m.log.Warn("input dropped", logger.F("error", err))
		return 0
	}
	for _, t := range throttles {
		m.world.Control(t, pressed)
		c := Command{Throttle: t, Pressed: pressed}
		for _, o := range m.observers {
			o.OnCommand(c)
		}
	}
	return len(throttles)
}

func (m *Mapper) logTouches(ev TouchEvent, vp Viewport, pressed bool) {
	for _, p := range ev.Changed {
		x, y, err := vp.Normalize(p)
		if err != nil {
			return
		}
		m.log.Debug("touch",
			logger.F("id", p.ID),
			logger.F("x", x),
			logger.F("y", y),
			logger.F("pressed", pressed),
		)
	}
}
