// Package poll adapts hosts that sample input once per frame (raylib,
// ebiten) to the event-driven mapper.
//
// A host fills a [Sample] with the keys that went down or up since the last
// frame and the touches active right now. [Loop.Input] turns the sample into
// press and release events; [Loop.Frame] runs the render driver.
package poll

import (
	"github.com/san-kum/lander/internal/input"
	"github.com/san-kum/lander/internal/logger"
	"github.com/san-kum/lander/internal/render"
	"github.com/san-kum/lander/internal/world"
)

// Keys lists the key names hosts poll each frame, in the order their
// changes are reported within one sample.
var Keys = []string{
	input.KeyArrowUp,
	input.KeyArrowDown,
	input.KeyArrowLeft,
	input.KeyArrowRight,
	"w",
	"a",
	"d",
}

// Sample is the input observed by a host during one frame.
type Sample struct {
	Pressed  []string
	Released []string
	Touches  []input.TouchPoint
	Width    int
	Height   int
}

type Loop struct {
	mapper  *input.Mapper
	tracker *input.TouchTracker
	driver  *render.Driver
	width   int
	height  int
}

type Config struct {
	Input     input.Options
	Log       logger.Logger
	Observers []input.Observer
}

// New wires w and canvas into a loop. The viewport is the size reported by
// the latest sample.
func New(w world.World, canvas render.Canvas, cfg Config) *Loop {
	if cfg.Log == nil {
		cfg.Log = logger.NewNop()
	}
	l := &Loop{tracker: input.NewTouchTracker()}
	l.mapper = input.NewMapper(world.Logged(w, cfg.Log),
		input.WithOptions(cfg.Input),
		input.WithLogger(cfg.Log),
		input.WithViewport(func() input.Viewport {
			return input.Viewport{Width: float64(l.width), Height: float64(l.height)}
		}),
	)
	for _, o := range cfg.Observers {
		l.mapper.AddObserver(o)
	}
	l.driver = render.NewDriver(w, canvas, func() (int, int) { return l.width, l.height })
	return l
}

// Input applies one frame of sampled input: key presses, key releases,
// touch starts, then touch ends.
func (l *Loop) Input(s Sample) {
	l.width, l.height = s.Width, s.Height

	for _, k := range s.Pressed {
		l.mapper.Press(input.KeyEvent{Key: k})
	}
	for _, k := range s.Released {
		l.mapper.Release(input.KeyEvent{Key: k})
	}

	started, ended := l.tracker.Update(s.Touches)
	if len(started) > 0 {
		l.mapper.Press(input.TouchEvent{Changed: started})
	}
	if len(ended) > 0 {
		l.mapper.Release(input.TouchEvent{Changed: ended})
	}
}

func (l *Loop) Frame() { l.driver.Frame() }

func (l *Loop) Frames() uint64 { return l.driver.Frames() }

func (l *Loop) Policy() input.Policy { return l.mapper.Policy() }
