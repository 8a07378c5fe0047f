package input

import (
	"fmt"

	"github.com/san-kum/lander/internal/throttle"
)

// Options configures the pure mapping.
type Options struct {
	Keymap Keymap
	Layout Layout
	Policy Policy
}

func DefaultOptions() Options {
	return Options{Keymap: DefaultKeymap(), Layout: DefaultLayout(), Policy: MultiTouch}
}

// Map returns the throttles affected by ev, in processing order. A key event
// yields at most one throttle; a touch event yields one per changed point
// under MultiTouch and at most one under SingleTouch. The viewport is only
// consulted for touches.
func Map(ev Event, vp Viewport, opts Options) ([]throttle.Throttle, error) {
	switch ev := ev.(type) {
	case KeyEvent:
		if t, ok := MapKey(opts.Keymap, ev.Key); ok {
			return []throttle.Throttle{t}, nil
		}
		return nil, nil
	case TouchEvent:
		if opts.Policy == SingleTouch && len(ev.Changed) != 1 {
			return nil, nil
		}
		out := make([]throttle.Throttle, 0, len(ev.Changed))
		for _, p := range ev.Changed {
			t, err := MapTouch(opts.Layout, vp, p)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
		return out, nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("input: unsupported event %T", ev)
}
