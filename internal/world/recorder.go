package world

import (
	"fmt"
	"sync"

	"github.com/san-kum/lander/internal/throttle"
)

// Call is one recorded interaction with a world.
type Call struct {
	Redraw   bool
	Throttle throttle.Throttle
	Pressed  bool
}

func (c Call) String() string {
	if c.Redraw {
		return "redraw()"
	}
	return fmt.Sprintf("control(%s,%t)", c.Throttle, c.Pressed)
}

// Control returns the recorded form of a control call.
func Control(t throttle.Throttle, pressed bool) Call {
	return Call{Throttle: t, Pressed: pressed}
}

// Recorder is a World that remembers every call in order.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
	// OnRedraw, when set, runs inside Redraw after the call is recorded.
	OnRedraw func()
}

func (r *Recorder) Redraw() {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Redraw: true})
	hook := r.OnRedraw
	r.mu.Unlock()
	if hook != nil {
		hook()
	}
}

func (r *Recorder) Control(t throttle.Throttle, pressed bool) {
	r.mu.Lock()
	r.calls = append(r.calls, Control(t, pressed))
	r.mu.Unlock()
}

// Calls returns a copy of every recorded call.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Controls returns only the control calls.
func (r *Recorder) Controls() []Call {
	var out []Call
	for _, c := range r.Calls() {
		if !c.Redraw {
			out = append(out, c)
		}
	}
	return out
}

// Redraws counts recorded redraw calls.
func (r *Recorder) Redraws() int {
	n := 0
	for _, c := range r.Calls() {
		if c.Redraw {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}
