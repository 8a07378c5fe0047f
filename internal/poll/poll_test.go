package poll

import (
	"testing"

	"github.com/san-kum/lander/internal/input"
	"github.com/san-kum/lander/internal/render"
	"github.com/san-kum/lander/internal/throttle"
	"github.com/san-kum/lander/internal/world"
)

func expectCalls(t *testing.T, got, want []world.Call) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestKeysAcrossFrames(t *testing.T) {
	rec := &world.Recorder{}
	l := New(rec, &render.Size{}, Config{Input: input.DefaultOptions()})

	l.Input(Sample{Pressed: []string{input.KeyArrowLeft}, Width: 800, Height: 600})
	l.Frame()
	l.Input(Sample{Released: []string{input.KeyArrowLeft}, Width: 800, Height: 600})
	l.Frame()

	expectCalls(t, rec.Calls(), []world.Call{
		world.Control(throttle.Left, true),
		{Redraw: true},
		world.Control(throttle.Left, false),
		{Redraw: true},
	})
}

func TestTouchesAcrossFrames(t *testing.T) {
	rec := &world.Recorder{}
	canvas := &render.Size{}
	l := New(rec, canvas, Config{Input: input.DefaultOptions()})

	touch := input.TouchPoint{ID: 3, X: 160, Y: 60}
	l.Input(Sample{Touches: []input.TouchPoint{touch}, Width: 800, Height: 600})
	l.Input(Sample{Touches: []input.TouchPoint{touch}, Width: 800, Height: 600})
	l.Input(Sample{Width: 800, Height: 600})
	l.Frame()

	expectCalls(t, rec.Controls(), []world.Call{
		world.Control(throttle.Bottom, true),
		world.Control(throttle.Bottom, false),
	})
	if canvas.Width != 800 || canvas.Height != 600 {
		t.Errorf("expected 800x600 canvas, got %dx%d", canvas.Width, canvas.Height)
	}
	if l.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", l.Frames())
	}
}

func TestSimultaneousTouchesFollowPolicy(t *testing.T) {
	two := []input.TouchPoint{{ID: 1, X: 10, Y: 500}, {ID: 2, X: 790, Y: 500}}

	multi := &world.Recorder{}
	l := New(multi, &render.Size{}, Config{Input: input.DefaultOptions()})
	l.Input(Sample{Touches: two, Width: 800, Height: 600})
	if len(multi.Controls()) != 2 {
		t.Errorf("multi-touch: expected 2 commands, got %v", multi.Controls())
	}

	opts := input.DefaultOptions()
	opts.Policy = input.SingleTouch
	single := &world.Recorder{}
	l = New(single, &render.Size{}, Config{Input: opts})
	l.Input(Sample{Touches: two, Width: 800, Height: 600})
	if len(single.Controls()) != 0 {
		t.Errorf("single-touch: expected no commands, got %v", single.Controls())
	}
	if l.Policy() != input.SingleTouch {
		t.Errorf("expected single policy, got %v", l.Policy())
	}
}

func TestObserversSeeCommands(t *testing.T) {
	var seen []input.Command
	l := New(&world.Recorder{}, &render.Size{}, Config{
		Input:     input.DefaultOptions(),
		Observers: []input.Observer{input.ObserverFunc(func(c input.Command) { seen = append(seen, c) })},
	})
	l.Input(Sample{Pressed: []string{input.KeyArrowUp, "Shift"}, Width: 1, Height: 1})
	if len(seen) != 1 || seen[0] != (input.Command{Throttle: throttle.Bottom, Pressed: true}) {
		t.Errorf("unexpected observed commands %v", seen)
	}
}

func TestSimultaneousKeysKeepSampleOrder(t *testing.T) {
	rec := &world.Recorder{}
	l := New(rec, &render.Size{}, Config{Input: input.DefaultOptions()})

	var pressed []string
	for _, k := range Keys {
		if k == input.KeyArrowRight || k == input.KeyArrowUp || k == input.KeyArrowLeft {
			pressed = append(pressed, k)
		}
	}
	l.Input(Sample{Pressed: pressed, Width: 800, Height: 600})

	expectCalls(t, rec.Calls(), []world.Call{
		world.Control(throttle.Bottom, true),
		world.Control(throttle.Left, true),
		world.Control(throttle.Right, true),
	})
}

func TestKeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range Keys {
		if seen[k] {
			t.Errorf("key %s listed twice", k)
		}
		seen[k] = true
	}
}
