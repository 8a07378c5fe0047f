package session

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/lander/internal/world"
)

// Replay sends events to w, waiting between them as recorded. speed scales
// time: 2 replays twice as fast. A non-positive speed sends everything at
// once. Held throttles are released if the context is canceled mid-replay.
func Replay(ctx context.Context, w world.Controller, events []Event, speed float64) error {
	held := make(map[int]Event)
	release := func() {
		for _, e := range held {
			w.Control(e.Throttle, false)
		}
	}

	var last time.Duration
	for _, e := range events {
		if speed > 0 && e.Offset > last {
			wait := time.Duration(float64(e.Offset-last) / speed)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				release()
				return fmt.Errorf("session: replay interrupted: %w", ctx.Err())
			case <-timer.C:
			}
			last = e.Offset
		}
		w.Control(e.Throttle, e.Pressed)
		if e.Pressed {
			held[int(e.Throttle)] = e
		} else {
			delete(held, int(e.Throttle))
		}
	}
	return nil
}
