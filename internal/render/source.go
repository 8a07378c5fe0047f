package render

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrStopped is returned by a FrameSource that has no more frames.
var ErrStopped = errors.New("render: frame source stopped")

// ErrInvalidRate indicates a non-positive frame rate.
var ErrInvalidRate = errors.New("render: frame rate must be positive")

// FrameSource blocks until the next frame is due.
type FrameSource interface {
	Next(ctx context.Context) error
}

// Ticker produces frames at a fixed rate on the wall clock.
type Ticker struct {
	t *time.Ticker
}

func NewTicker(fps int) (*Ticker, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, fps)
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(fps))}, nil
}

func (t *Ticker) Next(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.t.C:
		return nil
	}
}

func (t *Ticker) Stop() { t.t.Stop() }

type limited struct {
	src  FrameSource
	left int
}

// Limit stops src after n frames.
func Limit(src FrameSource, n int) FrameSource {
	return &limited{src: src, left: n}
}

func (l *limited) Next(ctx context.Context) error {
	if l.left <= 0 {
		return ErrStopped
	}
	if err := l.src.Next(ctx); err != nil {
		return err
	}
	l.left--
	return nil
}

// Immediate never waits.
type Immediate struct{}

func (Immediate) Next(ctx context.Context) error { return ctx.Err() }

// Manual hands out one frame per value sent on its channel and stops when
// the channel is closed.
type Manual chan struct{}

func NewManual() Manual { return make(Manual) }

func (m Manual) Next(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case _, ok := <-m:
		if !ok {
			return ErrStopped
		}
		return nil
	}
}

// Tick releases one frame; it blocks until the driver asks for it.
func (m Manual) Tick() { m <- struct{}{} }
