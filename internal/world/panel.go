package world

import (
	"sync"

	"github.com/san-kum/lander/internal/throttle"
)

const defaultHistory = 120

// Snapshot is a copy of the panel state taken under lock.
type Snapshot struct {
	Held    throttle.Set
	Frames  uint64
	Presses map[throttle.Throttle]uint64
	// History holds the number of held throttles at each of the most recent frames.
	History []float64
}

// Panel is a stand-in world. It keeps the held throttle set and per-frame
// activity and hands a snapshot to an optional draw hook on every Redraw.
type Panel struct {
	mu       sync.Mutex
	held     throttle.Set
	frames   uint64
	presses  [3]uint64
	history  []float64
	capacity int
	draw     func(Snapshot)
}

type PanelOption func(*Panel)

// WithDraw sets the hook called from Redraw with the current snapshot.
func WithDraw(fn func(Snapshot)) PanelOption {
	return func(p *Panel) { p.draw = fn }
}

// WithHistory bounds the activity history to n frames.
func WithHistory(n int) PanelOption {
	return func(p *Panel) {
		if n > 0 {
			p.capacity = n
		}
	}
}

func NewPanel(opts ...PanelOption) *Panel {
	p := &Panel{capacity: defaultHistory}
	for _, opt := range opts {
		opt(p)
	}
	p.history = make([]float64, 0, p.capacity)
	return p
}

// SetDraw replaces the draw hook. Hosts that own the drawing surface per
// frame set it before the frame driver runs.
func (p *Panel) SetDraw(fn func(Snapshot)) {
	p.mu.Lock()
	p.draw = fn
	p.mu.Unlock()
}

func (p *Panel) Control(t throttle.Throttle, pressed bool) {
	if !t.Valid() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if pressed {
		if !p.held.Has(t) {
			p.presses[t]++
		}
		p.held = p.held.Add(t)
		return
	}
	p.held = p.held.Remove(t)
}

func (p *Panel) Redraw() {
	p.mu.Lock()
	p.frames++
	p.history = append(p.history, float64(p.held.Len()))
	if len(p.history) > p.capacity {
		p.history = p.history[1:]
	}
	snap := p.snapshotLocked()
	draw := p.draw
	p.mu.Unlock()

	if draw != nil {
		draw(snap)
	}
}

func (p *Panel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Panel) snapshotLocked() Snapshot {
	presses := make(map[throttle.Throttle]uint64, len(p.presses))
	for _, t := range throttle.All() {
		presses[t] = p.presses[t]
	}
	hist := make([]float64, len(p.history))
	copy(hist, p.history)
	return Snapshot{Held: p.held, Frames: p.frames, Presses: presses, History: hist}
}
