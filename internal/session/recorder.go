package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/lander/internal/input"
)

// Recorder collects mapper commands with their offset from the start of
// the session. It implements input.Observer.
type Recorder struct {
	mu      sync.Mutex
	meta    Metadata
	events  []Event
	now     func() time.Time
	started time.Time
}

// NewRecorder starts a session for host and policy with a fresh id.
func NewRecorder(host string, policy input.Policy) *Recorder {
	return newRecorder(host, policy, time.Now)
}

func newRecorder(host string, policy input.Policy, now func() time.Time) *Recorder {
	started := now()
	return &Recorder{
		meta: Metadata{
			ID:      uuid.NewString(),
			Host:    host,
			Policy:  policy.String(),
			Started: started,
		},
		now:     now,
		started: started,
	}
}

func (r *Recorder) ID() string { return r.meta.ID }

func (r *Recorder) OnCommand(c input.Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{
		Offset:   r.now().Sub(r.started),
		Throttle: c.Throttle,
		Pressed:  c.Pressed,
	})
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Save persists the session into st.
func (r *Recorder) Save(st *Store) error {
	return st.Save(r.meta, r.Events())
}
