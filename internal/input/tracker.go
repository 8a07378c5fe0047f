package input

import "sort"

// TouchTracker turns successive polls of the active touch points into
// start and end events, for hosts that only report current touches.
type TouchTracker struct {
	active map[int]TouchPoint
}

func NewTouchTracker() *TouchTracker {
	return &TouchTracker{active: make(map[int]TouchPoint)}
}

// Update records the points active now. Started holds points not seen in
// the previous poll; ended holds points that disappeared, at their last
// known position. Both are ordered by ID.
func (tr *TouchTracker) Update(now []TouchPoint) (started, ended []TouchPoint) {
	seen := make(map[int]bool, len(now))
	for _, p := range now {
		seen[p.ID] = true
		if _, ok := tr.active[p.ID]; !ok {
			started = append(started, p)
		}
		tr.active[p.ID] = p
	}
	for id, p := range tr.active {
		if !seen[id] {
			ended = append(ended, p)
			delete(tr.active, id)
		}
	}
	sortByID(started)
	sortByID(ended)
	return started, ended
}

// Active reports how many touches are currently held.
func (tr *TouchTracker) Active() int { return len(tr.active) }

func sortByID(ps []TouchPoint) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
}
