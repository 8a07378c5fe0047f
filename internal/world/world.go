// Package world defines the boundary to the lander simulation.
//
// The simulation itself is external; this package holds the interface the
// input and frame layers talk to, plus small collaborators used by the hosts
// and tests:
//
//   - [Panel]: stand-in world that tracks held throttles and frame counts
//   - [Recorder]: records every call in order
//   - [Logged]: decorator that logs control calls
//
// Implementations must tolerate duplicate presses and releases of the same
// throttle and releases without a prior press.
package world

import "github.com/san-kum/lander/internal/throttle"

// World is the simulation as seen by the frame driver and input mapper.
type World interface {
	// Redraw renders the current state. Called once per frame.
	Redraw()
	// Control sets whether a throttle is held.
	Control(t throttle.Throttle, pressed bool)
}

// Controller is the input half of World.
type Controller interface {
	Control(t throttle.Throttle, pressed bool)
}
