// Package throttle defines the directional thrust commands understood by the
// lander simulation.
package throttle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned by Parse for names outside the closed set.
var ErrUnknown = errors.New("throttle: unknown throttle")

// Throttle is one of three directional thrust commands.
type Throttle uint8

const (
	Bottom Throttle = iota
	Left
	Right

	count
)

var names = [count]string{"bottom", "left", "right"}

// All returns every throttle in declaration order.
func All() []Throttle {
	return []Throttle{Bottom, Left, Right}
}

func (t Throttle) Valid() bool { return t < count }

func (t Throttle) String() string {
	if !t.Valid() {
		return fmt.Sprintf("throttle(%d)", uint8(t))
	}
	return names[t]
}

// Parse accepts the lower-case names produced by String, case-insensitively.
func Parse(s string) (Throttle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return Throttle(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknown, s)
}

func (t Throttle) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknown, uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *Throttle) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Set is a bitset of held throttles.
type Set uint8

func (s Set) Has(t Throttle) bool { return t.Valid() && s&(1<<t) != 0 }

func (s Set) Add(t Throttle) Set {
	if !t.Valid() {
		return s
	}
	return s | 1<<t
}

func (s Set) Remove(t Throttle) Set {
	if !t.Valid() {
		return s
	}
	return s &^ (1 << t)
}

// Slice lists the held throttles in declaration order.
func (s Set) Slice() []Throttle {
	out := make([]Throttle, 0, count)
	for _, t := range All() {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s Set) Len() int { return len(s.Slice()) }

func (s Set) String() string {
	parts := make([]string, 0, count)
	for _, t := range s.Slice() {
		parts = append(parts, t.String())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
