package input

import (
	"fmt"

	"github.com/san-kum/lander/internal/throttle"
)

// Keymap maps key names to throttles.
type Keymap map[string]throttle.Throttle

// DefaultKeymap is the arrow key layout.
func DefaultKeymap() Keymap {
	return Keymap{
		KeyArrowUp:    throttle.Bottom,
		KeyArrowLeft:  throttle.Left,
		KeyArrowRight: throttle.Right,
	}
}

// ParseKeymap builds a keymap from key name to throttle name pairs.
func ParseKeymap(m map[string]string) (Keymap, error) {
	km := make(Keymap, len(m))
	for key, name := range m {
		t, err := throttle.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		km[key] = t
	}
	return km, nil
}

// MapKey returns the throttle bound to key.
func MapKey(km Keymap, key string) (throttle.Throttle, bool) {
	t, ok := km[key]
	return t, ok
}
