package input

import (
	"fmt"
	"strings"
)

// Policy decides how touch events with several changed points are handled.
type Policy uint8

const (
	// MultiTouch maps every changed point independently.
	MultiTouch Policy = iota
	// SingleTouch drops events with more than one changed point.
	SingleTouch
)

func (p Policy) String() string {
	switch p {
	case SingleTouch:
		return "single"
	case MultiTouch:
		return "multi"
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "multi", "":
		return MultiTouch, nil
	case "single":
		return SingleTouch, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

func (p Policy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Policy) UnmarshalText(b []byte) error {
	v, err := ParsePolicy(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
