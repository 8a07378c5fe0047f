package input

import (
	"fmt"

	"github.com/san-kum/lander/internal/throttle"
)

const (
	DefaultBottomBand = 0.3
	DefaultSplitX     = 0.5
)

// Layout splits the viewport into touch regions. Points above BottomBand
// fire the bottom engine; below it, the halves split at SplitX fire left
// and right. Both thresholds are exclusive upper bounds.
type Layout struct {
	BottomBand float64 `yaml:"bottom_band"`
	SplitX     float64 `yaml:"split_x"`
}

func DefaultLayout() Layout {
	return Layout{BottomBand: DefaultBottomBand, SplitX: DefaultSplitX}
}

func (l Layout) Validate() error {
	if l.BottomBand <= 0 || l.BottomBand >= 1 {
		return fmt.Errorf("%w: bottom_band %v", ErrInvalidLayout, l.BottomBand)
	}
	if l.SplitX <= 0 || l.SplitX >= 1 {
		return fmt.Errorf("%w: split_x %v", ErrInvalidLayout, l.SplitX)
	}
	return nil
}

// Classify maps a normalized position to a throttle. Every point of the
// unit square maps to exactly one throttle.
func (l Layout) Classify(x, y float64) throttle.Throttle {
	if y < l.BottomBand {
		return throttle.Bottom
	}
	if x < l.SplitX {
		return throttle.Left
	}
	return throttle.Right
}

// MapTouch normalizes p against vp and classifies it.
func MapTouch(l Layout, vp Viewport, p TouchPoint) (throttle.Throttle, error) {
	x, y, err := vp.Normalize(p)
	if err != nil {
		return 0, err
	}
	return l.Classify(x, y), nil
}
