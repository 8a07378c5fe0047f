package input

// Event is a host-independent input event: a [KeyEvent] or a [TouchEvent].
type Event interface {
	isEvent()
}

// KeyEvent carries a DOM-style key name such as "ArrowUp".
type KeyEvent struct {
	Key string
}

// TouchPoint is one touch contact in viewport pixels.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// TouchEvent carries the touch points that changed in one host event.
type TouchEvent struct {
	Changed []TouchPoint
}

func (KeyEvent) isEvent()   {}
func (TouchEvent) isEvent() {}

// Key names shared by every host.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Touch is shorthand for a single-point touch event.
func Touch(x, y float64) TouchEvent {
	return TouchEvent{Changed: []TouchPoint{{X: x, Y: y}}}
}

// Viewport is the drawing area touches are normalized against.
type Viewport struct {
	Width, Height float64
}

func (v Viewport) Valid() bool { return v.Width > 0 && v.Height > 0 }

// Normalize maps a pixel position into the unit square.
func (v Viewport) Normalize(p TouchPoint) (x, y float64, err error) {
	if !v.Valid() {
		return 0, 0, ErrZeroViewport
	}
	return p.X / v.Width, p.Y / v.Height, nil
}
