// Package input maps keyboard and touch input to throttle commands.
//
// Host event loops translate their native events into an [Event] and call
// [Mapper.Press] or [Mapper.Release]. Mapping itself is the pure function
// [Map]:
//
//   - [KeyEvent]: looked up in a [Keymap] (ArrowUp, ArrowLeft, ArrowRight)
//   - [TouchEvent]: each changed point is normalized by the [Viewport] and
//     classified by a [Layout] (top band, then left/right halves)
//
// Input that maps to no throttle is dropped without error.
package input
