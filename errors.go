package tin

import (
	"errors"
	"fmt"
)

// ErrUnknownRenderer is wrapped by NewRenderer when no factory is
// registered under the requested name.
var ErrUnknownRenderer = errors.New("tin: unknown renderer")

// UnsupportedError is the panic value raised when a renderer is handed a
// primitive it cannot draw.
type UnsupportedError struct {
	Renderer  string
	Primitive DrawCallType
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("tin: %s does not support %s", e.Renderer, e.Primitive)
}

// Unsupported stops the program with an *UnsupportedError. Renderers call
// it for primitives they cannot draw.
func Unsupported(renderer string, primitive DrawCallType) {
	panic(&UnsupportedError{Renderer: renderer, Primitive: primitive})
}

// RangeError is the panic value raised by Remap and the helpers built on it
// when an input or output interval has zero width.
type RangeError struct {
	Func   string
	Lo, Hi float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("tin: %s: degenerate range [%g, %g]", e.Func, e.Lo, e.Hi)
}
