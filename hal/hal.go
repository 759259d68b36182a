package hal

import (
	"errors"

	"nanoshader/shader"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrOutOfBounds    = errors.New("pixel outside display area")
)

// Display is a fixed-size panel that takes one native pixel at a time.
//
// Pixels are RGB565. Present pushes whatever the backend buffered; direct-write
// panels implement it as a no-op.
type Display interface {
	Size() (width, height int)
	WritePixel(x, y int, c shader.Pixel) error
	Present() error
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
}
