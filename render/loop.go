// Package render drives a shader over a pixel surface, one frame after another.
package render

import (
	"fmt"

	"nanoshader/shader"
)

// TimeStep is how far shader time advances after each full frame.
const TimeStep shader.Scalar = 0.1

// Surface is a fixed-size display that accepts one pixel at a time.
type Surface interface {
	Size() (width, height int)
	WritePixel(x, y int, c shader.Pixel) error
}

// Presenter is implemented by surfaces that buffer pixels and need an explicit
// push once a frame is complete.
type Presenter interface {
	Present() error
}

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

// WriteError is the panic value raised when the surface rejects a pixel.
// X and Y are -1 when the failure happened while presenting a frame.
type WriteError struct {
	X, Y int
	Err  error
}

func (e *WriteError) Error() string {
	if e.X < 0 || e.Y < 0 {
		return fmt.Sprintf("render: present: %v", e.Err)
	}
	return fmt.Sprintf("render: write pixel (%d,%d): %v", e.X, e.Y, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Loop owns the surface and the shader time for the lifetime of the program.
type Loop struct {
	s      Surface
	w, h   int
	shade  shader.Func
	step   shader.Scalar
	log    Logger
	every  uint64
	t      shader.Scalar
	frames uint64
}

type Option func(*Loop)

// WithShader replaces the default Cosine shader.
func WithShader(f shader.Func) Option { return func(l *Loop) { l.shade = f } }

// WithStep overrides TimeStep.
func WithStep(step shader.Scalar) Option { return func(l *Loop) { l.step = step } }

// WithLogger sets where status lines go.
func WithLogger(log Logger) Option { return func(l *Loop) { l.log = log } }

// WithLogEvery emits a status line every n frames (0 disables it).
func WithLogEvery(n uint64) Option { return func(l *Loop) { l.every = n } }

// New binds a loop to s. The surface size is read once here.
func New(s Surface, opts ...Option) *Loop {
	l := &Loop{s: s, shade: shader.Cosine, step: TimeStep}
	for _, opt := range opts {
		opt(l)
	}
	l.w, l.h = s.Size()
	return l
}

// Size returns the surface size captured by New.
func (l *Loop) Size() (width, height int) { return l.w, l.h }

// Time returns the shader time for the next frame.
func (l *Loop) Time() shader.Scalar { return l.t }

// Frames returns the number of completed frames.
func (l *Loop) Frames() uint64 { return l.frames }

// Run renders frames forever.
func (l *Loop) Run() {
	for {
		l.Frame()
	}
}

// Frame renders every pixel once, column by column, then advances time.
//
// A surface error is fatal: Frame panics with *WriteError. There is no
// supervisor on the device to retry or restart, so the caller is expected to
// report and halt.
func (l *Loop) Frame() {
	for x := 0; x < l.w; x++ {
		for y := 0; y < l.h; y++ {
			coord := shader.Normalize(x, y, l.w, l.h)
			c := shader.ToDevice(l.shade(coord, l.t))
			if err := l.s.WritePixel(x, y, c); err != nil {
				panic(&WriteError{X: x, Y: y, Err: err})
			}
		}
	}
	if p, ok := l.s.(Presenter); ok {
		if err := p.Present(); err != nil {
			panic(&WriteError{X: -1, Y: -1, Err: err})
		}
	}

	l.t += l.step
	l.frames++

	if l.log != nil && l.every > 0 && l.frames%l.every == 0 {
		l.log.WriteLineString(fmt.Sprintf("render: frame=%d t=%.1f size=%dx%d", l.frames, l.t, l.w, l.h))
	}
}
