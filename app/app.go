package app

import (
	"fmt"

	"nanoshader/hal"
	"nanoshader/internal/buildinfo"
	"nanoshader/render"
	"nanoshader/shader"
)

// Config selects what the render loop draws and how chatty it is.
type Config struct {
	// Shader defaults to shader.Cosine.
	Shader shader.Func
	// LogEvery emits a status line every N frames (0 = never).
	LogEvery uint64
}

func newLoop(h hal.HAL, cfg Config) *render.Loop {
	opts := []render.Option{render.WithLogEvery(cfg.LogEvery)}
	if l := h.Logger(); l != nil {
		opts = append(opts, render.WithLogger(l))
	}
	if cfg.Shader != nil {
		opts = append(opts, render.WithShader(cfg.Shader))
	}
	loop := render.New(h.Display(), opts...)

	if l := h.Logger(); l != nil {
		w, ht := loop.Size()
		l.WriteLineString(fmt.Sprintf("app: nanoshader %s display=%dx%d", buildinfo.Short(), w, ht))
	}
	return loop
}

// New wires a render loop to h and returns a step function that draws one
// frame per call (host runners own the frame pacing).
//
// A fatal render error is logged and returned; the caller must stop stepping.
func New(h hal.HAL, cfg Config) func() error {
	loop := newLoop(h, cfg)
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				info := capturePanic(r)
				logPanic(h, info)
				err = info.err()
			}
		}()
		loop.Frame()
		return nil
	}
}

// Run renders forever (TinyGo/native entrypoint). It never returns: a fatal
// render error puts the panic screen up and parks the CPU.
func Run(h hal.HAL, cfg Config) {
	defer func() {
		if r := recover(); r != nil {
			halt(h, capturePanic(r))
		}
	}()
	newLoop(h, cfg).Run()
}
