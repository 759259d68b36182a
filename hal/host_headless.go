//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64

	// Terminal previews every frame on stdout with truecolor escapes.
	Terminal bool

	// Dump, when set, receives the last frame as BMP once the run stops.
	Dump string

	Profile Profile
}

// RunHeadless runs the renderer without opening a window. Each tick calls the
// step function returned by newApp once.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) (err error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Profile == (Profile{}) {
		cfg.Profile = DefaultProfile()
	}
	if err := cfg.Profile.Validate(); err != nil {
		return err
	}

	h := New(cfg.Profile).(*hostHAL)
	if cfg.Terminal {
		cols, rows, ok := stdoutTerminal()
		if !ok {
			return errors.New("terminal mode requires stdout to be a terminal")
		}
		// Keep log lines off the picture.
		h.logger.w = os.Stderr
		td := newTerminalDisplay(h.fb, os.Stdout, cols, rows)
		defer td.Close()
		h.disp = td
	}
	if cfg.Dump != "" {
		defer func() {
			if derr := h.fb.DumpBMP(cfg.Dump); derr != nil && err == nil {
				err = derr
			}
		}()
	}

	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
