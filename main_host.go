//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"nanoshader/app"
	"nanoshader/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var (
		profilePath string
		scale       int
		logEvery    uint64
	)
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.BoolVar(&cfg.Terminal, "term", false, "Preview frames on this terminal (implies -headless).")
	flag.IntVar(&cfg.Hz, "hz", 30, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Dump, "dump", "", "Write the last headless frame to this BMP file.")
	flag.StringVar(&profilePath, "profile", "", "Panel profile (YAML). Defaults to a 160x80 ST7735.")
	flag.IntVar(&scale, "scale", 0, "Window scale factor (overrides the profile).")
	flag.Uint64Var(&logEvery, "log-every", 0, "Log a status line every N frames (0 = never).")
	flag.Parse()

	p := hal.DefaultProfile()
	if profilePath != "" {
		var err error
		if p, err = hal.LoadProfile(profilePath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if scale > 0 {
		p.Scale = scale
	}
	cfg.Profile = p

	newApp := func(h hal.HAL) func() error {
		return app.New(h, app.Config{LogEvery: logEvery})
	}

	if cfg.Enabled || cfg.Terminal {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(p, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
