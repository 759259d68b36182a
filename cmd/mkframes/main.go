// Command mkframes renders a run of frames into BMP files, one per frame.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"nanoshader/hal"
	"nanoshader/render"

	"github.com/schollz/progressbar/v3"
)

func main() {
	var (
		outDir      = flag.String("out", "", "Output directory (created if missing).")
		frames      = flag.Int("frames", 32, "Number of frames to render.")
		every       = flag.Int("every", 1, "Write every Nth frame.")
		profilePath = flag.String("profile", "", "Panel profile (YAML). Defaults to a 160x80 ST7735.")
	)
	flag.Parse()

	if *outDir == "" {
		fatalf("usage: mkframes -out dir [-frames 32] [-every 1] [-profile panel.yaml]")
	}
	if *frames <= 0 || *every <= 0 {
		fatalf("frames and every must be positive")
	}

	p := hal.DefaultProfile()
	if *profilePath != "" {
		var err error
		if p, err = hal.LoadProfile(*profilePath); err != nil {
			fatalf("%v", err)
		}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatalf("%v", err)
	}

	bar := progressbar.Default(int64(*frames), "rendering")
	defer bar.Close()

	written, err := renderFrames(*outDir, p, *frames, *every, func() { _ = bar.Add(1) })
	if err != nil {
		fatalf("render: %v", err)
	}
	_ = bar.Finish()
	fmt.Printf("wrote %d frames (%dx%d) to %s\n", written, p.Width, p.Height, *outDir)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// renderFrames drives the render loop over an in-memory framebuffer and dumps
// every nth frame. tick is called once per rendered frame.
func renderFrames(dir string, p hal.Profile, frames, every int, tick func()) (written int, err error) {
	fb := hal.NewFramebuffer(p.Width, p.Height)
	loop := render.New(fb)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("frame %d: %v", loop.Frames(), r)
		}
	}()

	for i := 0; i < frames; i++ {
		loop.Frame()
		if i%every == 0 {
			path := filepath.Join(dir, fmt.Sprintf("frame%05d.bmp", i))
			if err := fb.DumpBMP(path); err != nil {
				return written, err
			}
			written++
		}
		if tick != nil {
			tick()
		}
	}
	return written, nil
}
