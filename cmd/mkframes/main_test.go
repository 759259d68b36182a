package main

import (
	"os"
	"path/filepath"
	"testing"

	"nanoshader/hal"

	"golang.org/x/image/bmp"
)

func TestRenderFrames(t *testing.T) {
	dir := t.TempDir()
	p := hal.DefaultProfile()
	p.Width, p.Height = 16, 8

	var ticks int
	written, err := renderFrames(dir, p, 5, 2, func() { ticks++ })
	if err != nil {
		t.Fatalf("renderFrames: %v", err)
	}
	if written != 3 || ticks != 5 {
		t.Fatalf("written=%d ticks=%d, want 3 and 5", written, ticks)
	}

	for _, name := range []string{"frame00000.bmp", "frame00002.bmp", "frame00004.bmp"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		img, err := bmp.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
			t.Fatalf("%s bounds = %v, want 16x8", name, b)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "frame00001.bmp")); !os.IsNotExist(err) {
		t.Fatalf("frame00001.bmp exists, want skipped (err=%v)", err)
	}
}

func TestRenderFramesBadDir(t *testing.T) {
	p := hal.DefaultProfile()
	p.Width, p.Height = 2, 2
	missing := filepath.Join(t.TempDir(), "does", "not", "exist")
	if _, err := renderFrames(missing, p, 1, 1, nil); err == nil {
		t.Fatal("renderFrames() err = nil, want create error")
	}
}
