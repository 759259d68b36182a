//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// WriteBMP encodes the current framebuffer contents as a 24-bit BMP.
func (f *Framebuffer) WriteBMP(w io.Writer) error {
	return bmp.Encode(w, f.Snapshot(nil))
}

// DumpBMP writes the framebuffer to path.
func (f *Framebuffer) DumpBMP(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.WriteBMP(out); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return out.Close()
}
