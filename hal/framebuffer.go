package hal

import (
	"image"
	"sync"

	"nanoshader/shader"

	"tinygo.org/x/drivers/pixel"
)

// Framebuffer is an in-memory RGB565 display. Hosts preview it; tools dump it.
type Framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	img    pixel.Image[pixel.RGB565BE]
}

// NewFramebuffer allocates a w×h framebuffer, initially black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		img:    pixel.NewImage[pixel.RGB565BE](width, height),
	}
}

func (f *Framebuffer) Size() (width, height int) { return f.width, f.height }

func (f *Framebuffer) WritePixel(x, y int, c shader.Pixel) error {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return ErrOutOfBounds
	}
	f.mu.Lock()
	f.img.Set(x, y, c)
	f.mu.Unlock()
	return nil
}

func (f *Framebuffer) Present() error { return nil }

// Pixel returns the stored native pixel at (x, y).
func (f *Framebuffer) Pixel(x, y int) (shader.Pixel, error) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0, ErrOutOfBounds
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.img.Get(x, y), nil
}

// Snapshot expands the framebuffer into dst, reallocating it when the size differs.
func (f *Framebuffer) Snapshot(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds().Dx() != f.width || dst.Bounds().Dy() != f.height {
		dst = image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := shader.FromDevice(f.img.Get(x, y))
			j := dst.PixOffset(x, y)
			dst.Pix[j+0] = c.R
			dst.Pix[j+1] = c.G
			dst.Pix[j+2] = c.B
			dst.Pix[j+3] = 0xFF
		}
	}
	return dst
}
