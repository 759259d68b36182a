//go:build !tinygo

package hal

import (
	"bufio"
	"io"
	"os"

	"nanoshader/shader"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// upperHalf draws the top pixel in the foreground and the bottom one in the background.
const upperHalf = "▀"

// terminalDisplay previews the framebuffer on a truecolor terminal, two pixel
// rows per text row.
type terminalDisplay struct {
	fb     *Framebuffer
	w      *bufio.Writer
	stride int
	opened bool
}

func newTerminalDisplay(fb *Framebuffer, w io.Writer, cols, rows int) *terminalDisplay {
	width, height := fb.Size()
	return &terminalDisplay{
		fb:     fb,
		w:      bufio.NewWriter(w),
		stride: fitStride(width, height, cols, rows),
	}
}

// fitStride returns the smallest pixel step that fits a w×h panel into
// cols×rows cells. Non-positive cols/rows mean unknown and skip fitting.
func fitStride(w, h, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return 1
	}
	s := 1
	for (w+s-1)/s > cols || (h+2*s-1)/(2*s) > rows {
		s++
	}
	return s
}

func (d *terminalDisplay) Size() (width, height int) { return d.fb.Size() }

func (d *terminalDisplay) WritePixel(x, y int, c shader.Pixel) error {
	return d.fb.WritePixel(x, y, c)
}

func (d *terminalDisplay) Present() error {
	if !d.opened {
		d.w.WriteString(ansi.HideCursor)
		d.w.WriteString(ansi.EraseEntireScreen)
		d.opened = true
	}
	d.w.WriteString(ansi.CursorHomePosition)

	width, height := d.fb.Size()
	s := d.stride
	for y := 0; y < height; y += 2 * s {
		for x := 0; x < width; x += s {
			top, _ := d.fb.Pixel(x, y)
			st := ansi.Style{}.ForegroundColor(rgbColor(top))
			if bottom, err := d.fb.Pixel(x, y+s); err == nil {
				st = st.BackgroundColor(rgbColor(bottom))
			} else {
				st = st.BackgroundColor(nil)
			}
			d.w.WriteString(st.String())
			d.w.WriteString(upperHalf)
		}
		d.w.WriteString(ansi.ResetStyle)
		d.w.WriteString("\r\n")
	}
	return d.w.Flush()
}

// Close restores the cursor.
func (d *terminalDisplay) Close() error {
	if !d.opened {
		return nil
	}
	d.w.WriteString(ansi.ResetStyle)
	d.w.WriteString(ansi.ShowCursor)
	return d.w.Flush()
}

func rgbColor(p shader.Pixel) ansi.RGBColor {
	c := shader.FromDevice(p)
	return ansi.RGBColor{R: c.R, G: c.G, B: c.B}
}

// stdoutTerminal returns stdout's size when it is a terminal.
func stdoutTerminal() (cols, rows int, ok bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, true
	}
	// Keep the last row free for the cursor.
	return cols, rows - 1, true
}
