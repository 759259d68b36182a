package app

import (
	"errors"
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"nanoshader/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/pixel"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const panicLineHeight = 10

// PanicInfo is what the fatal path knows about a crashed render loop.
type PanicInfo struct {
	Value any
	Stack []byte
}

func capturePanic(v any) PanicInfo {
	return PanicInfo{Value: v, Stack: debug.Stack()}
}

func (info PanicInfo) err() error {
	if err, ok := info.Value.(error); ok {
		return err
	}
	return errors.New(fmt.Sprint(info.Value))
}

func (info PanicInfo) lines() []string {
	lines := []string{
		"nanoshader panic:",
		fmt.Sprintf("%v", info.Value),
	}
	if len(info.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(info.Stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func logPanic(h hal.HAL, info PanicInfo) {
	l := h.Logger()
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf("app: panic: %v", info.Value))
	for _, line := range info.lines()[2:] {
		l.WriteLineString(line)
	}
}

// halt reports a fatal error on every channel the device has and stops.
// There is nobody to restart the program, so it parks instead of exiting.
func halt(h hal.HAL, info PanicInfo) {
	logPanic(h, info)
	if d := h.Display(); d != nil {
		drawPanic(d, info.lines())
	}
	select {}
}

// drawPanic renders lines on a white screen. The display may be what failed,
// so it gives up quietly on the first write error.
func drawPanic(disp hal.Display, lines []string) {
	d := &panicDisplay{d: disp}
	w, h := d.Size()
	if w <= 0 || h <= 0 {
		return
	}
	d.fill(color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	if d.err != nil {
		return
	}

	font := &proggy.TinySZ8pt7b
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		_ = d.Display()
		return
	}
	cols := w / fontWidth
	if cols <= 0 {
		cols = 1
	}

	fg := color.RGBA{R: 0xC0, G: 0, B: 0, A: 0xFF}
	y := int16(panicLineHeight)
	for _, line := range lines {
		for len(line) > 0 && y <= h {
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y, chunk, fg)
			y += panicLineHeight
			line = strings.TrimLeft(rest, " ")
		}
		if y > h || d.err != nil {
			break
		}
	}
	_ = d.Display()
}

// panicDisplay adapts hal.Display to drivers.Displayer for tinyfont.
type panicDisplay struct {
	d   hal.Display
	err error
}

var _ drivers.Displayer = (*panicDisplay)(nil)

func (p *panicDisplay) Size() (x, y int16) {
	w, h := p.d.Size()
	return int16(w), int16(h)
}

func (p *panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	if p.err != nil {
		return
	}
	w, h := p.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	p.err = p.d.WritePixel(int(x), int(y), pixel.NewRGB565BE(c.R, c.G, c.B))
}

func (p *panicDisplay) Display() error {
	if p.err != nil {
		return p.err
	}
	return p.d.Present()
}

func (p *panicDisplay) fill(c color.RGBA) {
	w, h := p.Size()
	for x := int16(0); x < w && p.err == nil; x++ {
		for y := int16(0); y < h && p.err == nil; y++ {
			p.SetPixel(x, y, c)
		}
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
