package app

import (
	"errors"
	"strings"
	"testing"

	"nanoshader/hal"
	"nanoshader/render"
	"nanoshader/shader"
)

type memLogger struct{ lines []string }

func (l *memLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *memLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type testHAL struct {
	log  *memLogger
	disp hal.Display
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return h.disp }

// brokenDisplay fails every write after the first n.
type brokenDisplay struct {
	*hal.Framebuffer
	n int
}

var errBus = errors.New("spi bus fault")

func (d *brokenDisplay) WritePixel(x, y int, c shader.Pixel) error {
	if d.n <= 0 {
		return errBus
	}
	d.n--
	return d.Framebuffer.WritePixel(x, y, c)
}

func TestNewStepRendersFrame(t *testing.T) {
	fb := hal.NewFramebuffer(8, 4)
	h := &testHAL{log: &memLogger{}, disp: fb}

	step := New(h, Config{LogEvery: 2})
	for i := 0; i < 2; i++ {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	got, _ := fb.Pixel(0, 0)
	// The second frame ran at t = 0.1.
	want := shader.ToDevice(shader.Cosine(shader.V2[shader.Scalar](0, 0), 0.1))
	if got != want {
		t.Fatalf("Pixel(0,0) = %#04x, want %#04x", got, want)
	}

	if len(h.log.lines) != 2 {
		t.Fatalf("log lines = %q, want boot + status", h.log.lines)
	}
	if !strings.Contains(h.log.lines[0], "display=8x4") {
		t.Fatalf("boot line = %q", h.log.lines[0])
	}
	if !strings.HasPrefix(h.log.lines[1], "render: frame=2 ") {
		t.Fatalf("status line = %q", h.log.lines[1])
	}
}

func TestNewStepReportsFatalWrite(t *testing.T) {
	disp := &brokenDisplay{Framebuffer: hal.NewFramebuffer(4, 4), n: 3}
	h := &testHAL{log: &memLogger{}, disp: disp}

	err := New(h, Config{})()
	var we *render.WriteError
	if !errors.As(err, &we) {
		t.Fatalf("step() err = %v, want *render.WriteError", err)
	}
	if !errors.Is(err, errBus) || we.X != 0 || we.Y != 3 {
		t.Fatalf("WriteError = %+v", we)
	}

	var sawPanic bool
	for _, line := range h.log.lines {
		if strings.HasPrefix(line, "app: panic: ") {
			sawPanic = true
		}
	}
	if !sawPanic {
		t.Fatalf("no panic line logged: %q", h.log.lines)
	}
}

func TestNewUsesConfiguredShader(t *testing.T) {
	fb := hal.NewFramebuffer(2, 2)
	h := &testHAL{log: &memLogger{}, disp: fb}
	black := func(shader.Vec2[shader.Scalar], shader.Scalar) shader.Vec3[shader.Scalar] {
		return shader.Vec3[shader.Scalar]{}
	}
	_ = fb.WritePixel(1, 1, 0xFFFF)

	if err := New(h, Config{Shader: black})(); err != nil {
		t.Fatal(err)
	}
	if got, _ := fb.Pixel(1, 1); got != 0 {
		t.Fatalf("Pixel(1,1) = %#04x, want black", got)
	}
}

func TestDrawPanicPaintsText(t *testing.T) {
	fb := hal.NewFramebuffer(160, 80)
	drawPanic(fb, []string{"nanoshader panic:", "render: write pixel (0,3): spi bus fault"})

	white := shader.ToDevice(shader.Splat3[shader.Scalar](1))
	var ink int
	for y := 0; y < 80; y++ {
		for x := 0; x < 160; x++ {
			if p, _ := fb.Pixel(x, y); p != white {
				ink++
			}
		}
	}
	if ink == 0 {
		t.Fatal("drawPanic left a blank screen")
	}
	if corner, _ := fb.Pixel(159, 79); corner != white {
		t.Fatalf("background = %#04x, want white", corner)
	}
}

func TestDrawPanicStopsOnBrokenDisplay(t *testing.T) {
	disp := &brokenDisplay{Framebuffer: hal.NewFramebuffer(16, 16), n: 5}
	drawPanic(disp, []string{"x"})
	if disp.n != 0 {
		t.Fatalf("writes left = %d, want 0", disp.n)
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		s          string
		n          int16
		head, tail string
	}{
		{"hello", 10, "hello", ""},
		{"hello", 2, "he", "llo"},
		{"héllo", 2, "hé", "llo"},
		{"", 3, "", ""},
		{"abc", 0, "", "abc"},
	}
	for _, tt := range tests {
		head, tail := takeRunes(tt.s, tt.n)
		if head != tt.head || tail != tt.tail {
			t.Fatalf("takeRunes(%q,%d) = %q,%q want %q,%q", tt.s, tt.n, head, tail, tt.head, tt.tail)
		}
	}
}

func TestPanicInfoErr(t *testing.T) {
	if err := (PanicInfo{Value: errBus}).err(); err != errBus {
		t.Fatalf("err() = %v, want errBus", err)
	}
	if err := (PanicInfo{Value: "boom"}).err(); err == nil || err.Error() != "boom" {
		t.Fatalf("err() = %v, want boom", err)
	}
}
