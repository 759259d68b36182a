//go:build tinygo && baremetal

package hal

import (
	"machine"

	"nanoshader/shader"
)

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// stubDisplay stands in when the panel could not be brought up. Every write
// fails, so the renderer halts on the first pixel and the UART log shows why.
type stubDisplay struct {
	w, h int
}

func (d stubDisplay) Size() (width, height int)                 { return d.w, d.h }
func (d stubDisplay) WritePixel(_, _ int, _ shader.Pixel) error { return ErrNotImplemented }
func (d stubDisplay) Present() error                            { return ErrNotImplemented }
