//go:build tinygo && !baremetal

package hal

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	fb     *Framebuffer
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no panel;
// frames land in an in-memory framebuffer.
func New() HAL {
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		fb:     NewFramebuffer(160, 80),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return h.fb }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
