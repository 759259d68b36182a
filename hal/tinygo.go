//go:build tinygo && baremetal

package hal

import (
	"machine"

	"nanoshader/shader"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/pixel"
	"tinygo.org/x/drivers/st7735"
)

type tinyGoHAL struct {
	logger *uartLogger
	disp   Display
}

// New returns a Pico HAL driving a 160x80 ST7735 panel (Waveshare Pico-LCD-0.96 wiring).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// LCD:  SPI1 SCK=GP10 SDO=GP11, DC=GP8, CS=GP9, RST=GP12, BL=GP13.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var disp Display
	if lcd, err := newST7735Display(); err == nil {
		disp = lcd
	} else {
		logger.WriteLineString("hal: lcd: " + err.Error())
		disp = stubDisplay{w: 160, h: 80}
	}

	return &tinyGoHAL{logger: logger, disp: disp}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return h.disp }

type st7735Display struct {
	dev  st7735.Device
	w, h int
	px   pixel.Image[pixel.RGB565BE]
}

func newST7735Display() (*st7735Display, error) {
	err := machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		Frequency: 40_000_000,
	})
	if err != nil {
		return nil, err
	}

	dev := st7735.New(machine.SPI1, machine.GP12, machine.GP8, machine.GP9, machine.GP13)
	dev.IsBGR(true)
	dev.Configure(st7735.Config{
		Model:        st7735.MINI80x160,
		Rotation:     drivers.Rotation90,
		ColumnOffset: 26,
		RowOffset:    1,
	})
	dev.InvertColors(true)

	d := &st7735Display{dev: dev, px: pixel.NewImage[pixel.RGB565BE](1, 1)}
	w, h := d.dev.Size()
	d.w, d.h = int(w), int(h)
	return d, nil
}

func (d *st7735Display) Size() (width, height int) { return d.w, d.h }

// WritePixel pushes one pixel straight to the panel; there is no framebuffer.
func (d *st7735Display) WritePixel(x, y int, c shader.Pixel) error {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return ErrOutOfBounds
	}
	d.px.Set(0, 0, c)
	return d.dev.DrawBitmap(int16(x), int16(y), d.px)
}

func (d *st7735Display) Present() error { return d.dev.Display() }
