package shader

import (
	"image/color"

	"tinygo.org/x/drivers/pixel"
)

// Pixel is the native encoding of the target panels: RGB565, big endian on the wire.
type Pixel = pixel.RGB565BE

// ToByte scales a [0, 1] channel to 0..255 by truncation.
func ToByte(c Scalar) uint8 {
	return uint8(c * 255)
}

// ToRGB888 packs a color into 8 bits per channel.
func ToRGB888(c Vec3[Scalar]) pixel.RGB888 {
	return pixel.NewRGB888(ToByte(c[0]), ToByte(c[1]), ToByte(c[2]))
}

// ToDevice converts a color into the panel's pixel format.
// The 8-bit channels lose their low bits (5-6-5).
func ToDevice(c Vec3[Scalar]) Pixel {
	tc := ToRGB888(c)
	return pixel.NewRGB565BE(tc.R, tc.G, tc.B)
}

// FromDevice expands a panel pixel back to sRGB for previews.
func FromDevice(p Pixel) color.RGBA {
	return p.RGBA()
}
