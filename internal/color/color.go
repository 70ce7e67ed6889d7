// internal/color/color.go
package color

import (
	"fmt"
	"math"
)

// RGB565 is a 16-bit color: 5 bits red, 6 bits green, 5 bits blue.
type RGB565 uint16

// Range is the temperature domain mapped onto the color ramp.
type Range struct {
	MinC float64
	MaxC float64
}

// DefaultRange is the ramp used by the display firmware.
var DefaultRange = Range{MinC: 30, MaxC: 90}

// Map converts a temperature into a blue → green → yellow → red color.
// Total over all inputs: out-of-range values are clamped, NaN maps to the cold end.
func Map(tempC float64, r Range) RGB565 {
	span := r.MaxC - r.MinC
	if span <= 0 || math.IsNaN(tempC) {
		return Pack(0, 0, 255)
	}

	t := math.Max(r.MinC, math.Min(r.MaxC, tempC))
	ratio := (t - r.MinC) / span

	var red, green, blue float64
	switch {
	case ratio < 1.0/3:
		k := ratio * 3
		green = 255 * k
		blue = 255 * (1 - k)
	case ratio < 2.0/3:
		k := (ratio - 1.0/3) * 3
		red = 255 * k
		green = 255
	default:
		k := (ratio - 2.0/3) * 3
		red = 255
		green = 255 * (1 - k)
	}

	return Pack(channel(red), channel(green), channel(blue))
}

// Pack folds 8-bit channels into RGB565, dropping the low bits.
func Pack(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b>>3))
}

// Channels returns the raw 5/6/5 channel values.
func (c RGB565) Channels() (r5, g6, b5 uint8) {
	return uint8(c >> 11), uint8(c>>5) & 0x3F, uint8(c) & 0x1F
}

// RGB expands the color back to 8-bit channels (low bits zero).
func (c RGB565) RGB() (r, g, b uint8) {
	r5, g6, b5 := c.Channels()
	return r5 << 3, g6 << 2, b5 << 3
}

// Hex renders the color as #rrggbb.
func (c RGB565) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// channel truncates toward zero and keeps the value within a byte.
func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
