package charts

import (
	"fmt"
	"math"
)

// RGB is an 8-bit colour
type RGB struct {
	R, G, B uint8
}

// Neutral is the gray used for out-of-range markers and desaturation
var Neutral = RGB{128, 128, 128}

// Hex formats the colour as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// StarColor maps a rating onto the red-to-yellow marker scale:
// t=(stars-1)/4, r=255*t^0.5, g=255*t^1.5, b=0.
func StarColor(stars float64) RGB {
	t := math.Min(math.Max((stars-1)/4, 0), 1)
	return RGB{
		R: uint8(math.Round(255 * math.Pow(t, 0.5))),
		G: uint8(math.Round(255 * math.Pow(t, 1.5))),
		B: 0,
	}
}

// Blend mixes c toward target by share (0 keeps c, 1 yields target)
func Blend(c, target RGB, share float64) RGB {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a)*(1-share) + float64(b)*share))
	}
	return RGB{R: mix(c.R, target.R), G: mix(c.G, target.G), B: mix(c.B, target.B)}
}

// Desaturate blends c halfway toward neutral gray
func Desaturate(c RGB) RGB {
	return Blend(c, Neutral, 0.5)
}
