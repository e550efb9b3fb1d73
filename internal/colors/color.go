package colors

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// floatTolerance is the tolerance used when comparing normalised channel
// values. Distinct 8-bit channels differ by at least 1/255.
const floatTolerance = 1e-10

// RGB is a 24-bit color with 8-bit red, green and blue channels. Opacity is
// not part of the value; the opacity roles carry it in the red channel.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSL is a color in hue, saturation, lightness space. Every component is
// in [0,1]; hue wraps around.
type HSL struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// RGBA implements image/color.Color. The color is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Packed returns the platform color integer for c, laid out as 0x00BBGGRR.
// This is the representation written to profile stores.
func (c RGB) Packed() int {
	return int(c.R) | int(c.G)<<8 | int(c.B)<<16
}

// FromPacked decodes a platform color integer. Bits above the low 24 are
// ignored.
func FromPacked(v int) RGB {
	return RGB{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16)}
}

// Hex returns c formatted as "#RRGGBB".
func (c RGB) Hex() string {
	return strings.ToUpper(c.colorful().Hex())
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

// ParseHex parses a "#RRGGBB" or "#RGB" color.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// RGBToHSL converts an RGB color to HSL. Gray colors have hue and
// saturation 0.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	cmax := math.Max(r, math.Max(g, b))
	cmin := math.Min(r, math.Min(g, b))

	l := (cmax + cmin) / 2.0
	if floatEqual(cmax, cmin) {
		// hue is undefined for grays
		return HSL{Hue: 0, Saturation: 0, Lightness: l}
	}

	var s float64
	if l < 0.5 {
		s = (cmax - cmin) / (cmax + cmin)
	} else {
		s = (cmax - cmin) / (2.0 - cmax - cmin)
	}

	delta := cmax - cmin
	var h float64
	switch {
	case floatEqual(r, cmax):
		h = (g - b) / delta
	case floatEqual(g, cmax):
		h = 2.0 + (b-r)/delta
	default:
		h = 4.0 + (r-g)/delta
	}
	h /= 6.0
	if h < 0.0 {
		h += 1.0
	}

	return HSL{Hue: h, Saturation: s, Lightness: l}
}

// HueToRGB computes one channel from the intermediate values m1 and m2 at
// hue h. h is wrapped once into [0,1].
func HueToRGB(m1, m2, h float64) float64 {
	if h < 0.0 {
		h += 1.0
	}
	if h > 1.0 {
		h -= 1.0
	}
	switch {
	case 6.0*h < 1.0:
		return m1 + (m2-m1)*h*6.0
	case 2.0*h < 1.0:
		return m2
	case 3.0*h < 2.0:
		return m1 + (m2-m1)*(2.0/3.0-h)*6.0
	}
	return m1
}

// HSLToRGB converts an HSL color to RGB. Channels are scaled to [0,255]
// and truncated, so a round trip through RGBToHSL may be off by one.
func HSLToRGB(hsl HSL) RGB {
	var r, g, b float64

	if hsl.Saturation == 0.0 {
		r, g, b = hsl.Lightness, hsl.Lightness, hsl.Lightness
	} else {
		var m2 float64
		if hsl.Lightness <= 0.5 {
			m2 = hsl.Lightness * (1.0 + hsl.Saturation)
		} else {
			m2 = hsl.Lightness + hsl.Saturation - hsl.Lightness*hsl.Saturation
		}
		m1 := 2.0*hsl.Lightness - m2

		r = HueToRGB(m1, m2, hsl.Hue+1.0/3.0)
		g = HueToRGB(m1, m2, hsl.Hue)
		b = HueToRGB(m1, m2, hsl.Hue-1.0/3.0)
	}

	return RGB{R: toChannel(r), G: toChannel(g), B: toChannel(b)}
}

// Interpolate blends start toward end by percent (0-100) in HSL space. Each
// HSL component is interpolated linearly; hue does not take the shorter way
// around the wheel. 0 and 100 return the endpoints unchanged.
func Interpolate(start, end RGB, percent int) RGB {
	if percent == 0 {
		return start
	}
	if percent == 100 {
		return end
	}

	lerp := func(a, b float64) float64 {
		return a + (b-a)*float64(percent)/100.0
	}

	s := RGBToHSL(start)
	e := RGBToHSL(end)

	return HSLToRGB(HSL{
		Hue:        lerp(s.Hue, e.Hue),
		Saturation: lerp(s.Saturation, e.Saturation),
		Lightness:  lerp(s.Lightness, e.Lightness),
	})
}

// toChannel truncates a [0,1] component to a byte, clamping stray
// floating point overshoot.
func toChannel(v float64) uint8 {
	v *= 255
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTolerance
}
