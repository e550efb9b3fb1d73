package capture

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/ironsheep/screen-measure-mcp/internal/colors"
)

// ColorResult describes a color in the forms the color finder shows.
type ColorResult struct {
	Hex     string     `json:"hex"`         // "#RRGGBB"
	RGB     colors.RGB `json:"rgb"`         // 8-bit channels
	Packed  int        `json:"packed"`      // platform color integer, 0x00BBGGRR
	HSL     colors.HSL `json:"hsl"`         // normalised HSL, each in [0,1]
	Display HSLReadout `json:"hsl_display"` // HSL in degrees and percent
	Alpha   uint8      `json:"alpha"`       // alpha of the sampled pixel
}

// HSLReadout is HSL in display units.
type HSLReadout struct {
	H int `json:"h"` // Hue: 0-359 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// NewColorResult describes c.
func NewColorResult(c colors.RGB) ColorResult {
	hsl := colors.RGBToHSL(c)
	return ColorResult{
		Hex:     c.Hex(),
		RGB:     c,
		Packed:  c.Packed(),
		HSL:     hsl,
		Alpha:   0xFF,
		Display: HSLReadout{
			H: int(hsl.Hue * 360),
			S: int(hsl.Saturation * 100),
			L: int(hsl.Lightness * 100),
		},
	}
}

// SampleColor returns the color of the pixel at (x, y).
//
// 16-bit images are reduced to 8 bits per channel by dropping the low byte.
// An error is returned if the coordinates are outside the image.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, a := img.At(x, y).RGBA()
	res := NewColorResult(colors.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
	res.Alpha = uint8(a >> 8)
	return &res, nil
}

// LabeledPoint is a pixel coordinate with an optional label.
type LabeledPoint struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

// LabeledColorResult is a color sample with its location and label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// SampleColorsMulti samples every point in order. If any point is out of
// bounds no partial result is returned.
func SampleColorsMulti(img image.Image, points []LabeledPoint) ([]LabeledColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}

	return results, nil
}

// Region is a rectangle of pixels. (X1,Y1) is inclusive, (X2,Y2) is
// exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// AverageResult is the mean color of a region.
type AverageResult struct {
	Region Region      `json:"region"`
	Pixels int         `json:"pixels"`
	Color  ColorResult `json:"color"`
}

// subImager is implemented by the standard image types, including the
// *image.YCbCr that JPEG captures decode to.
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// SampleAverage returns the mean color of the pixels in region. The region
// must lie inside the image and must not be empty.
//
// Channels are averaged in premultiplied RGBA, so translucent pixels
// contribute in proportion to their alpha and a partly transparent region
// reports darker channels alongside its mean Alpha. Opaque captures are
// unaffected.
func SampleAverage(img image.Image, region Region) (*AverageResult, error) {
	rect := region.Rect()
	if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
		return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	if !rect.In(img.Bounds()) {
		return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds",
			region.X1, region.Y1, region.X2, region.Y2)
	}

	// Narrow to the region first so transform.Crop converts only the
	// region's pixels rather than the whole capture.
	src := img
	if si, ok := img.(subImager); ok {
		src = si.SubImage(rect)
	}
	crop := transform.Crop(src, rect)

	var sr, sg, sb, sa uint64
	n := 0
	for i := 0; i+3 < len(crop.Pix); i += 4 {
		sr += uint64(crop.Pix[i])
		sg += uint64(crop.Pix[i+1])
		sb += uint64(crop.Pix[i+2])
		sa += uint64(crop.Pix[i+3])
		n++
	}

	res := NewColorResult(colors.RGB{
		R: uint8(sr / uint64(n)),
		G: uint8(sg / uint64(n)),
		B: uint8(sb / uint64(n)),
	})
	res.Alpha = uint8(sa / uint64(n))

	return &AverageResult{Region: region, Pixels: n, Color: res}, nil
}
