package capture

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// Magnifier limits. MaxMagnifyOutput bounds the side of the enlarged
// square, (2*radius+1)*zoom.
const (
	MaxMagnifyZoom   = 32
	MaxMagnifyRadius = 256
	MaxMagnifyOutput = 2048
)

// MagnifyResult holds an enlarged view of the pixels around a point.
type MagnifyResult struct {
	Region      Region      `json:"region"`       // source pixels shown, clipped to the image
	Zoom        int         `json:"zoom"`         // output pixels per source pixel
	Width       int         `json:"width"`        // output width
	Height      int         `json:"height"`       // output height
	CenterColor ColorResult `json:"center_color"` // color under the center point
	ImageBase64 string      `json:"image_base64"`
	MimeType    string      `json:"mime_type"`
}

// Magnify crops a square of side 2*radius+1 centred on (cx, cy) and
// enlarges it zoom times with nearest-neighbour resampling, so each source
// pixel becomes a zoom×zoom block. The square is clipped to the image; the
// centre itself must be inside it. Requests whose unclipped output would
// exceed MaxMagnifyOutput on a side are rejected.
func Magnify(img image.Image, cx, cy, radius, zoom int) (*MagnifyResult, error) {
	if radius < 0 || radius > MaxMagnifyRadius {
		return nil, fmt.Errorf("radius %d out of range 0-%d", radius, MaxMagnifyRadius)
	}
	if zoom < 1 || zoom > MaxMagnifyZoom {
		return nil, fmt.Errorf("zoom %d out of range 1-%d", zoom, MaxMagnifyZoom)
	}
	if side := (2*radius + 1) * zoom; side > MaxMagnifyOutput {
		return nil, fmt.Errorf("magnified view %dx%d exceeds %dx%d, reduce radius or zoom",
			side, side, MaxMagnifyOutput, MaxMagnifyOutput)
	}

	center, err := SampleColor(img, cx, cy)
	if err != nil {
		return nil, err
	}

	rect := image.Rect(cx-radius, cy-radius, cx+radius+1, cy+radius+1).Intersect(img.Bounds())

	view := imaging.Crop(img, rect)
	if zoom > 1 {
		view = imaging.Resize(view, rect.Dx()*zoom, rect.Dy()*zoom, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to encode magnified image: %w", err)
	}

	return &MagnifyResult{
		Region:      Region{X1: rect.Min.X, Y1: rect.Min.Y, X2: rect.Max.X, Y2: rect.Max.Y},
		Zoom:        zoom,
		Width:       view.Bounds().Dx(),
		Height:      view.Bounds().Dy(),
		CenterColor: *center,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
