package capture

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func decodeMagnified(t *testing.T, result *MagnifyResult) image.Image {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	return img
}

func TestMagnify(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := Magnify(img, 50, 50, 2, 4)
	if err != nil {
		t.Fatalf("Magnify failed: %v", err)
	}

	if result.Region != (Region{X1: 48, Y1: 48, X2: 53, Y2: 53}) {
		t.Errorf("Region: got %+v", result.Region)
	}
	if result.Width != 20 || result.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 20x20", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if result.CenterColor.Hex != "#FFFFFF" {
		t.Errorf("CenterColor: got %s, want #FFFFFF", result.CenterColor.Hex)
	}

	out := decodeMagnified(t, result)
	if out.Bounds().Dx() != 20 || out.Bounds().Dy() != 20 {
		t.Fatalf("decoded size: got %v", out.Bounds())
	}

	// source pixel (48,48) is red and becomes the top-left 4x4 block;
	// (52,52) is white and becomes the bottom-right block
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, color.RGBA{255, 0, 0, 255}},
		{3, 3, color.RGBA{255, 0, 0, 255}},
		{19, 0, color.RGBA{0, 255, 0, 255}},
		{0, 19, color.RGBA{0, 0, 255, 255}},
		{19, 19, color.RGBA{255, 255, 255, 255}},
	}
	for _, c := range checks {
		got := color.RGBAModel.Convert(out.At(c.x, c.y)).(color.RGBA)
		if got != c.want {
			t.Errorf("pixel (%d,%d): got %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestMagnify_ClipsToImage(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{10, 20, 30, 255})

	result, err := Magnify(img, 0, 0, 3, 2)
	if err != nil {
		t.Fatalf("Magnify failed: %v", err)
	}
	if result.Region != (Region{X1: 0, Y1: 0, X2: 4, Y2: 4}) {
		t.Errorf("Region: got %+v", result.Region)
	}
	if result.Width != 8 || result.Height != 8 {
		t.Errorf("dimensions: got %dx%d, want 8x8", result.Width, result.Height)
	}
}

func TestMagnify_ZoomOne(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{10, 20, 30, 255})

	result, err := Magnify(img, 5, 5, 0, 1)
	if err != nil {
		t.Fatalf("Magnify failed: %v", err)
	}
	if result.Width != 1 || result.Height != 1 {
		t.Errorf("dimensions: got %dx%d, want 1x1", result.Width, result.Height)
	}
}

func TestMagnify_Errors(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{10, 20, 30, 255})

	tests := []struct {
		name                 string
		cx, cy, radius, zoom int
	}{
		{"center outside", 10, 5, 2, 2},
		{"negative radius", 5, 5, -1, 2},
		{"radius too large", 5, 5, MaxMagnifyRadius + 1, 2},
		{"zero zoom", 5, 5, 2, 0},
		{"zoom too large", 5, 5, 2, MaxMagnifyZoom + 1},
		{"output too large", 5, 5, MaxMagnifyRadius, MaxMagnifyZoom},
		{"output just over limit", 5, 5, 32, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Magnify(img, tt.cx, tt.cy, tt.radius, tt.zoom); err == nil {
				t.Error("Magnify should fail")
			}
		})
	}
}

func TestMagnify_OutputLimit(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{10, 20, 30, 255})

	// 63*32 = 2016 fits, 65*32 = 2080 does not
	result, err := Magnify(img, 50, 50, 31, 32)
	if err != nil {
		t.Fatalf("Magnify failed: %v", err)
	}
	if result.Width != 2016 || result.Height != 2016 {
		t.Errorf("dimensions: got %dx%d, want 2016x2016", result.Width, result.Height)
	}

	if _, err := Magnify(img, 50, 50, 32, 32); err == nil {
		t.Error("Magnify should reject output larger than MaxMagnifyOutput")
	}
	if _, err := Magnify(img, 50, 50, MaxMagnifyRadius, MaxMagnifyZoom); err == nil {
		t.Error("Magnify should reject the largest radius at the largest zoom")
	}
}
