package repositories

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"wada-stylist/internal/domain/valueobjects"
)

func newPNG(t *testing.T) *valueobjects.ImageData {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 210, G: 37, B: 46, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}

	data, err := valueobjects.NewImageData(buf.Bytes(), "image/png")
	if err != nil {
		t.Fatalf("NewImageData() error = %v", err)
	}
	return data
}
