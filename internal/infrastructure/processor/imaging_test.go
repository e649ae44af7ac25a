package processor

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/velenyx/sporthub/pkg/types/errs"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	p := New()

	_, w, h, err := p.Decode(testPNG(t, 320, 240))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if w != 320 || h != 240 {
		t.Fatalf("unexpected dims %dx%d", w, h)
	}
}

func TestDecodeGarbage(t *testing.T) {
	p := New()

	_, _, _, err := p.Decode([]byte("definitely not an image"))
	if !errors.Is(err, errs.ErrPreviewUnavailable) {
		t.Fatalf("expected ErrPreviewUnavailable, got %v", err)
	}
}

func TestCrop(t *testing.T) {
	p := New()

	out, err := p.Crop(context.Background(), "image/png", testPNG(t, 400, 300), 50, 40, 200, 100)
	if err != nil {
		t.Fatalf("crop failed: %v", err)
	}

	_, w, h, err := p.Decode(out)
	if err != nil {
		t.Fatalf("crop output not decodable: %v", err)
	}
	if w != 200 || h != 100 {
		t.Fatalf("expected 200x100 crop, got %dx%d", w, h)
	}
}

func TestThumbnail(t *testing.T) {
	p := New()

	out, err := p.Thumbnail(context.Background(), "image/png", testPNG(t, 640, 480))
	if err != nil {
		t.Fatalf("thumbnail failed: %v", err)
	}

	_, w, h, err := p.Decode(out)
	if err != nil {
		t.Fatalf("thumbnail output not decodable: %v", err)
	}
	if w != 150 || h != 150 {
		t.Fatalf("expected 150x150 thumbnail, got %dx%d", w, h)
	}
}

func TestStamp(t *testing.T) {
	p := New()
	src := testPNG(t, 300, 200)

	out, err := p.Stamp(context.Background(), "image/png", src, "Jordan Lee")
	if err != nil {
		t.Fatalf("stamp failed: %v", err)
	}

	_, w, h, err := p.Decode(out)
	if err != nil {
		t.Fatalf("stamp output not decodable: %v", err)
	}
	if w != 300 || h != 200 {
		t.Fatalf("stamping must not resize, got %dx%d", w, h)
	}
	if bytes.Equal(out, src) {
		t.Fatalf("stamped image should differ from the source")
	}
}
