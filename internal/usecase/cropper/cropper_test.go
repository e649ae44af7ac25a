package cropper

import (
	"context"
	"image"
	"testing"

	"github.com/velenyx/sporthub/internal/dto"
)

type fakeRasterizer struct {
	nativeW, nativeH int

	cropX, cropY, cropW, cropH int
	cropCalls                  int
}

func (f *fakeRasterizer) Decode([]byte) (image.Image, int, int, error) {
	return nil, f.nativeW, f.nativeH, nil
}

func (f *fakeRasterizer) Crop(_ context.Context, _ string, _ []byte, x, y, w, h int) ([]byte, error) {
	f.cropX, f.cropY, f.cropW, f.cropH = x, y, w, h
	f.cropCalls++
	return []byte("cropped"), nil
}

func (f *fakeRasterizer) Thumbnail(_ context.Context, _ string, data []byte) ([]byte, error) {
	return data, nil
}

func (f *fakeRasterizer) Stamp(_ context.Context, _ string, data []byte, _ string) ([]byte, error) {
	return data, nil
}

func TestLoadPreview(t *testing.T) {
	uc := New(&fakeRasterizer{nativeW: 800, nativeH: 600})

	preview, err := uc.LoadPreview([]byte("img"), "image/png")
	if err != nil {
		t.Fatalf("load preview failed: %v", err)
	}
	if preview.NativeW != 800 || preview.NativeH != 600 {
		t.Fatalf("unexpected dims %dx%d", preview.NativeW, preview.NativeH)
	}
	if preview.ContentType != "image/png" {
		t.Fatalf("unexpected content type %q", preview.ContentType)
	}
}

func TestConfirmNoRegionIsNoop(t *testing.T) {
	r := &fakeRasterizer{nativeW: 800, nativeH: 600}
	uc := New(r)
	preview := &dto.Preview{NativeW: 800, NativeH: 600, ContentType: "image/png"}

	payload, err := uc.Confirm(context.Background(), preview, nil, 400, 300)
	if err != nil || payload != nil {
		t.Fatalf("nil region must be a no-op, got payload=%v err=%v", payload, err)
	}

	empty := &dto.CropRegion{Unit: dto.Percent, Width: 0, Height: 50}
	payload, err = uc.Confirm(context.Background(), preview, empty, 400, 300)
	if err != nil || payload != nil {
		t.Fatalf("empty region must be a no-op, got payload=%v err=%v", payload, err)
	}
	if r.cropCalls != 0 {
		t.Fatalf("no-op confirm must not rasterize")
	}
}

func TestConfirmMapsRenderedToNative(t *testing.T) {
	// Image rendered at half size: a percent region picked on screen
	// must cut double the pixels from the native image.
	r := &fakeRasterizer{nativeW: 800, nativeH: 600}
	uc := New(r)
	preview := &dto.Preview{NativeW: 800, NativeH: 600, ContentType: "image/jpeg"}
	region := &dto.CropRegion{Unit: dto.Percent, X: 25, Y: 25, Width: 50, Height: 50}

	payload, err := uc.Confirm(context.Background(), preview, region, 400, 300)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if payload == nil {
		t.Fatalf("expected a payload")
	}
	if r.cropX != 200 || r.cropY != 150 || r.cropW != 400 || r.cropH != 300 {
		t.Fatalf("unexpected native rect: %d,%d %dx%d", r.cropX, r.cropY, r.cropW, r.cropH)
	}
	if payload.ContentType != "image/jpeg" {
		t.Fatalf("payload must inherit the source content type, got %q", payload.ContentType)
	}
}

func TestConfirmSubpixelRegionIsNoop(t *testing.T) {
	// A region that rounds to zero native pixels is treated as still
	// cropping, not as an error.
	r := &fakeRasterizer{nativeW: 1, nativeH: 1}
	uc := New(r)
	preview := &dto.Preview{NativeW: 1, NativeH: 1, ContentType: "image/png"}
	region := &dto.CropRegion{Unit: dto.Pixel, X: 0, Y: 0, Width: 0.3, Height: 0.3}

	payload, err := uc.Confirm(context.Background(), preview, region, 1000, 1000)
	if err != nil || payload != nil {
		t.Fatalf("subpixel region must be a no-op, got payload=%v err=%v", payload, err)
	}
}

func TestConfirmRejectsBadRenderedDims(t *testing.T) {
	uc := New(&fakeRasterizer{nativeW: 800, nativeH: 600})
	preview := &dto.Preview{NativeW: 800, NativeH: 600, ContentType: "image/png"}
	region := &dto.CropRegion{Unit: dto.Percent, X: 0, Y: 0, Width: 100, Height: 100}

	if _, err := uc.Confirm(context.Background(), preview, region, 0, 300); err == nil {
		t.Fatalf("expected error for zero rendered width")
	}
}
