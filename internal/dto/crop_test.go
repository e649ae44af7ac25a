package dto

import "testing"

func TestCropRegionEmpty(t *testing.T) {
	var nilRegion *CropRegion
	if !nilRegion.Empty() {
		t.Fatalf("nil region must be empty")
	}
	if !(&CropRegion{Unit: Percent, Width: 0, Height: 50}).Empty() {
		t.Fatalf("zero width must be empty")
	}
	if !(&CropRegion{Unit: Pixel, Width: 10, Height: -1}).Empty() {
		t.Fatalf("negative height must be empty")
	}
	if (&CropRegion{Unit: Pixel, Width: 10, Height: 10}).Empty() {
		t.Fatalf("positive region must not be empty")
	}
}

func TestCropRegionNormalizeTo(t *testing.T) {
	r := CropRegion{Unit: Percent, X: 25, Y: 50, Width: 50, Height: 25}
	n := r.NormalizeTo(400, 200)

	if n.Unit != Pixel {
		t.Fatalf("expected pixel unit, got %s", n.Unit)
	}
	if n.X != 100 || n.Y != 100 || n.Width != 200 || n.Height != 50 {
		t.Fatalf("unexpected normalized region: %+v", n)
	}

	// Pixel regions pass through untouched.
	px := CropRegion{Unit: Pixel, X: 10, Y: 20, Width: 30, Height: 40}
	if got := px.NormalizeTo(400, 200); got != px {
		t.Fatalf("pixel region changed: %+v", got)
	}
}

func TestCropRegionToNative(t *testing.T) {
	// Image rendered at half its native size: rendered coords double.
	r := CropRegion{Unit: Pixel, X: 10, Y: 20, Width: 100, Height: 50}
	x, y, w, h := r.ToNative(800, 600, 400, 300)

	if x != 20 || y != 40 || w != 200 || h != 100 {
		t.Fatalf("unexpected native rect: %d,%d %dx%d", x, y, w, h)
	}
}

func TestCropRegionToNativeRounds(t *testing.T) {
	// Non-integer scale must round, not truncate.
	r := CropRegion{Unit: Pixel, X: 1, Y: 1, Width: 1, Height: 1}
	x, y, w, h := r.ToNative(3, 3, 2, 2)

	if x != 2 || y != 2 || w != 2 || h != 2 {
		t.Fatalf("expected 1*1.5 to round to 2, got %d,%d %dx%d", x, y, w, h)
	}
}
