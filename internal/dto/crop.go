package dto

import "math"

// CropUnit tags a CropRegion as percentage-of-rendered-image or
// absolute rendered pixels. Keeping the unit explicit and normalizing
// once avoids silent unit-mismatch bugs.
type CropUnit string

const (
	Percent CropUnit = "%"
	Pixel   CropUnit = "px"
)

// CropRegion is a user-chosen rectangular sub-area of the displayed
// image, in rendered-space coordinates.
type CropRegion struct {
	Unit   CropUnit `json:"unit"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
}

// Empty reports whether the region selects nothing. An empty completed
// region means the user is still cropping, never an error.
func (r *CropRegion) Empty() bool {
	return r == nil || r.Width <= 0 || r.Height <= 0
}

// NormalizeTo resolves the region to rendered pixels against the
// dimensions the image was displayed at.
func (r CropRegion) NormalizeTo(renderedW, renderedH float64) CropRegion {
	if r.Unit == Pixel {
		return r
	}

	return CropRegion{
		Unit:   Pixel,
		X:      r.X / 100 * renderedW,
		Y:      r.Y / 100 * renderedH,
		Width:  r.Width / 100 * renderedW,
		Height: r.Height / 100 * renderedH,
	}
}

// ToNative maps a rendered-pixel region into native-pixel space given
// the scale between the image's native and rendered dimensions.
func (r CropRegion) ToNative(nativeW, nativeH, renderedW, renderedH float64) (x, y, w, h int) {
	scaleX := nativeW / renderedW
	scaleY := nativeH / renderedH

	x = int(math.Round(r.X * scaleX))
	y = int(math.Round(r.Y * scaleY))
	w = int(math.Round(r.Width * scaleX))
	h = int(math.Round(r.Height * scaleY))

	return x, y, w, h
}
