package processor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/velenyx/sporthub/pkg/types/errs"
)

const (
	thumbWidth  = 150
	thumbHeight = 150
)

type Rasterizer struct {
}

func New() *Rasterizer {
	return &Rasterizer{}
}

// Decode returns the image and its native bounds. A file that cannot be
// decoded has no preview, which is fatal to the selecting step.
func (p *Rasterizer) Decode(data []byte) (image.Image, int, int, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("Rasterizer - Decode - imaging.Decode: %w", errs.ErrPreviewUnavailable)
	}

	b := img.Bounds()

	return img, b.Dx(), b.Dy(), nil
}

// Crop rasterizes exactly the native-pixel sub-rectangle (x, y, w, h)
// into a new w×h image and re-encodes it in the source content type.
func (p *Rasterizer) Crop(ctx context.Context, contentType string, data []byte, x, y, w, h int) ([]byte, error) {
	img, _, _, err := p.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("Rasterizer - Crop: %w", err)
	}

	cropped := imaging.Crop(img, image.Rect(x, y, x+w, y+h))

	res, err := encodeImage(cropped, contentType)
	if err != nil {
		return nil, fmt.Errorf("Rasterizer - Crop - encodeImage: %w", err)
	}

	return res, nil
}

// Thumbnail produces the small square avatar rendition written through
// alongside full-size profile pictures.
func (p *Rasterizer) Thumbnail(ctx context.Context, contentType string, data []byte) ([]byte, error) {
	img, _, _, err := p.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("Rasterizer - Thumbnail: %w", err)
	}

	thumb := imaging.Thumbnail(img, thumbWidth, thumbHeight, imaging.Lanczos)

	res, err := encodeImage(thumb, contentType)
	if err != nil {
		return nil, fmt.Errorf("Rasterizer - Thumbnail - encodeImage: %w", err)
	}

	return res, nil
}

// Stamp draws the player's display name into the bottom-right corner of
// a card image.
func (p *Rasterizer) Stamp(ctx context.Context, contentType string, data []byte, text string) ([]byte, error) {
	img, _, _, err := p.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("Rasterizer - Stamp: %w", err)
	}

	rgba := imaging.Clone(img)

	d := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
	}

	bounds := rgba.Bounds()
	textWidth := d.MeasureString(text).Round()

	d.Dot = fixed.P(
		bounds.Max.X-textWidth-10,
		bounds.Max.Y-20,
	)

	d.DrawString(text)

	res, err := encodeImage(rgba, contentType)
	if err != nil {
		return nil, fmt.Errorf("Rasterizer - Stamp - encodeImage: %w", err)
	}

	return res, nil
}

func encodeImage(img image.Image, contentType string) ([]byte, error) {
	var buf bytes.Buffer
	var format imaging.Format

	switch contentType {
	case "image/jpeg", "image/jpg":
		format = imaging.JPEG
	case "image/png":
		format = imaging.PNG
	case "image/gif":
		format = imaging.GIF
	default:
		format = imaging.JPEG
	}

	err := imaging.Encode(&buf, img, format)
	if err != nil {
		return nil, fmt.Errorf("Rasterizer - encodeImage - imaging.Encode: %w", err)
	}

	return buf.Bytes(), nil
}
