package infrastructure

import (
	"context"
	"image"

	"github.com/velenyx/sporthub/internal/entity"
)

type (
	// Rasterizer is the CPU side of the crop surface.
	Rasterizer interface {
		Decode(data []byte) (image.Image, int, int, error)
		Crop(ctx context.Context, contentType string, data []byte, x, y, w, h int) ([]byte, error)
		Thumbnail(ctx context.Context, contentType string, data []byte) ([]byte, error)
		Stamp(ctx context.Context, contentType string, data []byte, text string) ([]byte, error)
	}

	EventsSender interface {
		SendEvents(ctx context.Context, events []*entity.OutboxEvent) error
		Close() error
	}
)
