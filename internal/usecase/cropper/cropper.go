package cropper

import (
	"context"
	"fmt"

	"github.com/velenyx/sporthub/internal/dto"
	"github.com/velenyx/sporthub/internal/infrastructure"
	"github.com/velenyx/sporthub/pkg/types/errs"
)

type UseCase struct {
	r infrastructure.Rasterizer
}

func New(r infrastructure.Rasterizer) *UseCase {
	return &UseCase{r}
}

// LoadPreview reads the selected file's bytes into a renderable
// preview: the decoded native dimensions plus the retained bytes.
func (uc *UseCase) LoadPreview(data []byte, contentType string) (*dto.Preview, error) {
	_, w, h, err := uc.r.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("CropperUseCase - LoadPreview: %w", err)
	}

	return &dto.Preview{
		Data:        data,
		ContentType: contentType,
		NativeW:     w,
		NativeH:     h,
	}, nil
}

// Confirm rasterizes the completed region. A nil or empty region means
// the user is still cropping: no payload, no error, any number of
// times. The region arrives in rendered-space and is mapped into
// native-pixel space before cutting.
func (uc *UseCase) Confirm(ctx context.Context, preview *dto.Preview, completed *dto.CropRegion, renderedW, renderedH float64) (*dto.Payload, error) {
	if completed.Empty() {
		return nil, nil
	}

	if renderedW <= 0 || renderedH <= 0 {
		return nil, fmt.Errorf("CropperUseCase - Confirm - rendered dimensions must be positive: %w", errs.ErrPreviewUnavailable)
	}

	region := completed.NormalizeTo(renderedW, renderedH)
	x, y, w, h := region.ToNative(float64(preview.NativeW), float64(preview.NativeH), renderedW, renderedH)
	if w <= 0 || h <= 0 {
		return nil, nil
	}

	data, err := uc.r.Crop(ctx, preview.ContentType, preview.Data, x, y, w, h)
	if err != nil {
		return nil, fmt.Errorf("CropperUseCase - Confirm - uc.r.Crop: %w", err)
	}

	return &dto.Payload{
		Data:        data,
		ContentType: preview.ContentType,
	}, nil
}

func (uc *UseCase) Thumbnail(ctx context.Context, payload *dto.Payload) (*dto.Payload, error) {
	data, err := uc.r.Thumbnail(ctx, payload.ContentType, payload.Data)
	if err != nil {
		return nil, fmt.Errorf("CropperUseCase - Thumbnail - uc.r.Thumbnail: %w", err)
	}

	return &dto.Payload{Data: data, ContentType: payload.ContentType}, nil
}

func (uc *UseCase) Stamp(ctx context.Context, payload *dto.Payload, text string) (*dto.Payload, error) {
	data, err := uc.r.Stamp(ctx, payload.ContentType, payload.Data, text)
	if err != nil {
		return nil, fmt.Errorf("CropperUseCase - Stamp - uc.r.Stamp: %w", err)
	}

	return &dto.Payload{Data: data, ContentType: payload.ContentType}, nil
}
