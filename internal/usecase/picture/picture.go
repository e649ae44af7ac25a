package picture

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/dto"
	"github.com/velenyx/sporthub/internal/repo"
	"github.com/velenyx/sporthub/pkg/logger"
	"github.com/velenyx/sporthub/pkg/types/errs"
)

type UseCase struct {
	objects repo.ObjectRepo

	logger logger.Interface
}

func New(objects repo.ObjectRepo, l logger.Interface) *UseCase {
	return &UseCase{
		objects: objects,
		logger:  l,
	}
}

// Store runs the upload pipeline for one confirmed crop:
// delete the prior object best-effort, upload the new one, resolve its
// public URL. Delete and upload are not tied transactionally - a failed
// delete followed by a successful upload leaves an orphaned old object,
// which is an accepted leak.
func (uc *UseCase) Store(ctx context.Context, payload *dto.Payload, ownerID uuid.UUID, bucket, priorURL string) (string, error) {
	key := objectKey(ownerID, payload.ContentType)

	// 1. best-effort delete of the prior object; never aborts the operation
	if priorURL != "" {
		if oldKey, ok := keyFromURL(bucket, priorURL); ok {
			err := uc.objects.Remove(ctx, bucket, []string{oldKey})
			if err != nil {
				uc.logger.Warn("failed to delete old object, bucket=%s key=%s, error=%v", bucket, oldKey, err)
			}
		}
	}

	// 2. upload - the primary failure point, fatal to the operation
	err := uc.objects.Upload(ctx, bucket, key, payload.Data, payload.ContentType)
	if err != nil {
		return "", fmt.Errorf("PictureUseCase - Store - uc.objects.Upload: %w: %w", errs.ErrStorage, err)
	}

	// 3. resolve the durable URL from the storage service itself
	url, err := uc.objects.PublicURL(bucket, key)
	if err != nil {
		return "", fmt.Errorf("PictureUseCase - Store - uc.objects.PublicURL: %w: %w", errs.ErrStorage, err)
	}

	return url, nil
}

// Fetch downloads the object a stored public URL points at. The key is
// recovered with the same bucket-aware derivation Store uses for
// delete-old.
func (uc *UseCase) Fetch(ctx context.Context, bucket, url string) (*dto.Payload, error) {
	key, ok := keyFromURL(bucket, url)
	if !ok {
		return nil, fmt.Errorf("PictureUseCase - Fetch - keyFromURL: %w", errs.ErrRecordNotFound)
	}

	data, err := uc.objects.DownloadBytes(ctx, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("PictureUseCase - Fetch - uc.objects.DownloadBytes: %w: %w", errs.ErrStorage, err)
	}

	return &dto.Payload{
		Data:        data,
		ContentType: contentTypeFromKey(key),
	}, nil
}
