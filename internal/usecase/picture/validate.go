package picture

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/velenyx/sporthub/pkg/types/errs"
)

var (
	allowedContentTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
	}

	allowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".webp": true,
	}
)

// ValidateFile is the pure pre-crop check: image MIME from the allowed
// set, non-empty, and within maxSize. It performs no I/O; callers must
// not advance to cropping on failure.
func ValidateFile(contentType string, size, maxSize int64, name string) error {
	if !allowedContentTypes[strings.ToLower(contentType)] {
		return fmt.Errorf("unsupported file type %q, allowed: jpeg, png, webp: %w", contentType, errs.ErrInvalidFileKind)
	}

	if ext := strings.ToLower(filepath.Ext(name)); ext != "" && !allowedExtensions[ext] {
		return fmt.Errorf("unsupported file extension %q: %w", ext, errs.ErrInvalidFileKind)
	}

	if size == 0 {
		return fmt.Errorf("file is empty: %w", errs.ErrInvalidFileKind)
	}

	if size > maxSize {
		return fmt.Errorf("file size cant be more than %d bytes: %w", maxSize, errs.ErrInvalidFileKind)
	}

	return nil
}
