package errs

import "errors"

var (
	// Pipeline error kinds.
	ErrInvalidFileKind    = errors.New("invalid file kind")
	ErrPreviewUnavailable = errors.New("preview unavailable")
	ErrStorage            = errors.New("object storage failure")
	ErrPersistence        = errors.New("record update failure")

	ErrRecordNotFound = errors.New("record not found")
	ErrNoSession      = errors.New("no active session")
	ErrBusy           = errors.New("upload already in flight")
	ErrUnknownEvent   = errors.New("unknown event kind")
)
