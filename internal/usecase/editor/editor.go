package editor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/dto"
	"github.com/velenyx/sporthub/internal/session"
	"github.com/velenyx/sporthub/internal/usecase"
	"github.com/velenyx/sporthub/internal/usecase/picture"
	"github.com/velenyx/sporthub/pkg/logger"
	"github.com/velenyx/sporthub/pkg/types/errs"
)

// State is the editor's position in the selection/crop/upload flow.
type State string

const (
	Idle         State = "idle"
	Selecting    State = "selecting"
	PreviewReady State = "preview_ready"
	Cropping     State = "cropping"
	Uploading    State = "uploading"
)

// Config parameterizes one editor call site. Shape and aspect ratio
// only constrain the crop UI; the output is always rectangular.
type Config struct {
	Bucket       string
	AspectRatio  float64
	Shape        dto.CropShape
	MaxFileSize  int64
	StoreTimeout time.Duration
}

// Binding ties an editor instance to its owner record: where the prior
// URL is read from, where the new URL is written, and an optional text
// stamped onto the payload before upload.
type Binding struct {
	RecordID  uuid.UUID
	PriorURL  func(ctx context.Context) (string, error)
	Attach    func(ctx context.Context, url string) error
	StampText func(ctx context.Context) (string, error)
}

// Editor owns the pipeline state machine for a single owner record.
// Only one upload may be in flight per instance; independent editors
// run concurrently without shared state.
type Editor struct {
	cfg     Config
	binding Binding

	cropper  usecase.CropperUseCase
	picture  usecase.PictureUseCase
	sessions *session.Holder
	logger   logger.Interface

	mu         sync.Mutex
	state      State
	preview    *dto.Preview
	draft      *dto.CropRegion
	completed  *dto.CropRegion
	currentURL string
	lastErr    string
}

func New(
	cfg Config,
	binding Binding,
	cropper usecase.CropperUseCase,
	picture usecase.PictureUseCase,
	sessions *session.Holder,
	l logger.Interface,
) *Editor {
	return &Editor{
		cfg:      cfg,
		binding:  binding,
		cropper:  cropper,
		picture:  picture,
		sessions: sessions,
		logger:   l,
		state:    Idle,
	}
}

func (e *Editor) Config() Config {
	return e.cfg
}

func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Err returns the message retained from the last failed attempt.
func (e *Editor) Err() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.lastErr
}

// CurrentURL is the in-memory view of the owner record's URL field,
// updated on successful upload.
func (e *Editor) CurrentURL() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.currentURL
}

// Preview returns the decoded selection, nil when none is loaded.
func (e *Editor) Preview() *dto.Preview {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.preview
}

// Select validates the chosen file and loads its preview. An invalid
// file returns the editor to Idle with the message retained and no
// network calls made.
func (e *Editor) Select(data []byte, contentType string, size int64, name string) error {
	e.mu.Lock()
	if e.state == Uploading {
		e.mu.Unlock()
		return fmt.Errorf("Editor - Select: %w", errs.ErrBusy)
	}
	e.state = Selecting
	e.mu.Unlock()

	if err := picture.ValidateFile(contentType, size, e.cfg.MaxFileSize, name); err != nil {
		e.fail(err)
		return fmt.Errorf("Editor - Select - ValidateFile: %w", err)
	}

	preview, err := e.cropper.LoadPreview(data, contentType)
	if err != nil {
		e.fail(err)
		return fmt.Errorf("Editor - Select - e.cropper.LoadPreview: %w", err)
	}

	e.mu.Lock()
	e.preview = preview
	e.draft = nil
	e.completed = nil
	e.state = PreviewReady
	e.lastErr = ""
	e.mu.Unlock()

	return nil
}

// Region records an in-progress adjustment. The draft is visible in the
// editor state but cannot be uploaded; CompleteRegion promotes one.
func (e *Editor) Region(r dto.CropRegion) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != PreviewReady && e.state != Cropping {
		return
	}

	e.draft = &r
	e.state = Cropping
}

// Draft returns the last in-progress region, nil when none.
func (e *Editor) Draft() *dto.CropRegion {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.draft
}

// CompleteRegion records the finished region and enables confirm.
func (e *Editor) CompleteRegion(r dto.CropRegion) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != PreviewReady && e.state != Cropping {
		return
	}

	e.draft = &r
	e.completed = &r
	e.state = Cropping
}

// Cancel discards the selected file and crop state. Nothing durable has
// happened yet, so there is nothing to undo. Cancelling an in-flight
// upload is not supported.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Uploading {
		return
	}

	e.preview = nil
	e.draft = nil
	e.completed = nil
	e.state = Idle
}

// Confirm rasterizes the completed region and runs the store/attach
// sequence. No payload (user still cropping) is a no-op, not a failure.
// On success the in-memory owner URL is updated and the editor returns
// to Idle; on failure the error message is retained, ephemeral state is
// discarded, and durable state is left as it was (modulo the accepted
// orphaned-object window when only the attach failed).
func (e *Editor) Confirm(ctx context.Context, renderedW, renderedH float64) (string, error) {
	e.mu.Lock()
	if e.state == Uploading {
		e.mu.Unlock()
		return "", fmt.Errorf("Editor - Confirm: %w", errs.ErrBusy)
	}
	if e.preview == nil {
		e.mu.Unlock()
		return "", nil
	}
	preview := e.preview
	completed := e.completed
	resume := e.state
	// Claim the upload slot inside the same critical section as the
	// busy check; everything after this line runs with the slot held.
	e.state = Uploading
	e.mu.Unlock()

	payload, err := e.cropper.Confirm(ctx, preview, completed, renderedW, renderedH)
	if err != nil {
		e.fail(err)
		return "", fmt.Errorf("Editor - Confirm - e.cropper.Confirm: %w", err)
	}
	if payload == nil {
		// still cropping, release the slot
		e.setState(resume)
		return "", nil
	}

	ownerID, ok := e.sessions.Current()
	if !ok {
		err = fmt.Errorf("Editor - Confirm: %w", errs.ErrNoSession)
		e.fail(err)
		return "", err
	}

	if e.cfg.StoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.StoreTimeout)
		defer cancel()
	}

	url, err := e.upload(ctx, payload, ownerID)
	if err != nil {
		e.fail(err)
		return "", err
	}

	e.mu.Lock()
	e.currentURL = url
	e.preview = nil
	e.draft = nil
	e.completed = nil
	e.lastErr = ""
	e.state = Idle
	e.mu.Unlock()

	return url, nil
}

func (e *Editor) setState(s State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = s
}

func (e *Editor) upload(ctx context.Context, payload *dto.Payload, ownerID uuid.UUID) (string, error) {
	// 1. read the owner record once for the prior URL
	priorURL, err := e.binding.PriorURL(ctx)
	if err != nil {
		return "", fmt.Errorf("Editor - upload - e.binding.PriorURL: %w", err)
	}

	// 2. optional decoration before upload
	if e.binding.StampText != nil {
		text, stampErr := e.binding.StampText(ctx)
		if stampErr != nil {
			e.logger.Warn("editor: stamp text unavailable, uploading unstamped: %v", stampErr)
		} else if text != "" {
			stamped, stampErr := e.cropper.Stamp(ctx, payload, text)
			if stampErr != nil {
				e.logger.Warn("editor: stamping failed, uploading unstamped: %v", stampErr)
			} else {
				payload = stamped
			}
		}
	}

	// 3. delete-old / upload-new / resolve URL
	url, err := e.picture.Store(ctx, payload, ownerID, e.cfg.Bucket, priorURL)
	if err != nil {
		return "", fmt.Errorf("Editor - upload - e.picture.Store: %w", err)
	}

	// 4. persist the reference; a failure here leaves the uploaded
	// object in place and the record unchanged
	err = e.binding.Attach(ctx, url)
	if err != nil {
		return "", fmt.Errorf("Editor - upload - e.binding.Attach: %w", err)
	}

	return url, nil
}

func (e *Editor) fail(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastErr = err.Error()
	e.preview = nil
	e.draft = nil
	e.completed = nil
	e.state = Idle
}
