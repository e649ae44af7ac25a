package editor

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/dto"
	"github.com/velenyx/sporthub/internal/session"
	"github.com/velenyx/sporthub/pkg/types/errs"
)

type fakeCropper struct {
	loadCalls int

	confirmEntered chan struct{} // one token per Confirm entry
	confirmGate    chan struct{} // closed to release a parked Confirm
}

func (f *fakeCropper) LoadPreview(data []byte, contentType string) (*dto.Preview, error) {
	f.loadCalls++
	return &dto.Preview{Data: data, ContentType: contentType, NativeW: 800, NativeH: 600}, nil
}

func (f *fakeCropper) Confirm(_ context.Context, preview *dto.Preview, completed *dto.CropRegion, _, _ float64) (*dto.Payload, error) {
	if f.confirmEntered != nil {
		f.confirmEntered <- struct{}{}
	}
	if f.confirmGate != nil {
		<-f.confirmGate
	}
	if completed.Empty() {
		return nil, nil
	}
	return &dto.Payload{Data: preview.Data, ContentType: preview.ContentType}, nil
}

func (f *fakeCropper) Thumbnail(_ context.Context, p *dto.Payload) (*dto.Payload, error) {
	return p, nil
}

func (f *fakeCropper) Stamp(_ context.Context, p *dto.Payload, _ string) (*dto.Payload, error) {
	return p, nil
}

type fakePicture struct {
	mu          sync.Mutex
	storeCalls  int
	storeErr    error
	sawDeadline bool
	block       chan struct{}
}

func (f *fakePicture) Store(ctx context.Context, payload *dto.Payload, ownerID uuid.UUID, bucket, _ string) (string, error) {
	f.mu.Lock()
	f.storeCalls++
	_, f.sawDeadline = ctx.Deadline()
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.storeErr != nil {
		return "", f.storeErr
	}
	return "https://s3.local/" + bucket + "/" + ownerID.String() + "/1.png", nil
}

func (f *fakePicture) Fetch(context.Context, string, string) (*dto.Payload, error) {
	return nil, errs.ErrRecordNotFound
}

func (f *fakePicture) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.storeCalls
}

func (f *fakePicture) deadline() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sawDeadline
}

type record struct {
	mu       sync.Mutex
	url      string
	attachEr error
}

func testEditor(cropper *fakeCropper, picture *fakePicture, rec *record, sessions *session.Holder) *Editor {
	cfg := Config{
		Bucket:       "profile_pictures",
		AspectRatio:  1,
		Shape:        dto.ShapeRound,
		MaxFileSize:  1 << 20,
		StoreTimeout: time.Minute,
	}
	binding := Binding{
		RecordID: uuid.New(),
		PriorURL: func(context.Context) (string, error) {
			rec.mu.Lock()
			defer rec.mu.Unlock()
			return rec.url, nil
		},
		Attach: func(_ context.Context, url string) error {
			rec.mu.Lock()
			defer rec.mu.Unlock()
			if rec.attachEr != nil {
				return rec.attachEr
			}
			rec.url = url
			return nil
		},
	}
	return New(cfg, binding, cropper, picture, sessions, nopLogger{})
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})       {}
func (nopLogger) Warn(string, ...interface{})       {}
func (nopLogger) Error(interface{}, ...interface{}) {}
func (nopLogger) Fatal(interface{}, ...interface{}) {}

func TestSelectInvalidFile(t *testing.T) {
	cropper := &fakeCropper{}
	picture := &fakePicture{}
	ed := testEditor(cropper, picture, &record{}, session.NewHolder())

	err := ed.Select([]byte("%PDF"), "application/pdf", 4, "resume.pdf")
	if !errors.Is(err, errs.ErrInvalidFileKind) {
		t.Fatalf("expected ErrInvalidFileKind, got %v", err)
	}
	if ed.State() != Idle {
		t.Fatalf("invalid file must return the editor to idle, got %s", ed.State())
	}
	if ed.Err() == "" {
		t.Fatalf("expected the failure message to be retained")
	}
	if cropper.loadCalls != 0 || picture.calls() != 0 {
		t.Fatalf("invalid file must not reach decode or storage")
	}
}

func TestConfirmWithoutSelection(t *testing.T) {
	picture := &fakePicture{}
	ed := testEditor(&fakeCropper{}, picture, &record{}, session.NewHolder())

	url, err := ed.Confirm(context.Background(), 400, 300)
	if err != nil || url != "" {
		t.Fatalf("confirm without selection must be a no-op, got url=%q err=%v", url, err)
	}
	if picture.calls() != 0 {
		t.Fatalf("no-op confirm must not upload")
	}
}

func TestConfirmWithoutCompletedRegion(t *testing.T) {
	picture := &fakePicture{}
	ed := testEditor(&fakeCropper{}, picture, &record{}, session.NewHolder())

	if err := ed.Select([]byte("img"), "image/png", 3, "a.png"); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	url, err := ed.Confirm(context.Background(), 400, 300)
	if err != nil || url != "" {
		t.Fatalf("confirm while still cropping must be a no-op, got url=%q err=%v", url, err)
	}
	if picture.calls() != 0 {
		t.Fatalf("no payload means no upload")
	}
	if ed.State() != PreviewReady {
		t.Fatalf("no-op confirm must keep the preview, got %s", ed.State())
	}
}

func TestConfirmUploadsAndAttaches(t *testing.T) {
	picture := &fakePicture{}
	rec := &record{}
	sessions := session.NewHolder()
	sessions.Set(uuid.New())
	ed := testEditor(&fakeCropper{}, picture, rec, sessions)

	if err := ed.Select([]byte("img"), "image/png", 3, "a.png"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	ed.CompleteRegion(dto.CropRegion{Unit: dto.Percent, X: 10, Y: 10, Width: 80, Height: 80})

	url, err := ed.Confirm(context.Background(), 400, 300)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if url == "" {
		t.Fatalf("expected a url")
	}

	rec.mu.Lock()
	attached := rec.url
	rec.mu.Unlock()
	if attached != url {
		t.Fatalf("record url %q does not match returned url %q", attached, url)
	}
	if ed.State() != Idle {
		t.Fatalf("expected idle after upload, got %s", ed.State())
	}
	if ed.CurrentURL() != url {
		t.Fatalf("current url not updated")
	}
}

func TestConfirmWithoutSession(t *testing.T) {
	picture := &fakePicture{}
	ed := testEditor(&fakeCropper{}, picture, &record{}, session.NewHolder())

	if err := ed.Select([]byte("img"), "image/png", 3, "a.png"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	ed.CompleteRegion(dto.CropRegion{Unit: dto.Percent, X: 0, Y: 0, Width: 100, Height: 100})

	_, err := ed.Confirm(context.Background(), 400, 300)
	if !errors.Is(err, errs.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if picture.calls() != 0 {
		t.Fatalf("unauthenticated confirm must not upload")
	}
	if ed.State() != Idle {
		t.Fatalf("expected idle after failure, got %s", ed.State())
	}
}

func TestConfirmAttachFailureLeavesObject(t *testing.T) {
	picture := &fakePicture{}
	rec := &record{attachEr: errors.New("record vanished")}
	sessions := session.NewHolder()
	sessions.Set(uuid.New())
	ed := testEditor(&fakeCropper{}, picture, rec, sessions)

	if err := ed.Select([]byte("img"), "image/png", 3, "a.png"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	ed.CompleteRegion(dto.CropRegion{Unit: dto.Percent, X: 0, Y: 0, Width: 100, Height: 100})

	_, err := ed.Confirm(context.Background(), 400, 300)
	if err == nil {
		t.Fatalf("expected attach failure to surface")
	}
	// The upload happened; the orphaned object is the accepted cost.
	if picture.calls() != 1 {
		t.Fatalf("expected one upload, got %d", picture.calls())
	}
	if ed.State() != Idle {
		t.Fatalf("expected idle after failure, got %s", ed.State())
	}
	if ed.Err() == "" {
		t.Fatalf("expected the failure message to be retained")
	}
}

func TestRegionAdjustIsNotCompleted(t *testing.T) {
	picture := &fakePicture{}
	ed := testEditor(&fakeCropper{}, picture, &record{}, session.NewHolder())

	if err := ed.Select([]byte("img"), "image/png", 3, "a.png"); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	ed.Region(dto.CropRegion{Unit: dto.Percent, X: 5, Y: 5, Width: 50, Height: 50})
	if ed.State() != Cropping {
		t.Fatalf("an adjustment must start cropping, got %s", ed.State())
	}
	if ed.Draft() == nil {
		t.Fatalf("expected the draft region to be visible")
	}

	// The draft never reaches confirm; only CompleteRegion does.
	url, err := ed.Confirm(context.Background(), 400, 300)
	if err != nil || url != "" {
		t.Fatalf("confirm over a draft must be a no-op, got url=%q err=%v", url, err)
	}
	if picture.calls() != 0 {
		t.Fatalf("a draft region must not upload")
	}
	if ed.State() != Cropping {
		t.Fatalf("no-op confirm must resume cropping, got %s", ed.State())
	}
}

func TestConfirmBoundsStoreByTimeout(t *testing.T) {
	picture := &fakePicture{}
	sessions := session.NewHolder()
	sessions.Set(uuid.New())
	ed := testEditor(&fakeCropper{}, picture, &record{}, sessions)

	if err := ed.Select([]byte("img"), "image/png", 3, "a.png"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	ed.CompleteRegion(dto.CropRegion{Unit: dto.Percent, X: 0, Y: 0, Width: 100, Height: 100})

	if _, err := ed.Confirm(context.Background(), 400, 300); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if !picture.deadline() {
		t.Fatalf("expected the store context to carry a deadline")
	}
}

func TestOneUploadInFlight(t *testing.T) {
	picture := &fakePicture{block: make(chan struct{})}
	sessions := session.NewHolder()
	sessions.Set(uuid.New())
	ed := testEditor(&fakeCropper{}, picture, &record{}, sessions)

	if err := ed.Select([]byte("img"), "image/png", 3, "a.png"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	ed.CompleteRegion(dto.CropRegion{Unit: dto.Percent, X: 0, Y: 0, Width: 100, Height: 100})

	done := make(chan error, 1)
	go func() {
		_, err := ed.Confirm(context.Background(), 400, 300)
		done <- err
	}()

	// Wait for the first confirm to enter the upload.
	for ed.State() != Uploading {
		runtime.Gosched()
	}

	if err := ed.Select([]byte("img"), "image/png", 3, "b.png"); !errors.Is(err, errs.ErrBusy) {
		t.Fatalf("expected ErrBusy from select, got %v", err)
	}
	if _, err := ed.Confirm(context.Background(), 400, 300); !errors.Is(err, errs.ErrBusy) {
		t.Fatalf("expected ErrBusy from confirm, got %v", err)
	}

	close(picture.block)
	if err := <-done; err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}
}

func TestConcurrentConfirmsShareOneUpload(t *testing.T) {
	cropper := &fakeCropper{
		confirmEntered: make(chan struct{}, 2),
		confirmGate:    make(chan struct{}),
	}
	picture := &fakePicture{}
	sessions := session.NewHolder()
	sessions.Set(uuid.New())
	ed := testEditor(cropper, picture, &record{}, sessions)

	if err := ed.Select([]byte("img"), "image/png", 3, "a.png"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	ed.CompleteRegion(dto.CropRegion{Unit: dto.Percent, X: 0, Y: 0, Width: 100, Height: 100})

	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := ed.Confirm(context.Background(), 400, 300)
			results <- err
		}()
	}

	// One confirm holds the slot parked inside the rasterizer; the
	// other must be rejected at the busy check before reaching it.
	<-cropper.confirmEntered
	if err := <-results; !errors.Is(err, errs.ErrBusy) {
		t.Fatalf("expected ErrBusy for the losing confirm, got %v", err)
	}

	close(cropper.confirmGate)
	if err := <-results; err != nil {
		t.Fatalf("winning confirm failed: %v", err)
	}

	if picture.calls() != 1 {
		t.Fatalf("expected one upload, got %d", picture.calls())
	}
	select {
	case <-cropper.confirmEntered:
		t.Fatalf("the losing confirm reached the rasterizer")
	default:
	}
}
