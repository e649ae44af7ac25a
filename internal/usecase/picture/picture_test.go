package picture

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/dto"
	"github.com/velenyx/sporthub/pkg/types/errs"
)

type fakeObjects struct {
	stored      map[string][]byte
	contentType map[string]string
	removed     []string

	uploadErr error
	removeErr error
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{
		stored:      make(map[string][]byte),
		contentType: make(map[string]string),
	}
}

func (f *fakeObjects) Upload(_ context.Context, bucket, key string, data []byte, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.stored[bucket+"/"+key] = data
	f.contentType[bucket+"/"+key] = contentType
	return nil
}

func (f *fakeObjects) DownloadBytes(_ context.Context, bucket, key string) ([]byte, error) {
	data, ok := f.stored[bucket+"/"+key]
	if !ok {
		return nil, errs.ErrRecordNotFound
	}
	return data, nil
}

func (f *fakeObjects) Remove(_ context.Context, bucket string, keys []string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	for _, key := range keys {
		f.removed = append(f.removed, bucket+"/"+key)
		delete(f.stored, bucket+"/"+key)
	}
	return nil
}

func (f *fakeObjects) PublicURL(bucket, key string) (string, error) {
	return "https://s3.local/" + bucket + "/" + key, nil
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})       {}
func (nopLogger) Warn(string, ...interface{})       {}
func (nopLogger) Error(interface{}, ...interface{}) {}
func (nopLogger) Fatal(interface{}, ...interface{}) {}

func TestStoreRoundTrip(t *testing.T) {
	objects := newFakeObjects()
	uc := New(objects, nopLogger{})

	ownerID := uuid.New()
	payload := &dto.Payload{Data: []byte{0xFF, 0xD8, 0x01, 0x02}, ContentType: "image/jpeg"}

	url, err := uc.Store(context.Background(), payload, ownerID, "profile_pictures", "")
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if url == "" {
		t.Fatalf("expected a public url")
	}

	// The stored bytes must be exactly the payload bytes.
	got, err := uc.Fetch(context.Background(), "profile_pictures", url)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if !bytes.Equal(got.Data, payload.Data) {
		t.Fatalf("stored bytes differ from payload")
	}
	if got.ContentType != "image/jpeg" {
		t.Fatalf("unexpected content type %q", got.ContentType)
	}
}

func TestStoreDeletesPriorObject(t *testing.T) {
	objects := newFakeObjects()
	uc := New(objects, nopLogger{})

	ownerID := uuid.New()
	payload := &dto.Payload{Data: []byte{1}, ContentType: "image/png"}

	first, err := uc.Store(context.Background(), payload, ownerID, "profile_pictures", "")
	if err != nil {
		t.Fatalf("first store failed: %v", err)
	}

	_, err = uc.Store(context.Background(), payload, ownerID, "profile_pictures", first)
	if err != nil {
		t.Fatalf("second store failed: %v", err)
	}
	if len(objects.removed) != 1 {
		t.Fatalf("expected one removed object, got %d", len(objects.removed))
	}
}

func TestStoreDeleteFailureIsNotFatal(t *testing.T) {
	objects := newFakeObjects()
	objects.removeErr = errors.New("bucket gone")
	uc := New(objects, nopLogger{})

	payload := &dto.Payload{Data: []byte{1}, ContentType: "image/png"}

	url, err := uc.Store(context.Background(), payload, uuid.New(), "profile_pictures",
		"https://s3.local/profile_pictures/old/1.png")
	if err != nil {
		t.Fatalf("delete failure must not abort the upload: %v", err)
	}
	if url == "" {
		t.Fatalf("expected a public url")
	}
}

func TestStoreUploadFailureIsFatal(t *testing.T) {
	objects := newFakeObjects()
	objects.uploadErr = errors.New("connection refused")
	uc := New(objects, nopLogger{})

	payload := &dto.Payload{Data: []byte{1}, ContentType: "image/png"}

	_, err := uc.Store(context.Background(), payload, uuid.New(), "profile_pictures", "")
	if err == nil {
		t.Fatalf("expected upload failure")
	}
	if !errors.Is(err, errs.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestFetchForeignURL(t *testing.T) {
	uc := New(newFakeObjects(), nopLogger{})

	_, err := uc.Fetch(context.Background(), "profile_pictures", "https://elsewhere.example/x.png")
	if !errors.Is(err, errs.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
