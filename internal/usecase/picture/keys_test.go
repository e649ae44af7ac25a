package picture

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestObjectKey(t *testing.T) {
	ownerID := uuid.New()

	key := objectKey(ownerID, "image/png")
	if !strings.HasPrefix(key, ownerID.String()+"/") {
		t.Fatalf("key %q not namespaced under owner", key)
	}
	if !strings.HasSuffix(key, ".png") {
		t.Fatalf("key %q missing png extension", key)
	}

	// Unknown content types fall back to jpg.
	key = objectKey(ownerID, "image/tiff")
	if !strings.HasSuffix(key, ".jpg") {
		t.Fatalf("key %q expected jpg fallback", key)
	}
}

func TestKeyFromURL(t *testing.T) {
	const bucket = "profile_pictures"

	key, ok := keyFromURL(bucket, "https://s3.local/profile_pictures/user-1/123.png")
	if !ok || key != "user-1/123.png" {
		t.Fatalf("unexpected key %q ok=%v", key, ok)
	}

	// Virtual-host addressing carries the bucket in the host label.
	key, ok = keyFromURL(bucket, "https://profile_pictures.s3.local/user-1/123.png")
	if !ok || key != "user-1/123.png" {
		t.Fatalf("unexpected key %q ok=%v", key, ok)
	}

	// Relative references start at the bucket with no leading slash.
	key, ok = keyFromURL(bucket, "profile_pictures/abc/9.jpg")
	if !ok || key != "abc/9.jpg" {
		t.Fatalf("unexpected key %q ok=%v", key, ok)
	}

	if _, ok = keyFromURL(bucket, "https://s3.local/player_cards/abc/9.jpg"); ok {
		t.Fatalf("url from another bucket must not resolve")
	}
	if _, ok = keyFromURL(bucket, "https://player_cards.s3.local/abc/9.jpg"); ok {
		t.Fatalf("virtual-host url from another bucket must not resolve")
	}
	if _, ok = keyFromURL(bucket, "https://profile_pictures.s3.local/"); ok {
		t.Fatalf("virtual-host url with empty key must not resolve")
	}
	if _, ok = keyFromURL(bucket, "https://s3.local/profile_pictures/"); ok {
		t.Fatalf("empty key must not resolve")
	}
	if _, ok = keyFromURL(bucket, ""); ok {
		t.Fatalf("empty url must not resolve")
	}
}

func TestContentTypeFromKey(t *testing.T) {
	if got := contentTypeFromKey("u/1.png"); got != "image/png" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := contentTypeFromKey("u/1.webp"); got != "image/webp" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := contentTypeFromKey("u/1"); got != "image/jpeg" {
		t.Fatalf("expected jpeg fallback, got %q", got)
	}
}
