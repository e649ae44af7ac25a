package picture

import (
	"errors"
	"testing"

	"github.com/velenyx/sporthub/pkg/types/errs"
)

func TestValidateFile(t *testing.T) {
	const maxSize = 5 * 1024 * 1024

	if err := ValidateFile("image/png", 1024, maxSize, "avatar.png"); err != nil {
		t.Fatalf("valid png rejected: %v", err)
	}
	if err := ValidateFile("image/jpeg", maxSize, maxSize, "me.jpg"); err != nil {
		t.Fatalf("file at the limit rejected: %v", err)
	}

	cases := []struct {
		name        string
		contentType string
		size        int64
		fileName    string
	}{
		{"pdf content type", "application/pdf", 1024, "doc.pdf"},
		{"text content type", "text/plain", 1024, "notes.txt"},
		{"mismatched extension", "image/png", 1024, "script.exe"},
		{"empty file", "image/png", 0, "avatar.png"},
		{"oversized file", "image/png", maxSize + 1, "avatar.png"},
	}

	for _, tc := range cases {
		err := ValidateFile(tc.contentType, tc.size, maxSize, tc.fileName)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !errors.Is(err, errs.ErrInvalidFileKind) {
			t.Fatalf("%s: expected ErrInvalidFileKind, got %v", tc.name, err)
		}
	}
}

func TestValidateFileNoExtension(t *testing.T) {
	// Extensionless names are allowed as long as the MIME checks out.
	if err := ValidateFile("image/webp", 1024, 1<<20, "blob"); err != nil {
		t.Fatalf("extensionless file rejected: %v", err)
	}
}
