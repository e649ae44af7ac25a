package picture

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// objectKey derives the storage key for a new upload. The owner prefix
// namespaces users inside a bucket; the nanosecond suffix makes key
// collisions negligible without server-side enforcement.
func objectKey(ownerID uuid.UUID, contentType string) string {
	return fmt.Sprintf("%s/%d.%s", ownerID, time.Now().UnixNano(), extFromContentType(contentType))
}

func contentTypeFromKey(key string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(key), ".")) {
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	case "gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}

func extFromContentType(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "jpg"
	}
}

// keyFromURL recovers the object key from a stored public URL. It is
// the inverse of S3Client.ObjectURL and must accept both addressing
// styles that ObjectURL can emit: path-style puts the bucket in the
// path, virtual-host style puts it in the host label. The boolean is
// false when the URL does not reference the bucket at all.
func keyFromURL(bucket, rawURL string) (string, bool) {
	if u, err := url.Parse(rawURL); err == nil && strings.HasPrefix(u.Host, bucket+".") {
		key := strings.TrimPrefix(u.Path, "/")
		if key == "" {
			return "", false
		}
		return key, true
	}

	marker := "/" + bucket + "/"

	idx := strings.Index(rawURL, marker)
	if idx < 0 {
		// Some URL schemes do not slash-prefix the bucket.
		marker = bucket + "/"
		idx = strings.Index(rawURL, marker)
		if idx < 0 {
			return "", false
		}
	}

	key := rawURL[idx+len(marker):]
	if key == "" {
		return "", false
	}

	return key, true
}
