// Package objstore abstracts the object store the contract file upload path
// writes to. The service only needs put/delete plus a way to turn a key into
// a browser-reachable URL; everything else about the store stays behind this
// boundary.
package objstore

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"time"
)

// Store is the capability consumed by the upload path. Implementations must
// be safe for concurrent use.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	// PublicURL returns the browser-reachable URL for a stored key.
	PublicURL(key string) string
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFilename strips any path component and replaces characters that
// are unsafe in object keys or URLs.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == ".." {
		name = "file"
	}
	return name
}

// ObjectKey builds the canonical key for a contract attachment:
// contracts/{contractID}/files/{unixMillis}_{sanitizedFilename}.
func ObjectKey(contractID uint, filename string, now time.Time) string {
	return fmt.Sprintf("contracts/%d/files/%d_%s", contractID, now.UnixMilli(), SanitizeFilename(filename))
}
