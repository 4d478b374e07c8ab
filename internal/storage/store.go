package storage

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
)

// ErrObjectNotFound is returned by Get when no object exists for a locator.
var ErrObjectNotFound = errors.New("object not found")

// PutOptions describes upload options for object storage.
type PutOptions struct {
	ContentType string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Locator     string
	Size        int64
	ContentType string
}

// Store abstracts media object storage. Objects are write-once and
// delete-once; there is no update-in-place.
type Store interface {
	// Put persists the full stream under a fresh locator and returns it.
	// A locator must never become visible to Get before the bytes are
	// completely written.
	Put(ctx context.Context, originalName string, reader io.Reader, size int64, opts PutOptions) (string, error)
	// Get opens the object for reading, or ErrObjectNotFound.
	Get(ctx context.Context, locator string) (io.ReadCloser, ObjectInfo, error)
	// Remove deletes the object. Removing an absent locator is a no-op.
	Remove(ctx context.Context, locator string) error
}

// Default is the main object store instance.
var Default Store

// NewLocator builds a collision-free locator from a random 128-bit id
// and a sanitized form of the original name.
func NewLocator(originalName string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return id + "_" + SanitizeObjectName(originalName)
}

// SanitizeObjectName strips path elements and characters that cannot
// appear in a stored object name.
func SanitizeObjectName(name string) string {
	clean := strings.TrimSpace(name)
	if idx := strings.LastIndexAny(clean, "/\\"); idx >= 0 {
		clean = clean[idx+1:]
	}
	clean = strings.Map(func(r rune) rune {
		switch r {
		case '\r', '\n', 0:
			return -1
		}
		return r
	}, clean)
	if clean == "" || clean == "." || clean == ".." {
		return "upload"
	}
	return clean
}
