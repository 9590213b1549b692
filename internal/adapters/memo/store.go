// Package memo defines the parsed-roster cache interface and errors.
// Rosters are keyed by a digest of the uploaded bytes, so re-uploading the
// same document skips the extraction pipeline.
package memo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/okian/draftboard/internal/domain/types"
)

// Store provides read/write access to cached rosters.
type Store interface {
	// Get returns the roster cached under key, if any.
	Get(ctx context.Context, key string) ([]types.Row, bool)

	// Put caches roster under key, evicting older entries when full.
	Put(ctx context.Context, key string, roster []types.Row)

	// Len returns the number of cached rosters.
	Len(ctx context.Context) int
}

// Digest returns the cache key for a document's bytes. The kind prefix
// keeps a PDF and a CSV with identical bytes from colliding.
func Digest(kind string, content []byte) string {
	sum := sha256.Sum256(content)
	return kind + ":" + hex.EncodeToString(sum[:])
}
