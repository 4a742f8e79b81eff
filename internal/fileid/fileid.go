// Package fileid derives a stable document ID from a file path.
package fileid

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
)

const prefix = "doc:"

// idBytes is how much of the path hash goes into the ID. Chunk IDs embed the
// document ID, so it stays short enough to read in logs and JSON output.
const idBytes = 8

// DocID returns a stable document ID for the given path. The same path
// always yields the same ID, so reloading a document after a content change
// replaces its chunks instead of duplicating them.
func DocID(path string) string {
	normalized := filepath.Clean(path)
	hash := sha256.Sum256([]byte(normalized))
	return prefix + hex.EncodeToString(hash[:idBytes])
}
