package fileid

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDocID(t *testing.T) {
	// Deterministic: same path gives same ID
	id1 := DocID("/foo/bar.pdf")
	id2 := DocID("/foo/bar.pdf")
	if id1 != id2 {
		t.Errorf("same path should give same ID: %q vs %q", id1, id2)
	}
	if !strings.HasPrefix(id1, prefix) {
		t.Errorf("ID should have prefix %q: got %q", prefix, id1)
	}
	if len(id1) != len(prefix)+idBytes*2 {
		t.Errorf("ID length = %d, want %d: %q", len(id1), len(prefix)+idBytes*2, id1)
	}
}

func TestDocID_differentPaths(t *testing.T) {
	if DocID("/foo/bar.pdf") == DocID("/foo/baz.pdf") {
		t.Error("different paths should give different IDs")
	}
}

func TestDocID_normalized(t *testing.T) {
	// Clean path: /foo/bar and /foo/bar/ and /foo/./bar should match
	id1 := DocID("/foo/bar")
	id2 := DocID("/foo/bar/")
	id3 := DocID("/foo/./bar")
	if id1 != id2 {
		t.Errorf("paths differing only by trailing slash should match: %q vs %q", id1, id2)
	}
	if id1 != id3 {
		t.Errorf("paths with . should normalize: %q vs %q", id1, id3)
	}
}

func TestDocID_relativePath(t *testing.T) {
	id := DocID("a/b.pdf")
	if !strings.HasPrefix(id, prefix) {
		t.Errorf("relative path still gets valid ID: %q", id)
	}
	if DocID("a/b.pdf") != DocID("a/b.pdf") {
		t.Error("same relative path should be deterministic")
	}
}

func TestDocID_absoluteFromFilepath(t *testing.T) {
	abs, _ := filepath.Abs(".")
	if id := DocID(abs); !strings.HasPrefix(id, prefix) {
		t.Errorf("absolute path: got %q", id)
	}
}
