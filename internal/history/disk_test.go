package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiskUsageBytes(t *testing.T) {
	dir := t.TempDir()

	// Single file
	f1 := filepath.Join(dir, "f1.db")
	if err := os.WriteFile(f1, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := DiskUsageBytes(f1)
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Errorf("single file: got %d bytes, want 5", got)
	}

	// Several files
	f2 := filepath.Join(dir, "f2.db-wal")
	if err := os.WriteFile(f2, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err = DiskUsageBytes(f1, f2)
	if err != nil {
		t.Fatal(err)
	}
	if got != 8 {
		t.Errorf("two files: got %d bytes, want 8", got)
	}

	// Missing path is skipped
	got, err = DiskUsageBytes(f1, filepath.Join(dir, "nonexistent"), f2)
	if err != nil {
		t.Fatal(err)
	}
	if got != 8 {
		t.Errorf("with missing: got %d bytes, want 8", got)
	}

	// Empty path is skipped
	got, err = DiskUsageBytes("", f1)
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Errorf("with empty path: got %d bytes, want 5", got)
	}
}

func TestDatabaseFiles(t *testing.T) {
	files := DatabaseFiles("/tmp/history.db")
	want := []string{"/tmp/history.db", "/tmp/history.db-wal", "/tmp/history.db-shm"}
	if len(files) != len(want) {
		t.Fatalf("got %d paths, want %d", len(files), len(want))
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("path %d: got %s, want %s", i, files[i], want[i])
		}
	}
}

func TestDiskUsageBytes_WalSidecars(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "h.db")
	if err := os.WriteFile(db, []byte("1234"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(db+"-wal", []byte("56"), 0644); err != nil {
		t.Fatal(err)
	}

	// The -shm file does not exist yet; it must not cause an error.
	got, err := DiskUsageBytes(DatabaseFiles(db)...)
	if err != nil {
		t.Fatal(err)
	}
	if got != 6 {
		t.Errorf("got %d bytes, want 6", got)
	}
}
