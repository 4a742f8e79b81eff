package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func TestWatcher_TriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := writeFile(path, "v1"); err != nil {
		t.Fatal(err)
	}

	var changed []string
	var mu sync.Mutex
	onChange := func(p string) {
		mu.Lock()
		changed = append(changed, p)
		mu.Unlock()
	}

	w, err := New(path, onChange, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := writeFile(path, "v2"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	count := len(changed)
	var got string
	if count > 0 {
		got = changed[0]
	}
	mu.Unlock()
	if count < 1 {
		t.Fatalf("expected at least one change callback, got %d", count)
	}
	if got != w.Path() {
		t.Errorf("callback path = %s, want %s", got, w.Path())
	}
}

func TestWatcher_DebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := writeFile(path, "v1"); err != nil {
		t.Fatal(err)
	}

	var count int
	var mu sync.Mutex
	onChange := func(string) {
		mu.Lock()
		count++
		mu.Unlock()
	}

	w, err := New(path, onChange, WithDebounce(150*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	// A burst of writes closer together than the debounce window.
	for i := 0; i < 5; i++ {
		if err := writeFile(path, "burst"); err != nil {
			t.Fatal(err)
		}
		time.Sleep(20 * time.Millisecond)
	}
	time.Sleep(500 * time.Millisecond)

	mu.Lock()
	got := count
	mu.Unlock()
	if got != 1 {
		t.Errorf("expected 1 debounced callback, got %d", got)
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := writeFile(path, "v1"); err != nil {
		t.Fatal(err)
	}

	var count int
	var mu sync.Mutex
	onChange := func(string) {
		mu.Lock()
		count++
		mu.Unlock()
	}

	w, err := New(path, onChange, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := writeFile(filepath.Join(dir, "other.txt"), "noise"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	got := count
	mu.Unlock()
	if got != 0 {
		t.Errorf("expected no callbacks for sibling files, got %d", got)
	}
}

func TestWatcher_AtomicSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := writeFile(path, "v1"); err != nil {
		t.Fatal(err)
	}

	var count int
	var mu sync.Mutex
	onChange := func(string) {
		mu.Lock()
		count++
		mu.Unlock()
	}

	w, err := New(path, onChange, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	// Editor-style save: write a temp file, rename it over the target.
	tmp := filepath.Join(dir, "doc.txt.tmp")
	if err := writeFile(tmp, "v2"); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	got := count
	mu.Unlock()
	if got < 1 {
		t.Errorf("expected a callback after atomic save, got %d", got)
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := writeFile(path, "v1"); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()

	// Start after Stop is a no-op on the closed done channel; a fresh
	// watcher is required instead.
	w2, err := New(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := w2.Start(ctx); err != nil {
		t.Fatal(err)
	}
	w2.Stop()
}
