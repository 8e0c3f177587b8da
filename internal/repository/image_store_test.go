package repository

import (
	"os"
	"path/filepath"
	"testing"
)

func TestImageStore_SaveOverwritesSameName(t *testing.T) {
	store, err := NewImageStore(filepath.Join(t.TempDir(), "received_images"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	// Same-second captures collide by design; the later write wins.
	if err := store.Save("20260901_100000.jpg", []byte("first")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save("20260901_100000.jpg", []byte("second")); err != nil {
		t.Fatalf("save: %v", err)
	}

	path, err := store.Path("20260901_100000.jpg")
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("blob = %q, want most recent write", data)
	}
}

func TestImageStore_RecentNewestFirst(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for _, name := range []string{"20260901_100000.jpg", "20260901_100005.jpg", "20260901_100009.jpeg", "notes.txt"} {
		if err := store.Save(name, []byte("x")); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	got, err := store.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 || got[0] != "20260901_100009.jpeg" || got[1] != "20260901_100005.jpg" {
		t.Fatalf("recent = %v", got)
	}
}

func TestImageStore_PathRejectsTraversalAndMissing(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageStore(filepath.Join(dir, "blobs"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Save("a.jpg", []byte("x")); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := store.Path("nope.jpg"); err == nil {
		t.Fatalf("expected error for missing blob")
	}

	// A traversal attempt resolves to its basename inside the blob dir.
	path, err := store.Path("../a.jpg")
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if filepath.Dir(path) != filepath.Join(dir, "blobs") {
		t.Fatalf("path escaped blob dir: %s", path)
	}
}
