package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"photo.jpg":            "photo.jpg",
		"my photo.jpg":         "my_photo.jpg",
		"../../etc/passwd":     "passwd",
		"..\\..\\evil.png":     "evil.png",
		"weird$chars%here.gif": "weird_chars_here.gif",
		"":                     "file",
		"...":                  "file",
	}

	for input, want := range cases {
		if got := SanitizeFilename(input); got != want {
			t.Fatalf("SanitizeFilename(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestLocalStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	path, err := store.Save(context.Background(), "cut one.jpg", strings.NewReader("payload"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if !strings.HasSuffix(path, "-cut_one.jpg") {
		t.Fatalf("expected sanitized suffix, got %q", path)
	}
	if strings.Contains(path, "\\") {
		t.Fatalf("public path must use forward slashes, got %q", path)
	}

	onDisk := filepath.Join(dir, filepath.Base(path))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestLocalStoreSaveUniqueNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	first, err := store.Save(context.Background(), "same.jpg", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	second, err := store.Save(context.Background(), "same.jpg", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first == second {
		t.Fatalf("two uploads of the same filename must not collide: %q", first)
	}
}

func TestNewLocalStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if _, err := NewLocalStore(dir); err != nil {
		t.Fatalf("new store: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory to exist, err=%v", err)
	}
}
