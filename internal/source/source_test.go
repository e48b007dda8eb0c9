package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStaticSource(t *testing.T) {
	src := StaticSource(24)
	if src.FrameCount() != 24 {
		t.Errorf("Expected 24 frames, got %d", src.FrameCount())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestImageSourceDir(t *testing.T) {
	dir := t.TempDir()
	files := []string{"a.png", "b.jpg", "c.jpeg", "notes.txt"}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	src, err := NewImageSource(dir)
	if err != nil {
		t.Fatalf("NewImageSource failed: %v", err)
	}
	defer src.Close()

	// Only the three images count as frames
	if src.FrameCount() != 3 {
		t.Errorf("Expected 3 frames, got %d", src.FrameCount())
	}
}

func TestImageSourceSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	src, err := NewImageSource(path)
	if err != nil {
		t.Fatalf("NewImageSource failed: %v", err)
	}
	defer src.Close()

	if src.FrameCount() != 1 {
		t.Errorf("Expected 1 frame, got %d", src.FrameCount())
	}
}

func TestImageSourceMissingPath(t *testing.T) {
	if _, err := NewImageSource(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error for missing path")
	}
}
