package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"feedwatch-go/internal/config"
)

func TestPersistWritesFrame(t *testing.T) {
	dir := t.TempDir()
	rs := NewService(&config.Config{FrameDir: dir, FrameMaxFiles: 10})

	ts := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	if err := rs.Persist("A", []byte("jpeg"), ts); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	files, _ := filepath.Glob(filepath.Join(dir, "A", "frame_*.jpg"))
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
}

func TestRetentionCap(t *testing.T) {
	dir := t.TempDir()
	rs := NewService(&config.Config{FrameDir: dir, FrameMaxFiles: 3})

	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		ts := base.Add(time.Duration(i) * time.Second)
		if err := rs.Persist("A", []byte("jpeg"), ts); err != nil {
			t.Fatalf("Persist %d failed: %v", i, err)
		}
	}

	files, _ := filepath.Glob(filepath.Join(dir, "A", "frame_*.jpg"))
	if len(files) > 4 {
		t.Fatalf("retention not applied: %d files remain", len(files))
	}
}
