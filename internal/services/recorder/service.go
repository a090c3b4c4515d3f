package recorder

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"feedwatch-go/internal/config"
)

// Service persists captured frames as JPEG files, one directory per camera,
// with bounded retention so disk usage cannot grow without limit.
type Service struct {
	cfg   *config.Config
	mutex sync.Mutex
	// Persisted-file count per camera; retention runs when it passes the cap.
	counts map[string]int
}

func NewService(cfg *config.Config) *Service {
	log.Info().
		Str("frame_dir", cfg.FrameDir).
		Int("max_files", cfg.FrameMaxFiles).
		Msg("Frame recorder initialized")

	return &Service{
		cfg:    cfg,
		counts: make(map[string]int),
	}
}

// Persist writes one frame to <FrameDir>/<cameraID>/frame_<ts>.jpg. Failures
// are returned, not fatal; the caller logs and moves on.
func (rs *Service) Persist(cameraID string, frame []byte, ts time.Time) error {
	dir := filepath.Join(rs.cfg.FrameDir, cameraID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create frame directory: %w", err)
	}

	name := fmt.Sprintf("frame_%s.jpg", ts.Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, frame, 0644); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	rs.mutex.Lock()
	rs.counts[cameraID]++
	needCleanup := rs.counts[cameraID] > rs.cfg.FrameMaxFiles
	if needCleanup {
		rs.counts[cameraID] = 0
	}
	rs.mutex.Unlock()

	if needCleanup {
		if err := rs.cleanupOldFrames(cameraID); err != nil {
			log.Warn().Err(err).Str("camera_id", cameraID).Msg("Frame cleanup failed")
		}
	}
	return nil
}

// cleanupOldFrames removes the oldest files past the retention cap.
func (rs *Service) cleanupOldFrames(cameraID string) error {
	dir := filepath.Join(rs.cfg.FrameDir, cameraID)
	pattern := filepath.Join(dir, "frame_*.jpg")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("failed to list frames: %w", err)
	}

	if len(files) <= rs.cfg.FrameMaxFiles {
		return nil
	}

	// Timestamped names sort chronologically.
	sort.Strings(files)

	toRemove := len(files) - rs.cfg.FrameMaxFiles
	removed := 0
	for i := 0; i < toRemove; i++ {
		if err := os.Remove(files[i]); err != nil {
			log.Warn().Err(err).Str("path", files[i]).Msg("Failed to remove old frame")
		} else {
			removed++
		}
	}

	if removed > 0 {
		log.Info().
			Str("camera_id", cameraID).
			Int("removed_frames", removed).
			Int("max_files", rs.cfg.FrameMaxFiles).
			Msg("Cleaned up old frames")
	}
	return nil
}
