package exporter

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/ktnakamura/minutes-flow/internal/logger"
)

// CleanupOld deletes regular files in dir whose modification time is older
// than retentionDays. Subdirectories are left alone. A missing dir is not an
// error; there is simply nothing to clean.
func CleanupOld(ctx context.Context, dir string, retentionDays int, log logger.Logger) error {
	retention := time.Duration(retentionDays) * 24 * time.Hour
	cutoff := time.Now().Add(-retention)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			log.Warn(ctx, "Skipping %s: %v", e.Name(), err)
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(dir, e.Name())
			if err := os.Remove(path); err != nil {
				log.Warn(ctx, "Failed to delete old file %s: %v", path, err)
				continue
			}
			log.Info(ctx, "Deleted old file: %s", path)
		}
	}

	return nil
}
