package backup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/brisk-budget/backend/internal/application/adapter"
)

// Scheduler runs periodic snapshots of the data directory. A snapshot is
// taken only when some data file changed since the last one, and only the
// newest retain archives are kept.
type Scheduler struct {
	store     adapter.RecordStore
	export    *ExportUseCase
	dir       string
	interval  time.Duration
	retain    int
	logger    *slog.Logger
	lastTaken time.Time
}

// NewScheduler creates a new Scheduler instance writing archives into dir.
func NewScheduler(store adapter.RecordStore, dir string, interval time.Duration, retain int, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	if retain <= 0 {
		retain = 24
	}
	return &Scheduler{
		store:    store,
		export:   NewExportUseCase(store),
		dir:      dir,
		interval: interval,
		retain:   retain,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled, snapshotting on every tick where the
// data changed. Call it on its own goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Snapshot(ctx); err != nil {
				s.logger.Error("auto-backup failed", "error", err)
			}
		}
	}
}

// Snapshot takes one backup if anything changed since the previous one.
func (s *Scheduler) Snapshot(ctx context.Context) error {
	modified, err := s.store.LastModified()
	if err != nil {
		return err
	}
	if !s.lastTaken.IsZero() && !modified.After(s.lastTaken) {
		return nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return restoreWriteError(err)
	}
	name := fmt.Sprintf("backup-%s.zip", time.Now().UTC().Format("20060102-150405"))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return restoreWriteError(err)
	}
	if err := s.export.Execute(ctx, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return restoreWriteError(err)
	}

	s.lastTaken = time.Now()
	s.logger.Info("auto-backup written", "archive", name)
	return s.prune()
}

// prune deletes the oldest archives beyond the retention count.
func (s *Scheduler) prune() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return restoreWriteError(err)
	}
	var archives []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), "backup-") && strings.HasSuffix(entry.Name(), ".zip") {
			archives = append(archives, entry.Name())
		}
	}
	if len(archives) <= s.retain {
		return nil
	}

	// Timestamped names sort chronologically.
	sort.Strings(archives)
	for _, name := range archives[:len(archives)-s.retain] {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			return restoreWriteError(err)
		}
	}
	return nil
}
