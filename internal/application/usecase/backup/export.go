// Package backup implements full-snapshot export and restore of the data
// directory, plus the hourly auto-backup job. A snapshot is a zip holding
// every collection file at its root and the per-account ledgers under
// transactions/.
package backup

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/brisk-budget/backend/internal/application/adapter"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

const transactionsDir = "transactions"

// ExportUseCase packages the data directory into a zip snapshot.
type ExportUseCase struct {
	store adapter.RecordStore
}

// NewExportUseCase creates a new ExportUseCase instance.
func NewExportUseCase(store adapter.RecordStore) *ExportUseCase {
	return &ExportUseCase{store: store}
}

// Execute writes the snapshot to w.
func (uc *ExportUseCase) Execute(_ context.Context, w io.Writer) error {
	dataDir := uc.store.DataDir()
	archive := zip.NewWriter(w)

	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return exportError(err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := addFile(archive, filepath.Join(dataDir, entry.Name()), entry.Name()); err != nil {
			return err
		}
	}

	txDir := filepath.Join(dataDir, transactionsDir)
	ledgers, err := os.ReadDir(txDir)
	if err != nil && !os.IsNotExist(err) {
		return exportError(err)
	}
	for _, entry := range ledgers {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := transactionsDir + "/" + entry.Name()
		if err := addFile(archive, filepath.Join(txDir, entry.Name()), name); err != nil {
			return err
		}
	}

	if err := archive.Close(); err != nil {
		return exportError(err)
	}
	return nil
}

func addFile(archive *zip.Writer, path, name string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return exportError(err)
	}
	w, err := archive.Create(name)
	if err != nil {
		return exportError(err)
	}
	if _, err := w.Write(data); err != nil {
		return exportError(err)
	}
	return nil
}

func exportError(err error) error {
	return domainerror.NewBackupError(
		domainerror.ErrCodeBackupWrite,
		"failed to write backup archive",
		fmt.Errorf("%w: %w", domainerror.ErrBackupWrite, err),
	)
}
