package backup

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/brisk-budget/backend/internal/application/adapter"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// requiredFiles must all be present in a restore payload.
var requiredFiles = []string{"accounts.json", "categories.json", "settings.json"}

// RestoreUseCase replaces the data directory's contents from a snapshot.
type RestoreUseCase struct {
	store adapter.RecordStore
}

// NewRestoreUseCase creates a new RestoreUseCase instance.
func NewRestoreUseCase(store adapter.RecordStore) *RestoreUseCase {
	return &RestoreUseCase{store: store}
}

// Execute validates the whole archive before touching disk: the required
// collection files must be present and every JSON entry must parse. The
// existing ledger files are then replaced wholesale, so ledgers absent from
// the snapshot do not survive the restore.
func (uc *RestoreUseCase) Execute(_ context.Context, archive []byte) error {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return domainerror.NewBackupError(
			domainerror.ErrCodeMalformedBackup,
			"restore payload is not a zip archive",
			fmt.Errorf("%w: %w", domainerror.ErrMalformedBackup, err),
		)
	}

	contents := make(map[string][]byte)
	for _, file := range reader.File {
		name := file.Name
		if !validEntryName(name) {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return malformed(name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return malformed(name, err)
		}
		if !json.Valid(data) {
			return domainerror.NewBackupError(
				domainerror.ErrCodeBackupInvalidJSON,
				fmt.Sprintf("%s contains invalid JSON", name),
				domainerror.ErrBackupInvalidJSON,
			)
		}
		contents[name] = data
	}

	for _, required := range requiredFiles {
		if _, ok := contents[required]; !ok {
			return domainerror.NewBackupError(
				domainerror.ErrCodeBackupMissingFile,
				fmt.Sprintf("backup is missing %s", required),
				domainerror.ErrBackupMissingFile,
			)
		}
	}

	dataDir := uc.store.DataDir()
	txDir := filepath.Join(dataDir, transactionsDir)
	if err := clearLedgers(txDir); err != nil {
		return restoreWriteError(err)
	}
	for name, data := range contents {
		path := filepath.Join(dataDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return restoreWriteError(err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return restoreWriteError(err)
		}
	}
	return nil
}

// validEntryName accepts root-level collection files and transactions/*.json,
// rejecting anything that could escape the data directory.
func validEntryName(name string) bool {
	if !strings.HasSuffix(name, ".json") || strings.Contains(name, "..") {
		return false
	}
	parts := strings.Split(name, "/")
	switch len(parts) {
	case 1:
		return true
	case 2:
		return parts[0] == transactionsDir
	}
	return false
}

func clearLedgers(txDir string) error {
	entries, err := os.ReadDir(txDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			if err := os.Remove(filepath.Join(txDir, entry.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

func malformed(name string, err error) error {
	return domainerror.NewBackupError(
		domainerror.ErrCodeMalformedBackup,
		fmt.Sprintf("failed to read %s from archive", name),
		fmt.Errorf("%w: %w", domainerror.ErrMalformedBackup, err),
	)
}

func restoreWriteError(err error) error {
	return domainerror.NewBackupError(
		domainerror.ErrCodeBackupWrite,
		"failed to unpack backup archive",
		fmt.Errorf("%w: %w", domainerror.ErrBackupWrite, err),
	)
}
