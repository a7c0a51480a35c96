package backup

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
	"github.com/brisk-budget/backend/internal/integration/persistence"
)

func buildArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("zip create: %v", err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("zip write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func TestExportRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	source, err := persistence.New(t.TempDir())
	if err != nil {
		t.Fatalf("persistence.New: %v", err)
	}

	account := entity.NewAccount("Current", entity.AccountTypeBank, decimal.RequireFromString("1000"), nil, "", 0)
	if err := source.PutAccounts(ctx, []*entity.Account{account}); err != nil {
		t.Fatalf("PutAccounts: %v", err)
	}
	if err := source.EnsureAccountFile(ctx, account.ID); err != nil {
		t.Fatalf("EnsureAccountFile: %v", err)
	}

	var snapshot bytes.Buffer
	if err := NewExportUseCase(source).Execute(ctx, &snapshot); err != nil {
		t.Fatalf("export: %v", err)
	}

	target, err := persistence.New(t.TempDir())
	if err != nil {
		t.Fatalf("persistence.New: %v", err)
	}
	if err := NewRestoreUseCase(target).Execute(ctx, snapshot.Bytes()); err != nil {
		t.Fatalf("restore: %v", err)
	}

	accounts, err := target.Accounts(ctx)
	if err != nil {
		t.Fatalf("Accounts: %v", err)
	}
	if len(accounts) != 1 || accounts[0].ID != account.ID {
		t.Fatalf("restored accounts = %+v", accounts)
	}
	if !accounts[0].StartingBalance.Equal(decimal.RequireFromString("1000")) {
		t.Errorf("starting balance = %s, want 1000", accounts[0].StartingBalance)
	}
	ledger, err := target.AccountTransactions(ctx, account.ID)
	if err != nil {
		t.Fatalf("AccountTransactions: %v", err)
	}
	if len(ledger) != 0 {
		t.Errorf("restored ledger has %d transactions, want 0", len(ledger))
	}
}

func TestRestoreValidation(t *testing.T) {
	ctx := context.Background()

	newStore := func(t *testing.T) *persistence.Store {
		store, err := persistence.New(t.TempDir())
		if err != nil {
			t.Fatalf("persistence.New: %v", err)
		}
		return store
	}

	t.Run("not a zip", func(t *testing.T) {
		err := NewRestoreUseCase(newStore(t)).Execute(ctx, []byte("not a zip"))
		if !errors.Is(err, domainerror.ErrMalformedBackup) {
			t.Errorf("err = %v, want malformed backup", err)
		}
	})

	t.Run("missing required file", func(t *testing.T) {
		archive := buildArchive(t, map[string]string{
			"accounts.json": "[]",
			"settings.json": "{}",
		})
		err := NewRestoreUseCase(newStore(t)).Execute(ctx, archive)
		if !errors.Is(err, domainerror.ErrBackupMissingFile) {
			t.Errorf("err = %v, want missing file", err)
		}
	})

	t.Run("invalid JSON entry", func(t *testing.T) {
		archive := buildArchive(t, map[string]string{
			"accounts.json":   "[]",
			"categories.json": "{broken",
			"settings.json":   "{}",
		})
		err := NewRestoreUseCase(newStore(t)).Execute(ctx, archive)
		if !errors.Is(err, domainerror.ErrBackupInvalidJSON) {
			t.Errorf("err = %v, want invalid JSON", err)
		}
	})

	t.Run("validation failure leaves store untouched", func(t *testing.T) {
		store := newStore(t)
		account := entity.NewAccount("Keep", entity.AccountTypeBank, decimal.Zero, nil, "", 0)
		if err := store.PutAccounts(ctx, []*entity.Account{account}); err != nil {
			t.Fatalf("PutAccounts: %v", err)
		}

		archive := buildArchive(t, map[string]string{"accounts.json": "[]"})
		if err := NewRestoreUseCase(store).Execute(ctx, archive); err == nil {
			t.Fatal("restore accepted incomplete archive")
		}

		accounts, err := store.Accounts(ctx)
		if err != nil {
			t.Fatalf("Accounts: %v", err)
		}
		if len(accounts) != 1 {
			t.Errorf("store mutated by rejected restore: %+v", accounts)
		}
	})
}

func TestSchedulerSnapshot(t *testing.T) {
	ctx := context.Background()
	store, err := persistence.New(t.TempDir())
	if err != nil {
		t.Fatalf("persistence.New: %v", err)
	}
	backupDir := t.TempDir()
	scheduler := NewScheduler(store, backupDir, 0, 2, discardLogger())

	if err := scheduler.Snapshot(ctx); err != nil {
		t.Fatalf("first snapshot: %v", err)
	}
	first := countArchives(t, backupDir)
	if first != 1 {
		t.Fatalf("got %d archives, want 1", first)
	}

	// Nothing changed, so the second tick must not write.
	if err := scheduler.Snapshot(ctx); err != nil {
		t.Fatalf("second snapshot: %v", err)
	}
	if got := countArchives(t, backupDir); got != first {
		t.Errorf("unchanged data produced a new archive: %d", got)
	}
}

func countArchives(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	count := 0
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "backup-") {
			count++
		}
	}
	return count
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
