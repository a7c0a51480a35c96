// Package persistence implements the flat-file record store: one JSON file
// per collection plus one per account's transaction list, written wholesale
// with temp-file-and-rename so readers never see a torn file. Single-writer
// use only; there is no cross-file locking.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
	"github.com/brisk-budget/backend/internal/integration/persistence/model"
)

const (
	accountsFile   = "accounts.json"
	categoriesFile = "categories.json"
	payeesFile     = "payees.json"
	recurringFile  = "recurring.json"
	settingsFile   = "settings.json"
	txDirName      = "transactions"
)

// Store is the flat-file implementation of adapter.RecordStore.
type Store struct {
	dir   string
	txDir string
}

// New opens (or initializes) the data directory. Missing collection files
// are seeded: empty registries, the default category tree and default
// settings.
func New(dir string) (*Store, error) {
	store := &Store{dir: dir, txDir: filepath.Join(dir, txDirName)}
	if err := os.MkdirAll(store.txDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := store.seed(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) seed() error {
	seeds := []struct {
		file  string
		value any
	}{
		{accountsFile, []model.Account{}},
		{payeesFile, []model.Payee{}},
		{recurringFile, []model.RecurringTemplate{}},
		{categoriesFile, categoryModels(entity.DefaultCategories())},
		{settingsFile, model.FromSettings(entity.DefaultSettings())},
	}
	for _, seed := range seeds {
		path := filepath.Join(s.dir, seed.file)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return readError(seed.file, err)
		}
		if err := s.writeFile(path, seed.value); err != nil {
			return err
		}
	}
	return nil
}

// Accounts implements adapter.RecordStore.
func (s *Store) Accounts(_ context.Context) ([]*entity.Account, error) {
	var models []model.Account
	if err := s.readFile(filepath.Join(s.dir, accountsFile), &models); err != nil {
		return nil, err
	}
	accounts := make([]*entity.Account, 0, len(models))
	for _, m := range models {
		accounts = append(accounts, m.ToEntity())
	}
	return accounts, nil
}

// PutAccounts implements adapter.RecordStore.
func (s *Store) PutAccounts(_ context.Context, accounts []*entity.Account) error {
	models := make([]model.Account, 0, len(accounts))
	for _, account := range accounts {
		models = append(models, model.FromAccount(account))
	}
	return s.writeFile(filepath.Join(s.dir, accountsFile), models)
}

// Categories implements adapter.RecordStore.
func (s *Store) Categories(_ context.Context) ([]*entity.Category, error) {
	var models []model.Category
	if err := s.readFile(filepath.Join(s.dir, categoriesFile), &models); err != nil {
		return nil, err
	}
	categories := make([]*entity.Category, 0, len(models))
	for _, m := range models {
		categories = append(categories, m.ToEntity())
	}
	return categories, nil
}

// PutCategories implements adapter.RecordStore.
func (s *Store) PutCategories(_ context.Context, categories []*entity.Category) error {
	return s.writeFile(filepath.Join(s.dir, categoriesFile), categoryModels(categories))
}

// Payees implements adapter.RecordStore.
func (s *Store) Payees(_ context.Context) ([]*entity.Payee, error) {
	var models []model.Payee
	if err := s.readFile(filepath.Join(s.dir, payeesFile), &models); err != nil {
		return nil, err
	}
	payees := make([]*entity.Payee, 0, len(models))
	for _, m := range models {
		payees = append(payees, m.ToEntity())
	}
	return payees, nil
}

// PutPayees implements adapter.RecordStore.
func (s *Store) PutPayees(_ context.Context, payees []*entity.Payee) error {
	models := make([]model.Payee, 0, len(payees))
	for _, payee := range payees {
		models = append(models, model.FromPayee(payee))
	}
	return s.writeFile(filepath.Join(s.dir, payeesFile), models)
}

// Recurring implements adapter.RecordStore.
func (s *Store) Recurring(_ context.Context) ([]*entity.RecurringTemplate, error) {
	var models []model.RecurringTemplate
	if err := s.readFile(filepath.Join(s.dir, recurringFile), &models); err != nil {
		return nil, err
	}
	templates := make([]*entity.RecurringTemplate, 0, len(models))
	for _, m := range models {
		templates = append(templates, m.ToEntity())
	}
	return templates, nil
}

// PutRecurring implements adapter.RecordStore.
func (s *Store) PutRecurring(_ context.Context, templates []*entity.RecurringTemplate) error {
	models := make([]model.RecurringTemplate, 0, len(templates))
	for _, tpl := range templates {
		models = append(models, model.FromRecurring(tpl))
	}
	return s.writeFile(filepath.Join(s.dir, recurringFile), models)
}

// Settings implements adapter.RecordStore.
func (s *Store) Settings(_ context.Context) (*entity.Settings, error) {
	var m model.Settings
	if err := s.readFile(filepath.Join(s.dir, settingsFile), &m); err != nil {
		return nil, err
	}
	return m.ToEntity(), nil
}

// PutSettings implements adapter.RecordStore.
func (s *Store) PutSettings(_ context.Context, settings *entity.Settings) error {
	return s.writeFile(filepath.Join(s.dir, settingsFile), model.FromSettings(settings))
}

// AccountTransactions implements adapter.RecordStore. A ledger file that
// does not exist yet reads as an empty list.
func (s *Store) AccountTransactions(_ context.Context, accountID uuid.UUID) ([]*entity.Transaction, error) {
	path := s.ledgerPath(accountID)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return []*entity.Transaction{}, nil
	}
	var models []model.Transaction
	if err := s.readFile(path, &models); err != nil {
		return nil, err
	}
	transactions := make([]*entity.Transaction, 0, len(models))
	for _, m := range models {
		transactions = append(transactions, m.ToEntity())
	}
	return transactions, nil
}

// PutAccountTransactions implements adapter.RecordStore.
func (s *Store) PutAccountTransactions(_ context.Context, accountID uuid.UUID, transactions []*entity.Transaction) error {
	models := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		models = append(models, model.FromTransaction(tx))
	}
	return s.writeFile(s.ledgerPath(accountID), models)
}

// EnsureAccountFile implements adapter.RecordStore.
func (s *Store) EnsureAccountFile(_ context.Context, accountID uuid.UUID) error {
	path := s.ledgerPath(accountID)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return s.writeFile(path, []model.Transaction{})
}

// DataDir implements adapter.RecordStore.
func (s *Store) DataDir() string {
	return s.dir
}

// LastModified implements adapter.RecordStore.
func (s *Store) LastModified() (time.Time, error) {
	var latest time.Time
	err := filepath.Walk(s.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && info.ModTime().After(latest) {
			latest = info.ModTime()
		}
		return nil
	})
	if err != nil {
		return time.Time{}, readError(s.dir, err)
	}
	return latest, nil
}

func (s *Store) ledgerPath(accountID uuid.UUID) string {
	return filepath.Join(s.txDir, accountID.String()+".json")
}

func (s *Store) readFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return readError(filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return readError(filepath.Base(path), err)
	}
	return nil
}

// writeFile marshals v and swaps it into place atomically so a crash
// mid-write never leaves a half-written collection behind.
func (s *Store) writeFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return writeError(filepath.Base(path), err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return writeError(filepath.Base(path), err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return writeError(filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return writeError(filepath.Base(path), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return writeError(filepath.Base(path), err)
	}
	return nil
}

func categoryModels(categories []*entity.Category) []model.Category {
	models := make([]model.Category, 0, len(categories))
	for _, category := range categories {
		models = append(models, model.FromCategory(category))
	}
	return models
}

func readError(name string, err error) error {
	return domainerror.NewStorageError(
		domainerror.ErrCodeCollectionRead,
		fmt.Sprintf("failed to read %s", name),
		fmt.Errorf("%w: %w", domainerror.ErrCollectionRead, err),
	)
}

func writeError(name string, err error) error {
	return domainerror.NewStorageError(
		domainerror.ErrCodeCollectionWrite,
		fmt.Sprintf("failed to write %s", name),
		fmt.Errorf("%w: %w", domainerror.ErrCollectionWrite, err),
	)
}
