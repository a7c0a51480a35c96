// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/domain/entity"
)

// RecordStore is the persistence contract for the flat-file collections.
// Collections are read and written wholesale; the store guarantees nothing
// beyond single-process, single-writer use. Insertion order is preserved but
// callers re-sort where display order matters.
type RecordStore interface {
	// Accounts returns every account, active or not.
	Accounts(ctx context.Context) ([]*entity.Account, error)

	// PutAccounts replaces the accounts collection.
	PutAccounts(ctx context.Context, accounts []*entity.Account) error

	// Categories returns the full category tree.
	Categories(ctx context.Context) ([]*entity.Category, error)

	// PutCategories replaces the categories collection.
	PutCategories(ctx context.Context, categories []*entity.Category) error

	// Payees returns the payee registry.
	Payees(ctx context.Context) ([]*entity.Payee, error)

	// PutPayees replaces the payee registry.
	PutPayees(ctx context.Context, payees []*entity.Payee) error

	// Recurring returns every recurring template, active or not.
	Recurring(ctx context.Context) ([]*entity.RecurringTemplate, error)

	// PutRecurring replaces the recurring templates collection.
	PutRecurring(ctx context.Context, templates []*entity.RecurringTemplate) error

	// Settings returns the settings singleton.
	Settings(ctx context.Context) (*entity.Settings, error)

	// PutSettings replaces the settings singleton.
	PutSettings(ctx context.Context, settings *entity.Settings) error

	// AccountTransactions returns an account's ledger. A missing ledger file
	// reads as an empty list.
	AccountTransactions(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error)

	// PutAccountTransactions replaces an account's ledger.
	PutAccountTransactions(ctx context.Context, accountID uuid.UUID, transactions []*entity.Transaction) error

	// EnsureAccountFile creates an empty ledger file for a new account.
	EnsureAccountFile(ctx context.Context, accountID uuid.UUID) error

	// DataDir is the directory holding all collection files. The backup
	// component packages this directory wholesale.
	DataDir() string

	// LastModified reports the most recent modification time across all
	// collection files, used by the auto-backup scheduler's change check.
	LastModified() (time.Time, error)
}

// Clock supplies the current time. Scheduling and aggregation code takes
// "today" through this interface so tests can pin the calendar.
type Clock interface {
	Now() time.Time
}
