// Package payee implements the payee registry and the last-used-category
// lookup that pre-fills the category when entering a transaction.
package payee

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// ListPayeesOutput represents the output of payee listing.
type ListPayeesOutput struct {
	Payees []*entity.Payee
}

// ListPayeesUseCase handles payee listing.
type ListPayeesUseCase struct {
	store adapter.RecordStore
}

// NewListPayeesUseCase creates a new ListPayeesUseCase instance.
func NewListPayeesUseCase(store adapter.RecordStore) *ListPayeesUseCase {
	return &ListPayeesUseCase{store: store}
}

// Execute returns the registry sorted alphabetically.
func (uc *ListPayeesUseCase) Execute(ctx context.Context) (*ListPayeesOutput, error) {
	payees, err := uc.store.Payees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payees: %w", err)
	}
	sort.SliceStable(payees, func(i, j int) bool {
		return strings.ToLower(payees[i].Name) < strings.ToLower(payees[j].Name)
	})
	return &ListPayeesOutput{Payees: payees}, nil
}

// CreatePayeeInput represents the input for payee creation.
type CreatePayeeInput struct {
	Name string
}

// CreatePayeeOutput represents the output of payee creation.
type CreatePayeeOutput struct {
	Payee *entity.Payee
}

// CreatePayeeUseCase handles payee creation.
type CreatePayeeUseCase struct {
	store adapter.RecordStore
}

// NewCreatePayeeUseCase creates a new CreatePayeeUseCase instance.
func NewCreatePayeeUseCase(store adapter.RecordStore) *CreatePayeeUseCase {
	return &CreatePayeeUseCase{store: store}
}

// Execute adds a payee to the registry. Creating a name that already exists
// (case-insensitively) returns the existing entry.
func (uc *CreatePayeeUseCase) Execute(ctx context.Context, input CreatePayeeInput) (*CreatePayeeOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewPayeeError(
			domainerror.ErrCodeMissingPayeeName,
			"payee name is required",
			domainerror.ErrMissingPayeeName,
		)
	}

	payees, err := uc.store.Payees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payees: %w", err)
	}
	for _, existing := range payees {
		if strings.EqualFold(existing.Name, name) {
			return &CreatePayeeOutput{Payee: existing}, nil
		}
	}

	payee := entity.NewPayee(name)
	payees = append(payees, payee)
	if err := uc.store.PutPayees(ctx, payees); err != nil {
		return nil, fmt.Errorf("failed to save payees: %w", err)
	}
	return &CreatePayeeOutput{Payee: payee}, nil
}

// UpdatePayeeInput represents the input for payee renaming.
type UpdatePayeeInput struct {
	ID   uuid.UUID
	Name string
}

// UpdatePayeeOutput represents the output of payee renaming.
type UpdatePayeeOutput struct {
	Payee *entity.Payee
}

// UpdatePayeeUseCase handles payee renaming.
type UpdatePayeeUseCase struct {
	store adapter.RecordStore
}

// NewUpdatePayeeUseCase creates a new UpdatePayeeUseCase instance.
func NewUpdatePayeeUseCase(store adapter.RecordStore) *UpdatePayeeUseCase {
	return &UpdatePayeeUseCase{store: store}
}

// Execute renames a payee, cascading to every transaction and recurring
// template carrying the old name.
func (uc *UpdatePayeeUseCase) Execute(ctx context.Context, input UpdatePayeeInput) (*UpdatePayeeOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewPayeeError(
			domainerror.ErrCodeMissingPayeeName,
			"payee name is required",
			domainerror.ErrMissingPayeeName,
		)
	}

	payees, err := uc.store.Payees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payees: %w", err)
	}
	payee := findPayee(payees, input.ID)
	if payee == nil {
		return nil, payeeNotFound()
	}

	oldName := payee.Name
	payee.Name = name
	if err := uc.store.PutPayees(ctx, payees); err != nil {
		return nil, fmt.Errorf("failed to save payees: %w", err)
	}
	if name != oldName {
		if err := renamePayeeReferences(ctx, uc.store, oldName, name); err != nil {
			return nil, err
		}
	}
	return &UpdatePayeeOutput{Payee: payee}, nil
}

// DeletePayeeInput represents the input for payee deletion. When
// ReplacementName is empty, referencing transactions keep the deleted name.
type DeletePayeeInput struct {
	ID              uuid.UUID
	ReplacementName string
}

// DeletePayeeUseCase handles payee deletion.
type DeletePayeeUseCase struct {
	store adapter.RecordStore
}

// NewDeletePayeeUseCase creates a new DeletePayeeUseCase instance.
func NewDeletePayeeUseCase(store adapter.RecordStore) *DeletePayeeUseCase {
	return &DeletePayeeUseCase{store: store}
}

// Execute removes a payee from the registry, optionally reassigning its
// transactions to a replacement name.
func (uc *DeletePayeeUseCase) Execute(ctx context.Context, input DeletePayeeInput) error {
	payees, err := uc.store.Payees(ctx)
	if err != nil {
		return fmt.Errorf("failed to load payees: %w", err)
	}
	payee := findPayee(payees, input.ID)
	if payee == nil {
		return payeeNotFound()
	}

	kept := make([]*entity.Payee, 0, len(payees)-1)
	for _, candidate := range payees {
		if candidate.ID != input.ID {
			kept = append(kept, candidate)
		}
	}
	if err := uc.store.PutPayees(ctx, kept); err != nil {
		return fmt.Errorf("failed to save payees: %w", err)
	}

	replacement := strings.TrimSpace(input.ReplacementName)
	if replacement != "" {
		return renamePayeeReferences(ctx, uc.store, payee.Name, replacement)
	}
	return nil
}

// renamePayeeReferences rewrites the payee name on every transaction and
// recurring template, matching case-insensitively.
func renamePayeeReferences(ctx context.Context, store adapter.RecordStore, oldName, newName string) error {
	accounts, err := store.Accounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, account := range accounts {
		ledger, err := store.AccountTransactions(ctx, account.ID)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		changed := false
		for _, tx := range ledger {
			if strings.EqualFold(tx.Payee, oldName) {
				tx.Payee = newName
				changed = true
			}
		}
		if changed {
			if err := store.PutAccountTransactions(ctx, account.ID, ledger); err != nil {
				return fmt.Errorf("failed to save transactions: %w", err)
			}
		}
	}

	templates, err := store.Recurring(ctx)
	if err != nil {
		return fmt.Errorf("failed to load recurring templates: %w", err)
	}
	changed := false
	for _, tpl := range templates {
		if strings.EqualFold(tpl.Payee, oldName) {
			tpl.Payee = newName
			changed = true
		}
	}
	if changed {
		if err := store.PutRecurring(ctx, templates); err != nil {
			return fmt.Errorf("failed to save recurring templates: %w", err)
		}
	}
	return nil
}

func findPayee(payees []*entity.Payee, id uuid.UUID) *entity.Payee {
	for _, payee := range payees {
		if payee.ID == id {
			return payee
		}
	}
	return nil
}

func payeeNotFound() error {
	return domainerror.NewPayeeError(
		domainerror.ErrCodePayeeNotFound,
		"payee not found",
		domainerror.ErrPayeeNotFound,
	)
}
