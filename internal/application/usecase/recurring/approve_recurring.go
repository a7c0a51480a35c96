package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/application/usecase/transfer"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// ApproveRecurringInput represents the input for approving an occurrence.
// Date and Amount override the template's values for this occurrence only.
type ApproveRecurringInput struct {
	ID     uuid.UUID
	Date   *entity.Date
	Amount *decimal.Decimal
}

// ApproveRecurringOutput represents the output of approving an occurrence.
type ApproveRecurringOutput struct {
	Transactions []*entity.Transaction
	Template     *entity.RecurringTemplate
}

// ApproveRecurringUseCase materializes a recurring template's next due
// occurrence into real ledger entries, then advances the template.
type ApproveRecurringUseCase struct {
	store adapter.RecordStore
}

// NewApproveRecurringUseCase creates a new ApproveRecurringUseCase instance.
func NewApproveRecurringUseCase(store adapter.RecordStore) *ApproveRecurringUseCase {
	return &ApproveRecurringUseCase{store: store}
}

// Execute writes the occurrence's transaction (or transfer pair), increments
// OccurrencesCompleted and moves NextDueDate one period forward. The ledger
// writes land before the template update: a crash in between re-offers an
// already-approved occurrence rather than silently losing one.
func (uc *ApproveRecurringUseCase) Execute(ctx context.Context, input ApproveRecurringInput) (*ApproveRecurringOutput, error) {
	templates, err := uc.store.Recurring(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring templates: %w", err)
	}
	tpl := findTemplate(templates, input.ID)
	if tpl == nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringNotFound,
			"recurring template not found",
			domainerror.ErrRecurringNotFound,
		)
	}

	date := tpl.NextDueDate
	if input.Date != nil {
		date = *input.Date
	}
	amount := tpl.Amount
	if input.Amount != nil {
		amount = *input.Amount
	}

	var created []*entity.Transaction
	switch tpl.Type {
	case entity.RecurringTypeTransfer:
		created, err = uc.materializeTransfer(ctx, tpl, amount, date)
	default:
		created, err = uc.materializeTransaction(ctx, tpl, amount, date)
	}
	if err != nil {
		return nil, err
	}

	tpl.OccurrencesCompleted++
	tpl.NextDueDate = Advance(tpl.NextDueDate, tpl.Frequency)
	if err := uc.store.PutRecurring(ctx, templates); err != nil {
		return nil, fmt.Errorf("failed to save recurring templates: %w", err)
	}

	return &ApproveRecurringOutput{Transactions: created, Template: tpl}, nil
}

func (uc *ApproveRecurringUseCase) materializeTransaction(ctx context.Context, tpl *entity.RecurringTemplate, amount decimal.Decimal, date entity.Date) ([]*entity.Transaction, error) {
	if tpl.AccountID == nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRecurringAccount,
			"transaction template has no account",
			domainerror.ErrMissingRecurringAccount,
		)
	}

	tx := &entity.Transaction{
		ID:          uuid.New(),
		Payee:       tpl.Payee,
		Amount:      amount,
		Date:        date,
		Category:    tpl.Category,
		Description: tpl.Description,
		Notes:       tpl.Notes,
		CreatedAt:   time.Now().UTC(),
	}

	ledger, err := uc.store.AccountTransactions(ctx, *tpl.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	ledger = append(ledger, tx)
	if err := uc.store.PutAccountTransactions(ctx, *tpl.AccountID, ledger); err != nil {
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}
	return []*entity.Transaction{tx}, nil
}

func (uc *ApproveRecurringUseCase) materializeTransfer(ctx context.Context, tpl *entity.RecurringTemplate, amount decimal.Decimal, date entity.Date) ([]*entity.Transaction, error) {
	if tpl.FromAccountID == nil || tpl.ToAccountID == nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRecurringAccount,
			"transfer template has no account pair",
			domainerror.ErrMissingRecurringAccount,
		)
	}

	accounts, err := uc.store.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	names := make(map[uuid.UUID]string, len(accounts))
	for _, account := range accounts {
		names[account.ID] = account.Name
	}

	out, in := transfer.NewPair(
		*tpl.FromAccountID, *tpl.ToAccountID,
		accountName(names, tpl.FromAccountID), accountName(names, tpl.ToAccountID),
		amount, date, tpl.Description, tpl.Notes,
	)

	if err := transfer.WritePair(ctx, uc.store, *tpl.FromAccountID, *tpl.ToAccountID, out, in); err != nil {
		return nil, err
	}
	return []*entity.Transaction{out, in}, nil
}
