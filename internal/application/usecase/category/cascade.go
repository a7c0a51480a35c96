// Package category implements the category tree: listing, creation, edits,
// deletion with reassignment, ordering and the reset to defaults.
// Transactions reference categories by name, so renames and deletions walk
// every account ledger and the recurring templates.
package category

import (
	"context"
	"fmt"

	"github.com/brisk-budget/backend/internal/application/adapter"
)

// reassign rewrites every transaction and recurring template whose category
// is in oldNames to use newName. Ledgers are written only when something
// actually changed.
func reassign(ctx context.Context, store adapter.RecordStore, oldNames []string, newName string) error {
	targets := make(map[string]struct{}, len(oldNames))
	for _, name := range oldNames {
		targets[name] = struct{}{}
	}

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
			if _, hit := targets[tx.Category]; hit {
				tx.Category = newName
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
		if _, hit := targets[tpl.Category]; hit {
			tpl.Category = newName
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
