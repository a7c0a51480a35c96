// Package balance contains the pure balance arithmetic shared by account
// views, dashboard cards and the net worth series. Callers supply the
// transaction list; nothing here touches storage.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/domain/entity"
)

// Compute returns the account's raw balance: starting balance plus the sum
// of every transaction amount.
func Compute(account *entity.Account, transactions []*entity.Transaction) decimal.Decimal {
	total := account.StartingBalance
	for _, tx := range transactions {
		total = total.Add(tx.Amount)
	}
	return total
}

// Display applies the sign convention for the account type. Credit and loan
// balances are stored negative while owed, so they are negated for display:
// a positive display balance reads as "amount owed".
func Display(account *entity.Account, raw decimal.Decimal) decimal.Decimal {
	if account.IsDebt() {
		return raw.Neg()
	}
	return raw
}

// NetWorthContribution returns the account's signed contribution to
// aggregate net worth. Loan, investment and asset accounts with an asset
// value contribute assetValue + rawBalance (a loan's raw balance is negative
// while owed, netting the asset against the debt); all other accounts
// contribute their raw balance.
func NetWorthContribution(account *entity.Account, raw decimal.Decimal) decimal.Decimal {
	if account.HasAssetValue() {
		return account.AssetValue.Add(raw)
	}
	return raw
}
