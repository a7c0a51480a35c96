package balance

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(amount string) *entity.Transaction {
	return entity.NewTransaction("Payee", dec(amount), entity.NewDate(2024, 1, 15), entity.CategoryUncategorized, "", "")
}

func TestCompute(t *testing.T) {
	account := entity.NewAccount("Current", entity.AccountTypeBank, dec("1000"), nil, "", 0)

	t.Run("empty ledger returns starting balance", func(t *testing.T) {
		got := Compute(account, nil)
		if !got.Equal(dec("1000")) {
			t.Errorf("expected 1000, got %s", got)
		}
	})

	t.Run("sums signed amounts", func(t *testing.T) {
		got := Compute(account, []*entity.Transaction{tx("-200.50"), tx("49.99")})
		if !got.Equal(dec("849.49")) {
			t.Errorf("expected 849.49, got %s", got)
		}
	})

	t.Run("append then remove restores prior balance", func(t *testing.T) {
		ledger := []*entity.Transaction{tx("-30")}
		before := Compute(account, ledger)

		ledger = append(ledger, tx("-12.34"))
		after := Compute(account, ledger[:1])
		if !after.Equal(before) {
			t.Errorf("expected %s after removal, got %s", before, after)
		}
	})
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name        string
		accountType entity.AccountType
		raw         string
		want        string
	}{
		{"bank is identity", entity.AccountTypeBank, "500", "500"},
		{"savings is identity", entity.AccountTypeSavings, "500", "500"},
		{"cash is identity", entity.AccountTypeCash, "-20", "-20"},
		{"credit negates", entity.AccountTypeCredit, "-350", "350"},
		{"loan negates", entity.AccountTypeLoan, "-12000", "12000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := entity.NewAccount("A", tt.accountType, decimal.Zero, nil, "", 0)
			got := Display(account, dec(tt.raw))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestNetWorthContribution(t *testing.T) {
	t.Run("plain account contributes raw balance", func(t *testing.T) {
		account := entity.NewAccount("Current", entity.AccountTypeBank, decimal.Zero, nil, "", 0)
		got := NetWorthContribution(account, dec("820"))
		if !got.Equal(dec("820")) {
			t.Errorf("expected 820, got %s", got)
		}
	})

	t.Run("loan nets asset value against amount owed", func(t *testing.T) {
		assetValue := dec("250000")
		account := entity.NewAccount("Mortgage", entity.AccountTypeLoan, decimal.Zero, &assetValue, "", 0)
		got := NetWorthContribution(account, dec("-180000"))
		if !got.Equal(dec("70000")) {
			t.Errorf("expected 70000, got %s", got)
		}
	})

	t.Run("loan without asset value contributes raw balance", func(t *testing.T) {
		account := entity.NewAccount("Car Loan", entity.AccountTypeLoan, decimal.Zero, nil, "", 0)
		got := NetWorthContribution(account, dec("-5000"))
		if !got.Equal(dec("-5000")) {
			t.Errorf("expected -5000, got %s", got)
		}
	})
}
