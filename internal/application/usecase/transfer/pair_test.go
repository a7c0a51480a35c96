package transfer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/domain/entity"
)

func TestNewPair(t *testing.T) {
	fromID, toID := uuid.New(), uuid.New()
	amount := decimal.RequireFromString("200")
	date := entity.NewDate(2024, time.March, 10)

	out, in := NewPair(fromID, toID, "Current", "Savings", amount, date, "monthly top-up", "")

	t.Run("amounts are additive inverses", func(t *testing.T) {
		if !out.Amount.Add(in.Amount).IsZero() {
			t.Errorf("amounts %s and %s do not cancel", out.Amount, in.Amount)
		}
		if !out.Amount.Equal(decimal.RequireFromString("-200")) {
			t.Errorf("outgoing amount = %s, want -200", out.Amount)
		}
	})

	t.Run("halves cross-reference each other", func(t *testing.T) {
		if out.TransferID == nil || *out.TransferID != in.ID {
			t.Error("outgoing half does not point at incoming")
		}
		if in.TransferID == nil || *in.TransferID != out.ID {
			t.Error("incoming half does not point at outgoing")
		}
		if out.TransferAccountID == nil || *out.TransferAccountID != toID {
			t.Error("outgoing half does not name the target account")
		}
		if in.TransferAccountID == nil || *in.TransferAccountID != fromID {
			t.Error("incoming half does not name the source account")
		}
	})

	t.Run("payees name the counterparty", func(t *testing.T) {
		if out.Payee != "Transfer to Savings" {
			t.Errorf("outgoing payee = %q", out.Payee)
		}
		if in.Payee != "Transfer from Current" {
			t.Errorf("incoming payee = %q", in.Payee)
		}
	})

	t.Run("both halves categorized as Transfer", func(t *testing.T) {
		if out.Category != entity.CategoryTransfer || in.Category != entity.CategoryTransfer {
			t.Errorf("categories = %q, %q", out.Category, in.Category)
		}
	})

	t.Run("negative magnitude input is normalized", func(t *testing.T) {
		out, in := NewPair(fromID, toID, "Current", "Savings", decimal.RequireFromString("-75"), date, "", "")
		if !out.Amount.Equal(decimal.RequireFromString("-75")) || !in.Amount.Equal(decimal.RequireFromString("75")) {
			t.Errorf("amounts = %s, %s", out.Amount, in.Amount)
		}
	})
}

func TestStripTransferPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Transfer to Savings", "Savings"},
		{"Transfer from Current", "Current"},
		{"Transfer to Transfer from X", "Transfer from X"},
		{"Rent", "Rent"},
	}
	for _, tt := range tests {
		if got := stripTransferPrefix(tt.in); got != tt.want {
			t.Errorf("stripTransferPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
