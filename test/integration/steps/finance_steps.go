// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

// accountResponse mirrors the account fields the steps inspect.
type accountResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
}

type accountListResponse struct {
	Accounts []accountResponse `json:"accounts"`
}

// transactionResponse mirrors the transaction fields the steps inspect.
type transactionResponse struct {
	ID         string          `json:"id"`
	Payee      string          `json:"payee"`
	Amount     decimal.Decimal `json:"amount"`
	Category   string          `json:"category"`
	TransferID *string         `json:"transferId"`
}

type transactionListResponse struct {
	Transactions []transactionResponse `json:"transactions"`
}

type recurringResponse struct {
	ID          string `json:"id"`
	Payee       string `json:"payee"`
	NextDueDate string `json:"nextDueDate"`
}

type recurringListResponse struct {
	Recurring []recurringResponse `json:"recurring"`
}

// registerFinanceSteps registers the domain step definitions.
func registerFinanceSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^today is "([^"]*)"$`, todayIs)
	ctx.Step(`^an account "([^"]*)" of type "([^"]*)" with starting balance "([^"]*)"$`, anAccountWithStartingBalance)
	ctx.Step(`^I transfer "([^"]*)" from "([^"]*)" to "([^"]*)" on "([^"]*)"$`, iTransferOn)
	ctx.Step(`^I convert the transfer received in "([^"]*)" to a plain transaction$`, iConvertTheReceivedTransfer)
	ctx.Step(`^the balance of "([^"]*)" should be "([^"]*)"$`, theBalanceShouldBe)
	ctx.Step(`^the ledger of "([^"]*)" should hold (\d+) transactions?$`, theLedgerShouldHold)
	ctx.Step(`^the only transaction in "([^"]*)" should have payee "([^"]*)" and category "([^"]*)"$`, theOnlyTransactionShouldHave)
	ctx.Step(`^a monthly recurring payment "([^"]*)" of "([^"]*)" from "([^"]*)" starting on "([^"]*)"$`, aMonthlyRecurringPayment)
	ctx.Step(`^I approve the next occurrence of "([^"]*)"$`, iApproveTheNextOccurrence)
	ctx.Step(`^the next due date of "([^"]*)" should be "([^"]*)"$`, theNextDueDateShouldBe)
}

func todayIs(ctx context.Context, date string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	tc.clock.Set(parsed.UTC())
	return nil
}

func anAccountWithStartingBalance(ctx context.Context, name, accountType, balance string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	startingBalance, err := decimal.NewFromString(balance)
	if err != nil {
		return err
	}
	err = tc.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"name":            name,
		"type":            accountType,
		"startingBalance": startingBalance,
	})
	if err != nil {
		return err
	}
	if err := tc.expectStatus(http.StatusCreated); err != nil {
		return err
	}

	var created accountResponse
	if err := tc.decode(&created); err != nil {
		return err
	}
	tc.accountIDs[name] = created.ID
	return nil
}

func iTransferOn(ctx context.Context, amount, from, to, date string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	err = tc.do(http.MethodPost, "/api/v1/transfers", map[string]any{
		"fromAccountId": tc.accountIDs[from],
		"toAccountId":   tc.accountIDs[to],
		"amount":        value,
		"date":          date,
	})
	if err != nil {
		return err
	}
	return tc.expectStatus(http.StatusCreated)
}

func iConvertTheReceivedTransfer(ctx context.Context, accountName string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	transactions, err := tc.listTransactions(accountName)
	if err != nil {
		return err
	}
	for _, tx := range transactions {
		if tx.TransferID != nil && tx.Amount.Sign() > 0 {
			path := fmt.Sprintf("/api/v1/accounts/%s/transactions/%s/convert-to-transaction", tc.accountIDs[accountName], tx.ID)
			if err := tc.do(http.MethodPost, path, nil); err != nil {
				return err
			}
			return tc.expectStatus(http.StatusOK)
		}
	}
	return fmt.Errorf("no incoming transfer found in account %q", accountName)
}

func theBalanceShouldBe(ctx context.Context, accountName, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	want, err := decimal.NewFromString(expected)
	if err != nil {
		return err
	}

	if err := tc.do(http.MethodGet, "/api/v1/accounts?all=true", nil); err != nil {
		return err
	}
	var accounts accountListResponse
	if err := tc.decode(&accounts); err != nil {
		return err
	}

	balance := decimal.Zero
	found := false
	for _, account := range accounts.Accounts {
		if account.Name == accountName {
			balance = account.StartingBalance
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("account %q not found", accountName)
	}

	transactions, err := tc.listTransactions(accountName)
	if err != nil {
		return err
	}
	for _, tx := range transactions {
		balance = balance.Add(tx.Amount)
	}

	if !balance.Equal(want) {
		return fmt.Errorf("expected balance %s for %q, got %s", want, accountName, balance)
	}
	return nil
}

func theLedgerShouldHold(ctx context.Context, accountName string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	transactions, err := tc.listTransactions(accountName)
	if err != nil {
		return err
	}
	if len(transactions) != count {
		return fmt.Errorf("expected %d transactions in %q, got %d", count, accountName, len(transactions))
	}
	return nil
}

func theOnlyTransactionShouldHave(ctx context.Context, accountName, payee, category string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	transactions, err := tc.listTransactions(accountName)
	if err != nil {
		return err
	}
	if len(transactions) != 1 {
		return fmt.Errorf("expected exactly one transaction in %q, got %d", accountName, len(transactions))
	}
	tx := transactions[0]
	if tx.Payee != payee {
		return fmt.Errorf("expected payee %q, got %q", payee, tx.Payee)
	}
	if tx.Category != category {
		return fmt.Errorf("expected category %q, got %q", category, tx.Category)
	}
	if tx.TransferID != nil {
		return fmt.Errorf("expected a plain transaction, still linked to transfer %s", *tx.TransferID)
	}
	return nil
}

func aMonthlyRecurringPayment(ctx context.Context, payee, amount, accountName, startDate string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	err = tc.do(http.MethodPost, "/api/v1/recurring", map[string]any{
		"type":      "transaction",
		"accountId": tc.accountIDs[accountName],
		"payee":     payee,
		"amount":    value,
		"frequency": map[string]any{"type": "months", "interval": 1},
		"startDate": startDate,
	})
	if err != nil {
		return err
	}
	if err := tc.expectStatus(http.StatusCreated); err != nil {
		return err
	}

	var created recurringResponse
	if err := tc.decode(&created); err != nil {
		return err
	}
	tc.recurringIDs[payee] = created.ID
	return nil
}

func iApproveTheNextOccurrence(ctx context.Context, payee string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	id, ok := tc.recurringIDs[payee]
	if !ok {
		return fmt.Errorf("no recurring payment named %q", payee)
	}
	if err := tc.do(http.MethodPost, "/api/v1/recurring/"+id+"/approve", nil); err != nil {
		return err
	}
	return tc.expectStatus(http.StatusOK)
}

func theNextDueDateShouldBe(ctx context.Context, payee, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	if err := tc.do(http.MethodGet, "/api/v1/recurring", nil); err != nil {
		return err
	}
	var list recurringListResponse
	if err := tc.decode(&list); err != nil {
		return err
	}
	for _, tpl := range list.Recurring {
		if tpl.Payee == payee {
			if tpl.NextDueDate != expected {
				return fmt.Errorf("expected next due date %s for %q, got %s", expected, payee, tpl.NextDueDate)
			}
			return nil
		}
	}
	return fmt.Errorf("no recurring payment named %q", payee)
}

// listTransactions fetches the named account's ledger.
func (tc *TestContext) listTransactions(accountName string) ([]transactionResponse, error) {
	id, ok := tc.accountIDs[accountName]
	if !ok {
		return nil, fmt.Errorf("account %q was never created", accountName)
	}
	if err := tc.do(http.MethodGet, "/api/v1/accounts/"+id+"/transactions", nil); err != nil {
		return nil, err
	}
	if err := tc.expectStatus(http.StatusOK); err != nil {
		return nil, err
	}
	var list transactionListResponse
	if err := tc.decode(&list); err != nil {
		return nil, err
	}
	return list.Transactions, nil
}
