// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/brisk-budget/backend/internal/application/usecase/account"
	"github.com/brisk-budget/backend/internal/application/usecase/backup"
	"github.com/brisk-budget/backend/internal/application/usecase/category"
	"github.com/brisk-budget/backend/internal/application/usecase/dashboard"
	"github.com/brisk-budget/backend/internal/application/usecase/payee"
	"github.com/brisk-budget/backend/internal/application/usecase/recurring"
	"github.com/brisk-budget/backend/internal/application/usecase/settings"
	"github.com/brisk-budget/backend/internal/application/usecase/transaction"
	"github.com/brisk-budget/backend/internal/application/usecase/transfer"
	"github.com/brisk-budget/backend/internal/infra/server/router"
	"github.com/brisk-budget/backend/internal/integration/entrypoint/controller"
	"github.com/brisk-budget/backend/internal/integration/persistence"
	"github.com/brisk-budget/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	clock        *mock.Clock
	dataDir      string
	response     *http.Response
	responseBody []byte

	// Named handles created during the scenario
	accountIDs   map[string]string
	recurringIDs map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			clock:        mock.NewClock(),
			accountIDs:   make(map[string]string),
			recurringIDs: make(map[string]string),
		}

		dataDir, err := os.MkdirTemp("", "brisk-budget-test-*")
		if err != nil {
			return ctx, err
		}
		tc.dataDir = dataDir

		engine, err := buildEngine(dataDir, tc.clock)
		if err != nil {
			return ctx, err
		}
		tc.server = httptest.NewServer(engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.dataDir != "" {
				os.RemoveAll(tc.dataDir)
			}
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerFinanceSteps(ctx)
}

// buildEngine wires the full application against a scenario-scoped data
// directory and settable clock.
func buildEngine(dataDir string, clock *mock.Clock) (*gin.Engine, error) {
	store, err := persistence.New(dataDir)
	if err != nil {
		return nil, err
	}

	healthController := controller.NewHealthController(func() bool {
		_, err := store.LastModified()
		return err == nil
	})
	accountController := controller.NewAccountController(
		account.NewCreateAccountUseCase(store),
		account.NewListAccountsUseCase(store),
		account.NewUpdateAccountUseCase(store),
		account.NewDeleteAccountUseCase(store),
		account.NewReorderAccountsUseCase(store),
	)
	transactionController := controller.NewTransactionController(
		transaction.NewListTransactionsUseCase(store),
		transaction.NewCreateTransactionUseCase(store),
		transaction.NewUpdateTransactionUseCase(store),
		transaction.NewDeleteTransactionUseCase(store),
		transaction.NewImportTransactionsUseCase(store),
	)
	transferController := controller.NewTransferController(
		transfer.NewCreateTransferUseCase(store, clock),
		transfer.NewConvertToTransferUseCase(store),
		transfer.NewConvertToTransactionUseCase(store),
	)
	recurringController := controller.NewRecurringController(
		recurring.NewCreateRecurringUseCase(store, clock),
		recurring.NewListRecurringUseCase(store),
		recurring.NewUpdateRecurringUseCase(store),
		recurring.NewDeleteRecurringUseCase(store),
		recurring.NewPendingUseCase(store, clock, 3),
		recurring.NewApproveRecurringUseCase(store),
		recurring.NewSkipRecurringUseCase(store, false),
	)
	categoryController := controller.NewCategoryController(
		category.NewListCategoriesUseCase(store),
		category.NewCreateCategoryUseCase(store),
		category.NewUpdateCategoryUseCase(store),
		category.NewDeleteCategoryUseCase(store),
		category.NewAddSubcategoryUseCase(store),
		category.NewUpdateSubcategoryUseCase(store),
		category.NewDeleteSubcategoryUseCase(store),
		category.NewReorderCategoriesUseCase(store),
		category.NewResetCategoriesUseCase(store),
	)
	payeeController := controller.NewPayeeController(
		payee.NewListPayeesUseCase(store),
		payee.NewCreatePayeeUseCase(store),
		payee.NewUpdatePayeeUseCase(store),
		payee.NewDeletePayeeUseCase(store),
		payee.NewLastCategoryUseCase(store),
	)
	dashboardController := controller.NewDashboardController(
		dashboard.NewGetSummaryUseCase(store),
		dashboard.NewNetWorthSeriesUseCase(store, clock),
		dashboard.NewCategoryFlowsUseCase(store, clock),
	)
	settingsController := controller.NewSettingsController(
		settings.NewGetSettingsUseCase(store),
		settings.NewUpdateSettingsUseCase(store),
	)
	backupController := controller.NewBackupController(
		backup.NewExportUseCase(store),
		backup.NewRestoreUseCase(store),
	)

	r := router.NewRouter(
		healthController,
		accountController,
		transactionController,
		transferController,
		recurringController,
		categoryController,
		payeeController,
		dashboardController,
		settingsController,
		backupController,
	)
	return r.Setup("test"), nil
}

// do sends a request to the scenario server and captures the response.
func (tc *TestContext) do(method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, tc.server.URL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	return err
}

// decode unmarshals the last response body into out.
func (tc *TestContext) decode(out any) error {
	if tc.responseBody == nil {
		return fmt.Errorf("no response captured")
	}
	return json.Unmarshal(tc.responseBody, out)
}

// expectStatus fails unless the last response had the given status code.
func (tc *TestContext) expectStatus(want int) error {
	if tc.response == nil {
		return fmt.Errorf("no response captured")
	}
	if tc.response.StatusCode != want {
		return fmt.Errorf("expected status %d, got %d: %s", want, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}
