// Package main is the entry point for the Brisk Budget API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/brisk-budget/backend/config"
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
	"github.com/brisk-budget/backend/internal/integration/adapters"
	"github.com/brisk-budget/backend/internal/integration/entrypoint/controller"
	"github.com/brisk-budget/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Brisk Budget API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"dataDir", cfg.Storage.DataDir,
	)

	// Initialize the JSON file store, seeding defaults on first run
	store, err := persistence.New(cfg.Storage.DataDir)
	if err != nil {
		slog.Error("Failed to initialize data store", "error", err)
		os.Exit(1)
	}

	clock := adapters.NewSystemClock()

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
		recurring.NewPendingUseCase(store, clock, cfg.Recurring.PendingWindowDays),
		recurring.NewApproveRecurringUseCase(store),
		recurring.NewSkipRecurringUseCase(store, cfg.Recurring.CountSkipped),
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

	// Setup router
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
	engine := r.Setup(cfg.Server.Environment)

	// Start the automatic backup scheduler on its own goroutine
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	scheduler := backup.NewScheduler(store, cfg.Backup.Dir, cfg.Backup.Interval, cfg.Backup.Retain, logger)
	go scheduler.Run(schedulerCtx)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
