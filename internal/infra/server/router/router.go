// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/brisk-budget/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	accountController     *controller.AccountController
	transactionController *controller.TransactionController
	transferController    *controller.TransferController
	recurringController   *controller.RecurringController
	categoryController    *controller.CategoryController
	payeeController       *controller.PayeeController
	dashboardController   *controller.DashboardController
	settingsController    *controller.SettingsController
	backupController      *controller.BackupController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	accountController *controller.AccountController,
	transactionController *controller.TransactionController,
	transferController *controller.TransferController,
	recurringController *controller.RecurringController,
	categoryController *controller.CategoryController,
	payeeController *controller.PayeeController,
	dashboardController *controller.DashboardController,
	settingsController *controller.SettingsController,
	backupController *controller.BackupController,
) *Router {
	return &Router{
		healthController:      healthController,
		accountController:     accountController,
		transactionController: transactionController,
		transferController:    transferController,
		recurringController:   recurringController,
		categoryController:    categoryController,
		payeeController:       payeeController,
		dashboardController:   dashboardController,
		settingsController:    settingsController,
		backupController:      backupController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		accounts := v1.Group("/accounts")
		{
			accounts.GET("", r.accountController.List)
			accounts.POST("", r.accountController.Create)
			accounts.PUT("/order", r.accountController.Reorder)
			accounts.PATCH("/:id", r.accountController.Update)
			accounts.DELETE("/:id", r.accountController.Delete)

			transactions := accounts.Group("/:id/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.POST("/import", r.transactionController.Import)
				transactions.PATCH("/:transactionId", r.transactionController.Update)
				transactions.DELETE("/:transactionId", r.transactionController.Delete)
				transactions.POST("/:transactionId/convert-to-transfer", r.transferController.ConvertToTransfer)
				transactions.POST("/:transactionId/convert-to-transaction", r.transferController.ConvertToTransaction)
			}
		}

		v1.POST("/transfers", r.transferController.Create)

		recurring := v1.Group("/recurring")
		{
			recurring.GET("", r.recurringController.List)
			recurring.POST("", r.recurringController.Create)
			recurring.GET("/pending", r.recurringController.Pending)
			recurring.PATCH("/:id", r.recurringController.Update)
			recurring.DELETE("/:id", r.recurringController.Delete)
			recurring.POST("/:id/approve", r.recurringController.Approve)
			recurring.POST("/:id/skip", r.recurringController.Skip)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PUT("/order", r.categoryController.Reorder)
			categories.POST("/reset", r.categoryController.Reset)
			categories.PATCH("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
			categories.POST("/:id/subcategories", r.categoryController.AddSubcategory)
			categories.PATCH("/:id/subcategories/:subcategoryId", r.categoryController.UpdateSubcategory)
			categories.DELETE("/:id/subcategories/:subcategoryId", r.categoryController.DeleteSubcategory)
		}

		payees := v1.Group("/payees")
		{
			payees.GET("", r.payeeController.List)
			payees.POST("", r.payeeController.Create)
			payees.GET("/last-category", r.payeeController.LastCategory)
			payees.PATCH("/:id", r.payeeController.Update)
			payees.DELETE("/:id", r.payeeController.Delete)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", r.dashboardController.Summary)
			dashboard.GET("/net-worth", r.dashboardController.NetWorth)
			dashboard.GET("/flows", r.dashboardController.Flows)
		}

		v1.GET("/settings", r.settingsController.Get)
		v1.PUT("/settings", r.settingsController.Update)

		backup := v1.Group("/backup")
		{
			backup.GET("/export", r.backupController.Export)
			backup.POST("/restore", r.backupController.Restore)
		}
	}
}
