// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/usecase/dashboard"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
	"github.com/brisk-budget/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard summary and chart endpoints.
type DashboardController struct {
	summaryUseCase  *dashboard.GetSummaryUseCase
	netWorthUseCase *dashboard.NetWorthSeriesUseCase
	flowsUseCase    *dashboard.CategoryFlowsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	netWorthUseCase *dashboard.NetWorthSeriesUseCase,
	flowsUseCase *dashboard.CategoryFlowsUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:  summaryUseCase,
		netWorthUseCase: netWorthUseCase,
		flowsUseCase:    flowsUseCase,
	}
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SummaryResponse{
		Cash:     output.Cash,
		Savings:  output.Savings,
		Debt:     output.Debt,
		NetWorth: output.NetWorth,
	})
}

// NetWorth handles GET /dashboard/net-worth requests. The range query
// parameter selects the history window, forecast enables projection, and
// accounts narrows the chart to a comma-separated list of account ids.
func (c *DashboardController) NetWorth(ctx *gin.Context) {
	input := dashboard.NetWorthSeriesInput{
		Range:         ctx.Query("range"),
		ForecastRange: ctx.Query("forecast"),
	}

	if raw := ctx.Query("accounts"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(s))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid account ID format",
				})
				return
			}
			input.AccountIDs = append(input.AccountIDs, id)
		}
	}

	output, err := c.netWorthUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNetWorthSeriesResponse(output.Points))
}

// Flows handles GET /dashboard/flows requests.
func (c *DashboardController) Flows(ctx *gin.Context) {
	input := dashboard.CategoryFlowsInput{
		Range:         ctx.Query("range"),
		ForecastRange: ctx.Query("forecast"),
	}

	output, err := c.flowsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	response := dto.CategoryFlowsResponse{
		Flows: dto.ToFlowsResponse(output.Flows),
	}
	if output.Forecast != nil {
		forecast := dto.ToFlowsResponse(*output.Forecast)
		response.Forecast = &forecast
	}
	ctx.JSON(http.StatusOK, response)
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		status := http.StatusInternalServerError
		if dashErr.Code == domainerror.ErrCodeInvalidChartRange {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	respondInternalError(ctx)
}
