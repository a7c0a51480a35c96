// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/application/usecase/dashboard"
)

// SummaryResponse represents the dashboard summary cards.
type SummaryResponse struct {
	Cash     decimal.Decimal `json:"cash"`
	Savings  decimal.Decimal `json:"savings"`
	Debt     decimal.Decimal `json:"debt"`
	NetWorth decimal.Decimal `json:"netWorth"`
}

// SeriesPointResponse represents one sample of the net worth chart.
type SeriesPointResponse struct {
	Date       time.Time       `json:"date"`
	Value      decimal.Decimal `json:"value"`
	IsForecast bool            `json:"isForecast"`
}

// NetWorthSeriesResponse represents the net worth chart series.
type NetWorthSeriesResponse struct {
	Points []SeriesPointResponse `json:"points"`
}

// FlowsResponse represents income and expense totals keyed by category.
type FlowsResponse struct {
	Income   map[string]decimal.Decimal `json:"income"`
	Expenses map[string]decimal.Decimal `json:"expenses"`
}

// CategoryFlowsResponse represents the cash-flow chart data. Forecast is
// present only when a forecast range was requested.
type CategoryFlowsResponse struct {
	Flows    FlowsResponse  `json:"flows"`
	Forecast *FlowsResponse `json:"forecast,omitempty"`
}

// ToNetWorthSeriesResponse converts series points to a chart response.
func ToNetWorthSeriesResponse(points []dashboard.SeriesPoint) NetWorthSeriesResponse {
	responses := make([]SeriesPointResponse, 0, len(points))
	for _, point := range points {
		responses = append(responses, SeriesPointResponse{
			Date:       point.Date,
			Value:      point.Value,
			IsForecast: point.IsForecast,
		})
	}
	return NetWorthSeriesResponse{Points: responses}
}

// ToFlowsResponse converts category flow totals to their wire form.
func ToFlowsResponse(flows dashboard.Flows) FlowsResponse {
	return FlowsResponse{
		Income:   flows.Income,
		Expenses: flows.Expenses,
	}
}
