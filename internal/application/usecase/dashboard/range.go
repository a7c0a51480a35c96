// Package dashboard implements the derived views: summary cards, the
// net-worth series with its forecast extension, and the category cash-flow
// aggregation feeding the Sankey chart.
package dashboard

import (
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// ChartRange selects how far a chart looks back or forward.
type ChartRange string

const (
	Range1Week   ChartRange = "1w"
	Range1Month  ChartRange = "1m"
	Range3Months ChartRange = "3m"
	Range6Months ChartRange = "6m"
	Range1Year   ChartRange = "1y"
	Range5Years  ChartRange = "5y"
)

// ParseRange validates a range string, defaulting to one month.
func ParseRange(s string) (ChartRange, error) {
	if s == "" {
		return Range1Month, nil
	}
	switch r := ChartRange(s); r {
	case Range1Week, Range1Month, Range3Months, Range6Months, Range1Year, Range5Years:
		return r, nil
	}
	return "", domainerror.NewDashboardError(
		domainerror.ErrCodeInvalidChartRange,
		"unknown chart range",
		domainerror.ErrInvalidChartRange,
	)
}

// Start returns the history window's start for a range ending today.
func (r ChartRange) Start(today entity.Date) entity.Date {
	switch r {
	case Range1Week:
		return today.AddDays(-7)
	case Range1Month:
		return today.AddMonths(-1)
	case Range3Months:
		return today.AddMonths(-3)
	case Range6Months:
		return today.AddMonths(-6)
	case Range1Year:
		return today.AddYears(-1)
	case Range5Years:
		return today.AddYears(-5)
	}
	return today.AddMonths(-1)
}

// End returns the forecast window's end for a range starting today.
func (r ChartRange) End(today entity.Date) entity.Date {
	switch r {
	case Range1Week:
		return today.AddDays(7)
	case Range1Month:
		return today.AddMonths(1)
	case Range3Months:
		return today.AddMonths(3)
	case Range6Months:
		return today.AddMonths(6)
	case Range1Year:
		return today.AddYears(1)
	case Range5Years:
		return today.AddYears(5)
	}
	return today.AddMonths(1)
}

// Points returns how many intervals the range's series is divided into. A
// series carries Points+1 data points. Five years uses a coarser grid to
// keep chart payloads small.
func (r ChartRange) Points() int {
	switch r {
	case Range1Week:
		return 7
	case Range1Month:
		return 30
	case Range3Months:
		return 90
	case Range6Months:
		return 180
	case Range1Year:
		return 365
	case Range5Years:
		return 60
	}
	return 30
}
