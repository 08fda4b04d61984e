package models

import (
	"github.com/shopspring/decimal"

	"github.com/cstorehq/store-ops-be/internal/core/stats"
)

// DashboardStats is the "today" snapshot for a store. It is computed fresh
// per request and never persisted.
type DashboardStats struct {
	Date          string              `json:"date"` // ISO calendar date, no time component
	ShiftCount    int                 `json:"shift_count"`
	TotalSales    decimal.Decimal     `json:"total_sales"`
	FuelSales     decimal.Decimal     `json:"fuel_sales"`
	InsideSales   decimal.Decimal     `json:"inside_sales"`
	CustomerCount int64               `json:"customer_count"`
	CashVariance  decimal.Decimal     `json:"cash_variance"`
	MonthlySales  decimal.Decimal     `json:"monthly_sales"`
	AverageChange stats.AverageChange `json:"average_change"`
}

// DashboardResponse is the dashboard endpoint body. Stats is null when the
// store has no reports at all.
type DashboardResponse struct {
	Stats   *DashboardStats `json:"stats"`
	Alerts  []Alert         `json:"alerts,omitempty"`
	Message string          `json:"message,omitempty"`
}
