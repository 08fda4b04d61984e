package stats

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report is the slice of a shift report the aggregation engine reads.
// Nil amount or transaction fields mean "not captured" and sum as zero.
type Report struct {
	Date         time.Time
	GrossSales   *decimal.Decimal
	FuelSales    *decimal.Decimal
	InsideSales  *decimal.Decimal
	CashVariance *decimal.Decimal
	Transactions *int64
}

// DaySummary holds the aggregated figures for one calendar day.
type DaySummary struct {
	Date          time.Time
	ShiftCount    int
	TotalSales    decimal.Decimal
	FuelSales     decimal.Decimal
	InsideSales   decimal.Decimal
	CashVariance  decimal.Decimal
	CustomerCount int64
}

// Baseline is the per-report average over a trailing window, used only
// as the comparison base for percentage changes.
type Baseline struct {
	AverageSales     decimal.Decimal
	AverageCustomers decimal.Decimal
}

// AverageChange carries signed percentage deltas vs the trailing baseline.
// A zero baseline reports 0, not an infinite or undefined value.
type AverageChange struct {
	Sales     float64 `json:"sales"`
	Customers float64 `json:"customers"`
}

// DateRange is a half-open window [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}
