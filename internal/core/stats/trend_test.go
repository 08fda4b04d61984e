package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTrailingBaseline(t *testing.T) {
	reports := []Report{
		{Date: day(2026, time.March, 13), GrossSales: dec("210"), Transactions: i64(20)},
		{Date: day(2026, time.March, 12), GrossSales: dec("190"), Transactions: i64(24)},
		{Date: day(2026, time.March, 11), GrossSales: dec("200"), Transactions: i64(22)},
	}

	got := TrailingBaseline(reports)
	if !got.AverageSales.Equal(decimal.RequireFromString("200")) {
		t.Fatalf("average sales = %s, want 200", got.AverageSales)
	}
	if !got.AverageCustomers.Equal(decimal.RequireFromString("22")) {
		t.Fatalf("average customers = %s, want 22", got.AverageCustomers)
	}
}

func TestTrailingBaselineEmpty(t *testing.T) {
	got := TrailingBaseline(nil)
	if !got.AverageSales.Equal(decimal.Zero) || !got.AverageCustomers.Equal(decimal.Zero) {
		t.Fatalf("empty window baseline = %+v, want zeros", got)
	}
}

func TestPercentChange(t *testing.T) {
	cases := []struct {
		name    string
		current string
		average string
		want    float64
	}{
		{"above average", "250", "200", 25},
		{"below average", "150", "200", -25},
		{"equal", "200", "200", 0},
		{"zero average", "250", "0", 0},
		{"negative average", "250", "-10", 0},
		{"zero current zero average", "0", "0", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PercentChange(decimal.RequireFromString(tc.current), decimal.RequireFromString(tc.average))
			if got != tc.want {
				t.Fatalf("PercentChange(%s, %s) = %v, want %v", tc.current, tc.average, got, tc.want)
			}
		})
	}
}

func TestChangeVsBaseline(t *testing.T) {
	summary := DaySummary{
		TotalSales:    decimal.RequireFromString("250"),
		CustomerCount: 30,
	}
	base := Baseline{
		AverageSales:     decimal.RequireFromString("200"),
		AverageCustomers: decimal.RequireFromString("24"),
	}

	got := ChangeVsBaseline(summary, base)
	if got.Sales != 25 {
		t.Fatalf("sales change = %v, want 25", got.Sales)
	}
	if got.Customers != 25 {
		t.Fatalf("customers change = %v, want 25", got.Customers)
	}
}

func TestChangeVsBaselineNoHistory(t *testing.T) {
	summary := DaySummary{
		TotalSales:    decimal.RequireFromString("500"),
		CustomerCount: 40,
	}

	got := ChangeVsBaseline(summary, Baseline{})
	if got.Sales != 0 || got.Customers != 0 {
		t.Fatalf("change with no history = %+v, want zeros", got)
	}
}
