package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMonthToDateSales(t *testing.T) {
	reports := []Report{
		{Date: day(2026, time.March, 1), GrossSales: dec("100.10")},
		{Date: day(2026, time.March, 2)}, // no sales captured
		{Date: day(2026, time.March, 3), GrossSales: dec("199.90")},
	}

	got := MonthToDateSales(reports)
	if !got.Equal(decimal.RequireFromString("300")) {
		t.Fatalf("month to date = %s, want 300", got)
	}
}

func TestMonthToDateSalesEmpty(t *testing.T) {
	got := MonthToDateSales(nil)
	if !got.Equal(decimal.Zero) {
		t.Fatalf("month to date = %s, want 0", got)
	}
}

func TestMonthToDateSalesMonotonic(t *testing.T) {
	// Adding a report never decreases the total: sales are non-negative
	// inputs here, so the running sum only grows.
	reports := []Report{
		{Date: day(2026, time.March, 1), GrossSales: dec("50")},
		{Date: day(2026, time.March, 2), GrossSales: dec("75")},
		{Date: day(2026, time.March, 3), GrossSales: dec("0")},
		{Date: day(2026, time.March, 4), GrossSales: dec("125.25")},
	}

	prev := decimal.Zero
	for i := range reports {
		total := MonthToDateSales(reports[:i+1])
		if total.LessThan(prev) {
			t.Fatalf("total decreased after report %d: %s < %s", i, total, prev)
		}
		prev = total
	}
}
