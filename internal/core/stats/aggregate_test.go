package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func i64(n int64) *int64 {
	return &n
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarizeDaySumsFields(t *testing.T) {
	today := day(2026, time.March, 14)
	reports := []Report{
		{Date: today, GrossSales: dec("100"), FuelSales: dec("60"), InsideSales: dec("40"), CashVariance: dec("-1.25"), Transactions: i64(10)},
		{Date: today, GrossSales: dec("150"), FuelSales: dec("90"), InsideSales: dec("60"), CashVariance: dec("0.75"), Transactions: i64(15)},
	}

	got, ok := SummarizeDay(reports, today)
	if !ok {
		t.Fatalf("expected ok for non-empty set")
	}
	if got.ShiftCount != 2 {
		t.Fatalf("shift count = %d, want 2", got.ShiftCount)
	}
	if !got.TotalSales.Equal(decimal.RequireFromString("250")) {
		t.Fatalf("total sales = %s, want 250", got.TotalSales)
	}
	if !got.FuelSales.Equal(decimal.RequireFromString("150")) {
		t.Fatalf("fuel sales = %s, want 150", got.FuelSales)
	}
	if !got.InsideSales.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("inside sales = %s, want 100", got.InsideSales)
	}
	if !got.CashVariance.Equal(decimal.RequireFromString("-0.5")) {
		t.Fatalf("cash variance = %s, want -0.5", got.CashVariance)
	}
	if got.CustomerCount != 25 {
		t.Fatalf("customer count = %d, want 25", got.CustomerCount)
	}
	if !got.Date.Equal(today) {
		t.Fatalf("date = %v, want %v", got.Date, today)
	}
}

func TestSummarizeDayMissingFieldsSumAsZero(t *testing.T) {
	today := day(2026, time.March, 14)
	reports := []Report{
		{Date: today, GrossSales: dec("100")},
		{Date: today}, // nothing captured
		{Date: today, GrossSales: dec("20.50"), Transactions: i64(3)},
	}

	got, ok := SummarizeDay(reports, today)
	if !ok {
		t.Fatalf("expected ok")
	}
	if !got.TotalSales.Equal(decimal.RequireFromString("120.50")) {
		t.Fatalf("total sales = %s, want 120.50", got.TotalSales)
	}
	if !got.FuelSales.Equal(decimal.Zero) {
		t.Fatalf("fuel sales = %s, want 0", got.FuelSales)
	}
	if got.CustomerCount != 3 {
		t.Fatalf("customer count = %d, want 3", got.CustomerCount)
	}
	if got.ShiftCount != 3 {
		t.Fatalf("shift count = %d, want 3", got.ShiftCount)
	}
}

func TestSummarizeDayEmptySet(t *testing.T) {
	_, ok := SummarizeDay(nil, day(2026, time.March, 14))
	if ok {
		t.Fatalf("expected ok=false for empty set")
	}
}

func TestSummarizeDayAllZeroRecordStillCounts(t *testing.T) {
	// A same-day record with entirely absent fields must not trigger the
	// fallback path; it is a valid (zero) day.
	today := day(2026, time.March, 14)
	got, ok := SummarizeDay([]Report{{Date: today}}, today)
	if !ok {
		t.Fatalf("expected ok for one empty-but-present record")
	}
	if got.ShiftCount != 1 {
		t.Fatalf("shift count = %d, want 1", got.ShiftCount)
	}
	if !got.TotalSales.Equal(decimal.Zero) {
		t.Fatalf("total sales = %s, want 0", got.TotalSales)
	}
}

func TestSummarizeFallback(t *testing.T) {
	reportDay := day(2026, time.March, 11)
	latest := Report{
		Date:         reportDay,
		GrossSales:   dec("320.40"),
		FuelSales:    dec("200"),
		InsideSales:  dec("120.40"),
		CashVariance: dec("-3.00"),
		Transactions: i64(42),
	}

	got := SummarizeFallback(latest)
	if got.ShiftCount != 1 {
		t.Fatalf("shift count = %d, want 1", got.ShiftCount)
	}
	if !got.Date.Equal(reportDay) {
		t.Fatalf("date = %v, want the report's own date %v", got.Date, reportDay)
	}
	if !got.TotalSales.Equal(decimal.RequireFromString("320.40")) {
		t.Fatalf("total sales = %s, want 320.40", got.TotalSales)
	}
	if !got.CashVariance.Equal(decimal.RequireFromString("-3.00")) {
		t.Fatalf("cash variance = %s, want -3.00", got.CashVariance)
	}
	if got.CustomerCount != 42 {
		t.Fatalf("customer count = %d, want 42", got.CustomerCount)
	}
}
