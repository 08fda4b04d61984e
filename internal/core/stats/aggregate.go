package stats

import (
	"time"

	"github.com/shopspring/decimal"
)

// amount reads an optional decimal, defaulting to zero. Absence of a
// capture is not an error; it simply contributes nothing to the sum.
func amount(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func count(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}

// summarize folds a report list into one DaySummary. Both the same-day and
// the fallback path run through here; shiftCount is an explicit parameter so
// the fallback can pin it to 1 instead of relying on list length.
func summarize(reports []Report, day time.Time, shiftCount int) DaySummary {
	s := DaySummary{
		Date:         day,
		ShiftCount:   shiftCount,
		TotalSales:   decimal.Zero,
		FuelSales:    decimal.Zero,
		InsideSales:  decimal.Zero,
		CashVariance: decimal.Zero,
	}
	for _, r := range reports {
		s.TotalSales = s.TotalSales.Add(amount(r.GrossSales))
		s.FuelSales = s.FuelSales.Add(amount(r.FuelSales))
		s.InsideSales = s.InsideSales.Add(amount(r.InsideSales))
		s.CashVariance = s.CashVariance.Add(amount(r.CashVariance))
		s.CustomerCount += count(r.Transactions)
	}
	return s
}

// SummarizeDay aggregates the same-day report set. ok is false when the set
// is empty, in which case the caller should fall back to the most recent
// historical report.
func SummarizeDay(reports []Report, day time.Time) (DaySummary, bool) {
	if len(reports) == 0 {
		return DaySummary{}, false
	}
	return summarize(reports, day, len(reports)), true
}

// SummarizeFallback builds a summary from the single most recent historical
// report. The summary carries the report's own date, not today's, and the
// shift count is fixed at 1.
func SummarizeFallback(latest Report) DaySummary {
	return summarize([]Report{latest}, latest.Date, 1)
}
