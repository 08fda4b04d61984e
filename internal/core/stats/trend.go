package stats

import "github.com/shopspring/decimal"

// TrailingBaseline averages gross sales and transactions over the reports
// in the trailing window. Both averages are zero when the window is empty;
// callers must read that as "insufficient history", not "no change".
func TrailingBaseline(reports []Report) Baseline {
	if len(reports) == 0 {
		return Baseline{
			AverageSales:     decimal.Zero,
			AverageCustomers: decimal.Zero,
		}
	}

	totalSales := decimal.Zero
	var totalCustomers int64
	for _, r := range reports {
		totalSales = totalSales.Add(amount(r.GrossSales))
		totalCustomers += count(r.Transactions)
	}

	n := decimal.NewFromInt(int64(len(reports)))
	return Baseline{
		AverageSales:     totalSales.Div(n),
		AverageCustomers: decimal.NewFromInt(totalCustomers).Div(n),
	}
}

// PercentChange returns the signed percentage delta of current against
// average: (current - average) / average * 100. A non-positive average
// yields 0 to avoid division by zero.
func PercentChange(current, average decimal.Decimal) float64 {
	if average.Sign() <= 0 {
		return 0
	}
	change := current.Sub(average).Div(average).Mul(decimal.NewFromInt(100))
	return change.InexactFloat64()
}

// ChangeVsBaseline computes the percentage deltas of a day summary against
// the trailing baseline, separately for sales and customer count.
func ChangeVsBaseline(day DaySummary, base Baseline) AverageChange {
	return AverageChange{
		Sales:     PercentChange(day.TotalSales, base.AverageSales),
		Customers: PercentChange(decimal.NewFromInt(day.CustomerCount), base.AverageCustomers),
	}
}
