package stats

import "github.com/shopspring/decimal"

// MonthToDateSales sums gross sales over the month-to-date report set.
// There is no upper date bound: a report accidentally dated in the future
// is included, matching the behavior of the reporting queries upstream.
func MonthToDateSales(reports []Report) decimal.Decimal {
	total := decimal.Zero
	for _, r := range reports {
		total = total.Add(amount(r.GrossSales))
	}
	return total
}
