package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cstorehq/store-ops-be/internal/core/stats"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/models"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/repositories"
)

// Dashboard shows at most this many unresolved alerts.
const dashboardAlertLimit = 5

// How many trailing days feed the comparison baseline.
const trailingDays = 7

type DashboardService struct {
	shiftRepo repositories.ShiftReportRepo
	alertRepo repositories.AlertRepo
}

func NewDashboardService(shiftRepo repositories.ShiftReportRepo, alertRepo repositories.AlertRepo) *DashboardService {
	return &DashboardService{
		shiftRepo: shiftRepo,
		alertRepo: alertRepo,
	}
}

// BuildSnapshot computes the "today" statistics snapshot for a store.
// Returns (nil, nil) when the store has never submitted a report; that is
// a legitimate no-data state, not an error. Repository failures propagate
// unchanged.
func (s *DashboardService) BuildSnapshot(storeID string, now time.Time) (*models.DashboardStats, error) {
	day := stats.DayWindow(now)
	todayReports, err := s.shiftRepo.ListByStoreAndRange(storeID, day.Start, day.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch today's reports: %w", err)
	}

	summary, ok := stats.SummarizeDay(toRecords(todayReports), day.Start)
	if !ok {
		// No same-day data: fall back to the most recent report on file.
		latest, err := s.shiftRepo.LatestByStore(storeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to fetch latest report: %w", err)
		}
		summary = stats.SummarizeFallback(toRecord(latest))
	}

	window := stats.TrailingWindow(now, trailingDays)
	weekReports, err := s.shiftRepo.ListByStoreAndRange(storeID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trailing reports: %w", err)
	}
	change := stats.ChangeVsBaseline(summary, stats.TrailingBaseline(toRecords(weekReports)))

	monthReports, err := s.shiftRepo.ListByStoreSince(storeID, stats.MonthStart(now))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch month-to-date reports: %w", err)
	}

	return &models.DashboardStats{
		Date:          summary.Date.Format("2006-01-02"),
		ShiftCount:    summary.ShiftCount,
		TotalSales:    summary.TotalSales,
		FuelSales:     summary.FuelSales,
		InsideSales:   summary.InsideSales,
		CustomerCount: summary.CustomerCount,
		CashVariance:  summary.CashVariance,
		MonthlySales:  stats.MonthToDateSales(toRecords(monthReports)),
		AverageChange: change,
	}, nil
}

// GetAlerts returns the most recent unresolved alerts shown alongside the
// snapshot. This is a separate read, not fused into BuildSnapshot.
func (s *DashboardService) GetAlerts(storeID string) ([]models.Alert, error) {
	return s.alertRepo.ListUnresolved(storeID, dashboardAlertLimit)
}

func toRecord(r *models.ShiftReport) stats.Report {
	return stats.Report{
		Date:         r.ReportDate,
		GrossSales:   r.GrossSales,
		FuelSales:    r.FuelSales,
		InsideSales:  r.InsideSales,
		CashVariance: r.CashVariance,
		Transactions: r.TotalTransactions,
	}
}

func toRecords(reports []models.ShiftReport) []stats.Report {
	records := make([]stats.Report, len(reports))
	for i := range reports {
		records[i] = toRecord(&reports[i])
	}
	return records
}
