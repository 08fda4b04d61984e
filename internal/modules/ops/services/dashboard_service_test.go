package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cstorehq/store-ops-be/internal/modules/ops/models"
)

// fakeShiftRepo serves canned reports with the same filtering semantics as
// the real repository: half-open date ranges, no upper bound on Since.
type fakeShiftRepo struct {
	reports []models.ShiftReport
	created []*models.ShiftReport
	err     error
}

func (f *fakeShiftRepo) Create(report *models.ShiftReport) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, report)
	return nil
}

func (f *fakeShiftRepo) GetByID(id string) (*models.ShiftReport, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeShiftRepo) ListByStoreAndRange(storeID string, start, end time.Time) ([]models.ShiftReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.ShiftReport
	for _, r := range f.reports {
		if !r.ReportDate.Before(start) && r.ReportDate.Before(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) ListByStoreSince(storeID string, since time.Time) ([]models.ShiftReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.ShiftReport
	for _, r := range f.reports {
		if !r.ReportDate.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) LatestByStore(storeID string) (*models.ShiftReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	var latest *models.ShiftReport
	for i := range f.reports {
		if latest == nil || f.reports[i].ReportDate.After(latest.ReportDate) {
			latest = &f.reports[i]
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (f *fakeShiftRepo) ListRecentByStore(storeID string, limit int) ([]models.ShiftReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && limit < len(f.reports) {
		return f.reports[:limit], nil
	}
	return f.reports, nil
}

func (f *fakeShiftRepo) Delete(id string) error { return f.err }

type fakeAlertRepo struct {
	alerts  []models.Alert
	created []*models.Alert
	byID    *models.Alert
	err     error
}

func (f *fakeAlertRepo) Create(alert *models.Alert) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, alert)
	return nil
}
func (f *fakeAlertRepo) GetByID(id string) (*models.Alert, error) {
	if f.byID != nil && f.byID.ID.String() == id {
		return f.byID, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAlertRepo) Update(alert *models.Alert) error { return f.err }
func (f *fakeAlertRepo) ListUnresolved(storeID string, limit int) ([]models.Alert, error) {
	return f.ListByStore(storeID, false, limit)
}

func (f *fakeAlertRepo) ListByStore(storeID string, includeResolved bool, limit int) ([]models.Alert, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && limit < len(f.alerts) {
		return f.alerts[:limit], nil
	}
	return f.alerts, nil
}

func dp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func ip(n int64) *int64 { return &n }

func report(date time.Time, gross string, tx int64) models.ShiftReport {
	return models.ShiftReport{
		ReportDate:        date,
		GrossSales:        dp(gross),
		TotalTransactions: ip(tx),
	}
}

// 08:00 on the 14th: reports submitted at 09:00 on prior days fall inside
// the trailing window, today's 09:00 reports do not.
var testNow = time.Date(2026, time.March, 14, 8, 0, 0, 0, time.UTC)

func testDay(d int) time.Time {
	return time.Date(2026, time.March, d, 9, 0, 0, 0, time.UTC)
}

func TestBuildSnapshotNoData(t *testing.T) {
	svc := NewDashboardService(&fakeShiftRepo{}, &fakeAlertRepo{})

	got, err := svc.BuildSnapshot("store-1", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("snapshot = %+v, want nil for a store with no reports", got)
	}
}

func TestBuildSnapshotSameDayShifts(t *testing.T) {
	repo := &fakeShiftRepo{reports: []models.ShiftReport{
		report(testDay(14), "100", 10),
		report(testDay(14).Add(8*time.Hour), "150", 15),
	}}
	svc := NewDashboardService(repo, &fakeAlertRepo{})

	got, err := svc.BuildSnapshot("store-1", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatalf("expected a snapshot")
	}
	if got.Date != "2026-03-14" {
		t.Fatalf("date = %s, want 2026-03-14", got.Date)
	}
	if got.ShiftCount != 2 {
		t.Fatalf("shift count = %d, want 2", got.ShiftCount)
	}
	if !got.TotalSales.Equal(decimal.RequireFromString("250")) {
		t.Fatalf("total sales = %s, want 250", got.TotalSales)
	}
	if got.CustomerCount != 25 {
		t.Fatalf("customer count = %d, want 25", got.CustomerCount)
	}
}

func TestBuildSnapshotFallbackToLatest(t *testing.T) {
	// Nothing today: the snapshot is built from the most recent report,
	// keeping that report's own date and a shift count of one.
	repo := &fakeShiftRepo{reports: []models.ShiftReport{
		report(testDay(11), "320.40", 42),
		report(testDay(9), "280", 38),
	}}
	svc := NewDashboardService(repo, &fakeAlertRepo{})

	got, err := svc.BuildSnapshot("store-1", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatalf("expected a fallback snapshot")
	}
	if got.Date != "2026-03-11" {
		t.Fatalf("date = %s, want the latest report's date 2026-03-11", got.Date)
	}
	if got.ShiftCount != 1 {
		t.Fatalf("shift count = %d, want 1", got.ShiftCount)
	}
	if !got.TotalSales.Equal(decimal.RequireFromString("320.40")) {
		t.Fatalf("total sales = %s, want 320.40", got.TotalSales)
	}
}

func TestBuildSnapshotTrendAgainstTrailingWeek(t *testing.T) {
	reports := []models.ShiftReport{report(testDay(14), "250", 30)}
	// Seven trailing days averaging 200 in sales and 24 customers.
	for d := 7; d <= 13; d++ {
		reports = append(reports, report(testDay(d), "200", 24))
	}
	svc := NewDashboardService(&fakeShiftRepo{reports: reports}, &fakeAlertRepo{})

	got, err := svc.BuildSnapshot("store-1", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AverageChange.Sales != 25 {
		t.Fatalf("sales change = %v, want 25", got.AverageChange.Sales)
	}
	if got.AverageChange.Customers != 25 {
		t.Fatalf("customers change = %v, want 25", got.AverageChange.Customers)
	}
}

func TestBuildSnapshotZeroBaseline(t *testing.T) {
	// No trailing history at all: percentage changes are zero, never an error.
	repo := &fakeShiftRepo{reports: []models.ShiftReport{
		report(testDay(14), "500", 40),
	}}
	svc := NewDashboardService(repo, &fakeAlertRepo{})

	got, err := svc.BuildSnapshot("store-1", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AverageChange.Sales != 0 || got.AverageChange.Customers != 0 {
		t.Fatalf("average change = %+v, want zeros", got.AverageChange)
	}
}

func TestBuildSnapshotMonthlySales(t *testing.T) {
	repo := &fakeShiftRepo{reports: []models.ShiftReport{
		report(testDay(1), "100", 10),
		report(testDay(5), "200", 20),
		report(testDay(14), "50", 5),
		{ReportDate: time.Date(2026, time.February, 28, 9, 0, 0, 0, time.UTC), GrossSales: dp("999"), TotalTransactions: ip(99)},
	}}
	svc := NewDashboardService(repo, &fakeAlertRepo{})

	got, err := svc.BuildSnapshot("store-1", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.MonthlySales.Equal(decimal.RequireFromString("350")) {
		t.Fatalf("monthly sales = %s, want 350 (February excluded)", got.MonthlySales)
	}
}

func TestBuildSnapshotIdempotent(t *testing.T) {
	repo := &fakeShiftRepo{reports: []models.ShiftReport{
		report(testDay(14), "250", 30),
		report(testDay(12), "210", 26),
	}}
	svc := NewDashboardService(repo, &fakeAlertRepo{})

	first, err := svc.BuildSnapshot("store-1", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.BuildSnapshot("store-1", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("snapshots differ across identical calls:\n%+v\n%+v", first, second)
	}
}

func TestBuildSnapshotRepoError(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := NewDashboardService(&fakeShiftRepo{err: repoErr}, &fakeAlertRepo{})

	_, err := svc.BuildSnapshot("store-1", testNow)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, repoErr) {
		t.Fatalf("error = %v, want it to wrap the repository error", err)
	}
}

func TestGetAlertsLimit(t *testing.T) {
	alerts := make([]models.Alert, 8)
	for i := range alerts {
		alerts[i] = models.Alert{Title: "check pumps", Severity: models.SeverityHigh}
	}
	svc := NewDashboardService(&fakeShiftRepo{}, &fakeAlertRepo{alerts: alerts})

	got, err := svc.GetAlerts("store-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != dashboardAlertLimit {
		t.Fatalf("alerts returned = %d, want %d", len(got), dashboardAlertLimit)
	}
}
