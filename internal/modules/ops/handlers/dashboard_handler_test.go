package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cstorehq/store-ops-be/internal/modules/ops/models"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/services"
)

type stubShiftRepo struct {
	reports []models.ShiftReport
}

func (s *stubShiftRepo) Create(report *models.ShiftReport) error { return nil }

func (s *stubShiftRepo) GetByID(id string) (*models.ShiftReport, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubShiftRepo) ListByStoreAndRange(storeID string, start, end time.Time) ([]models.ShiftReport, error) {
	var out []models.ShiftReport
	for _, r := range s.reports {
		if !r.ReportDate.Before(start) && r.ReportDate.Before(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubShiftRepo) ListByStoreSince(storeID string, since time.Time) ([]models.ShiftReport, error) {
	var out []models.ShiftReport
	for _, r := range s.reports {
		if !r.ReportDate.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubShiftRepo) LatestByStore(storeID string) (*models.ShiftReport, error) {
	if len(s.reports) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &s.reports[0], nil
}

func (s *stubShiftRepo) ListRecentByStore(storeID string, limit int) ([]models.ShiftReport, error) {
	return s.reports, nil
}

func (s *stubShiftRepo) Delete(id string) error { return nil }

type stubAlertRepo struct {
	alerts []models.Alert
}

func (s *stubAlertRepo) Create(alert *models.Alert) error         { return nil }
func (s *stubAlertRepo) GetByID(id string) (*models.Alert, error) { return nil, gorm.ErrRecordNotFound }
func (s *stubAlertRepo) Update(alert *models.Alert) error         { return nil }

func (s *stubAlertRepo) ListByStore(storeID string, includeResolved bool, limit int) ([]models.Alert, error) {
	return s.alerts, nil
}

func (s *stubAlertRepo) ListUnresolved(storeID string, limit int) ([]models.Alert, error) {
	return s.alerts, nil
}

func newDashboardApp(shiftRepo *stubShiftRepo, alertRepo *stubAlertRepo) *fiber.App {
	svc := services.NewDashboardService(shiftRepo, alertRepo)
	handler := NewDashboardHandler(svc)

	app := fiber.New()
	app.Get("/stores/:id/dashboard", handler.GetDashboard)
	return app
}

const testStoreID = "7f0c2aa1-9a1f-4a8e-b021-2f4f4f9f1c11"

func TestGetDashboardNoData(t *testing.T) {
	app := newDashboardApp(&stubShiftRepo{}, &stubAlertRepo{})

	req := httptest.NewRequest("GET", "/stores/"+testStoreID+"/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Stats   *models.DashboardStats `json:"stats"`
		Message string                 `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode: %v\n%s", err, body)
	}
	if payload.Stats != nil {
		t.Fatalf("stats = %+v, want null", payload.Stats)
	}
	if payload.Message != "No data available" {
		t.Fatalf("message = %q, want %q", payload.Message, "No data available")
	}
}

func TestGetDashboardWithTodayReport(t *testing.T) {
	gross := decimal.RequireFromString("412.80")
	tx := int64(57)
	shiftRepo := &stubShiftRepo{reports: []models.ShiftReport{{
		ReportDate:        time.Now(),
		GrossSales:        &gross,
		TotalTransactions: &tx,
	}}}
	alertRepo := &stubAlertRepo{alerts: []models.Alert{{Title: "register drawer short", Severity: models.SeverityMedium}}}
	app := newDashboardApp(shiftRepo, alertRepo)

	req := httptest.NewRequest("GET", "/stores/"+testStoreID+"/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var payload models.DashboardResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode: %v\n%s", err, body)
	}
	if payload.Stats == nil {
		t.Fatalf("expected stats, got null:\n%s", body)
	}
	if payload.Stats.ShiftCount != 1 {
		t.Fatalf("shift count = %d, want 1", payload.Stats.ShiftCount)
	}
	if !payload.Stats.TotalSales.Equal(gross) {
		t.Fatalf("total sales = %s, want %s", payload.Stats.TotalSales, gross)
	}
	if len(payload.Alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(payload.Alerts))
	}
}

func TestGetDashboardInvalidStoreID(t *testing.T) {
	app := newDashboardApp(&stubShiftRepo{}, &stubAlertRepo{})

	req := httptest.NewRequest("GET", "/stores/not-a-uuid/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
