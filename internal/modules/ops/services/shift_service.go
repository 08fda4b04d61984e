package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cstorehq/store-ops-be/internal/modules/ops/models"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/repositories"
	"github.com/cstorehq/store-ops-be/internal/shared/utils"
)

type ShiftService struct {
	shiftRepo repositories.ShiftReportRepo
	storeRepo repositories.StoreRepo
}

func NewShiftService(shiftRepo repositories.ShiftReportRepo, storeRepo repositories.StoreRepo) *ShiftService {
	return &ShiftService{
		shiftRepo: shiftRepo,
		storeRepo: storeRepo,
	}
}

// CreateReport validates and stores a submitted shift report.
func (s *ShiftService) CreateReport(storeID uuid.UUID, submittedBy string, req *models.CreateShiftReportRequest) (*models.ShiftReport, error) {
	if req.ReportDate.IsZero() {
		return nil, fmt.Errorf("report_date is required")
	}

	if _, err := s.storeRepo.GetByID(storeID.String()); err != nil {
		return nil, fmt.Errorf("store not found: %w", err)
	}

	// Amounts are non-negative except cash_variance, which may be a
	// shortage (negative) or overage (positive).
	if req.GrossSales != nil && req.GrossSales.Sign() < 0 {
		return nil, fmt.Errorf("gross_sales must not be negative")
	}
	if req.FuelSales != nil && req.FuelSales.Sign() < 0 {
		return nil, fmt.Errorf("fuel_sales must not be negative")
	}
	if req.InsideSales != nil && req.InsideSales.Sign() < 0 {
		return nil, fmt.Errorf("inside_sales must not be negative")
	}
	if req.TotalTransactions != nil && *req.TotalTransactions < 0 {
		return nil, fmt.Errorf("total_transactions must not be negative")
	}

	report := &models.ShiftReport{
		StoreID:           storeID,
		ReportDate:        req.ReportDate,
		ShiftName:         req.ShiftName,
		GrossSales:        req.GrossSales,
		FuelSales:         req.FuelSales,
		InsideSales:       req.InsideSales,
		CashVariance:      req.CashVariance,
		TotalTransactions: req.TotalTransactions,
		Notes:             req.Notes,
		Metadata:          req.Metadata,
		SubmittedBy:       submittedBy,
	}

	if err := s.shiftRepo.Create(report); err != nil {
		return nil, fmt.Errorf("failed to create shift report: %w", err)
	}

	utils.LogInfo("shift report submitted", map[string]interface{}{
		"store_id":    storeID.String(),
		"report_id":   report.ID.String(),
		"report_date": report.ReportDate.Format("2006-01-02"),
	})

	return report, nil
}

// GetReport retrieves one report by ID.
func (s *ShiftService) GetReport(id string) (*models.ShiftReport, error) {
	return s.shiftRepo.GetByID(id)
}

// ListReports retrieves reports for a store within [start, end). A zero end
// means "through now".
func (s *ShiftService) ListReports(storeID string, start, end time.Time) ([]models.ShiftReport, error) {
	if end.IsZero() {
		end = time.Now()
	}
	return s.shiftRepo.ListByStoreAndRange(storeID, start, end)
}

// DeleteReport removes a report.
func (s *ShiftService) DeleteReport(id string) error {
	return s.shiftRepo.Delete(id)
}
