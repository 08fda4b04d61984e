package repositories

import (
	"time"

	"github.com/cstorehq/store-ops-be/internal/modules/ops/models"
	"gorm.io/gorm"
)

// ShiftReportRepo interface defines shift report operations. All list
// methods return reports ordered by report_date DESC; the dashboard core
// re-derives any ordering it needs from that.
type ShiftReportRepo interface {
	Create(report *models.ShiftReport) error
	GetByID(id string) (*models.ShiftReport, error)
	ListByStoreAndRange(storeID string, start, end time.Time) ([]models.ShiftReport, error)
	ListByStoreSince(storeID string, since time.Time) ([]models.ShiftReport, error)
	LatestByStore(storeID string) (*models.ShiftReport, error)
	ListRecentByStore(storeID string, limit int) ([]models.ShiftReport, error)
	Delete(id string) error
}

type shiftReportRepo struct {
	db *gorm.DB
}

// NewShiftReportRepo creates a new shift report repository
func NewShiftReportRepo(db *gorm.DB) ShiftReportRepo {
	return &shiftReportRepo{db: db}
}

// Create inserts a new shift report
func (r *shiftReportRepo) Create(report *models.ShiftReport) error {
	return r.db.Create(report).Error
}

// GetByID retrieves a shift report by ID
func (r *shiftReportRepo) GetByID(id string) (*models.ShiftReport, error) {
	var report models.ShiftReport
	err := r.db.Where("id = ?", id).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ListByStoreAndRange retrieves reports with report_date in [start, end)
func (r *shiftReportRepo) ListByStoreAndRange(storeID string, start, end time.Time) ([]models.ShiftReport, error) {
	var reports []models.ShiftReport
	err := r.db.
		Where("store_id = ? AND report_date >= ? AND report_date < ?", storeID, start, end).
		Order("report_date DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// ListByStoreSince retrieves reports with report_date >= since, with no
// upper bound. Future-dated reports are included.
func (r *shiftReportRepo) ListByStoreSince(storeID string, since time.Time) ([]models.ShiftReport, error) {
	var reports []models.ShiftReport
	err := r.db.
		Where("store_id = ? AND report_date >= ?", storeID, since).
		Order("report_date DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// LatestByStore retrieves the single most recent report for the store,
// regardless of date. Returns gorm.ErrRecordNotFound when the store has
// never submitted a report.
func (r *shiftReportRepo) LatestByStore(storeID string) (*models.ShiftReport, error) {
	var report models.ShiftReport
	err := r.db.
		Where("store_id = ?", storeID).
		Order("report_date DESC").
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ListRecentByStore retrieves the latest reports for assistant context
func (r *shiftReportRepo) ListRecentByStore(storeID string, limit int) ([]models.ShiftReport, error) {
	var reports []models.ShiftReport
	query := r.db.Where("store_id = ?", storeID).Order("report_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// Delete removes a shift report
func (r *shiftReportRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.ShiftReport{}).Error
}
