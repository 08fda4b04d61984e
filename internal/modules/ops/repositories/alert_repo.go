package repositories

import (
	"github.com/cstorehq/store-ops-be/internal/modules/ops/models"
	"gorm.io/gorm"
)

// AlertRepo interface defines alert operations
type AlertRepo interface {
	Create(alert *models.Alert) error
	GetByID(id string) (*models.Alert, error)
	ListByStore(storeID string, includeResolved bool, limit int) ([]models.Alert, error)
	ListUnresolved(storeID string, limit int) ([]models.Alert, error)
	Update(alert *models.Alert) error
}

type alertRepo struct {
	db *gorm.DB
}

// NewAlertRepo creates a new alert repository
func NewAlertRepo(db *gorm.DB) AlertRepo {
	return &alertRepo{db: db}
}

// Create inserts a new alert
func (r *alertRepo) Create(alert *models.Alert) error {
	return r.db.Create(alert).Error
}

// GetByID retrieves an alert by ID
func (r *alertRepo) GetByID(id string) (*models.Alert, error) {
	var alert models.Alert
	err := r.db.Where("id = ?", id).First(&alert).Error
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// ListByStore retrieves alerts for a store, most recent first
func (r *alertRepo) ListByStore(storeID string, includeResolved bool, limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	query := r.db.Where("store_id = ?", storeID).Order("created_at DESC")
	if !includeResolved {
		query = query.Where("resolved = ?", false)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// ListUnresolved retrieves unresolved alerts, most recent first
func (r *alertRepo) ListUnresolved(storeID string, limit int) ([]models.Alert, error) {
	return r.ListByStore(storeID, false, limit)
}

// Update saves alert changes
func (r *alertRepo) Update(alert *models.Alert) error {
	return r.db.Save(alert).Error
}
