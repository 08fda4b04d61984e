package repositories

import (
	"github.com/cstorehq/store-ops-be/internal/modules/ops/models"
	"gorm.io/gorm"
)

// StoreRepo interface defines store operations
type StoreRepo interface {
	Create(store *models.Store) error
	GetByID(id string) (*models.Store, error)
	GetByCode(code string) (*models.Store, error)
	List(activeOnly bool) ([]models.Store, error)
	Update(store *models.Store) error
}

type storeRepo struct {
	db *gorm.DB
}

// NewStoreRepo creates a new store repository
func NewStoreRepo(db *gorm.DB) StoreRepo {
	return &storeRepo{db: db}
}

// Create inserts a new store
func (r *storeRepo) Create(store *models.Store) error {
	return r.db.Create(store).Error
}

// GetByID retrieves a store by ID
func (r *storeRepo) GetByID(id string) (*models.Store, error) {
	var store models.Store
	err := r.db.Where("id = ?", id).First(&store).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// GetByCode retrieves a store by its short code
func (r *storeRepo) GetByCode(code string) (*models.Store, error) {
	var store models.Store
	err := r.db.Where("code = ?", code).First(&store).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// List retrieves stores, optionally only active ones
func (r *storeRepo) List(activeOnly bool) ([]models.Store, error) {
	var stores []models.Store
	query := r.db.Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}

// Update saves store changes
func (r *storeRepo) Update(store *models.Store) error {
	return r.db.Save(store).Error
}
