package services

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/cstorehq/store-ops-be/internal/modules/ops/models"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/repositories"
)

type StoreService struct {
	storeRepo  repositories.StoreRepo
	appBaseURL string
}

func NewStoreService(storeRepo repositories.StoreRepo, appBaseURL string) *StoreService {
	return &StoreService{
		storeRepo:  storeRepo,
		appBaseURL: appBaseURL,
	}
}

// CreateStore registers a new store.
func (s *StoreService) CreateStore(req *models.CreateStoreRequest) (*models.Store, error) {
	if req.Name == "" || req.Code == "" {
		return nil, fmt.Errorf("name and code are required")
	}

	store := &models.Store{
		Name:         req.Name,
		Code:         req.Code,
		Address:      req.Address,
		ManagerName:  req.ManagerName,
		ManagerPhone: req.ManagerPhone,
		IsActive:     true,
	}
	if req.Timezone != "" {
		store.Timezone = req.Timezone
	}

	if err := s.storeRepo.Create(store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return store, nil
}

// GetStore retrieves a store by ID.
func (s *StoreService) GetStore(id string) (*models.Store, error) {
	return s.storeRepo.GetByID(id)
}

// ListStores retrieves stores, optionally only active ones.
func (s *StoreService) ListStores(activeOnly bool) ([]models.Store, error) {
	return s.storeRepo.List(activeOnly)
}

// UpdateStore applies a partial update to a store.
func (s *StoreService) UpdateStore(id string, req *models.UpdateStoreRequest) (*models.Store, error) {
	store, err := s.storeRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("store not found: %w", err)
	}

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.Address != nil {
		store.Address = *req.Address
	}
	if req.Timezone != nil {
		store.Timezone = *req.Timezone
	}
	if req.ManagerName != nil {
		store.ManagerName = *req.ManagerName
	}
	if req.ManagerPhone != nil {
		store.ManagerPhone = *req.ManagerPhone
	}
	if req.IsActive != nil {
		store.IsActive = *req.IsActive
	}

	if err := s.storeRepo.Update(store); err != nil {
		return nil, fmt.Errorf("failed to update store: %w", err)
	}
	return store, nil
}

// StoreQR renders a PNG QR code encoding the store's report-submission
// deep link, for posting at the register.
func (s *StoreService) StoreQR(id string) ([]byte, error) {
	store, err := s.storeRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("store not found: %w", err)
	}

	link := fmt.Sprintf("%s/stores/%s/shifts/new", s.appBaseURL, store.ID.String())
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR: %w", err)
	}
	return png, nil
}
