package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cstorehq/store-ops-be/internal/core/notify"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/models"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/repositories"
	"github.com/cstorehq/store-ops-be/internal/shared/utils"
)

type AlertService struct {
	alertRepo repositories.AlertRepo
	storeRepo repositories.StoreRepo
	notifier  *notify.Service
}

// NewAlertService creates the alert service. notifier may be nil when no
// notification channel is configured.
func NewAlertService(alertRepo repositories.AlertRepo, storeRepo repositories.StoreRepo, notifier *notify.Service) *AlertService {
	return &AlertService{
		alertRepo: alertRepo,
		storeRepo: storeRepo,
		notifier:  notifier,
	}
}

// CreateAlert raises an alert for a store. Critical alerts are pushed to the
// store manager's phone when a notifier is configured; a failed push never
// fails the create.
func (s *AlertService) CreateAlert(storeID uuid.UUID, req *models.CreateAlertRequest) (*models.Alert, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if req.Severity == "" {
		req.Severity = models.SeverityLow
	}
	if !models.ValidSeverity(req.Severity) {
		return nil, fmt.Errorf("invalid severity: %s", req.Severity)
	}

	store, err := s.storeRepo.GetByID(storeID.String())
	if err != nil {
		return nil, fmt.Errorf("store not found: %w", err)
	}

	alert := &models.Alert{
		StoreID:  storeID,
		Title:    req.Title,
		Message:  req.Message,
		Severity: req.Severity,
		Category: req.Category,
		Metadata: req.Metadata,
	}

	if err := s.alertRepo.Create(alert); err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	if alert.Severity == models.SeverityCritical && s.notifier != nil && store.ManagerPhone != "" {
		msg := fmt.Sprintf("🚨 CRITICAL alert at %s: %s\n%s", store.Name, alert.Title, alert.Message)
		if err := s.notifier.SendToManager(store.ManagerPhone, msg); err != nil {
			utils.LogWarn("failed to notify manager", map[string]interface{}{
				"store_id": storeID.String(),
				"alert_id": alert.ID.String(),
				"error":    err.Error(),
			})
		}
	}

	return alert, nil
}

// ListAlerts retrieves alerts for a store, most recent first.
func (s *AlertService) ListAlerts(storeID string, includeResolved bool, limit int) ([]models.Alert, error) {
	return s.alertRepo.ListByStore(storeID, includeResolved, limit)
}

// ResolveAlert marks an alert as resolved.
func (s *AlertService) ResolveAlert(id, resolvedBy string) (*models.Alert, error) {
	alert, err := s.alertRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("alert not found: %w", err)
	}
	if alert.Resolved {
		return alert, nil
	}

	now := time.Now()
	alert.Resolved = true
	alert.ResolvedAt = &now
	alert.ResolvedBy = resolvedBy

	if err := s.alertRepo.Update(alert); err != nil {
		return nil, fmt.Errorf("failed to resolve alert: %w", err)
	}
	return alert, nil
}
