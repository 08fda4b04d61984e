package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cstorehq/store-ops-be/internal/modules/ops/models"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Store dashboard snapshot
// @Description Today's aggregated stats (or latest-report fallback) plus recent unresolved alerts
// @Tags Dashboard
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Store ID"
// @Success 200 {object} models.DashboardResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /stores/{id}/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	storeID := c.Params("id")
	if _, err := uuid.Parse(storeID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid store ID",
		})
	}

	stats, err := h.dashboardService.BuildSnapshot(storeID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build dashboard",
		})
	}

	if stats == nil {
		return c.JSON(models.DashboardResponse{
			Stats:   nil,
			Message: "No data available",
		})
	}

	// Alert attachment is an independent read, not part of the snapshot.
	alerts, err := h.dashboardService.GetAlerts(storeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load alerts",
		})
	}

	return c.JSON(models.DashboardResponse{
		Stats:  stats,
		Alerts: alerts,
	})
}
