package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cstorehq/store-ops-be/internal/modules/ops/models"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/services"
)

type AlertHandler struct {
	alertService *services.AlertService
}

func NewAlertHandler(alertService *services.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// CreateAlert godoc
// @Summary Raise an alert for a store
// @Tags Alerts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Store ID"
// @Param alert body models.CreateAlertRequest true "Alert data"
// @Success 201 {object} models.Alert
// @Failure 400 {object} map[string]interface{}
// @Router /stores/{id}/alerts [post]
func (h *AlertHandler) CreateAlert(c *fiber.Ctx) error {
	storeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid store ID",
		})
	}

	var req models.CreateAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	alert, err := h.alertService.CreateAlert(storeID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(alert)
}

// ListAlerts godoc
// @Summary List alerts for a store
// @Tags Alerts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Store ID"
// @Param include_resolved query boolean false "Include resolved alerts"
// @Param limit query integer false "Max number of alerts"
// @Success 200 {array} models.Alert
// @Router /stores/{id}/alerts [get]
func (h *AlertHandler) ListAlerts(c *fiber.Ctx) error {
	storeID := c.Params("id")
	if _, err := uuid.Parse(storeID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid store ID",
		})
	}

	includeResolved := c.QueryBool("include_resolved", false)
	limit := c.QueryInt("limit", 0)

	alerts, err := h.alertService.ListAlerts(storeID, includeResolved, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list alerts",
		})
	}

	return c.JSON(alerts)
}

// ResolveAlert godoc
// @Summary Resolve an alert
// @Tags Alerts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Alert ID"
// @Success 200 {object} models.Alert
// @Failure 404 {object} map[string]interface{}
// @Router /alerts/{id}/resolve [post]
func (h *AlertHandler) ResolveAlert(c *fiber.Ctx) error {
	alertID := c.Params("id")
	if _, err := uuid.Parse(alertID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid alert ID",
		})
	}

	resolvedBy, _ := c.Locals("email").(string)

	alert, err := h.alertService.ResolveAlert(alertID, resolvedBy)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(alert)
}
