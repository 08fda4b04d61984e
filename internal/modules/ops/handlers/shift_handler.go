package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cstorehq/store-ops-be/internal/modules/ops/models"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/services"
)

type ShiftHandler struct {
	shiftService *services.ShiftService
}

func NewShiftHandler(shiftService *services.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// CreateShiftReport godoc
// @Summary Submit a shift report
// @Tags Shifts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Store ID"
// @Param report body models.CreateShiftReportRequest true "Shift report data"
// @Success 201 {object} models.ShiftReport
// @Failure 400 {object} map[string]interface{}
// @Router /stores/{id}/shifts [post]
func (h *ShiftHandler) CreateShiftReport(c *fiber.Ctx) error {
	storeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid store ID",
		})
	}

	var req models.CreateShiftReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	submittedBy, _ := c.Locals("email").(string)

	report, err := h.shiftService.CreateReport(storeID, submittedBy, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

// ListShiftReports godoc
// @Summary List shift reports for a store
// @Tags Shifts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Store ID"
// @Param from query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "End date, exclusive"
// @Success 200 {array} models.ShiftReport
// @Failure 400 {object} map[string]interface{}
// @Router /stores/{id}/shifts [get]
func (h *ShiftHandler) ListShiftReports(c *fiber.Ctx) error {
	storeID := c.Params("id")
	if _, err := uuid.Parse(storeID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid store ID",
		})
	}

	start, err := parseDateQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid 'from' date",
		})
	}
	if start.IsZero() {
		// Default to the last 30 days
		start = time.Now().AddDate(0, 0, -30)
	}

	end, err := parseDateQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid 'to' date",
		})
	}

	reports, err := h.shiftService.ListReports(storeID, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list shift reports",
		})
	}

	return c.JSON(reports)
}

// GetShiftReport godoc
// @Summary Get a shift report by ID
// @Tags Shifts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Report ID"
// @Success 200 {object} models.ShiftReport
// @Failure 404 {object} map[string]interface{}
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShiftReport(c *fiber.Ctx) error {
	reportID := c.Params("id")
	if _, err := uuid.Parse(reportID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid report ID",
		})
	}

	report, err := h.shiftService.GetReport(reportID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Shift report not found",
		})
	}

	return c.JSON(report)
}

// DeleteShiftReport godoc
// @Summary Delete a shift report
// @Tags Shifts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) DeleteShiftReport(c *fiber.Ctx) error {
	reportID := c.Params("id")
	if _, err := uuid.Parse(reportID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid report ID",
		})
	}

	if err := h.shiftService.DeleteReport(reportID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete shift report",
		})
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}

// parseDateQuery accepts RFC3339 timestamps or bare dates; empty is zero.
func parseDateQuery(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
