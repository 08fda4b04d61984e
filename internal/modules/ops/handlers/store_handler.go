package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cstorehq/store-ops-be/internal/modules/ops/models"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/services"
)

type StoreHandler struct {
	storeService *services.StoreService
}

func NewStoreHandler(storeService *services.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// CreateStore godoc
// @Summary Register a new store
// @Tags Stores
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param store body models.CreateStoreRequest true "Store data"
// @Success 201 {object} models.Store
// @Failure 400 {object} map[string]interface{}
// @Router /stores [post]
func (h *StoreHandler) CreateStore(c *fiber.Ctx) error {
	var req models.CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	store, err := h.storeService.CreateStore(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(store)
}

// GetStore godoc
// @Summary Get store by ID
// @Tags Stores
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Store ID"
// @Success 200 {object} models.Store
// @Failure 404 {object} map[string]interface{}
// @Router /stores/{id} [get]
func (h *StoreHandler) GetStore(c *fiber.Ctx) error {
	storeID := c.Params("id")
	if _, err := uuid.Parse(storeID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid store ID",
		})
	}

	store, err := h.storeService.GetStore(storeID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Store not found",
		})
	}

	return c.JSON(store)
}

// ListStores godoc
// @Summary List stores
// @Tags Stores
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param active query boolean false "Only active stores"
// @Success 200 {array} models.Store
// @Router /stores [get]
func (h *StoreHandler) ListStores(c *fiber.Ctx) error {
	activeOnly := c.QueryBool("active", false)

	stores, err := h.storeService.ListStores(activeOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list stores",
		})
	}

	return c.JSON(stores)
}

// UpdateStore godoc
// @Summary Update a store
// @Tags Stores
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Store ID"
// @Param store body models.UpdateStoreRequest true "Fields to update"
// @Success 200 {object} models.Store
// @Failure 400 {object} map[string]interface{}
// @Router /stores/{id} [patch]
func (h *StoreHandler) UpdateStore(c *fiber.Ctx) error {
	storeID := c.Params("id")
	if _, err := uuid.Parse(storeID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid store ID",
		})
	}

	var req models.UpdateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	store, err := h.storeService.UpdateStore(storeID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(store)
}

// StoreQR godoc
// @Summary Store report-submission QR code
// @Description PNG QR code encoding the store's shift report deep link
// @Tags Stores
// @Produce png
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Store ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]interface{}
// @Router /stores/{id}/qr [get]
func (h *StoreHandler) StoreQR(c *fiber.Ctx) error {
	storeID := c.Params("id")
	if _, err := uuid.Parse(storeID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid store ID",
		})
	}

	png, err := h.storeService.StoreQR(storeID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set("Content-Type", "image/png")
	c.Set("Content-Disposition", "attachment; filename=store-qr.png")
	return c.Send(png)
}
