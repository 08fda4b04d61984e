package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cstorehq/store-ops-be/internal/modules/ops/services"
)

type AssistantHandler struct {
	assistantService *services.AssistantService
}

func NewAssistantHandler(assistantService *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// ChatRequest is the assistant chat payload
type ChatRequest struct {
	Message string `json:"message"`
}

// Chat godoc
// @Summary Ask the store assistant
// @Description Forwards a question to the language model with recent shifts and open alerts as context
// @Tags Assistant
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Store ID"
// @Param request body ChatRequest true "User message"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /stores/{id}/assistant [post]
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	storeID := c.Params("id")
	if _, err := uuid.Parse(storeID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid store ID",
		})
	}

	var req ChatRequest
	if err := c.BodyParser(&req); err != nil || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message is required",
		})
	}

	reply, err := h.assistantService.Chat(c.Context(), storeID, req.Message)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"reply": reply})
}
