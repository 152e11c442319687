package handler

import (
	"github.com/gofiber/fiber/v2"

	"margent-backend/internal/domain"
	"margent-backend/internal/middleware"
	"margent-backend/internal/repository"
)

type KanbanHandler struct {
	kanbanRepo repository.KanbanRepository
}

func NewKanbanHandler(kanbanRepo repository.KanbanRepository) *KanbanHandler {
	return &KanbanHandler{kanbanRepo: kanbanRepo}
}

func (h *KanbanHandler) List(c *fiber.Ctx) error {
	if clientID := c.Query("client_id"); clientID != "" {
		boards, err := h.kanbanRepo.ListByClient(c.Context(), clientID)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(boards)
	}

	boards, err := h.kanbanRepo.List(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(boards)
}

func (h *KanbanHandler) Save(c *fiber.Ctx) error {
	var boards []domain.KanbanBoard
	if err := c.BodyParser(&boards); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.kanbanRepo.Save(c.Context(), boards); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
