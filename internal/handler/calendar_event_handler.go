package handler

import (
	"github.com/gofiber/fiber/v2"

	"margent-backend/internal/domain"
	"margent-backend/internal/middleware"
	"margent-backend/internal/repository"
)

type CalendarEventHandler struct {
	eventRepo repository.CalendarEventRepository
}

func NewCalendarEventHandler(eventRepo repository.CalendarEventRepository) *CalendarEventHandler {
	return &CalendarEventHandler{eventRepo: eventRepo}
}

func (h *CalendarEventHandler) List(c *fiber.Ctx) error {
	if clientID := c.Query("client_id"); clientID != "" {
		events, err := h.eventRepo.ListByClient(c.Context(), clientID)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(events)
	}

	events, err := h.eventRepo.List(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(events)
}

func (h *CalendarEventHandler) Save(c *fiber.Ctx) error {
	var events []domain.CalendarEvent
	if err := c.BodyParser(&events); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.eventRepo.Save(c.Context(), events); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
