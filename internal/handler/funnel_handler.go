package handler

import (
	"github.com/gofiber/fiber/v2"

	"margent-backend/internal/domain"
	"margent-backend/internal/middleware"
	"margent-backend/internal/repository"
)

type FunnelHandler struct {
	funnelRepo repository.FunnelRepository
}

func NewFunnelHandler(funnelRepo repository.FunnelRepository) *FunnelHandler {
	return &FunnelHandler{funnelRepo: funnelRepo}
}

func (h *FunnelHandler) Get(c *fiber.Ctx) error {
	data, err := h.funnelRepo.Get(c.Context(), c.Params("clientId"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(data)
}

func (h *FunnelHandler) Save(c *fiber.Ctx) error {
	clientID := c.Params("clientId")

	var data domain.FunnelData
	if err := c.BodyParser(&data); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	data.ClientID = clientID

	if err := h.funnelRepo.Save(c.Context(), data); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
