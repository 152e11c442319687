package handler

import (
	"github.com/gofiber/fiber/v2"

	"margent-backend/internal/domain"
	"margent-backend/internal/middleware"
	"margent-backend/internal/pkg/validate"
	"margent-backend/internal/repository"
)

type ClientHandler struct {
	clientRepo repository.ClientRepository
}

func NewClientHandler(clientRepo repository.ClientRepository) *ClientHandler {
	return &ClientHandler{clientRepo: clientRepo}
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.clientRepo.List(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(clients)
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	client, err := h.clientRepo.GetByID(c.Context(), c.Params("clientId"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(client)
}

func (h *ClientHandler) Save(c *fiber.Ctx) error {
	var clients []domain.Client
	if err := c.BodyParser(&clients); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	for _, client := range clients {
		if err := validate.Struct(client); err != nil {
			return middleware.UnprocessableEntity(err.Error())
		}
	}

	if err := h.clientRepo.Save(c.Context(), clients); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
