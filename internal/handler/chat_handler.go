package handler

import (
	"github.com/gofiber/fiber/v2"

	"margent-backend/internal/middleware"
	"margent-backend/internal/pkg/validate"
	"margent-backend/internal/service/chat"
)

type ChatHandler struct {
	chatService chat.Service
}

func NewChatHandler(chatService chat.Service) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type chatInput struct {
	Message string `json:"message" validate:"required"`
}

func (h *ChatHandler) Respond(c *fiber.Ctx) error {
	var input chatInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return middleware.UnprocessableEntity(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"reply": h.chatService.Respond(input.Message),
	})
}
