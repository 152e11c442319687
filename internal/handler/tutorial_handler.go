package handler

import (
	"github.com/gofiber/fiber/v2"

	"margent-backend/internal/service/tutorial"
)

type TutorialHandler struct {
	tutorialService tutorial.Service
}

func NewTutorialHandler(tutorialService tutorial.Service) *TutorialHandler {
	return &TutorialHandler{tutorialService: tutorialService}
}

func (h *TutorialHandler) Steps(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.tutorialService.Steps())
}

func (h *TutorialHandler) State(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.tutorialService.Current())
}

func (h *TutorialHandler) Start(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.tutorialService.Start())
}

func (h *TutorialHandler) Next(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.tutorialService.Next())
}

func (h *TutorialHandler) Prev(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.tutorialService.Prev())
}

func (h *TutorialHandler) End(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.tutorialService.End())
}
