package handler

import (
	"github.com/gofiber/fiber/v2"

	"margent-backend/internal/domain"
	"margent-backend/internal/middleware"
	"margent-backend/internal/repository"
)

// AgentHandler exposes the agent's observability collections: the
// execution log, the memory snapshot, and the reasoning trace.
type AgentHandler struct {
	logRepo       repository.AgentLogRepository
	memoryRepo    repository.MemoryRepository
	reasoningRepo repository.ReasoningRepository
}

func NewAgentHandler(logRepo repository.AgentLogRepository, memoryRepo repository.MemoryRepository, reasoningRepo repository.ReasoningRepository) *AgentHandler {
	return &AgentHandler{logRepo: logRepo, memoryRepo: memoryRepo, reasoningRepo: reasoningRepo}
}

func (h *AgentHandler) ListLogs(c *fiber.Ctx) error {
	logs, err := h.logRepo.List(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(logs)
}

func (h *AgentHandler) GetMemory(c *fiber.Ctx) error {
	memory, err := h.memoryRepo.Get(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(memory)
}

func (h *AgentHandler) SaveMemory(c *fiber.Ctx) error {
	var memory domain.AgentMemory
	if err := c.BodyParser(&memory); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.memoryRepo.Save(c.Context(), memory); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *AgentHandler) GetReasoning(c *fiber.Ctx) error {
	reasoning, err := h.reasoningRepo.Get(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(reasoning)
}
