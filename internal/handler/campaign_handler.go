package handler

import (
	"github.com/gofiber/fiber/v2"

	"margent-backend/internal/domain"
	"margent-backend/internal/middleware"
	"margent-backend/internal/pkg/validate"
	"margent-backend/internal/repository"
)

type CampaignHandler struct {
	campaignRepo repository.CampaignRepository
}

func NewCampaignHandler(campaignRepo repository.CampaignRepository) *CampaignHandler {
	return &CampaignHandler{campaignRepo: campaignRepo}
}

func (h *CampaignHandler) List(c *fiber.Ctx) error {
	if clientID := c.Query("client_id"); clientID != "" {
		campaigns, err := h.campaignRepo.ListByClient(c.Context(), clientID)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(campaigns)
	}

	campaigns, err := h.campaignRepo.List(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(campaigns)
}

func (h *CampaignHandler) Save(c *fiber.Ctx) error {
	var campaigns []domain.Campaign
	if err := c.BodyParser(&campaigns); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	for _, campaign := range campaigns {
		if err := validate.Struct(campaign); err != nil {
			return middleware.UnprocessableEntity(err.Error())
		}
	}

	if err := h.campaignRepo.Save(c.Context(), campaigns); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
