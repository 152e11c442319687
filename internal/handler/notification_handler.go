package handler

import (
	"github.com/gofiber/fiber/v2"

	"margent-backend/internal/domain"
	"margent-backend/internal/middleware"
	"margent-backend/internal/repository"
	"margent-backend/internal/service/workflow"
)

type NotificationHandler struct {
	notifRepo    repository.NotificationRepository
	feedbackRepo repository.FeedbackRepository
	workflow     workflow.Service
}

func NewNotificationHandler(notifRepo repository.NotificationRepository, feedbackRepo repository.FeedbackRepository, wf workflow.Service) *NotificationHandler {
	return &NotificationHandler{notifRepo: notifRepo, feedbackRepo: feedbackRepo, workflow: wf}
}

type decisionInput struct {
	Feedback *string `json:"feedback,omitempty"`
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	notifications, err := h.notifRepo.List(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(notifications)
}

func (h *NotificationHandler) Get(c *fiber.Ctx) error {
	notification, err := h.notifRepo.GetByID(c.Context(), c.Params("notificationId"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(notification)
}

func (h *NotificationHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, domain.DecisionApprove)
}

func (h *NotificationHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, domain.DecisionReject)
}

func (h *NotificationHandler) decide(c *fiber.Ctx, decision domain.Decision) error {
	notificationID := c.Params("notificationId")
	if notificationID == "" {
		return middleware.BadRequest("Notification ID is required")
	}

	// The body is optional, but when one is sent it has to parse; dropping
	// feedback from a malformed body would lose it without signal.
	var input decisionInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return middleware.BadRequest("Invalid request body")
		}
	}

	notification, err := h.workflow.SubmitDecision(c.Context(), notificationID, decision, input.Feedback)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(notification)
}

func (h *NotificationHandler) ListFeedbacks(c *fiber.Ctx) error {
	feedbacks, err := h.feedbackRepo.List(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(feedbacks)
}
