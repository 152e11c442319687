package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"margent-backend/internal/config"
	"margent-backend/internal/handler"
	"margent-backend/internal/middleware"
	"margent-backend/internal/pkg/clock"
	"margent-backend/internal/repository"
	"margent-backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if cfg.Environment == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	st, closeStore, err := config.NewStore(cfg)
	if err != nil {
		logrus.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	repos := repository.NewRepositories(st)
	services := service.NewServices(repos, clock.NewSystem())
	handlers := handler.NewHandlers(repos, services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers)

	logrus.Infof("Server starting on port %s (store driver %s)", cfg.Port, cfg.StoreDriver)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	clients := v1.Group("/clients")
	clients.Get("/", h.Client.List)
	clients.Put("/", h.Client.Save)
	clients.Get("/:clientId", h.Client.Get)

	campaigns := v1.Group("/campaigns")
	campaigns.Get("/", h.Campaign.List)
	campaigns.Put("/", h.Campaign.Save)

	funnel := v1.Group("/funnel")
	funnel.Get("/:clientId", h.Funnel.Get)
	funnel.Put("/:clientId", h.Funnel.Save)

	events := v1.Group("/calendar-events")
	events.Get("/", h.CalendarEvent.List)
	events.Put("/", h.CalendarEvent.Save)

	boards := v1.Group("/kanban-boards")
	boards.Get("/", h.Kanban.List)
	boards.Put("/", h.Kanban.Save)

	notifications := v1.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/:notificationId", h.Notification.Get)
	notifications.Post("/:notificationId/approve", h.Notification.Approve)
	notifications.Post("/:notificationId/reject", h.Notification.Reject)

	v1.Get("/feedbacks", h.Notification.ListFeedbacks)

	agent := v1.Group("/agent")
	agent.Get("/logs", h.Agent.ListLogs)
	agent.Get("/memory", h.Agent.GetMemory)
	agent.Put("/memory", h.Agent.SaveMemory)
	agent.Get("/reasoning", h.Agent.GetReasoning)

	v1.Get("/dashboard", h.Dashboard.GetOverview)

	v1.Post("/chat", h.Chat.Respond)

	tutorialGroup := v1.Group("/tutorial")
	tutorialGroup.Get("/steps", h.Tutorial.Steps)
	tutorialGroup.Get("/state", h.Tutorial.State)
	tutorialGroup.Post("/start", h.Tutorial.Start)
	tutorialGroup.Post("/next", h.Tutorial.Next)
	tutorialGroup.Post("/prev", h.Tutorial.Prev)
	tutorialGroup.Post("/end", h.Tutorial.End)
}
