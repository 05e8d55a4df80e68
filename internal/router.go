package internal

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/DrGermanius/advfood/internal/model"
)

func NewRouter(h *Handlers) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(logger.New())

	app.Post("/shipping/webhook", h.Webhook(model.WebhookSourceProvider))
	app.Post("/shipping/shadda/webhook", h.Webhook(model.WebhookSourceShadda))
	app.Post("/webhook/generic", h.Webhook(model.WebhookSourceGeneric))
	app.Post("/payment/webhook", h.PaymentWebhook)

	api := app.Group("/api")
	api.Post("/login", h.Login)

	orders := api.Group("/orders", h.Authorize)
	orders.Post("/", h.CreateOrder)
	orders.Post("/dispatch", h.DispatchPending)
	orders.Get("/:id", h.GetOrder)
	orders.Post("/:id/dispatch", h.DispatchOrder)

	shipping := api.Group("/shipping", h.Authorize)
	shipping.Get("/report", h.ShippingReport)
	shipping.Get("/:dispatchId/status", h.RefreshStatus)
	shipping.Post("/:dispatchId/cancel", h.CancelDispatch)

	api.Get("/webhooks", h.Authorize, h.GetWebhookEvents)

	return app
}
