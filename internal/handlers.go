package internal

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/DrGermanius/advfood/internal/model"
)

const (
	branchIDKey         = "branch_id"
	defaultReportLimit  = 10
	defaultWebhookLimit = 50
)

type Handlers struct {
	Service IService
	logger  *zap.SugaredLogger
}

func NewHandlers(Service IService, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, logger: logger}
}

func (h *Handlers) Login(c *fiber.Ctx) error {
	var i model.LoginInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on login request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	t, err := h.Service.Login(c.UserContext(), i.Email, i.Password)
	if err != nil {
		h.logger.Errorf("Error on login request: %s", err.Error())
		if errors.Is(err, ErrInvalidCredentials) {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	setAuthCookie(c, t)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": t})
}

// Authorize accepts the token from the "token" cookie or a Bearer header.
func (h *Handlers) Authorize(c *fiber.Ctx) error {
	branchID, err := h.Service.ParseToken(tokenFromRequest(c))
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	c.Locals(branchIDKey, branchID)
	return c.Next()
}

func (h *Handlers) CreateOrder(c *fiber.Ctx) error {
	var i model.CheckoutInput

	if err := c.BodyParser(&i); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("Error on create order request", err))
	}
	if i.BranchID == nil {
		i.BranchID = branchFromLocals(c)
	}

	o, err := h.Service.CreateOrder(c.UserContext(), i)
	if err != nil {
		h.logger.Errorf("Error on create order request: %s", err.Error())
		return c.Status(errorStatus(err)).JSON(errorBody("Error on create order request", err))
	}

	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *Handlers) GetOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	o, err := h.Service.GetOrder(c.UserContext(), int64(id))
	if err != nil {
		return c.Status(errorStatus(err)).JSON(errorBody("Error on get order request", err))
	}

	return c.Status(fiber.StatusOK).JSON(o)
}

func (h *Handlers) DispatchOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	report, err := h.Service.Dispatch(c.UserContext(), int64(id), branchFromLocals(c))
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"status":  "error",
			"message": "Error on dispatch request",
			"data":    err.Error(),
			"report":  report,
		})
	}

	return c.Status(fiber.StatusOK).JSON(report)
}

func (h *Handlers) DispatchPending(c *fiber.Ctx) error {
	reports, err := h.Service.DispatchPending(c.UserContext(), branchFromLocals(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody("Error on batch dispatch request", err))
	}

	return c.Status(fiber.StatusOK).JSON(reports)
}

func (h *Handlers) ShippingReport(c *fiber.Ctx) error {
	report, err := h.Service.HealthReport(c.UserContext(), queryLimit(c, defaultReportLimit))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody("Error on shipping report request", err))
	}

	return c.Status(fiber.StatusOK).JSON(report)
}

func (h *Handlers) RefreshStatus(c *fiber.Ctx) error {
	upd, err := h.Service.RefreshStatus(c.UserContext(), c.Params("dispatchId"))
	if err != nil {
		return c.Status(errorStatus(err)).JSON(errorBody("Error on shipping status request", err))
	}

	return c.Status(fiber.StatusOK).JSON(upd)
}

func (h *Handlers) CancelDispatch(c *fiber.Ctx) error {
	err := h.Service.CancelDispatch(c.UserContext(), c.Params("dispatchId"))
	if err != nil {
		return c.Status(errorStatus(err)).JSON(errorBody("Error on shipping cancel request", err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

func (h *Handlers) GetWebhookEvents(c *fiber.Ctx) error {
	events, err := h.Service.GetWebhookEvents(c.UserContext(), queryLimit(c, defaultWebhookLimit))
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(events)
}

// Webhook always answers 200 so providers do not retry; failures are only logged.
func (h *Handlers) Webhook(source string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		event, err := h.Service.HandleWebhook(c.UserContext(), source, c.Body())
		if err != nil {
			h.logger.Errorw("webhook not processed", "source", source, "event_id", event.ID, "error", err)
		}

		status := "ignored"
		if event.Matched {
			status = "success"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": status})
	}
}

// PaymentWebhook answers 200 once the payment is applied and 202 otherwise, failures included.
func (h *Handlers) PaymentWebhook(c *fiber.Ctx) error {
	result, err := h.Service.HandlePaymentNotification(c.UserContext(), c.Body())
	if err != nil {
		h.logger.Errorw("payment notification not processed", "error", err)
		return c.Status(fiber.StatusAccepted).JSON(errorBody("Error on payment notification", err))
	}

	if result.Status != PaymentResultProcessed {
		return c.Status(fiber.StatusAccepted).JSON(result)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrInvalidOrder), errors.Is(err, ErrCancelRejected):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrMissingShopConfiguration):
		return fiber.StatusConflict
	case errors.Is(err, ErrProviderCallFailed):
		return fiber.StatusBadGateway
	case errors.Is(err, ErrShippingNotConfigured):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func errorBody(message string, err error) fiber.Map {
	return fiber.Map{"status": "error", "message": message, "data": err.Error()}
}

func queryLimit(c *fiber.Ctx, def int) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// branchFromLocals is nil for the platform token.
func branchFromLocals(c *fiber.Ctx) *int64 {
	id, ok := c.Locals(branchIDKey).(int64)
	if !ok || id == 0 {
		return nil
	}
	return &id
}

func setAuthCookie(c *fiber.Ctx, token string) {
	cookie := &fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(tokenTTL),
	}

	c.Cookie(cookie)
}

func tokenFromRequest(c *fiber.Ctx) string {
	if t := c.Cookies("token"); t != "" {
		return t
	}
	return strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
}
