package internal

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DrGermanius/advfood/internal/model"
)

const (
	tokenTTL                = 72 * time.Hour
	healthReportConcurrency = 3

	connectionTestShopID = "11183"
	connectionTestPhone  = "0500000000#999"
	connectionTestLat    = 24.7136
	connectionTestLng    = 46.6753
)

const (
	PaymentResultProcessed = "processed"
	PaymentResultIgnored   = "ignored"
	PaymentResultPending   = "pending"
)

type IService interface {
	Login(context.Context, string, string) (string, error)
	GetJWTToken(int64) (string, error)
	ParseToken(string) (int64, error)

	CreateOrder(context.Context, model.CheckoutInput) (model.Order, error)
	GetOrder(context.Context, int64) (model.Order, error)

	Dispatch(context.Context, int64, *int64) (model.DispatchReport, error)
	DispatchPending(context.Context, *int64) ([]model.DispatchReport, error)

	HandleWebhook(context.Context, string, []byte) (model.WebhookEvent, error)
	HandlePaymentNotification(context.Context, []byte) (model.PaymentResult, error)
	ApplyStatusUpdate(context.Context, model.StatusUpdate) (bool, error)
	RefreshStatus(context.Context, string) (model.StatusUpdate, error)
	CancelDispatch(context.Context, string) error

	TestConnection(context.Context, string) model.ConnectionReport
	HealthReport(context.Context, int) (model.HealthReport, error)
	GetWebhookEvents(context.Context, int) ([]model.WebhookEvent, error)
}

type Service struct {
	Repository IRepository
	Shipping   IShippingClient
	Events     IEventPublisher

	resolver *ShopResolver
	validate *validator.Validate
	secret   string
	logger   *zap.SugaredLogger
}

// NewService wires the workflow. shipping may be nil for read-only use; calls that
// need the provider then fail with ErrShippingNotConfigured.
func NewService(repository IRepository, shipping IShippingClient, events IEventPublisher, secret string, logger *zap.SugaredLogger) *Service {
	if events == nil {
		events = NopPublisher{}
	}

	return &Service{
		Repository: repository,
		Shipping:   shipping,
		Events:     events,
		resolver:   NewShopResolver(repository, logger),
		validate:   validator.New(),
		secret:     secret,
		logger:     logger,
	}
}

func (s Service) shippingClient() (IShippingClient, error) {
	if s.Shipping == nil {
		return nil, ErrShippingNotConfigured
	}
	return s.Shipping, nil
}

func (s Service) Login(ctx context.Context, email, password string) (string, error) {
	if err := s.validate.Struct(model.LoginInput{Email: email, Password: password}); err != nil {
		return "", ErrInvalidCredentials
	}

	id, err := s.Repository.CheckBranchCredentials(ctx, email, GetHash(password))
	if err != nil {
		return "", err
	}

	return s.GetJWTToken(id)
}

// GetJWTToken issues a token for a branch. Branch 0 is the platform operator.
func (s Service) GetJWTToken(branchID int64) (string, error) {
	if s.secret == "" {
		return "", ErrAuthSecretMissing
	}

	claims := jwt.MapClaims{
		"id":  strconv.FormatInt(branchID, 10),
		"exp": time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", err
	}

	return t, nil
}

func (s Service) ParseToken(tokenString string) (int64, error) {
	if s.secret == "" {
		return 0, ErrAuthSecretMissing
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidToken, err.Error())
	}

	id, ok := claims["id"].(string)
	if !ok {
		return 0, ErrInvalidToken
	}
	branchID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return branchID, nil
}

func (s Service) CreateOrder(ctx context.Context, in model.CheckoutInput) (model.Order, error) {
	if err := s.validate.Struct(in); err != nil {
		return model.Order{}, fmt.Errorf("%w: %s", ErrInvalidOrder, err.Error())
	}

	paymentStatus := in.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = model.PaymentStatusPending
	}

	o := model.Order{
		RestaurantID:        in.RestaurantID,
		BranchID:            in.BranchID,
		Status:              model.OrderStatusPending,
		PaymentStatus:       paymentStatus,
		PaymentMethod:       in.PaymentMethod,
		Source:              in.Source,
		DispatchState:       model.InitialDispatchState(paymentStatus),
		DeliveryName:        in.DeliveryName,
		DeliveryPhone:       in.DeliveryPhone,
		DeliveryAddress:     in.DeliveryAddress,
		Latitude:            in.Latitude,
		Longitude:           in.Longitude,
		SpecialInstructions: in.SpecialInstructions,
		Subtotal:            in.Subtotal,
		DeliveryFee:         in.DeliveryFee,
		Tax:                 in.Tax,
		Total:               in.Subtotal.Add(in.DeliveryFee).Add(in.Tax),
	}

	if o.BranchID == nil && o.Latitude != nil && o.Longitude != nil {
		branches, err := s.Repository.GetActiveBranches(ctx)
		if err != nil {
			return model.Order{}, err
		}
		if b, distance, ok := model.NearestBranch(branches, *o.Latitude, *o.Longitude); ok {
			o.BranchID = &b.ID
			s.logger.Infow("nearest branch assigned", "branch_id", b.ID, "distance_km", distance)
		}
	}

	created, err := s.Repository.CreateOrder(ctx, o)
	if err != nil {
		return model.Order{}, err
	}

	s.logger.Infow("order created", "order_id", created.ID, "order_number", created.Number, "dispatch_state", created.DispatchState)
	return created, nil
}

func (s Service) GetOrder(ctx context.Context, id int64) (model.Order, error) {
	return s.Repository.GetOrderByID(ctx, id)
}

// Dispatch sends one paid order to the shipping provider. Skips are reported as
// outcomes with a nil error. On failure the order stays ELIGIBLE_UNSENT so it can be resent.
func (s Service) Dispatch(ctx context.Context, orderID int64, branchID *int64) (report model.DispatchReport, err error) {
	ctx, span := otel.Tracer("service").Start(ctx, "Service.Dispatch",
		trace.WithAttributes(attribute.Int64("order.id", orderID)))
	defer func() { endSpan(span, err) }()

	report.OrderID = orderID

	order, err := s.Repository.GetOrderByID(ctx, orderID)
	if err != nil {
		s.logger.Errorw("dispatch: order not loaded", "order_id", orderID, "error", err)
		return report, err
	}
	report.OrderNumber = order.Number

	if !order.IsPaid() {
		report.Outcome = model.OutcomeSkippedNotPaid
		s.logger.Infow("dispatch skipped, order is not paid",
			"order_id", order.ID, "order_number", order.Number, "payment_status", order.PaymentStatus)
		return report, nil
	}

	if order.IsSent() {
		report.Outcome = model.OutcomeSkippedAlreadySent
		report.ShopID = order.ShopID
		report.DispatchID = order.DispatchID
		report.ShippingStatus = order.ShippingStatus
		s.logger.Infow("dispatch skipped, order is already sent",
			"order_id", order.ID, "order_number", order.Number, "dispatch_id", order.DispatchID)
		return report, nil
	}

	if err = s.validate.Struct(order); err != nil {
		return s.dispatchFailed(report, fmt.Errorf("%w: %s", ErrInvalidOrder, err.Error()))
	}

	client, err := s.shippingClient()
	if err != nil {
		return s.dispatchFailed(report, err)
	}

	if order.ShopID == "" {
		if branchID == nil {
			branchID = order.BranchID
		}

		shopID, err := s.resolver.Resolve(ctx, order.Restaurant, branchID)
		if err != nil {
			return s.dispatchFailed(report, err)
		}
		if shopID == "" {
			return s.dispatchFailed(report, MissingShopConfigurationError{
				RestaurantID:   order.RestaurantID,
				RestaurantName: order.Restaurant.Name,
			})
		}

		if err = s.Repository.SetOrderShopID(ctx, order.ID, shopID); err != nil {
			return s.dispatchFailed(report, err)
		}
		order.ShopID = shopID
	}
	report.ShopID = order.ShopID

	result, err := client.CreateOrder(ctx, order)
	if err != nil {
		return s.dispatchFailed(report, err)
	}

	rec := model.ShippingOrder{
		OrderID:        order.ID,
		Provider:       client.Provider(),
		ShopID:         order.ShopID,
		DispatchID:     result.DispatchID,
		ShippingStatus: result.ShippingStatus,
		RecipientName:  order.DeliveryName,
		RecipientPhone: order.DeliveryPhone,
		Address:        order.DeliveryAddress,
		Latitude:       order.Latitude,
		Longitude:      order.Longitude,
		Total:          order.Total,
		PaymentType:    paymentType(order.PaymentMethod),
		Notes:          order.SpecialInstructions,
	}
	if err = s.Repository.SaveDispatch(ctx, rec); err != nil {
		s.logger.Errorw("provider accepted the order but the dispatch was not saved",
			"order_id", order.ID, "order_number", order.Number, "dispatch_id", result.DispatchID, "error", err)
		return s.dispatchFailed(report, err)
	}

	report.Outcome = model.OutcomeSent
	report.DispatchID = result.DispatchID
	report.ShippingStatus = result.ShippingStatus

	s.logger.Infow("order dispatched",
		"order_id", order.ID, "order_number", order.Number, "shop_id", order.ShopID,
		"dispatch_id", result.DispatchID, "shipping_status", result.ShippingStatus)

	s.publish(ctx, model.ShippingEvent{
		Type:       model.EventDispatched,
		OrderID:    order.ID,
		DispatchID: result.DispatchID,
		Status:     result.ShippingStatus,
	})

	return report, nil
}

func (s Service) dispatchFailed(report model.DispatchReport, err error) (model.DispatchReport, error) {
	report.Outcome = model.OutcomeFailed
	report.Error = err.Error()
	s.logger.Errorw("dispatch failed",
		"order_id", report.OrderID, "order_number", report.OrderNumber, "shop_id", report.ShopID, "error", err)
	return report, err
}

// DispatchPending runs Dispatch over every ELIGIBLE_UNSENT order, one after another.
// A failing order is reported and the batch moves on.
func (s Service) DispatchPending(ctx context.Context, branchID *int64) ([]model.DispatchReport, error) {
	ids, err := s.Repository.GetOrderIDsByState(ctx, model.DispatchEligibleUnsent)
	if err != nil {
		return nil, err
	}

	reports := make([]model.DispatchReport, 0, len(ids))
	sent, failed := 0, 0
	for _, id := range ids {
		report, err := s.Dispatch(ctx, id, branchID)
		if err != nil {
			failed++
			if report.Outcome == "" {
				report.Outcome = model.OutcomeFailed
				report.Error = err.Error()
			}
		}
		if report.Outcome == model.OutcomeSent {
			sent++
		}
		reports = append(reports, report)
	}

	s.logger.Infow("batch dispatch finished", "orders", len(ids), "sent", sent, "failed", failed)
	return reports, nil
}

// HandleWebhook records an inbound shipping callback and applies it. A callback that
// matches no order is not an error; the caller acknowledges it either way.
func (s Service) HandleWebhook(ctx context.Context, source string, body []byte) (model.WebhookEvent, error) {
	event := model.WebhookEvent{
		ID:         uuid.New(),
		Source:     source,
		Payload:    string(body),
		ReceivedAt: time.Now(),
	}

	upd, err := s.parseWebhook(source, body)
	if err != nil {
		s.logger.Warnw("webhook ignored", "source", source, "error", err)
		s.saveWebhookEvent(ctx, event)
		return event, err
	}
	event.DispatchID = upd.DispatchID
	event.Status = upd.Status

	event.Matched, err = s.ApplyStatusUpdate(ctx, upd)
	s.saveWebhookEvent(ctx, event)
	return event, err
}

// parseWebhook hands the provider route to the configured client, which knows its own callback shape.
func (s Service) parseWebhook(source string, body []byte) (model.StatusUpdate, error) {
	if source == model.WebhookSourceProvider && s.Shipping != nil {
		return s.Shipping.ParseWebhook(body)
	}
	return ParseWebhook(source, body)
}

func (s Service) saveWebhookEvent(ctx context.Context, e model.WebhookEvent) {
	if err := s.Repository.SaveWebhookEvent(ctx, e); err != nil {
		s.logger.Errorw("webhook event not saved", "event_id", e.ID, "source", e.Source, "error", err)
	}
}

// ApplyStatusUpdate overwrites the stored shipping status, last write wins.
func (s Service) ApplyStatusUpdate(ctx context.Context, upd model.StatusUpdate) (bool, error) {
	return s.applyStatusUpdate(ctx, upd, model.EventStatusUpdated)
}

func (s Service) applyStatusUpdate(ctx context.Context, upd model.StatusUpdate, eventType string) (bool, error) {
	matched, err := s.Repository.UpdateShippingStatus(ctx, upd)
	if err != nil {
		s.logger.Errorw("shipping status not updated", "dispatch_id", upd.DispatchID, "status", upd.Status, "error", err)
		return false, err
	}

	if !matched {
		s.logger.Warnw("shipping status update matched no order",
			"dispatch_id", upd.DispatchID, "status", upd.Status, "error", ErrWebhookOrderNotMatched)
		return false, nil
	}

	s.logger.Infow("shipping status updated", "dispatch_id", upd.DispatchID, "status", upd.Status)
	s.publish(ctx, model.ShippingEvent{Type: eventType, DispatchID: upd.DispatchID, Status: upd.Status})
	return true, nil
}

// RefreshStatus polls the provider and stores what it reports.
func (s Service) RefreshStatus(ctx context.Context, dispatchID string) (model.StatusUpdate, error) {
	client, err := s.shippingClient()
	if err != nil {
		return model.StatusUpdate{}, err
	}

	if _, err = s.Repository.GetOrderByDispatchID(ctx, dispatchID); err != nil {
		return model.StatusUpdate{}, err
	}

	upd, err := client.GetStatus(ctx, dispatchID)
	if err != nil {
		return model.StatusUpdate{}, err
	}
	if upd.Status == "" {
		return upd, nil
	}

	if _, err = s.ApplyStatusUpdate(ctx, upd); err != nil {
		return model.StatusUpdate{}, err
	}
	return upd, nil
}

func (s Service) CancelDispatch(ctx context.Context, dispatchID string) error {
	client, err := s.shippingClient()
	if err != nil {
		return err
	}

	if _, err = s.Repository.GetOrderByDispatchID(ctx, dispatchID); err != nil {
		return err
	}

	if err = client.CancelOrder(ctx, dispatchID); err != nil {
		s.logger.Warnw("shipping cancellation failed", "dispatch_id", dispatchID, "error", err)
		return err
	}

	_, err = s.applyStatusUpdate(ctx, model.StatusUpdate{
		DispatchID: dispatchID,
		Status:     model.ShippingStatusCancelled,
	}, model.EventCancelled)
	return err
}

// HandlePaymentNotification marks the referenced order paid and dispatches it.
// Unknown orders and unsuccessful payments are reported, not failed.
func (s Service) HandlePaymentNotification(ctx context.Context, body []byte) (model.PaymentResult, error) {
	n, err := ParsePaymentNotification(body)
	if err != nil {
		return model.PaymentResult{Status: PaymentResultIgnored, Message: err.Error()}, nil
	}
	if n.Reference == "" {
		s.logger.Warnw("payment notification without order reference")
		return model.PaymentResult{Status: PaymentResultIgnored, Message: "no order reference"}, nil
	}

	order, err := s.Repository.GetOrderByReference(ctx, n.Reference)
	if errors.Is(err, ErrOrderNotFound) {
		s.logger.Warnw("payment notification for unknown order", "reference", n.Reference)
		return model.PaymentResult{Status: PaymentResultIgnored, Message: "order not found"}, nil
	}
	if err != nil {
		return model.PaymentResult{}, err
	}

	if !PaymentSucceeded(n) {
		s.logger.Infow("payment not successful yet", "order_id", order.ID, "statuses", n.Statuses, "result_code", n.ResultCode)
		return model.PaymentResult{Status: PaymentResultPending, Message: "payment not successful", OrderID: order.ID}, nil
	}

	result := model.PaymentResult{Status: PaymentResultProcessed, OrderID: order.ID}

	transitioned, err := s.Repository.MarkOrderPaid(ctx, order.ID, n.Reference)
	if err != nil {
		return model.PaymentResult{}, err
	}
	if !transitioned {
		result.Message = "order already paid"
		return result, nil
	}
	s.logger.Infow("order paid", "order_id", order.ID, "order_number", order.Number, "reference", n.Reference)

	report, err := s.Dispatch(ctx, order.ID, nil)
	if err != nil {
		s.logger.Warnw("paid order not dispatched, resend it later", "order_id", order.ID, "error", err)
	}
	result.Message = "order paid"
	result.Dispatch = &report
	return result, nil
}

// TestConnection sends a synthetic order to the provider and explains common failures.
func (s Service) TestConnection(ctx context.Context, shopID string) model.ConnectionReport {
	if shopID == "" {
		shopID = connectionTestShopID
	}

	now := time.Now()
	report := model.ConnectionReport{
		OrderID: fmt.Sprintf("TEST-%d", now.Unix()),
		ShopID:  shopID,
	}

	client, err := s.shippingClient()
	if err != nil {
		report.Error = err.Error()
		report.Diagnosis = "set the shipping url and key"
		return report
	}
	report.Provider = client.Provider()

	lat, lng := connectionTestLat, connectionTestLng
	o := model.Order{
		ID:              now.Unix(),
		Number:          report.OrderID,
		ShopID:          shopID,
		PaymentStatus:   model.PaymentStatusPaid,
		DeliveryName:    "Test Customer",
		DeliveryPhone:   connectionTestPhone,
		DeliveryAddress: "Test Address, Riyadh",
		Latitude:        &lat,
		Longitude:       &lng,
		Total:           decimal.NewFromInt(100),
	}

	res, err := client.CreateOrder(ctx, o)
	if err != nil {
		report.Error = err.Error()
		var pe ProviderError
		if errors.As(err, &pe) {
			report.StatusCode = pe.StatusCode
			report.Diagnosis = diagnose(pe.StatusCode)
		}
		s.logger.Warnw("shipping connection test failed", "provider", report.Provider, "status", report.StatusCode, "error", err)
		return report
	}

	report.OK = true
	report.DispatchID = res.DispatchID
	report.Status = res.ShippingStatus
	s.logger.Infow("shipping connection test passed", "provider", report.Provider, "dispatch_id", res.DispatchID)
	return report
}

func diagnose(statusCode int) string {
	switch statusCode {
	case 0:
		return "provider unreachable: check network access and the shipping url"
	case 401:
		return "authentication failed: check the shipping key"
	case 404:
		return "endpoint not found: check the shipping url and endpoints"
	case 422:
		return "payload rejected: check the shop id and delivery fields"
	default:
		return ""
	}
}

// HealthReport counts dispatched and undispatched orders for paid orders and for each
// order source, with the latest orders of each.
func (s Service) HealthReport(ctx context.Context, limit int) (model.HealthReport, error) {
	subsets := []model.OrderSubset{{Label: "paid orders", PaidOnly: true}}

	sources, err := s.Repository.GetOrderSources(ctx)
	if err != nil {
		return model.HealthReport{}, err
	}
	for _, src := range sources {
		subsets = append(subsets, model.OrderSubset{Label: src + " orders", Source: src})
	}

	reports := make([]model.SubsetReport, len(subsets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(healthReportConcurrency)

	for i, subset := range subsets {
		i, subset := i, subset
		g.Go(func() error {
			r, err := s.Repository.CountDispatchStates(gctx, subset)
			if err != nil {
				return fmt.Errorf("count %s: %w", subset.Label, err)
			}
			r.Recent, err = s.Repository.GetRecentOrders(gctx, subset, limit)
			if err != nil {
				return fmt.Errorf("recent %s: %w", subset.Label, err)
			}
			reports[i] = r
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return model.HealthReport{}, err
	}

	report := model.HealthReport{Subsets: reports}
	if s.Shipping != nil {
		report.Provider = s.Shipping.Provider()
		report.Configured = true
	}
	return report, nil
}

func (s Service) GetWebhookEvents(ctx context.Context, limit int) ([]model.WebhookEvent, error) {
	events, err := s.Repository.GetWebhookEvents(ctx, limit)
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return nil, ErrNoRecords
	}
	return events, nil
}

func (s Service) publish(ctx context.Context, e model.ShippingEvent) {
	e.OccurredAt = time.Now()
	if err := s.Events.Publish(ctx, e); err != nil {
		s.logger.Warnw("shipping event not published", "type", e.Type, "dispatch_id", e.DispatchID, "error", err)
	}
}

func GetHash(s string) string {
	h := sha256.Sum256([]byte(s))
	return base64.StdEncoding.EncodeToString(h[:])
}
