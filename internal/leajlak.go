package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/DrGermanius/advfood/internal/model"
)

var leajlakEndpoints = ShippingEndpoints{
	Create: "/orders",
	Status: "/orders/{id}",
	Cancel: "/orders/{id}",
}

type LeajlakClient struct {
	transport    shippingTransport
	endpoints    ShippingEndpoints
	cancelMethod string
}

type leajlakOrderRequest struct {
	ID              string                 `json:"id"`
	ShopID          string                 `json:"shop_id"`
	DeliveryDetails leajlakDeliveryDetails `json:"delivery_details"`
	Order           leajlakOrderDetails    `json:"order"`
}

type leajlakDeliveryDetails struct {
	Name       string             `json:"name"`
	Phone      string             `json:"phone"`
	Email      string             `json:"email"`
	Coordinate *leajlakCoordinate `json:"coordinate,omitempty"`
	Address    string             `json:"address,omitempty"`
}

type leajlakCoordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type leajlakOrderDetails struct {
	PaymentType int     `json:"payment_type"`
	Total       float64 `json:"total"`
	Notes       string  `json:"notes,omitempty"`
}

func NewLeajlakClient(cfg ShippingConfig, logger *zap.SugaredLogger) (*LeajlakClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	headers := map[string]string{"Authorization": "Bearer " + cfg.Key}

	c := &LeajlakClient{
		transport:    newShippingTransport(ProviderLeajlak, cfg, headers, logger),
		endpoints:    withDefaultEndpoints(cfg.Endpoints, leajlakEndpoints),
		cancelMethod: http.MethodDelete,
	}
	if cfg.CancelMethod == "post" {
		c.cancelMethod = http.MethodPost
	}
	return c, nil
}

func withDefaultEndpoints(e, def ShippingEndpoints) ShippingEndpoints {
	if e.Create == "" {
		e.Create = def.Create
	}
	if e.Status == "" {
		e.Status = def.Status
	}
	if e.Cancel == "" {
		e.Cancel = def.Cancel
	}
	return e
}

func (c LeajlakClient) Provider() string {
	return ProviderLeajlak
}

func buildLeajlakRequest(o model.Order) leajlakOrderRequest {
	email := fmt.Sprintf("order%d@advfood.local", o.ID)
	total, _ := o.Total.Float64()

	req := leajlakOrderRequest{
		ID:     o.Number,
		ShopID: o.ShopID,
		DeliveryDetails: leajlakDeliveryDetails{
			Name:    o.DeliveryName,
			Phone:   cleanPhone(o.DeliveryPhone),
			Email:   email,
			Address: o.DeliveryAddress,
		},
		Order: leajlakOrderDetails{
			PaymentType: paymentType(o.PaymentMethod),
			Total:       total,
			Notes:       o.SpecialInstructions,
		},
	}

	if o.Latitude != nil && o.Longitude != nil &&
		*o.Latitude >= -90 && *o.Latitude <= 90 &&
		*o.Longitude >= -180 && *o.Longitude <= 180 {
		req.DeliveryDetails.Coordinate = &leajlakCoordinate{Latitude: *o.Latitude, Longitude: *o.Longitude}
	}

	return req
}

func (c LeajlakClient) CreateOrder(ctx context.Context, o model.Order) (res model.DispatchResult, err error) {
	ctx, span := startSpan(ctx, "LeajlakClient.CreateOrder",
		attribute.String("order.number", o.Number), attribute.String("shop.id", o.ShopID))
	defer func() { endSpan(span, err) }()

	code, body, err := c.transport.do(ctx, http.MethodPost, c.endpoints.Create, buildLeajlakRequest(o))
	if err != nil {
		return res, err
	}
	if !isSuccess(code) {
		return res, ProviderError{Provider: ProviderLeajlak, StatusCode: code, Body: string(body)}
	}

	data, err := decodePayload(body)
	if err != nil {
		return res, ProviderError{Provider: ProviderLeajlak, StatusCode: code, Body: string(body), Err: fmt.Errorf("malformed response: %w", err)}
	}

	res.DispatchID = data.str("dsp_order_id", "data.dsp_order_id", "id")
	if res.DispatchID == "" {
		return res, ProviderError{Provider: ProviderLeajlak, StatusCode: code, Body: string(body), Err: errors.New("response has no dispatch id")}
	}

	res.ShippingStatus = data.str("status", "data.status")
	if res.ShippingStatus == "" {
		res.ShippingStatus = model.ShippingStatusNew
	}
	return res, nil
}

func (c LeajlakClient) GetStatus(ctx context.Context, dispatchID string) (upd model.StatusUpdate, err error) {
	ctx, span := startSpan(ctx, "LeajlakClient.GetStatus", attribute.String("dispatch.id", dispatchID))
	defer func() { endSpan(span, err) }()

	code, body, err := c.transport.do(ctx, http.MethodGet, endpointPath(c.endpoints.Status, dispatchID), nil)
	if err != nil {
		return upd, err
	}
	if !isSuccess(code) {
		return upd, ProviderError{Provider: ProviderLeajlak, StatusCode: code, Body: string(body)}
	}

	data, err := decodePayload(body)
	if err != nil {
		return upd, ProviderError{Provider: ProviderLeajlak, StatusCode: code, Body: string(body), Err: fmt.Errorf("malformed response: %w", err)}
	}

	upd = leajlakStatus(data)
	upd.DispatchID = dispatchID
	return upd, nil
}

func (c LeajlakClient) CancelOrder(ctx context.Context, dispatchID string) (err error) {
	ctx, span := startSpan(ctx, "LeajlakClient.CancelOrder", attribute.String("dispatch.id", dispatchID))
	defer func() { endSpan(span, err) }()

	code, body, err := c.transport.do(ctx, c.cancelMethod, endpointPath(c.endpoints.Cancel, dispatchID), nil)
	if err != nil {
		return err
	}
	return cancelResult(ProviderLeajlak, code, body)
}

func (c LeajlakClient) ParseWebhook(body []byte) (model.StatusUpdate, error) {
	return ParseLeajlakWebhook(body)
}

// cancelResult treats 202 and any other 2xx as cancelled.
func cancelResult(provider string, code int, body []byte) error {
	if code == http.StatusAccepted || isSuccess(code) {
		return nil
	}

	message := string(body)
	if data, err := decodePayload(body); err == nil {
		if m := data.str("message", "error", "data.message"); m != "" {
			message = m
		}
	}
	if isCancelRejection(message) {
		return fmt.Errorf("%w: %s", ErrCancelRejected, message)
	}
	return ProviderError{Provider: provider, StatusCode: code, Body: string(body)}
}
