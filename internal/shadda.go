package internal

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/DrGermanius/advfood/internal/model"
)

var shaddaEndpoints = ShippingEndpoints{
	Create: "/CreateOrder",
	Status: "/GetOrder/{id}",
	Cancel: "/CancelOrder",
}

const shaddaPaymentMethod = "card"

type ShaddaClient struct {
	transport shippingTransport
	endpoints ShippingEndpoints
}

type shaddaOrderRequest struct {
	BranchID          int     `json:"branchId"`
	OrderID           string  `json:"orderId"`
	DeliveryPhone     string  `json:"deliveryPhone"`
	PaymentMethod     string  `json:"paymentMethod"`
	PaymentAmount     float64 `json:"paymentAmount"`
	DeliveryAddress   string  `json:"deliveryAddress,omitempty"`
	DeliveryLatitude  string  `json:"deliveryLatitude,omitempty"`
	DeliveryLongitude string  `json:"deliveryLongitude,omitempty"`
}

type shaddaCancelRequest struct {
	OrderID string `json:"orderId"`
}

func NewShaddaClient(cfg ShippingConfig, logger *zap.SugaredLogger) (*ShaddaClient, error) {
	cfg.Provider = ProviderShadda
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	headers := map[string]string{
		"client-id":     cfg.ClientID,
		"Authorization": "Bearer " + cfg.Key,
	}

	return &ShaddaClient{
		transport: newShippingTransport(ProviderShadda, cfg, headers, logger),
		endpoints: withDefaultEndpoints(cfg.Endpoints, shaddaEndpoints),
	}, nil
}

func (c ShaddaClient) Provider() string {
	return ProviderShadda
}

// buildShaddaRequest addresses the order to the Shadda branch whose numeric id is the shop id.
func buildShaddaRequest(o model.Order) (shaddaOrderRequest, error) {
	branchID, err := strconv.Atoi(strings.TrimSpace(o.ShopID))
	if err != nil {
		return shaddaOrderRequest{}, fmt.Errorf("%w: shop id %q is not a shadda branch id", ErrInvalidOrder, o.ShopID)
	}
	amount, _ := o.Total.Round(2).Float64()

	req := shaddaOrderRequest{
		BranchID:        branchID,
		OrderID:         o.Number,
		DeliveryPhone:   cleanPhone(o.DeliveryPhone),
		PaymentMethod:   shaddaPaymentMethod,
		PaymentAmount:   amount,
		DeliveryAddress: o.DeliveryAddress,
	}
	if o.Latitude != nil && o.Longitude != nil {
		req.DeliveryLatitude = strconv.FormatFloat(*o.Latitude, 'f', -1, 64)
		req.DeliveryLongitude = strconv.FormatFloat(*o.Longitude, 'f', -1, 64)
	}
	return req, nil
}

// CreateOrder uses the order number as the dispatch id; Shadda tracks orders by the id we send.
func (c ShaddaClient) CreateOrder(ctx context.Context, o model.Order) (res model.DispatchResult, err error) {
	ctx, span := startSpan(ctx, "ShaddaClient.CreateOrder",
		attribute.String("order.number", o.Number), attribute.String("shop.id", o.ShopID))
	defer func() { endSpan(span, err) }()

	req, err := buildShaddaRequest(o)
	if err != nil {
		return res, err
	}

	code, body, err := c.transport.do(ctx, http.MethodPost, c.endpoints.Create, req)
	if err != nil {
		return res, err
	}
	if !isSuccess(code) {
		return res, ProviderError{Provider: ProviderShadda, StatusCode: code, Body: string(body)}
	}

	res = model.DispatchResult{DispatchID: req.OrderID, ShippingStatus: model.ShippingStatusNew}
	if data, err := decodePayload(body); err == nil {
		if s := shaddaStatus(data).Status; s != "" {
			res.ShippingStatus = s
		}
	}
	return res, nil
}

func (c ShaddaClient) GetStatus(ctx context.Context, dispatchID string) (upd model.StatusUpdate, err error) {
	ctx, span := startSpan(ctx, "ShaddaClient.GetStatus", attribute.String("dispatch.id", dispatchID))
	defer func() { endSpan(span, err) }()

	code, body, err := c.transport.do(ctx, http.MethodGet, endpointPath(c.endpoints.Status, dispatchID), nil)
	if err != nil {
		return upd, err
	}
	if !isSuccess(code) {
		return upd, ProviderError{Provider: ProviderShadda, StatusCode: code, Body: string(body)}
	}

	data, err := decodePayload(body)
	if err != nil {
		return upd, ProviderError{Provider: ProviderShadda, StatusCode: code, Body: string(body), Err: fmt.Errorf("malformed response: %w", err)}
	}

	upd = shaddaStatus(data)
	upd.DispatchID = dispatchID
	return upd, nil
}

func (c ShaddaClient) CancelOrder(ctx context.Context, dispatchID string) (err error) {
	ctx, span := startSpan(ctx, "ShaddaClient.CancelOrder", attribute.String("dispatch.id", dispatchID))
	defer func() { endSpan(span, err) }()

	code, body, err := c.transport.do(ctx, http.MethodPost, endpointPath(c.endpoints.Cancel, dispatchID),
		shaddaCancelRequest{OrderID: dispatchID})
	if err != nil {
		return err
	}
	return cancelResult(ProviderShadda, code, body)
}

func (c ShaddaClient) ParseWebhook(body []byte) (model.StatusUpdate, error) {
	return ParseShaddaWebhook(body)
}
