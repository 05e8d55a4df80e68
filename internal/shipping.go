package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/DrGermanius/advfood/internal/model"
)

// IShippingClient is one delivery provider. Calls are never retried here;
// a failed dispatch is retried by resending the order.
type IShippingClient interface {
	Provider() string
	CreateOrder(context.Context, model.Order) (model.DispatchResult, error)
	GetStatus(context.Context, string) (model.StatusUpdate, error)
	CancelOrder(context.Context, string) error
	ParseWebhook([]byte) (model.StatusUpdate, error)
}

// NewShippingClient builds the client for cfg.Provider.
func NewShippingClient(cfg ShippingConfig, logger *zap.SugaredLogger) (IShippingClient, error) {
	var (
		client IShippingClient
		err    error
	)
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderLeajlak:
		client, err = NewLeajlakClient(cfg, logger)
	case ProviderShadda:
		client, err = NewShaddaClient(cfg, logger)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

var phoneSuffix = regexp.MustCompile(`#\d+$`)

// cleanPhone drops a trailing "#<digits>" marker left by earlier orders.
func cleanPhone(phone string) string {
	return strings.TrimSpace(phoneSuffix.ReplaceAllString(phone, ""))
}

const (
	PaymentTypeOther   = 0
	PaymentTypeCash    = 1
	PaymentTypeMachine = 10
)

func paymentType(method string) int {
	switch strings.ToLower(method) {
	case model.PaymentMethodCash:
		return PaymentTypeCash
	case model.PaymentMethodMachine:
		return PaymentTypeMachine
	default:
		return PaymentTypeOther
	}
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

func isCancelRejection(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "in transit") || strings.Contains(m, "picked") || strings.Contains(m, "cannot cancel")
}

func endpointPath(template, id string) string {
	return strings.ReplaceAll(template, "{id}", url.PathEscape(id))
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer("shipping").Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// shippingTransport sends JSON to a provider and logs every attempt.
// Headers carry the credential and are never logged.
type shippingTransport struct {
	provider string
	baseURL  string
	headers  map[string]string
	client   *http.Client
	logger   *zap.SugaredLogger
}

func newShippingTransport(provider string, cfg ShippingConfig, headers map[string]string, logger *zap.SugaredLogger) shippingTransport {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultShippingTimeout
	}

	return shippingTransport{
		provider: provider,
		baseURL:  strings.TrimRight(cfg.URL, "/"),
		headers:  headers,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

func (t shippingTransport) do(ctx context.Context, method, path string, payload interface{}) (int, []byte, error) {
	var (
		raw  []byte
		body io.Reader = http.NoBody
		err  error
	)
	if payload != nil {
		raw, err = json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(raw)
	}

	u := t.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	t.logger.Infow("shipping request", "provider", t.provider, "method", method, "url", u, "payload", string(raw))

	res, err := t.client.Do(req)
	if err != nil {
		t.logger.Errorw("shipping request failed", "provider", t.provider, "url", u, "error", err)
		return 0, nil, ProviderError{Provider: t.provider, Err: err}
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, res.Body)
	if err != nil {
		return res.StatusCode, nil, ProviderError{Provider: t.provider, StatusCode: res.StatusCode, Err: err}
	}

	t.logger.Infow("shipping response", "provider", t.provider, "url", u, "status", res.StatusCode, "body", buf.String())

	return res.StatusCode, buf.Bytes(), nil
}
