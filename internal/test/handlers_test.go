package test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/advfood/internal"
	mock_internal "github.com/DrGermanius/advfood/internal/mock"
	"github.com/DrGermanius/advfood/internal/model"
)

func decodeBody(res *http.Response) map[string]interface{} {
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	Expect(err).ShouldNot(HaveOccurred())

	var body map[string]interface{}
	Expect(json.Unmarshal(raw, &body)).Should(Succeed())
	return body
}

var _ = Describe("Handlers", func() {
	var (
		ctrl *gomock.Controller
		srv  *mock_internal.MockIService
		app  *fiber.App
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		srv = mock_internal.NewMockIService(ctrl)

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		app = internal.NewRouter(internal.NewHandlers(srv, logger.Sugar()))
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	authorized := func(method, target, body string) *http.Request {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer branch-token")
		return req
	}

	Context("Webhooks", func() {
		It("acknowledges an unmatched provider webhook", func() {
			srv.EXPECT().HandleWebhook(gomock.Any(), model.WebhookSourceProvider, gomock.Any()).
				Return(model.WebhookEvent{Matched: false}, nil)

			req := httptest.NewRequest(http.MethodPost, "/shipping/webhook", strings.NewReader(`{"dsp_order_id":"D-404","status":"Delivered"}`))
			res, err := app.Test(req)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusOK))
			Expect(decodeBody(res)["status"]).Should(Equal("ignored"))
		})
		It("acknowledges a webhook that failed to parse", func() {
			srv.EXPECT().HandleWebhook(gomock.Any(), model.WebhookSourceGeneric, gomock.Any()).
				Return(model.WebhookEvent{}, internal.ErrInvalidWebhookPayload)

			req := httptest.NewRequest(http.MethodPost, "/webhook/generic", strings.NewReader(`garbage`))
			res, err := app.Test(req)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusOK))
		})
		It("reports a matched Shadda webhook", func() {
			srv.EXPECT().HandleWebhook(gomock.Any(), model.WebhookSourceShadda, []byte(`{"orderId":"ORD-1","status":6}`)).
				Return(model.WebhookEvent{Matched: true}, nil)

			req := httptest.NewRequest(http.MethodPost, "/shipping/shadda/webhook", strings.NewReader(`{"orderId":"ORD-1","status":6}`))
			res, err := app.Test(req)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(decodeBody(res)["status"]).Should(Equal("success"))
		})
		It("answers 202 for a payment that is not processed", func() {
			srv.EXPECT().HandlePaymentNotification(gomock.Any(), gomock.Any()).
				Return(model.PaymentResult{Status: internal.PaymentResultIgnored, Message: "order not found"}, nil)

			req := httptest.NewRequest(http.MethodPost, "/payment/webhook", strings.NewReader(`{"orderReference":"PAY-3"}`))
			res, err := app.Test(req)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusAccepted))
		})
		It("answers 202 when the payment could not be applied", func() {
			srv.EXPECT().HandlePaymentNotification(gomock.Any(), gomock.Any()).
				Return(model.PaymentResult{}, errors.New("connection refused"))

			req := httptest.NewRequest(http.MethodPost, "/payment/webhook", strings.NewReader(`{"orderReference":"PAY-1","status":"paid"}`))
			res, err := app.Test(req)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusAccepted))
			Expect(decodeBody(res)["status"]).Should(Equal("error"))
		})
		It("answers 200 for a processed payment", func() {
			srv.EXPECT().HandlePaymentNotification(gomock.Any(), gomock.Any()).
				Return(model.PaymentResult{Status: internal.PaymentResultProcessed, OrderID: 7}, nil)

			req := httptest.NewRequest(http.MethodPost, "/payment/webhook", strings.NewReader(`{"orderReference":"PAY-1","status":"paid"}`))
			res, err := app.Test(req)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusOK))
		})
	})

	Context("Auth", func() {
		It("Login sets the token cookie", func() {
			srv.EXPECT().Login(gomock.Any(), "branch@advfood.local", "pass").Return("tok", nil)

			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"branch@advfood.local","password":"pass"}`))
			req.Header.Set("Content-Type", "application/json")
			res, err := app.Test(req)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusOK))
			Expect(res.Header.Get("Set-Cookie")).Should(ContainSubstring("token=tok"))
		})
		It("Login with invalid credentials", func() {
			srv.EXPECT().Login(gomock.Any(), "branch@advfood.local", "bad").Return("", internal.ErrInvalidCredentials)

			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"branch@advfood.local","password":"bad"}`))
			req.Header.Set("Content-Type", "application/json")
			res, err := app.Test(req)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusUnauthorized))
		})
		It("rejects a request without token", func() {
			srv.EXPECT().ParseToken("").Return(int64(0), internal.ErrInvalidToken)

			res, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/orders/7/dispatch", nil))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusUnauthorized))
		})
		It("accepts the token cookie", func() {
			srv.EXPECT().ParseToken("cookie-token").Return(int64(0), nil)
			srv.EXPECT().GetWebhookEvents(gomock.Any(), 50).Return(nil, internal.ErrNoRecords)

			req := httptest.NewRequest(http.MethodGet, "/api/webhooks", nil)
			req.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
			res, err := app.Test(req)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusNoContent))
		})
	})

	Context("Dispatch", func() {
		It("dispatches with the branch from the token", func() {
			srv.EXPECT().ParseToken("branch-token").Return(int64(5), nil)
			srv.EXPECT().Dispatch(gomock.Any(), int64(7), int64Ptr(5)).
				Return(model.DispatchReport{OrderID: 7, Outcome: model.OutcomeSent, DispatchID: "D-123"}, nil)

			res, err := app.Test(authorized(http.MethodPost, "/api/orders/7/dispatch", ""))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusOK))
			Expect(decodeBody(res)["dispatchId"]).Should(Equal("D-123"))
		})
		It("dispatches without a branch for the platform token", func() {
			srv.EXPECT().ParseToken("branch-token").Return(int64(0), nil)
			srv.EXPECT().Dispatch(gomock.Any(), int64(7), gomock.Nil()).
				Return(model.DispatchReport{OrderID: 7, Outcome: model.OutcomeSkippedNotPaid}, nil)

			res, err := app.Test(authorized(http.MethodPost, "/api/orders/7/dispatch", ""))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusOK))
		})
		It("answers 409 for a missing shop configuration", func() {
			srv.EXPECT().ParseToken("branch-token").Return(int64(0), nil)
			srv.EXPECT().Dispatch(gomock.Any(), int64(7), gomock.Nil()).
				Return(model.DispatchReport{OrderID: 7, Outcome: model.OutcomeFailed},
					internal.MissingShopConfigurationError{RestaurantID: 3, RestaurantName: "Burger House"})

			res, err := app.Test(authorized(http.MethodPost, "/api/orders/7/dispatch", ""))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusConflict))
			Expect(decodeBody(res)["data"]).Should(ContainSubstring("Burger House"))
		})
		It("answers 502 when the provider fails", func() {
			srv.EXPECT().ParseToken("branch-token").Return(int64(0), nil)
			srv.EXPECT().Dispatch(gomock.Any(), int64(7), gomock.Nil()).
				Return(model.DispatchReport{OrderID: 7, Outcome: model.OutcomeFailed},
					internal.ProviderError{Provider: internal.ProviderLeajlak, StatusCode: 500})

			res, err := app.Test(authorized(http.MethodPost, "/api/orders/7/dispatch", ""))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusBadGateway))
		})
		It("answers 400 for a malformed order id", func() {
			srv.EXPECT().ParseToken("branch-token").Return(int64(0), nil)

			res, err := app.Test(authorized(http.MethodGet, "/api/orders/abc", ""))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusBadRequest))
		})
		It("runs the batch", func() {
			srv.EXPECT().ParseToken("branch-token").Return(int64(0), nil)
			srv.EXPECT().DispatchPending(gomock.Any(), gomock.Nil()).Return([]model.DispatchReport{
				{OrderID: 1, Outcome: model.OutcomeSent},
				{OrderID: 2, Outcome: model.OutcomeFailed},
			}, nil)

			res, err := app.Test(authorized(http.MethodPost, "/api/orders/dispatch", ""))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusOK))
		})
	})

	Context("Orders and shipping", func() {
		It("creates an order for the token branch", func() {
			srv.EXPECT().ParseToken("branch-token").Return(int64(5), nil)
			srv.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, in model.CheckoutInput) (model.Order, error) {
					Expect(*in.BranchID).Should(Equal(int64(5)))
					Expect(in.PaymentMethod).Should(Equal(model.PaymentMethodCash))
					return model.Order{ID: 11, Number: "ORD-20260101-0002"}, nil
				})

			body := `{"restaurantId":3,"paymentMethod":"cash","deliveryName":"Sara","deliveryPhone":"0551234567"}`
			res, err := app.Test(authorized(http.MethodPost, "/api/orders", body))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusCreated))
		})
		It("answers 404 for an unknown order", func() {
			srv.EXPECT().ParseToken("branch-token").Return(int64(0), nil)
			srv.EXPECT().GetOrder(gomock.Any(), int64(404)).Return(model.Order{}, internal.ErrOrderNotFound)

			res, err := app.Test(authorized(http.MethodGet, "/api/orders/404", ""))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusNotFound))
		})
		It("answers 422 when the provider refuses to cancel", func() {
			srv.EXPECT().ParseToken("branch-token").Return(int64(0), nil)
			srv.EXPECT().CancelDispatch(gomock.Any(), "D-123").
				Return(fmt.Errorf("%w: order is in transit", internal.ErrCancelRejected))

			res, err := app.Test(authorized(http.MethodPost, "/api/shipping/D-123/cancel", ""))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusUnprocessableEntity))
		})
		It("refreshes the status", func() {
			srv.EXPECT().ParseToken("branch-token").Return(int64(0), nil)
			srv.EXPECT().RefreshStatus(gomock.Any(), "D-123").
				Return(model.StatusUpdate{DispatchID: "D-123", Status: "Delivered"}, nil)

			res, err := app.Test(authorized(http.MethodGet, "/api/shipping/D-123/status", ""))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusOK))
		})
		It("builds the shipping report with the requested limit", func() {
			srv.EXPECT().ParseToken("branch-token").Return(int64(0), nil)
			srv.EXPECT().HealthReport(gomock.Any(), 3).Return(model.HealthReport{Provider: internal.ProviderLeajlak, Configured: true}, nil)

			res, err := app.Test(authorized(http.MethodGet, "/api/shipping/report?limit=3", ""))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusOK))
			Expect(decodeBody(res)["provider"]).Should(Equal(internal.ProviderLeajlak))
		})
		It("answers 500 when the report fails", func() {
			srv.EXPECT().ParseToken("branch-token").Return(int64(0), nil)
			srv.EXPECT().HealthReport(gomock.Any(), 10).Return(model.HealthReport{}, errors.New("some error"))

			res, err := app.Test(authorized(http.MethodGet, "/api/shipping/report", ""))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusInternalServerError))
		})
	})
})
