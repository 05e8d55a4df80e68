package test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/advfood/internal"
	"github.com/DrGermanius/advfood/internal/model"
)

type recordedRequest struct {
	Method  string
	Path    string
	Headers http.Header
	Body    map[string]interface{}
}

// providerStub answers every request with status and body and remembers the last request.
func providerStub(status int, body string, last *recordedRequest) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last.Method = r.Method
		last.Path = r.URL.Path
		last.Headers = r.Header.Clone()
		last.Body = nil
		_ = json.NewDecoder(r.Body).Decode(&last.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

var _ = Describe("Shipping clients", func() {
	var (
		logger *zap.SugaredLogger
		server *httptest.Server
		last   recordedRequest
		ctx    context.Context
	)
	BeforeEach(func() {
		z, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())
		logger = z.Sugar()
		last = recordedRequest{}
		ctx = context.Background()
	})
	AfterEach(func() {
		if server != nil {
			server.Close()
			server = nil
		}
	})

	leajlak := func(status int, body string) internal.IShippingClient {
		server = providerStub(status, body, &last)
		c, err := internal.NewShippingClient(internal.ShippingConfig{
			Provider: internal.ProviderLeajlak,
			URL:      server.URL,
			Key:      "k-123",
			Timeout:  5 * time.Second,
		}, logger)
		Expect(err).ShouldNot(HaveOccurred())
		return c
	}

	shadda := func(status int, body string) internal.IShippingClient {
		server = providerStub(status, body, &last)
		c, err := internal.NewShippingClient(internal.ShippingConfig{
			Provider: internal.ProviderShadda,
			URL:      server.URL + "/",
			Key:      "s-456",
			ClientID: "advfood",
		}, logger)
		Expect(err).ShouldNot(HaveOccurred())
		return c
	}

	Context("Factory", func() {
		It("rejects a missing key", func() {
			_, err := internal.NewShippingClient(internal.ShippingConfig{URL: "http://localhost"}, logger)
			Expect(errors.Is(err, internal.ErrShippingNotConfigured)).Should(BeTrue())
		})
		It("requires a client id for Shadda", func() {
			_, err := internal.NewShippingClient(internal.ShippingConfig{Provider: internal.ProviderShadda, URL: "http://localhost", Key: "k"}, logger)
			Expect(errors.Is(err, internal.ErrShippingNotConfigured)).Should(BeTrue())
		})
		It("rejects an unknown provider", func() {
			_, err := internal.NewShippingClient(internal.ShippingConfig{Provider: "pigeon", URL: "http://localhost", Key: "k"}, logger)
			Expect(errors.Is(err, internal.ErrUnknownProvider)).Should(BeTrue())
		})
	})

	Context("Leajlak", func() {
		It("CreateOrder sends the order and reads the dispatch id", func() {
			c := leajlak(http.StatusOK, `{"dsp_order_id":"D-123"}`)
			o := paidOrder(7)
			o.ShopID = "11183"

			res, err := c.CreateOrder(ctx, o)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.DispatchID).Should(Equal("D-123"))
			Expect(res.ShippingStatus).Should(Equal(model.ShippingStatusNew))

			Expect(last.Method).Should(Equal(http.MethodPost))
			Expect(last.Path).Should(Equal("/orders"))
			Expect(last.Headers.Get("Authorization")).Should(Equal("Bearer k-123"))
			Expect(last.Body["id"]).Should(Equal("ORD-20260101-0001"))
			Expect(last.Body["shop_id"]).Should(Equal("11183"))

			details := last.Body["delivery_details"].(map[string]interface{})
			Expect(details["phone"]).Should(Equal("0551234567"))
			Expect(details["email"]).Should(Equal("order7@advfood.local"))
			Expect(details).Should(HaveKey("coordinate"))

			order := last.Body["order"].(map[string]interface{})
			Expect(order["payment_type"]).Should(BeNumerically("==", internal.PaymentTypeCash))
			Expect(order["total"]).Should(BeNumerically("==", 85))
		})
		It("CreateOrder omits coordinates out of range", func() {
			c := leajlak(http.StatusCreated, `{"data":{"dsp_order_id":"D-9","status":"Pending"}}`)
			o := paidOrder(7)
			o.ShopID = "11183"
			lat := 123.0
			o.Latitude = &lat

			res, err := c.CreateOrder(ctx, o)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.DispatchID).Should(Equal("D-9"))
			Expect(res.ShippingStatus).Should(Equal("Pending"))

			details := last.Body["delivery_details"].(map[string]interface{})
			Expect(details).ShouldNot(HaveKey("coordinate"))
		})
		It("CreateOrder fails on a response without a dispatch id", func() {
			c := leajlak(http.StatusOK, `{"ok":true}`)

			_, err := c.CreateOrder(ctx, paidOrder(7))
			Expect(errors.Is(err, internal.ErrProviderCallFailed)).Should(BeTrue())
			Expect(err.Error()).Should(ContainSubstring("no dispatch id"))
		})
		It("CreateOrder fails on a rejected request", func() {
			c := leajlak(http.StatusUnprocessableEntity, `{"message":"invalid shop"}`)

			_, err := c.CreateOrder(ctx, paidOrder(7))
			var pe internal.ProviderError
			Expect(errors.As(err, &pe)).Should(BeTrue())
			Expect(pe.StatusCode).Should(Equal(http.StatusUnprocessableEntity))
			Expect(pe.Body).Should(ContainSubstring("invalid shop"))
		})
		It("CreateOrder fails when the provider is unreachable", func() {
			c, err := internal.NewShippingClient(internal.ShippingConfig{URL: "http://127.0.0.1:1", Key: "k", Timeout: time.Second}, logger)
			Expect(err).ShouldNot(HaveOccurred())

			_, err = c.CreateOrder(ctx, paidOrder(7))
			var pe internal.ProviderError
			Expect(errors.As(err, &pe)).Should(BeTrue())
			Expect(pe.StatusCode).Should(Equal(0))
		})
		It("GetStatus reads status and driver", func() {
			c := leajlak(http.StatusOK, `{"status":"Picked Up","driver":{"name":"Ali","phone":"0550000000","location":{"latitude":24.7,"longitude":46.6}}}`)

			upd, err := c.GetStatus(ctx, "D-123")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(last.Method).Should(Equal(http.MethodGet))
			Expect(last.Path).Should(Equal("/orders/D-123"))
			Expect(upd.DispatchID).Should(Equal("D-123"))
			Expect(upd.Status).Should(Equal("Picked Up"))
			Expect(upd.Driver.Name).Should(Equal("Ali"))
			Expect(*upd.Driver.Latitude).Should(Equal(24.7))
		})
		It("ParseWebhook reads its own callback shape", func() {
			c := leajlak(http.StatusOK, `{}`)

			upd, err := c.ParseWebhook([]byte(`{"dsp_order_id":"D-1","status":"Delivered"}`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(upd.DispatchID).Should(Equal("D-1"))
		})
		It("CancelOrder accepted", func() {
			c := leajlak(http.StatusAccepted, ``)

			err := c.CancelOrder(ctx, "D-123")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(last.Method).Should(Equal(http.MethodDelete))
			Expect(last.Path).Should(Equal("/orders/D-123"))
		})
		It("CancelOrder rejected once the driver has the order", func() {
			c := leajlak(http.StatusBadRequest, `{"message":"Order is in transit"}`)

			err := c.CancelOrder(ctx, "D-123")
			Expect(errors.Is(err, internal.ErrCancelRejected)).Should(BeTrue())
		})
		It("CancelOrder with a server error", func() {
			c := leajlak(http.StatusInternalServerError, `oops`)

			err := c.CancelOrder(ctx, "D-123")
			Expect(errors.Is(err, internal.ErrProviderCallFailed)).Should(BeTrue())
		})
	})

	Context("Shadda", func() {
		It("CreateOrder addresses the branch and echoes the order number", func() {
			c := shadda(http.StatusOK, `{"data":{"status":10}}`)
			o := paidOrder(7)
			o.ShopID = "11183"

			res, err := c.CreateOrder(ctx, o)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.DispatchID).Should(Equal("ORD-20260101-0001"))
			Expect(res.ShippingStatus).Should(Equal("New"))

			Expect(last.Path).Should(Equal("/CreateOrder"))
			Expect(last.Headers.Get("client-id")).Should(Equal("advfood"))
			Expect(last.Headers.Get("Authorization")).Should(Equal("Bearer s-456"))
			Expect(last.Body["branchId"]).Should(BeNumerically("==", 11183))
			Expect(last.Body["paymentMethod"]).Should(Equal("card"))
			Expect(last.Body["deliveryPhone"]).Should(Equal("0551234567"))
		})
		It("CreateOrder refuses a non-numeric shop id", func() {
			c := shadda(http.StatusOK, `{}`)
			o := paidOrder(7)
			o.ShopID = "shop-a"

			_, err := c.CreateOrder(ctx, o)
			Expect(errors.Is(err, internal.ErrInvalidOrder)).Should(BeTrue())
			Expect(last.Path).Should(BeEmpty())
		})
		It("GetStatus prefers the status description", func() {
			c := shadda(http.StatusOK, `{"data":{"orderId":"ORD-1","status":5,"statusDesc":"At the door","driverName":"Omar"}}`)

			upd, err := c.GetStatus(ctx, "ORD-1")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(last.Path).Should(Equal("/GetOrder/ORD-1"))
			Expect(upd.Status).Should(Equal("At the door"))
			Expect(upd.Driver.Name).Should(Equal("Omar"))
		})
		It("ParseWebhook reads its own callback shape", func() {
			c := shadda(http.StatusOK, `{}`)

			upd, err := c.ParseWebhook([]byte(`{"orderId":"ORD-1","status":6}`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(upd.DispatchID).Should(Equal("ORD-1"))
			Expect(upd.Status).Should(Equal("Completed"))
		})
		It("CancelOrder posts the order id", func() {
			c := shadda(http.StatusOK, `{}`)

			err := c.CancelOrder(ctx, "ORD-1")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(last.Method).Should(Equal(http.MethodPost))
			Expect(last.Path).Should(Equal("/CancelOrder"))
			Expect(last.Body["orderId"]).Should(Equal("ORD-1"))
		})
	})
})
