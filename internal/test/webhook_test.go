package test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/advfood/internal"
	"github.com/DrGermanius/advfood/internal/model"
)

var _ = Describe("Webhook payloads", func() {
	Context("Provider", func() {
		It("reads a flat callback", func() {
			upd, err := internal.ParseLeajlakWebhook([]byte(`{"dsp_order_id":"D-1","status":"Delivered","driver_name":"Ali","driver_phone":"055"}`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(upd.DispatchID).Should(Equal("D-1"))
			Expect(upd.Status).Should(Equal("Delivered"))
			Expect(upd.Driver.Name).Should(Equal("Ali"))
			Expect(upd.Driver.Latitude).Should(BeNil())
		})
		It("reads a callback wrapped in data", func() {
			upd, err := internal.ParseLeajlakWebhook([]byte(`{"data":{"dsp_order_id":123,"status":"Picked Up"}}`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(upd.DispatchID).Should(Equal("123"))
			Expect(upd.Status).Should(Equal("Picked Up"))
		})
		It("rejects a callback without status", func() {
			_, err := internal.ParseLeajlakWebhook([]byte(`{"dsp_order_id":"D-1"}`))
			Expect(errors.Is(err, internal.ErrInvalidWebhookPayload)).Should(BeTrue())
		})
		It("rejects a payload that is not an object", func() {
			_, err := internal.ParseLeajlakWebhook([]byte(`[1,2]`))
			Expect(errors.Is(err, internal.ErrInvalidWebhookPayload)).Should(BeTrue())
		})
	})

	Context("Shadda", func() {
		It("maps numeric statuses", func() {
			Expect(internal.ShaddaStatusText("6")).Should(Equal("Completed"))
			Expect(internal.ShaddaStatusText("10")).Should(Equal("New"))
			Expect(internal.ShaddaStatusText("99")).Should(Equal("Unknown"))
			Expect(internal.ShaddaStatusText("Delivered")).Should(Equal("Delivered"))
			Expect(internal.ShaddaStatusText("")).Should(BeEmpty())
		})
		It("reads driver location from a flat payload", func() {
			upd, err := internal.ParseShaddaWebhook([]byte(`{"orderId":"ORD-1","statusId":"4","driverMobile":"0551","lat":"24.7","lng":"46.6"}`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(upd.Status).Should(Equal("On the way to the delivery location"))
			Expect(upd.Driver.Phone).Should(Equal("0551"))
			Expect(*upd.Driver.Longitude).Should(Equal(46.6))
		})
		It("falls back to top level keys next to a data object", func() {
			upd, err := internal.ParseWebhook(model.WebhookSourceShadda, []byte(`{"orderId":"ORD-20260101-0001","status":6,"data":{"driver":{"name":"Ali"}}}`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(upd.DispatchID).Should(Equal("ORD-20260101-0001"))
			Expect(upd.Status).Should(Equal("Completed"))
			Expect(upd.Driver.Name).Should(Equal("Ali"))
		})
		It("prefers keys inside data", func() {
			upd, err := internal.ParseShaddaWebhook([]byte(`{"orderId":"ORD-1","status":1,"data":{"orderId":"ORD-2","status":7}}`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(upd.DispatchID).Should(Equal("ORD-2"))
			Expect(upd.Status).Should(Equal("Canceled"))
		})
	})

	Context("Generic", func() {
		It("accepts camel case names", func() {
			upd, err := internal.ParseWebhook(model.WebhookSourceGeneric, []byte(`{"dispatchId":"D-7","shipping_status":"Out for delivery"}`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(upd.DispatchID).Should(Equal("D-7"))
			Expect(upd.Status).Should(Equal("Out for delivery"))
		})
		It("reads the id at the top level when data only holds the driver", func() {
			upd, err := internal.ParseWebhook(model.WebhookSourceGeneric, []byte(`{"dispatch_id":"D-8","status":"Delivered","data":{"driverName":"Omar"}}`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(upd.DispatchID).Should(Equal("D-8"))
			Expect(upd.Driver.Name).Should(Equal("Omar"))
		})
		It("rejects a payload without dispatch id", func() {
			_, err := internal.ParseWebhook(model.WebhookSourceGeneric, []byte(`{"status":"Delivered"}`))
			Expect(errors.Is(err, internal.ErrInvalidWebhookPayload)).Should(BeTrue())
		})
	})

	Context("Payment", func() {
		It("reads a nested gateway result", func() {
			n, err := internal.ParsePaymentNotification([]byte(`{"result":{"resultCode":"000","order":{"reference":"PAY-9","status":"CAPTURED"}}}`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(n.Reference).Should(Equal("PAY-9"))
			Expect(n.Statuses).Should(ContainElement("captured"))
			Expect(n.ResultCode).Should(Equal("000"))
			Expect(internal.PaymentSucceeded(n)).Should(BeTrue())
		})
		It("accepts success in any status candidate", func() {
			for _, body := range []string{
				`{"event":"captured"}`,
				`{"transactionStatus":"SUCCESS"}`,
				`{"event":{"type":"payment.succeeded"},"eventType":"Paid"}`,
				`{"status":"INITIATED","result":{"order":{"status":"CAPTURED"}}}`,
				`{"responseCode":"000"}`,
			} {
				n, err := internal.ParsePaymentNotification([]byte(body))
				Expect(err).ShouldNot(HaveOccurred())
				Expect(internal.PaymentSucceeded(n)).Should(BeTrue(), body)
			}
		})
		It("prefers the order id over the merchant reference", func() {
			n, err := internal.ParsePaymentNotification([]byte(`{"merchantOrderReference":"M-1","order":{"id":"PAY-4"}}`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(n.Reference).Should(Equal("PAY-4"))
		})
		It("treats unknown outcomes as unpaid", func() {
			n, err := internal.ParsePaymentNotification([]byte(`{"orderReference":"PAY-9","status":"declined","resultCode":"51"}`))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(internal.PaymentSucceeded(n)).Should(BeFalse())
		})
	})
})
