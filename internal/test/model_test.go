package test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/advfood/internal/model"
)

var _ = Describe("Model", func() {
	day := time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)

	Context("Order numbers", func() {
		It("formats the daily sequence", func() {
			Expect(model.FormatOrderNumber(day, 7)).Should(Equal("ORD-20260309-0007"))
			Expect(model.OrderNumberDayPrefix(day)).Should(Equal("ORD-20260309-"))
		})
		It("continues after the last number of the day", func() {
			Expect(model.NextOrderNumber("ORD-20260309-0041", day)).Should(Equal("ORD-20260309-0042"))
			Expect(model.NextOrderNumber("ORD-20260309-9999", day)).Should(Equal("ORD-20260309-10000"))
		})
		It("restarts on a new day", func() {
			Expect(model.NextOrderNumber("", day)).Should(Equal("ORD-20260309-0001"))
			Expect(model.NextOrderNumber("ORD-20260308-0041", day)).Should(Equal("ORD-20260309-0001"))
			Expect(model.NextOrderNumber("ORD-20260309-x", day)).Should(Equal("ORD-20260309-0001"))
		})
	})

	Context("Dispatch state", func() {
		It("starts paid orders as eligible", func() {
			Expect(model.InitialDispatchState(model.PaymentStatusPaid)).Should(Equal(model.DispatchEligibleUnsent))
			Expect(model.InitialDispatchState(model.PaymentStatusPending)).Should(Equal(model.DispatchNotEligible))
		})
		It("reports paid and sent", func() {
			Expect(paidOrder(1).IsPaid()).Should(BeTrue())
			Expect(paidOrder(1).IsSent()).Should(BeFalse())
			Expect(sentOrder(1, "D-1").IsSent()).Should(BeTrue())
		})
	})

	Context("Branches", func() {
		It("measures the distance in km", func() {
			Expect(model.DistanceKm(24.7136, 46.6753, 24.7136, 46.6753)).Should(Equal(0.0))
			Expect(model.DistanceKm(24.7136, 46.6753, 21.4858, 39.1925)).Should(BeNumerically("~", 846, 5))
		})
		It("picks the nearest active branch", func() {
			branches := []model.Branch{
				{ID: 1, Status: "inactive", Latitude: 24.7136, Longitude: 46.6753},
				{ID: 2, Status: model.BranchStatusActive, Latitude: 21.4858, Longitude: 39.1925},
				{ID: 3, Status: model.BranchStatusActive, Latitude: 24.6, Longitude: 46.7},
			}

			b, distance, ok := model.NearestBranch(branches, 24.7136, 46.6753)
			Expect(ok).Should(BeTrue())
			Expect(b.ID).Should(Equal(int64(3)))
			Expect(distance).Should(BeNumerically("<", 20))
		})
		It("finds nothing without active branches", func() {
			_, _, ok := model.NearestBranch([]model.Branch{{ID: 1, Status: "inactive"}}, 24.7, 46.6)
			Expect(ok).Should(BeFalse())
		})
	})
})
