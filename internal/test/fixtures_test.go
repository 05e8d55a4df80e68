package test

import (
	"github.com/shopspring/decimal"

	"github.com/DrGermanius/advfood/internal/model"
)

func paidOrder(id int64) model.Order {
	lat, lng := 24.7136, 46.6753
	return model.Order{
		ID:              id,
		Number:          "ORD-20260101-0001",
		RestaurantID:    3,
		Status:          model.OrderStatusConfirmed,
		PaymentStatus:   model.PaymentStatusPaid,
		PaymentMethod:   model.PaymentMethodCash,
		DispatchState:   model.DispatchEligibleUnsent,
		DeliveryName:    "Sara",
		DeliveryPhone:   "0551234567#12",
		DeliveryAddress: "King Fahd Rd, Riyadh",
		Latitude:        &lat,
		Longitude:       &lng,
		Subtotal:        decimal.NewFromInt(75),
		DeliveryFee:     decimal.NewFromInt(10),
		Total:           decimal.NewFromInt(85),
		Restaurant: model.Restaurant{
			ID:     3,
			Name:   "Burger House",
			ShopID: "11183",
		},
	}
}

func unpaidOrder(id int64) model.Order {
	o := paidOrder(id)
	o.Status = model.OrderStatusPending
	o.PaymentStatus = model.PaymentStatusPending
	o.DispatchState = model.DispatchNotEligible
	return o
}

func sentOrder(id int64, dispatchID string) model.Order {
	o := paidOrder(id)
	o.DispatchState = model.DispatchSent
	o.ShopID = "11183"
	o.DispatchID = dispatchID
	o.ShippingStatus = model.ShippingStatusNew
	return o
}

func int64Ptr(v int64) *int64 {
	return &v
}
