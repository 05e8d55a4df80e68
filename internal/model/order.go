package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

const (
	PaymentMethodCash    = "cash"
	PaymentMethodMachine = "machine"
	PaymentMethodOnline  = "online"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
)

// DispatchState is the order's position in the dispatch workflow.
// SENT holds exactly when a dispatch id is stored.
type DispatchState string

const (
	DispatchNotEligible    DispatchState = "NOT_ELIGIBLE"
	DispatchEligibleUnsent DispatchState = "ELIGIBLE_UNSENT"
	DispatchSent           DispatchState = "SENT"
)

const orderNumberPrefix = "ORD-"

type Order struct {
	ID                  int64           `json:"id"`
	Number              string          `json:"orderNumber" validate:"required"`
	RestaurantID        int64           `json:"restaurantId" validate:"required"`
	BranchID            *int64          `json:"branchId,omitempty"`
	Status              string          `json:"status"`
	PaymentStatus       string          `json:"paymentStatus" validate:"required"`
	PaymentMethod       string          `json:"paymentMethod"`
	PaymentReference    string          `json:"paymentReference,omitempty"`
	Source              string          `json:"source,omitempty"`
	DispatchState       DispatchState   `json:"dispatchState" validate:"required,oneof=NOT_ELIGIBLE ELIGIBLE_UNSENT SENT"`
	ShopID              string          `json:"shopId,omitempty"`
	DispatchID          string          `json:"dispatchId,omitempty"`
	ShippingStatus      string          `json:"shippingStatus,omitempty"`
	DeliveryName        string          `json:"deliveryName" validate:"required"`
	DeliveryPhone       string          `json:"deliveryPhone" validate:"required"`
	DeliveryAddress     string          `json:"deliveryAddress"`
	Latitude            *float64        `json:"latitude,omitempty"`
	Longitude           *float64        `json:"longitude,omitempty"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	DeliveryFee         decimal.Decimal `json:"deliveryFee"`
	Tax                 decimal.Decimal `json:"tax"`
	Total               decimal.Decimal `json:"total"`
	DriverName          string          `json:"driverName,omitempty"`
	DriverPhone         string          `json:"driverPhone,omitempty"`
	DriverLatitude      *float64        `json:"driverLatitude,omitempty"`
	DriverLongitude     *float64        `json:"driverLongitude,omitempty"`
	Restaurant          Restaurant      `json:"restaurant"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

func (o Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}

func (o Order) IsSent() bool {
	return o.DispatchState == DispatchSent
}

// InitialDispatchState derives the starting state of a freshly created order.
func InitialDispatchState(paymentStatus string) DispatchState {
	if paymentStatus == PaymentStatusPaid {
		return DispatchEligibleUnsent
	}
	return DispatchNotEligible
}

type Restaurant struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	ShopID string `json:"shopId,omitempty"`
}

type CheckoutInput struct {
	RestaurantID        int64           `json:"restaurantId" validate:"required"`
	BranchID            *int64          `json:"branchId,omitempty"`
	PaymentMethod       string          `json:"paymentMethod" validate:"required,oneof=cash machine online"`
	PaymentStatus       string          `json:"paymentStatus" validate:"omitempty,oneof=pending paid"`
	Source              string          `json:"source"`
	DeliveryName        string          `json:"deliveryName" validate:"required"`
	DeliveryPhone       string          `json:"deliveryPhone" validate:"required"`
	DeliveryAddress     string          `json:"deliveryAddress"`
	Latitude            *float64        `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude           *float64        `json:"longitude,omitempty" validate:"omitempty,longitude"`
	SpecialInstructions string          `json:"specialInstructions"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	DeliveryFee         decimal.Decimal `json:"deliveryFee"`
	Tax                 decimal.Decimal `json:"tax"`
}

// FormatOrderNumber renders ORD-<YYYYMMDD>-<NNNN>.
func FormatOrderNumber(day time.Time, seq int) string {
	return fmt.Sprintf("%s%s-%04d", orderNumberPrefix, day.Format("20060102"), seq)
}

// OrderNumberDayPrefix is the common prefix of all numbers issued on day.
func OrderNumberDayPrefix(day time.Time) string {
	return orderNumberPrefix + day.Format("20060102") + "-"
}

// NextOrderNumber continues the daily sequence after last, the greatest
// number already issued on day. An empty or foreign last restarts at 0001.
func NextOrderNumber(last string, day time.Time) string {
	prefix := OrderNumberDayPrefix(day)
	if !strings.HasPrefix(last, prefix) {
		return FormatOrderNumber(day, 1)
	}

	seq, err := strconv.Atoi(strings.TrimPrefix(last, prefix))
	if err != nil {
		return FormatOrderNumber(day, 1)
	}
	return FormatOrderNumber(day, seq+1)
}
