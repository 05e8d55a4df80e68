package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ShippingStatusNew       = "New Order"
	ShippingStatusCancelled = "cancelled"
)

const (
	WebhookSourceProvider = "provider"
	WebhookSourceShadda   = "shadda"
	WebhookSourceGeneric  = "generic"
)

type DispatchOutcome string

const (
	OutcomeSent               DispatchOutcome = "SENT"
	OutcomeSkippedNotPaid     DispatchOutcome = "SKIPPED_NOT_PAID"
	OutcomeSkippedAlreadySent DispatchOutcome = "SKIPPED_ALREADY_SENT"
	OutcomeFailed             DispatchOutcome = "FAILED"
)

// DispatchResult is what a provider hands back for a created delivery.
type DispatchResult struct {
	DispatchID     string `json:"dispatchId"`
	ShippingStatus string `json:"shippingStatus"`
}

type DriverInfo struct {
	Name      string   `json:"name,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (d DriverInfo) Empty() bool {
	return d.Name == "" && d.Phone == "" && d.Latitude == nil && d.Longitude == nil
}

// StatusUpdate is a provider-reported shipping status, from a webhook or a status poll.
type StatusUpdate struct {
	DispatchID string     `json:"dispatchId"`
	Status     string     `json:"status"`
	Driver     DriverInfo `json:"driver"`
}

// ShippingOrder is the audit record of one successful dispatch call.
type ShippingOrder struct {
	ID             int64           `json:"id"`
	OrderID        int64           `json:"orderId"`
	Provider       string          `json:"provider"`
	ShopID         string          `json:"shopId"`
	DispatchID     string          `json:"dispatchId"`
	ShippingStatus string          `json:"shippingStatus"`
	RecipientName  string          `json:"recipientName"`
	RecipientPhone string          `json:"recipientPhone"`
	Address        string          `json:"address"`
	Latitude       *float64        `json:"latitude,omitempty"`
	Longitude      *float64        `json:"longitude,omitempty"`
	Total          decimal.Decimal `json:"total"`
	PaymentType    int             `json:"paymentType"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type DispatchReport struct {
	OrderID        int64           `json:"orderId"`
	OrderNumber    string          `json:"orderNumber,omitempty"`
	Outcome        DispatchOutcome `json:"outcome"`
	ShopID         string          `json:"shopId,omitempty"`
	DispatchID     string          `json:"dispatchId,omitempty"`
	ShippingStatus string          `json:"shippingStatus,omitempty"`
	Error          string          `json:"error,omitempty"`
}

type WebhookEvent struct {
	ID         uuid.UUID `json:"id"`
	Source     string    `json:"source"`
	DispatchID string    `json:"dispatchId,omitempty"`
	Status     string    `json:"status,omitempty"`
	Matched    bool      `json:"matched"`
	Payload    string    `json:"payload"`
	ReceivedAt time.Time `json:"receivedAt"`
}

const (
	EventDispatched    = "shipping.dispatched"
	EventStatusUpdated = "shipping.status_updated"
	EventCancelled     = "shipping.cancelled"
)

type ShippingEvent struct {
	Type       string    `json:"type"`
	OrderID    int64     `json:"orderId,omitempty"`
	DispatchID string    `json:"dispatchId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

type PaymentNotification struct {
	Reference  string
	Statuses   []string
	ResultCode string
}

type PaymentResult struct {
	Status   string          `json:"status"`
	Message  string          `json:"message"`
	OrderID  int64           `json:"orderId,omitempty"`
	Dispatch *DispatchReport `json:"dispatch,omitempty"`
}
