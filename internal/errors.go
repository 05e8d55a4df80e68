package internal

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAuthSecretMissing  = errors.New("auth secret is not configured")

	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderIsAlreadySent = errors.New("order is already sent")
	ErrInvalidOrder       = errors.New("invalid order")
	ErrNoRecords          = errors.New("no records")

	ErrMissingShopConfiguration = errors.New("missing shop configuration")
	ErrProviderCallFailed       = errors.New("shipping provider call failed")
	ErrShippingNotConfigured    = errors.New("shipping is not configured")
	ErrUnknownProvider          = errors.New("unknown shipping provider")
	ErrCancelRejected           = errors.New("cancellation rejected by provider")

	ErrWebhookOrderNotMatched = errors.New("webhook order not matched")
	ErrInvalidWebhookPayload  = errors.New("invalid webhook payload")
)

// MissingShopConfigurationError names the restaurant an operator has to fix.
type MissingShopConfigurationError struct {
	RestaurantID   int64
	RestaurantName string
}

func (e MissingShopConfigurationError) Error() string {
	return fmt.Sprintf("no shop id configured for restaurant %q (id %d)", e.RestaurantName, e.RestaurantID)
}

func (e MissingShopConfigurationError) Is(target error) bool {
	return target == ErrMissingShopConfiguration
}

// ProviderError is a failed call to the shipping provider. StatusCode is 0 on transport errors.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Provider, e.Err.Error())
	}
	return fmt.Sprintf("%s: unexpected response %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e ProviderError) Is(target error) bool {
	return target == ErrProviderCallFailed
}

func (e ProviderError) Unwrap() error {
	return e.Err
}
