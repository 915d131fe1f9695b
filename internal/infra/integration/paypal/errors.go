package paypal

import (
	"errors"
	"fmt"
)

// ErrCredentialsMissing means the operator never configured client id and
// secret. Surfaced as a 500 with this exact message.
var ErrCredentialsMissing = errors.New("PayPal credentials not configured")

// InvalidRequestError rejects order input before anything reaches the
// provider (bad amount, missing currency or intent).
type InvalidRequestError struct {
	Field   string
	Message string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// UpstreamError wraps a provider call that failed or returned non-2xx.
// Body is logged server-side and never leaks to the browser.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("paypal %s failed: %s", e.Operation, e.Body)
	}
	return fmt.Sprintf("paypal %s failed (status %d)", e.Operation, e.StatusCode)
}

type NotFoundError struct {
	OrderID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("order %s not found", e.OrderID)
}
