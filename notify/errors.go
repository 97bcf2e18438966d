package notify

import (
	"errors"
	"fmt"
	"strings"
)

// DeliveryError records a non-success answer from the push service. It
// carries the HTTP status code and the raw response body, plus the
// service's own error strings when the body could be decoded.
type DeliveryError struct {
	StatusCode int
	Body       string
	Reasons    []string
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	if len(e.Reasons) > 0 {
		return fmt.Sprintf("notify: service rejected message (status %d): %s",
			e.StatusCode, strings.Join(e.Reasons, "; "))
	}

	return fmt.Sprintf("notify: service rejected message (status %d)", e.StatusCode)
}

// TransportError records a network-level failure: the request never
// produced a response (timeout, DNS failure, connection refused,
// cancellation).
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("notify: sending message: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsDeliveryError checks if an error records a rejection by the service.
func IsDeliveryError(err error) bool {
	var de *DeliveryError
	return errors.As(err, &de)
}

// IsTransportError checks if an error is a network-level failure.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
