package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrMissingCustomerData  = errors.New("cpf and nome are required")
	ErrAmountNotConfigured  = errors.New("amount not provided and no fixed amount configured")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrMissingTransactionID = errors.New("transaction id is required")

	// ErrGatewayTransport marks a non-2xx answer from the gateway.
	ErrGatewayTransport = errors.New("payment gateway transport failure")
	// ErrGatewayContract marks a 2xx answer that breaks the expected shape:
	// success flag not true, or transaction id / pix code missing.
	ErrGatewayContract = errors.New("payment gateway contract failure")
	// ErrStatusUnavailable marks an exhausted status candidate sweep.
	ErrStatusUnavailable = errors.New("payment status unavailable")
)

// GatewayError reasons.
const (
	ReasonTransportStatus = "non-success transport status"
	ReasonSuccessFlag     = "success flag not true"
	ReasonMissingFields   = "transaction id or pix code missing"
)

// GatewayError carries the gateway answer so callers can echo it for
// diagnostics. Kind is ErrGatewayTransport or ErrGatewayContract.
type GatewayError struct {
	Kind       error
	Reason     string
	HTTPStatus int
	Body       map[string]any
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%v: %s (status=%d)", e.Kind, e.Reason, e.HTTPStatus)
}

func (e *GatewayError) Unwrap() error {
	return e.Kind
}

// StatusAttempt is the outcome of one status candidate.
type StatusAttempt struct {
	Candidate  string
	OK         bool
	HTTPStatus int
	Body       map[string]any
}

// StatusUnavailableError reports that no candidate answered; Last is the
// final candidate attempted.
type StatusUnavailableError struct {
	TransactionID string
	Attempts      int
	Last          StatusAttempt
}

func (e *StatusUnavailableError) Error() string {
	return fmt.Sprintf("%v: transaction_id=%s attempts=%d last_status=%d", ErrStatusUnavailable, e.TransactionID, e.Attempts, e.Last.HTTPStatus)
}

func (e *StatusUnavailableError) Unwrap() error {
	return ErrStatusUnavailable
}
