package server

import "net/http"

// Kind classifies a request failure. Handlers and tests branch on the
// kind, never on the message text.
type Kind int

const (
	// KindMissingFields is returned when any required field is absent,
	// null, or empty after trimming. A single generic failure covers
	// all missing fields.
	KindMissingFields Kind = iota

	// KindInvalidInput covers format, range, and cross-field failures
	// on fields that are present.
	KindInvalidInput

	// KindInsufficientFunds is the funded-transfer balance check failure.
	KindInsufficientFunds

	// KindTokenError is a token-program instruction encoding rejection.
	KindTokenError

	// KindTransactionFailed covers broadcast/confirmation failures.
	KindTransactionFailed

	// KindClientError is an opaque ledger-client transport failure.
	KindClientError

	// KindInternal covers unexpected server-side failures.
	KindInternal
)

// Error is a tagged request failure with an HTTP status mapping.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingFields:
		return "Missing required fields"
	case KindInvalidInput:
		return "Invalid input: " + e.Detail
	case KindInsufficientFunds:
		return "Insufficient funds"
	case KindTokenError:
		return "Token error: " + e.Detail
	case KindTransactionFailed:
		return "Transaction failed: " + e.Detail
	case KindClientError:
		return "Client error: " + e.Detail
	default:
		return "Internal error: " + e.Detail
	}
}

// HTTPStatus maps the failure kind to a response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindClientError:
		return http.StatusBadGateway
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func errMissingFields() *Error {
	return &Error{Kind: KindMissingFields}
}

func errInvalidInput(detail string) *Error {
	return &Error{Kind: KindInvalidInput, Detail: detail}
}

func errInsufficientFunds() *Error {
	return &Error{Kind: KindInsufficientFunds}
}

func errTokenError(detail string) *Error {
	return &Error{Kind: KindTokenError, Detail: detail}
}

func errTransactionFailed(detail string) *Error {
	return &Error{Kind: KindTransactionFailed, Detail: detail}
}

func errClientError(err error) *Error {
	return &Error{Kind: KindClientError, Detail: err.Error()}
}
