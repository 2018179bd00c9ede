// Package apierror defines the discriminated error type returned by the
// recommendation API client. Every remote failure is classified into exactly
// one Kind, so callers can switch on the kind instead of matching an
// exception hierarchy.
package apierror

import (
	"errors"
	"fmt"
)

// Kind discriminates the error taxonomy.
type Kind int

const (
	// KindAuthError - authentication cannot be performed (401, code 21).
	KindAuthError Kind = iota + 1
	// KindJwtTokenExpired - the bearer token has expired (401, code 22). This
	// is the only kind ever recovered locally, via refresh-and-retry.
	KindJwtTokenExpired
	// KindRefreshTokenExpired - the refresh token has expired (401, code 28).
	KindRefreshTokenExpired
	// KindWrongData - the submitted data is invalid (400, code 40).
	KindWrongData
	// KindDuplicated - the resource already exists (400, code 42).
	KindDuplicated
	// KindForbidden - not enough permissions (403, code 50).
	KindForbidden
	// KindNotFound - the resource does not exist (404, code 60).
	KindNotFound
	// KindMethodNotAllowed - HTTP method not allowed (405, code 70).
	KindMethodNotAllowed
	// KindTooManyRequests - request rate exceeds the subscription (429).
	KindTooManyRequests
	// KindServiceUnavailable - the service is temporarily unavailable (503).
	KindServiceUnavailable
	// KindServerError - any other non-success response.
	KindServerError
	// KindLocalPrecondition - the call was rejected locally, before any
	// network traffic (e.g. no active session).
	KindLocalPrecondition
	// KindTransport - a connectivity or timeout failure below HTTP.
	KindTransport
	// KindCancelled - the caller's context was cancelled.
	KindCancelled
)

// String returns the kind name as used in error messages.
func (k Kind) String() string {
	switch k {
	case KindAuthError:
		return "auth error"
	case KindJwtTokenExpired:
		return "jwt token expired"
	case KindRefreshTokenExpired:
		return "refresh token expired"
	case KindWrongData:
		return "wrong data"
	case KindDuplicated:
		return "duplicated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindMethodNotAllowed:
		return "method not allowed"
	case KindTooManyRequests:
		return "too many requests"
	case KindServiceUnavailable:
		return "service unavailable"
	case KindServerError:
		return "server error"
	case KindLocalPrecondition:
		return "local precondition failed"
	case KindTransport:
		return "transport error"
	case KindCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Local precondition sentinels. They are surfaced wrapped in an *Error of
// KindLocalPrecondition so both errors.Is and kind matching work.
var (
	ErrNoActiveSession = errors.New(
		"no active session: execute one of the login methods first")
	ErrNoCurrentDatabase = errors.New(
		"no current database: execute a login method that selects a database")
	ErrClientClosed = errors.New("client is closed")
)

// Error is the single error value surfaced for any failed API call.
// It is immutable after construction; enrichment helpers return copies.
type Error struct {
	// Kind discriminates the taxonomy.
	Kind Kind
	// HTTPStatus is the HTTP status code of the response, 0 for local kinds.
	HTTPStatus int
	// ErrorCode is the server-supplied numeric code, nil when the error body
	// was absent or unparseable.
	ErrorCode *int
	// ErrorName is the server-supplied symbolic name (e.g.
	// "INCORRECT_PASSWORD").
	ErrorName string
	// Message is the server-supplied human readable message.
	Message string
	// RetryAfter is the number of seconds after which the request may be
	// retried, when the server provided the hint.
	RetryAfter *int
	// Extra holds any remaining server-supplied error data, stringified.
	Extra map[string]string
	// LastProcessedIndex is set on failures of bulk operations: the index of
	// the last element that was sent successfully. Resume from the next one.
	LastProcessedIndex *int

	cause error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("api: %s (http %d", e.Kind, e.HTTPStatus)
	if e.ErrorCode != nil {
		msg += fmt.Sprintf(", code %d", *e.ErrorCode)
	}
	msg += ")"
	if e.ErrorName != "" {
		msg += " " + e.ErrorName
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause (transport errors, context errors,
// local precondition sentinels) to errors.Is.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithLastProcessedIndex returns a copy of the error enriched with the bulk
// resumption index.
func (e *Error) WithLastProcessedIndex(index int) *Error {
	clone := *e
	clone.LastProcessedIndex = &index
	return &clone
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// LocalPrecondition wraps a precondition sentinel into a typed error. No
// network call was attempted.
func LocalPrecondition(sentinel error) *Error {
	return &Error{
		Kind:    KindLocalPrecondition,
		Message: sentinel.Error(),
		cause:   sentinel,
	}
}

// Transport wraps a connectivity or timeout failure.
func Transport(cause error) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: cause.Error(),
		cause:   cause,
	}
}

// Cancelled wraps a context cancellation or deadline error.
func Cancelled(cause error) *Error {
	return &Error{
		Kind:    KindCancelled,
		Message: cause.Error(),
		cause:   cause,
	}
}
