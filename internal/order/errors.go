package order

import (
	"errors"
	"net/http"

	"MiniOrders/pkg/kit"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBadRequest
	KindValidation
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrBadRequest    = errors.New("bad request")
	ErrValidation    = errors.New("validation failed")
	ErrInternal      = errors.New("internal error")
)

// FieldErrors maps a request field name to its rule violations.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Error is the failure type returned by the store and projected to HTTP by the router.
type Error struct {
	Kind   Kind
	Msg    string
	Fields FieldErrors
	Cause  error
}

func ErrNotFound() *Error {
	return &Error{Kind: KindNotFound}
}

func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Msg: msg}
}

func Validation(fields FieldErrors) *Error {
	return &Error{Kind: KindValidation, Fields: fields}
}

func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Cause: cause}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return "Order not found"
	case KindBadRequest:
		return "Invalid input: " + e.Msg
	case KindValidation:
		return "Validation failed"
	default:
		if e.Cause != nil {
			return "Internal server error: " + e.Cause.Error()
		}
		return "Internal server error"
	}
}

func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindNotFound:
		return target == ErrOrderNotFound
	case KindBadRequest:
		return target == ErrBadRequest
	case KindValidation:
		return target == ErrValidation
	default:
		return target == ErrInternal
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Body is the wire form of the error. Internal causes never leak to clients.
func (e *Error) Body() kit.ErrorResponse {
	switch e.Kind {
	case KindNotFound:
		return kit.ErrorResponse{Message: "Order not found"}
	case KindBadRequest:
		return kit.ErrorResponse{Message: "Invalid input: " + e.Msg}
	case KindValidation:
		return kit.ErrorResponse{Message: "Validation failed", Details: map[string][]string(e.Fields)}
	default:
		return kit.ErrorResponse{Message: "Internal server error"}
	}
}

// AsError classifies any error; anything that is not an *Error is Internal.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}
