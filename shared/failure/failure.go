package failure

import (
	"errors"
	"net/http"
)

// Machine readable error codes carried in the response envelope.
const (
	CodeDataMissing         = "DATA_MISSING"
	CodeInvalidData         = "INVALID_DATA"
	CodeNotFound            = "NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeCannotBookPast      = "CANNOT_BOOK_PAST"
	CodeDurationInvalid     = "DURATION_INVALID"
	CodeOutsideWorkingHours = "OUTSIDE_WORKING_HOURS"
	CodeConflict            = "CONFLICT"
	CodeQuotaExceeded       = "QUOTA_EXCEEDED"
	CodeStorageError        = "STORAGE_ERROR"
	CodeUnauthenticated     = "UNAUTHENTICATED"
	CodeInternalError       = "INTERNAL_ERROR"
	CodeTooManyRequests     = "TOO_MANY_REQUESTS"
)

var statusByCode = map[string]int{
	CodeDataMissing:         http.StatusBadRequest,
	CodeInvalidData:         http.StatusBadRequest,
	CodeNotFound:            http.StatusNotFound,
	CodeUnauthorized:        http.StatusForbidden,
	CodeForbidden:           http.StatusForbidden,
	CodeCannotBookPast:      http.StatusBadRequest,
	CodeDurationInvalid:     http.StatusBadRequest,
	CodeOutsideWorkingHours: http.StatusBadRequest,
	CodeConflict:            http.StatusConflict,
	CodeQuotaExceeded:       http.StatusBadRequest,
	CodeStorageError:        http.StatusInternalServerError,
	CodeUnauthenticated:     http.StatusUnauthorized,
	CodeInternalError:       http.StatusInternalServerError,
	CodeTooManyRequests:     http.StatusTooManyRequests,
}

// Failure is a typed error carrying an HTTP status and a stable error code.
type Failure struct {
	Code      int    `json:"code"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	cause     error
}

var ForbiddenError = New(CodeForbidden, "You don't have the required permissions")
var TooManyRequests = New(CodeTooManyRequests, "request limit exceeded")

// New builds a Failure whose HTTP status is derived from errorCode.
func New(errorCode, message string) *Failure {
	code, ok := statusByCode[errorCode]
	if !ok {
		code = http.StatusInternalServerError
	}

	return &Failure{
		Code:      code,
		ErrorCode: errorCode,
		Message:   message,
	}
}

// Error returns the human readable message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// StatusOf returns the HTTP status bound to an error code.
func StatusOf(errorCode string) int {
	if code, ok := statusByCode[errorCode]; ok {
		return code
	}

	return http.StatusInternalServerError
}

func DataMissing(msg string) error {
	return New(CodeDataMissing, msg)
}

func InvalidData(msg string) error {
	return New(CodeInvalidData, msg)
}

// NotFound returns a new Failure for an entity that does not exist.
func NotFound(msg string) error {
	return New(CodeNotFound, msg)
}

// Unauthorized is returned when the acting user does not own the target resource.
func Unauthorized(msg string) error {
	return New(CodeUnauthorized, msg)
}

func Forbidden(msg string) error {
	return New(CodeForbidden, msg)
}

func CannotBookPast(msg string) error {
	return New(CodeCannotBookPast, msg)
}

func DurationInvalid(msg string) error {
	return New(CodeDurationInvalid, msg)
}

func OutsideWorkingHours(msg string) error {
	return New(CodeOutsideWorkingHours, msg)
}

// Conflict returns a new Failure for overlapping bookings.
func Conflict(msg string) error {
	return New(CodeConflict, msg)
}

func QuotaExceeded(msg string) error {
	return New(CodeQuotaExceeded, msg)
}

// Unauthenticated returns a new Failure for requests without a valid session.
func Unauthenticated(msg string) error {
	return New(CodeUnauthenticated, msg)
}

// Storage wraps a persistence error. The cause is kept for logs and traces
// but the message exposed to callers stays generic.
func Storage(err error) error {
	if err == nil {
		return nil
	}

	if f := As(err); f != nil {
		return f
	}

	fail := New(CodeStorageError, "storage is temporarily unavailable, please retry")
	fail.cause = err

	return fail
}

// InternalError wraps an unexpected error without exposing its message.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	fail := New(CodeInternalError, "internal server error")
	fail.cause = err

	return fail
}

// As returns the Failure in err's chain, or nil.
func As(err error) *Failure {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail
	}

	return nil
}

// GetCode returns the HTTP status of an error interface.
func GetCode(err error) int {
	if fail := As(err); fail != nil {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetErrorCode returns the machine readable code of an error interface.
func GetErrorCode(err error) string {
	if fail := As(err); fail != nil {
		return fail.ErrorCode
	}

	return CodeInternalError
}

// Is reports whether err carries the given error code.
func Is(err error, errorCode string) bool {
	return GetErrorCode(err) == errorCode
}
