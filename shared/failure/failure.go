package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// InternalMessage replaces the text of any 5xx error shown to a client.
const InternalMessage = "internal server error"

// Failure is an error carrying the HTTP status it should be answered with.
// Cause, when set, is kept for logs and errors.Is but never shown to clients.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

var (
	InvalidPageParam        = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
	InvalidLimitParam       = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}
)

func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.cause
}

func newFailure(code int, msg string, cause error) *Failure {
	return &Failure{Code: code, Message: msg, cause: cause}
}

// BadRequest turns a validation or parse error into a 400. Nil stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error(), err)
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg, nil)
}

func BadRequestf(format string, args ...any) error {
	return newFailure(http.StatusBadRequest, fmt.Sprintf(format, args...), nil)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg, nil)
}

// InternalError marks err as a 500. Nil stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusInternalServerError, err.Error(), err)
}

func Unimplemented(methodName string) error {
	return newFailure(http.StatusNotImplemented, methodName, nil)
}

// NotFound is returned when a row is missing or belongs to another lodge.
func NotFound(entityName string) error {
	return newFailure(http.StatusNotFound, entityName, nil)
}

// Conflict covers double bookings and duplicate catalog entries.
func Conflict(message string) error {
	return newFailure(http.StatusConflict, message, nil)
}

func Conflictf(format string, args ...any) error {
	return newFailure(http.StatusConflict, fmt.Sprintf(format, args...), nil)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg, nil)
}

// GetCode returns the status of the first Failure in err's chain, 500 otherwise.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// PublicMessage is the text safe to return to a client.
func PublicMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) && fail.Code < http.StatusInternalServerError {
		return fail.Message
	}

	return InternalMessage
}
