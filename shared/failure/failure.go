package failure

import (
	"errors"
	"net/http"
	"strings"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Errors carries per-field messages for validation failures and is empty otherwise.
type Failure struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

var (
	InvalidIDParam     = &Failure{Code: http.StatusBadRequest, Message: "invalid id parameter"}
	InvalidRequestBody = &Failure{Code: http.StatusBadRequest, Message: "invalid request body"}
)

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unprocessable returns a new Failure carrying every validation message of a request.
func Unprocessable(messages []string) error {
	if len(messages) == 0 {
		return nil
	}

	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: strings.Join(messages, "; "),
		Errors:  messages,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(message string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetErrors returns the validation messages of an error, or nil when it carries none.
func GetErrors(err error) []string {
	var fail *Failure
	if errors.As(err, &fail) && len(fail.Errors) > 0 {
		return fail.Errors
	}

	return nil
}

// IsFailure reports whether err (or anything it wraps) is a Failure.
func IsFailure(err error) bool {
	var fail *Failure

	return errors.As(err, &fail)
}
