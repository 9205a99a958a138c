package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code
	Message string
}

func (e *APIError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func Invalid(msg string) *APIError  { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func NotFound(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }
func Conflict(msg string) *APIError { return &APIError{Code: CodeConflict, Message: msg} }
func Internal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

// Status maps err to the HTTP status the handlers respond with.
// Anything unclassified is a 500.
func Status(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return http.StatusBadRequest
		case CodeNotFound:
			return http.StatusNotFound
		case CodeConflict:
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}

// Response is the error body every endpoint returns.
type Response struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Body renders err for the client. Classified errors carry their own message;
// anything else keeps the endpoint-supplied fallback and echoes the
// underlying error in details.
func Body(err error, fallback string) Response {
	var api *APIError
	if errors.As(err, &api) {
		return Response{Error: api.Message}
	}
	return Response{Error: fallback, Details: err.Error()}
}
