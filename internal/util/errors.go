// internal/util/errors.go
// Definisi error aplikasi standar yang dikirim ke klien sebagai JSON

package util

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string `json:"code"` // e.g., "bad_input", "not_found", "internal"
	Message string `json:"message"`
}

func (e AppError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Status maps the error code to an HTTP status.
func (e AppError) Status() int {
	switch e.Code {
	case "bad_input":
		return http.StatusBadRequest
	case "not_found":
		return http.StatusNotFound
	case "conflict":
		return http.StatusConflict
	case "rate_limited":
		return http.StatusTooManyRequests
	case "upstream":
		return http.StatusBadGateway
	case "unavailable":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func BadInput(msg string) AppError    { return AppError{Code: "bad_input", Message: msg} }
func NotFound(msg string) AppError    { return AppError{Code: "not_found", Message: msg} }
func Conflict(msg string) AppError    { return AppError{Code: "conflict", Message: msg} }
func RateLimited(msg string) AppError { return AppError{Code: "rate_limited", Message: msg} }
func Upstream(msg string) AppError    { return AppError{Code: "upstream", Message: msg} }
func Unavailable(msg string) AppError { return AppError{Code: "unavailable", Message: msg} }
func Internal(msg string) AppError    { return AppError{Code: "internal", Message: msg} }

// AsAppError unwraps err into an AppError, falling back to Internal(fallback).
func AsAppError(err error, fallback string) AppError {
	var ae AppError
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(fallback)
}
