package enka

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Common errors
var (
	// ErrRequestFailed indicates the request could not be submitted or its response could not be read
	ErrRequestFailed = errors.New("enka request failed")
	// ErrStatus indicates the API answered with a non-success status
	ErrStatus = errors.New("enka API returned an error status")
	// ErrInvalidJSON indicates the response body is not JSON at all
	ErrInvalidJSON = errors.New("invalid JSON response")
	// ErrDecode indicates the response body does not match the expected shape
	ErrDecode = errors.New("failed to decode response")
	// ErrUnknownVariant indicates a union value carries a tag no variant is registered for
	ErrUnknownVariant = errors.New("unknown variant")
)

// errorBodyPlaceholder replaces the body of a failed response that could not be read.
const errorBodyPlaceholder = "Failed to retrieve error body"

// IsSuccess reports whether the status code is in the 2xx range.
func IsSuccess(code int) bool {
	return code >= 200 && code < 300
}

// StatusMessage returns the human-readable meaning of a non-success status code.
func StatusMessage(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "Bad Request: Wrong UID format"
	case http.StatusNotFound:
		return "Not Found: Player does not exist (MHY server response)"
	case http.StatusFailedDependency:
		return "Failed Dependency: Game maintenance or broken after update"
	case http.StatusTooManyRequests:
		return "Too Many Requests: Rate-limited (by enka server or MHY server)"
	case http.StatusInternalServerError:
		return "Internal Server Error: General server issue"
	case http.StatusServiceUnavailable:
		return "Service Unavailable: Possible major failure on enka end"
	}
	if text := http.StatusText(code); text != "" {
		return text
	}
	return "Unknown Error"
}

// APIError represents a non-success HTTP response from enka.network
type APIError struct {
	StatusCode int
	Status     string // canonical "404 Not Found" form
	Message    string // see StatusMessage
	Body       string
}

func newAPIError(code int, body string) *APIError {
	status := fmt.Sprintf("%d", code)
	if text := http.StatusText(code); text != "" {
		status += " " + text
	}
	return &APIError{
		StatusCode: code,
		Status:     status,
		Message:    StatusMessage(code),
		Body:       body,
	}
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %s: %s", e.Status, e.Message)
}

// Is makes every APIError match ErrStatus.
func (e *APIError) Is(target error) bool {
	return target == ErrStatus
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsBadRequest checks if the identifier sent was malformed
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == http.StatusBadRequest
}

// IsRateLimited checks if the request was rejected by rate limiting.
// Nothing in this package retries; backing off is up to the caller.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsMaintenance checks if the game servers behind enka are unavailable
func (e *APIError) IsMaintenance() bool {
	return e.StatusCode == http.StatusFailedDependency
}

// DecodeError wraps a failure to turn a response body into the requested type.
type DecodeError struct {
	Target string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is matches ErrDecode, and ErrInvalidJSON when the body was not exactly
// one valid JSON document.
func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrDecode:
		return true
	case ErrInvalidJSON:
		var syntaxErr *json.SyntaxError
		return errors.As(e.Err, &syntaxErr) ||
			errors.Is(e.Err, errTrailingData) ||
			errors.Is(e.Err, io.EOF) ||
			errors.Is(e.Err, io.ErrUnexpectedEOF)
	}
	return false
}

// MissingFieldError is returned when an object leaves out a key its shape
// requires. Every field that is not optional in the payload is required.
type MissingFieldError struct {
	Shape string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Shape, e.Field)
}

// UnknownVariantError is returned when a union discriminator matches no variant.
type UnknownVariantError struct {
	Union string
	Tag   string // raw discriminator, empty when absent
}

func (e *UnknownVariantError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("unknown %s variant", e.Union)
	}
	return fmt.Sprintf("unknown %s variant: %s", e.Union, e.Tag)
}

func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}
