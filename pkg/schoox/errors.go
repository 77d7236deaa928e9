package schoox

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidCredentials = errors.New("schoox: academy id and api key are required")
	ErrInvalidBaseURL     = errors.New("schoox: invalid base url")
	ErrMissingPathParam   = errors.New("schoox: missing path parameter")
	ErrEncodeParams       = errors.New("schoox: encode query parameters")
	ErrEncodeBody         = errors.New("schoox: encode request body")
	ErrRequest            = errors.New("schoox: request failed")
	ErrUnexpectedStatus   = errors.New("schoox: status was not OK")
	ErrDecode             = errors.New("schoox: decode response body")
)

// maxErrorBody caps how much of a failed response body is quoted in Error().
const maxErrorBody = 256

// APIError is returned when the API answers with a non-success status.
type APIError struct {
	Method     string
	Endpoint   string
	StatusCode int
	RequestID  string
	Body       []byte
}

func (e *APIError) Error() string {
	body := string(e.Body)
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	return fmt.Sprintf("schoox: %s %s: status was not OK: %d %s: %s",
		e.Method, e.Endpoint, e.StatusCode, http.StatusText(e.StatusCode), body)
}

// Is makes errors.Is(err, ErrUnexpectedStatus) true for every APIError.
func (e *APIError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// StatusCode extracts the HTTP status from an APIError anywhere in err's
// chain. It returns 0 when err carries no status.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
