package schoox

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is a successful API answer. Body is the raw JSON payload; the
// library does not model Schoox entities.
type Response struct {
	StatusCode int
	Header     http.Header
	RequestID  string
	Body       json.RawMessage
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
