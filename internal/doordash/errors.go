package doordash

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// FieldError describes a single rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode  int          `json:"-"`
	Code        string       `json:"code"`
	Message     string       `json:"message"`
	FieldErrors []FieldError `json:"field_errors,omitempty"`
}

// Error returns the message reported by the API.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("request failed with status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func decodeAPIError(status int, raw []byte) error {
	e := &APIError{StatusCode: status}
	if err := json.Unmarshal(raw, e); err != nil {
		// partial decodes are discarded; Error falls back to the status line
		return &APIError{StatusCode: status}
	}
	return e
}
