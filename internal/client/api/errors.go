package api

import (
	"encoding/json"
	"fmt"
)

// StatusError is a non-2xx response from the backend, carrying the detail
// message the UI surfaces verbatim when present.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("Error %d", e.StatusCode)
}

// newStatusError parses the response body for a detail field; if the body is
// not JSON or the detail is not a plain string, the message is synthesized
// from the status code.
func newStatusError(status int, body []byte) *StatusError {
	var payload struct {
		Detail string `json:"detail"`
	}
	if len(body) > 0 {
		_ = json.Unmarshal(body, &payload)
	}
	return &StatusError{StatusCode: status, Detail: payload.Detail}
}
