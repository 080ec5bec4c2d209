package sdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotStarted is returned by request helpers called before Start.
var ErrNotStarted = errors.New("sdk: session not started")

// APIError is a non-2xx answer from the platform.
type APIError struct {
	// Method and Path identify the failed request.
	Method string
	Path   string
	// StatusCode is the HTTP status.
	StatusCode int
	// Code is the platform error code (errorDetailsCode when present).
	Code int
	// Message is the human-readable summary (errorMsg).
	Message string
	// Details carries errorDetails, flattened to a string.
	Details string
}

// Error returns the platform message, falling back to the HTTP status text.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return fmt.Sprintf("%s %s failed (%d): %s", e.Method, e.Path, e.StatusCode, msg)
}

// errorBody is the platform's error envelope.
type errorBody struct {
	ErrorCode        int             `json:"errorCode"`
	ErrorMsg         string          `json:"errorMsg"`
	ErrorDetails     json.RawMessage `json:"errorDetails"`
	ErrorDetailsCode int             `json:"errorDetailsCode"`
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	apiErr := &APIError{Method: method, Path: path, StatusCode: status, Code: status}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}

	apiErr.Message = eb.ErrorMsg
	if eb.ErrorDetailsCode != 0 {
		apiErr.Code = eb.ErrorDetailsCode
	} else if eb.ErrorCode != 0 {
		apiErr.Code = eb.ErrorCode
	}
	if len(eb.ErrorDetails) > 0 && string(eb.ErrorDetails) != "null" {
		var details string
		if err := json.Unmarshal(eb.ErrorDetails, &details); err == nil {
			apiErr.Details = details
		} else {
			apiErr.Details = string(eb.ErrorDetails)
		}
	}
	return apiErr
}
