package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// APIError is a non-2xx backend response. Message is extracted from the
// response body; Unwrap exposes the sentinel matching the status class, so
// errors.Is(err, ErrUnauthorized) works while the body message is kept.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.kind != nil {
		return e.kind.Error()
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// errorBody is the known error-response contract. The backend is not fully
// consistent, so the fields are tried in priority order.
type errorBody struct {
	Detail         string   `json:"detail"`
	Message        string   `json:"message"`
	Err            string   `json:"error"`
	NonFieldErrors []string `json:"non_field_errors"`
}

// messageFromBody extracts a human-readable message from an error response
// body. Returns "" when the body matches none of the known shapes.
func messageFromBody(data []byte) string {
	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	switch {
	case body.Detail != "":
		return body.Detail
	case body.Message != "":
		return body.Message
	case body.Err != "":
		return body.Err
	case len(body.NonFieldErrors) > 0:
		return body.NonFieldErrors[0]
	}
	return ""
}

// Message returns the backend-provided message carried by err, or fallback
// when there is none.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
