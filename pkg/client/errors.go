package client

import (
	"fmt"
	"sort"
	"strings"
)

// The server reports failures in one of two shapes: field-keyed validation
// messages or a single message string. Both are resolved once, at the API
// boundary, into *APIError; transport and decoding failures get their own
// types so callers can tell "server said no" from "never got an answer".

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
	// Fields holds field-keyed validation messages (422 responses).
	Fields map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// JoinedMessage flattens field errors into one human-readable string for
// display; falls back to the top-level message.
func (e *APIError) JoinedMessage() string {
	if len(e.Fields) == 0 {
		return e.Error()
	}
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], ", "))
	}
	return strings.Join(parts, "; ")
}

// NetworkError means the transport failed before a response was obtained.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "failed to connect to server: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError means a response body could not be parsed as the expected
// structure.
type DecodeError struct {
	Status int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid response from server (status %d): %v", e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
