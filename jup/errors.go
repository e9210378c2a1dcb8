package jup

import "fmt"

// bodyReadPlaceholder is returned as the ProtocolError body when the error
// response body itself could not be read.
const bodyReadPlaceholder = "unable to read error response body"

// TransportError means the HTTP call never completed: DNS failure, refused
// connection, timeout. The underlying error is preserved for inspection.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError means the server answered with a non-2xx status. Body holds
// the raw response text so callers can surface the server's own diagnostic.
type ProtocolError struct {
	StatusCode int
	Body       string
}

func (e *ProtocolError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Body)
}

// DecodingError means a 2xx response body could not be parsed into the
// expected structure.
type DecodingError struct {
	Msg string
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("failed to decode response: %s", e.Msg)
}

// ConfigurationError means caller-supplied values could not be turned into a
// valid HTTP request before anything was sent.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid request configuration: %s", e.Msg)
}
