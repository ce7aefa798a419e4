package bitget

import "fmt"

// TransportError represents a network failure or a non-2xx HTTP response.
type TransportError struct {
	StatusCode int    // 0 when the request never produced a response
	Message    string
	Body       []byte
	Err        error // underlying network error, if any
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("bitget transport error: %s", e.Message)
	}
	return fmt.Sprintf("bitget http error %d: %s", e.StatusCode, e.Message)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsRetryable returns true if the error should trigger a retry.
func (e *TransportError) IsRetryable() bool {
	return e.StatusCode == 0 || e.StatusCode >= 500 || e.StatusCode == 429
}

// APIError represents an application-level error code from the Bitget API.
// The exchange reports success as code "00000"; anything else is an error
// even when the HTTP status is 200.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bitget api error %s: %s", e.Code, e.Message)
}

// ParseError represents a response whose shape could not be interpreted.
type ParseError struct {
	What string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bitget parse error: %s: %v", e.What, e.Err)
	}
	return fmt.Sprintf("bitget parse error: %s", e.What)
}

func (e *ParseError) Unwrap() error { return e.Err }
