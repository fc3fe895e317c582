package internal

import "fmt"

// NetworkError is a transport-level failure: connection refused, DNS
// failure, or the request timeout. The underlying cause is available via
// Unwrap.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "Error making HTTP request: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusError is a completed HTTP exchange that answered with a non-2xx
// status. The response body is carried along for diagnostics.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %s - %s", e.Status, string(e.Body))
}
