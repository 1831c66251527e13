package client

import "fmt"

// NetworkError is a transport-level failure (DNS, connect, reset).
// It carries the target host so the failure is diagnosable.
type NetworkError struct {
	Host string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cannot connect to server: %v (is the backend running at %s?)", e.Err, e.Host)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError means the server answered with something that is not JSON.
type ProtocolError struct {
	Status int
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("server returned invalid response (status %d)", e.Status)
}

// APIError is a structured backend rejection. Status 401 additionally
// forces session teardown before the error is returned.
type APIError struct {
	Message string
	Status  int
}

func (e *APIError) Error() string { return e.Message }
