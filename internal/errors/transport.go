// ABOUTME: Errors for requests that never produced a usable response
// ABOUTME: Wraps the underlying network or decoding failure

package errors

import "fmt"

type TransportError struct {
	Op  string // "request", "read" or "decode"
	URL string
	Err error
}

func NewTransportError(op, url string, err error) *TransportError {
	return &TransportError{Op: op, URL: url, Err: err}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrUnreachable
}

func (e *TransportError) SuggestedActions() []string {
	actions := []string{
		"Check your network connection",
		fmt.Sprintf("Verify the endpoint is reachable: curl -X POST %s", e.URL),
	}
	if e.Op == "decode" {
		actions = append(actions, "The server did not return JSON; check endpoint.url in the config")
	}
	return actions
}
