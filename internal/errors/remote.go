// ABOUTME: Errors for requests the server answered with a non-success status
// ABOUTME: Carries the status code and the server-provided message when present

package errors

import "fmt"

type RemoteError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func NewRemoteError(statusCode int, endpoint, message string) *RemoteError {
	return &RemoteError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d at %s", e.StatusCode, e.Endpoint)
	}
	return fmt.Sprintf("server returned %d at %s: %s", e.StatusCode, e.Endpoint, e.Message)
}

func (e *RemoteError) Is(target error) bool {
	if target == ErrRemoteRejected {
		return true
	}
	_, ok := target.(*RemoteError)
	return ok
}

func (e *RemoteError) SuggestedActions() []string {
	if e.StatusCode >= 500 {
		return []string{
			"The service failed while answering; try the question again later",
			fmt.Sprintf("Check the service status at %s", e.Endpoint),
		}
	}
	return []string{
		"Rephrase the question and submit it again",
		"Check that endpoint.url points at the ask endpoint",
	}
}
