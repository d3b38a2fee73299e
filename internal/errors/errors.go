// ABOUTME: Typed errors for the ask endpoint with actionable hints
// ABOUTME: Sentinels allow errors.Is matching across wrapped transport failures

package errors

import "errors"

var (
	ErrRemoteRejected = errors.New("request rejected by server")
	ErrUnreachable    = errors.New("server unreachable")
)

// Actionable errors carry suggestions a user can act on.
type Actionable interface {
	error
	SuggestedActions() []string
}

// Actions returns the suggestions of the first Actionable error in err's chain.
func Actions(err error) []string {
	var a Actionable
	if errors.As(err, &a) {
		return a.SuggestedActions()
	}
	return nil
}
