// ABOUTME: Resolution variants of a transport call (answered, rejected, unreachable)
// ABOUTME: Defines the Transport contract the controller's requests are run against
package conversation

import "context"

// Fallback texts shown when the server gives no usable error message.
const (
	FallbackRejected    = "Something went wrong"
	FallbackUnreachable = "Failed to connect to the server"
)

// Outcome is one of Answered, Rejected or Unreachable.
type Outcome interface {
	isOutcome()
}

// Answered is a success-status response. Text is empty when the body had no answer.
type Answered struct {
	Text string
}

// Rejected is a non-success status. Message is empty when the body had no error field.
type Rejected struct {
	Status  int
	Message string
}

// Unreachable means no response was obtained.
type Unreachable struct {
	Err error
}

func (Answered) isOutcome()    {}
func (Rejected) isOutcome()    {}
func (Unreachable) isOutcome() {}

// Transport performs one request per submitted query.
type Transport interface {
	Ask(ctx context.Context, query string) Outcome
}

// Request is the side effect returned by an accepted submission.
type Request struct {
	ID    string
	Query string
}

// Run performs the request against t.
func (r Request) Run(ctx context.Context, t Transport) Outcome {
	return t.Ask(ctx, r.Query)
}

// entryFor maps an outcome to the transcript entry that settles a request.
func entryFor(o Outcome) Message {
	switch o := o.(type) {
	case Answered:
		return Message{Role: RoleAssistant, Text: o.Text}
	case Rejected:
		if o.Message == "" {
			return Message{Role: RoleError, Text: FallbackRejected}
		}
		return Message{Role: RoleError, Text: o.Message}
	default:
		return Message{Role: RoleError, Text: FallbackUnreachable}
	}
}
