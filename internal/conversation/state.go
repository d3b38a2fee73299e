// ABOUTME: Conversation controller state and its pure transitions
// ABOUTME: Owns draft, transcript, busy and theme flags; returns requests as side effects
package conversation

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// KeyEnter is the key name SubmitOnEnter reacts to.
const KeyEnter = "Enter"

// KeyEvent is a key press as seen by the controller.
type KeyEvent struct {
	Key   string
	Shift bool
}

// State is the whole conversation. The zero value is a fresh session.
// Transitions never modify the receiver; they return the next State.
type State struct {
	draft      string
	transcript []Message
	busy       bool
	dark       bool
	pending    string
}

// New returns a fresh session with the given theme.
func New(dark bool) State {
	return State{dark: dark}
}

func (s State) Draft() string { return s.draft }
func (s State) Busy() bool    { return s.busy }
func (s State) Dark() bool    { return s.dark }
func (s State) Len() int      { return len(s.transcript) }

// Pending returns the id of the in-flight request, or "" when idle.
func (s State) Pending() string { return s.pending }

// Transcript returns a copy of the transcript in display order.
func (s State) Transcript() []Message {
	return slices.Clone(s.transcript)
}

// Last returns the most recent entry.
func (s State) Last() (Message, bool) {
	if len(s.transcript) == 0 {
		return Message{}, false
	}
	return s.transcript[len(s.transcript)-1], true
}

// LastAnswer returns the most recent assistant entry.
func (s State) LastAnswer() (string, bool) {
	for i := len(s.transcript) - 1; i >= 0; i-- {
		if s.transcript[i].Role == RoleAssistant {
			return s.transcript[i].Text, true
		}
	}
	return "", false
}

// DraftLines is the number of hard lines in the draft (at least 1). Soft wraps
// depend on the display width and are counted by the renderer.
func (s State) DraftLines() int {
	return strings.Count(s.draft, "\n") + 1
}

// CanSubmit reports whether Submit would be accepted.
func (s State) CanSubmit() bool {
	return !s.busy && strings.TrimSpace(s.draft) != ""
}

func (s State) UpdateDraft(text string) State {
	s.draft = text
	return s
}

// Submit appends the draft as a user entry, clears the draft and marks the
// session busy. The returned request must be run and its outcome passed to
// Resolve. A rejected submission returns the state unchanged and a nil request.
func (s State) Submit() (State, *Request) {
	if !s.CanSubmit() {
		return s, nil
	}

	req := &Request{ID: uuid.NewString(), Query: s.draft}

	s.transcript = s.appended(Message{Role: RoleUser, Text: s.draft})
	s.draft = ""
	s.busy = true
	s.pending = req.ID
	return s, req
}

// Resolve settles the pending request. Outcomes for any other id are ignored,
// so each accepted submission produces exactly one terminal entry.
func (s State) Resolve(id string, o Outcome) State {
	if !s.busy || id == "" || id != s.pending {
		return s
	}

	s.transcript = s.appended(entryFor(o))
	s.busy = false
	s.pending = ""
	return s
}

func (s State) ToggleTheme() State {
	s.dark = !s.dark
	return s
}

// SubmitOnEnter handles Enter without Shift: the event is consumed and Submit
// runs. Every other key is left to the caller and the state is unchanged.
func (s State) SubmitOnEnter(ev KeyEvent) (State, *Request, bool) {
	if ev.Key != KeyEnter || ev.Shift {
		return s, nil, false
	}
	next, req := s.Submit()
	return next, req, true
}

// appended returns a transcript with m added that shares no backing array
// with the receiver's.
func (s State) appended(m Message) []Message {
	return append(slices.Clip(s.transcript), m)
}
