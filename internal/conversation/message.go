// ABOUTME: Transcript entries for the conversation (user, assistant, error roles)
// ABOUTME: Messages are immutable values appended in display order
package conversation

type Role int

const (
	RoleUser Role = iota
	RoleAssistant
	RoleError
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAssistant:
		return "assistant"
	case RoleError:
		return "error"
	default:
		return "unknown"
	}
}

func (r Role) Icon() string {
	switch r {
	case RoleUser:
		return "👤"
	case RoleAssistant:
		return "🤖"
	case RoleError:
		return "!"
	default:
		return "❓"
	}
}

type Message struct {
	Role Role
	Text string
}
