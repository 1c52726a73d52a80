package server

// MessageType represents a WebSocket message type with type safety
type MessageType string

// Server to client message types
const (
	MessageTypeState MessageType = "state"
	MessageTypeError MessageType = "error"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}

// ActionAdvisor toggles the advisor pane; every other action goes to the
// session.
const ActionAdvisor = "advisor"
