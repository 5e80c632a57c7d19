package scholarseeker

type MessageType string

const (
	MessageTypePartialText MessageType = "partial-text"
	MessageTypeFinalText   MessageType = "final-text"
	MessageTypeEnd         MessageType = "end"
	MessageTypeError       MessageType = "error"
)

// Message represents a communication unit from the Session to the caller/UI.
type Message struct {
	Content string
	Type    MessageType

	// Citations is the source list of a completed answer. Only final-text
	// messages for answers that produced sources populate it.
	Citations []string
}
