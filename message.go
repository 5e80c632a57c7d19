package scholarseeker

import (
	"github.com/google/uuid"
	"github.com/openai/openai-go"
)

// Role identifies who contributed a turn to the conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one turn in the conversation history.
type ChatMessage struct {
	ID      string
	Role    Role
	Content string
}

func NewUserMessage(content string) ChatMessage {
	return ChatMessage{ID: uuid.NewString(), Role: RoleUser, Content: content}
}

func NewAssistantMessage(content string) ChatMessage {
	return ChatMessage{ID: uuid.NewString(), Role: RoleAssistant, Content: content}
}

// toParam converts a history turn into the wire message the completions
// API expects.
func (m ChatMessage) toParam() openai.ChatCompletionMessageParamUnion {
	switch m.Role {
	case RoleSystem:
		return openai.SystemMessage(m.Content)
	case RoleAssistant:
		return openai.AssistantMessage(m.Content)
	default:
		return openai.UserMessage(m.Content)
	}
}

// MessageList holds an ordered collection of ChatMessage to preserve the history.
type MessageList struct {
	Messages []ChatMessage
}

func NewMessageList() *MessageList {
	return &MessageList{
		Messages: []ChatMessage{},
	}
}

func (ml *MessageList) Len() int {
	return len(ml.Messages)
}

// Add appends one or more new messages to the MessageList in a FIFO order.
func (ml *MessageList) Add(msgs ...ChatMessage) {
	ml.Messages = append(ml.Messages, msgs...)
}

func (ml *MessageList) All() []ChatMessage {
	return ml.Messages
}

func (ml *MessageList) Clone() *MessageList {
	return &MessageList{
		Messages: append([]ChatMessage{}, ml.Messages...),
	}
}

func (ml *MessageList) Clear() {
	ml.Messages = []ChatMessage{}
}

// Params builds the request message sequence: the fixed system prompt
// first, then every history turn in order. The system prompt is never
// stored in the history itself, so the first payload element can never be
// user-supplied.
func (ml *MessageList) Params(systemPrompt string) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(ml.Messages)+1)
	params = append(params, openai.SystemMessage(systemPrompt))
	for _, m := range ml.Messages {
		params = append(params, m.toParam())
	}
	return params
}
