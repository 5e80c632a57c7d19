package scholarseeker

import (
	"testing"

	"github.com/openai/openai-go"
)

func TestParamsPrependsSystemPrompt(t *testing.T) {
	history := NewMessageList()
	history.Add(NewUserMessage("question"), NewAssistantMessage("answer"))

	params := history.Params("system instruction")
	if len(params) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(params))
	}
	if _, ok := params[0].(openai.ChatCompletionSystemMessageParam); !ok {
		t.Errorf("first payload element is %T, want system message", params[0])
	}
	if _, ok := params[1].(openai.ChatCompletionUserMessageParam); !ok {
		t.Errorf("second payload element is %T, want user message", params[1])
	}
	if _, ok := params[2].(openai.ChatCompletionAssistantMessageParam); !ok {
		t.Errorf("third payload element is %T, want assistant message", params[2])
	}
}

func TestMessageListCloneIsIndependent(t *testing.T) {
	original := NewMessageList()
	original.Add(NewUserMessage("question"))

	clone := original.Clone()
	clone.Add(NewAssistantMessage("answer"))

	if original.Len() != 1 {
		t.Errorf("clone mutated the original: len = %d", original.Len())
	}
	if clone.Len() != 2 {
		t.Errorf("clone len = %d, want 2", clone.Len())
	}
}

func TestNewMessagesCarryIDs(t *testing.T) {
	a := NewUserMessage("q")
	b := NewUserMessage("q")
	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct non-empty turn IDs, got %q and %q", a.ID, b.ID)
	}
}
