package scholarseeker

import (
	"context"
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"
)

// LLMConfig carries everything needed to reach the completion endpoint.
// The credential travels here explicitly; nothing in the package reads it
// from ambient state.
type LLMConfig struct {
	APIKey  string
	BaseURL string

	// Model answers scholarship questions.
	Model string

	// GuardModel, when set, classifies questions before the main model is
	// called. Empty disables the topic guard.
	GuardModel string
}

// LLM is a wrapper around the openai client pointed at a
// Perplexity-compatible endpoint. SDK-internal retries are disabled so the
// RetryPolicy in this package is the only retry layer.
type LLM struct {
	client *openai.Client
}

func (config *LLMConfig) NewLLMClient(extraOpts ...option.RequestOption) *LLM {
	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}
	opts = append(opts, extraOpts...)
	return &LLM{
		client: openai.NewClient(opts...),
	}
}

func (c *LLM) New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}

func (c *LLM) NewStreaming(ctx context.Context, params openai.ChatCompletionNewParams) *ssestream.Stream[openai.ChatCompletionChunk] {
	return c.client.Chat.Completions.NewStreaming(ctx, params)
}

// ExtractMessageContent pulls the assistant's text out of the response
// envelope. The second return value is false when the expected shape is
// missing, so callers can substitute an apology instead of halting the
// session.
func ExtractMessageContent(completion *openai.ChatCompletion) (string, bool) {
	if completion == nil || len(completion.Choices) == 0 {
		return "", false
	}
	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", false
	}
	return content, true
}

// ExtractCitations decodes the provider's top-level citations array. The
// field sits outside the OpenAI schema, so it is read from the extra
// fields the SDK preserved. Absent or undecodable citations yield nil.
func ExtractCitations(completion *openai.ChatCompletion) []string {
	if completion == nil {
		return nil
	}
	return decodeCitations(completion.JSON.ExtraFields["citations"].Raw())
}

// ExtractChunkCitations is the streaming counterpart of ExtractCitations.
func ExtractChunkCitations(chunk openai.ChatCompletionChunk) []string {
	return decodeCitations(chunk.JSON.ExtraFields["citations"].Raw())
}

func decodeCitations(raw string) []string {
	if raw == "" {
		return nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err != nil {
		return nil
	}
	return urls
}

func GenerateSchema[T any]() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return schema
}
