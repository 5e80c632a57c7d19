package scholarseeker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"

	"github.com/scholar-seeker/scholarseeker/prompts"
)

// QueryAssessment is the structured verdict of the topic guard.
type QueryAssessment struct {
	ScholarshipRelated bool `json:"scholarshipRelated" jsonschema_description:"True when the question is about scholarships"`
}

// AssessQuery asks the guard model whether a question is about
// scholarships, using a strict JSON schema so the verdict is machine
// readable. Callers are expected to fail open when the guard itself
// errors.
func AssessQuery(ctx context.Context, client CompletionClient, model, question string) (bool, error) {
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        openai.F("queryAssessment"),
		Description: openai.F("Whether the question is about scholarships"),
		Schema:      openai.F(GenerateSchema[QueryAssessment]()),
		Strict:      openai.Bool(true),
	}

	completion, err := client.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompts.GuardPrompt),
			openai.UserMessage(question),
		}),
		Model: openai.F(model),
		ResponseFormat: openai.F[openai.ChatCompletionNewParamsResponseFormatUnion](
			openai.ResponseFormatJSONSchemaParam{
				Type:       openai.F(openai.ResponseFormatJSONSchemaTypeJSONSchema),
				JSONSchema: openai.F(schemaParam),
			},
		),
	})
	if err != nil {
		return false, err
	}

	content, ok := ExtractMessageContent(completion)
	if !ok {
		return false, ErrMalformedResponse
	}

	var assessment QueryAssessment
	if err := json.Unmarshal([]byte(content), &assessment); err != nil {
		return false, fmt.Errorf("decoding query assessment: %w", err)
	}
	return assessment.ScholarshipRelated, nil
}
