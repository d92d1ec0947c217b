// Package llm provides the design review consultant: it forwards a
// step's numeric results to a language model and returns its narrative
// feedback. This is a boundary call; network and auth failures propagate
// to the caller and nothing is retried here.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jinxindev/simplybeam/internal/step"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Consultant reviews design step results.
type Consultant struct {
	client *genai.Client
	model  string
}

// NewConsultant creates a consultant authenticated with the given API key.
func NewConsultant(ctx context.Context, apiKey string) (*Consultant, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &Consultant{client: client, model: DefaultModel}, nil
}

// WithModel overrides the model name.
func (c *Consultant) WithModel(model string) *Consultant {
	c.model = model
	return c
}

// Close releases the underlying client.
func (c *Consultant) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// ReviewSizing asks the model for feedback on a preliminary sizing
// result. The result is serialized to JSON verbatim so the model sees
// exactly what was computed.
func (c *Consultant) ReviewSizing(ctx context.Context, results step.Result) (string, error) {
	prompt, err := BuildSizingPrompt(results)
	if err != nil {
		return "", err
	}
	return c.generate(ctx, prompt)
}

func (c *Consultant) generate(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.2)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate feedback: %w", err)
	}

	return extractText(resp)
}

// BuildSizingPrompt renders the review prompt for a sizing result.
func BuildSizingPrompt(results step.Result) (string, error) {
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize results: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("You are a senior structural engineer reviewing a preliminary design ")
	sb.WriteString("for a simply supported reinforced concrete beam sized per ACI 318-19.\n\n")
	sb.WriteString("The calculation results are below as JSON. Comment briefly on whether ")
	sb.WriteString("the proposed dimensions are reasonable, note anything a designer should ")
	sb.WriteString("watch for in the next design steps, and keep the response under 250 words.\n\n")
	sb.Write(payload)
	sb.WriteString("\n")
	return sb.String(), nil
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
