package translator

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type geminiCompleter struct {
	apiKey string
	model  string
}

// NewGemini creates a Completer backed by the Gemini API.
func NewGemini(apiKey, model string) Completer {
	return &geminiCompleter{
		apiKey: apiKey,
		model:  model,
	}
}

func (c *geminiCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	// Gemini has no separate system role here; prepend the instruction
	prompt := system + "\n\n" + user

	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text, nil
}
