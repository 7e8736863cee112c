package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompleter implements Completer using Google's Gemini models.
type GeminiCompleter struct {
	client *genai.Client
	name   string
}

// NewGeminiCompleter initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiCompleter(ctx context.Context, apiKey string) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	return &GeminiCompleter{
		client: client,
		name:   "gemini-2.0-flash",
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiCompleter) Close() {
	p.client.Close()
}

// Complete runs a single generation with the given sampling bounds. A fresh
// model handle is configured per call because temperature and token limits
// vary by caller (classification wants 0.1/10, chat wants 0.7/600).
func (p *GeminiCompleter) Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error) {
	model := p.client.GenerativeModel(p.name)
	model.SetTemperature(temperature)
	if maxTokens > 0 {
		model.SetMaxOutputTokens(int32(maxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}

	return strings.TrimSpace(out.String()), nil
}

// CleanJSONString strips markdown code fences the model sometimes wraps
// around JSON payloads despite instructions.
func CleanJSONString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
