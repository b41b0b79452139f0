package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generator produces a single text completion for a question under a system
// instruction.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, question string) (string, error)
}

// GeminiGenerator is the Generator backed by the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(client *genai.Client, model string) *GeminiGenerator {
	return &GeminiGenerator{
		client: client,
		model:  model,
	}
}

// Generate sends one user turn holding question and returns the text of the
// first candidate, or "" when the model produced no text.
func (g *GeminiGenerator) Generate(ctx context.Context, systemPrompt, question string) (string, error) {
	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: question},
			},
			Role: "user",
		},
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: SystemInstruction(systemPrompt),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini api call failed: %w", err)
	}
	if resp == nil {
		return "", nil
	}
	return resp.Text(), nil
}
