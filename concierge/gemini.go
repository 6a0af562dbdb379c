package concierge

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"lounge_booking/constants"
	"lounge_booking/model"
)

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator returns nil when apiKey is empty so the concierge falls
// back to its maintenance text.
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiGenerator{client: client, model: modelName}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, history []model.ChatTurn, message string) (string, error) {
	if g == nil || g.client == nil {
		return "", ErrNotConfigured
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, BuildContents(history, message), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(constants.SYSTEM_INSTRUCTION, genai.RoleUser),
		Temperature:       genai.Ptr[float32](constants.CHAT_TEMPERATURE),
		MaxOutputTokens:   constants.CHAT_MAX_TOKENS,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

// BuildContents turns the prior turns plus the new message into model input.
func BuildContents(history []model.ChatTurn, message string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := genai.RoleUser
		if turn.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, genai.Role(role)))
	}
	return append(contents, genai.NewContentFromText(message, genai.RoleUser))
}
