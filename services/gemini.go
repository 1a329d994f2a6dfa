package services

import (
	"context"
	"strings"

	apperrors "nexustech/errors"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TextGenerator completes a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String(), nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// AIService is the text-completion passthrough.
type AIService struct {
	gen TextGenerator
}

func NewAIService(gen TextGenerator) *AIService {
	return &AIService{gen: gen}
}

func (s *AIService) Ask(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Prompt is required", apperrors.ErrMissingRequired)
	}
	if s.gen == nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeUnavailable, "AI assistant is not configured", nil)
	}

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeUpstream, "AI request failed", err)
	}
	return text, nil
}
