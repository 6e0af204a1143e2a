// Package llm holds the Gemini text generation client used by the plan API.
package llm

import (
	"context"
	"errors"
	"fitsync/fitsync-ai/internal/config"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

var ErrEmptyResponse = errors.New("model returned no text")

// Gemini calls a Gemini model once per prompt. Failures are returned as is; the only
// deadline is the caller's context.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, cfg config.GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is not configured")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	log.Info().Str("model", cfg.Model).Msg("Gemini client ready")
	return &Gemini{client: client, model: cfg.Model}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
