package llm

import (
	"context"
	"testing"

	"fitsync/fitsync-ai/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiRequiresAPIKey(t *testing.T) {
	g, err := NewGemini(context.Background(), config.GeminiConfig{Model: "gemini-1.5-flash"})
	require.Error(t, err)
	assert.Nil(t, g)
}

func TestNewGeminiKeepsModel(t *testing.T) {
	g, err := NewGemini(context.Background(), config.GeminiConfig{APIKey: "test-key", Model: "gemini-test"})
	require.NoError(t, err)
	assert.Equal(t, "gemini-test", g.model)
}
