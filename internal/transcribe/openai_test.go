package transcribe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewOpenAIEngineDefaultsModel(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultModel, NewOpenAIEngine("", nil).model)
	require.Equal(t, DefaultModel, NewOpenAIEngine("   ", nil).model)
	require.Equal(t, "gpt-4o-transcribe", NewOpenAIEngine("gpt-4o-transcribe", nil).model)
}

func TestTranscribeRejectsEmptyAudio(t *testing.T) {
	t.Parallel()

	engine := NewOpenAIEngine("", nil)
	_, err := engine.Transcribe(context.Background(), Request{})
	require.Error(t, err)
}

func TestHasAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	require.False(t, HasAPIKey())

	t.Setenv("OPENAI_API_KEY", "  ")
	require.False(t, HasAPIKey())

	t.Setenv("OPENAI_API_KEY", "sk-test")
	require.True(t, HasAPIKey())
}
