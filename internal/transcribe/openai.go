package transcribe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"go.uber.org/zap"
)

const apiKeyEnv = "OPENAI_API_KEY"

// MissingKeyWarning is surfaced in logs and the UI when no API credential is
// present. It does not block interaction; transcription calls fail naturally.
const MissingKeyWarning = "OPENAI_API_KEY is not set. Set it in your environment before transcribing."

// OpenAIEngine sends audio bytes to the hosted Whisper transcription API.
// The whole payload goes in one synchronous call; there is no chunking or
// retry.
type OpenAIEngine struct {
	api    openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAIEngine(model string, logger *zap.Logger) *OpenAIEngine {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenAIEngine{
		api:    openai.NewClient(),
		model:  model,
		logger: logger,
	}
}

func (e *OpenAIEngine) Transcribe(ctx context.Context, req Request) (string, error) {
	if len(req.Audio) == 0 {
		return "", errors.New("audio payload is empty")
	}

	filename := strings.TrimSpace(req.Filename)
	if filename == "" {
		filename = "audio.m4a"
	}

	e.logger.Info("transcribing audio",
		zap.String("model", e.model),
		zap.String("filename", filename),
		zap.Int("bytes", len(req.Audio)))
	started := time.Now()

	resp, err := e.api.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:           openai.File(bytes.NewReader(req.Audio), filename, req.MIME),
		Model:          openai.AudioModel(e.model),
		ResponseFormat: openai.AudioResponseFormatJSON,
	})
	if err != nil {
		e.logger.Warn("transcription failed", zap.Duration("elapsed", time.Since(started)), zap.Error(err))
		return "", fmt.Errorf("transcription request: %w", err)
	}
	if resp == nil {
		return "", errors.New("transcription API returned no response")
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", errors.New("transcription response is empty")
	}

	e.logger.Info("transcription finished", zap.Duration("elapsed", time.Since(started)))
	return text, nil
}

// HasAPIKey reports whether a transcription credential is present in the
// environment.
func HasAPIKey() bool {
	return strings.TrimSpace(os.Getenv(apiKeyEnv)) != ""
}
