package transcriber

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"github.com/ktnakamura/minutes-flow/internal/config"
	"github.com/ktnakamura/minutes-flow/internal/logger"
	"github.com/ktnakamura/minutes-flow/pkg/apperrors"
)

// speechAPI is the slice of the OpenAI client the transcriber uses.
type speechAPI interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

type implTranscriber struct {
	api          speechAPI
	model        string
	language     string
	prompt       string
	replacements []replacement
	logger       logger.Logger
}

// New creates a Transcriber backed by the OpenAI Whisper API. A missing
// credential is a Configuration error, detected here rather than on the
// first request.
func New(cfg *config.Config, log logger.Logger) (Transcriber, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, apperrors.New(apperrors.CodeConfiguration, "OPENAI_API_KEY is not set")
	}

	return &implTranscriber{
		api:          openai.NewClient(cfg.OpenAIAPIKey),
		model:        cfg.Whisper.Model,
		language:     cfg.Whisper.Language,
		prompt:       cfg.Whisper.Prompt,
		replacements: mergeReplacements(cfg.Replacements),
		logger:       log,
	}, nil
}
