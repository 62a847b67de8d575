package summarizer

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"github.com/ktnakamura/minutes-flow/internal/config"
	"github.com/ktnakamura/minutes-flow/internal/logger"
	"github.com/ktnakamura/minutes-flow/pkg/apperrors"
)

// backend is one language-model provider: a single completion call.
type backend interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type implSummarizer struct {
	backend backend
	logger  logger.Logger
}

// New creates a Summarizer using the provider selected in config. Missing
// credentials are a Configuration error, surfaced at construction.
func New(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	var b backend
	switch cfg.Summarizer.Provider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, apperrors.New(apperrors.CodeConfiguration, "GEMINI_API_KEY is not set")
		}
		b = &geminiBackend{apiKey: cfg.GeminiAPIKey, model: cfg.Summarizer.GeminiModel}
	default:
		if cfg.OpenAIAPIKey == "" {
			return nil, apperrors.New(apperrors.CodeConfiguration, "OPENAI_API_KEY is not set")
		}
		b = &openaiBackend{api: openai.NewClient(cfg.OpenAIAPIKey), model: cfg.Summarizer.OpenAIModel}
	}

	return &implSummarizer{backend: b, logger: log}, nil
}
