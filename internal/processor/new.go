package processor

import (
	"github.com/ktnakamura/minutes-flow/internal/config"
	"github.com/ktnakamura/minutes-flow/internal/logger"
	"github.com/ktnakamura/minutes-flow/internal/media"
	"github.com/ktnakamura/minutes-flow/internal/summarizer"
	"github.com/ktnakamura/minutes-flow/internal/transcriber"
)

type implProcessor struct {
	cfg        *config.Config
	media      media.Media
	assembler  transcriber.Assembler
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates a Processor instance
func New(cfg *config.Config, med media.Media, asm transcriber.Assembler,
	sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		media:      med,
		assembler:  asm,
		summarizer: sum,
		logger:     log,
	}
}
