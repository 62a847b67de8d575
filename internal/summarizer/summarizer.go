package summarizer

import (
	"context"
	"strings"

	"github.com/ktnakamura/minutes-flow/pkg/apperrors"
)

// Summarize sends one request to the language model and parses its
// semi-structured reply into a Record. Parsing degrades gracefully: missing
// sections leave their fields at defaults instead of failing the request.
func (s *implSummarizer) Summarize(ctx context.Context, transcript, meetingInfo, referenceText string) (*Record, error) {
	prompt := buildPrompt(transcript, meetingInfo, referenceText)

	s.logger.Debug(ctx, "Requesting summary (%d chars of transcript)", len(transcript))

	reply, err := s.backend.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeSummarization, err, "summarize transcript")
	}
	if strings.TrimSpace(reply) == "" {
		return nil, apperrors.New(apperrors.CodeSummarization, "empty response from model")
	}

	return BuildRecord(reply, meetingInfo), nil
}
