package transcriber

import (
	"context"
	"path/filepath"

	"github.com/sashabaranov/go-openai"

	"github.com/ktnakamura/minutes-flow/pkg/apperrors"
)

// Transcribe sends one audio file to Whisper and returns the recognized
// text with the vocabulary-correction pass applied. One synchronous call,
// no retry; retry policy, if ever added, belongs to the caller.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	t.logger.Debug(ctx, "Transcribing %s", filepath.Base(audioPath))

	resp, err := t.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: audioPath,
		Language: t.language,
		Prompt:   t.prompt,
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeTranscription, err, "transcribe %s", filepath.Base(audioPath))
	}

	return applyReplacements(resp.Text, t.replacements), nil
}
