package transcriber

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/ktnakamura/minutes-flow/internal/config"
	"github.com/ktnakamura/minutes-flow/internal/logger"
	"github.com/ktnakamura/minutes-flow/pkg/apperrors"
)

type fakeSpeechAPI struct {
	text string
	err  error
	reqs []openai.AudioRequest
}

func (f *fakeSpeechAPI) CreateTranscription(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return openai.AudioResponse{}, f.err
	}
	return openai.AudioResponse{Text: f.text}, nil
}

func quietLogger() logger.Logger {
	return logger.NewWithWriter("error", io.Discard)
}

func newTestClient(api speechAPI) *implTranscriber {
	return &implTranscriber{
		api:          api,
		model:        "whisper-1",
		language:     "ja",
		prompt:       "meeting prompt",
		replacements: defaultReplacements,
		logger:       quietLogger(),
	}
}

func TestNewRequiresCredential(t *testing.T) {
	cfg := &config.Config{Paths: config.PathsConfig{Inbox: "in", Output: "out"}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	_, err := New(cfg, quietLogger())
	if !apperrors.HasCode(err, apperrors.CodeConfiguration) {
		t.Fatalf("New() without key error = %v, want Configuration", err)
	}

	cfg.OpenAIAPIKey = "sk-test"
	if _, err := New(cfg, quietLogger()); err != nil {
		t.Fatalf("New() with key error = %v", err)
	}
}

func TestTranscribeRequestShape(t *testing.T) {
	api := &fakeSpeechAPI{text: "こんにちは"}
	c := newTestClient(api)

	got, err := c.Transcribe(context.Background(), "/tmp/chunk_0.mp3")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got != "こんにちは" {
		t.Errorf("Transcribe() = %q", got)
	}

	if len(api.reqs) != 1 {
		t.Fatalf("provider called %d times, want 1", len(api.reqs))
	}
	req := api.reqs[0]
	if req.Model != "whisper-1" || req.Language != "ja" || req.Prompt != "meeting prompt" {
		t.Errorf("request = %+v, missing model/language/prompt", req)
	}
	if req.FilePath != "/tmp/chunk_0.mp3" {
		t.Errorf("FilePath = %q", req.FilePath)
	}
}

func TestTranscribeAppliesReplacements(t *testing.T) {
	api := &fakeSpeechAPI{text: "配客状況は政策省の報告どおり、排却率は5%です。配客状況を再確認。"}
	c := newTestClient(api)

	got, err := c.Transcribe(context.Background(), "audio.mp3")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	want := "廃却状況は製作所の報告どおり、廃却率は5%です。廃却状況を再確認。"
	if got != want {
		t.Errorf("Transcribe() = %q, want %q", got, want)
	}
}

func TestTranscribeProviderFailure(t *testing.T) {
	api := &fakeSpeechAPI{err: errors.New("429 too many requests")}
	c := newTestClient(api)

	_, err := c.Transcribe(context.Background(), "audio.mp3")
	if !apperrors.HasCode(err, apperrors.CodeTranscription) {
		t.Fatalf("Transcribe() error = %v, want Transcription", err)
	}
}

func TestMergeReplacements(t *testing.T) {
	merged := mergeReplacements(map[string]string{
		"政策省":  "製作書",
		"えーあい": "AI",
	})

	apply := func(s string) string { return applyReplacements(s, merged) }

	if got := apply("政策省"); got != "製作書" {
		t.Errorf("override not applied: %q", got)
	}
	if got := apply("えーあい"); got != "AI" {
		t.Errorf("extra entry not applied: %q", got)
	}
	if got := apply("配客状況"); got != "廃却状況" {
		t.Errorf("default entry lost: %q", got)
	}
	if got := apply("無関係なテキスト"); got != "無関係なテキスト" {
		t.Errorf("unrelated text changed: %q", got)
	}
}
