package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"direct", New(CodeNoAudioTrack, "no audio"), CodeNoAudioTrack},
		{"wrapped", Wrap(CodeExtraction, errors.New("exit status 1"), "ffmpeg"), CodeExtraction},
		{"double wrapped", fmt.Errorf("process: %w", New(CodeChunkTooLarge, "chunk 3")), CodeChunkTooLarge},
		{"plain error", errors.New("plain"), Code("")},
		{"nil-adjacent", fmt.Errorf("outer"), Code("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	err := Wrap(CodeAssembly, New(CodeTranscription, "provider failed"), "chunk 1")

	if !HasCode(err, CodeAssembly) {
		t.Error("HasCode() should match the outermost code")
	}
	if HasCode(err, CodeSummarization) {
		t.Error("HasCode() matched the wrong code")
	}

	// The inner classification is still reachable through errors.As chains.
	var inner *Error
	if !errors.As(err.Unwrap(), &inner) || inner.Code != CodeTranscription {
		t.Error("inner classification lost through wrapping")
	}
}

func TestWrapNil(t *testing.T) {
	if got := Wrap(CodeExtraction, nil, "ffmpeg"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}
}

func TestErrorMessage(t *testing.T) {
	err := Wrap(CodeExtraction, errors.New("exit status 1"), "convert %s", "in.mp4")
	want := "EXTRACTION: convert in.mp4: exit status 1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeConfiguration, false},
		{CodeNoAudioTrack, false},
		{CodeChunkTooLarge, false},
		{CodeTranscription, true},
		{CodeSummarization, true},
		{Code("UNKNOWN"), false},
	}

	for _, tt := range tests {
		if got := tt.code.Retryable(); got != tt.want {
			t.Errorf("%s.Retryable() = %v, want %v", tt.code, got, tt.want)
		}
	}
}
