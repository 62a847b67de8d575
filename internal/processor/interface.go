package processor

import (
	"context"

	"github.com/ktnakamura/minutes-flow/internal/summarizer"
)

// Request is one minutes-generation job.
type Request struct {
	// RecordingPath is the caller's audio or video file. The pipeline never
	// deletes or mutates it; the caller owns its lifetime.
	RecordingPath string
	// MeetingInfo is optional freeform meeting metadata (labeled lines).
	MeetingInfo string
	// ReferenceText is optional slide-deck text enriching the prompt.
	ReferenceText string
}

// Result carries the pipeline's outputs. Transcript is populated as soon as
// transcription succeeds, so it survives a later summarization failure.
type Result struct {
	Transcript     string
	Record         *summarizer.Record
	TranscriptPath string
	MinutesPath    string
}

// Processor runs the full minutes pipeline for one request.
type Processor interface {
	Process(ctx context.Context, req Request) (*Result, error)
}
