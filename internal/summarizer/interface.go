package summarizer

import "context"

// Summarizer turns a full transcript (plus optional meeting metadata and
// reference-document text) into a structured minutes record.
type Summarizer interface {
	Summarize(ctx context.Context, transcript, meetingInfo, referenceText string) (*Record, error)
}
