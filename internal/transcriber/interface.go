package transcriber

import "context"

// Transcriber converts one sub-ceiling audio file to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Assembler produces the full transcript for a file of any size, sharding
// through the chunk pipeline when the file exceeds the provider's payload
// ceiling.
type Assembler interface {
	TranscribeFile(ctx context.Context, audioPath string) (string, error)
}
