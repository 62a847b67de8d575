package media

import (
	"context"
	"time"
)

// Media probes and converts recordings through the external ffmpeg/ffprobe
// tools. Implementations never mutate their input files.
type Media interface {
	// HasAudioTrack reports whether the container carries at least one
	// audio stream.
	HasAudioTrack(ctx context.Context, path string) (bool, error)

	// ExtractAudio discards video and re-encodes the audio track to mp3 at
	// dst. Fails with a NoAudioTrack error when the container has none.
	ExtractAudio(ctx context.Context, src, dst string) error

	// Duration returns the total playable duration of the file.
	Duration(ctx context.Context, path string) (time.Duration, error)

	// ExportRange re-encodes the [startMS, endMS) slice of src to dst.
	ExportRange(ctx context.Context, src, dst string, startMS, endMS int64) error
}
