package executor

import "context"

// Executor runs external commands (ffmpeg, ffprobe) on behalf of the pipeline.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
