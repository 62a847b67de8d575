package transcriber

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/ktnakamura/minutes-flow/internal/chunker"
	"github.com/ktnakamura/minutes-flow/internal/logger"
	"github.com/ktnakamura/minutes-flow/pkg/apperrors"
)

// durationProber is the slice of internal/media the assembler needs.
type durationProber interface {
	Duration(ctx context.Context, path string) (time.Duration, error)
}

// chunkExporter is satisfied by *chunker.Exporter.
type chunkExporter interface {
	ExportAll(ctx context.Context, src, dir string, durationMS, sourceSize int64) ([]chunker.Chunk, error)
}

type implAssembler struct {
	client       Transcriber
	media        durationProber
	exporter     chunkExporter
	ceilingBytes int64
	tempDir      string
	logger       logger.Logger
}

// NewAssembler creates an Assembler. tempDir hosts per-request scratch
// directories; empty means the system temp dir.
func NewAssembler(client Transcriber, media durationProber, exporter chunkExporter,
	ceilingBytes int64, tempDir string, log logger.Logger) Assembler {
	return &implAssembler{
		client:       client,
		media:        media,
		exporter:     exporter,
		ceilingBytes: ceilingBytes,
		tempDir:      tempDir,
		logger:       log,
	}
}

// TranscribeFile returns the full transcript of audioPath.
//
// Files at or under the payload ceiling go straight to the provider;
// chunking is overhead avoidance, not a mandatory path. Larger files are
// sharded, transcribed strictly in plan order (one provider call per chunk)
// and newline-joined. Any chunk failure aborts the whole transcript: a
// silently truncated transcript would corrupt downstream summarization
// without signaling it. Scratch chunk files are removed on every exit path.
func (a *implAssembler) TranscribeFile(ctx context.Context, audioPath string) (string, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeAssembly, err, "stat %s", audioPath)
	}

	if info.Size() <= a.ceilingBytes {
		text, err := a.client.Transcribe(ctx, audioPath)
		if err != nil {
			return "", apperrors.Wrap(apperrors.CodeAssembly, err, "transcribe %s", audioPath)
		}
		return text, nil
	}

	a.logger.Info(ctx, "File %s is %d bytes, over the %d byte ceiling; chunking",
		audioPath, info.Size(), a.ceilingBytes)

	scratch, err := os.MkdirTemp(a.tempDir, "whisper-chunks-*")
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeAssembly, err, "create scratch dir")
	}
	defer os.RemoveAll(scratch)

	duration, err := a.media.Duration(ctx, audioPath)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeAssembly, err, "probe duration of %s", audioPath)
	}

	chunks, err := a.exporter.ExportAll(ctx, audioPath, scratch, duration.Milliseconds(), info.Size())
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeAssembly, err, "split %s", audioPath)
	}

	a.logger.Info(ctx, "Transcribing %d chunks", len(chunks))

	texts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		text, err := a.client.Transcribe(ctx, chunk.Path)
		if err != nil {
			return "", apperrors.Wrap(apperrors.CodeAssembly, err, "transcribe chunk %d", chunk.Index)
		}
		texts = append(texts, text)
	}

	return strings.Join(texts, "\n"), nil
}
