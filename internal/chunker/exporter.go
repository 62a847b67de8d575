package chunker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ktnakamura/minutes-flow/internal/logger"
	"github.com/ktnakamura/minutes-flow/pkg/apperrors"
)

// RangeExporter encodes a time slice of a source file; satisfied by
// internal/media.
type RangeExporter interface {
	ExportRange(ctx context.Context, src, dst string, startMS, endMS int64) error
}

// Chunk is one exported slice, tagged with its plan-order index.
type Chunk struct {
	Index int
	Path  string
	Range Range
}

// Options bound the exporter's correction loop.
type Options struct {
	CeilingBytes int64
	SafetyMargin float64
	MinChunkMS   int64
	// MinViableMS is the duration below which a chunk is no longer worth
	// shrinking; hitting it while still over the ceiling is a hard failure.
	MinViableMS int64
	// ShrinkFactor scales an oversized chunk's duration on each correction
	// pass (e.g. 0.8).
	ShrinkFactor float64
}

// Exporter turns a source file into ordered sub-ceiling chunk files.
type Exporter struct {
	media  RangeExporter
	logger logger.Logger
	opts   Options
}

// NewExporter creates an Exporter.
func NewExporter(media RangeExporter, log logger.Logger, opts Options) *Exporter {
	return &Exporter{media: media, logger: log, opts: opts}
}

// ExportAll walks the source timeline in estimated chunk steps, encoding
// each step into dir and correcting oversized steps as it goes. When a chunk
// shrinks, the next chunk starts at the corrected end so coverage of the
// full timeline is preserved. Returned chunks are in strictly increasing
// timeline order.
func (e *Exporter) ExportAll(ctx context.Context, src, dir string, durationMS, sourceSize int64) ([]Chunk, error) {
	planner := Planner{SafetyMargin: e.opts.SafetyMargin, MinChunkMS: e.opts.MinChunkMS}
	chunkMS, err := planner.ChunkMS(durationMS, sourceSize, e.opts.CeilingBytes)
	if err != nil {
		return nil, err
	}

	var chunks []Chunk
	start := int64(0)
	for index := 0; start < durationMS; index++ {
		end := start + chunkMS
		if end > durationMS {
			end = durationMS
		}

		chunk, err := e.exportChunk(ctx, src, dir, index, Range{StartMS: start, EndMS: end})
		if err != nil {
			return nil, err
		}

		chunks = append(chunks, chunk)
		start = chunk.Range.EndMS
	}

	return chunks, nil
}

// exportChunk encodes one range and runs the runtime size correction: while
// the encoded artifact still exceeds the ceiling, the range is shortened by
// ShrinkFactor and re-encoded, down to MinViableMS.
func (e *Exporter) exportChunk(ctx context.Context, src, dir string, index int, rng Range) (Chunk, error) {
	path := filepath.Join(dir, fmt.Sprintf("chunk_%d.mp3", index))

	size, err := e.encode(ctx, src, path, rng)
	if err != nil {
		return Chunk{}, err
	}

	for size > e.opts.CeilingBytes && rng.SpanMS() > e.opts.MinViableMS {
		shrunk := int64(float64(rng.SpanMS()) * e.opts.ShrinkFactor)
		rng.EndMS = rng.StartMS + shrunk

		e.logger.Warn(ctx, "Chunk %d over ceiling (%d bytes), shrinking to %dms", index, size, shrunk)

		size, err = e.encode(ctx, src, path, rng)
		if err != nil {
			return Chunk{}, err
		}
	}

	if size > e.opts.CeilingBytes {
		return Chunk{}, apperrors.New(apperrors.CodeChunkTooLarge,
			"chunk %d cannot be reduced under %d bytes", index, e.opts.CeilingBytes)
	}

	return Chunk{Index: index, Path: path, Range: rng}, nil
}

func (e *Exporter) encode(ctx context.Context, src, dst string, rng Range) (int64, error) {
	if err := e.media.ExportRange(ctx, src, dst, rng.StartMS, rng.EndMS); err != nil {
		return 0, err
	}
	info, err := os.Stat(dst)
	if err != nil {
		return 0, fmt.Errorf("stat chunk %s: %w", dst, err)
	}
	return info.Size(), nil
}
