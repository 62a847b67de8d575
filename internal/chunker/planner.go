// Package chunker splits oversized audio into sub-ceiling chunks.
//
// The transcription provider caps request payload size, so a large recording
// must be sharded into bounded time ranges, exported individually and
// transcribed in order. The planner produces a linear estimate from the
// source's average byte rate; because encoded size is content dependent
// (silence compresses better than speech), the exporter re-checks every
// encoded chunk and shrinks it at runtime when the estimate was off.
package chunker

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the source has zero duration and nothing
// can be chunked.
var ErrEmptyInput = errors.New("audio is empty, nothing to chunk")

// Range is one planned chunk: [StartMS, EndMS) on the source timeline.
type Range struct {
	StartMS int64
	EndMS   int64
}

// SpanMS is the range's duration in milliseconds.
func (r Range) SpanMS() int64 {
	return r.EndMS - r.StartMS
}

// Planner computes chunk plans from a source's duration and size.
type Planner struct {
	// SafetyMargin scales the ceiling down to absorb re-encoding overhead
	// (e.g. 0.9).
	SafetyMargin float64
	// MinChunkMS floors the chunk length so a plan never degenerates into
	// micro-chunks that multiply request overhead and lose context.
	MinChunkMS int64
}

// ChunkMS estimates the chunk length for a source of the given duration and
// byte size, so that an average chunk encodes under ceilingBytes.
func (p Planner) ChunkMS(durationMS, sourceSize, ceilingBytes int64) (int64, error) {
	if durationMS <= 0 {
		return 0, ErrEmptyInput
	}
	if ceilingBytes <= 0 {
		return 0, fmt.Errorf("ceiling must be positive, got %d", ceilingBytes)
	}

	bytesPerMS := float64(sourceSize) / float64(durationMS)
	if bytesPerMS < 1e-6 {
		bytesPerMS = 1e-6
	}

	chunkMS := int64(float64(ceilingBytes) * p.SafetyMargin / bytesPerMS)
	if chunkMS < p.MinChunkMS {
		chunkMS = p.MinChunkMS
	}
	return chunkMS, nil
}

// Plan produces consecutive ranges of the estimated chunk length covering
// [0, durationMS) exactly; the final range absorbs the remainder. The result
// is a partition: contiguous, strictly increasing, no gaps, no overlaps.
func (p Planner) Plan(durationMS, sourceSize, ceilingBytes int64) ([]Range, error) {
	chunkMS, err := p.ChunkMS(durationMS, sourceSize, ceilingBytes)
	if err != nil {
		return nil, err
	}

	var ranges []Range
	for start := int64(0); start < durationMS; {
		end := start + chunkMS
		if end > durationMS {
			end = durationMS
		}
		ranges = append(ranges, Range{StartMS: start, EndMS: end})
		start = end
	}
	return ranges, nil
}
