package chunker

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/ktnakamura/minutes-flow/internal/logger"
	"github.com/ktnakamura/minutes-flow/pkg/apperrors"
)

// fakeRangeExporter writes dst files whose size is derived from the range
// span by sizeFor, simulating content-dependent encoded sizes.
type fakeRangeExporter struct {
	sizeFor func(startMS, endMS int64) int64
	calls   int
}

func (f *fakeRangeExporter) ExportRange(ctx context.Context, src, dst string, startMS, endMS int64) error {
	f.calls++
	return os.WriteFile(dst, make([]byte, f.sizeFor(startMS, endMS)), 0644)
}

func testOptions() Options {
	return Options{
		CeilingBytes: 1000,
		SafetyMargin: 0.9,
		MinChunkMS:   30_000,
		MinViableMS:  15_000,
		ShrinkFactor: 0.8,
	}
}

func quietLogger() logger.Logger {
	return logger.NewWithWriter("error", io.Discard)
}

func TestExportAllCoversTimeline(t *testing.T) {
	dir := t.TempDir()

	// Linear encoding: 1 byte per 100ms, so every estimated chunk fits and
	// no correction runs.
	fake := &fakeRangeExporter{sizeFor: func(start, end int64) int64 {
		return (end - start) / 100
	}}
	e := NewExporter(fake, quietLogger(), testOptions())

	// 10 minutes, 6000 bytes: estimate lands around 90s per chunk.
	chunks, err := e.ExportAll(context.Background(), "src.mp3", dir, 600_000, 6000)
	if err != nil {
		t.Fatalf("ExportAll() error = %v", err)
	}

	if len(chunks) == 0 {
		t.Fatal("no chunks exported")
	}
	if chunks[0].Range.StartMS != 0 {
		t.Errorf("first chunk starts at %d, want 0", chunks[0].Range.StartMS)
	}
	for i, c := range chunks {
		if c.Index != i {
			t.Errorf("chunk %d has index %d", i, c.Index)
		}
		if i > 0 && c.Range.StartMS != chunks[i-1].Range.EndMS {
			t.Errorf("coverage gap between chunk %d and %d", i-1, i)
		}
		if _, err := os.Stat(c.Path); err != nil {
			t.Errorf("chunk file missing: %v", err)
		}
	}
	if last := chunks[len(chunks)-1]; last.Range.EndMS != 600_000 {
		t.Errorf("last chunk ends at %d, want 600000", last.Range.EndMS)
	}
}

func TestExportAllShrinksOversizedChunk(t *testing.T) {
	dir := t.TempDir()

	// Dense content: chunks longer than 60s encode over the ceiling, so the
	// roughly 90s estimate must be shrunk.
	fake := &fakeRangeExporter{sizeFor: func(start, end int64) int64 {
		if end-start > 60_000 {
			return 1500
		}
		return 800
	}}
	e := NewExporter(fake, quietLogger(), testOptions())

	chunks, err := e.ExportAll(context.Background(), "src.mp3", dir, 600_000, 6000)
	if err != nil {
		t.Fatalf("ExportAll() error = %v", err)
	}

	for i, c := range chunks {
		info, err := os.Stat(c.Path)
		if err != nil {
			t.Fatalf("stat chunk %d: %v", i, err)
		}
		if info.Size() > 1000 {
			t.Errorf("chunk %d is %d bytes, over the ceiling", i, info.Size())
		}
		// Coverage must survive the correction: each chunk starts where the
		// previous (possibly shrunk) chunk ended.
		if i > 0 && c.Range.StartMS != chunks[i-1].Range.EndMS {
			t.Errorf("coverage gap after shrink between chunk %d and %d", i-1, i)
		}
	}
	if last := chunks[len(chunks)-1]; last.Range.EndMS != 600_000 {
		t.Errorf("last chunk ends at %d, want 600000", last.Range.EndMS)
	}
}

func TestExportAllChunkTooLarge(t *testing.T) {
	dir := t.TempDir()

	// Pathological content: every encoding exceeds the ceiling no matter how
	// short the range gets.
	fake := &fakeRangeExporter{sizeFor: func(start, end int64) int64 {
		return 5000
	}}
	e := NewExporter(fake, quietLogger(), testOptions())

	_, err := e.ExportAll(context.Background(), "src.mp3", dir, 600_000, 6000)
	if !apperrors.HasCode(err, apperrors.CodeChunkTooLarge) {
		t.Fatalf("ExportAll() error = %v, want ChunkTooLarge", err)
	}
}

func TestExportAllEmptyInput(t *testing.T) {
	fake := &fakeRangeExporter{sizeFor: func(start, end int64) int64 { return 1 }}
	e := NewExporter(fake, quietLogger(), testOptions())

	if _, err := e.ExportAll(context.Background(), "src.mp3", t.TempDir(), 0, 6000); err == nil {
		t.Error("ExportAll() should fail on zero duration")
	}
}
