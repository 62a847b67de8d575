package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ktnakamura/minutes-flow/internal/exporter"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".mkv":  true,
	".avi":  true,
	".webm": true,
	".m4v":  true,
	".flv":  true,
}

// Process runs the whole pipeline for one recording: extract audio if the
// input is a video, assemble the transcript, summarize, export. A .vtt
// input already carries the transcript, so it skips straight to
// summarization. Scratch files are uniquely named per request and removed
// on every outcome.
//
// A successful transcript is exported before summarization runs, so it
// remains usable even when the summarization stage fails; in that case the
// returned Result still carries the transcript alongside the error.
func (p *implProcessor) Process(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	p.logger.Info(ctx, "Starting minutes generation: %s", req.RecordingPath)

	p.gatherCompanions(ctx, &req)

	transcript, err := p.transcribe(ctx, req.RecordingPath)
	if err != nil {
		return nil, err
	}

	res := &Result{Transcript: transcript}
	p.exportTranscript(ctx, res)

	record, err := p.summarizer.Summarize(ctx, transcript, req.MeetingInfo, req.ReferenceText)
	if err != nil {
		p.logger.Error(ctx, "Summarization failed, transcript is still available: %v", err)
		return res, fmt.Errorf("summarize: %w", err)
	}
	res.Record = record

	minutesPath, err := exporter.WriteMinutes(p.cfg.Paths.Output, record)
	if err != nil {
		return res, fmt.Errorf("export minutes: %w", err)
	}
	res.MinutesPath = minutesPath

	if _, err := exporter.WriteMinutesDocx(p.cfg.Paths.Output, record); err != nil {
		p.logger.Warn(ctx, "Failed to write minutes docx: %v", err)
	}

	p.logger.Info(ctx, "Minutes generated in %s: %s", time.Since(start).Round(time.Second), minutesPath)
	return res, nil
}

// transcribe resolves the recording to a transcript: subtitle files are
// stripped of cue metadata, videos go through audio extraction first, and
// everything else goes straight to the assembler.
func (p *implProcessor) transcribe(ctx context.Context, path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".vtt") {
		text, err := exporter.StripVTTFile(path)
		if err != nil {
			return "", fmt.Errorf("read subtitle file: %w", err)
		}
		return text, nil
	}

	audioPath := path
	if isVideoFile(path) {
		extracted, cleanup, err := p.extractToScratch(ctx, path)
		if err != nil {
			return "", err
		}
		defer cleanup()
		audioPath = extracted
	}

	transcript, err := p.assembler.TranscribeFile(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("assemble transcript: %w", err)
	}
	return transcript, nil
}

// extractToScratch converts a video into a per-request scratch audio file.
// The returned cleanup removes the scratch dir; the caller's input is left
// untouched.
func (p *implProcessor) extractToScratch(ctx context.Context, videoPath string) (string, func(), error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", nil, fmt.Errorf("create temp dir: %w", err)
	}
	scratch, err := os.MkdirTemp(p.cfg.Paths.Temp, "extract-*")
	if err != nil {
		return "", nil, fmt.Errorf("create scratch dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(scratch) }

	extracted := filepath.Join(scratch, "audio.mp3")
	if err := p.media.ExtractAudio(ctx, videoPath, extracted); err != nil {
		cleanup()
		return "", nil, err
	}

	return extracted, cleanup, nil
}

func (p *implProcessor) exportTranscript(ctx context.Context, res *Result) {
	path, err := exporter.WriteTranscript(p.cfg.Paths.Output, res.Transcript)
	if err != nil {
		p.logger.Warn(ctx, "Failed to write transcript: %v", err)
		return
	}
	res.TranscriptPath = path

	if _, err := exporter.WriteTranscriptDocx(p.cfg.Paths.Output, res.Transcript); err != nil {
		p.logger.Warn(ctx, "Failed to write transcript docx: %v", err)
	}
}

func isVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}
