package media

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ktnakamura/minutes-flow/pkg/apperrors"
)

// HasAudioTrack asks ffprobe for the indices of audio streams; empty output
// means the container has none.
func (m *implMedia) HasAudioTrack(ctx context.Context, path string) (bool, error) {
	out, err := m.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-select_streams", "a",
		"-show_entries", "stream=index",
		"-of", "csv=p=0",
		path,
	)
	if err != nil {
		return false, apperrors.Wrap(apperrors.CodeExtraction, err, "probe audio streams %s", path)
	}
	return strings.TrimSpace(out) != "", nil
}

// ExtractAudio converts a video file to an mp3 audio file at dst.
// The probe runs first so a silent video fails with a clear NoAudioTrack
// error instead of an opaque converter failure. Conversion is deterministic
// and never retried.
func (m *implMedia) ExtractAudio(ctx context.Context, src, dst string) error {
	hasAudio, err := m.HasAudioTrack(ctx, src)
	if err != nil {
		return err
	}
	if !hasAudio {
		return apperrors.New(apperrors.CodeNoAudioTrack, "no audio track in %s", src)
	}

	m.logger.Info(ctx, "Extracting audio: %s -> %s", src, dst)

	args := []string{
		"-y",
		"-i", src,
		"-vn",
		"-acodec", "libmp3lame",
		dst,
	}
	if _, err := m.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "does not contain any stream") {
			return apperrors.New(apperrors.CodeNoAudioTrack, "no audio track in %s", src)
		}
		return apperrors.Wrap(apperrors.CodeExtraction, err, "extract audio from %s", src)
	}

	return nil
}

// Duration queries the container duration via ffprobe.
func (m *implMedia) Duration(ctx context.Context, path string) (time.Duration, error) {
	out, err := m.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeExtraction, err, "probe duration %s", path)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeExtraction, err, "parse duration of %s", path)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

// ExportRange re-encodes a time slice of src into dst at the configured
// bitrate. -ss/-to are placed after -i for sample-accurate cuts.
func (m *implMedia) ExportRange(ctx context.Context, src, dst string, startMS, endMS int64) error {
	args := []string{
		"-y",
		"-i", src,
		"-ss", formatSeconds(startMS),
		"-to", formatSeconds(endMS),
		"-vn",
		"-acodec", "libmp3lame",
		"-b:a", m.bitrate,
		dst,
	}

	if _, err := m.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return apperrors.Wrap(apperrors.CodeExtraction, err, "export range %d-%dms of %s", startMS, endMS, src)
	}

	return nil
}

func formatSeconds(ms int64) string {
	return fmt.Sprintf("%.3f", float64(ms)/1000.0)
}
