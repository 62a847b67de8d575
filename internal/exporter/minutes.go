// Package exporter writes the pipeline's outputs as fixed-name files in a
// caller-chosen directory and hosts the surrounding file-housekeeping glue.
package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ktnakamura/minutes-flow/internal/summarizer"
)

// Export file names are fixed constants; callers choose only the directory.
const (
	MinutesFileName        = "議事録.txt"
	TranscriptFileName     = "文字起こし生データ.txt"
	MinutesDocxFileName    = "議事録.docx"
	TranscriptDocxFileName = "文字起こし生データ.docx"
)

// WriteMinutes writes the structured minutes as UTF-8 text and returns the
// file path. The directory is created if absent.
func WriteMinutes(dir string, rec *summarizer.Record) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, MinutesFileName)
	if err := os.WriteFile(path, []byte(BuildMinutesText(rec)), 0644); err != nil {
		return "", fmt.Errorf("write minutes: %w", err)
	}
	return path, nil
}

// WriteTranscript writes the raw transcript with a generation timestamp
// header and returns the file path.
func WriteTranscript(dir, transcript string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, TranscriptFileName)
	if err := os.WriteFile(path, []byte(buildTranscriptText(transcript, time.Now())), 0644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}
	return path, nil
}

// BuildMinutesText renders the record in the fixed minutes layout.
func BuildMinutesText(rec *summarizer.Record) string {
	return "会議基本情報:\n" +
		fmt.Sprintf("会議名: %s\n", rec.MeetingName) +
		fmt.Sprintf("日時: %s\n", rec.MeetingDatetime) +
		fmt.Sprintf("参加者: %s\n", rec.Participants) +
		fmt.Sprintf("場所/URL: %s\n\n", rec.LocationURL) +
		fmt.Sprintf("議題の説明:\n%s\n\n", rec.Agenda) +
		fmt.Sprintf("主な発言:\n%s\n\n", rec.MainPoints) +
		fmt.Sprintf("決定事項:\n%s\n", rec.Decisions)
}

func buildTranscriptText(transcript string, now time.Time) string {
	return fmt.Sprintf("生成日時: %s\n\n--- 文字起こし生データ ---\n%s\n",
		now.Format("2006-01-02 15:04:05"), transcript)
}
