package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/ktnakamura/minutes-flow/internal/summarizer"
)

const (
	fontName    = "Yu Gothic"
	fontSize    = 11
	headingSize = 14
	titleSize   = 16
)

// WriteMinutesDocx renders the minutes record as a styled docx next to the
// txt export.
func WriteMinutesDocx(dir string, rec *summarizer.Record) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return "", fmt.Errorf("create docx: %w", err)
	}

	addRun(doc.AddParagraph(""), "議事録", true, titleSize)
	doc.AddParagraph("")

	addRun(doc.AddParagraph(""), "会議基本情報", true, headingSize)
	addBody(doc, "会議名: "+rec.MeetingName)
	addBody(doc, "日時: "+rec.MeetingDatetime)
	addBody(doc, "参加者: "+rec.Participants)
	addBody(doc, "場所/URL: "+rec.LocationURL)
	doc.AddParagraph("")

	for _, sec := range []struct {
		heading string
		body    string
	}{
		{"議題の説明", rec.Agenda},
		{"主な発言", rec.MainPoints},
		{"決定事項", rec.Decisions},
	} {
		addRun(doc.AddParagraph(""), sec.heading, true, headingSize)
		for _, line := range strings.Split(sec.body, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				addBody(doc, trimmed)
			}
		}
		doc.AddParagraph("")
	}

	path := filepath.Join(dir, MinutesDocxFileName)
	if err := doc.SaveTo(path); err != nil {
		return "", fmt.Errorf("save docx: %w", err)
	}
	return path, nil
}

// WriteTranscriptDocx renders the raw transcript as a docx, one paragraph
// per transcript line.
func WriteTranscriptDocx(dir, transcript string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return "", fmt.Errorf("create docx: %w", err)
	}

	addRun(doc.AddParagraph(""), "文字起こし生データ", true, titleSize)
	doc.AddParagraph("")

	for _, line := range strings.Split(transcript, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			addBody(doc, trimmed)
		}
	}

	path := filepath.Join(dir, TranscriptDocxFileName)
	if err := doc.SaveTo(path); err != nil {
		return "", fmt.Errorf("save docx: %w", err)
	}
	return path, nil
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addBody(doc *docx.RootDoc, text string) {
	doc.AddParagraph("").AddText(text).Font(fontName).Size(fontSize).Color("000000")
}
