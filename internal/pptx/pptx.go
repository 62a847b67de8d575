// Package pptx extracts slide text from PowerPoint files to enrich the
// summarization prompt. A pptx is a zip archive; slide text lives in the
// DrawingML `a:t` runs of ppt/slides/slideN.xml.
package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const drawingMLNS = "http://schemas.openxmlformats.org/drawingml/2006/main"

var slidePathRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// Deck is one uploaded presentation.
type Deck struct {
	Name string
	Data []byte
}

// ExtractText returns the concatenated per-slide text of one pptx byte
// stream, each slide prefixed with a 【スライドN】 header. Slides without
// text are skipped.
func ExtractText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pptx archive: %w", err)
	}

	type slideFile struct {
		num  int
		file *zip.File
	}
	var slides []slideFile
	for _, f := range zr.File {
		m := slidePathRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slideFile{num: num, file: f})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	var parts []string
	for _, s := range slides {
		lines, err := slideLines(s.file)
		if err != nil {
			return "", fmt.Errorf("read slide %d: %w", s.num, err)
		}
		if len(lines) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("【スライド%d】\n%s", s.num, strings.Join(lines, "\n")))
	}

	return strings.Join(parts, "\n\n"), nil
}

// slideLines collects the text runs of one slide, one line per DrawingML
// paragraph, skipping empty paragraphs.
func slideLines(f *zip.File) ([]string, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)

	var lines []string
	var para strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == drawingMLNS && t.Name.Local == "t" {
				inText = true
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		case xml.EndElement:
			if t.Name.Space == drawingMLNS && t.Name.Local == "t" {
				inText = false
			}
			if t.Name.Space == drawingMLNS && t.Name.Local == "p" {
				if line := strings.TrimSpace(para.String()); line != "" {
					lines = append(lines, line)
				}
				para.Reset()
			}
		}
	}

	return lines, nil
}

// ExtractDecks extracts and joins the text of several decks. Failed decks
// are reported in the returned error list but do not abort the others;
// extraction only enriches the prompt and is never required.
func ExtractDecks(decks []Deck) (string, []string) {
	var texts []string
	var errs []string
	for i, d := range decks {
		text, err := ExtractText(d.Data)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", d.Name, err))
			continue
		}
		if text != "" {
			texts = append(texts, fmt.Sprintf("=== 資料%d: %s ===\n%s", i+1, d.Name, text))
		}
	}
	return strings.Join(texts, "\n\n"), errs
}
