package exporter

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

// StripVTT reduces WebVTT subtitle content to plain dialogue text, dropping
// the header, cue timings and cue numbers.
func StripVTT(content string) string {
	var textLines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "-->") || isDigits(line) || strings.HasPrefix(line, "WEBVTT") {
			continue
		}
		textLines = append(textLines, line)
	}
	return strings.Join(textLines, "\n")
}

// StripVTTFile reads a .vtt file and returns its dialogue text.
func StripVTTFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read vtt file: %w", err)
	}
	return StripVTT(string(data)), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
