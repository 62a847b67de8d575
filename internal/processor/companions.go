package processor

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ktnakamura/minutes-flow/internal/pptx"
)

// maxReferenceDecks caps how many companion decks feed the prompt.
const maxReferenceDecks = 7

// gatherCompanions fills empty Request fields from sidecar files next to
// the recording: <base>.txt supplies meeting metadata, <base>*.pptx decks
// supply reference material. Callers that set the fields explicitly win.
// Companion problems are never fatal; the prompt is just less informed.
func (p *implProcessor) gatherCompanions(ctx context.Context, req *Request) {
	base := strings.TrimSuffix(req.RecordingPath, filepath.Ext(req.RecordingPath))

	if req.MeetingInfo == "" {
		if data, err := os.ReadFile(base + ".txt"); err == nil {
			req.MeetingInfo = strings.TrimSpace(string(data))
			p.logger.Info(ctx, "Using meeting info from %s.txt", filepath.Base(base))
		}
	}

	if req.ReferenceText != "" {
		return
	}

	matches, err := filepath.Glob(base + "*.pptx")
	if err != nil || len(matches) == 0 {
		return
	}
	sort.Strings(matches)
	if len(matches) > maxReferenceDecks {
		p.logger.Warn(ctx, "Found %d reference decks, using the first %d", len(matches), maxReferenceDecks)
		matches = matches[:maxReferenceDecks]
	}

	var decks []pptx.Deck
	for _, m := range matches {
		data, err := os.ReadFile(m)
		if err != nil {
			p.logger.Warn(ctx, "Failed to read reference deck %s: %v", m, err)
			continue
		}
		decks = append(decks, pptx.Deck{Name: filepath.Base(m), Data: data})
	}

	text, errs := pptx.ExtractDecks(decks)
	for _, e := range errs {
		p.logger.Warn(ctx, "Failed to extract reference deck: %s", e)
	}
	if text != "" {
		req.ReferenceText = text
		p.logger.Info(ctx, "Attached %d reference decks to the prompt", len(decks)-len(errs))
	}
}
