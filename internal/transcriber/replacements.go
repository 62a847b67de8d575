package transcriber

import "strings"

// replacement maps a known Whisper misrecognition to its canonical form.
type replacement struct {
	from string
	to   string
}

// defaultReplacements is the curated in-house vocabulary table. Replacement
// values must not contain other keys, otherwise application order would
// start to matter.
var defaultReplacements = []replacement{
	{"配客状況", "廃却状況"},
	{"政策省", "製作所"},
	{"排却率", "廃却率"},
}

// mergeReplacements appends config-supplied entries after the defaults.
// A config entry whose key matches a default overrides it.
func mergeReplacements(overrides map[string]string) []replacement {
	merged := make([]replacement, 0, len(defaultReplacements)+len(overrides))
	for _, r := range defaultReplacements {
		if to, ok := overrides[r.from]; ok {
			merged = append(merged, replacement{from: r.from, to: to})
			continue
		}
		merged = append(merged, r)
	}
	for from, to := range overrides {
		if !isDefaultKey(from) {
			merged = append(merged, replacement{from: from, to: to})
		}
	}
	return merged
}

func isDefaultKey(key string) bool {
	for _, r := range defaultReplacements {
		if r.from == key {
			return true
		}
	}
	return false
}

// applyReplacements substitutes every occurrence of each misrecognition
// with its canonical form. Unrelated text is untouched.
func applyReplacements(text string, reps []replacement) string {
	for _, r := range reps {
		text = strings.ReplaceAll(text, r.from, r.to)
	}
	return text
}
