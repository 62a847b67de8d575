package summarizer

import (
	"regexp"
	"strings"
)

// Section headers the model is instructed to emit. The parser slices the
// reply between consecutive present headers; a missing header leaves the
// corresponding field at its default, because the model's adherence to
// formatting is not contractually guaranteed.
const (
	headerBasicInfo  = "0. 会議基本情報"
	headerAgenda     = "1. 議題の説明:"
	headerMainPoints = "2. 主な発言:"
	headerDecisions  = "3. 決定事項:"
)

var basicInfoPatterns = map[string]*regexp.Regexp{
	"meeting_name":     regexp.MustCompile(`会議名\s*[:：]\s*(.+)`),
	"meeting_datetime": regexp.MustCompile(`日時\s*[:：]\s*(.+)`),
	"participants":     regexp.MustCompile(`参加者\s*[:：]\s*(.+)`),
	"location_url":     regexp.MustCompile(`場所\s*/\s*URL\s*[:：]\s*(.+)`),
}

// Sections is the partial structured view of a model reply.
type Sections struct {
	BasicInfo  string
	Agenda     string
	MainPoints string
	Decisions  string

	HasBasicInfo  bool
	HasAgenda     bool
	HasMainPoints bool
	HasDecisions  bool
}

// ParseSections locates each numbered header substring and slices the text
// between it and the next header that is actually present. Pure; unit
// testable against malformed replies independent of any network call.
func ParseSections(text string) Sections {
	headers := []string{headerBasicInfo, headerAgenda, headerMainPoints, headerDecisions}

	starts := make([]int, len(headers))
	for i, h := range headers {
		starts[i] = strings.Index(text, h)
	}

	content := make([]string, len(headers))
	for i, h := range headers {
		if starts[i] < 0 {
			continue
		}
		begin := starts[i] + len(h)
		end := len(text)
		for j := i + 1; j < len(headers); j++ {
			if starts[j] >= 0 {
				end = starts[j]
				break
			}
		}
		if begin > end {
			// Headers out of order; treat the section as absent.
			starts[i] = -1
			continue
		}
		content[i] = strings.TrimSpace(text[begin:end])
	}

	return Sections{
		BasicInfo:     content[0],
		Agenda:        content[1],
		MainPoints:    content[2],
		Decisions:     content[3],
		HasBasicInfo:  starts[0] >= 0,
		HasAgenda:     starts[1] >= 0,
		HasMainPoints: starts[2] >= 0,
		HasDecisions:  starts[3] >= 0,
	}
}

// ParseBasicInfo extracts the four labeled lines (`label: value`) from
// freeform text. Fields that do not match stay at the Unknown sentinel.
func ParseBasicInfo(text string) BasicInfo {
	info := UnknownBasicInfo()
	if text == "" {
		return info
	}

	if v, ok := matchLabel(basicInfoPatterns["meeting_name"], text); ok {
		info.MeetingName = v
	}
	if v, ok := matchLabel(basicInfoPatterns["meeting_datetime"], text); ok {
		info.MeetingDatetime = v
	}
	if v, ok := matchLabel(basicInfoPatterns["participants"], text); ok {
		info.Participants = v
	}
	if v, ok := matchLabel(basicInfoPatterns["location_url"], text); ok {
		info.LocationURL = v
	}
	return info
}

func matchLabel(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	if v == "" {
		return "", false
	}
	return v, true
}

// BuildRecord assembles the final structured record from the model reply.
//
// The basic-info fields start from the user-supplied meeting metadata
// (mechanical fallback) and are then overridden per-field by whatever the
// model's own "0." section renders parseably: the model's free-text reading
// takes precedence when both exist, but a line the model dropped does not
// erase a value the fallback already had.
func BuildRecord(reply, meetingInfo string) *Record {
	rec := &Record{BasicInfo: ParseBasicInfo(meetingInfo)}

	secs := ParseSections(reply)

	if secs.HasBasicInfo {
		modelInfo := ParseBasicInfo(secs.BasicInfo)
		if modelInfo.MeetingName != Unknown {
			rec.MeetingName = modelInfo.MeetingName
		}
		if modelInfo.MeetingDatetime != Unknown {
			rec.MeetingDatetime = modelInfo.MeetingDatetime
		}
		if modelInfo.Participants != Unknown {
			rec.Participants = modelInfo.Participants
		}
		if modelInfo.LocationURL != Unknown {
			rec.LocationURL = modelInfo.LocationURL
		}
	}

	if secs.HasAgenda {
		rec.Agenda = secs.Agenda
	}
	if secs.HasMainPoints {
		rec.MainPoints = secs.MainPoints
	}
	if secs.HasDecisions {
		rec.Decisions = secs.Decisions
	}

	return rec
}
