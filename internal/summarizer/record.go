package summarizer

// Unknown is the sentinel for a basic-info field that could not be
// determined. Fields are never left blank so downstream rendering always
// shows a determinate placeholder.
const Unknown = "不明"

// BasicInfo holds the four fixed meeting-metadata fields.
type BasicInfo struct {
	MeetingName     string
	MeetingDatetime string
	Participants    string
	LocationURL     string
}

// UnknownBasicInfo returns a BasicInfo with every field at the sentinel.
func UnknownBasicInfo() BasicInfo {
	return BasicInfo{
		MeetingName:     Unknown,
		MeetingDatetime: Unknown,
		Participants:    Unknown,
		LocationURL:     Unknown,
	}
}

// Record is the structured minutes document built from one model response.
type Record struct {
	BasicInfo

	Agenda     string
	MainPoints string
	Decisions  string
}
