package apperrors

// Code classifies a pipeline failure.
type Code string

const (
	// CodeConfiguration means a required credential or setting is missing.
	// Fix is operator action, never a retry.
	CodeConfiguration Code = "CONFIGURATION"

	// CodeNoAudioTrack means the uploaded container carries no audio stream.
	CodeNoAudioTrack Code = "NO_AUDIO_TRACK"

	// CodeExtraction means the media tool failed to convert or export audio.
	CodeExtraction Code = "EXTRACTION"

	// CodeChunkTooLarge means a chunk could not be shrunk under the payload
	// ceiling before hitting the minimum viable duration.
	CodeChunkTooLarge Code = "CHUNK_TOO_LARGE"

	// CodeTranscription means the speech-to-text provider rejected or failed
	// a request.
	CodeTranscription Code = "TRANSCRIPTION"

	// CodeSummarization means the language-model provider rejected or failed
	// a request.
	CodeSummarization Code = "SUMMARIZATION"

	// CodeAssembly wraps any chunk-stage failure; the whole transcript is
	// aborted rather than returned partially.
	CodeAssembly Code = "ASSEMBLY"
)

// CodeInfo carries metadata about a failure class.
type CodeInfo struct {
	Code        Code
	Retryable   bool
	Description string
}

// Registry maps every code to its metadata. Provider failures are marked
// retryable because they are potentially transient, even though the pipeline
// itself performs no automatic retry.
var Registry = map[Code]CodeInfo{
	CodeConfiguration: {
		Code:        CodeConfiguration,
		Retryable:   false,
		Description: "Required credential or configuration value is missing",
	},
	CodeNoAudioTrack: {
		Code:        CodeNoAudioTrack,
		Retryable:   false,
		Description: "Input file has no audio track",
	},
	CodeExtraction: {
		Code:        CodeExtraction,
		Retryable:   false,
		Description: "Media conversion tool failed",
	},
	CodeChunkTooLarge: {
		Code:        CodeChunkTooLarge,
		Retryable:   false,
		Description: "Audio chunk cannot be reduced under the payload ceiling",
	},
	CodeTranscription: {
		Code:        CodeTranscription,
		Retryable:   true,
		Description: "Transcription provider request failed",
	},
	CodeSummarization: {
		Code:        CodeSummarization,
		Retryable:   true,
		Description: "Summarization provider request failed",
	},
	CodeAssembly: {
		Code:        CodeAssembly,
		Retryable:   false,
		Description: "Transcript assembly aborted",
	},
}

// Retryable reports whether the code's failure class is potentially
// transient. Unknown codes are treated as not retryable.
func (c Code) Retryable() bool {
	info, ok := Registry[c]
	return ok && info.Retryable
}
