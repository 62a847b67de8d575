package config

import "fmt"

type Config struct {
	Whisper    WhisperConfig     `yaml:"whisper"`
	Chunking   ChunkingConfig    `yaml:"chunking"`
	Summarizer SummarizerConfig  `yaml:"summarizer"`
	Paths      PathsConfig       `yaml:"paths"`
	Logging    LoggingConfig     `yaml:"logging"`
	Watcher    WatcherConfig     `yaml:"watcher"`
	Retention  RetentionConfig   `yaml:"retention"`
	// Replacements overrides or extends the built-in misrecognition table.
	Replacements map[string]string `yaml:"replacements"`

	// OpenAIAPIKey is resolved from the environment, never from the file.
	OpenAIAPIKey string `yaml:"-"`
	// GeminiAPIKey is only required when summarizer.provider is "gemini".
	GeminiAPIKey string `yaml:"-"`
}

type WhisperConfig struct {
	Model     string `yaml:"model"`
	Language  string `yaml:"language"`
	Prompt    string `yaml:"prompt"`
	MaxFileMB int64  `yaml:"max_file_mb"`
}

type ChunkingConfig struct {
	SafetyMargin float64 `yaml:"safety_margin"`
	MinChunkMS   int64   `yaml:"min_chunk_ms"`
	MinViableMS  int64   `yaml:"min_viable_ms"`
	ShrinkFactor float64 `yaml:"shrink_factor"`
	Bitrate      string  `yaml:"bitrate"`
}

type SummarizerConfig struct {
	Provider    string `yaml:"provider"`
	OpenAIModel string `yaml:"openai_model"`
	GeminiModel string `yaml:"gemini_model"`
}

type PathsConfig struct {
	Inbox  string `yaml:"inbox"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type WatcherConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type RetentionConfig struct {
	Days int `yaml:"days"`
}

// CeilingBytes is the transcription provider's hard payload limit.
func (c *Config) CeilingBytes() int64 {
	return c.Whisper.MaxFileMB * 1024 * 1024
}

func (c *Config) Validate() error {
	if c.Paths.Inbox == "" {
		return fmt.Errorf("paths.inbox is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "whisper-1"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "ja"
	}
	if c.Whisper.Prompt == "" {
		c.Whisper.Prompt = defaultWhisperPrompt
	}
	if c.Whisper.MaxFileMB == 0 {
		c.Whisper.MaxFileMB = 25
	}
	if c.Chunking.SafetyMargin == 0 {
		c.Chunking.SafetyMargin = 0.9
	}
	if c.Chunking.MinChunkMS == 0 {
		c.Chunking.MinChunkMS = 30_000
	}
	if c.Chunking.MinViableMS == 0 {
		c.Chunking.MinViableMS = 15_000
	}
	if c.Chunking.ShrinkFactor == 0 {
		c.Chunking.ShrinkFactor = 0.8
	}
	if c.Chunking.Bitrate == "" {
		c.Chunking.Bitrate = "128k"
	}
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = "openai"
	}
	if c.Summarizer.Provider != "openai" && c.Summarizer.Provider != "gemini" {
		return fmt.Errorf("summarizer.provider must be openai or gemini, got %q", c.Summarizer.Provider)
	}
	if c.Summarizer.OpenAIModel == "" {
		c.Summarizer.OpenAIModel = "gpt-4o-mini"
	}
	if c.Summarizer.GeminiModel == "" {
		c.Summarizer.GeminiModel = "gemini-2.5-flash"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Watcher.MaxConcurrent == 0 {
		c.Watcher.MaxConcurrent = 2
	}
	if c.Retention.Days == 0 {
		c.Retention.Days = 90
	}

	return nil
}

// defaultWhisperPrompt primes the recognizer with meeting vocabulary to
// improve accuracy on agenda items, decisions, owners and deadlines.
const defaultWhisperPrompt = "これは日本語の会議音声です。議事録として文字起こしを行います。" +
	"参加者の発言をできるだけ正確に文字起こしてください。" +
	"アジェンダ、決定事項、タスク、期限、担当者などの情報を正確に記録してください。"
