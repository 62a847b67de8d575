package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Inbox:  "data/inbox",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing inbox",
			config: Config{
				Paths: PathsConfig{Output: "data/output"},
			},
			wantErr: true,
		},
		{
			name: "missing output",
			config: Config{
				Paths: PathsConfig{Inbox: "data/inbox"},
			},
			wantErr: true,
		},
		{
			name: "unknown summarizer provider",
			config: Config{
				Paths:      PathsConfig{Inbox: "data/inbox", Output: "data/output"},
				Summarizer: SummarizerConfig{Provider: "claude"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{Inbox: "in", Output: "out"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.Model != "whisper-1" {
		t.Errorf("Whisper.Model = %q, want whisper-1", cfg.Whisper.Model)
	}
	if cfg.Whisper.MaxFileMB != 25 {
		t.Errorf("Whisper.MaxFileMB = %d, want 25", cfg.Whisper.MaxFileMB)
	}
	if cfg.CeilingBytes() != 25*1024*1024 {
		t.Errorf("CeilingBytes() = %d, want %d", cfg.CeilingBytes(), 25*1024*1024)
	}
	if cfg.Chunking.SafetyMargin != 0.9 {
		t.Errorf("Chunking.SafetyMargin = %v, want 0.9", cfg.Chunking.SafetyMargin)
	}
	if cfg.Chunking.MinChunkMS != 30_000 || cfg.Chunking.MinViableMS != 15_000 {
		t.Errorf("chunk duration floors = %d/%d, want 30000/15000",
			cfg.Chunking.MinChunkMS, cfg.Chunking.MinViableMS)
	}
	if cfg.Summarizer.Provider != "openai" || cfg.Summarizer.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("summarizer defaults = %q/%q", cfg.Summarizer.Provider, cfg.Summarizer.OpenAIModel)
	}
	if cfg.Retention.Days != 90 {
		t.Errorf("Retention.Days = %d, want 90", cfg.Retention.Days)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  language: "ja"
  max_file_mb: 25

summarizer:
  provider: "gemini"

paths:
  inbox: "data/inbox"
  output: "data/output"

logging:
  level: "debug"

replacements:
  "配客状況": "廃却状況"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Summarizer.Provider != "gemini" {
		t.Errorf("Provider = %v, want gemini", cfg.Summarizer.Provider)
	}
	if cfg.Paths.Inbox != "data/inbox" {
		t.Errorf("Inbox = %v, want data/inbox", cfg.Paths.Inbox)
	}
	if cfg.Replacements["配客状況"] != "廃却状況" {
		t.Errorf("Replacements not loaded: %v", cfg.Replacements)
	}
	if cfg.Whisper.Prompt == "" {
		t.Error("default whisper prompt should be filled in")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
