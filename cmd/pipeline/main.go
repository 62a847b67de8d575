package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ktnakamura/minutes-flow/internal/chunker"
	"github.com/ktnakamura/minutes-flow/internal/config"
	"github.com/ktnakamura/minutes-flow/internal/exporter"
	"github.com/ktnakamura/minutes-flow/internal/logger"
	"github.com/ktnakamura/minutes-flow/internal/media"
	"github.com/ktnakamura/minutes-flow/internal/processor"
	"github.com/ktnakamura/minutes-flow/internal/summarizer"
	"github.com/ktnakamura/minutes-flow/internal/transcriber"
	"github.com/ktnakamura/minutes-flow/internal/watcher"
	"github.com/ktnakamura/minutes-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	// .env is optional; real environments set the variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Minutes Pipeline")
	log.Info(ctx, "========================================")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	med := media.New(exec, log, cfg.Chunking.Bitrate)

	client, err := transcriber.New(cfg, log)
	if err != nil {
		log.Error(ctx, "Transcriber unavailable: %v", err)
		os.Exit(1)
	}

	chunkExporter := chunker.NewExporter(med, log, chunker.Options{
		CeilingBytes: cfg.CeilingBytes(),
		SafetyMargin: cfg.Chunking.SafetyMargin,
		MinChunkMS:   cfg.Chunking.MinChunkMS,
		MinViableMS:  cfg.Chunking.MinViableMS,
		ShrinkFactor: cfg.Chunking.ShrinkFactor,
	})
	assembler := transcriber.NewAssembler(client, med, chunkExporter,
		cfg.CeilingBytes(), cfg.Paths.Temp, log)

	sum, err := summarizer.New(cfg, log)
	if err != nil {
		log.Error(ctx, "Summarizer unavailable: %v", err)
		os.Exit(1)
	}

	proc := processor.New(cfg, med, assembler, sum, log)

	if err := exporter.CleanupOld(ctx, cfg.Paths.Output, cfg.Retention.Days, log); err != nil {
		log.Warn(ctx, "Retention cleanup failed: %v", err)
	}

	handler := func(ctx context.Context, path string) error {
		_, err := proc.Process(ctx, processor.Request{RecordingPath: path})
		return err
	}

	w, err := watcher.New(cfg.Paths.Inbox, handler, log, cfg.Watcher.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Pipeline is ready")
	log.Info(ctx, "Inbox: %s", cfg.Paths.Inbox)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Transcription ceiling: %d MB", cfg.Whisper.MaxFileMB)
	log.Info(ctx, "Summarizer: %s", cfg.Summarizer.Provider)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Inbox,
		cfg.Paths.Output,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
