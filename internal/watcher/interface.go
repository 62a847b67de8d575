package watcher

import "context"

// Watcher monitors the inbox directory for new recordings.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly arrived recording.
type EventHandler func(ctx context.Context, filePath string) error
