package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/ktnakamura/minutes-flow/internal/logger"
)

// New creates a Watcher over inboxDir. maxConcurrent bounds how many
// recordings are processed at once; each individual recording still runs
// through the pipeline sequentially.
func New(inboxDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inboxDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		inboxDir:  inboxDir,
		handler:   handler,
		logger:    log,
		watcher:   fsw,
		semaphore: make(chan struct{}, maxConcurrent),
	}, nil
}
