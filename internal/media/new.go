package media

import (
	"github.com/ktnakamura/minutes-flow/internal/logger"
	"github.com/ktnakamura/minutes-flow/pkg/executor"
)

type implMedia struct {
	executor executor.Executor
	logger   logger.Logger
	bitrate  string
}

// New creates a Media instance. bitrate is the target audio bitrate for
// chunk exports (e.g. "128k").
func New(exec executor.Executor, log logger.Logger, bitrate string) Media {
	return &implMedia{
		executor: exec,
		logger:   log,
		bitrate:  bitrate,
	}
}
