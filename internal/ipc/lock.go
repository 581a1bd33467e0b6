package ipc

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"searchmenu/internal/logging"
)

const lockRetryDelay = 10 * time.Millisecond

// acquireLock takes the dispatch lock at path, waiting up to timeout. It
// always returns a release func; when the lock cannot be taken the send
// goes ahead unlocked.
func acquireLock(ctx context.Context, path string, timeout time.Duration, logger *slog.Logger) func() {
	if path == "" {
		return func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Warn("dispatch lock unavailable", logging.String("lock_file", path), logging.Error(err))
		return func() {}
	}

	lock := flock.New(path)
	var locked bool
	var err error
	if timeout <= 0 {
		locked, err = lock.TryLock()
	} else {
		lockCtx, cancel := context.WithTimeout(ctx, timeout)
		locked, err = lock.TryLockContext(lockCtx, lockRetryDelay)
		cancel()
	}
	if err != nil || !locked {
		if err == nil {
			err = context.DeadlineExceeded
		}
		logger.Warn("dispatch lock not acquired; sending without it",
			logging.String("lock_file", path),
			logging.Error(err),
		)
		return func() {}
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			logger.Debug("release dispatch lock", logging.Error(err))
		}
	}
}
