//go:build !windows

package watch

import (
	"errors"
	"syscall"
)

// isFatalError reports inotify resource exhaustion, after which the watcher
// cannot recover.
func isFatalError(err error) bool {
	return errors.Is(err, syscall.ENOSPC) ||
		errors.Is(err, syscall.EMFILE) ||
		errors.Is(err, syscall.ENFILE)
}
