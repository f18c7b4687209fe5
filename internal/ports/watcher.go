package ports

import (
	"context"

	"github.com/bft-labs/framebooth/internal/domain"
)

// ChangeWatcher reports filenames added to or removed from the watched directory.
// A ChangeWatcher owns an OS notification handle; Close must be called exactly
// once on every exit path and is safe to call more than once.
type ChangeWatcher interface {
	// Poll waits up to the configured timeout for a change. On timeout it returns
	// an empty Diff and leaves the stored listing unchanged.
	// Errors wrap domain.ErrWatcherFatal.
	Poll(ctx context.Context) (domain.Diff, error)

	// Close releases the notification handle.
	Close() error
}
