package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/framebooth/internal/domain"
	"github.com/bft-labs/framebooth/internal/ports"
)

// DefaultPollTimeout bounds each wait for a change so the loop stays
// responsive to the sync schedule when the directory is quiet.
const DefaultPollTimeout = 500 * time.Millisecond

// nameChanges are the events that can alter the directory listing.
const nameChanges = fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// DirectoryWatcher implements ports.ChangeWatcher on top of an fsnotify handle.
// It keeps the last listing of the directory and diffs against it whenever
// a file-name change is signalled.
type DirectoryWatcher struct {
	dir      string
	timeout  time.Duration
	fsw      *fsnotify.Watcher
	snapshot domain.Snapshot
	logger   ports.Logger

	closeOnce sync.Once
	closeErr  error
}

// OpenDirectoryWatcher lists dir and arms a change notification handle on it.
// The caller owns the returned watcher and must Close it.
func OpenDirectoryWatcher(dir string, timeout time.Duration, logger ports.Logger) (*DirectoryWatcher, error) {
	if timeout <= 0 {
		timeout = DefaultPollTimeout
	}

	names, err := listNames(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", domain.ErrWatcherFatal, dir, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: create watcher: %v", domain.ErrWatcherFatal, err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("%w: watch %s: %v", domain.ErrWatcherFatal, dir, err)
	}

	logger.Info("watching directory", ports.String("dir", dir), ports.Int("entries", len(names)))

	return &DirectoryWatcher{
		dir:      dir,
		timeout:  timeout,
		fsw:      fsw,
		snapshot: domain.NewSnapshot(names),
		logger:   logger,
	}, nil
}

// WaitForChange blocks until a file-name change is signalled, timeout passes,
// or ctx ends. It reports true when signalled. Events queued behind the
// signalling one are drained so the handle is re-armed for the next change.
func (w *DirectoryWatcher) WaitForChange(ctx context.Context, timeout time.Duration) (bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()

		case <-timer.C:
			return false, nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return false, fmt.Errorf("%w: event channel closed", domain.ErrWatcherFatal)
			}
			if event.Op&nameChanges == 0 {
				continue
			}
			w.drain()
			return true, nil

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return false, fmt.Errorf("%w: error channel closed", domain.ErrWatcherFatal)
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				// Events were lost; a fresh listing recovers them.
				w.logger.Warn("watch event overflow, rescanning", ports.String("dir", w.dir))
				w.drain()
				return true, nil
			}
			return false, fmt.Errorf("%w: %v", domain.ErrWatcherFatal, err)
		}
	}
}

// drain discards events already queued on the handle.
func (w *DirectoryWatcher) drain() {
	for {
		select {
		case _, ok := <-w.fsw.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// Poll waits for a change and reports the names added and removed since the
// previous listing. On timeout the stored listing is left as it is.
func (w *DirectoryWatcher) Poll(ctx context.Context) (domain.Diff, error) {
	changed, err := w.WaitForChange(ctx, w.timeout)
	if err != nil || !changed {
		return domain.Diff{}, err
	}

	names, err := listNames(w.dir)
	if err != nil {
		return domain.Diff{}, fmt.Errorf("%w: list %s: %v", domain.ErrWatcherFatal, w.dir, err)
	}
	next := domain.NewSnapshot(names)
	diff := w.snapshot.Diff(next)
	w.snapshot = next
	return diff, nil
}

// Snapshot returns the last known listing.
func (w *DirectoryWatcher) Snapshot() domain.Snapshot {
	return w.snapshot
}

// Close releases the notification handle. Only the first call has an effect.
func (w *DirectoryWatcher) Close() error {
	w.closeOnce.Do(func() {
		w.closeErr = w.fsw.Close()
	})
	return w.closeErr
}

func listNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
