package app

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bft-labs/framebooth/internal/domain"
	"github.com/bft-labs/framebooth/internal/ports"
)

// JobComposer frames one pending job and returns the path of the framed image.
type JobComposer interface {
	ComposeJob(ctx context.Context, job domain.PendingJob) (string, error)
}

// JobDispatcher prints a framed image.
type JobDispatcher interface {
	Dispatch(ctx context.Context, imagePath string) (DispatchResult, error)
	NextPrinter() domain.PrinterID
}

// LoopConfig contains configuration for the main loop.
type LoopConfig struct {
	InputDir  string
	OutputDir string
}

// Loop drives the booth: each tick runs a due sync, waits for a directory
// change and frames then prints every added photo, one at a time.
//
// Sync and watching are independent. A file brought in by a sync may show up
// in the next poll or a later one; no ordering between them is guaranteed.
type Loop struct {
	config     LoopConfig
	watcher    ports.ChangeWatcher
	scheduler  *SyncScheduler
	composer   JobComposer
	dispatcher JobDispatcher
	statusRepo ports.StatusRepository
	clock      ports.Clock
	logger     ports.Logger
	emitter    JobEventEmitter

	status domain.Status
}

// NewLoop creates a loop. statusRepo and emitter may be nil.
// The loop takes ownership of watcher and closes it when Run returns.
func NewLoop(
	config LoopConfig,
	watcher ports.ChangeWatcher,
	scheduler *SyncScheduler,
	composer JobComposer,
	dispatcher JobDispatcher,
	statusRepo ports.StatusRepository,
	clock ports.Clock,
	logger ports.Logger,
	emitter JobEventEmitter,
) *Loop {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Loop{
		config:     config,
		watcher:    watcher,
		scheduler:  scheduler,
		composer:   composer,
		dispatcher: dispatcher,
		statusRepo: statusRepo,
		clock:      clock,
		logger:     logger,
		emitter:    emitter,
	}
}

// Run executes the loop until ctx is canceled or the watcher fails.
// The watcher is released on every exit path.
// Returns ctx.Err() on cancellation or an error wrapping domain.ErrWatcherFatal.
func (l *Loop) Run(ctx context.Context) error {
	defer func() {
		if err := l.watcher.Close(); err != nil {
			l.logger.Warn("failed to release directory watcher", ports.Err(err))
		}
	}()

	l.loadStatus(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if l.scheduler != nil {
			l.scheduler.MaybeRun(ctx, l.clock.Now())
		}

		diff, err := l.watcher.Poll(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.logger.Error("directory watcher failed", ports.Err(err))
			return err
		}

		l.handle(ctx, diff)
	}
}

// handle processes one diff: added images in diff order, then removals.
func (l *Loop) handle(ctx context.Context, diff domain.Diff) {
	if len(diff.Added) > 0 {
		l.logger.Info("new files", ports.Strings("files", diff.Added))
	}

	for _, name := range diff.Added {
		if !domain.IsImageName(name) {
			l.logger.Debug("ignoring non-image file", ports.String("file", name))
			continue
		}
		l.process(ctx, name)
	}

	if len(diff.Removed) > 0 {
		l.logger.Info("deleted files", ports.Strings("files", diff.Removed))
	}
}

// process frames and prints a single added file. Errors stay at file level.
func (l *Loop) process(ctx context.Context, name string) {
	job := domain.PendingJob{
		ID:         uuid.NewString(),
		Name:       name,
		SourcePath: filepath.Join(l.config.InputDir, name),
		DestPath:   filepath.Join(l.config.OutputDir, name),
		DetectedAt: l.clock.Now(),
	}

	framed, err := l.composer.ComposeJob(ctx, job)
	if err != nil {
		l.logger.Error("framing failed, skipping print",
			ports.String("job", job.ID),
			ports.String("file", name),
			ports.Err(err),
		)
		l.status.RecordSkipped(l.clock.Now())
		l.saveStatus(ctx)
		if l.emitter != nil {
			l.emitter.OnPrintError(job, DispatchResult{}, err)
		}
		return
	}

	res, err := l.dispatcher.Dispatch(ctx, framed)
	if err != nil {
		l.logger.Error("print failed",
			ports.String("job", job.ID),
			ports.String("file", name),
			ports.String("printer", res.Printer.String()),
			ports.Err(err),
		)
		l.status.RecordFailed(l.clock.Now())
		l.saveStatus(ctx)
		if l.emitter != nil {
			l.emitter.OnPrintError(job, res, err)
		}
		return
	}

	l.status.RecordPrinted(name, res.Printer, l.clock.Now())
	l.saveStatus(ctx)
	if l.emitter != nil {
		l.emitter.OnPrinted(job, res)
	}
}

// Status returns a copy of the counters kept by the loop.
// It must only be called from the goroutine running Run, or after Run returned.
func (l *Loop) Status() domain.Status {
	s := l.status
	s.NextPrinter = l.dispatcher.NextPrinter()
	return s
}

func (l *Loop) loadStatus(ctx context.Context) {
	if l.statusRepo == nil {
		return
	}
	st, err := l.statusRepo.Load(ctx)
	if err != nil {
		l.logger.Warn("failed to load status, starting fresh", ports.Err(err))
		return
	}
	l.status = st
}

func (l *Loop) saveStatus(ctx context.Context) {
	if l.statusRepo == nil {
		return
	}
	if err := l.statusRepo.Save(ctx, l.Status()); err != nil {
		l.logger.Warn("failed to save status", ports.Err(err))
	}
}
