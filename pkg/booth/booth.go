package booth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/bft-labs/framebooth/internal/adapters/command"
	"github.com/bft-labs/framebooth/internal/adapters/fs"
	"github.com/bft-labs/framebooth/internal/adapters/printer"
	"github.com/bft-labs/framebooth/internal/app"
	"github.com/bft-labs/framebooth/internal/domain"
	"github.com/bft-labs/framebooth/internal/ports"
)

// Booth watches a folder for photos, frames each one and prints it on two
// printers in turn. Use New() to create an instance, then Start() or Run().
type Booth struct {
	config     Config
	opts       options
	lifecycle  *app.Lifecycle
	emitter    *eventEmitterWrapper
	store      *fs.ImageFileStore
	statusRepo *fs.StatusFileRepository
	compositor *app.Compositor
	dispatcher *app.Dispatcher
	scheduler  *app.SyncScheduler
	logger     ports.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	loopErr error
}

// New creates a Booth in StateStopped. The frame image is loaded here, so a
// missing or unreadable frame fails construction.
func New(cfg Config, opts ...Option) (*Booth, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = defaultOptions().logger
	}
	if o.clock == nil {
		o.clock = ports.SystemClock{}
	}

	injected := len(o.printers) == 2 && o.printers[0] != nil && o.printers[1] != nil
	if injected {
		cfg.PrinterA = string(o.printers[0].ID())
		cfg.PrinterB = string(o.printers[1].ID())
	}

	cfg.SetDefaults()
	if err := cfg.validate(injected); err != nil {
		return nil, err
	}

	logger := o.logger
	store := fs.NewImageFileStore(cfg.JPEGQuality)

	frame, err := store.Load(cfg.FramePath)
	if err != nil {
		return nil, fmt.Errorf("load frame %s: %w", cfg.FramePath, err)
	}

	runner := o.commandRunner
	if runner == nil {
		runner = command.NewExecRunner()
	}

	printers := o.printers
	if !injected {
		printers = buildPrinters(cfg, runner, store, o.clock, logger)
	}

	syncRunner := o.syncRunner
	if syncRunner == nil && cfg.SyncTool != "" {
		syncRunner = command.NewSyncTool(runner, cfg.SyncTool, cfg.SyncBatch)
	}

	emitter := &eventEmitterWrapper{handler: o.eventHandler}
	retry := app.RetryPolicy{MaxAttempts: cfg.OpenAttempts, Interval: cfg.OpenInterval}
	selector := app.NewAlternator(domain.PrinterID(cfg.PrinterA), domain.PrinterID(cfg.PrinterB))

	logger.Info("frame loaded",
		ports.String("frame", cfg.FramePath),
		ports.Int("width", frame.Bounds().Dx()),
		ports.Int("height", frame.Bounds().Dy()),
	)

	return &Booth{
		config:     cfg,
		opts:       o,
		lifecycle:  app.NewLifecycle(logger, emitter),
		emitter:    emitter,
		store:      store,
		statusRepo: fs.NewStatusFileRepository(cfg.StateDir),
		compositor: app.NewCompositor(frame, store, retry, logger),
		dispatcher: app.NewDispatcher(selector, printers, store, logger),
		scheduler:  app.NewSyncScheduler(syncRunner, cfg.SyncInterval, logger, emitter),
		logger:     logger,
	}, nil
}

func buildPrinters(cfg Config, runner ports.CommandRunner, store ports.ImageStore, clock ports.Clock, logger ports.Logger) []ports.Printer {
	ids := []domain.PrinterID{domain.PrinterID(cfg.PrinterA), domain.PrinterID(cfg.PrinterB)}
	out := make([]ports.Printer, 0, len(ids))
	for _, id := range ids {
		switch cfg.Backend {
		case BackendSpool:
			out = append(out, printer.NewSpoolPrinter(id, cfg.Page, cfg.SpoolDir, store, clock))
		default:
			out = append(out, printer.NewCUPSPrinter(id, cfg.Page, printer.CUPSConfig{
				LPPath:     cfg.LPPath,
				LPStatPath: cfg.LPStatPath,
			}, runner, store, logger))
		}
	}
	return out
}

// Start opens the input directory watch and runs the loop in the background.
// Returns ErrAlreadyRunning if already running, or the watcher error if the
// input directory cannot be watched.
func (b *Booth) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.lifecycle.CanStart() {
		return domain.ErrAlreadyRunning
	}
	if err := b.lifecycle.TransitionTo(app.StateStarting, "Start() called"); err != nil {
		return err
	}

	for _, dir := range []string{b.config.InputDir, b.config.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			_ = b.lifecycle.TransitionTo(app.StateCrashed, "create directories failed")
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	watcher, err := fs.OpenDirectoryWatcher(b.config.InputDir, b.config.PollTimeout, b.logger)
	if err != nil {
		_ = b.lifecycle.TransitionTo(app.StateCrashed, "watcher open failed")
		return err
	}

	loop := app.NewLoop(
		app.LoopConfig{InputDir: b.config.InputDir, OutputDir: b.config.OutputDir},
		watcher,
		b.scheduler,
		b.compositor,
		b.dispatcher,
		b.statusRepo,
		b.opts.clock,
		b.logger,
		b.emitter,
	)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	b.cancel = cancel
	b.done = done
	b.loopErr = nil

	b.lifecycle.AddWorker()
	go func() {
		defer close(done)
		defer b.lifecycle.WorkerDone()

		if err := b.lifecycle.TransitionTo(app.StateRunning, "loop starting"); err != nil {
			b.logger.Error("failed to transition to running", ports.Err(err))
			_ = watcher.Close()
			return
		}

		err := loop.Run(runCtx)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			b.logger.Error("loop error", ports.Err(err))
			b.mu.Lock()
			b.loopErr = err
			b.mu.Unlock()
			_ = b.lifecycle.TransitionTo(app.StateCrashed, err.Error())
		}
	}()

	return nil
}

// Stop cancels the loop and waits for it to return, up to app.ShutdownTimeout.
// Cancellation interrupts the folder wait, the open retries and any running
// sync or lp subprocess.
// Returns nil on graceful shutdown, ErrShutdownTimeout if forced.
func (b *Booth) Stop() error {
	b.mu.Lock()
	if !b.lifecycle.CanStop() {
		b.mu.Unlock()
		return domain.ErrNotRunning
	}
	if err := b.lifecycle.TransitionTo(app.StateStopping, "Stop() called"); err != nil {
		b.mu.Unlock()
		return err
	}
	if b.cancel != nil {
		b.cancel()
	}
	b.mu.Unlock()

	err := b.lifecycle.WaitWithTimeout(app.ShutdownTimeout)
	if err != nil {
		_ = b.lifecycle.TransitionTo(app.StateCrashed, "shutdown timeout")
	} else {
		_ = b.lifecycle.TransitionTo(app.StateStopped, "graceful shutdown")
	}
	return err
}

// Run starts the booth and blocks until ctx is done or the loop fails.
// It returns nil after a graceful stop and the loop error after a crash.
func (b *Booth) Run(ctx context.Context) error {
	if err := b.Start(ctx); err != nil {
		return err
	}

	b.mu.Lock()
	done := b.done
	b.mu.Unlock()

	select {
	case <-ctx.Done():
		return b.Stop()
	case <-done:
	}

	b.mu.Lock()
	err := b.loopErr
	b.mu.Unlock()
	if err != nil {
		return err
	}
	// The loop saw the cancellation first, or another goroutine called Stop.
	if b.lifecycle.CanStop() {
		return b.Stop()
	}
	return nil
}

// State returns the current lifecycle state.
// Safe to call concurrently from any goroutine.
func (b *Booth) State() State {
	return convertState(b.lifecycle.State())
}

// Status reads the operator status last written to status.json.
func (b *Booth) Status(ctx context.Context) (Status, error) {
	return b.statusRepo.Load(ctx)
}

// NextPrinter returns the printer the next photo will go to.
func (b *Booth) NextPrinter() PrinterID {
	return b.dispatcher.NextPrinter()
}

// Config returns the effective configuration after defaults.
func (b *Booth) Config() Config {
	return b.config
}
