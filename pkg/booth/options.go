package booth

import (
	"github.com/bft-labs/framebooth/internal/domain"
	"github.com/bft-labs/framebooth/internal/ports"
	"github.com/bft-labs/framebooth/pkg/log"
)

// Re-export types so callers can implement the ports without importing
// internal packages.
type (
	// Logger is the structured logging interface from pkg/log.
	Logger = log.Logger

	// LogField is a structured log field.
	LogField = log.Field

	// Printer is one print target.
	Printer = ports.Printer

	// PrintJob is a single page handed to a Printer.
	PrintJob = ports.PrintJob

	// PrinterID names a printer.
	PrinterID = domain.PrinterID

	// Capabilities describes a printer page in device pixels.
	Capabilities = domain.Capabilities

	// Geometry places an image on a page.
	Geometry = domain.Geometry

	// SyncRunner runs the external folder synchronisation once.
	SyncRunner = ports.SyncRunner

	// CommandRunner runs external executables.
	CommandRunner = ports.CommandRunner

	// Clock supplies the current time.
	Clock = ports.Clock

	// Status is the operator status persisted to status.json.
	Status = domain.Status
)

// Option configures optional behavior of Booth.
type Option func(*options)

// options holds the optional configuration for a Booth instance.
type options struct {
	logger        Logger
	eventHandler  EventHandler
	printers      []Printer
	syncRunner    SyncRunner
	commandRunner CommandRunner
	clock         Clock
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
		clock:  ports.SystemClock{},
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEventHandler sets a handler for booth events.
// Events are called synchronously from the loop goroutine.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithPrinters replaces the configured backend with two printers.
// a is used first. Config.PrinterA and PrinterB are taken from their IDs.
func WithPrinters(a, b Printer) Option {
	return func(o *options) {
		o.printers = []Printer{a, b}
	}
}

// WithSyncRunner replaces the configured sync tool.
func WithSyncRunner(runner SyncRunner) Option {
	return func(o *options) {
		o.syncRunner = runner
	}
}

// WithCommandRunner sets how the sync tool and the CUPS programs are executed.
// If not provided, commands run via os/exec.
func WithCommandRunner(runner CommandRunner) Option {
	return func(o *options) {
		o.commandRunner = runner
	}
}

// WithClock sets the time source for sync scheduling, status and spool names.
func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}
