package booth

import (
	"time"

	"github.com/bft-labs/framebooth/internal/app"
	"github.com/bft-labs/framebooth/internal/domain"
)

// State is the lifecycle state of a Booth.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
	StateCrashed
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateStarting:
		return "Starting"
	case StateRunning:
		return "Running"
	case StateStopping:
		return "Stopping"
	case StateCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// StateChangeEvent is emitted on every lifecycle transition.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// PrintedEvent is emitted after a framed photo was submitted to a printer.
type PrintedEvent struct {
	JobID      string
	File       string
	OutputPath string
	Printer    PrinterID
	Geometry   Geometry
}

// PrintErrorEvent is emitted when a photo was not printed.
// Printer is empty if the photo could not be framed.
type PrintErrorEvent struct {
	JobID   string
	File    string
	Printer PrinterID
	Error   error
}

// SyncEvent is emitted after each run of the sync tool.
type SyncEvent struct {
	Error    error
	Duration time.Duration
}

// EventHandler receives booth events. Embed BaseEventHandler to implement
// only the methods you need.
type EventHandler interface {
	OnStateChange(event StateChangeEvent)
	OnPrinted(event PrintedEvent)
	OnPrintError(event PrintErrorEvent)
	OnSync(event SyncEvent)
}

// BaseEventHandler implements EventHandler with no-ops.
type BaseEventHandler struct{}

func (BaseEventHandler) OnStateChange(StateChangeEvent) {}
func (BaseEventHandler) OnPrinted(PrintedEvent)         {}
func (BaseEventHandler) OnPrintError(PrintErrorEvent)   {}
func (BaseEventHandler) OnSync(SyncEvent)               {}

// eventEmitterWrapper adapts EventHandler to the internal emitter interfaces.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnStateChange(previous, current app.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: convertState(previous),
		Current:  convertState(current),
		Reason:   reason,
	})
}

func (e *eventEmitterWrapper) OnPrinted(job domain.PendingJob, result app.DispatchResult) {
	if e.handler == nil {
		return
	}
	e.handler.OnPrinted(PrintedEvent{
		JobID:      job.ID,
		File:       job.Name,
		OutputPath: job.DestPath,
		Printer:    result.Printer,
		Geometry:   result.Geometry,
	})
}

func (e *eventEmitterWrapper) OnPrintError(job domain.PendingJob, result app.DispatchResult, err error) {
	if e.handler == nil {
		return
	}
	e.handler.OnPrintError(PrintErrorEvent{
		JobID:   job.ID,
		File:    job.Name,
		Printer: result.Printer,
		Error:   err,
	})
}

func (e *eventEmitterWrapper) OnSync(err error, duration time.Duration) {
	if e.handler == nil {
		return
	}
	e.handler.OnSync(SyncEvent{Error: err, Duration: duration})
}

func convertState(s app.State) State {
	switch s {
	case app.StateStopped:
		return StateStopped
	case app.StateStarting:
		return StateStarting
	case app.StateRunning:
		return StateRunning
	case app.StateStopping:
		return StateStopping
	case app.StateCrashed:
		return StateCrashed
	default:
		return StateStopped
	}
}
