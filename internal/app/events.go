package app

import (
	"time"

	"github.com/bft-labs/framebooth/internal/domain"
)

// JobEventEmitter is notified about per-file outcomes.
// Calls are made synchronously from the loop goroutine.
type JobEventEmitter interface {
	OnPrinted(job domain.PendingJob, result DispatchResult)
	// OnPrintError reports a file that did not print. result.Printer is empty
	// when the file failed before a printer was selected.
	OnPrintError(job domain.PendingJob, result DispatchResult, err error)
}

// SyncEventEmitter is notified after every sync run.
type SyncEventEmitter interface {
	OnSync(err error, duration time.Duration)
}
