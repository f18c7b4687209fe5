package app

import (
	"context"
	"fmt"
	"time"

	"github.com/bft-labs/framebooth/internal/domain"
	"github.com/bft-labs/framebooth/internal/ports"
)

// DefaultSyncInterval is how often the external sync runs.
const DefaultSyncInterval = 2 * time.Second

// SyncScheduler fires the external sync on a fixed interval. It is checked
// from the main loop, so a slow print or file delays the next check.
type SyncScheduler struct {
	runner   ports.SyncRunner
	interval time.Duration
	lastRun  time.Time
	logger   ports.Logger
	emitter  SyncEventEmitter
}

// NewSyncScheduler creates a scheduler. A nil runner disables syncing.
func NewSyncScheduler(runner ports.SyncRunner, interval time.Duration, logger ports.Logger, emitter SyncEventEmitter) *SyncScheduler {
	return &SyncScheduler{
		runner:   runner,
		interval: interval,
		logger:   logger,
		emitter:  emitter,
	}
}

// MaybeRun runs the sync if it has never run or more than the interval has
// passed since the last run. lastRun moves to now whenever the sync fires,
// even if it fails; a failure is only logged and waits for the next interval.
func (s *SyncScheduler) MaybeRun(ctx context.Context, now time.Time) bool {
	if s.runner == nil {
		return false
	}
	if !s.lastRun.IsZero() && now.Sub(s.lastRun) <= s.interval {
		return false
	}
	s.lastRun = now

	start := time.Now()
	err := s.runner.Run(ctx)
	took := time.Since(start)
	if err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrSyncToolFailure, err)
		s.logger.Warn("sync failed", ports.Err(err), ports.Duration("duration", took))
	} else {
		s.logger.Debug("sync completed", ports.Duration("duration", took))
	}
	if s.emitter != nil {
		s.emitter.OnSync(err, took)
	}
	return true
}

// LastRun returns when the sync last fired, or the zero time.
func (s *SyncScheduler) LastRun() time.Time {
	return s.lastRun
}
