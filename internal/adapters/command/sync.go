package command

import (
	"context"
	"fmt"

	"github.com/bft-labs/framebooth/internal/domain"
	"github.com/bft-labs/framebooth/internal/ports"
)

// SyncTool runs the configured synchronisation executable with its batch file.
// Only the exit status is observed.
type SyncTool struct {
	runner ports.CommandRunner
	tool   string
	batch  string
}

// NewSyncTool creates a SyncTool. An empty batch runs the tool without arguments.
func NewSyncTool(runner ports.CommandRunner, tool, batch string) *SyncTool {
	return &SyncTool{runner: runner, tool: tool, batch: batch}
}

// Run invokes the tool once and waits for it to finish.
func (s *SyncTool) Run(ctx context.Context) error {
	var args []string
	if s.batch != "" {
		args = append(args, s.batch)
	}
	if _, err := s.runner.Run(ctx, s.tool, args...); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSyncToolFailure, err)
	}
	return nil
}
