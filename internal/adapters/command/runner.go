// Package command runs external executables: the folder synchronisation tool
// and the CUPS client programs.
package command

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExecRunner implements ports.CommandRunner using os/exec.
type ExecRunner struct{}

// NewExecRunner creates an ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts name with args and waits for it to exit.
// The process is killed if ctx is cancelled first.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return out, fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return out, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}
