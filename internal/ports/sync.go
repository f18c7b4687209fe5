package ports

import "context"

// SyncRunner runs the external folder synchronisation once.
// Only success or failure is observed; output is not parsed.
type SyncRunner interface {
	Run(ctx context.Context) error
}

// CommandRunner runs an external executable and returns its combined output.
// A non-nil error means the process could not start or exited non-zero.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
