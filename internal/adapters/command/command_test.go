package command

import (
	"context"
	"errors"
	"reflect"
	"runtime"
	"testing"

	"github.com/bft-labs/framebooth/internal/domain"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls []call
	err   error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	return nil, f.err
}

func TestSyncTool_Run(t *testing.T) {
	tests := []struct {
		name     string
		batch    string
		err      error
		wantArgs []string
		wantErr  bool
	}{
		{name: "with batch", batch: `C:\sync\booth.ffs_batch`, wantArgs: []string{`C:\sync\booth.ffs_batch`}},
		{name: "without batch", wantArgs: nil},
		{name: "failure", batch: "b", err: errors.New("exit status 1"), wantArgs: []string{"b"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{err: tt.err}
			tool := NewSyncTool(runner, "FreeFileSync", tt.batch)

			err := tool.Run(context.Background())
			if tt.wantErr {
				if !errors.Is(err, domain.ErrSyncToolFailure) {
					t.Errorf("Run() error = %v, want ErrSyncToolFailure", err)
				}
			} else if err != nil {
				t.Errorf("Run() error = %v", err)
			}

			if len(runner.calls) != 1 {
				t.Fatalf("calls = %d, want 1", len(runner.calls))
			}
			if runner.calls[0].name != "FreeFileSync" {
				t.Errorf("tool = %q", runner.calls[0].name)
			}
			if !reflect.DeepEqual(runner.calls[0].args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", runner.calls[0].args, tt.wantArgs)
			}
		})
	}
}

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell")
	}
	r := NewExecRunner()

	out, err := r.Run(context.Background(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if string(out) != "hello\n" {
		t.Errorf("output = %q", out)
	}

	if _, err := r.Run(context.Background(), "sh", "-c", "echo broken >&2; exit 3"); err == nil {
		t.Error("Run() of failing command succeeded")
	}

	if _, err := r.Run(context.Background(), "framebooth-no-such-tool"); err == nil {
		t.Error("Run() of missing executable succeeded")
	}
}
