package printer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bft-labs/framebooth/internal/domain"
	"github.com/bft-labs/framebooth/internal/ports"
)

// CUPSConfig holds the client programs used to reach a CUPS queue.
type CUPSConfig struct {
	LPPath     string
	LPStatPath string

	// TempDir holds rendered pages until lp has read them; empty uses os.TempDir
	TempDir string
}

// CUPSPrinter addresses one named CUPS queue. Every submission names its queue
// explicitly with -d; the system default destination is never changed.
type CUPSPrinter struct {
	id     domain.PrinterID
	caps   domain.Capabilities
	cfg    CUPSConfig
	runner ports.CommandRunner
	store  ports.ImageStore
	logger ports.Logger
}

// NewCUPSPrinter creates a printer for the queue named id.
func NewCUPSPrinter(id domain.PrinterID, caps domain.Capabilities, cfg CUPSConfig, runner ports.CommandRunner, store ports.ImageStore, logger ports.Logger) *CUPSPrinter {
	if cfg.LPPath == "" {
		cfg.LPPath = "lp"
	}
	if cfg.LPStatPath == "" {
		cfg.LPStatPath = "lpstat"
	}
	return &CUPSPrinter{id: id, caps: caps, cfg: cfg, runner: runner, store: store, logger: logger}
}

// ID returns the queue name.
func (p *CUPSPrinter) ID() domain.PrinterID { return p.id }

// Capabilities checks that the queue exists and returns the configured page profile.
func (p *CUPSPrinter) Capabilities(ctx context.Context) (domain.Capabilities, error) {
	if _, err := p.runner.Run(ctx, p.cfg.LPStatPath, "-p", string(p.id)); err != nil {
		return domain.Capabilities{}, fmt.Errorf("%w: %s: %v", domain.ErrPrinterUnavailable, p.id, err)
	}
	return p.caps, nil
}

// Submit renders the full page to a temporary PNG and hands it to lp at 100% scaling.
func (p *CUPSPrinter) Submit(ctx context.Context, job ports.PrintJob) error {
	dir := p.cfg.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, fmt.Sprintf("framebooth-%s.png", job.ID))
	if err := p.store.Save(path, RenderPage(job)); err != nil {
		return fmt.Errorf("%w: render page: %v", domain.ErrDeviceError, err)
	}
	defer os.Remove(path)

	title := job.Title
	if title == "" {
		title = job.ID
	}
	out, err := p.runner.Run(ctx, p.cfg.LPPath,
		"-d", string(p.id),
		"-t", title,
		"-o", "scaling=100",
		path,
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrDeviceError, p.id, err)
	}

	p.logger.Debug("submitted to cups",
		ports.String("printer", string(p.id)),
		ports.String("job_id", job.ID),
		ports.String("lp", strings.TrimSpace(string(out))),
	)
	return nil
}
