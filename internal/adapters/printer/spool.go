package printer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/framebooth/internal/domain"
	"github.com/bft-labs/framebooth/internal/ports"
)

// spoolTimeLayout sorts lexically in submission order.
const spoolTimeLayout = "20060102T150405.000"

// SpoolPrinter writes each rendered page as a PNG under <dir>/<printer>/.
type SpoolPrinter struct {
	id    domain.PrinterID
	caps  domain.Capabilities
	dir   string
	store ports.ImageStore
	clock ports.Clock
}

// NewSpoolPrinter creates a spool printer. A nil clock uses the wall clock.
func NewSpoolPrinter(id domain.PrinterID, caps domain.Capabilities, dir string, store ports.ImageStore, clock ports.Clock) *SpoolPrinter {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &SpoolPrinter{id: id, caps: caps, dir: dir, store: store, clock: clock}
}

// ID returns the printer name.
func (p *SpoolPrinter) ID() domain.PrinterID { return p.id }

// Dir returns the directory pages for this printer are written to.
func (p *SpoolPrinter) Dir() string {
	return filepath.Join(p.dir, string(p.id))
}

// Capabilities returns the configured page profile.
// The printer is unavailable if its spool directory cannot be created.
func (p *SpoolPrinter) Capabilities(ctx context.Context) (domain.Capabilities, error) {
	if err := os.MkdirAll(p.Dir(), 0o755); err != nil {
		return domain.Capabilities{}, fmt.Errorf("%w: %v", domain.ErrPrinterUnavailable, err)
	}
	return p.caps, nil
}

// Submit renders the page and saves it to the spool directory.
func (p *SpoolPrinter) Submit(ctx context.Context, job ports.PrintJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := fmt.Sprintf("%s-%s.png", p.clock.Now().UTC().Format(spoolTimeLayout), job.ID)
	if err := p.store.Save(filepath.Join(p.Dir(), name), RenderPage(job)); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrDeviceError, p.id, err)
	}
	return nil
}
