package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bft-labs/framebooth/internal/domain"
	"github.com/bft-labs/framebooth/internal/ports"
)

// DispatchResult describes one dispatch attempt.
// Printer is set even when the attempt fails after selection.
type DispatchResult struct {
	Printer  domain.PrinterID
	JobID    string
	Geometry domain.Geometry
}

// Dispatcher sends framed images to the printer chosen by its selector and
// fits each image onto that printer's physical page.
type Dispatcher struct {
	selector PrinterSelector
	printers map[domain.PrinterID]ports.Printer
	store    ports.ImageStore
	logger   ports.Logger
}

// NewDispatcher creates a dispatcher over the given printers.
// Printers are addressed by their ID; the selector must only return IDs
// present in printers for a dispatch to reach a device.
func NewDispatcher(selector PrinterSelector, printers []ports.Printer, store ports.ImageStore, logger ports.Logger) *Dispatcher {
	byID := make(map[domain.PrinterID]ports.Printer, len(printers))
	for _, p := range printers {
		byID[p.ID()] = p
	}
	return &Dispatcher{
		selector: selector,
		printers: byID,
		store:    store,
		logger:   logger,
	}
}

// NextPrinter returns the printer the next dispatch will use.
func (d *Dispatcher) NextPrinter() domain.PrinterID {
	return d.selector.Peek()
}

// Dispatch prints imagePath on the next printer.
//
// Selection advances before anything can fail, so a failed attempt still
// moves the alternation on. Errors wrap domain.ErrPrinterUnavailable,
// domain.ErrDeviceError or domain.ErrInvalidImage.
func (d *Dispatcher) Dispatch(ctx context.Context, imagePath string) (DispatchResult, error) {
	id := d.selector.Next()
	res := DispatchResult{Printer: id, JobID: uuid.NewString()}

	printer, ok := d.printers[id]
	if !ok {
		return res, fmt.Errorf("%w: %s is not configured", domain.ErrPrinterUnavailable, id)
	}

	caps, err := printer.Capabilities(ctx)
	if err != nil {
		return res, fmt.Errorf("%w: %s: %v", domain.ErrPrinterUnavailable, id, err)
	}

	img, err := d.store.Load(imagePath)
	if err != nil {
		return res, fmt.Errorf("load %s: %w", imagePath, err)
	}
	opaque := Flatten(img)

	b := opaque.Bounds()
	geo, err := domain.ComputeGeometry(caps, b.Dx(), b.Dy())
	if err != nil {
		return res, err
	}
	res.Geometry = geo

	d.logger.Debug("print geometry",
		ports.String("printer", id.String()),
		ports.Float64("scale", geo.Scale),
		ports.Any("dest", geo.Dest),
	)

	job := ports.PrintJob{
		ID:           res.JobID,
		Title:        filepath.Base(imagePath),
		Image:        opaque,
		Geometry:     geo,
		Capabilities: caps,
	}
	if err := printer.Submit(ctx, job); err != nil {
		return res, fmt.Errorf("%w: %s: %v", domain.ErrDeviceError, id, err)
	}

	d.logger.Info("printed",
		ports.String("printer", id.String()),
		ports.String("file", job.Title),
		ports.String("job", job.ID),
	)
	return res, nil
}
