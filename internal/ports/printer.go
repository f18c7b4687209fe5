package ports

import (
	"context"
	"image"

	"github.com/bft-labs/framebooth/internal/domain"
)

// Printer is one print target. Implementations never rely on a process-wide
// default printer: every call is addressed to the printer the value represents.
type Printer interface {
	// ID returns the printer name used for selection and logging.
	ID() domain.PrinterID

	// Capabilities reports the printable area, physical page and offset in device pixels.
	// Returns an error wrapping domain.ErrPrinterUnavailable if the printer cannot be reached.
	Capabilities(ctx context.Context) (domain.Capabilities, error)

	// Submit renders the job's image into job.Geometry.Dest and prints one page.
	// Returns an error wrapping domain.ErrDeviceError on failure.
	Submit(ctx context.Context, job PrintJob) error
}

// PrintJob is a single page submission.
type PrintJob struct {
	// ID correlates the submission with the pending job that produced it
	ID string

	// Title is the document name shown in the printer queue
	Title string

	// Image is the opaque framed photo
	Image image.Image

	// Geometry places Image on the page
	Geometry domain.Geometry

	// Capabilities is the page description Geometry was computed against
	Capabilities domain.Capabilities
}
