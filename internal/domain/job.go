package domain

import "time"

// PendingJob is one detected photo on its way to the printer.
// It lives only for the duration of a single loop iteration.
type PendingJob struct {
	// ID identifies the job in logs and spool file names
	ID string

	// Name is the filename as reported by the watcher
	Name string

	// SourcePath is the photo in the input directory
	SourcePath string

	// DestPath is where the framed image is written
	DestPath string

	// DetectedAt is when the watcher reported the file
	DetectedAt time.Time
}

// PrinterID names a printer as known to the print subsystem (e.g. a CUPS queue).
type PrinterID string

// String returns the printer name.
func (p PrinterID) String() string {
	return string(p)
}
