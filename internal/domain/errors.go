package domain

import "errors"

// Domain errors represent error conditions in the framebooth domain.
// They are wrapped with context by the layers above and can be checked with errors.Is.
var (
	// ErrUnreadableSource is returned when a source photo could not be opened
	// within the retry bound. The file is skipped.
	ErrUnreadableSource = errors.New("framebooth: unreadable source image")

	// ErrSyncToolFailure is returned when the external sync tool exits non-zero
	// or cannot be started.
	ErrSyncToolFailure = errors.New("framebooth: sync tool failed")

	// ErrPrinterUnavailable is returned when the selected printer is unknown or
	// cannot report its capabilities.
	ErrPrinterUnavailable = errors.New("framebooth: printer unavailable")

	// ErrDeviceError is returned when a print submission fails on the device.
	ErrDeviceError = errors.New("framebooth: printer device error")

	// ErrWatcherFatal is returned when the directory change notification handle
	// fails or the directory cannot be listed. It ends the main loop.
	ErrWatcherFatal = errors.New("framebooth: directory watcher failed")

	// ErrInvalidImage is returned when an image has no pixels to place.
	ErrInvalidImage = errors.New("framebooth: invalid image dimensions")

	// ErrAlreadyRunning is returned when Start() is called on a running instance.
	ErrAlreadyRunning = errors.New("framebooth: already running")

	// ErrNotRunning is returned when Stop() is called on a stopped instance.
	ErrNotRunning = errors.New("framebooth: not running")

	// ErrShutdownTimeout is returned when graceful shutdown times out.
	ErrShutdownTimeout = errors.New("framebooth: shutdown timeout")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("framebooth: invalid configuration")
)
