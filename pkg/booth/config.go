package booth

import (
	"fmt"
	"time"

	"github.com/bft-labs/framebooth/internal/adapters/fs"
	"github.com/bft-labs/framebooth/internal/app"
	"github.com/bft-labs/framebooth/internal/domain"
)

// Printer backends.
const (
	BackendCUPS  = "cups"
	BackendSpool = "spool"
)

// DefaultSyncInterval is how often the external sync tool runs.
const DefaultSyncInterval = app.DefaultSyncInterval

// Config holds the configuration for a Booth.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// InputDir is watched for new photos. It is created if missing.
	InputDir string

	// OutputDir receives the framed copies under their original names.
	OutputDir string

	// FramePath is the overlay image; it is loaded once by New.
	FramePath string

	// StateDir holds status.json. Defaults to OutputDir.
	StateDir string

	// PrinterA and PrinterB are the alternated print queues, A first.
	PrinterA string
	PrinterB string

	// Backend selects how pages reach the printers: BackendCUPS or BackendSpool.
	// Ignored when printers are supplied with WithPrinters.
	Backend    string
	SpoolDir   string
	LPPath     string
	LPStatPath string

	// Page describes the paper in device pixels for both printers.
	Page Capabilities

	// SyncTool is run with SyncBatch as its only argument every SyncInterval.
	// Empty disables syncing.
	SyncTool     string
	SyncBatch    string
	SyncInterval time.Duration

	// PollTimeout bounds each wait for a directory change.
	PollTimeout time.Duration

	// OpenAttempts and OpenInterval bound retries on photos still being written.
	OpenAttempts int
	OpenInterval time.Duration

	// JPEGQuality is used when a framed copy is saved as JPEG.
	JPEGQuality int
}

// DefaultPage is a 4x6in postcard at 300dpi with a 24px unprintable margin.
func DefaultPage() Capabilities {
	return Capabilities{
		PrintableWidth:  1152,
		PrintableHeight: 1752,
		PageWidth:       1200,
		PageHeight:      1800,
		OffsetX:         24,
		OffsetY:         24,
	}
}

// DefaultConfig returns a Config with default values.
// InputDir, OutputDir and FramePath must be set before calling New.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills zero fields with default values.
func (c *Config) SetDefaults() {
	if c.StateDir == "" {
		c.StateDir = c.OutputDir
	}
	if c.Backend == "" {
		c.Backend = BackendCUPS
	}
	if c.LPPath == "" {
		c.LPPath = "lp"
	}
	if c.LPStatPath == "" {
		c.LPStatPath = "lpstat"
	}
	if c.Page == (Capabilities{}) {
		c.Page = DefaultPage()
	}
	if c.SyncInterval == 0 {
		c.SyncInterval = DefaultSyncInterval
	}
	if c.PollTimeout == 0 {
		c.PollTimeout = fs.DefaultPollTimeout
	}
	if c.OpenAttempts == 0 {
		c.OpenAttempts = app.DefaultOpenAttempts
	}
	if c.OpenInterval == 0 {
		c.OpenInterval = app.DefaultOpenInterval
	}
	if c.JPEGQuality == 0 {
		c.JPEGQuality = fs.DefaultJPEGQuality
	}
}

// Validate checks the configuration.
// Returns an error wrapping domain.ErrInvalidConfig.
func (c *Config) Validate() error {
	return c.validate(false)
}

func (c *Config) validate(printersInjected bool) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.InputDir == "" {
		return invalid("input dir is required")
	}
	if c.OutputDir == "" {
		return invalid("output dir is required")
	}
	if c.FramePath == "" {
		return invalid("frame path is required")
	}
	if c.PrinterA == "" || c.PrinterB == "" {
		return invalid("two printers are required")
	}
	if c.PrinterA == c.PrinterB {
		return invalid("printers must differ, both are %q", c.PrinterA)
	}
	if c.PollTimeout <= 0 {
		return invalid("poll timeout must be positive")
	}
	if c.OpenAttempts <= 0 || c.OpenInterval <= 0 {
		return invalid("open attempts and interval must be positive")
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return invalid("jpeg quality %d out of range 1..100", c.JPEGQuality)
	}
	if c.SyncTool != "" && c.SyncInterval <= 0 {
		return invalid("sync interval must be positive")
	}
	if printersInjected {
		return nil
	}

	switch c.Backend {
	case BackendCUPS:
	case BackendSpool:
		if c.SpoolDir == "" {
			return invalid("spool dir is required for the spool backend")
		}
	default:
		return invalid("unknown backend %q", c.Backend)
	}
	if c.Page.PrintableWidth <= 0 || c.Page.PrintableHeight <= 0 {
		return invalid("printable area must be positive")
	}
	return nil
}
