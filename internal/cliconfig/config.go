package cliconfig

import (
	"fmt"
	"strconv"
	"time"
)

// Backend names accepted by Config.Backend.
const (
	BackendCUPS  = "cups"
	BackendSpool = "spool"
)

// Config holds CLI configuration for framebooth.
type Config struct {
	InputDir  string
	OutputDir string
	FramePath string

	PrinterA string
	PrinterB string

	SyncTool     string
	SyncBatch    string
	SyncInterval time.Duration

	PollTimeout  time.Duration
	OpenAttempts int
	OpenInterval time.Duration
	JPEGQuality  int

	Backend    string
	SpoolDir   string
	StateDir   string
	LPPath     string
	LPStatPath string

	PageWidth       int
	PageHeight      int
	PrintableWidth  int
	PrintableHeight int
	OffsetX         int
	OffsetY         int

	LogLevel string
}

// DefaultConfig returns a Config with default values.
// The page profile is a 4x6in postcard at 300dpi.
func DefaultConfig() Config {
	return Config{
		PrinterA:        "canon_selphy_1",
		PrinterB:        "canon_selphy_2",
		SyncInterval:    2 * time.Second,
		PollTimeout:     500 * time.Millisecond,
		OpenAttempts:    10,
		OpenInterval:    500 * time.Millisecond,
		JPEGQuality:     95,
		Backend:         BackendCUPS,
		LPPath:          "lp",
		LPStatPath:      "lpstat",
		PageWidth:       1200,
		PageHeight:      1800,
		PrintableWidth:  1152,
		PrintableHeight: 1752,
		OffsetX:         24,
		OffsetY:         24,
		LogLevel:        "info",
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input-dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output-dir is required")
	}
	if c.FramePath == "" {
		return fmt.Errorf("frame is required")
	}

	if c.PrinterA == "" || c.PrinterB == "" {
		return fmt.Errorf("printer-a and printer-b are required")
	}
	if c.PrinterA == c.PrinterB {
		return fmt.Errorf("printer-a and printer-b must differ")
	}

	if c.StateDir == "" {
		c.StateDir = c.OutputDir
	}

	if c.SyncTool != "" && c.SyncInterval <= 0 {
		return fmt.Errorf("sync interval must be positive")
	}
	if c.PollTimeout <= 0 {
		return fmt.Errorf("poll timeout must be positive")
	}
	if c.OpenAttempts <= 0 {
		return fmt.Errorf("open attempts must be positive")
	}
	if c.OpenInterval <= 0 {
		return fmt.Errorf("open interval must be positive")
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality must be between 1 and 100")
	}

	switch c.Backend {
	case BackendCUPS:
	case BackendSpool:
		if c.SpoolDir == "" {
			return fmt.Errorf("spool-dir is required for the spool backend")
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}

	if c.PrintableWidth <= 0 || c.PrintableHeight <= 0 {
		return fmt.Errorf("printable area must be positive")
	}
	if c.PageWidth < c.PrintableWidth || c.PageHeight < c.PrintableHeight {
		return fmt.Errorf("page must be at least as large as the printable area")
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntPtr sets an int value from a pointer, so zero can be configured explicitly.
func (s *configSetter) setIntPtr(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings. Zero is accepted.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}
