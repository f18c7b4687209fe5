package cliconfig

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config but uses strings for durations so files stay readable.
// Pointer fields distinguish an explicit zero from an absent key.
type FileConfig struct {
	InputDir        string `toml:"input_dir" yaml:"input_dir"`
	OutputDir       string `toml:"output_dir" yaml:"output_dir"`
	FramePath       string `toml:"frame_path" yaml:"frame_path"`
	PrinterA        string `toml:"printer_a" yaml:"printer_a"`
	PrinterB        string `toml:"printer_b" yaml:"printer_b"`
	SyncTool        string `toml:"sync_tool" yaml:"sync_tool"`
	SyncBatch       string `toml:"sync_batch" yaml:"sync_batch"`
	SyncInterval    string `toml:"sync_interval" yaml:"sync_interval"`
	PollTimeout     string `toml:"poll_timeout" yaml:"poll_timeout"`
	OpenAttempts    int    `toml:"open_attempts" yaml:"open_attempts"`
	OpenInterval    string `toml:"open_interval" yaml:"open_interval"`
	JPEGQuality     int    `toml:"jpeg_quality" yaml:"jpeg_quality"`
	Backend         string `toml:"backend" yaml:"backend"`
	SpoolDir        string `toml:"spool_dir" yaml:"spool_dir"`
	StateDir        string `toml:"state_dir" yaml:"state_dir"`
	LPPath          string `toml:"lp_path" yaml:"lp_path"`
	LPStatPath      string `toml:"lpstat_path" yaml:"lpstat_path"`
	PageWidth       int    `toml:"page_width_px" yaml:"page_width_px"`
	PageHeight      int    `toml:"page_height_px" yaml:"page_height_px"`
	PrintableWidth  int    `toml:"printable_width_px" yaml:"printable_width_px"`
	PrintableHeight int    `toml:"printable_height_px" yaml:"printable_height_px"`
	OffsetX         *int   `toml:"offset_x_px" yaml:"offset_x_px"`
	OffsetY         *int   `toml:"offset_y_px" yaml:"offset_y_px"`
	LogLevel        string `toml:"log_level" yaml:"log_level"`
}

// LoadFileConfig reads and parses a config file from the given path.
// Files ending in .yaml or .yml are parsed as YAML, anything else as TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &fc)
	default:
		err = toml.Unmarshal(b, &fc)
	}
	if err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.framebooth/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".framebooth", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input-dir", fc.InputDir, &cfg.InputDir)
	s.setString("output-dir", fc.OutputDir, &cfg.OutputDir)
	s.setString("frame", fc.FramePath, &cfg.FramePath)
	s.setString("printer-a", fc.PrinterA, &cfg.PrinterA)
	s.setString("printer-b", fc.PrinterB, &cfg.PrinterB)
	s.setString("sync-tool", fc.SyncTool, &cfg.SyncTool)
	s.setString("sync-batch", fc.SyncBatch, &cfg.SyncBatch)
	s.setString("backend", fc.Backend, &cfg.Backend)
	s.setString("spool-dir", fc.SpoolDir, &cfg.SpoolDir)
	s.setString("state-dir", fc.StateDir, &cfg.StateDir)
	s.setString("lp-path", fc.LPPath, &cfg.LPPath)
	s.setString("lpstat-path", fc.LPStatPath, &cfg.LPStatPath)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("sync-interval", fc.SyncInterval, &cfg.SyncInterval); err != nil {
		return err
	}
	if err := s.setDuration("poll-timeout", fc.PollTimeout, &cfg.PollTimeout); err != nil {
		return err
	}
	if err := s.setDuration("open-interval", fc.OpenInterval, &cfg.OpenInterval); err != nil {
		return err
	}

	s.setInt("open-attempts", fc.OpenAttempts, &cfg.OpenAttempts)
	s.setInt("jpeg-quality", fc.JPEGQuality, &cfg.JPEGQuality)
	s.setInt("page-width", fc.PageWidth, &cfg.PageWidth)
	s.setInt("page-height", fc.PageHeight, &cfg.PageHeight)
	s.setInt("printable-width", fc.PrintableWidth, &cfg.PrintableWidth)
	s.setInt("printable-height", fc.PrintableHeight, &cfg.PrintableHeight)
	s.setIntPtr("offset-x", fc.OffsetX, &cfg.OffsetX)
	s.setIntPtr("offset-y", fc.OffsetY, &cfg.OffsetY)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
