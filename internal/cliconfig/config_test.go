package cliconfig

import (
	"testing"
	"time"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.InputDir = "/booth/in"
	cfg.OutputDir = "/booth/out"
	cfg.FramePath = "/booth/frame.png"
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SyncInterval != 2*time.Second {
		t.Errorf("SyncInterval = %v, want 2s", cfg.SyncInterval)
	}
	if cfg.PollTimeout != 500*time.Millisecond {
		t.Errorf("PollTimeout = %v, want 500ms", cfg.PollTimeout)
	}
	if cfg.OpenAttempts != 10 || cfg.OpenInterval != 500*time.Millisecond {
		t.Errorf("open retry = %d x %v, want 10 x 500ms", cfg.OpenAttempts, cfg.OpenInterval)
	}
	if cfg.JPEGQuality != 95 {
		t.Errorf("JPEGQuality = %d, want 95", cfg.JPEGQuality)
	}
	if cfg.Backend != BackendCUPS {
		t.Errorf("Backend = %q, want cups", cfg.Backend)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid defaults", mutate: func(c *Config) {}},
		{name: "missing input dir", mutate: func(c *Config) { c.InputDir = "" }, wantErr: true},
		{name: "missing output dir", mutate: func(c *Config) { c.OutputDir = "" }, wantErr: true},
		{name: "missing frame", mutate: func(c *Config) { c.FramePath = "" }, wantErr: true},
		{name: "missing printer", mutate: func(c *Config) { c.PrinterB = "" }, wantErr: true},
		{name: "same printer twice", mutate: func(c *Config) { c.PrinterB = c.PrinterA }, wantErr: true},
		{name: "zero poll timeout", mutate: func(c *Config) { c.PollTimeout = 0 }, wantErr: true},
		{name: "zero open attempts", mutate: func(c *Config) { c.OpenAttempts = 0 }, wantErr: true},
		{name: "zero open interval", mutate: func(c *Config) { c.OpenInterval = 0 }, wantErr: true},
		{name: "quality too high", mutate: func(c *Config) { c.JPEGQuality = 101 }, wantErr: true},
		{name: "quality zero", mutate: func(c *Config) { c.JPEGQuality = 0 }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.Backend = "gdi" }, wantErr: true},
		{name: "spool without dir", mutate: func(c *Config) { c.Backend = BackendSpool }, wantErr: true},
		{name: "spool with dir", mutate: func(c *Config) { c.Backend = BackendSpool; c.SpoolDir = "/spool" }},
		{name: "sync tool with zero interval", mutate: func(c *Config) { c.SyncTool = "ffs"; c.SyncInterval = 0 }, wantErr: true},
		{name: "no sync tool ignores interval", mutate: func(c *Config) { c.SyncInterval = 0 }},
		{name: "page smaller than printable", mutate: func(c *Config) { c.PageWidth = 100 }, wantErr: true},
		{name: "zero printable height", mutate: func(c *Config) { c.PrintableHeight = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_StateDirDefaultsToOutput(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.StateDir != cfg.OutputDir {
		t.Errorf("StateDir = %q, want %q", cfg.StateDir, cfg.OutputDir)
	}

	cfg = validConfig()
	cfg.StateDir = "/var/lib/framebooth"
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.StateDir != "/var/lib/framebooth" {
		t.Errorf("StateDir overwritten: %q", cfg.StateDir)
	}
}

func TestLogger(t *testing.T) {
	if _, err := Logger("debug"); err != nil {
		t.Errorf("Logger(debug) error = %v", err)
	}
	if _, err := Logger(""); err != nil {
		t.Errorf("Logger(\"\") error = %v", err)
	}
	if _, err := Logger("chatty"); err == nil {
		t.Error("Logger(chatty) succeeded")
	}
}
