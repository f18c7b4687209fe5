package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (FRAMEBOOTH_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input-dir", os.Getenv("FRAMEBOOTH_INPUT_DIR"), &cfg.InputDir)
	s.setString("output-dir", os.Getenv("FRAMEBOOTH_OUTPUT_DIR"), &cfg.OutputDir)
	s.setString("frame", os.Getenv("FRAMEBOOTH_FRAME_PATH"), &cfg.FramePath)
	s.setString("printer-a", os.Getenv("FRAMEBOOTH_PRINTER_A"), &cfg.PrinterA)
	s.setString("printer-b", os.Getenv("FRAMEBOOTH_PRINTER_B"), &cfg.PrinterB)
	s.setString("sync-tool", os.Getenv("FRAMEBOOTH_SYNC_TOOL"), &cfg.SyncTool)
	s.setString("sync-batch", os.Getenv("FRAMEBOOTH_SYNC_BATCH"), &cfg.SyncBatch)
	s.setString("backend", os.Getenv("FRAMEBOOTH_BACKEND"), &cfg.Backend)
	s.setString("spool-dir", os.Getenv("FRAMEBOOTH_SPOOL_DIR"), &cfg.SpoolDir)
	s.setString("state-dir", os.Getenv("FRAMEBOOTH_STATE_DIR"), &cfg.StateDir)
	s.setString("lp-path", os.Getenv("FRAMEBOOTH_LP_PATH"), &cfg.LPPath)
	s.setString("lpstat-path", os.Getenv("FRAMEBOOTH_LPSTAT_PATH"), &cfg.LPStatPath)
	s.setString("log-level", os.Getenv("FRAMEBOOTH_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("sync-interval", os.Getenv("FRAMEBOOTH_SYNC_INTERVAL"), &cfg.SyncInterval); err != nil {
		return err
	}
	if err := s.setDuration("poll-timeout", os.Getenv("FRAMEBOOTH_POLL_TIMEOUT"), &cfg.PollTimeout); err != nil {
		return err
	}
	if err := s.setDuration("open-interval", os.Getenv("FRAMEBOOTH_OPEN_INTERVAL"), &cfg.OpenInterval); err != nil {
		return err
	}

	ints := []struct {
		flag string
		env  string
		dst  *int
	}{
		{"open-attempts", "FRAMEBOOTH_OPEN_ATTEMPTS", &cfg.OpenAttempts},
		{"jpeg-quality", "FRAMEBOOTH_JPEG_QUALITY", &cfg.JPEGQuality},
		{"page-width", "FRAMEBOOTH_PAGE_WIDTH_PX", &cfg.PageWidth},
		{"page-height", "FRAMEBOOTH_PAGE_HEIGHT_PX", &cfg.PageHeight},
		{"printable-width", "FRAMEBOOTH_PRINTABLE_WIDTH_PX", &cfg.PrintableWidth},
		{"printable-height", "FRAMEBOOTH_PRINTABLE_HEIGHT_PX", &cfg.PrintableHeight},
		{"offset-x", "FRAMEBOOTH_OFFSET_X_PX", &cfg.OffsetX},
		{"offset-y", "FRAMEBOOTH_OFFSET_Y_PX", &cfg.OffsetY},
	}
	for _, v := range ints {
		if err := s.setIntFromString(v.flag, os.Getenv(v.env), v.dst); err != nil {
			return err
		}
	}

	return nil
}
