package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies env vars",
			envVars: map[string]string{
				"FRAMEBOOTH_INPUT_DIR":    "/env/in",
				"FRAMEBOOTH_PRINTER_B":    "right",
				"FRAMEBOOTH_POLL_TIMEOUT": "250ms",
				"FRAMEBOOTH_JPEG_QUALITY": "80",
				"FRAMEBOOTH_OFFSET_Y_PX":  "0",
				"FRAMEBOOTH_BACKEND":      "spool",
			},
			changed: map[string]bool{},
			initial: Config{OffsetY: 24},
			expected: Config{
				InputDir:    "/env/in",
				PrinterB:    "right",
				PollTimeout: 250 * time.Millisecond,
				JPEGQuality: 80,
				OffsetY:     0,
				Backend:     BackendSpool,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"FRAMEBOOTH_INPUT_DIR":  "/env/in",
				"FRAMEBOOTH_OUTPUT_DIR": "/env/out",
			},
			changed:  map[string]bool{"input-dir": true},
			initial:  Config{InputDir: "/flag/in"},
			expected: Config{InputDir: "/flag/in", OutputDir: "/env/out"},
		},
		{
			name:    "invalid duration",
			envVars: map[string]string{"FRAMEBOOTH_SYNC_INTERVAL": "often"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "invalid int",
			envVars: map[string]string{"FRAMEBOOTH_OPEN_ATTEMPTS": "many"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("got %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
