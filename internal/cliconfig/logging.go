package cliconfig

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bft-labs/framebooth/pkg/log"
)

// Logger returns a console logger filtered at the named level.
// An empty level means info.
func Logger(level string) (zerolog.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return log.NewConsoleLogger(zerolog.InfoLevel), fmt.Errorf("parse log-level: %w", err)
	}
	return log.NewConsoleLogger(lvl), nil
}
