// Package framebooth frames and prints photo booth pictures as they arrive.
//
// Example usage:
//
//	cfg := framebooth.DefaultConfig()
//	cfg.InputDir = "/srv/booth/camera"
//	cfg.OutputDir = "/srv/booth/framed"
//	cfg.FramePath = "/srv/booth/frame.png"
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := framebooth.Run(ctx, cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// See package pkg/booth for the embeddable service with lifecycle control
// and event hooks.
package framebooth

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bft-labs/framebooth/pkg/booth"
	"github.com/bft-labs/framebooth/pkg/log"
)

// Config holds the configuration for the booth service.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = booth.Config

// Run starts the booth with the given configuration, logging to stderr.
// It blocks until the context is cancelled or the folder watch fails.
func Run(ctx context.Context, cfg Config) error {
	b, err := booth.New(cfg, booth.WithLogger(log.NewZerologAdapterWithLogger(Logger())))
	if err != nil {
		return err
	}
	return b.Run(ctx)
}

// DefaultConfig returns a Config with sensible default values.
// InputDir, OutputDir and FramePath must be set before calling Run.
func DefaultConfig() Config {
	return booth.DefaultConfig()
}

// Logger returns the console logger Run uses.
func Logger() zerolog.Logger {
	return log.NewConsoleLogger(zerolog.InfoLevel)
}
