package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/framebooth/internal/cliconfig"
	"github.com/bft-labs/framebooth/pkg/booth"
	"github.com/bft-labs/framebooth/pkg/log"
)

const helpDescription = `
Frame and print photo booth pictures as they arrive.

  - Watches a folder the camera syncs into and frames every new photo.
  - Saves the framed copy and prints it, alternating between two printers.
  - Runs an external sync tool on a fixed interval.
  - Configure via file (~/.framebooth/config.toml), FRAMEBOOTH_* env, or flags.
`

var exampleUsage = strings.TrimSpace(`
  framebooth --input-dir ~/booth/camera --output-dir ~/booth/framed --frame ~/booth/frame.png
  framebooth --config ~/booth/booth.yaml --backend spool --spool-dir /tmp/pages
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := log.NewConsoleLogger(zerolog.InfoLevel)

	root := &cobra.Command{
		Use:          "framebooth",
		Short:        "Frame and print photo booth pictures as they arrive",
		Long:         strings.TrimSpace(helpDescription),
		Example:      exampleUsage,
		Version:      fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// FRAMEBOOTH_* override the file but not explicit flags
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			l, err := cliconfig.Logger(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger = l
			logger.Info().Interface("config", cfg).Msg("configuration")

			b, err := booth.New(boothConfig(cfg),
				booth.WithLogger(log.NewZerologAdapterWithLogger(logger).Component("booth")),
			)
			if err != nil {
				return fmt.Errorf("create booth: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return b.Run(gctx)
			})
			g.Go(func() error {
				<-gctx.Done()
				if ctx.Err() != nil {
					logger.Info().Msg("received signal, stopping...")
				}
				return nil
			})
			return g.Wait()
		},
	}

	f := root.Flags()
	f.StringVar(&cfgPath, "config", "", "path to config file, .toml or .yaml (default: $HOME/.framebooth/config.toml)")
	f.StringVar(&cfg.InputDir, "input-dir", cfg.InputDir, "folder the camera photos arrive in")
	f.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "folder for framed copies")
	f.StringVar(&cfg.FramePath, "frame", cfg.FramePath, "frame overlay image (PNG with transparency)")
	f.StringVar(&cfg.PrinterA, "printer-a", cfg.PrinterA, "first printer queue")
	f.StringVar(&cfg.PrinterB, "printer-b", cfg.PrinterB, "second printer queue")

	f.StringVar(&cfg.SyncTool, "sync-tool", cfg.SyncTool, "sync executable run on an interval (optional)")
	f.StringVar(&cfg.SyncBatch, "sync-batch", cfg.SyncBatch, "argument passed to the sync tool")
	f.DurationVar(&cfg.SyncInterval, "sync-interval", cfg.SyncInterval, "interval between sync runs")

	f.DurationVar(&cfg.PollTimeout, "poll-timeout", cfg.PollTimeout, "maximum wait for a folder change")
	f.IntVar(&cfg.OpenAttempts, "open-attempts", cfg.OpenAttempts, "attempts to open a photo still being written")
	f.DurationVar(&cfg.OpenInterval, "open-interval", cfg.OpenInterval, "wait between open attempts")
	f.IntVar(&cfg.JPEGQuality, "jpeg-quality", cfg.JPEGQuality, "JPEG quality for framed copies (1-100)")

	f.StringVar(&cfg.Backend, "backend", cfg.Backend, "printer backend: cups or spool")
	f.StringVar(&cfg.SpoolDir, "spool-dir", cfg.SpoolDir, "directory for rendered pages (spool backend)")
	f.StringVar(&cfg.LPPath, "lp-path", cfg.LPPath, "lp executable")
	f.StringVar(&cfg.LPStatPath, "lpstat-path", cfg.LPStatPath, "lpstat executable")
	f.StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "state directory for status.json (defaults to output-dir)")

	f.IntVar(&cfg.PageWidth, "page-width", cfg.PageWidth, "physical page width in device pixels")
	f.IntVar(&cfg.PageHeight, "page-height", cfg.PageHeight, "physical page height in device pixels")
	f.IntVar(&cfg.PrintableWidth, "printable-width", cfg.PrintableWidth, "printable width in device pixels")
	f.IntVar(&cfg.PrintableHeight, "printable-height", cfg.PrintableHeight, "printable height in device pixels")
	f.IntVar(&cfg.OffsetX, "offset-x", cfg.OffsetX, "left unprintable margin in device pixels")
	f.IntVar(&cfg.OffsetY, "offset-y", cfg.OffsetY, "top unprintable margin in device pixels")

	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("framebooth")
		os.Exit(1)
	}
}

// boothConfig converts the validated CLI config to the library config.
func boothConfig(cfg cliconfig.Config) booth.Config {
	return booth.Config{
		InputDir:   cfg.InputDir,
		OutputDir:  cfg.OutputDir,
		FramePath:  cfg.FramePath,
		StateDir:   cfg.StateDir,
		PrinterA:   cfg.PrinterA,
		PrinterB:   cfg.PrinterB,
		Backend:    cfg.Backend,
		SpoolDir:   cfg.SpoolDir,
		LPPath:     cfg.LPPath,
		LPStatPath: cfg.LPStatPath,
		Page: booth.Capabilities{
			PrintableWidth:  cfg.PrintableWidth,
			PrintableHeight: cfg.PrintableHeight,
			PageWidth:       cfg.PageWidth,
			PageHeight:      cfg.PageHeight,
			OffsetX:         cfg.OffsetX,
			OffsetY:         cfg.OffsetY,
		},
		SyncTool:     cfg.SyncTool,
		SyncBatch:    cfg.SyncBatch,
		SyncInterval: cfg.SyncInterval,
		PollTimeout:  cfg.PollTimeout,
		OpenAttempts: cfg.OpenAttempts,
		OpenInterval: cfg.OpenInterval,
		JPEGQuality:  cfg.JPEGQuality,
	}
}
