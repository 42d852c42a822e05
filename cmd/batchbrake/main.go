// Command batchbrake is the CLI entrypoint for the batchbrake transcoding
// driver.
//
// It parses flags, validates configuration and the scan directory, and
// either runs system diagnostics (--check) or the batch transcoding
// pipeline over the directory's matching files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"batchbrake/internal/check"
	"batchbrake/internal/config"
	"batchbrake/internal/display"
	"batchbrake/internal/logging"
	"batchbrake/internal/pipeline"
)

// version and commit are injected at build time via -ldflags. When built
// with plain "go build" these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var negated config.NegatedFlags
	var showVersion bool

	cmd := &cobra.Command{
		Use:   "batchbrake --dir <path>",
		Short: "Batch-transcode a directory of videos with HandBrakeCLI",
		Long: `batchbrake scans a directory (non-recursively) for video files with the
configured source extensions, transcodes each with a fixed HandBrakeCLI
option set, and copies the source modification time onto each output.
One failed file never aborts the batch.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "batchbrake v%s (%s)\n", version, commit)
				return nil
			}
			return run(cmd, &cfg, &negated)
		},
	}

	config.Bind(cmd.Flags(), &cfg, &negated)
	cmd.Flags().BoolVarP(&showVersion, "version", "V", false, "Print version and exit")
	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config, negated *config.NegatedFlags) error {
	// Phase 1: Bootstrap — settle the config before the logger exists.
	// Explicit flags beat the settings file, which beats defaults.
	config.ApplyNegated(cfg, negated)

	if cfg.ConfigFile != "" {
		fc, err := config.LoadFile(cfg.ConfigFile)
		if err != nil {
			return err
		}
		fc.Apply(cfg, cmd.Flags().Changed)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(cfg, log) {
			return errors.New("system check failed")
		}
		return nil
	}

	inputAbs, err := config.ResolveInputDir(cfg.InputDir)
	if err != nil {
		return err
	}
	cfg.InputDir = inputAbs

	if !cfg.DryRun {
		if err := check.CheckDeps(cfg); err != nil {
			return err
		}
	}

	log.Info("=== batchbrake v%s ===", version)
	log.Info("Dir: %s", cfg.InputDir)
	log.Info("")

	// Phase 3: Signal handling — cancel the context on SIGINT/SIGTERM so
	// the pipeline stops between files.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping after current file…")
		cancel()
	}()

	// Phase 4: Run the batch. Per-file failures are reported on the error
	// stream but do not affect the exit status.
	pipeline.Run(ctx, cfg, log)
	return nil
}
