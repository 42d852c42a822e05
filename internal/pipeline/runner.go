package pipeline

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"batchbrake/internal/config"
	"batchbrake/internal/display"
	"batchbrake/internal/extension"
	"batchbrake/internal/handbrake"
	"batchbrake/internal/logging"
	"batchbrake/internal/mtime"
	"batchbrake/internal/naming"
)

// Run is the top-level batch entry point. It discovers matching files once,
// processes each sequentially with per-file failure isolation, and returns
// aggregate stats. One bad file never aborts the batch; a cancelled context
// stops the loop between files.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	matcher := extension.NewMatcher(cfg.Sources)

	files, err := Discover(cfg.InputDir, matcher)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}

	if len(files) == 0 {
		log.Info("No files found in dir with the source extension(s).")
		return stats
	}

	stats.Total = len(files)
	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processFile(ctx, cfg, log, matcher, path, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processFile handles one source file: resolve output path → invoke encoder
// → replicate timestamps. Every failure is logged with the input path and
// full diagnostic text, counted, and contained; the caller moves on to the
// next file. No rollback and no partial-output cleanup.
func processFile(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	m *extension.Matcher,
	path string,
	stats *RunStats,
) {
	log.Info("[%d/%d] Processing %s", stats.Current, stats.Total, path)

	outputPath := naming.OutputPath(path, m, cfg.Target)
	log.Debug("  -> %s", outputPath)

	if cfg.SkipExisting {
		if _, err := os.Stat(outputPath); err == nil {
			log.Warn("Skip (exists): %s", outputPath)
			stats.Skipped++
			return
		}
	}

	if cfg.DryRun {
		log.Success("[DRY] Would transcode to %s", outputPath)
		stats.Transcoded++
		return
	}

	start := time.Now()
	if err := handbrake.Execute(ctx, cfg, path, outputPath); err != nil {
		log.Error("Transcode failed: %s", path)
		logDiagnostic(log, err)
		stats.Failed++
		return
	}

	if cfg.PreserveTimes {
		if err := mtime.Replicate(path, outputPath); err != nil {
			// The output itself is valid; only its timestamps are wrong.
			log.Error("Timestamp replication failed: %s: %v", path, err)
			stats.Failed++
			return
		}
	}

	elapsed := time.Since(start)
	var inSize, outSize int64
	if fi, err := os.Stat(path); err == nil {
		inSize = fi.Size()
	}
	if fi, err := os.Stat(outputPath); err == nil {
		outSize = fi.Size()
	}
	stats.TotalInputBytes += inSize
	stats.TotalOutputBytes += outSize
	stats.Transcoded++

	log.Success("Transcoded in %ds (%s -> %s)",
		int(elapsed.Seconds()),
		display.FormatBytes(inSize),
		display.FormatBytes(outSize))
}

// logDiagnostic writes the failure detail to the error stream. Encoder
// failures carry labeled stderr/stdout blocks; anything else is logged as-is.
func logDiagnostic(log *logging.Logger, err error) {
	var encErr *handbrake.EncodeError
	if !errors.As(err, &encErr) {
		log.Error("  %v", err)
		return
	}
	diag := encErr.Diagnostic()
	if diag == "" {
		log.Error("  %v (no encoder output)", err)
		return
	}
	for _, line := range strings.Split(strings.TrimRight(diag, "\n"), "\n") {
		log.Error("  %s", line)
	}
}

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d files", stats.Total)
	log.Info("Source extensions: %s", cfg.SourceExtensions)
	log.Info("Target extension: %s", cfg.Target)
	if cfg.SkipExisting {
		log.Info("Existing outputs: skip")
	} else {
		log.Info("Existing outputs: overwrite")
	}
	if cfg.PreserveTimes {
		log.Info("Timestamps: replicate source modification times")
	}
	if cfg.DryRun {
		log.Warn("DRY RUN — the encoder will not be invoked")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d transcoded, %d skipped, %d failed", stats.Transcoded, stats.Skipped, stats.Failed)

	if cfg.DryRun {
		return
	}
	saved := stats.SpaceSaved()
	if saved >= 0 {
		log.Info("Space saved: %s (input %s -> output %s)",
			display.FormatBytes(saved),
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes))
	} else {
		log.Warn("Space saved: %s (overall output is larger)",
			display.FormatBytesWithSign(saved))
	}
}
