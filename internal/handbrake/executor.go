package handbrake

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"batchbrake/internal/config"
)

// Execute runs one synchronous transcode of input to output. Both output
// streams are captured; when verbose is enabled they are additionally tee'd
// to the terminal in real time. The subprocess gets no stdin.
//
// Exit status 0 is the sole success signal; encoder output is never
// inspected for semantic success. A non-zero exit returns *EncodeError with
// both captured streams. The call blocks until the encoder exits (or ctx is
// cancelled, which kills the subprocess).
func Execute(ctx context.Context, cfg *config.Config, input, output string) error {
	args := BuildArgs(input, output)
	cmd := exec.CommandContext(ctx, cfg.HandBrakeBin, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	if cfg.Verbose {
		cmd.Stdout = io.MultiWriter(&stdoutBuf, os.Stdout)
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		// Spawn failure (binary missing, permission): no streams to report.
		return fmt.Errorf("run %s: %w", cfg.HandBrakeBin, err)
	}
	return &EncodeError{
		Input:  input,
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
		err:    err,
	}
}
