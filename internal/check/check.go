// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation for the HandBrakeCLI binary.
package check

import (
	"fmt"
	"os/exec"
	"strings"

	"batchbrake/internal/config"
)

// ErrEncoderNotFound is returned by CheckDeps when the configured encoder
// binary cannot be found on PATH.
type ErrEncoderNotFound struct {
	Bin string
}

func (e *ErrEncoderNotFound) Error() string {
	return fmt.Sprintf("%s not found on PATH", e.Bin)
}

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: encoder availability and
// version, plus scan-directory state when one is configured. Informational
// only; it reports but does not stop on failure. Returns false if the
// encoder is unusable.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkEncoder(cfg.HandBrakeBin, log)

	if cfg.InputDir != "" {
		if _, err := config.ResolveInputDir(cfg.InputDir); err != nil {
			log.Error("Scan directory: %v", err)
		} else {
			log.Success("Scan directory: %s", cfg.InputDir)
		}
	}

	log.Info("Source extensions: %s", cfg.SourceExtensions)
	log.Info("Target extension: %s", cfg.TargetExtension)
	return ok
}

// checkEncoder verifies the encoder is on PATH and logs its version string.
func checkEncoder(bin string, log Logger) bool {
	path, err := exec.LookPath(bin)
	if err != nil {
		log.Error("%s not found", bin)
		return false
	}
	cmd := exec.Command(bin, "--version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("%s found at %s but --version failed: %v", bin, path, err)
		return true
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", bin, firstLine)
	return true
}

// CheckDeps is the pre-run validation: the encoder binary must be present.
// No test encode is run; the option set is a fixed policy, so presence is
// the only useful signal. LookPath also accepts explicit paths.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.HandBrakeBin); err != nil {
		return &ErrEncoderNotFound{Bin: cfg.HandBrakeBin}
	}
	return nil
}
