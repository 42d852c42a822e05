// Package config holds runtime configuration: defaults, CLI flag binding,
// optional settings-file loading, and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"batchbrake/internal/extension"
)

// ErrNotDirectory is returned by ResolveInputDir when the scan root is
// missing or not a directory. Fatal at startup; no batch run is attempted.
var ErrNotDirectory = errors.New("not a directory")

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [Default], then
// mutated by flag binding and the optional settings file, and finally
// sealed by [Validate], which derives the typed extension fields. After
// validation it is read-only for the life of the run.
type Config struct {
	// Scan settings.
	InputDir         string // Root directory to scan (required unless CheckOnly).
	SourceExtensions string // Comma-separated source extensions. Default: "mov,avi".
	TargetExtension  string // Produced-file extension. Default: "mp4".

	// Encoder.
	HandBrakeBin string // Binary name or path. Default: "HandBrakeCLI".

	// Behavior flags.
	DryRun        bool
	SkipExisting  bool // Default: false (existing outputs are overwritten).
	PreserveTimes bool // Default: true. Cleared by --no-preserve-times.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.

	// Settings file path (--config); applied before Validate.
	ConfigFile string

	// Derived by Validate from the raw extension strings.
	Sources extension.List
	Target  extension.Token
}

// Default returns a Config with all defaults applied. Used as the base
// before flags and the settings file apply overrides.
func Default() Config {
	return Config{
		SourceExtensions: "mov,avi",
		TargetExtension:  "mp4",
		HandBrakeBin:     "HandBrakeCLI",
		PreserveTimes:    true,
		ColorMode:        ColorAuto,
	}
}

// Validate checks enum fields, parses the extension strings into typed
// values, and requires a scan directory unless running --check only.
// Configuration errors abort the whole run before any processing begins.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	sources, err := extension.ParseList(c.SourceExtensions)
	if err != nil {
		return fmt.Errorf("source extensions: %w", err)
	}
	target, err := extension.Normalize(c.TargetExtension)
	if err != nil {
		return fmt.Errorf("target extension: %w", err)
	}
	c.Sources = sources
	c.Target = target

	if c.HandBrakeBin == "" {
		return errors.New("encoder binary must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("--dir is required")
	}
	return nil
}

// ResolveInputDir resolves path to absolute, symlink-resolved form and
// verifies it is an existing directory. Returns an error wrapping
// [ErrNotDirectory] otherwise.
func ResolveInputDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	return abs, nil
}
