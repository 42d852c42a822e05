package config

// This file binds CLI flags onto a cobra/pflag flag set.
// Negated flags (e.g. --no-preserve-times) are captured separately and
// applied after parsing so Config defaults hold unless the flag is set.

import "github.com/spf13/pflag"

// NegatedFlags holds boolean flags applied after parsing. Each inverts a
// Config default (e.g. noPreserveTimes -> PreserveTimes=false).
type NegatedFlags struct {
	noPreserveTimes bool
	forceColor      bool
	noColor         bool
}

// Bind registers all flags on fs, writing directly into cfg except for the
// negated group, which lands in n until [ApplyNegated].
func Bind(fs *pflag.FlagSet, cfg *Config, n *NegatedFlags) {
	fs.StringVar(&cfg.InputDir, "dir", cfg.InputDir, "Directory to scan for source files")
	fs.StringVar(&cfg.SourceExtensions, "source-extensions", cfg.SourceExtensions, "Comma-separated source file extensions")
	fs.StringVar(&cfg.TargetExtension, "target-extension", cfg.TargetExtension, "Extension for produced files")

	fs.StringVar(&cfg.HandBrakeBin, "handbrake", cfg.HandBrakeBin, "HandBrakeCLI binary name or path")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Optional YAML settings file")

	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Preview only; do not invoke the encoder")
	fs.BoolVar(&cfg.SkipExisting, "skip-existing", false, "Skip files whose output already exists")
	fs.BoolVar(&n.noPreserveTimes, "no-preserve-times", false, "Do not copy source modification times to outputs")

	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Show live encoder output and debug logging")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run system diagnostics and exit")
}

// ApplyNegated copies negated flag values into cfg.
func ApplyNegated(cfg *Config, n *NegatedFlags) {
	if n.noPreserveTimes {
		cfg.PreserveTimes = false
	}
	if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	}
}
