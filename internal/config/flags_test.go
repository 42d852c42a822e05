package config

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestBind_Defaults(t *testing.T) {
	cfg := Default()
	var n NegatedFlags
	fs := pflag.NewFlagSet("batchbrake", pflag.ContinueOnError)
	Bind(fs, &cfg, &n)

	if err := fs.Parse([]string{"--dir", "/media/raw"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ApplyNegated(&cfg, &n)

	if cfg.InputDir != "/media/raw" {
		t.Errorf("InputDir = %q", cfg.InputDir)
	}
	if cfg.SourceExtensions != "mov,avi" || cfg.TargetExtension != "mp4" {
		t.Errorf("extension defaults not held: %q / %q", cfg.SourceExtensions, cfg.TargetExtension)
	}
	if !cfg.PreserveTimes {
		t.Error("PreserveTimes default must hold without --no-preserve-times")
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("ColorMode = %q, want auto", cfg.ColorMode)
	}
}

func TestBind_Overrides(t *testing.T) {
	cfg := Default()
	var n NegatedFlags
	fs := pflag.NewFlagSet("batchbrake", pflag.ContinueOnError)
	Bind(fs, &cfg, &n)

	args := []string{
		"--dir", "/media/raw",
		"--source-extensions", "mov,m4v",
		"--target-extension", "mkv",
		"--handbrake", "/opt/hb/HandBrakeCLI",
		"--no-preserve-times",
		"--no-color",
		"--skip-existing",
		"-n",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ApplyNegated(&cfg, &n)

	if cfg.SourceExtensions != "mov,m4v" || cfg.TargetExtension != "mkv" {
		t.Errorf("extensions not applied: %q / %q", cfg.SourceExtensions, cfg.TargetExtension)
	}
	if cfg.HandBrakeBin != "/opt/hb/HandBrakeCLI" {
		t.Errorf("HandBrakeBin = %q", cfg.HandBrakeBin)
	}
	if cfg.PreserveTimes {
		t.Error("--no-preserve-times not applied")
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want never", cfg.ColorMode)
	}
	if !cfg.SkipExisting || !cfg.DryRun {
		t.Errorf("SkipExisting=%v DryRun=%v, want both true", cfg.SkipExisting, cfg.DryRun)
	}
}
