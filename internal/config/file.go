package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML settings file. Every key mirrors a CLI
// flag; explicitly passed flags always win over file values.
type FileConfig struct {
	Dir              string `yaml:"dir"`
	SourceExtensions string `yaml:"source_extensions"`
	TargetExtension  string `yaml:"target_extension"`
	HandBrake        string `yaml:"handbrake"`
	SkipExisting     *bool  `yaml:"skip_existing"`
	PreserveTimes    *bool  `yaml:"preserve_times"`
	Verbose          *bool  `yaml:"verbose"`
	Color            string `yaml:"color"`
	LogFile          string `yaml:"log_file"`
}

// LoadFile reads and parses a YAML settings file. A missing file is an
// error here; the caller only asks for a file the user named explicitly.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// Apply copies file values into cfg for every flag the user did not pass on
// the command line. changed reports whether the named flag was set
// explicitly (cobra's Flags().Changed).
func (fc *FileConfig) Apply(cfg *Config, changed func(name string) bool) {
	if fc.Dir != "" && !changed("dir") {
		cfg.InputDir = fc.Dir
	}
	if fc.SourceExtensions != "" && !changed("source-extensions") {
		cfg.SourceExtensions = fc.SourceExtensions
	}
	if fc.TargetExtension != "" && !changed("target-extension") {
		cfg.TargetExtension = fc.TargetExtension
	}
	if fc.HandBrake != "" && !changed("handbrake") {
		cfg.HandBrakeBin = fc.HandBrake
	}
	if fc.SkipExisting != nil && !changed("skip-existing") {
		cfg.SkipExisting = *fc.SkipExisting
	}
	if fc.PreserveTimes != nil && !changed("no-preserve-times") {
		cfg.PreserveTimes = *fc.PreserveTimes
	}
	if fc.Verbose != nil && !changed("verbose") {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Color != "" && !changed("color") && !changed("no-color") {
		cfg.ColorMode = ColorMode(fc.Color)
	}
	if fc.LogFile != "" && !changed("log") {
		cfg.LogFile = fc.LogFile
	}
}
