package config

// This file loads the optional .asbatch.yml configuration file. File values
// sit between built-in defaults and CLI flags: Apply only touches fields the
// file actually set, and the flag layer later overrides whatever the user
// passed explicitly.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// maxFileSize caps config file reads; anything larger is rejected.
const maxFileSize = 1 << 20

// FileConfig mirrors the .asbatch.yml schema. Booleans are pointers so that
// "absent" and "false" stay distinguishable during Apply.
type FileConfig struct {
	SourceDir      string   `yaml:"source_dir,omitempty"`
	DestDir        string   `yaml:"dest_dir,omitempty"`
	Tool           string   `yaml:"tool,omitempty"`
	Strictness     string   `yaml:"strictness,omitempty"`
	Minimal        *bool    `yaml:"minimal,omitempty"`
	ToolVerbose    *bool    `yaml:"tool_verbose,omitempty"`
	ExtraArgs      []string `yaml:"extra_args,omitempty"`
	Workers        int      `yaml:"workers,omitempty"`
	Timeout        string   `yaml:"timeout,omitempty"`
	KeepGoing      *bool    `yaml:"keep_going,omitempty"`
	RequireResults *bool    `yaml:"require_results,omitempty"`
	LogFile        string   `yaml:"log,omitempty"`
	Color          string   `yaml:"color,omitempty"`
}

// LoadFile reads the .asbatch.yml or .asbatch.yaml config file from dir.
// If no config file is found, it returns a zero FileConfig (not an error).
func LoadFile(dir string) (FileConfig, error) {
	for _, name := range []string{".asbatch.yml", ".asbatch.yaml"} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return FileConfig{}, fmt.Errorf("reading %s: %w", path, err)
		}
		if info.Size() > maxFileSize {
			return FileConfig{}, fmt.Errorf("config file too large: %s (%d bytes, max 1 MB)", path, info.Size())
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return FileConfig{}, fmt.Errorf("reading %s: %w", path, err)
		}
		var fc FileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return FileConfig{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		return fc, nil
	}
	return FileConfig{}, nil
}

// Apply overlays the file values onto cfg. Only fields the file set are
// touched; enum and duration strings are converted here so a bad file value
// fails before Validate runs.
func (fc *FileConfig) Apply(cfg *Config) error {
	if fc.SourceDir != "" {
		cfg.SourceDir = fc.SourceDir
	}
	if fc.DestDir != "" {
		cfg.DestDir = fc.DestDir
	}
	if fc.Tool != "" {
		cfg.Tool = fc.Tool
	}
	if fc.Strictness != "" {
		cfg.Strictness = Strictness(fc.Strictness)
	}
	if fc.Minimal != nil {
		cfg.Minimal = *fc.Minimal
	}
	if fc.ToolVerbose != nil {
		cfg.ToolVerbose = *fc.ToolVerbose
	}
	if len(fc.ExtraArgs) > 0 {
		cfg.ExtraArgs = append(cfg.ExtraArgs, fc.ExtraArgs...)
	}
	if fc.Workers != 0 {
		cfg.Workers = fc.Workers
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in config file: %w", fc.Timeout, err)
		}
		cfg.Timeout = d
	}
	if fc.KeepGoing != nil {
		cfg.KeepGoing = *fc.KeepGoing
	}
	if fc.RequireResults != nil {
		cfg.RequireResults = *fc.RequireResults
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	if fc.Color != "" {
		cfg.ColorMode = ColorMode(fc.Color)
	}
	return nil
}
