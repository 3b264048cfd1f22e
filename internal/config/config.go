// Package config holds runtime configuration: defaults, validation, path
// resolution, and the optional .asbatch.yml config file. Defaults for the
// forwarded antiSMASH options match the legacy batch script for parity.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// --- Enum types for validated string fields ---

// Strictness is the HMM detection strictness forwarded to antiSMASH.
type Strictness string

const (
	StrictnessStrict  Strictness = "strict"  // Default; matches the legacy script.
	StrictnessRelaxed Strictness = "relaxed"
	StrictnessLoose   Strictness = "loose"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Format selects the report output format.
type Format string

const (
	FormatTerminal Format = "terminal" // Aligned table (default).
	FormatJSON     Format = "json"     // Indented JSON rows.
)

// InputExt is the fixed input file extension the batch runner selects on.
const InputExt = ".gbff"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by a config file, then mutated by the CLI flag layer
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths. Relative SourceDir/DestDir resolve against BaseDir (or the
	// process working directory) in [Config.ResolvePaths].
	BaseDir   string
	SourceDir string // Default: "../test-genomes/reference".
	DestDir   string // Default: "../reference".

	// External tool invocation.
	Tool        string     // Executable name or path. Default: "antismash".
	Strictness  Strictness // Forwarded as --hmmdetection-strictness. Default: strict.
	Minimal     bool       // Forward --minimal. Default: true.
	ToolVerbose bool       // Forward -v. Default: true.
	ExtraArgs   []string   // Verbatim pass-through arguments.

	// Batch behavior.
	Workers        int           // Default: 1 (strictly sequential).
	Timeout        time.Duration // Per-invocation deadline. 0 = none.
	DryRun         bool
	SkipExisting   bool // Default: true. Cleared by --force.
	KeepGoing      bool // Continue after a spawn failure.
	RequireResults bool // Zero exit without a result JSON counts as failed.

	// Report mode.
	Product      string // Only list genomes whose areas include this product.
	ReportFormat Format // Default: "terminal".

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults matching the legacy batch
// script. Used as the base before file and flag overrides are applied.
func DefaultConfig() Config {
	return Config{
		SourceDir:      "../test-genomes/reference",
		DestDir:        "../reference",
		Tool:           "antismash",
		Strictness:     StrictnessStrict,
		Minimal:        true,
		ToolVerbose:    true,
		Workers:        1,
		Timeout:        0,
		DryRun:         false,
		SkipExisting:   true,
		KeepGoing:      false,
		RequireResults: false,
		ReportFormat:   FormatTerminal,
		Verbose:        false,
		ColorMode:      ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and numeric ranges, and requires non-empty
// source and destination paths.
func (c *Config) Validate() error {
	switch c.Strictness {
	case StrictnessStrict, StrictnessRelaxed, StrictnessLoose:
		// valid
	default:
		return fmt.Errorf("invalid strictness %q (use 'strict', 'relaxed' or 'loose')", c.Strictness)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	switch c.ReportFormat {
	case FormatTerminal, FormatJSON:
		// valid
	default:
		return fmt.Errorf("invalid format %q (use 'terminal' or 'json')", c.ReportFormat)
	}

	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if c.Tool == "" {
		return errors.New("tool executable must not be empty")
	}
	if c.SourceDir == "" || c.DestDir == "" {
		return errors.New("need both a source and a destination directory")
	}
	return nil
}

// ResolvePaths makes SourceDir and DestDir absolute. Relative paths resolve
// against BaseDir when set, otherwise against the process working directory.
// Called exactly once, before the batch loop, so behavior never depends on
// where the process happens to be started from mid-run.
func (c *Config) ResolvePaths() error {
	src, err := c.resolve(c.SourceDir)
	if err != nil {
		return fmt.Errorf("resolving source dir: %w", err)
	}
	dst, err := c.resolve(c.DestDir)
	if err != nil {
		return fmt.Errorf("resolving destination dir: %w", err)
	}
	c.SourceDir = src
	c.DestDir = dst
	return nil
}

func (c *Config) resolve(path string) (string, error) {
	path = NormalizeDirArg(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	if c.BaseDir != "" {
		return filepath.Abs(filepath.Join(c.BaseDir, path))
	}
	return filepath.Abs(path)
}

// ValidatePaths ensures the resolved destination directory is not inside (or
// equal to) the resolved source directory, so output trees never mix with
// inputs. Both arguments must be absolute paths.
func (c *Config) ValidatePaths(sourceAbs, destAbs string) error {
	sep := string(filepath.Separator)
	if destAbs == sourceAbs || strings.HasPrefix(destAbs+sep, sourceAbs+sep) {
		return errors.New("destination directory must not be inside source directory")
	}
	return nil
}
