// Package commands implements the asbatch CLI command tree.
package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/seqworks/asbatch/internal/config"
)

// ErrBatchFailed signals that the batch completed but at least one input
// failed; main translates it into exit code 1.
var ErrBatchFailed = errors.New("batch completed with failures")

var (
	flagVerbose    bool
	flagLogFile    string
	flagBaseDir    string
	flagForceColor bool
	flagNoColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "asbatch",
	Short: "Batch driver for antiSMASH genome analysis",
	Long: `asbatch runs the antiSMASH analysis tool across a directory of GenBank
(.gbff) genome files, one invocation per file, writing each result into a
directory derived from the input file name. It also summarizes completed
result trees and re-predicts adenylation-domain substrates from extracted
Stachelhaus codes.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output (also shows live tool output)")
	rootCmd.PersistentFlags().StringVarP(&flagLogFile, "log", "l", "", "Append logs to file")
	rootCmd.PersistentFlags().StringVar(&flagBaseDir, "base-dir", "", "Base directory for resolving relative paths and the config file (default: working directory)")
	rootCmd.PersistentFlags().BoolVar(&flagForceColor, "color", false, "Force colored logs")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored logs")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig builds the effective configuration: built-in defaults, overlaid
// by the .asbatch.yml file (looked up in the base dir), overlaid by the
// persistent flags. Command-specific flags are applied by each command.
func loadConfig() (config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.BaseDir = config.NormalizeDirArg(flagBaseDir)

	fileDir := cfg.BaseDir
	if fileDir == "" {
		fileDir = "."
	}
	fc, err := config.LoadFile(fileDir)
	if err != nil {
		return cfg, err
	}
	if err := fc.Apply(&cfg); err != nil {
		return cfg, err
	}

	cfg.Verbose = cfg.Verbose || flagVerbose
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}
	if flagNoColor {
		cfg.ColorMode = config.ColorNever
	} else if flagForceColor {
		cfg.ColorMode = config.ColorAlways
	}
	return cfg, nil
}
