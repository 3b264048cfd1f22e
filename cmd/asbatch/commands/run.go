package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/seqworks/asbatch/internal/batch"
	"github.com/seqworks/asbatch/internal/check"
	"github.com/seqworks/asbatch/internal/config"
	"github.com/seqworks/asbatch/internal/display"
	"github.com/seqworks/asbatch/internal/logging"
)

var (
	flagSourceDir      string
	flagDestDir        string
	flagTool           string
	flagStrictness     string
	flagExtraArgs      []string
	flagWorkers        int
	flagTimeout        time.Duration
	flagForce          bool
	flagDryRun         bool
	flagKeepGoing      bool
	flagRequireResults bool
	flagNoMinimal      bool
	flagNoToolVerbose  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run antiSMASH across all .gbff files in the source directory",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&flagSourceDir, "source-dir", "", "Directory holding the input .gbff files")
	f.StringVar(&flagDestDir, "dest-dir", "", "Root directory for per-file output directories")
	f.StringVar(&flagTool, "tool", "", "Analysis executable to invoke (default: antismash)")
	f.StringVar(&flagStrictness, "strictness", "", "HMM detection strictness: strict | relaxed | loose")
	f.StringArrayVar(&flagExtraArgs, "extra-arg", nil, "Additional argument passed to the tool verbatim (repeatable)")
	f.IntVar(&flagWorkers, "workers", 0, "Concurrent invocations (default: 1, strictly sequential)")
	f.DurationVar(&flagTimeout, "timeout", 0, "Per-invocation deadline (0 = none)")
	f.BoolVarP(&flagForce, "force", "f", false, "Reprocess inputs whose output directory already exists")
	f.BoolVarP(&flagDryRun, "dry-run", "d", false, "Preview invocations without executing them")
	f.BoolVar(&flagKeepGoing, "keep-going", false, "Continue with remaining files after a spawn failure")
	f.BoolVar(&flagRequireResults, "require-results", false, "Count zero-exit runs that wrote no result JSON as failed")
	f.BoolVar(&flagNoMinimal, "no-minimal", false, "Do not forward --minimal to the tool")
	f.BoolVar(&flagNoToolVerbose, "no-tool-verbose", false, "Do not forward -v to the tool")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyRunFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner()

	if err := cfg.ResolvePaths(); err != nil {
		return err
	}
	if _, err := os.Stat(cfg.SourceDir); err != nil {
		return fmt.Errorf("source directory not found: %s", cfg.SourceDir)
	}
	if err := os.MkdirAll(cfg.DestDir, 0o755); err != nil {
		return fmt.Errorf("cannot create destination directory %s: %w", cfg.DestDir, err)
	}
	if err := cfg.ValidatePaths(cfg.SourceDir, cfg.DestDir); err != nil {
		return err
	}

	log.Info("=== asbatch v%s ===", Version)
	log.Info("In:  %s", cfg.SourceDir)
	log.Info("Out: %s", cfg.DestDir)
	log.Info("")

	// Fail fast if the tool is unusable; a dry run needs no tool at all.
	if !cfg.DryRun {
		if err := check.CheckDeps(&cfg); err != nil {
			return fmt.Errorf("%w (checked %q)", err, cfg.Tool)
		}
	}

	ctx, cancel := contextWithInterrupt(log)
	defer cancel()

	stats, err := batch.Run(ctx, &cfg, log)
	if err != nil {
		return fmt.Errorf("file discovery failed: %w", err)
	}
	if stats.Failed > 0 {
		return ErrBatchFailed
	}
	return nil
}

// applyRunFlags overlays the run-specific flags onto cfg. Only flags the
// user actually passed override file and default values.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("source-dir") {
		cfg.SourceDir = config.NormalizeDirArg(flagSourceDir)
	}
	if f.Changed("dest-dir") {
		cfg.DestDir = config.NormalizeDirArg(flagDestDir)
	}
	if f.Changed("tool") {
		cfg.Tool = flagTool
	}
	if f.Changed("strictness") {
		cfg.Strictness = config.Strictness(flagStrictness)
	}
	if f.Changed("extra-arg") {
		cfg.ExtraArgs = append(cfg.ExtraArgs, flagExtraArgs...)
	}
	if f.Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if f.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if flagForce {
		cfg.SkipExisting = false
	}
	if flagDryRun {
		cfg.DryRun = true
	}
	if flagKeepGoing {
		cfg.KeepGoing = true
	}
	if flagRequireResults {
		cfg.RequireResults = true
	}
	if flagNoMinimal {
		cfg.Minimal = false
	}
	if flagNoToolVerbose {
		cfg.ToolVerbose = false
	}
}

// contextWithInterrupt returns a context cancelled on SIGINT/SIGTERM so the
// batch can stop between files without leaving a half-written output tree.
func contextWithInterrupt(log *logging.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()
	return ctx, cancel
}
