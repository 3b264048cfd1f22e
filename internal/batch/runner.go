// Package batch orchestrates input discovery, per-file antiSMASH
// invocations, and batch summary reporting.
package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/seqworks/asbatch/internal/antismash"
	"github.com/seqworks/asbatch/internal/config"
	"github.com/seqworks/asbatch/internal/display"
	"github.com/seqworks/asbatch/internal/logging"
	"github.com/seqworks/asbatch/internal/results"
)

// Run is the top-level batch entry point. It discovers input files, drives
// one invocation per file (a single worker by default, so invocations never
// overlap), and returns aggregate stats with one ordered Outcome per input.
// The returned error covers discovery failures only; per-file failures are
// reported through the stats.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	files, err := Discover(cfg.SourceDir)
	if err != nil {
		return stats, err
	}

	stats.Total = len(files)
	stats.Outcomes = make([]Outcome, len(files))

	logBatchHeader(cfg, log, &stats)

	if len(files) == 0 {
		log.Warn("No %s files found in %s", config.InputExt, cfg.SourceDir)
		return stats, nil
	}

	start := time.Now()
	runAll(ctx, cfg, log, files, stats.Outcomes)
	stats.Elapsed = time.Since(start)

	for i, path := range files {
		if stats.Outcomes[i].Status == StatusPending {
			continue
		}
		if fi, err := os.Stat(path); err == nil {
			stats.TotalInputBytes += fi.Size()
		}
	}
	stats.aggregate()

	if ctx.Err() != nil {
		log.Warn("Interrupted")
	}

	logSummary(log, &stats)
	return stats, nil
}

// runAll fans the files out to cfg.Workers goroutines over a FIFO channel.
// With one worker this is a strictly sequential loop in sorted input order.
// A spawn failure cancels the remaining files unless KeepGoing is set,
// since an executable that is missing now will still be missing for the
// next file.
func runAll(ctx context.Context, cfg *config.Config, log *logging.Logger, files []string, outcomes []Outcome) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fileCh := make(chan int, len(files))
	for i := range files {
		fileCh <- i
	}
	close(fileCh)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range fileCh {
				if ctx.Err() != nil {
					return
				}
				outcomes[i] = processOne(ctx, cfg, log, i, len(files), files[i])
				if outcomes[i].Status == StatusSpawnError && !cfg.KeepGoing {
					log.Warn("Stopping batch: tool could not be started (use --keep-going to override)")
					cancel()
					return
				}
			}
		}()
	}
	wg.Wait()
}

// processOne handles one input file: derive output dir → skip-existing →
// dry-run → invoke-and-wait → classify.
func processOne(ctx context.Context, cfg *config.Config, log *logging.Logger, idx, total int, path string) Outcome {
	basename := filepath.Base(path)
	outputDir := OutputDir(cfg.DestDir, path)
	o := Outcome{Input: path, OutputDir: outputDir}

	log.Info("[%d/%d] %s", idx+1, total, basename)
	log.Debug(cfg.Verbose, "  -> %s", outputDir)

	if cfg.SkipExisting {
		if _, err := os.Stat(outputDir); err == nil {
			log.Warn("Skip (output exists): %s", Stem(path))
			o.Status = StatusSkipped
			return o
		}
	}

	if cfg.DryRun {
		log.Success("[DRY] Would run: %s", strings.Join(antismash.Build(cfg, path, outputDir), " "))
		o.Status = StatusOK
		return o
	}

	start := time.Now()
	res := antismash.Execute(ctx, cfg, path, outputDir)
	o.Elapsed = time.Since(start)

	switch {
	case res.SpawnErr != nil:
		o.Status = StatusSpawnError
		o.Err = res.SpawnErr
		log.Error("Cannot start %s: %v", cfg.Tool, res.SpawnErr)
	case res.ExitCode != 0:
		o.Status = StatusExitError
		o.ExitCode = res.ExitCode
		log.Error("%s failed on %s (exit %d)", cfg.Tool, basename, res.ExitCode)
		logStderr(log, res.Stderr)
	default:
		if cfg.RequireResults && results.FindResultsFile(outputDir) == "" {
			o.Status = StatusNoResults
			log.Error("%s exited 0 but wrote no result JSON under %s", cfg.Tool, outputDir)
			return o
		}
		o.Status = StatusOK
		log.Success("Completed %s in %s", basename, display.FormatDuration(o.Elapsed))
	}
	return o
}

// logStderr logs the tail of the tool's captured stderr after a failure.
func logStderr(log *logging.Logger, stderr string) {
	if stderr == "" {
		return
	}
	log.Error("Last tool output:")
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	start := 0
	if len(lines) > 20 {
		start = len(lines) - 20
	}
	for _, l := range lines[start:] {
		log.Error("  %s", l)
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d input files", stats.Total)
	log.Info("Tool: %s (--hmmdetection-strictness %s)", cfg.Tool, cfg.Strictness)
	if cfg.Minimal {
		log.Info("Mode: minimal")
	}
	if cfg.Workers > 1 {
		log.Info("Workers: %d (per-file invocations may interleave)", cfg.Workers)
	}
	if cfg.Timeout > 0 {
		log.Info("Per-file timeout: %s", cfg.Timeout)
	}
	if cfg.SkipExisting {
		log.Info("Existing output directories are skipped (use --force to reprocess)")
	}
	if cfg.RequireResults {
		log.Info("Runs without a result JSON count as failed")
	}
	if cfg.DryRun {
		log.Warn("DRY RUN: no invocations will be executed")
	}
	log.Info("")
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d completed, %d skipped, %d failed (attempted %d of %d)",
		stats.Completed, stats.Skipped, stats.Failed, stats.Attempted, stats.Total)
	if stats.TotalInputBytes > 0 {
		log.Info("  Input processed: %s in %s",
			display.FormatBytes(stats.TotalInputBytes), display.FormatDuration(stats.Elapsed))
	}

	failed := stats.FailedOutcomes()
	if len(failed) == 0 {
		if stats.Attempted > 0 {
			log.Success("  All attempted files succeeded")
		}
		return
	}
	log.Error("  Failed files:")
	for _, o := range failed {
		switch o.Status {
		case StatusSpawnError:
			log.Error("    %s (spawn: %v)", filepath.Base(o.Input), o.Err)
		case StatusNoResults:
			log.Error("    %s (no result JSON)", filepath.Base(o.Input))
		default:
			log.Error("    %s (exit %d)", filepath.Base(o.Input), o.ExitCode)
		}
	}
}
