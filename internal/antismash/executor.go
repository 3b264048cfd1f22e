package antismash

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/seqworks/asbatch/internal/config"
)

// ExecResult holds the outcome of a single antiSMASH invocation.
//
// The three cases a caller must distinguish (spawn failure, non-zero exit,
// success) map to: SpawnErr != nil, ExitCode != 0, and the zero result.
type ExecResult struct {
	ExitCode int    // Exit status; 0 on success. Valid only when SpawnErr is nil.
	SpawnErr error  // Non-nil when the process could not be started at all.
	Stderr   string // Captured stderr, kept for failure reporting.
}

// Failed reports whether the invocation did not complete successfully.
func (r ExecResult) Failed() bool {
	return r.SpawnErr != nil || r.ExitCode != 0
}

// Execute runs one antiSMASH invocation for inputPath, waiting for it to
// finish. When verbose, stderr is tee'd to os.Stderr in real time; otherwise
// it is captured silently and only surfaced on failure. When cfg.Timeout is
// non-zero the invocation is bounded by a per-file deadline.
func Execute(ctx context.Context, cfg *config.Config, inputPath, outputDir string) ExecResult {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	args := Build(cfg, inputPath, outputDir)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if cfg.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	res := ExecResult{Stderr: stderrBuf.String()}
	if err == nil {
		return res
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res
	}
	// Anything that is not an ExitError means the process never ran:
	// executable missing, not executable, context already cancelled.
	res.SpawnErr = err
	return res
}
