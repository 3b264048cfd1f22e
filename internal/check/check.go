// Package check provides system diagnostics (the check command) and the
// pre-batch dependency gate (CheckDeps) for the antiSMASH executable.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/seqworks/asbatch/internal/config"
)

// Sentinel errors returned by CheckDeps when the tool is unusable.
var (
	ErrToolNotFound      = errors.New("analysis tool not found on PATH")
	ErrToolVersionFailed = errors.New("analysis tool found but --version failed")
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive check flow: tool presence, version string,
// and the tool's own prerequisite self-test. This is informational only;
// it reports problems but does not stop on them. Returns false when the
// tool itself is missing.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	path, err := exec.LookPath(cfg.Tool)
	if err != nil {
		log.Error("%s not found on PATH", cfg.Tool)
		return false
	}
	log.Success("%s: %s", cfg.Tool, path)

	if v, err := Version(cfg.Tool); err != nil {
		log.Warn("%s found but --version failed: %v", cfg.Tool, err)
	} else {
		log.Success("version: %s", v)
	}

	log.Info("Running prerequisite self-test (--check-prereqs)...")
	if runSilent(cfg.Tool, "--check-prereqs") {
		log.Success("prerequisites OK")
	} else {
		log.Warn("prerequisite self-test reported problems (run '%s --check-prereqs' for details)", cfg.Tool)
	}
	return true
}

// CheckDeps is the pre-batch gate: the tool must be on PATH and answer
// --version. Returns a sentinel error on failure so the run command can
// fail fast before touching any input file.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.Tool); err != nil {
		return ErrToolNotFound
	}
	if _, err := Version(cfg.Tool); err != nil {
		return ErrToolVersionFailed
	}
	return nil
}

// Version returns the first line of the tool's --version output.
func Version(tool string) (string, error) {
	out, err := exec.Command(tool, "--version").Output()
	if err != nil {
		return "", err
	}
	line := strings.TrimSpace(string(out))
	if idx := strings.Index(line, "\n"); idx > 0 {
		line = line[:idx]
	}
	return line, nil
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
