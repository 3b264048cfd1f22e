// Package antismash builds and executes antiSMASH invocations. The tool is
// treated as an opaque subprocess: one input file in, one output directory
// out, exit status as the only structured signal.
package antismash

import (
	"github.com/seqworks/asbatch/internal/config"
)

// Build assembles the full argument vector for one invocation, starting with
// the executable itself:
//
//	<tool> <input> --output-dir <dir> [-v] [--minimal] --hmmdetection-strictness <s> [extra...]
func Build(cfg *config.Config, inputPath, outputDir string) []string {
	args := []string{cfg.Tool, inputPath, "--output-dir", outputDir}
	if cfg.ToolVerbose {
		args = append(args, "-v")
	}
	if cfg.Minimal {
		args = append(args, "--minimal")
	}
	args = append(args, "--hmmdetection-strictness", string(cfg.Strictness))
	args = append(args, cfg.ExtraArgs...)
	return args
}
