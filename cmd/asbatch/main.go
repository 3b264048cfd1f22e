// Command asbatch drives antiSMASH across a directory of GenBank (.gbff)
// genome files, one invocation per file, and reports over the results.
package main

import (
	"errors"
	"os"

	"github.com/seqworks/asbatch/cmd/asbatch/commands"
)

func main() {
	err := commands.Execute()
	switch {
	case err == nil:
		os.Exit(0)
	case errors.Is(err, commands.ErrBatchFailed):
		// The batch ran to completion but at least one file failed; the
		// summary already named them.
		os.Exit(1)
	default:
		os.Exit(2)
	}
}
