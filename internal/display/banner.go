package display

import (
	"fmt"
	"os"

	"github.com/seqworks/asbatch/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `           _           _       _
  __ _ ___| |__   __ _| |_ ___| |__
 / _`+"`"+` / __| '_ \ / _`+"`"+` | __/ __| '_ \
| (_| \__ \ |_) | (_| | || (__| | | |
 \__,_|___/_.__/ \__,_|\__\___|_| |_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
