package commands

import (
	"github.com/spf13/cobra"

	"github.com/seqworks/asbatch/internal/logging"
	"github.com/seqworks/asbatch/internal/stachelhaus"
)

var (
	flagCodes      string
	flagCodeColumn int
)

var repredictCmd = &cobra.Command{
	Use:   "repredict <input.tsv> <output.tsv>",
	Short: "Re-predict A-domain substrates from Stachelhaus codes",
	Long: `Repredict scores each extracted Stachelhaus signature in the input TSV
against a table of known signature codes and appends the best-matching
substrate(s) and the match count as two new columns.`,
	Args: cobra.ExactArgs(2),
	RunE: runRepredict,
}

func init() {
	f := repredictCmd.Flags()
	f.StringVar(&flagCodes, "codes", "", "TSV of known signature codes (<substrate>_<id>\\t<code>)")
	f.IntVar(&flagCodeColumn, "code-column", stachelhaus.DefaultCodeColumn, "Zero-based column holding the extracted code")
	repredictCmd.MarkFlagRequired("codes")
	rootCmd.AddCommand(repredictCmd)
}

func runRepredict(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	lookup, err := stachelhaus.LoadCodes(flagCodes)
	if err != nil {
		return err
	}
	log.Info("Loaded %d signature codes from %s", len(lookup), flagCodes)

	if err := stachelhaus.Repredict(lookup, args[0], args[1], flagCodeColumn); err != nil {
		return err
	}
	log.Success("Wrote re-predictions to %s", args[1])
	return nil
}
