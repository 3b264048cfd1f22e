package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/seqworks/asbatch/internal/check"
	"github.com/seqworks/asbatch/internal/logging"
)

var flagCheckTool string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run system diagnostics for the analysis tool",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagCheckTool, "tool", "", "Analysis executable to check (default: antismash)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("tool") {
		cfg.Tool = flagCheckTool
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if !check.RunCheck(&cfg, log) {
		return errors.New("system check failed")
	}
	return nil
}
