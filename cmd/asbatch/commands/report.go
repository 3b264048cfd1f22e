package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqworks/asbatch/internal/batch"
	"github.com/seqworks/asbatch/internal/config"
	"github.com/seqworks/asbatch/internal/logging"
)

var (
	flagReportDestDir string
	flagProduct       string
	flagFormat        string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize completed antiSMASH result directories",
	Long: `Report walks the destination tree, parses each run's result JSON, and
prints a per-genome table of records, detected regions, and products.
Genomes with zero regions are flagged.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&flagReportDestDir, "dest-dir", "", "Root directory holding per-genome result directories")
	f.StringVar(&flagProduct, "product", "", "Only list genomes whose areas include this product (e.g. 23-DHB)")
	f.StringVar(&flagFormat, "format", "", "Output format: terminal | json")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("dest-dir") {
		cfg.DestDir = config.NormalizeDirArg(flagReportDestDir)
	}
	if f.Changed("product") {
		cfg.Product = flagProduct
	}
	if f.Changed("format") {
		cfg.ReportFormat = config.Format(flagFormat)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if err := cfg.ResolvePaths(); err != nil {
		return err
	}
	if _, err := os.Stat(cfg.DestDir); err != nil {
		return fmt.Errorf("destination directory not found: %s", cfg.DestDir)
	}

	ctx, cancel := contextWithInterrupt(log)
	defer cancel()

	return batch.Report(ctx, &cfg, log)
}
