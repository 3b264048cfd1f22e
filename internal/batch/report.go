package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/seqworks/asbatch/internal/config"
	"github.com/seqworks/asbatch/internal/logging"
	"github.com/seqworks/asbatch/internal/results"
	"github.com/seqworks/asbatch/internal/term"
)

// ReportRow holds the parsed per-genome data for the report table.
type ReportRow struct {
	Genome   string   `json:"genome"`
	Records  int      `json:"records"`
	Regions  int      `json:"regions"`
	Products []string `json:"products"`
}

// Report scans the destination tree of completed runs, parses each result
// JSON, and prints a per-genome region/product report. Directories without
// a readable result JSON are reported as skipped, never fatal. With
// cfg.Product set, only genomes whose areas include that product are listed.
func Report(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	dirs, err := resultDirs(cfg.DestDir)
	if err != nil {
		return fmt.Errorf("listing %s: %w", cfg.DestDir, err)
	}
	if len(dirs) == 0 {
		log.Warn("No result directories found in %s", cfg.DestDir)
		return nil
	}

	var rows []ReportRow
	var skipped, filtered int

	for _, dir := range dirs {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			return ctx.Err()
		}

		name := filepath.Base(dir)
		jsonPath := results.FindResultsFile(dir)
		if jsonPath == "" {
			skipped++
			log.Warn("Skip (no result JSON): %s", name)
			continue
		}
		res, err := results.ParseFile(jsonPath)
		if err != nil {
			skipped++
			log.Warn("Skip (unreadable result): %s: %v", name, err)
			continue
		}
		if cfg.Product != "" && !res.HasProduct(cfg.Product) {
			filtered++
			continue
		}
		rows = append(rows, ReportRow{
			Genome:   name,
			Records:  len(res.Records),
			Regions:  res.RegionCount(),
			Products: res.Products(),
		})
	}

	if cfg.ReportFormat == config.FormatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return err
		}
	} else {
		printReportTable(rows)
	}

	logReportSummary(cfg, log, rows, skipped, filtered)
	return nil
}

// resultDirs returns the immediate subdirectories of destRoot, sorted.
func resultDirs(destRoot string) ([]string, error) {
	entries, err := os.ReadDir(destRoot)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(destRoot, e.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

func printReportTable(rows []ReportRow) {
	if len(rows) == 0 {
		return
	}

	nameW := len("Genome")
	recW := len("Records")
	regW := len("Regions")
	prodW := len("Products")

	for _, r := range rows {
		if len(r.Genome) > nameW {
			nameW = len(r.Genome)
		}
		if w := len(fmt.Sprint(r.Records)); w > recW {
			recW = w
		}
		if w := len(fmt.Sprint(r.Regions)); w > regW {
			regW = w
		}
		if w := len(productsLabel(r.Products)); w > prodW {
			prodW = w
		}
	}

	if nameW > 40 {
		nameW = 40
	}
	if prodW > 60 {
		prodW = 60
	}

	header := fmt.Sprintf("  %-*s  %*s  %*s  %-*s",
		nameW, "Genome", recW, "Records", regW, "Regions", prodW, "Products")
	fmt.Println(header)
	fmt.Println("  " + strings.Repeat("─", len(header)-2))

	for _, r := range rows {
		name := r.Genome
		if len(name) > nameW {
			name = name[:nameW-1] + "…"
		}
		products := productsLabel(r.Products)
		if len(products) > prodW {
			products = products[:prodW-1] + "…"
		}

		flag := ""
		if r.Regions == 0 {
			flag = term.Orange + "[!]" + term.NC
		}

		fmt.Printf("  %-*s  %*d  %*d  %-*s  %s\n",
			nameW, name, recW, r.Records, regW, r.Regions, prodW, products, flag)
	}
	fmt.Println()
}

func productsLabel(products []string) string {
	if len(products) == 0 {
		return "-"
	}
	return strings.Join(products, ", ")
}

func logReportSummary(cfg *config.Config, log *logging.Logger, rows []ReportRow, skipped, filtered int) {
	log.Info("Reported %d genomes", len(rows))
	if cfg.Product != "" {
		log.Info("  Product filter: %s (%d genomes without it hidden)", cfg.Product, filtered)
	}
	var empty int
	for _, r := range rows {
		if r.Regions == 0 {
			empty++
		}
	}
	if empty > 0 {
		log.Warn("  %d genome(s) with zero regions flagged [!]", empty)
	}
	if skipped > 0 {
		log.Warn("  %d director(ies) skipped (missing or unreadable result JSON)", skipped)
	}
}
