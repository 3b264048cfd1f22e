package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/seqworks/asbatch/internal/config"
)

// writeResultDir fabricates one completed output directory with a result
// JSON naming the given products, one area per product.
func writeResultDir(t *testing.T, destRoot, genome string, products ...string) {
	t.Helper()
	dir := filepath.Join(destRoot, genome)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	areas := ""
	for i, p := range products {
		if i > 0 {
			areas += ","
		}
		areas += fmt.Sprintf(`{"start": %d, "end": %d, "products": [%q]}`, i*1000, i*1000+500, p)
	}
	doc := fmt.Sprintf(`{
		"version": "7.1.0",
		"input_file": %q,
		"taxon": "bacteria",
		"records": [{"id": "rec1", "description": "test", "areas": [%s]}]
	}`, genome+".gbff", areas)

	if err := os.WriteFile(filepath.Join(dir, genome+".json"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
}

func reportConfig(dst string) config.Config {
	cfg := config.DefaultConfig()
	cfg.DestDir = dst
	cfg.ColorMode = config.ColorNever
	return cfg
}

func TestReport(t *testing.T) {
	dst := t.TempDir()
	writeResultDir(t, dst, "genomeA", "NRPS", "23-DHB")
	writeResultDir(t, dst, "genomeB", "T1PKS")
	writeResultDir(t, dst, "genomeC")

	cfg := reportConfig(dst)
	if err := Report(context.Background(), &cfg, testLogger(t, &cfg)); err != nil {
		t.Fatalf("Report: %v", err)
	}
}

func TestReportSkipsDirsWithoutResults(t *testing.T) {
	dst := t.TempDir()
	writeResultDir(t, dst, "good", "NRPS")
	if err := os.MkdirAll(filepath.Join(dst, "crashed"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dst, "broken"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dst, "broken", "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := reportConfig(dst)
	if err := Report(context.Background(), &cfg, testLogger(t, &cfg)); err != nil {
		t.Fatalf("unreadable result dirs must be skipped, not fatal: %v", err)
	}
}

func TestReportEmptyDest(t *testing.T) {
	cfg := reportConfig(t.TempDir())
	if err := Report(context.Background(), &cfg, testLogger(t, &cfg)); err != nil {
		t.Fatalf("Report on empty dest: %v", err)
	}
}

func TestReportMissingDest(t *testing.T) {
	cfg := reportConfig(filepath.Join(t.TempDir(), "nope"))
	if err := Report(context.Background(), &cfg, testLogger(t, &cfg)); err == nil {
		t.Fatal("expected an error for a missing destination")
	}
}

func TestReportJSONFormat(t *testing.T) {
	dst := t.TempDir()
	writeResultDir(t, dst, "genomeA", "NRPS")

	cfg := reportConfig(dst)
	cfg.ReportFormat = config.FormatJSON
	if err := Report(context.Background(), &cfg, testLogger(t, &cfg)); err != nil {
		t.Fatalf("Report: %v", err)
	}
}

func TestReportProductFilter(t *testing.T) {
	dst := t.TempDir()
	writeResultDir(t, dst, "hit", "NRPS", "23-DHB")
	writeResultDir(t, dst, "miss", "T1PKS")

	cfg := reportConfig(dst)
	cfg.Product = "23-DHB"
	if err := Report(context.Background(), &cfg, testLogger(t, &cfg)); err != nil {
		t.Fatalf("Report: %v", err)
	}
}
