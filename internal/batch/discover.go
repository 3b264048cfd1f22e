package batch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/seqworks/asbatch/internal/config"
)

// Discover lists the entries of sourceDir (non-recursive) whose name ends in
// the input extension, and returns their full paths sorted lexicographically
// for deterministic processing order. Directories and near-misses such as
// "cluster1.gbff.bak" are never selected.
func Discover(sourceDir string) ([]string, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), config.InputExt) {
			files = append(files, filepath.Join(sourceDir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Stem returns the input's base name with the extension removed. It is the
// output directory name for that input.
func Stem(inputPath string) string {
	return strings.TrimSuffix(filepath.Base(inputPath), config.InputExt)
}

// OutputDir derives the output directory for an input file: the destination
// root joined with the input's stem. Pure function of the base name.
func OutputDir(destRoot, inputPath string) string {
	return filepath.Join(destRoot, Stem(inputPath))
}
