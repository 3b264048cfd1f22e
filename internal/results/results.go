// Package results parses the antiSMASH result JSON that each completed run
// writes into its output directory. Only the record/area/product skeleton is
// modeled; module payloads vary per antiSMASH version and are not this
// tool's concern.
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Results is the parsed view of one run's result JSON.
type Results struct {
	Version   string
	InputFile string
	Taxon     string
	Records   []Record
}

// Record is one sequence record from the analyzed input file.
type Record struct {
	ID          string
	Description string
	Areas       []Area
}

// Area is one detected region of interest within a record.
type Area struct {
	Start    int
	End      int
	Products []string
}

// RegionCount returns the total number of areas across all records.
func (r *Results) RegionCount() int {
	n := 0
	for _, rec := range r.Records {
		n += len(rec.Areas)
	}
	return n
}

// Products returns the sorted set of distinct products across all areas.
func (r *Results) Products() []string {
	seen := map[string]bool{}
	var out []string
	for _, rec := range r.Records {
		for _, a := range rec.Areas {
			for _, p := range a.Products {
				if !seen[p] {
					seen[p] = true
					out = append(out, p)
				}
			}
		}
	}
	sort.Strings(out)
	return out
}

// HasProduct reports whether any area lists the given product.
func (r *Results) HasProduct(product string) bool {
	for _, rec := range r.Records {
		for _, a := range rec.Areas {
			for _, p := range a.Products {
				if p == product {
					return true
				}
			}
		}
	}
	return false
}

// ParseJSON converts raw antiSMASH result JSON into a Results value.
// Exported for testing without a real antiSMASH run.
func ParseJSON(data []byte) (*Results, error) {
	var raw resultsFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse result JSON: %w", err)
	}
	return buildResults(&raw), nil
}

// ParseFile reads and parses the result JSON at path.
func ParseFile(path string) (*Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// FindResultsFile locates the result JSON inside a completed output
// directory. antiSMASH names it after the input stem, so <dir>/<base>.json
// is preferred; otherwise the lexicographically first *.json entry is used.
// Returns "" when the directory holds no JSON file at all.
func FindResultsFile(dir string) string {
	preferred := filepath.Join(dir, filepath.Base(dir)+".json")
	if _, err := os.Stat(preferred); err == nil {
		return preferred
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return filepath.Join(dir, names[0])
}

// --- result JSON wire types ---

type resultsFile struct {
	Version   string      `json:"version"`
	InputFile string      `json:"input_file"`
	Taxon     string      `json:"taxon"`
	Records   []rawRecord `json:"records"`
}

type rawRecord struct {
	ID          string                     `json:"id"`
	Description string                     `json:"description"`
	Areas       []rawArea                  `json:"areas"`
	Modules     map[string]json.RawMessage `json:"modules"` // Opaque; version-specific payloads.
}

type rawArea struct {
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Products []string `json:"products"`
}

// --- Conversion from wire types to domain types ---

func buildResults(raw *resultsFile) *Results {
	res := &Results{
		Version:   raw.Version,
		InputFile: raw.InputFile,
		Taxon:     raw.Taxon,
	}
	for _, rec := range raw.Records {
		r := Record{ID: rec.ID, Description: rec.Description}
		for _, a := range rec.Areas {
			r.Areas = append(r.Areas, Area{Start: a.Start, End: a.End, Products: a.Products})
		}
		res.Records = append(res.Records, r)
	}
	return res
}
