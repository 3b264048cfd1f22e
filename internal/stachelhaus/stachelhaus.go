// Package stachelhaus re-predicts adenylation-domain substrates from
// Stachelhaus signature codes. A lookup of known signature→substrate pairs
// is matched against extracted codes by positional identity; ties keep
// every best-scoring substrate.
package stachelhaus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// DefaultCodeColumn is the zero-based TSV column holding the extracted
// signature code in prediction files produced by the extraction step.
const DefaultCodeColumn = 5

// Lookup maps known signature codes to their substrate. When several rows
// share a code, the first row wins.
type Lookup map[string]string

// LoadCodes reads a signature codes TSV. Each row is
// "<substrate>_<identifier>\t<code>"; the substrate is the name up to the
// first underscore.
func LoadCodes(path string) (Lookup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := newTSVReader(f)
	lookup := Lookup{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading codes %s: %w", path, err)
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("reading codes %s: row %v has no code column", path, row)
		}
		substrate, _, _ := strings.Cut(row[0], "_")
		code := row[1]
		if _, ok := lookup[code]; !ok {
			lookup[code] = substrate
		}
	}
	if len(lookup) == 0 {
		return nil, fmt.Errorf("reading codes %s: no signature codes found", path)
	}
	return lookup, nil
}

// Prediction is the best substrate match for one query code.
type Prediction struct {
	Substrates []string // All substrates tied at the best score, sorted.
	Score      int      // Number of identical positions against the best signature.
}

// Label joins the tied substrates with "/" for TSV output.
func (p Prediction) Label() string {
	return strings.Join(p.Substrates, "/")
}

// BestMatch scores the query code against every known signature and returns
// the substrate set with the highest positional-identity count. Comparison
// stops at the shorter of the two codes, so truncated extractions still
// score.
func (l Lookup) BestMatch(code string) Prediction {
	code = strings.ToUpper(code)
	best := 0
	substrates := map[string]bool{}
	for known, substrate := range l {
		match := 0
		n := min(len(known), len(code))
		for i := 0; i < n; i++ {
			if known[i] == code[i] {
				match++
			}
		}
		switch {
		case match > best:
			best = match
			substrates = map[string]bool{substrate: true}
		case match == best:
			substrates[substrate] = true
		}
	}

	pred := Prediction{Score: best}
	for s := range substrates {
		pred.Substrates = append(pred.Substrates, s)
	}
	sort.Strings(pred.Substrates)
	return pred
}

// Repredict streams the predictions TSV at inPath to outPath, appending a
// substrate label and match-score column to every data row. The header row
// is preserved with the new column names appended. codeColumn is the
// zero-based index of the extracted signature code.
func Repredict(lookup Lookup, inPath, outPath string, codeColumn int) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	r := newTSVReader(in)
	w := csv.NewWriter(out)
	w.Comma = '\t'

	header := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", inPath, err)
		}

		if header {
			header = false
			row = append(row, "stachelhaus_pred", "stachelhaus_matches")
		} else {
			if codeColumn >= len(row) {
				return fmt.Errorf("%s: row has %d columns, need code in column %d", inPath, len(row), codeColumn)
			}
			pred := lookup.BestMatch(row[codeColumn])
			row = append(row, pred.Label(), strconv.Itoa(pred.Score))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return out.Close()
}

func newTSVReader(f io.Reader) *csv.Reader {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1 // Rows vary in width across antiSMASH versions.
	r.LazyQuotes = true
	return r
}
