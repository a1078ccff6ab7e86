// Package report serializes one run's screening output to disk.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/contactkeval/option-screener/internal/screen"
)

// CSVPath returns the dated report filename inside outdir.
func CSVPath(outdir string, asOf time.Time) string {
	return filepath.Join(outdir, fmt.Sprintf("options_heuristic_%s.csv", asOf.Format("20060102")))
}

// WriteCSV writes all candidates as a dated CSV report. Column headers
// come from the Candidate struct's csv tags, so the file layout follows
// the type definition.
func WriteCSV(candidates []screen.Candidate, outdir string, asOf time.Time) error {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return err
	}
	f, err := os.Create(CSVPath(outdir, asOf))
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&candidates, f)
}

// WriteJSON writes the full run result, failures included, alongside
// the CSV.
func WriteJSON(res *screen.Result, outdir string, asOf time.Time) error {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	name := fmt.Sprintf("options_heuristic_%s.json", asOf.Format("20060102"))
	return os.WriteFile(filepath.Join(outdir, name), b, 0644)
}
