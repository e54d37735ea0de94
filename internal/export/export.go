// Package export writes project overview rows to CSV or JSON for use outside
// the app.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/yeager/fedora-l10n/internal/model"
)

// Format identifies an export output format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// CSV column headers
var csvHeader = []string{"slug", "name", "translated_percent"}

// row is the JSON shape of one exported project.
type row struct {
	Slug              string  `json:"slug"`
	Name              string  `json:"name"`
	TranslatedPercent float64 `json:"translated_percent"`
}

// ParseFormat validates a format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want csv or json)", s)
	}
}

// Write writes rows in the given format.
func Write(w io.Writer, format Format, rows []model.ProjectOverview) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, rows)
	default:
		return WriteCSV(w, rows)
	}
}

// WriteCSV writes rows as CSV with a header line.
func WriteCSV(w io.Writer, rows []model.ProjectOverview) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Project.Slug,
			r.Project.Name,
			strconv.FormatFloat(r.TranslatedPercent, 'f', 1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []model.ProjectOverview) error {
	out := make([]row, 0, len(rows))
	for _, r := range rows {
		out = append(out, row{
			Slug:              r.Project.Slug,
			Name:              r.Project.Name,
			TranslatedPercent: r.TranslatedPercent,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteFile writes rows to a file in the given format.
func WriteFile(path string, format Format, rows []model.ProjectOverview) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, format, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
