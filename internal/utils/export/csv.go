// Package export builds CSV downloads from flat record sets. The
// contract: header row from the record keys, one row per record, values
// rendered as their plain string/number representation.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Dataset is a named, ordered flat table ready for CSV encoding.
type Dataset struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Filename is the download name for the dataset, e.g. "expenses.csv".
func (d Dataset) Filename() string {
	return d.Name + ".csv"
}

// BuildCSV encodes the dataset: header row first, then one row per
// record. Row width must match the header.
func BuildCSV(d Dataset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(d.Headers); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for i, row := range d.Rows {
		if len(row) != len(d.Headers) {
			return nil, fmt.Errorf("csv row %d has %d fields, header has %d", i, len(row), len(d.Headers))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
