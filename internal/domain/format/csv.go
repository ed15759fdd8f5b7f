package format

import (
	"encoding/csv"
	"strings"
)

// Field is one named cell of an export row.
type Field struct {
	Name  string
	Value string
}

// Row is an ordered list of fields. All rows of one export share a schema.
type Row []Field

// Value returns the value of the named field, or "" when absent.
func (r Row) Value(name string) string {
	for _, f := range r {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// ToCSV serializes rows with a header taken from the first row's field
// names. Values containing commas, quotes or line breaks are quoted and
// embedded quotes are doubled. An empty input yields "" so callers can skip
// the export entirely.
func ToCSV(rows []Row) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}
	header := make([]string, len(rows[0]))
	for i, f := range rows[0] {
		header[i] = f.Name
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(header); err != nil {
		return "", err
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i, name := range header {
			record[i] = row.Value(name)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}
