// Package export renders billing reports and invoices into downloadable files.
package export

import (
	"hospital_billing/internal/domain/format"
	"hospital_billing/internal/usecase/interfaces"
)

// CSVExporter writes the report rows only; the totals footer is left out so
// the file stays a flat table.
type CSVExporter struct{}

var _ interfaces.IReportExporter = CSVExporter{}

func NewCSVExporter() CSVExporter { return CSVExporter{} }

func (CSVExporter) Format() string { return "csv" }

func (CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

func (CSVExporter) Export(doc interfaces.ExportDocument) ([]byte, error) {
	out, err := format.ToCSV(doc.Rows)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
