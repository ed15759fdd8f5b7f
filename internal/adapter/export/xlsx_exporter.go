package export

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"hospital_billing/internal/domain/format"
	"hospital_billing/internal/usecase/interfaces"
)

const reportSheet = "invoices"

// XLSXExporter writes the report to a single sheet: header, one row per
// record and a bold totals row.
type XLSXExporter struct{}

var _ interfaces.IReportExporter = XLSXExporter{}

func NewXLSXExporter() XLSXExporter { return XLSXExporter{} }

func (XLSXExporter) Format() string { return "xlsx" }

func (XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXExporter) Export(doc interfaces.ExportDocument) ([]byte, error) {
	if len(doc.Rows) == 0 {
		return nil, nil
	}
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, err
	}

	header := columnNames(doc.Rows[0])
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := writeRow(f, 1, header); err != nil {
		return nil, err
	}
	for i, row := range doc.Rows {
		if err := writeRow(f, i+2, rowValues(row, header)); err != nil {
			return nil, err
		}
	}
	last := len(doc.Rows) + 1
	if len(doc.Footer) > 0 {
		last++
		if err := writeRow(f, last, rowValues(doc.Footer, header)); err != nil {
			return nil, err
		}
		if err := styleRow(f, last, len(header), bold); err != nil {
			return nil, err
		}
	}
	if err := styleRow(f, 1, len(header), bold); err != nil {
		return nil, err
	}
	if err := f.SetPanes(reportSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	vals := make([]interface{}, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return f.SetSheetRow(reportSheet, cell, &vals)
}

func styleRow(f *excelize.File, row, cols, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(reportSheet, first, last, style)
}

func columnNames(row format.Row) []string {
	names := make([]string, len(row))
	for i, f := range row {
		names[i] = f.Name
	}
	return names
}

func rowValues(row format.Row, header []string) []string {
	values := make([]string, len(header))
	for i, name := range header {
		values[i] = row.Value(name)
	}
	return values
}
