package export

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"hospital_billing/internal/usecase/interfaces"
)

// Column widths in mm for an A4 landscape page (277mm usable).
var reportColumnWidths = map[string]float64{
	"Invoice No":    26,
	"Date":          22,
	"Patient":       40,
	"Doctor":        30,
	"Gross":         26,
	"Discount":      26,
	"Patient Share": 27,
	"Tax":           22,
	"Net":           26,
	"Due":           26,
}

const defaultColumnWidth = 25

// PDFExporter renders the report as a bordered table on A4 landscape pages.
type PDFExporter struct{}

var _ interfaces.IReportExporter = PDFExporter{}

func NewPDFExporter() PDFExporter { return PDFExporter{} }

func (PDFExporter) Format() string { return "pdf" }

func (PDFExporter) ContentType() string { return "application/pdf" }

func (PDFExporter) Export(doc interfaces.ExportDocument) ([]byte, error) {
	if len(doc.Rows) == 0 {
		return nil, nil
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	header := columnNames(doc.Rows[0])

	printHeader := func() {
		pdf.SetFont("Arial", "B", 9)
		for _, name := range header {
			pdf.CellFormat(columnWidth(name), 7, tr(name), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			printHeader()
		}
	})

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, tr(doc.Title))
	pdf.Ln(12)
	printHeader()

	for _, row := range doc.Rows {
		printRow(pdf, tr, header, rowValues(row, header))
	}
	if len(doc.Footer) > 0 {
		pdf.SetFont("Arial", "B", 9)
		printRow(pdf, tr, header, rowValues(doc.Footer, header))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func printRow(pdf *gofpdf.Fpdf, tr func(string) string, header, values []string) {
	for i, v := range values {
		align := "R"
		if !isAmountColumn(header[i]) {
			align = "L"
		}
		pdf.CellFormat(columnWidth(header[i]), 6, tr(v), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func columnWidth(name string) float64 {
	if w, ok := reportColumnWidths[name]; ok {
		return w
	}
	return defaultColumnWidth
}

func isAmountColumn(name string) bool {
	switch name {
	case "Gross", "Discount", "Patient Share", "Tax", "Net", "Due":
		return true
	}
	return false
}
