package interfaces

import (
	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/domain/format"
)

// ExportDocument is a format-agnostic table: one Row per record plus an
// optional Footer with the totals.
type ExportDocument struct {
	Title  string
	Rows   []format.Row
	Footer format.Row
}

// IReportExporter renders an ExportDocument into one file format.
type IReportExporter interface {
	Format() string
	ContentType() string
	Export(doc ExportDocument) ([]byte, error)
}

// IInvoicePrinter renders a single printable invoice.
type IInvoicePrinter interface {
	PrintInvoice(inv entities.Invoice, hospital entities.HospitalInfo) ([]byte, error)
}
