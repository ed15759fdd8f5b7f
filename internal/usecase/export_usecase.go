package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/domain/format"
	"hospital_billing/internal/observability/metrics"
	"hospital_billing/internal/usecase/interfaces"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatPDF  = "pdf"
	ExportFormatXLSX = "xlsx"

	exportBaseName = "invoices"
	exportTitle    = "Invoice List"
)

var ErrUnsupportedExportFormat = errors.New("unsupported export format")

// ExportResult is an export ready to be written to the client. Empty Data
// means there was nothing to export.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
	Records     int
}

// IExportUseCase renders the current filtered and sorted invoice list.

type IExportUseCase interface {
	Export(ctx context.Context, exportFormat string, criteria entities.FilterCriteria, key entities.SortKey) (ExportResult, error)
	Formats() []string
}

type ExportUseCase struct {
	reports   IReportUseCase
	exporters map[string]interfaces.IReportExporter
	order     []string
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(reports IReportUseCase, exporters ...interfaces.IReportExporter) *ExportUseCase {
	u := &ExportUseCase{reports: reports, exporters: make(map[string]interfaces.IReportExporter, len(exporters))}
	for _, e := range exporters {
		f := strings.ToLower(e.Format())
		if _, dup := u.exporters[f]; !dup {
			u.order = append(u.order, f)
		}
		u.exporters[f] = e
	}
	return u
}

func (u *ExportUseCase) Formats() []string {
	return append([]string(nil), u.order...)
}

func (u *ExportUseCase) Export(ctx context.Context, exportFormat string, criteria entities.FilterCriteria, key entities.SortKey) (ExportResult, error) {
	start := time.Now()
	exportFormat = strings.ToLower(strings.TrimSpace(exportFormat))
	exporter, ok := u.exporters[exportFormat]
	if !ok {
		log.Printf("[export][usecase] unsupported format=%q", exportFormat)
		metrics.ObserveExport(exportFormat, metrics.ResultError, time.Since(start))
		return ExportResult{}, fmt.Errorf("%w: %q", ErrUnsupportedExportFormat, exportFormat)
	}

	report, err := u.reports.List(ctx, criteria, key)
	if err != nil {
		metrics.ObserveExport(exportFormat, metrics.ResultError, time.Since(start))
		return ExportResult{}, err
	}

	result := ExportResult{
		Filename:    exportBaseName + "." + exportFormat,
		ContentType: exporter.ContentType(),
		Records:     len(report.Records),
	}
	if len(report.Records) == 0 {
		log.Printf("[export][usecase] nothing to export format=%s", exportFormat)
		metrics.ObserveExport(exportFormat, metrics.ResultEmpty, time.Since(start))
		return result, nil
	}

	doc := interfaces.ExportDocument{
		Title:  exportTitle,
		Rows:   ReportRows(report.Records),
		Footer: TotalsRow(report.Totals),
	}
	data, err := exporter.Export(doc)
	if err != nil {
		log.Printf("[export][usecase] render failed format=%s err=%v", exportFormat, err)
		metrics.ObserveExport(exportFormat, metrics.ResultError, time.Since(start))
		return ExportResult{}, err
	}
	result.Data = data

	metrics.ObserveExport(exportFormat, metrics.ResultSuccess, time.Since(start))
	log.Printf("[export][usecase] export success format=%s records=%d bytes=%d", exportFormat, len(report.Records), len(data))
	return result, nil
}

// ReportRows lays out the invoice list columns in display order.
func ReportRows(records []entities.BillingRecord) []format.Row {
	rows := make([]format.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, format.Row{
			{Name: "Invoice No", Value: r.InvoiceNumber},
			{Name: "Date", Value: r.InvoiceDate},
			{Name: "Patient", Value: r.PatientName},
			{Name: "Doctor", Value: r.Doctor},
			{Name: "Gross", Value: format.FormatAmount(r.GrossAmount)},
			{Name: "Discount", Value: format.FormatAmount(r.Discount)},
			{Name: "Patient Share", Value: format.FormatAmount(r.PatientShare)},
			{Name: "Tax", Value: format.FormatAmount(r.TaxAmount)},
			{Name: "Net", Value: format.FormatAmount(r.NetBill)},
			{Name: "Due", Value: format.FormatAmount(r.InvoiceDue)},
		})
	}
	return rows
}

func TotalsRow(t entities.Totals) format.Row {
	return format.Row{
		{Name: "Invoice No", Value: "Total"},
		{Name: "Date", Value: ""},
		{Name: "Patient", Value: fmt.Sprintf("%d invoices", t.Count)},
		{Name: "Doctor", Value: ""},
		{Name: "Gross", Value: format.FormatAmount(t.GrossAmount)},
		{Name: "Discount", Value: format.FormatAmount(t.Discount)},
		{Name: "Patient Share", Value: format.FormatAmount(t.PatientShare)},
		{Name: "Tax", Value: format.FormatAmount(t.TaxAmount)},
		{Name: "Net", Value: format.FormatAmount(t.NetBill)},
		{Name: "Due", Value: format.FormatAmount(t.InvoiceDue)},
	}
}
