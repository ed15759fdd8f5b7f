package response

import (
	"github.com/shopspring/decimal"

	"hospital_billing/internal/domain/billing"
	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/domain/format"
)

// Amounts are rendered as fixed two-decimal strings so clients never see
// float artifacts.

type RecordResponse struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   string `json:"invoice_date"`
	DisplayDate   string `json:"display_date"`
	PatientName   string `json:"patient_name"`
	Doctor        string `json:"doctor"`
	PatientType   string `json:"patient_type"`
	GrossAmount   string `json:"gross_amount"`
	Discount      string `json:"discount"`
	PatientShare  string `json:"patient_share"`
	TaxAmount     string `json:"tax_amount"`
	NetBill       string `json:"net_bill"`
	InvoiceDue    string `json:"invoice_due"`
	Status        string `json:"status"`
	BilledBy      string `json:"billed_by"`
}

type TotalsResponse struct {
	Count        int    `json:"count"`
	GrossAmount  string `json:"gross_amount"`
	Discount     string `json:"discount"`
	PatientShare string `json:"patient_share"`
	TaxAmount    string `json:"tax_amount"`
	NetBill      string `json:"net_bill"`
	InvoiceDue   string `json:"invoice_due"`
	NetDisplay   string `json:"net_display"`
}

type ReportResponse struct {
	Records []RecordResponse `json:"records"`
	Totals  TotalsResponse   `json:"totals"`
}

type OverviewRowResponse struct {
	Period                   string `json:"period"`
	DisplayPeriod            string `json:"display_period"`
	PatientType              string `json:"patient_type"`
	Gross                    string `json:"gross"`
	Discount                 string `json:"discount"`
	NetAfterDiscount         string `json:"net_after_discount"`
	PatientShare             string `json:"patient_share"`
	NetExcludingPatientShare string `json:"net_excluding_patient_share"`
	RevenueShare             string `json:"revenue_share_percent"`
}

type OverviewResponse struct {
	Rows   []OverviewRowResponse `json:"rows"`
	Totals OverviewRowResponse   `json:"totals"`
}

func FromRecord(r entities.BillingRecord) RecordResponse {
	return RecordResponse{
		ID:            r.ID,
		InvoiceNumber: r.InvoiceNumber,
		InvoiceDate:   r.InvoiceDate,
		DisplayDate:   format.FormatDate(r.InvoiceDate),
		PatientName:   r.PatientName,
		Doctor:        r.Doctor,
		PatientType:   string(r.PatientType),
		GrossAmount:   format.FormatAmount(r.GrossAmount),
		Discount:      format.FormatAmount(r.Discount),
		PatientShare:  format.FormatAmount(r.PatientShare),
		TaxAmount:     format.FormatAmount(r.TaxAmount),
		NetBill:       format.FormatAmount(r.NetBill),
		InvoiceDue:    format.FormatAmount(r.InvoiceDue),
		Status:        string(r.Status),
		BilledBy:      r.BilledBy,
	}
}

func FromTotals(t entities.Totals) TotalsResponse {
	return TotalsResponse{
		Count:        t.Count,
		GrossAmount:  format.FormatAmount(t.GrossAmount),
		Discount:     format.FormatAmount(t.Discount),
		PatientShare: format.FormatAmount(t.PatientShare),
		TaxAmount:    format.FormatAmount(t.TaxAmount),
		NetBill:      format.FormatAmount(t.NetBill),
		InvoiceDue:   format.FormatAmount(t.InvoiceDue),
		NetDisplay:   format.FormatCurrency(t.NetBill),
	}
}

func FromReport(r entities.Report) ReportResponse {
	records := make([]RecordResponse, 0, len(r.Records))
	for _, rec := range r.Records {
		records = append(records, FromRecord(rec))
	}
	return ReportResponse{Records: records, Totals: FromTotals(r.Totals)}
}

// FromOverview adds each row's share of the total net excluding patient share.
func FromOverview(o entities.Overview) OverviewResponse {
	total := o.Totals.NetExcludingPatientShare
	rows := make([]OverviewRowResponse, 0, len(o.Rows))
	for _, row := range o.Rows {
		rows = append(rows, fromOverviewRow(row, billing.Percentage(row.NetExcludingPatientShare, total)))
	}
	return OverviewResponse{Rows: rows, Totals: fromOverviewRow(o.Totals, billing.Percentage(total, total))}
}

func fromOverviewRow(row entities.OverviewRow, share decimal.Decimal) OverviewRowResponse {
	return OverviewRowResponse{
		Period:                   row.Period,
		DisplayPeriod:            format.FormatDate(row.Period),
		PatientType:              string(row.PatientType),
		Gross:                    format.FormatAmount(row.Gross),
		Discount:                 format.FormatAmount(row.Discount),
		NetAfterDiscount:         format.FormatAmount(row.NetAfterDiscount),
		PatientShare:             format.FormatAmount(row.PatientShare),
		NetExcludingPatientShare: format.FormatAmount(row.NetExcludingPatientShare),
		RevenueShare:             format.FormatAmount(share),
	}
}
