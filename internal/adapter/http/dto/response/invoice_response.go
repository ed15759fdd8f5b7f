package response

import (
	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/domain/format"
)

type InvoiceLineResponse struct {
	SerialNo     int    `json:"serial_no"`
	Code         string `json:"code"`
	Description  string `json:"description"`
	Quantity     int    `json:"quantity"`
	GrossAmount  string `json:"gross_amount"`
	Discount     string `json:"discount"`
	PatientShare string `json:"patient_share"`
	TaxAmount    string `json:"tax_amount"`
	NetBill      string `json:"net_bill"`
}

type InvoiceResponse struct {
	Hospital         entities.HospitalInfo `json:"hospital"`
	InvoiceNo        string                `json:"invoice_no"`
	VisitID          string                `json:"visit_id"`
	Date             string                `json:"date"`
	DisplayDate      string                `json:"display_date"`
	PatientName      string                `json:"patient_name"`
	Doctor           string                `json:"doctor"`
	Mobile           string                `json:"mobile"`
	Address          string                `json:"address"`
	PaymentMode      string                `json:"payment_mode"`
	Items            []InvoiceLineResponse `json:"items"`
	Totals           TotalsResponse        `json:"totals"`
	BilledBy         string                `json:"billed_by"`
	Status           string                `json:"status"`
	NetTaxCollection string                `json:"net_tax_collection"`
	InvoiceDue       string                `json:"invoice_due"`
	PaymentMethod    string                `json:"payment_method"`
	PaymentTxnNumber string                `json:"payment_txn_number"`
	AmountInWords    string                `json:"amount_in_words"`
	ForCenter        string                `json:"for_center"`
}

func FromInvoice(inv entities.Invoice, hospital entities.HospitalInfo, totals entities.Totals) InvoiceResponse {
	items := make([]InvoiceLineResponse, 0, len(inv.Items))
	for i, it := range inv.Items {
		items = append(items, InvoiceLineResponse{
			SerialNo:     i + 1,
			Code:         it.Code,
			Description:  it.Description,
			Quantity:     it.Quantity,
			GrossAmount:  format.FormatAmount(it.GrossAmount),
			Discount:     format.FormatAmount(it.Discount),
			PatientShare: format.FormatAmount(it.PatientShare),
			TaxAmount:    format.FormatAmount(it.TaxAmount),
			NetBill:      format.FormatAmount(it.NetBill),
		})
	}
	return InvoiceResponse{
		Hospital:         hospital,
		InvoiceNo:        inv.InvoiceNo,
		VisitID:          inv.VisitID,
		Date:             inv.Date,
		DisplayDate:      format.FormatDate(inv.Date),
		PatientName:      inv.PatientName,
		Doctor:           inv.Doctor,
		Mobile:           inv.Mobile,
		Address:          inv.Address,
		PaymentMode:      string(inv.PaymentMode),
		Items:            items,
		Totals:           FromTotals(totals),
		BilledBy:         inv.BilledBy,
		Status:           string(inv.Status),
		NetTaxCollection: format.FormatAmount(inv.NetTaxCollection),
		InvoiceDue:       format.FormatAmount(inv.InvoiceDue),
		PaymentMethod:    inv.PaymentMethod,
		PaymentTxnNumber: inv.PaymentTxnNumber,
		AmountInWords:    inv.AmountInWords,
		ForCenter:        inv.ForCenter,
	}
}
