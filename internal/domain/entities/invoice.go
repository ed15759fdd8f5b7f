package entities

import "github.com/shopspring/decimal"

type PaymentMode string

const (
	PaymentModeInsurance PaymentMode = "Insurance"
	PaymentModeCash      PaymentMode = "Cash"
)

// InvoiceLineItem is one service line of an invoice.
//
// Lines are additive: the invoice totals are the sum of its lines.
type InvoiceLineItem struct {
	Code         string          `json:"code"`
	Description  string          `json:"description"`
	Quantity     int             `json:"quantity"`
	GrossAmount  decimal.Decimal `json:"gross_amount"`
	Discount     decimal.Decimal `json:"discount"`
	PatientShare decimal.Decimal `json:"patient_share"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	NetBill      decimal.Decimal `json:"net_bill"`
}

// Invoice is the printable invoice detail generated from a BillingRecord.
type Invoice struct {
	InvoiceNo        string            `json:"invoice_no"`
	VisitID          string            `json:"visit_id"`
	Date             string            `json:"date"`
	PatientName      string            `json:"patient_name"`
	Doctor           string            `json:"doctor"`
	Mobile           string            `json:"mobile"`
	Address          string            `json:"address"`
	PaymentMode      PaymentMode       `json:"payment_mode"`
	Items            []InvoiceLineItem `json:"items"`
	BilledBy         string            `json:"billed_by"`
	Status           InvoiceStatus     `json:"status"`
	NetTaxCollection decimal.Decimal   `json:"net_tax_collection"`
	InvoiceDue       decimal.Decimal   `json:"invoice_due"`
	PaymentMethod    string            `json:"payment_method"`
	PaymentTxnNumber string            `json:"payment_txn_number"`
	AmountInWords    string            `json:"amount_in_words"`
	ForCenter        string            `json:"for_center"`
}

// LineTemplate describes how a record amount is attributed to one service line.
type LineTemplate struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Weight      decimal.Decimal `json:"weight"`
}

// HospitalInfo is the header printed on every invoice.
type HospitalInfo struct {
	Name            string `yaml:"name" json:"name"`
	Address         string `yaml:"address" json:"address"`
	Contact         string `yaml:"contact" json:"contact"`
	Website         string `yaml:"website" json:"website"`
	AppointmentLine string `yaml:"appointment_line" json:"appointment_line"`
	Center          string `yaml:"center" json:"center"`
}

// InvoiceProfile groups the presentation settings used to build invoices.
//
// The line split is placeholder display logic: the source data carries no
// real per-service breakdown.
type InvoiceProfile struct {
	Hospital HospitalInfo   `json:"hospital"`
	Lines    []LineTemplate `json:"lines"`
}
