package entities

import "github.com/shopspring/decimal"

// PatientType is the categorical type used by the dashboard filters.
//
// PatientTypeAll is a filter sentinel and is never stored on a record.

type PatientType string

const (
	PatientTypeAll       PatientType = "All"
	PatientTypeCash      PatientType = "Cash Patient"
	PatientTypeInsurance PatientType = "Insurance Patient"
	PatientTypeCorporate PatientType = "Corporate"
	PatientTypeCharity   PatientType = "Charity"
	PatientTypeOther     PatientType = "Other"
)

// PatientTypes lists the filter options in display order.
var PatientTypes = []PatientType{
	PatientTypeAll,
	PatientTypeCash,
	PatientTypeInsurance,
	PatientTypeCorporate,
	PatientTypeCharity,
	PatientTypeOther,
}

// Valid reports whether t is one of the stored record types.
func (t PatientType) Valid() bool {
	switch t {
	case PatientTypeCash, PatientTypeInsurance, PatientTypeCorporate, PatientTypeCharity, PatientTypeOther:
		return true
	}
	return false
}

type InvoiceStatus string

const (
	InvoiceStatusPaid   InvoiceStatus = "Paid"
	InvoiceStatusUnpaid InvoiceStatus = "Unpaid"
)

// BillingRecord is one billed visit as shown on the invoice list.
//
// Storage model (DynamoDB / SQLite):
//   - PK: id
//   - InvoiceDate is kept as the stored string (dd/mm/yyyy or yyyy-mm-dd).
//     It is parsed on demand so a malformed stored value never breaks a read.
//
// Monetary representation:
//   - every amount is a decimal with cent precision; sums are exact.

type BillingRecord struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceDate   string          `json:"invoice_date"`
	PatientName   string          `json:"patient_name"`
	Doctor        string          `json:"doctor"`
	PatientType   PatientType     `json:"patient_type"`
	GrossAmount   decimal.Decimal `json:"gross_amount"`
	Discount      decimal.Decimal `json:"discount"`
	PatientShare  decimal.Decimal `json:"patient_share"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	NetBill       decimal.Decimal `json:"net_bill"`
	InvoiceDue    decimal.Decimal `json:"invoice_due"`
	Status        InvoiceStatus   `json:"status"`
	BilledBy      string          `json:"billed_by"`
}

// Paid reports whether the record has no outstanding balance.
func (r BillingRecord) Paid() bool {
	return r.Status == InvoiceStatusPaid
}
