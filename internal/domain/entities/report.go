package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SortKey selects both the field and the direction of a sort.

type SortKey string

const (
	SortDateDesc     SortKey = "date_desc"
	SortDateAsc      SortKey = "date_asc"
	SortNameAsc      SortKey = "name_asc"
	SortNameDesc     SortKey = "name_desc"
	SortAmountDesc   SortKey = "amount_desc"
	SortAmountAsc    SortKey = "amount_asc"
	SortNetDesc      SortKey = "net_desc"
	SortNetAsc       SortKey = "net_asc"
	SortDiscountDesc SortKey = "discount_desc"
	SortDueDesc      SortKey = "due_desc"
	SortTypeAsc      SortKey = "type_asc"

	DefaultSortKey = SortDateDesc
)

// OverviewSortKey orders the revenue overview rows.
type OverviewSortKey string

const (
	OverviewSortRevenue  OverviewSortKey = "revenue"
	OverviewSortPatients OverviewSortKey = "patients"
	OverviewSortDiscount OverviewSortKey = "discount"
)

// FilterCriteria restricts a record list.
//
// A zero From or To leaves that side of the range open. An empty Type or
// PatientTypeAll matches every record.
type FilterCriteria struct {
	From   time.Time
	To     time.Time
	Type   PatientType
	Search string
}

// HasRange reports whether any date bound is set.
func (c FilterCriteria) HasRange() bool {
	return !c.From.IsZero() || !c.To.IsZero()
}

// Totals holds one sum per monetary field of BillingRecord.
type Totals struct {
	Count        int             `json:"count"`
	GrossAmount  decimal.Decimal `json:"gross_amount"`
	Discount     decimal.Decimal `json:"discount"`
	PatientShare decimal.Decimal `json:"patient_share"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	NetBill      decimal.Decimal `json:"net_bill"`
	InvoiceDue   decimal.Decimal `json:"invoice_due"`
}

// Report is the output of one filter, sort and aggregate pass.
type Report struct {
	Records []BillingRecord `json:"records"`
	Totals  Totals          `json:"totals"`
}

// OverviewRow is the revenue of one patient type on one day.
type OverviewRow struct {
	Period                   string          `json:"period"`
	PatientType              PatientType     `json:"patient_type"`
	Gross                    decimal.Decimal `json:"gross"`
	Discount                 decimal.Decimal `json:"discount"`
	NetAfterDiscount         decimal.Decimal `json:"net_after_discount"`
	PatientShare             decimal.Decimal `json:"patient_share"`
	NetExcludingPatientShare decimal.Decimal `json:"net_excluding_patient_share"`
}

// Overview is the grouped revenue table plus its column totals.
type Overview struct {
	Rows   []OverviewRow `json:"rows"`
	Totals OverviewRow   `json:"totals"`
}
