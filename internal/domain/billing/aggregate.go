package billing

import (
	"github.com/shopspring/decimal"

	"hospital_billing/internal/domain/entities"
)

// Aggregate sums every monetary field independently. Empty input yields
// zero totals.
func Aggregate(records []entities.BillingRecord) entities.Totals {
	t := entities.Totals{
		GrossAmount:  decimal.Zero,
		Discount:     decimal.Zero,
		PatientShare: decimal.Zero,
		TaxAmount:    decimal.Zero,
		NetBill:      decimal.Zero,
		InvoiceDue:   decimal.Zero,
	}
	for _, r := range records {
		t.Count++
		t.GrossAmount = t.GrossAmount.Add(r.GrossAmount)
		t.Discount = t.Discount.Add(r.Discount)
		t.PatientShare = t.PatientShare.Add(r.PatientShare)
		t.TaxAmount = t.TaxAmount.Add(r.TaxAmount)
		t.NetBill = t.NetBill.Add(r.NetBill)
		t.InvoiceDue = t.InvoiceDue.Add(r.InvoiceDue)
	}
	return t
}

// Percentage returns value as a percentage of total, or zero when total is zero.
func Percentage(value, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return value.Div(total).Mul(decimal.NewFromInt(100))
}

// Run is the explicit filter, sort and aggregate pipeline. Totals are taken
// over the filtered records, so the sort key never changes them.
func Run(records []entities.BillingRecord, criteria entities.FilterCriteria, key entities.SortKey) entities.Report {
	filtered := Filter(records, criteria)
	return entities.Report{
		Records: Sort(filtered, key),
		Totals:  Aggregate(filtered),
	}
}
