package response

import (
	"testing"

	"github.com/shopspring/decimal"

	"hospital_billing/internal/domain/entities"
)

func TestFromInvoice(t *testing.T) {
	inv := entities.Invoice{
		InvoiceNo: "INV-072096",
		VisitID:   "V000001",
		Date:      "2025-07-17",
		Items: []entities.InvoiceLineItem{
			{Code: "CONS", Quantity: 1, GrossAmount: decimal.NewFromInt(1000)},
			{Code: "LAB", Quantity: 1, GrossAmount: decimal.NewFromInt(1500)},
		},
		InvoiceDue: decimal.Zero,
	}
	hospital := entities.HospitalInfo{Name: "A1 Hospital"}

	res := FromInvoice(inv, hospital, entities.Totals{Count: 2, GrossAmount: decimal.NewFromInt(2500)})
	if res.Hospital.Name != "A1 Hospital" || res.DisplayDate != "Jul 17, 2025" {
		t.Fatalf("unexpected header %+v", res)
	}
	if len(res.Items) != 2 || res.Items[1].SerialNo != 2 || res.Items[1].GrossAmount != "1500.00" {
		t.Fatalf("unexpected items %+v", res.Items)
	}
	if res.Totals.GrossAmount != "2500.00" || res.InvoiceDue != "0.00" {
		t.Fatalf("unexpected totals %+v", res.Totals)
	}
}
