package response

import (
	"testing"

	"github.com/shopspring/decimal"

	"hospital_billing/internal/domain/entities"
)

func TestFromReport(t *testing.T) {
	r := entities.Report{
		Records: []entities.BillingRecord{{
			ID: "P001", InvoiceNumber: "INV-072096", InvoiceDate: "17/07/2025",
			PatientName: "John Doe", PatientType: entities.PatientTypeInsurance,
			GrossAmount: decimal.RequireFromString("2500"), NetBill: decimal.RequireFromString("2200.005"),
			Status: entities.InvoiceStatusPaid,
		}},
		Totals: entities.Totals{Count: 1, NetBill: decimal.RequireFromString("1234567.5")},
	}

	res := FromReport(r)
	if len(res.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(res.Records))
	}
	rec := res.Records[0]
	if rec.DisplayDate != "Jul 17, 2025" || rec.GrossAmount != "2500.00" || rec.NetBill != "2200.01" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if res.Totals.NetBill != "1234567.50" || res.Totals.NetDisplay != "$1,234,567.50" {
		t.Fatalf("unexpected totals %+v", res.Totals)
	}

	if empty := FromReport(entities.Report{}); empty.Records == nil {
		t.Fatalf("records must serialize as []")
	}
}

func TestFromOverview(t *testing.T) {
	o := entities.Overview{
		Rows: []entities.OverviewRow{
			{Period: "2025-07-17", PatientType: entities.PatientTypeInsurance, NetExcludingPatientShare: decimal.NewFromInt(300)},
			{Period: "2025-07-13", PatientType: entities.PatientTypeCash, NetExcludingPatientShare: decimal.NewFromInt(100)},
		},
		Totals: entities.OverviewRow{Period: "Total", PatientType: entities.PatientTypeAll, NetExcludingPatientShare: decimal.NewFromInt(400)},
	}

	res := FromOverview(o)
	if res.Rows[0].RevenueShare != "75.00" || res.Rows[1].RevenueShare != "25.00" {
		t.Fatalf("unexpected shares %+v", res.Rows)
	}
	if res.Rows[0].DisplayPeriod != "Jul 17, 2025" || res.Totals.DisplayPeriod != "Total" || res.Totals.RevenueShare != "100.00" {
		t.Fatalf("unexpected totals %+v", res.Totals)
	}

	zero := FromOverview(entities.Overview{})
	if zero.Totals.RevenueShare != "0.00" {
		t.Fatalf("expected zero share for an empty overview, got %q", zero.Totals.RevenueShare)
	}
}
