package repository

import (
	"github.com/shopspring/decimal"

	"hospital_billing/internal/domain/entities"
)

// SampleRecords is the demo data set served by the memory backend and used to
// seed an empty SQLite database.
func SampleRecords() []entities.BillingRecord {
	m := decimal.RequireFromString
	return []entities.BillingRecord{
		{
			ID: "P001", InvoiceNumber: "INV-072096", InvoiceDate: "17/07/2025",
			PatientName: "John Doe", Doctor: "Dr. Smith", PatientType: entities.PatientTypeInsurance,
			GrossAmount: m("2500.00"), Discount: m("300.00"), PatientShare: m("250.00"), TaxAmount: m("0.00"),
			NetBill: m("2200.00"), InvoiceDue: m("0.00"), Status: entities.InvoiceStatusPaid, BilledBy: "Admin User",
		},
		{
			ID: "P002", InvoiceNumber: "INV-071002", InvoiceDate: "13/07/2025",
			PatientName: "Jane Smith", Doctor: "Dr. Adams", PatientType: entities.PatientTypeCash,
			GrossAmount: m("2000.00"), Discount: m("200.00"), PatientShare: m("1800.00"), TaxAmount: m("0.00"),
			NetBill: m("1800.00"), InvoiceDue: m("500.00"), Status: entities.InvoiceStatusUnpaid, BilledBy: "Front Desk",
		},
		{
			ID: "P003", InvoiceNumber: "INV-071500", InvoiceDate: "15/07/2025",
			PatientName: "Robert Johnson", Doctor: "Dr. Wilson", PatientType: entities.PatientTypeCorporate,
			GrossAmount: m("1800.00"), Discount: m("150.00"), PatientShare: m("165.00"), TaxAmount: m("0.00"),
			NetBill: m("1650.00"), InvoiceDue: m("0.00"), Status: entities.InvoiceStatusPaid, BilledBy: "Admin User",
		},
		{
			ID: "P004", InvoiceNumber: "INV-072001", InvoiceDate: "20/07/2025",
			PatientName: "Mary Davis", Doctor: "Dr. Brown", PatientType: entities.PatientTypeInsurance,
			GrossAmount: m("3200.00"), Discount: m("400.00"), PatientShare: m("280.00"), TaxAmount: m("0.00"),
			NetBill: m("2800.00"), InvoiceDue: m("280.00"), Status: entities.InvoiceStatusUnpaid, BilledBy: "Front Desk",
		},
		{
			ID: "P005", InvoiceNumber: "INV-072201", InvoiceDate: "22/07/2025",
			PatientName: "Michael Wilson", Doctor: "Dr. Taylor", PatientType: entities.PatientTypeCash,
			GrossAmount: m("1500.00"), Discount: m("100.00"), PatientShare: m("1400.00"), TaxAmount: m("0.00"),
			NetBill: m("1400.00"), InvoiceDue: m("0.00"), Status: entities.InvoiceStatusPaid, BilledBy: "Admin User",
		},
		{
			ID: "P006", InvoiceNumber: "INV-072305", InvoiceDate: "23/07/2025",
			PatientName: "Émilie Laurent", Doctor: "Dr. Adams", PatientType: entities.PatientTypeCharity,
			GrossAmount: m("950.00"), Discount: m("950.00"), PatientShare: m("0.00"), TaxAmount: m("0.00"),
			NetBill: m("0.00"), InvoiceDue: m("0.00"), Status: entities.InvoiceStatusPaid, BilledBy: "Admin User",
		},
		{
			ID: "P007", InvoiceNumber: "INV-072410", InvoiceDate: "2025-07-24",
			PatientName: "Carlos Mendes", Doctor: "Dr. Brown", PatientType: entities.PatientTypeOther,
			GrossAmount: m("1234.57"), Discount: m("123.46"), PatientShare: m("1111.11"), TaxAmount: m("55.56"),
			NetBill: m("1166.67"), InvoiceDue: m("1166.67"), Status: entities.InvoiceStatusUnpaid, BilledBy: "Front Desk",
		},
	}
}
