package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/domain/format"
	"hospital_billing/internal/usecase/interfaces"
)

// InvoicePrinter renders one invoice on an A4 portrait page laid out like the
// printed hospital invoice: header, patient block, service lines, totals and
// payment details.
type InvoicePrinter struct{}

var _ interfaces.IInvoicePrinter = InvoicePrinter{}

func NewInvoicePrinter() InvoicePrinter { return InvoicePrinter{} }

var invoiceColumns = []struct {
	title string
	width float64
	align string
}{
	{"S.No", 10, "C"},
	{"Code", 18, "L"},
	{"Description", 46, "L"},
	{"Qty", 10, "C"},
	{"Gross", 22, "R"},
	{"Discount", 22, "R"},
	{"Pat. Share", 22, "R"},
	{"Tax", 18, "R"},
	{"Net", 22, "R"},
}

func (InvoicePrinter) PrintInvoice(inv entities.Invoice, hospital entities.HospitalInfo) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 8, tr(hospital.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, line := range []string{hospital.Address, "Contact: " + hospital.Contact, hospital.Website} {
		pdf.CellFormat(0, 5, tr(line), "", 1, "C", false, 0, "")
	}
	if hospital.AppointmentLine != "" {
		pdf.CellFormat(0, 5, tr("Appointments: "+hospital.AppointmentLine), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, "INVOICE", "TB", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 9)
	details := [][2]string{
		{"Invoice No: " + inv.InvoiceNo, "Date: " + format.FormatDate(inv.Date)},
		{"Visit ID: " + inv.VisitID, "Payment Mode: " + string(inv.PaymentMode)},
		{"Patient: " + inv.PatientName, "Doctor: " + inv.Doctor},
		{"Mobile: " + inv.Mobile, "Address: " + inv.Address},
	}
	for _, d := range details {
		pdf.CellFormat(95, 5, tr(d[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 5, tr(d[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 8)
	for _, c := range invoiceColumns {
		pdf.CellFormat(c.width, 6, c.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	var total entities.InvoiceLineItem
	for i, item := range inv.Items {
		values := []string{
			fmt.Sprintf("%d", i+1),
			item.Code,
			item.Description,
			fmt.Sprintf("%d", item.Quantity),
			format.FormatAmount(item.GrossAmount),
			format.FormatAmount(item.Discount),
			format.FormatAmount(item.PatientShare),
			format.FormatAmount(item.TaxAmount),
			format.FormatAmount(item.NetBill),
		}
		for j, c := range invoiceColumns {
			pdf.CellFormat(c.width, 6, tr(values[j]), "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)

		total.GrossAmount = total.GrossAmount.Add(item.GrossAmount)
		total.Discount = total.Discount.Add(item.Discount)
		total.PatientShare = total.PatientShare.Add(item.PatientShare)
		total.TaxAmount = total.TaxAmount.Add(item.TaxAmount)
		total.NetBill = total.NetBill.Add(item.NetBill)
	}

	pdf.SetFont("Arial", "B", 8)
	labelWidth := invoiceColumns[0].width + invoiceColumns[1].width + invoiceColumns[2].width + invoiceColumns[3].width
	pdf.CellFormat(labelWidth, 6, "Total", "1", 0, "R", false, 0, "")
	for j, v := range []string{
		format.FormatAmount(total.GrossAmount),
		format.FormatAmount(total.Discount),
		format.FormatAmount(total.PatientShare),
		format.FormatAmount(total.TaxAmount),
		format.FormatAmount(total.NetBill),
	} {
		pdf.CellFormat(invoiceColumns[4+j].width, 6, v, "1", 0, "R", false, 0, "")
	}
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 9)
	summary := [][2]string{
		{"Net Tax Collection", format.FormatCurrency(inv.NetTaxCollection)},
		{"Invoice Due", format.FormatCurrency(inv.InvoiceDue)},
		{"Status", string(inv.Status)},
		{"Payment Method", inv.PaymentMethod},
		{"Transaction No", inv.PaymentTxnNumber},
		{"Billed By", inv.BilledBy},
	}
	for _, s := range summary {
		pdf.CellFormat(45, 5, s[0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, tr(s[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 5, tr("Amount in words: "+inv.AmountInWords), "", "L", false)
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 5, tr("For "+inv.ForCenter), "", 1, "R", false, 0, "")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, "Authorised Signatory", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
