package billing

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/domain/format"
)

var (
	ErrEmptyTemplate   = errors.New("invoice template has no lines")
	ErrInvalidWeight   = errors.New("invoice template weight must be positive")
	ErrWeightsNotWhole = errors.New("invoice template weights must sum to 1")
	ErrInvalidQuantity = errors.New("invoice template quantity must be positive")
)

var cent = decimal.New(1, -2)

// DefaultLineTemplates is the 40/60 consultation and laboratory split.
func DefaultLineTemplates() []entities.LineTemplate {
	return []entities.LineTemplate{
		{Code: "CONS001", Description: "Doctor Consultation", Quantity: 1, Weight: decimal.RequireFromString("0.4")},
		{Code: "LAB001", Description: "Laboratory Tests", Quantity: 3, Weight: decimal.RequireFromString("0.6")},
	}
}

// ValidateTemplate checks that weights are positive and sum to exactly 1.
func ValidateTemplate(lines []entities.LineTemplate) error {
	if len(lines) == 0 {
		return ErrEmptyTemplate
	}
	sum := decimal.Zero
	for _, l := range lines {
		if !l.Weight.IsPositive() {
			return fmt.Errorf("%w: line %s", ErrInvalidWeight, l.Code)
		}
		if l.Quantity <= 0 {
			return fmt.Errorf("%w: line %s", ErrInvalidQuantity, l.Code)
		}
		sum = sum.Add(l.Weight)
	}
	if !sum.Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: got %s", ErrWeightsNotWhole, sum)
	}
	return nil
}

// SplitLines attributes each monetary field of r across the template lines.
// Lines are whole cents, never negative, and add up to the record exactly.
func SplitLines(r entities.BillingRecord, lines []entities.LineTemplate) ([]entities.InvoiceLineItem, error) {
	if err := ValidateTemplate(lines); err != nil {
		return nil, err
	}
	gross := splitAmount(r.GrossAmount, lines)
	discount := splitAmount(r.Discount, lines)
	share := splitAmount(r.PatientShare, lines)
	tax := splitAmount(r.TaxAmount, lines)
	net := splitAmount(r.NetBill, lines)

	items := make([]entities.InvoiceLineItem, len(lines))
	for i, l := range lines {
		items[i] = entities.InvoiceLineItem{
			Code:         l.Code,
			Description:  l.Description,
			Quantity:     l.Quantity,
			GrossAmount:  gross[i],
			Discount:     discount[i],
			PatientShare: share[i],
			TaxAmount:    tax[i],
			NetBill:      net[i],
		}
	}
	return items, nil
}

// splitAmount allocates total across lines by largest remainder: each share
// is truncated to cents and the leftover cents go one at a time to the lines
// with the largest truncated fraction. Shares are never negative and always
// sum to total.
func splitAmount(total decimal.Decimal, lines []entities.LineTemplate) []decimal.Decimal {
	parts := make([]decimal.Decimal, len(lines))
	remainders := make([]decimal.Decimal, len(lines))
	allocated := decimal.Zero
	for i, l := range lines {
		exact := total.Mul(l.Weight)
		parts[i] = exact.Truncate(2)
		remainders[i] = exact.Sub(parts[i])
		allocated = allocated.Add(parts[i])
	}

	order := make([]int, len(lines))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return remainders[b].Cmp(remainders[a])
	})

	leftover := total.Sub(allocated)
	for i := 0; leftover.GreaterThanOrEqual(cent); i++ {
		idx := order[i%len(order)]
		parts[idx] = parts[idx].Add(cent)
		leftover = leftover.Sub(cent)
	}
	// sub-cent input precision
	last := len(parts) - 1
	parts[last] = parts[last].Add(leftover)
	return parts
}

// ExpandInvoice builds the printable invoice for r. txnNumber is supplied by
// the caller so expansion stays deterministic.
func ExpandInvoice(r entities.BillingRecord, profile entities.InvoiceProfile, txnNumber string) (entities.Invoice, error) {
	lines := profile.Lines
	if len(lines) == 0 {
		lines = DefaultLineTemplates()
	}
	items, err := SplitLines(r, lines)
	if err != nil {
		return entities.Invoice{}, err
	}
	words, err := format.AmountToWords(r.NetBill)
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("amount in words for %s: %w", r.InvoiceNumber, err)
	}

	mode, method := paymentModeFor(r.PatientType)
	center := profile.Hospital.Center
	if center == "" {
		center = profile.Hospital.Name
	}

	return entities.Invoice{
		InvoiceNo:        r.InvoiceNumber,
		VisitID:          VisitID(r.ID),
		Date:             r.InvoiceDate,
		PatientName:      r.PatientName,
		Doctor:           r.Doctor,
		Mobile:           profile.Hospital.Contact,
		Address:          profile.Hospital.Address,
		PaymentMode:      mode,
		Items:            items,
		BilledBy:         r.BilledBy,
		Status:           r.Status,
		NetTaxCollection: r.TaxAmount,
		InvoiceDue:       r.InvoiceDue,
		PaymentMethod:    method,
		PaymentTxnNumber: txnNumber,
		AmountInWords:    words,
		ForCenter:        center,
	}, nil
}

// LineTotals sums the invoice lines the same way Aggregate sums records.
func LineTotals(items []entities.InvoiceLineItem) entities.Totals {
	t := entities.Totals{}
	for _, it := range items {
		t.Count++
		t.GrossAmount = t.GrossAmount.Add(it.GrossAmount)
		t.Discount = t.Discount.Add(it.Discount)
		t.PatientShare = t.PatientShare.Add(it.PatientShare)
		t.TaxAmount = t.TaxAmount.Add(it.TaxAmount)
		t.NetBill = t.NetBill.Add(it.NetBill)
	}
	return t
}

// VisitID derives "V000042" style ids from the digits of a record id.
func VisitID(recordID string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, recordID)
	if digits == "" {
		digits = recordID
	}
	if len(digits) < 6 {
		digits = strings.Repeat("0", 6-len(digits)) + digits
	}
	return "V" + digits
}

func paymentModeFor(t entities.PatientType) (entities.PaymentMode, string) {
	if t == entities.PatientTypeInsurance {
		return entities.PaymentModeInsurance, "Insurance Claim"
	}
	return entities.PaymentModeCash, "Cash Payment"
}
