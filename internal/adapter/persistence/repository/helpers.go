package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"hospital_billing/internal/domain/billing"
	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/domain/format"
)

// Money is stored as a fixed two-digit string so values round-trip exactly.
func moneyToString(d decimal.Decimal) string {
	return format.FormatAmount(d)
}

func parseMoney(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s %q: %w", field, s, err)
	}
	return d, nil
}

// invoiceDay is the sortable yyyy-mm-dd key of a stored date, or "" when the
// stored value cannot be parsed.
func invoiceDay(stored string) string {
	t, err := format.ParseDate(stored)
	if err != nil {
		return ""
	}
	return t.Format(format.ISODateLayout)
}

func dayBound(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(format.ISODateLayout)
}

// inRange applies the same inclusive, fail-closed date rule as the report
// filter.
func inRange(records []entities.BillingRecord, from, to time.Time) []entities.BillingRecord {
	return billing.Filter(records, entities.FilterCriteria{From: from, To: to})
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

var (
	ErrDuplicateRecord  = errors.New("record already exists")
	ErrDuplicatePayment = errors.New("payment already exists")
)
