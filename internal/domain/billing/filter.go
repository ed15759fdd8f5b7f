// Package billing holds the pure computations behind the billing dashboard:
// filtering, sorting, totals, overview grouping and invoice expansion.
//
// Functions never mutate their input and keep no state between calls.
package billing

import (
	"strings"
	"time"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/domain/format"
)

// Filter returns the records matching criteria, in input order.
//
// A record whose stored date cannot be parsed is dropped whenever a date
// bound is set and kept when the range is open on both sides.
func Filter(records []entities.BillingRecord, criteria entities.FilterCriteria) []entities.BillingRecord {
	search := strings.ToLower(strings.TrimSpace(criteria.Search))
	out := make([]entities.BillingRecord, 0, len(records))
	for _, r := range records {
		if !matchesType(r, criteria.Type) {
			continue
		}
		if !matchesRange(r, criteria) {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesType(r entities.BillingRecord, t entities.PatientType) bool {
	if t == "" || t == entities.PatientTypeAll {
		return true
	}
	return r.PatientType == t
}

func matchesRange(r entities.BillingRecord, c entities.FilterCriteria) bool {
	if !c.HasRange() {
		return true
	}
	d, err := format.ParseDate(r.InvoiceDate)
	if err != nil {
		return false
	}
	if !c.From.IsZero() && d.Before(calendarDay(c.From)) {
		return false
	}
	if !c.To.IsZero() && d.After(calendarDay(c.To)) {
		return false
	}
	return true
}

func matchesSearch(r entities.BillingRecord, lowered string) bool {
	return strings.Contains(strings.ToLower(r.PatientName), lowered) ||
		strings.Contains(strings.ToLower(r.InvoiceNumber), lowered) ||
		strings.Contains(strings.ToLower(r.Doctor), lowered)
}

// calendarDay drops the clock so bounds compare as whole days.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
