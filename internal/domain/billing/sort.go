package billing

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/domain/format"
)

var sortKeys = map[entities.SortKey]struct{}{
	entities.SortDateDesc:     {},
	entities.SortDateAsc:      {},
	entities.SortNameAsc:      {},
	entities.SortNameDesc:     {},
	entities.SortAmountDesc:   {},
	entities.SortAmountAsc:    {},
	entities.SortNetDesc:      {},
	entities.SortNetAsc:       {},
	entities.SortDiscountDesc: {},
	entities.SortDueDesc:      {},
	entities.SortTypeAsc:      {},
}

// NormalizeSortKey maps unknown or empty keys to entities.DefaultSortKey.
func NormalizeSortKey(key entities.SortKey) entities.SortKey {
	if _, ok := sortKeys[key]; ok {
		return key
	}
	return entities.DefaultSortKey
}

type sortItem struct {
	rec    entities.BillingRecord
	date   time.Time
	dateOK bool
}

// Sort returns a new slice ordered by key. Equal keys keep their input order.
//
// Names are compared with English collation, ignoring case and accents.
// Records with an unparseable date sort after every dated record in both
// directions.
func Sort(records []entities.BillingRecord, key entities.SortKey) []entities.BillingRecord {
	items := make([]sortItem, len(records))
	for i, r := range records {
		d, err := format.ParseDate(r.InvoiceDate)
		items[i] = sortItem{rec: r, date: d, dateOK: err == nil}
	}

	slices.SortStableFunc(items, comparator(NormalizeSortKey(key)))

	out := make([]entities.BillingRecord, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out
}

func comparator(key entities.SortKey) func(a, b sortItem) int {
	switch key {
	case entities.SortDateAsc:
		return func(a, b sortItem) int { return compareDates(a, b, false) }
	case entities.SortNameAsc, entities.SortNameDesc, entities.SortTypeAsc:
		// Collators carry scratch buffers, so each sort gets its own.
		coll := newCollator()
		switch key {
		case entities.SortNameAsc:
			return func(a, b sortItem) int { return coll.CompareString(a.rec.PatientName, b.rec.PatientName) }
		case entities.SortNameDesc:
			return func(a, b sortItem) int { return coll.CompareString(b.rec.PatientName, a.rec.PatientName) }
		default:
			return func(a, b sortItem) int {
				return coll.CompareString(string(a.rec.PatientType), string(b.rec.PatientType))
			}
		}
	case entities.SortAmountDesc:
		return byAmount(func(r entities.BillingRecord) decimal.Decimal { return r.GrossAmount }, true)
	case entities.SortAmountAsc:
		return byAmount(func(r entities.BillingRecord) decimal.Decimal { return r.GrossAmount }, false)
	case entities.SortNetDesc:
		return byAmount(func(r entities.BillingRecord) decimal.Decimal { return r.NetBill }, true)
	case entities.SortNetAsc:
		return byAmount(func(r entities.BillingRecord) decimal.Decimal { return r.NetBill }, false)
	case entities.SortDiscountDesc:
		return byAmount(func(r entities.BillingRecord) decimal.Decimal { return r.Discount }, true)
	case entities.SortDueDesc:
		return byAmount(func(r entities.BillingRecord) decimal.Decimal { return r.InvoiceDue }, true)
	default:
		return func(a, b sortItem) int { return compareDates(a, b, true) }
	}
}

func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase, collate.IgnoreDiacritics)
}

func byAmount(field func(entities.BillingRecord) decimal.Decimal, desc bool) func(a, b sortItem) int {
	return func(a, b sortItem) int {
		c := field(a.rec).Cmp(field(b.rec))
		if desc {
			return -c
		}
		return c
	}
}

func compareDates(a, b sortItem, desc bool) int {
	if a.dateOK != b.dateOK {
		if a.dateOK {
			return -1
		}
		return 1
	}
	if !a.dateOK {
		return 0
	}
	c := a.date.Compare(b.date)
	if desc {
		return -c
	}
	return c
}
