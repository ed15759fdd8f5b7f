package billing

import (
	"slices"

	"github.com/shopspring/decimal"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/domain/format"
)

// Overview groups records by day and patient type. Rows come out in first
// seen order and are then stably sorted by key (revenue by default).
func Overview(records []entities.BillingRecord, key entities.OverviewSortKey) entities.Overview {
	type groupKey struct {
		period string
		ptype  entities.PatientType
	}
	index := make(map[groupKey]int)
	rows := make([]entities.OverviewRow, 0)
	for _, r := range records {
		k := groupKey{period: format.ISODate(r.InvoiceDate), ptype: r.PatientType}
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, entities.OverviewRow{Period: k.period, PatientType: k.ptype})
		}
		rows[i].Gross = rows[i].Gross.Add(r.GrossAmount)
		rows[i].Discount = rows[i].Discount.Add(r.Discount)
		rows[i].PatientShare = rows[i].PatientShare.Add(r.PatientShare)
	}

	totals := entities.OverviewRow{Period: "Total", PatientType: entities.PatientTypeAll}
	for i := range rows {
		rows[i].NetAfterDiscount = rows[i].Gross.Sub(rows[i].Discount)
		rows[i].NetExcludingPatientShare = rows[i].NetAfterDiscount.Sub(rows[i].PatientShare)

		totals.Gross = totals.Gross.Add(rows[i].Gross)
		totals.Discount = totals.Discount.Add(rows[i].Discount)
		totals.NetAfterDiscount = totals.NetAfterDiscount.Add(rows[i].NetAfterDiscount)
		totals.PatientShare = totals.PatientShare.Add(rows[i].PatientShare)
		totals.NetExcludingPatientShare = totals.NetExcludingPatientShare.Add(rows[i].NetExcludingPatientShare)
	}

	switch key {
	case entities.OverviewSortPatients:
		coll := newCollator()
		slices.SortStableFunc(rows, func(a, b entities.OverviewRow) int {
			return coll.CompareString(string(a.PatientType), string(b.PatientType))
		})
	case entities.OverviewSortDiscount:
		slices.SortStableFunc(rows, descBy(func(r entities.OverviewRow) decimal.Decimal { return r.Discount }))
	default:
		slices.SortStableFunc(rows, descBy(func(r entities.OverviewRow) decimal.Decimal { return r.NetExcludingPatientShare }))
	}

	return entities.Overview{Rows: rows, Totals: totals}
}

func descBy(field func(entities.OverviewRow) decimal.Decimal) func(a, b entities.OverviewRow) int {
	return func(a, b entities.OverviewRow) int {
		return field(b).Cmp(field(a))
	}
}
