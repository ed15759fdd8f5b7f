package billing

import (
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"hospital_billing/internal/domain/entities"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y, m, dd int) time.Time { return time.Date(y, time.Month(m), dd, 0, 0, 0, 0, time.UTC) }

func rec(id, name, date string, ptype entities.PatientType, gross, net string) entities.BillingRecord {
	return entities.BillingRecord{
		ID:            id,
		InvoiceNumber: "INV-" + id,
		InvoiceDate:   date,
		PatientName:   name,
		Doctor:        "Dr. Smith",
		PatientType:   ptype,
		GrossAmount:   d(gross),
		Discount:      d("10"),
		PatientShare:  d("5.5"),
		TaxAmount:     d("1.25"),
		NetBill:       d(net),
		InvoiceDue:    d("0"),
		Status:        entities.InvoiceStatusPaid,
	}
}

func fixture() []entities.BillingRecord {
	return []entities.BillingRecord{
		rec("1", "John Doe", "17/07/2025", entities.PatientTypeInsurance, "2500", "2200"),
		rec("2", "Jane Smith", "13/07/2025", entities.PatientTypeCash, "2000", "1800"),
		rec("3", "Robert Johnson", "15/07/2025", entities.PatientTypeCorporate, "1800", "1650"),
		rec("4", "Mary Davis", "2025-07-20", entities.PatientTypeInsurance, "3200", "2800"),
		rec("5", "Michael Wilson", "22/07/2025", entities.PatientTypeCash, "1500", "1400"),
	}
}

func ids(records []entities.BillingRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	records := fixture()

	t.Run("inclusive range", func(t *testing.T) {
		got := Filter(records, entities.FilterCriteria{From: day(2025, 7, 15), To: day(2025, 7, 20)})
		if want := []string{"1", "3", "4"}; !slices.Equal(ids(got), want) {
			t.Fatalf("expected %v, got %v", want, ids(got))
		}
	})

	t.Run("open lower bound", func(t *testing.T) {
		got := Filter(records, entities.FilterCriteria{To: day(2025, 7, 15)})
		if want := []string{"2", "3"}; !slices.Equal(ids(got), want) {
			t.Fatalf("expected %v, got %v", want, ids(got))
		}
	})

	t.Run("open upper bound", func(t *testing.T) {
		got := Filter(records, entities.FilterCriteria{From: day(2025, 7, 20)})
		if want := []string{"4", "5"}; !slices.Equal(ids(got), want) {
			t.Fatalf("expected %v, got %v", want, ids(got))
		}
	})

	t.Run("bounds with clock time still compare by day", func(t *testing.T) {
		from := time.Date(2025, 7, 17, 15, 30, 0, 0, time.UTC)
		got := Filter(records, entities.FilterCriteria{From: from, To: from})
		if want := []string{"1"}; !slices.Equal(ids(got), want) {
			t.Fatalf("expected %v, got %v", want, ids(got))
		}
	})

	t.Run("type", func(t *testing.T) {
		got := Filter(records, entities.FilterCriteria{Type: entities.PatientTypeCash})
		if want := []string{"2", "5"}; !slices.Equal(ids(got), want) {
			t.Fatalf("expected %v, got %v", want, ids(got))
		}
		if got := Filter(records, entities.FilterCriteria{Type: entities.PatientTypeAll}); len(got) != len(records) {
			t.Fatalf("All should match every record, got %d", len(got))
		}
		if got := Filter(records, entities.FilterCriteria{Type: "cash patient"}); len(got) != 0 {
			t.Fatalf("type match must be case-sensitive, got %v", ids(got))
		}
	})

	t.Run("type and range combined", func(t *testing.T) {
		got := Filter(records, entities.FilterCriteria{Type: entities.PatientTypeInsurance, From: day(2025, 7, 18)})
		if want := []string{"4"}; !slices.Equal(ids(got), want) {
			t.Fatalf("expected %v, got %v", want, ids(got))
		}
	})

	t.Run("search", func(t *testing.T) {
		got := Filter(records, entities.FilterCriteria{Search: "  SMITH "})
		// Jane Smith by name, every record by doctor "Dr. Smith"
		if len(got) != len(records) {
			t.Fatalf("expected every record, got %v", ids(got))
		}
		got = Filter(records, entities.FilterCriteria{Search: "inv-3"})
		if want := []string{"3"}; !slices.Equal(ids(got), want) {
			t.Fatalf("expected %v, got %v", want, ids(got))
		}
	})

	t.Run("malformed date fails closed for ranges and open otherwise", func(t *testing.T) {
		withBad := append(fixture(), rec("9", "Broken Date", "32/13/2025", entities.PatientTypeCash, "1", "1"))

		ranged := Filter(withBad, entities.FilterCriteria{From: day(2000, 1, 1)})
		if slices.Contains(ids(ranged), "9") {
			t.Fatalf("malformed date must be excluded from ranged queries")
		}
		upperOnly := Filter(withBad, entities.FilterCriteria{To: day(2100, 1, 1)})
		if slices.Contains(ids(upperOnly), "9") {
			t.Fatalf("malformed date must be excluded when only the upper bound is set")
		}
		open := Filter(withBad, entities.FilterCriteria{Type: entities.PatientTypeCash})
		if !slices.Contains(ids(open), "9") {
			t.Fatalf("malformed date must be kept when no range is given")
		}
	})

	t.Run("idempotent and does not mutate", func(t *testing.T) {
		c := entities.FilterCriteria{From: day(2025, 7, 14), To: day(2025, 7, 21), Type: entities.PatientTypeInsurance}
		before := ids(records)
		once := Filter(records, c)
		twice := Filter(once, c)
		if !slices.Equal(ids(once), ids(twice)) {
			t.Fatalf("filter not idempotent: %v vs %v", ids(once), ids(twice))
		}
		if !slices.Equal(before, ids(records)) {
			t.Fatalf("input mutated")
		}
	})
}

func TestSort(t *testing.T) {
	records := fixture()

	cases := []struct {
		key  entities.SortKey
		want []string
	}{
		{entities.SortDateDesc, []string{"5", "4", "1", "3", "2"}},
		{entities.SortDateAsc, []string{"2", "3", "1", "4", "5"}},
		{entities.SortNameAsc, []string{"2", "1", "4", "5", "3"}},
		{entities.SortNameDesc, []string{"3", "5", "4", "1", "2"}},
		{entities.SortAmountDesc, []string{"4", "1", "2", "3", "5"}},
		{entities.SortAmountAsc, []string{"5", "3", "2", "1", "4"}},
		{entities.SortNetDesc, []string{"4", "1", "2", "3", "5"}},
		{entities.SortNetAsc, []string{"5", "3", "2", "1", "4"}},
		{entities.SortTypeAsc, []string{"2", "5", "3", "1", "4"}},
		{"", []string{"5", "4", "1", "3", "2"}},
		{"revenue-ish", []string{"5", "4", "1", "3", "2"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.key), func(t *testing.T) {
			got := Sort(records, tc.key)
			if !slices.Equal(ids(got), tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, ids(got))
			}
		})
	}

	t.Run("stable for equal keys", func(t *testing.T) {
		in := []entities.BillingRecord{
			rec("a", "A", "01/07/2025", entities.PatientTypeCash, "100", "90"),
			rec("b", "B", "02/07/2025", entities.PatientTypeCash, "200", "90"),
			rec("c", "C", "03/07/2025", entities.PatientTypeCash, "100", "90"),
			rec("d", "D", "04/07/2025", entities.PatientTypeCash, "100", "90"),
		}
		got := Sort(in, entities.SortAmountDesc)
		if want := []string{"b", "a", "c", "d"}; !slices.Equal(ids(got), want) {
			t.Fatalf("expected %v, got %v", want, ids(got))
		}
		got = Sort(in, entities.SortDiscountDesc)
		if want := []string{"a", "b", "c", "d"}; !slices.Equal(ids(got), want) {
			t.Fatalf("expected input order for equal discounts, got %v", ids(got))
		}
	})

	t.Run("dates compare as calendar dates", func(t *testing.T) {
		// As strings "02/08/2025" < "30/07/2025", as dates it is later.
		in := []entities.BillingRecord{
			rec("jul", "A", "30/07/2025", entities.PatientTypeCash, "1", "1"),
			rec("aug", "B", "02/08/2025", entities.PatientTypeCash, "1", "1"),
		}
		if got := ids(Sort(in, entities.SortDateDesc)); !slices.Equal(got, []string{"aug", "jul"}) {
			t.Fatalf("unexpected order %v", got)
		}
	})

	t.Run("unparseable dates sort last both ways", func(t *testing.T) {
		in := []entities.BillingRecord{
			rec("bad", "A", "n/a", entities.PatientTypeCash, "1", "1"),
			rec("old", "B", "01/01/2024", entities.PatientTypeCash, "1", "1"),
			rec("new", "C", "01/01/2025", entities.PatientTypeCash, "1", "1"),
		}
		if got := ids(Sort(in, entities.SortDateDesc)); !slices.Equal(got, []string{"new", "old", "bad"}) {
			t.Fatalf("unexpected desc order %v", got)
		}
		if got := ids(Sort(in, entities.SortDateAsc)); !slices.Equal(got, []string{"old", "new", "bad"}) {
			t.Fatalf("unexpected asc order %v", got)
		}
	})

	t.Run("locale aware names", func(t *testing.T) {
		in := []entities.BillingRecord{
			rec("z", "Zoe", "01/07/2025", entities.PatientTypeCash, "1", "1"),
			rec("e", "Émile", "01/07/2025", entities.PatientTypeCash, "1", "1"),
			rec("a", "adam", "01/07/2025", entities.PatientTypeCash, "1", "1"),
			rec("f", "Fran", "01/07/2025", entities.PatientTypeCash, "1", "1"),
		}
		if got := ids(Sort(in, entities.SortNameAsc)); !slices.Equal(got, []string{"a", "e", "f", "z"}) {
			t.Fatalf("unexpected collation order %v", got)
		}
	})

	t.Run("permutation without mutation", func(t *testing.T) {
		before := ids(records)
		for key := range sortKeys {
			got := Sort(records, key)
			gotIDs := ids(got)
			slices.Sort(gotIDs)
			sortedBefore := slices.Clone(before)
			slices.Sort(sortedBefore)
			if !slices.Equal(gotIDs, sortedBefore) {
				t.Fatalf("%s: not a permutation: %v", key, gotIDs)
			}
		}
		if !slices.Equal(before, ids(records)) {
			t.Fatalf("input mutated")
		}
	})
}

func TestAggregate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := Aggregate(nil)
		for name, v := range map[string]decimal.Decimal{
			"gross": got.GrossAmount, "discount": got.Discount, "share": got.PatientShare,
			"tax": got.TaxAmount, "net": got.NetBill, "due": got.InvoiceDue,
		} {
			if !v.IsZero() {
				t.Fatalf("%s expected zero, got %s", name, v)
			}
		}
		if got.Count != 0 {
			t.Fatalf("expected zero count")
		}
	})

	t.Run("sums each field", func(t *testing.T) {
		got := Aggregate(fixture())
		if !got.GrossAmount.Equal(d("11000")) || !got.NetBill.Equal(d("9850")) {
			t.Fatalf("unexpected totals %+v", got)
		}
		if !got.Discount.Equal(d("50")) || !got.PatientShare.Equal(d("27.5")) || !got.TaxAmount.Equal(d("6.25")) {
			t.Fatalf("unexpected totals %+v", got)
		}
		if got.Count != 5 {
			t.Fatalf("expected 5 records, got %d", got.Count)
		}
	})

	t.Run("no drift on cents", func(t *testing.T) {
		in := make([]entities.BillingRecord, 0, 1000)
		for i := 0; i < 1000; i++ {
			in = append(in, rec(fmt.Sprint(i), "x", "01/07/2025", entities.PatientTypeCash, "0.1", "0.1"))
		}
		if got := Aggregate(in); !got.NetBill.Equal(d("100")) {
			t.Fatalf("expected exactly 100, got %s", got.NetBill)
		}
	})

	t.Run("sort never changes totals", func(t *testing.T) {
		base := Aggregate(fixture())
		for key := range sortKeys {
			got := Aggregate(Sort(fixture(), key))
			if !got.NetBill.Equal(base.NetBill) || !got.GrossAmount.Equal(base.GrossAmount) {
				t.Fatalf("%s changed totals", key)
			}
		}
	})
}

func TestRun(t *testing.T) {
	report := Run(fixture(), entities.FilterCriteria{Type: entities.PatientTypeInsurance}, entities.SortNetAsc)
	if want := []string{"1", "4"}; !slices.Equal(ids(report.Records), want) {
		t.Fatalf("expected %v, got %v", want, ids(report.Records))
	}
	if !report.Totals.NetBill.Equal(d("5000")) {
		t.Fatalf("expected net 5000, got %s", report.Totals.NetBill)
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(d("25"), d("200")); !got.Equal(d("12.5")) {
		t.Fatalf("expected 12.5, got %s", got)
	}
	if got := Percentage(d("25"), decimal.Zero); !got.IsZero() {
		t.Fatalf("expected zero, got %s", got)
	}
}

func TestSplitLines(t *testing.T) {
	thirds := []entities.LineTemplate{
		{Code: "A", Quantity: 1, Weight: d("0.33")},
		{Code: "B", Quantity: 1, Weight: d("0.33")},
		{Code: "C", Quantity: 1, Weight: d("0.34")},
	}
	templates := map[string][]entities.LineTemplate{
		"default": DefaultLineTemplates(),
		"thirds":  thirds,
	}
	amounts := []string{"0", "0.01", "0.05", "0.99", "1", "1234.57", "2200", "999999.99", "33.33"}

	for name, tpl := range templates {
		for _, amount := range amounts {
			t.Run(name+"/"+amount, func(t *testing.T) {
				r := rec("1", "x", "01/07/2025", entities.PatientTypeCash, amount, amount)
				r.Discount = d(amount)
				r.TaxAmount = d(amount)
				items, err := SplitLines(r, tpl)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				totals := LineTotals(items)
				if !totals.NetBill.Equal(r.NetBill) || !totals.GrossAmount.Equal(r.GrossAmount) ||
					!totals.Discount.Equal(r.Discount) || !totals.TaxAmount.Equal(r.TaxAmount) ||
					!totals.PatientShare.Equal(r.PatientShare) {
					t.Fatalf("lines do not add up: %+v vs %+v", totals, r)
				}
				for _, it := range items {
					if it.NetBill.Exponent() < -2 {
						t.Fatalf("line %s has sub-cent precision: %s", it.Code, it.NetBill)
					}
				}
			})
		}
	}

	quarters := []entities.LineTemplate{
		{Code: "A", Quantity: 1, Weight: d("0.25")},
		{Code: "B", Quantity: 1, Weight: d("0.25")},
		{Code: "C", Quantity: 1, Weight: d("0.25")},
		{Code: "D", Quantity: 1, Weight: d("0.25")},
	}
	uneven := []entities.LineTemplate{
		{Code: "A", Quantity: 1, Weight: d("0.15")},
		{Code: "B", Quantity: 1, Weight: d("0.15")},
		{Code: "C", Quantity: 1, Weight: d("0.15")},
		{Code: "D", Quantity: 1, Weight: d("0.55")},
	}
	smallCases := []struct {
		name   string
		lines  []entities.LineTemplate
		amount string
		want   []string
	}{
		{"quarters of two cents", quarters, "0.02", []string{"0.01", "0.01", "0", "0"}},
		{"quarters of three cents", quarters, "0.03", []string{"0.01", "0.01", "0.01", "0"}},
		{"quarters of a dollar and a cent", quarters, "1.01", []string{"0.26", "0.25", "0.25", "0.25"}},
		{"uneven of ten cents", uneven, "0.10", []string{"0.02", "0.02", "0.01", "0.05"}},
		{"uneven of three cents", uneven, "0.03", []string{"0.01", "0", "0", "0.02"}},
	}
	for _, tc := range smallCases {
		t.Run(tc.name, func(t *testing.T) {
			r := rec("1", "x", "01/07/2025", entities.PatientTypeCash, tc.amount, tc.amount)
			items, err := SplitLines(r, tc.lines)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			sum := decimal.Zero
			for i, it := range items {
				if it.NetBill.IsNegative() || it.GrossAmount.IsNegative() {
					t.Fatalf("negative line %s net=%s", it.Code, it.NetBill)
				}
				if !it.NetBill.Equal(d(tc.want[i])) {
					t.Fatalf("line %s: expected %s, got %s", it.Code, tc.want[i], it.NetBill)
				}
				sum = sum.Add(it.NetBill)
			}
			if !sum.Equal(r.NetBill) {
				t.Fatalf("lines sum to %s, want %s", sum, r.NetBill)
			}
		})
	}

	t.Run("default weights", func(t *testing.T) {
		items, err := SplitLines(rec("1", "x", "01/07/2025", entities.PatientTypeCash, "2500", "2200"), DefaultLineTemplates())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !items[0].NetBill.Equal(d("880")) || !items[1].NetBill.Equal(d("1320")) {
			t.Fatalf("unexpected split %s / %s", items[0].NetBill, items[1].NetBill)
		}
		if items[1].Quantity != 3 || items[0].Code != "CONS001" {
			t.Fatalf("unexpected template mapping %+v", items)
		}
	})
}

func TestValidateTemplate(t *testing.T) {
	cases := []struct {
		name  string
		lines []entities.LineTemplate
		want  error
	}{
		{"empty", nil, ErrEmptyTemplate},
		{"zero weight", []entities.LineTemplate{{Code: "A", Quantity: 1, Weight: d("0")}, {Code: "B", Quantity: 1, Weight: d("1")}}, ErrInvalidWeight},
		{"bad quantity", []entities.LineTemplate{{Code: "A", Quantity: 0, Weight: d("1")}}, ErrInvalidQuantity},
		{"not whole", []entities.LineTemplate{{Code: "A", Quantity: 1, Weight: d("0.5")}, {Code: "B", Quantity: 1, Weight: d("0.4")}}, ErrWeightsNotWhole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateTemplate(tc.lines); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if err := ValidateTemplate(DefaultLineTemplates()); err != nil {
		t.Fatalf("default template invalid: %v", err)
	}
}

func TestExpandInvoice(t *testing.T) {
	profile := entities.InvoiceProfile{Hospital: entities.HospitalInfo{
		Name:    "A1 Hospital",
		Address: "123 Main Street",
		Contact: "+1 (555) 123-4567",
	}}

	t.Run("insurance patient", func(t *testing.T) {
		r := rec("P001", "John Doe", "17/07/2025", entities.PatientTypeInsurance, "2500", "2200")
		inv, err := ExpandInvoice(r, profile, "TXN1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.VisitID != "V000001" || inv.PaymentMode != entities.PaymentModeInsurance || inv.PaymentMethod != "Insurance Claim" {
			t.Fatalf("unexpected header %+v", inv)
		}
		if inv.AmountInWords != "Two Thousand Two Hundred Dollars Only" {
			t.Fatalf("unexpected words %q", inv.AmountInWords)
		}
		if inv.ForCenter != "A1 Hospital" || inv.PaymentTxnNumber != "TXN1" {
			t.Fatalf("unexpected footer %+v", inv)
		}
		if !LineTotals(inv.Items).NetBill.Equal(r.NetBill) {
			t.Fatalf("lines do not add up")
		}
		if !inv.NetTaxCollection.Equal(r.TaxAmount) {
			t.Fatalf("unexpected tax collection %s", inv.NetTaxCollection)
		}
	})

	t.Run("cash patient with custom template", func(t *testing.T) {
		p := profile
		p.Lines = []entities.LineTemplate{{Code: "ALL", Description: "Visit", Quantity: 1, Weight: d("1")}}
		inv, err := ExpandInvoice(rec("7", "x", "01/07/2025", entities.PatientTypeCorporate, "10", "10"), p, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.PaymentMode != entities.PaymentModeCash || len(inv.Items) != 1 {
			t.Fatalf("unexpected invoice %+v", inv)
		}
	})

	t.Run("invalid template", func(t *testing.T) {
		p := profile
		p.Lines = []entities.LineTemplate{{Code: "ALL", Quantity: 1, Weight: d("0.9")}}
		if _, err := ExpandInvoice(rec("7", "x", "01/07/2025", entities.PatientTypeCash, "10", "10"), p, ""); !errors.Is(err, ErrWeightsNotWhole) {
			t.Fatalf("expected ErrWeightsNotWhole, got %v", err)
		}
	})
}

func TestVisitID(t *testing.T) {
	cases := map[string]string{"1": "V000001", "P042": "V000042", "1234567": "V1234567", "abc": "V000abc"}
	for in, want := range cases {
		if got := VisitID(in); got != want {
			t.Fatalf("%q: expected %q, got %q", in, want, got)
		}
	}
}

func TestOverview(t *testing.T) {
	records := []entities.BillingRecord{
		{InvoiceDate: "2025-07-09", PatientType: entities.PatientTypeCash, GrossAmount: d("2000"), Discount: d("200"), PatientShare: d("100")},
		{InvoiceDate: "2025-07-08", PatientType: entities.PatientTypeInsurance, GrossAmount: d("2500"), Discount: d("300"), PatientShare: d("150")},
		{InvoiceDate: "07/07/2025", PatientType: entities.PatientTypeCorporate, GrossAmount: d("1000"), Discount: d("100"), PatientShare: d("60")},
		{InvoiceDate: "2025-07-07", PatientType: entities.PatientTypeCorporate, GrossAmount: d("800"), Discount: d("50"), PatientShare: d("60")},
	}

	t.Run("revenue", func(t *testing.T) {
		ov := Overview(records, entities.OverviewSortRevenue)
		if len(ov.Rows) != 3 {
			t.Fatalf("expected 3 grouped rows, got %d", len(ov.Rows))
		}
		first := ov.Rows[0]
		if first.PatientType != entities.PatientTypeInsurance || !first.NetExcludingPatientShare.Equal(d("2050")) {
			t.Fatalf("unexpected first row %+v", first)
		}
		corp := ov.Rows[2]
		if corp.Period != "2025-07-07" || !corp.Gross.Equal(d("1800")) || !corp.NetExcludingPatientShare.Equal(d("1530")) {
			t.Fatalf("unexpected corporate row %+v", corp)
		}
		if !ov.Totals.Gross.Equal(d("6300")) || !ov.Totals.NetAfterDiscount.Equal(d("5650")) || !ov.Totals.NetExcludingPatientShare.Equal(d("5280")) {
			t.Fatalf("unexpected totals %+v", ov.Totals)
		}
	})

	t.Run("patients and discount", func(t *testing.T) {
		ov := Overview(records, entities.OverviewSortPatients)
		if ov.Rows[0].PatientType != entities.PatientTypeCash || ov.Rows[2].PatientType != entities.PatientTypeInsurance {
			t.Fatalf("unexpected order %+v", ov.Rows)
		}
		ov = Overview(records, entities.OverviewSortDiscount)
		if !ov.Rows[0].Discount.Equal(d("300")) {
			t.Fatalf("unexpected order %+v", ov.Rows)
		}
	})
}
