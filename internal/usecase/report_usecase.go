package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"hospital_billing/internal/domain/billing"
	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/observability/metrics"
	"hospital_billing/internal/usecase/interfaces"
)

var ErrInvalidRange = errors.New("invalid date range: from is after to")

// IReportUseCase runs the filter, sort and aggregate pipeline over the record
// source.

type IReportUseCase interface {
	List(ctx context.Context, criteria entities.FilterCriteria, key entities.SortKey) (entities.Report, error)
	Totals(ctx context.Context, criteria entities.FilterCriteria) (entities.Totals, error)
	Overview(ctx context.Context, criteria entities.FilterCriteria, key entities.OverviewSortKey) (entities.Overview, error)
}

type ReportUseCase struct {
	source interfaces.RecordSource
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(source interfaces.RecordSource) *ReportUseCase {
	return &ReportUseCase{source: source}
}

func (u *ReportUseCase) List(ctx context.Context, criteria entities.FilterCriteria, key entities.SortKey) (entities.Report, error) {
	start := time.Now()
	key = billing.NormalizeSortKey(key)
	log.Printf("[report][usecase] list start type=%q from=%s to=%s sort=%s", criteria.Type, dayString(criteria.From), dayString(criteria.To), key)

	records, err := u.load(ctx, criteria)
	if err != nil {
		metrics.ObserveReport("list", metrics.ResultError, 0, time.Since(start))
		return entities.Report{}, err
	}

	report := billing.Run(records, criteria, key)
	metrics.ObserveReport("list", metrics.ResultSuccess, len(report.Records), time.Since(start))
	log.Printf("[report][usecase] list success loaded=%d matched=%d net=%s", len(records), len(report.Records), report.Totals.NetBill.StringFixed(2))
	return report, nil
}

func (u *ReportUseCase) Totals(ctx context.Context, criteria entities.FilterCriteria) (entities.Totals, error) {
	start := time.Now()
	records, err := u.load(ctx, criteria)
	if err != nil {
		metrics.ObserveReport("totals", metrics.ResultError, 0, time.Since(start))
		return entities.Totals{}, err
	}

	totals := billing.Aggregate(billing.Filter(records, criteria))
	metrics.ObserveReport("totals", metrics.ResultSuccess, totals.Count, time.Since(start))
	return totals, nil
}

func (u *ReportUseCase) Overview(ctx context.Context, criteria entities.FilterCriteria, key entities.OverviewSortKey) (entities.Overview, error) {
	start := time.Now()
	records, err := u.load(ctx, criteria)
	if err != nil {
		metrics.ObserveReport("overview", metrics.ResultError, 0, time.Since(start))
		return entities.Overview{}, err
	}

	filtered := billing.Filter(records, criteria)
	ov := billing.Overview(filtered, key)
	metrics.ObserveReport("overview", metrics.ResultSuccess, len(filtered), time.Since(start))
	log.Printf("[report][usecase] overview success matched=%d rows=%d sort=%s", len(filtered), len(ov.Rows), key)
	return ov, nil
}

// load rejects inverted ranges and pushes the date range down to the source.
// An unknown patient type is not an error; it simply matches nothing.
func (u *ReportUseCase) load(ctx context.Context, criteria entities.FilterCriteria) ([]entities.BillingRecord, error) {
	if err := validateCriteria(criteria); err != nil {
		log.Printf("[report][usecase] invalid criteria err=%v", err)
		return nil, err
	}
	if u.source == nil {
		return nil, errors.New("record source not configured")
	}

	var (
		records []entities.BillingRecord
		err     error
	)
	if criteria.HasRange() {
		records, err = u.source.FetchRange(ctx, criteria.From, criteria.To)
	} else {
		records, err = u.source.FetchAll(ctx)
	}
	if err != nil {
		log.Printf("[report][usecase] fetch failed err=%v", err)
		return nil, err
	}
	return records, nil
}

func validateCriteria(c entities.FilterCriteria) error {
	if !c.From.IsZero() && !c.To.IsZero() && c.From.After(c.To) {
		return ErrInvalidRange
	}
	return nil
}

func dayString(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.DateOnly)
}
