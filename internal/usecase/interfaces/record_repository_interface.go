package interfaces

import (
	"context"
	"time"

	"hospital_billing/internal/domain/entities"
)

// RecordSource supplies billing records to the report pipeline.
//
// FetchRange bounds are inclusive calendar days; a zero bound leaves that
// side open. Records whose stored date cannot be parsed are only returned
// by FetchAll.
type RecordSource interface {
	FetchAll(ctx context.Context) ([]entities.BillingRecord, error)
	FetchRange(ctx context.Context, from, to time.Time) ([]entities.BillingRecord, error)
}

// IRecordRepository is the record store behind the dashboard.
//
// GetByID returns a zero-value record when the id is unknown.

type IRecordRepository interface {
	RecordSource
	GetByID(ctx context.Context, id string) (entities.BillingRecord, error)
	MarkPaid(ctx context.Context, id string) (entities.BillingRecord, error)
}
