package repository

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"
)

// RecordMemoryRepository keeps billing records in process memory.

type RecordMemoryRepository struct {
	mu      sync.RWMutex
	records []entities.BillingRecord
}

var _ interfaces.IRecordRepository = (*RecordMemoryRepository)(nil)

func NewRecordMemoryRepository(records []entities.BillingRecord) *RecordMemoryRepository {
	return &RecordMemoryRepository{records: append([]entities.BillingRecord(nil), records...)}
}

func (r *RecordMemoryRepository) FetchAll(ctx context.Context) ([]entities.BillingRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.BillingRecord(nil), r.records...), nil
}

func (r *RecordMemoryRepository) FetchRange(ctx context.Context, from, to time.Time) ([]entities.BillingRecord, error) {
	all, err := r.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return inRange(all, from, to), nil
}

func (r *RecordMemoryRepository) GetByID(ctx context.Context, id string) (entities.BillingRecord, error) {
	if err := ctx.Err(); err != nil {
		return entities.BillingRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return entities.BillingRecord{}, nil
}

func (r *RecordMemoryRepository) MarkPaid(ctx context.Context, id string) (entities.BillingRecord, error) {
	if err := ctx.Err(); err != nil {
		return entities.BillingRecord{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			r.records[i].Status = entities.InvoiceStatusPaid
			r.records[i].InvoiceDue = decimal.Zero
			return r.records[i], nil
		}
	}
	return entities.BillingRecord{}, nil
}

// InvoicePaymentMemoryRepository keeps invoice payments in process memory.

type InvoicePaymentMemoryRepository struct {
	mu       sync.RWMutex
	payments []entities.InvoicePayment
}

var _ interfaces.IInvoicePaymentRepository = (*InvoicePaymentMemoryRepository)(nil)

func NewInvoicePaymentMemoryRepository() *InvoicePaymentMemoryRepository {
	return &InvoicePaymentMemoryRepository{}
}

func (r *InvoicePaymentMemoryRepository) Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
	if err := ctx.Err(); err != nil {
		return entities.InvoicePayment{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.payments {
		if existing.ID == p.ID {
			return entities.InvoicePayment{}, ErrDuplicatePayment
		}
	}
	r.payments = append(r.payments, p)
	return p, nil
}

func (r *InvoicePaymentMemoryRepository) ListByRecordID(ctx context.Context, recordID string) ([]entities.InvoicePayment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.InvoicePayment, 0)
	for _, p := range r.payments {
		if p.RecordID == recordID {
			out = append(out, p)
		}
	}
	return out, nil
}
