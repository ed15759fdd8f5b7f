package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/observability/metrics"
	"hospital_billing/internal/usecase/interfaces"
)

const (
	cacheKeyAll    = "records:all"
	cacheKeyRange  = "records:range:"
	cacheKeyRecord = "records:id:"
)

// RecordCacheRepository serves reads from an in-process TTL cache in front of
// another record repository. Any MarkPaid flushes the cache.

type RecordCacheRepository struct {
	next  interfaces.IRecordRepository
	cache *cache.Cache
}

var _ interfaces.IRecordRepository = (*RecordCacheRepository)(nil)

func NewRecordCacheRepository(next interfaces.IRecordRepository, ttl time.Duration) *RecordCacheRepository {
	return &RecordCacheRepository{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (r *RecordCacheRepository) FetchAll(ctx context.Context) ([]entities.BillingRecord, error) {
	return r.list(cacheKeyAll, func() ([]entities.BillingRecord, error) {
		return r.next.FetchAll(ctx)
	})
}

func (r *RecordCacheRepository) FetchRange(ctx context.Context, from, to time.Time) ([]entities.BillingRecord, error) {
	key := cacheKeyRange + dayBound(from) + "|" + dayBound(to)
	return r.list(key, func() ([]entities.BillingRecord, error) {
		return r.next.FetchRange(ctx, from, to)
	})
}

func (r *RecordCacheRepository) GetByID(ctx context.Context, id string) (entities.BillingRecord, error) {
	key := cacheKeyRecord + id
	if v, ok := r.cache.Get(key); ok {
		metrics.IncCacheLookup(true)
		return v.(entities.BillingRecord), nil
	}
	metrics.IncCacheLookup(false)

	rec, err := r.next.GetByID(ctx, id)
	if err != nil {
		return entities.BillingRecord{}, err
	}
	// Misses are not cached.
	if rec.ID != "" {
		r.cache.SetDefault(key, rec)
	}
	return rec, nil
}

func (r *RecordCacheRepository) MarkPaid(ctx context.Context, id string) (entities.BillingRecord, error) {
	rec, err := r.next.MarkPaid(ctx, id)
	if err != nil {
		return entities.BillingRecord{}, err
	}
	r.cache.Flush()
	return rec, nil
}

func (r *RecordCacheRepository) list(key string, load func() ([]entities.BillingRecord, error)) ([]entities.BillingRecord, error) {
	if v, ok := r.cache.Get(key); ok {
		metrics.IncCacheLookup(true)
		return append([]entities.BillingRecord(nil), v.([]entities.BillingRecord)...), nil
	}
	metrics.IncCacheLookup(false)

	records, err := load()
	if err != nil {
		return nil, err
	}
	r.cache.SetDefault(key, append([]entities.BillingRecord(nil), records...))
	return records, nil
}
