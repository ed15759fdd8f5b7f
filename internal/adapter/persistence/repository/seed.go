package repository

import (
	"context"
	"errors"
	"log"

	"hospital_billing/internal/domain/entities"
)

type recordCreator interface {
	Create(ctx context.Context, rec entities.BillingRecord) (entities.BillingRecord, error)
}

// SeedRecords writes records that are not stored yet and returns how many
// were inserted.
func SeedRecords(ctx context.Context, repo recordCreator, records []entities.BillingRecord) (int, error) {
	inserted := 0
	for _, rec := range records {
		if _, err := repo.Create(ctx, rec); err != nil {
			if errors.Is(err, ErrDuplicateRecord) {
				continue
			}
			return inserted, err
		}
		inserted++
	}
	log.Printf("[billing][repository] seed finished inserted=%d total=%d", inserted, len(records))
	return inserted, nil
}
