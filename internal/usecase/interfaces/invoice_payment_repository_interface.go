package interfaces

import (
	"context"

	"hospital_billing/internal/domain/entities"
)

// IInvoicePaymentRepository persists settlements of outstanding invoice dues.

type IInvoicePaymentRepository interface {
	Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error)
	ListByRecordID(ctx context.Context, recordID string) ([]entities.InvoicePayment, error)
}
