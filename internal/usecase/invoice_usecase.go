package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"hospital_billing/internal/domain/billing"
	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"
)

var (
	ErrRecordNotFound  = errors.New("billing record not found")
	ErrInvalidRecordID = errors.New("invalid record id")
)

// IInvoiceUseCase builds the printable invoice of a single billing record.

type IInvoiceUseCase interface {
	GetInvoice(ctx context.Context, recordID string) (entities.Invoice, error)
	PrintInvoice(ctx context.Context, recordID string) ([]byte, entities.Invoice, error)
	Hospital() entities.HospitalInfo
}

type InvoiceUseCase struct {
	repo    interfaces.IRecordRepository
	printer interfaces.IInvoicePrinter
	profile entities.InvoiceProfile
	now     func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IRecordRepository, printer interfaces.IInvoicePrinter, profile entities.InvoiceProfile) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, printer: printer, profile: profile, now: time.Now}
}

func (u *InvoiceUseCase) GetInvoice(ctx context.Context, recordID string) (entities.Invoice, error) {
	rec, err := loadRecord(ctx, u.repo, recordID)
	if err != nil {
		return entities.Invoice{}, err
	}

	inv, err := billing.ExpandInvoice(rec, u.profile, TxnNumber(u.now(), uuid.New()))
	if err != nil {
		log.Printf("[invoice][usecase] expand failed record_id=%s err=%v", rec.ID, err)
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] expanded record_id=%s invoice=%s lines=%d", rec.ID, inv.InvoiceNo, len(inv.Items))
	return inv, nil
}

func (u *InvoiceUseCase) PrintInvoice(ctx context.Context, recordID string) ([]byte, entities.Invoice, error) {
	if u.printer == nil {
		return nil, entities.Invoice{}, errors.New("invoice printer not configured")
	}
	inv, err := u.GetInvoice(ctx, recordID)
	if err != nil {
		return nil, entities.Invoice{}, err
	}
	data, err := u.printer.PrintInvoice(inv, u.profile.Hospital)
	if err != nil {
		log.Printf("[invoice][usecase] print failed invoice=%s err=%v", inv.InvoiceNo, err)
		return nil, entities.Invoice{}, err
	}
	return data, inv, nil
}

// Hospital is the header printed on every invoice.
func (u *InvoiceUseCase) Hospital() entities.HospitalInfo {
	return u.profile.Hospital
}

// TxnNumber formats "TXN" followed by the unix millis of now and three
// digits taken from id.
func TxnNumber(now time.Time, id uuid.UUID) string {
	suffix := (int(id[0])<<8 | int(id[1])) % 1000
	return fmt.Sprintf("TXN%d%03d", now.UnixMilli(), suffix)
}

func loadRecord(ctx context.Context, repo interfaces.IRecordRepository, recordID string) (entities.BillingRecord, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return entities.BillingRecord{}, ErrInvalidRecordID
	}
	if repo == nil {
		return entities.BillingRecord{}, errors.New("record repository not configured")
	}
	rec, err := repo.GetByID(ctx, recordID)
	if err != nil {
		log.Printf("[invoice][usecase] failed loading record record_id=%s err=%v", recordID, err)
		return entities.BillingRecord{}, err
	}
	if rec.ID == "" {
		log.Printf("[invoice][usecase] record not found record_id=%s", recordID)
		return entities.BillingRecord{}, ErrRecordNotFound
	}
	return rec, nil
}
