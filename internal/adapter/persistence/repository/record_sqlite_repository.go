package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"
)

const recordColumns = `id, invoice_number, invoice_date, patient_name, doctor, patient_type,
	gross_amount, discount, patient_share, tax_amount, net_bill, invoice_due, status, billed_by`

// RecordSQLiteRepository persists BillingRecord entities in the
// billing_records table. Amounts are TEXT with two decimals.

type RecordSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IRecordRepository = (*RecordSQLiteRepository)(nil)

func NewRecordSQLiteRepository(db *sql.DB) *RecordSQLiteRepository {
	return &RecordSQLiteRepository{db: db}
}

func (r *RecordSQLiteRepository) Create(ctx context.Context, rec entities.BillingRecord) (entities.BillingRecord, error) {
	var day any
	if d := invoiceDay(rec.InvoiceDate); d != "" {
		day = d
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO billing_records (`+recordColumns+`, invoice_day, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.InvoiceNumber, rec.InvoiceDate, rec.PatientName, rec.Doctor, string(rec.PatientType),
		moneyToString(rec.GrossAmount), moneyToString(rec.Discount), moneyToString(rec.PatientShare),
		moneyToString(rec.TaxAmount), moneyToString(rec.NetBill), moneyToString(rec.InvoiceDue),
		string(rec.Status), rec.BilledBy, day, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.BillingRecord{}, ErrDuplicateRecord
		}
		return entities.BillingRecord{}, fmt.Errorf("insert record: %w", err)
	}
	return rec, nil
}

func (r *RecordSQLiteRepository) FetchAll(ctx context.Context) ([]entities.BillingRecord, error) {
	return r.query(ctx, `SELECT `+recordColumns+` FROM billing_records ORDER BY id`)
}

func (r *RecordSQLiteRepository) FetchRange(ctx context.Context, from, to time.Time) ([]entities.BillingRecord, error) {
	var (
		where []string
		args  []any
	)
	if lo := dayBound(from); lo != "" {
		where = append(where, "invoice_day >= ?")
		args = append(args, lo)
	}
	if hi := dayBound(to); hi != "" {
		where = append(where, "invoice_day <= ?")
		args = append(args, hi)
	}
	if len(where) == 0 {
		return r.FetchAll(ctx)
	}
	q := `SELECT ` + recordColumns + ` FROM billing_records
		WHERE invoice_day IS NOT NULL AND ` + strings.Join(where, " AND ") + ` ORDER BY id`
	return r.query(ctx, q, args...)
}

func (r *RecordSQLiteRepository) GetByID(ctx context.Context, id string) (entities.BillingRecord, error) {
	records, err := r.query(ctx, `SELECT `+recordColumns+` FROM billing_records WHERE id = ?`, id)
	if err != nil {
		return entities.BillingRecord{}, err
	}
	if len(records) == 0 {
		return entities.BillingRecord{}, nil
	}
	return records[0], nil
}

func (r *RecordSQLiteRepository) MarkPaid(ctx context.Context, id string) (entities.BillingRecord, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE billing_records SET status = ?, invoice_due = ?, updated_at = ? WHERE id = ?`,
		string(entities.InvoiceStatusPaid), moneyToString(decimal.Zero), time.Now().UTC().Format(time.RFC3339Nano), id,
	)
	if err != nil {
		return entities.BillingRecord{}, fmt.Errorf("mark record paid: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.BillingRecord{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *RecordSQLiteRepository) query(ctx context.Context, q string, args ...any) ([]entities.BillingRecord, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := make([]entities.BillingRecord, 0)
	for rows.Next() {
		var it recordItem
		if err := rows.Scan(
			&it.ID, &it.InvoiceNumber, &it.InvoiceDate, &it.PatientName, &it.Doctor, &it.PatientType,
			&it.GrossAmount, &it.Discount, &it.PatientShare, &it.TaxAmount, &it.NetBill, &it.InvoiceDue,
			&it.Status, &it.BilledBy,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec, err := fromRecordItem(it)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// InvoicePaymentSQLiteRepository persists InvoicePayment entities in the
// invoice_payments table.

type InvoicePaymentSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IInvoicePaymentRepository = (*InvoicePaymentSQLiteRepository)(nil)

func NewInvoicePaymentSQLiteRepository(db *sql.DB) *InvoicePaymentSQLiteRepository {
	return &InvoicePaymentSQLiteRepository{db: db}
}

func (r *InvoicePaymentSQLiteRepository) Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
	it := toInvoicePaymentItem(p)
	var raw any
	if it.ProviderPayloadRaw != "" {
		raw = it.ProviderPayloadRaw
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO invoice_payments
		(id, record_id, invoice_number, amount, date, status, provider_payment_id, provider_status, provider_payload_raw)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.RecordID, it.InvoiceNumber, it.Amount, it.Date, it.Status, it.ProviderPaymentID, it.ProviderStatus, raw,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.InvoicePayment{}, ErrDuplicatePayment
		}
		return entities.InvoicePayment{}, fmt.Errorf("insert payment: %w", err)
	}
	return p, nil
}

func (r *InvoicePaymentSQLiteRepository) ListByRecordID(ctx context.Context, recordID string) ([]entities.InvoicePayment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, record_id, invoice_number, amount, date, status,
		provider_payment_id, provider_status, provider_payload_raw
		FROM invoice_payments WHERE record_id = ? ORDER BY date, id`, recordID)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	payments := make([]entities.InvoicePayment, 0)
	for rows.Next() {
		var (
			it  invoicePaymentItem
			raw sql.NullString
		)
		if err := rows.Scan(&it.ID, &it.RecordID, &it.InvoiceNumber, &it.Amount, &it.Date, &it.Status,
			&it.ProviderPaymentID, &it.ProviderStatus, &raw); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		it.ProviderPayloadRaw = raw.String
		p, err := fromInvoicePaymentItem(it)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
