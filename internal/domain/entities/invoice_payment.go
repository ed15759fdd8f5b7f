package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// InvoicePayment is the settlement of an invoice's outstanding due.
//
// ProviderPayloadRaw keeps the gateway response body for traceability.
type InvoicePayment struct {
	ID                 string          `json:"id"`
	RecordID           string          `json:"record_id"`
	InvoiceNumber      string          `json:"invoice_number"`
	Amount             decimal.Decimal `json:"amount"`
	Date               time.Time       `json:"date"`
	Status             PaymentStatus   `json:"status"`
	ProviderPaymentID  string          `json:"provider_payment_id"`
	ProviderStatus     string          `json:"provider_status"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
