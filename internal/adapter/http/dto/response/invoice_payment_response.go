package response

import (
	"encoding/json"
	"time"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/domain/format"
)

type InvoicePaymentResponse struct {
	PaymentID         string    `json:"payment_id"`
	RecordID          string    `json:"record_id"`
	InvoiceNumber     string    `json:"invoice_number"`
	Amount            string    `json:"amount"`
	PaymentDate       time.Time `json:"payment_date"`
	Status            string    `json:"status"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	ProviderStatus    string    `json:"provider_status,omitempty"`

	ProviderPayloadRaw string         `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any `json:"provider_payload,omitempty"`
}

func FromInvoicePayment(p entities.InvoicePayment) InvoicePaymentResponse {
	res := InvoicePaymentResponse{
		PaymentID:          p.ID,
		RecordID:           p.RecordID,
		InvoiceNumber:      p.InvoiceNumber,
		Amount:             format.FormatAmount(p.Amount),
		PaymentDate:        p.Date,
		Status:             string(p.Status),
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderStatus:     p.ProviderStatus,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
	if len(p.ProviderPayloadRaw) > 0 {
		var payload map[string]any
		if err := json.Unmarshal(p.ProviderPayloadRaw, &payload); err == nil {
			res.ProviderPayload = payload
		}
	}
	return res
}

func FromInvoicePayments(payments []entities.InvoicePayment) []InvoicePaymentResponse {
	out := make([]InvoicePaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromInvoicePayment(p))
	}
	return out
}
