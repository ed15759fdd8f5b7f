package request

import "encoding/json"

// InvoicePaymentCreateRequest is the payload for settling an invoice's due.
//
// `mp_payload` is forwarded as raw JSON to support varying Mercado Pago
// schemas. A bare Mercado Pago body without the envelope is accepted too.

type InvoicePaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
